package repository

import (
	"github.com/linskybing/formbuilder/internal/domain/submission"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	Create(s *submission.FormSubmission) error
	ListPaging(page, limit int) ([]submission.WithFormTitle, int64, error)
	ListByFormPaging(formID string, page, limit int) ([]submission.FormSubmission, int64, error)
	FindByID(id string) (*submission.FormSubmission, error)
	Delete(id string) error
	WithTx(tx *gorm.DB) SubmissionRepo
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{
		db: db,
	}
}

func (r *DBSubmissionRepo) WithTx(tx *gorm.DB) SubmissionRepo {
	return &DBSubmissionRepo{db: tx}
}

func (r *DBSubmissionRepo) Create(s *submission.FormSubmission) error {
	return r.db.Create(s).Error
}

// ListPaging resolves each submission's form title at read time. The join
// skips soft-deleted forms, leaving their submissions with an empty title.
func (r *DBSubmissionRepo) ListPaging(page, limit int) ([]submission.WithFormTitle, int64, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}

	var total int64
	if err := r.db.Model(&submission.FormSubmission{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []submission.WithFormTitle
	offset := (page - 1) * limit
	err := r.db.Table("form_submissions").
		Select("form_submissions.*, forms.title AS form_title").
		Joins("LEFT JOIN forms ON forms.id = form_submissions.form_id AND forms.deleted_at IS NULL").
		Order("form_submissions.created_at desc").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *DBSubmissionRepo) ListByFormPaging(formID string, page, limit int) ([]submission.FormSubmission, int64, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}

	var total int64
	if err := r.db.Model(&submission.FormSubmission{}).Where("form_id = ?", formID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subs []submission.FormSubmission
	offset := (page - 1) * limit
	err := r.db.Where("form_id = ?", formID).
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (r *DBSubmissionRepo) FindByID(id string) (*submission.FormSubmission, error) {
	var s submission.FormSubmission
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete physically removes the submission (submissions are immutable after
// creation except for deletion).
func (r *DBSubmissionRepo) Delete(id string) error {
	res := r.db.Delete(&submission.FormSubmission{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
