package repository

import (
	"github.com/linskybing/formbuilder/internal/domain/form"
	"gorm.io/gorm"
)

type FormRepo interface {
	Create(f *form.Form) error
	ListPaging(page, limit int) ([]form.Form, int64, error)
	FindByID(id string) (*form.Form, error)
	Update(f *form.Form) error
	SoftDelete(id string) error
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{
		db: db,
	}
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	return &DBFormRepo{db: tx}
}

func (r *DBFormRepo) Create(f *form.Form) error {
	return r.db.Create(f).Error
}

// ListPaging returns one page of forms plus the total count. Soft-deleted
// rows are excluded by GORM on every query in this repo, the count included.
func (r *DBFormRepo) ListPaging(page, limit int) ([]form.Form, int64, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}

	var total int64
	if err := r.db.Model(&form.Form{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var forms []form.Form
	offset := (page - 1) * limit
	if err := r.db.Order("created_at desc").Offset(offset).Limit(limit).Find(&forms).Error; err != nil {
		return nil, 0, err
	}
	return forms, total, nil
}

func (r *DBFormRepo) FindByID(id string) (*form.Form, error) {
	var f form.Form
	if err := r.db.First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *DBFormRepo) Update(f *form.Form) error {
	return r.db.Save(f).Error
}

// SoftDelete marks the form deleted. Returns gorm.ErrRecordNotFound when the
// id does not match a live form, so callers can map it to a 404.
func (r *DBFormRepo) SoftDelete(id string) error {
	res := r.db.Delete(&form.Form{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
