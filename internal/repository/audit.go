package repository

import (
	"time"

	"github.com/linskybing/formbuilder/internal/domain/audit"
	"gorm.io/gorm"
)

type AuditQueryParams struct {
	Action       *string
	ResourceType *string
	StartTime    *time.Time
	EndTime      *time.Time
	Limit        int
	Offset       int
}

type AuditRepo interface {
	GetAuditLogs(params AuditQueryParams) ([]audit.AuditLog, int64, error)
	CreateAuditLog(entry *audit.AuditLog) error
	DeleteOldAuditLogs(retentionDays int) error
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{
		db: db,
	}
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	return &DBAuditRepo{db: tx}
}

func (r *DBAuditRepo) CreateAuditLog(entry *audit.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *DBAuditRepo) GetAuditLogs(params AuditQueryParams) ([]audit.AuditLog, int64, error) {
	q := r.db.Model(&audit.AuditLog{})
	if params.Action != nil {
		q = q.Where("action = ?", *params.Action)
	}
	if params.ResourceType != nil {
		q = q.Where("resource_type = ?", *params.ResourceType)
	}
	if params.StartTime != nil {
		q = q.Where("created_at >= ?", *params.StartTime)
	}
	if params.EndTime != nil {
		q = q.Where("created_at <= ?", *params.EndTime)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []audit.AuditLog
	if err := q.Order("created_at desc").Offset(params.Offset).Limit(params.Limit).Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *DBAuditRepo) DeleteOldAuditLogs(retentionDays int) error {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return r.db.Where("created_at < ?", cutoff).Delete(&audit.AuditLog{}).Error
}
