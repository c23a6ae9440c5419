package application

import (
	"github.com/linskybing/formbuilder/internal/domain/audit"
	"github.com/linskybing/formbuilder/internal/repository"
	"github.com/linskybing/formbuilder/pkg/response"
	"github.com/linskybing/formbuilder/pkg/utils"
)

type AuditService struct {
	repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{repos: repos}
}

func (s *AuditService) ListLogs(page, limit int, action, resourceType *string) (*response.Paginated, error) {
	params := repository.AuditQueryParams{
		Action:       action,
		ResourceType: resourceType,
		Limit:        limit,
		Offset:       (page - 1) * limit,
	}
	logs, total, err := s.repos.Audit.GetAuditLogs(params)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []audit.AuditLog{}
	}
	return &response.Paginated{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: utils.TotalPages(total, limit),
		Data:       logs,
	}, nil
}

func (s *AuditService) CleanupOldLogs(retentionDays int) error {
	return s.repos.Audit.DeleteOldAuditLogs(retentionDays)
}
