package application_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/formbuilder/internal/application"
	"github.com/linskybing/formbuilder/internal/domain/audit"
	"github.com/linskybing/formbuilder/internal/repository"
	"github.com/linskybing/formbuilder/internal/repository/mock_repository"
)

func setupAuditMocks(t *testing.T) (*application.AuditService, *mock_repository.MockAuditRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockAudit := mock_repository.NewMockAuditRepo(ctrl)
	svc := application.NewAuditService(&repository.Repos{Audit: mockAudit})
	return svc, mockAudit
}

func TestAuditServiceListLogs(t *testing.T) {
	svc, mockAudit := setupAuditMocks(t)

	action := "create"
	mockAudit.EXPECT().GetAuditLogs(gomock.Any()).DoAndReturn(
		func(p repository.AuditQueryParams) ([]audit.AuditLog, int64, error) {
			if p.Offset != 10 || p.Limit != 10 {
				t.Fatalf("unexpected paging params: %+v", p)
			}
			if p.Action == nil || *p.Action != "create" || p.ResourceType != nil {
				t.Fatalf("unexpected filters: %+v", p)
			}
			return []audit.AuditLog{{Action: "create", ResourceType: "form"}}, int64(12), nil
		})

	result, err := svc.ListLogs(2, 10, &action, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Page != 2 || result.TotalPages != 2 || result.Total != 12 {
		t.Fatalf("unexpected envelope: %+v", result)
	}
	logs, ok := result.Data.([]audit.AuditLog)
	if !ok || len(logs) != 1 {
		t.Fatalf("unexpected data: %#v", result.Data)
	}
}

func TestAuditServiceCleanup(t *testing.T) {
	svc, mockAudit := setupAuditMocks(t)

	mockAudit.EXPECT().DeleteOldAuditLogs(90).Return(nil)

	if err := svc.CleanupOldLogs(90); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
