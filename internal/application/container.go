package application

import "github.com/linskybing/formbuilder/internal/repository"

type Services struct {
	Form       *FormService
	Submission *SubmissionService
	Audit      *AuditService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		Form:       NewFormService(repos),
		Submission: NewSubmissionService(repos),
		Audit:      NewAuditService(repos),
	}
}
