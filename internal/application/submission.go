package application

import (
	"errors"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/formbuilder/internal/domain/form"
	"github.com/linskybing/formbuilder/internal/domain/submission"
	"github.com/linskybing/formbuilder/internal/repository"
	"github.com/linskybing/formbuilder/internal/validation"
	"github.com/linskybing/formbuilder/pkg/response"
	"github.com/linskybing/formbuilder/pkg/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubmissionService struct {
	repos *repository.Repos
}

func NewSubmissionService(repos *repository.Repos) *SubmissionService {
	return &SubmissionService{repos: repos}
}

// validateResponses checks the recorded answers against the form's declared
// fields: every key must name a field, every value must match the field's
// type, and required fields need a non-empty string or a true checkbox.
func validateResponses(fields []form.Field, responses submission.ResponseMap) []validation.FieldError {
	byLabel := make(map[string]form.Field, len(fields))
	for _, fld := range fields {
		byLabel[fld.Label] = fld
	}

	var details []validation.FieldError

	for _, fld := range fields {
		val, ok := responses[fld.Label]
		if ok && val.Kind != fld.Type {
			msg := "must be a string"
			if fld.Type == form.FieldCheckbox {
				msg = "must be a boolean"
			}
			details = append(details, validation.FieldError{Field: "responses." + fld.Label, Message: msg})
			continue
		}
		if !fld.Required {
			continue
		}
		empty := !ok ||
			(fld.Type == form.FieldText && strings.TrimSpace(val.Text) == "") ||
			(fld.Type == form.FieldCheckbox && !val.Checked)
		if empty {
			details = append(details, validation.FieldError{Field: "responses." + fld.Label, Message: "is required"})
		}
	}

	var unknown []string
	for label := range responses {
		if _, ok := byLabel[label]; !ok {
			unknown = append(unknown, label)
		}
	}
	sort.Strings(unknown)
	for _, label := range unknown {
		details = append(details, validation.FieldError{Field: "responses." + label, Message: "does not match any field on this form"})
	}

	return details
}

// CreateSubmission rejects submissions against unknown or deleted forms:
// referential integrity is enforced at write time, not left advisory.
func (s *SubmissionService) CreateSubmission(c *gin.Context, formID string, input submission.SubmissionInputDTO) (*submission.FormSubmission, error) {
	if details := validation.Validate(input); len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}

	f, err := s.repos.Form.FindByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	if details := validateResponses(f.Fields, input.Responses); len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}

	sub := &submission.FormSubmission{
		FormID:    f.ID,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Responses: datatypes.NewJSONType(input.Responses),
	}
	if err := s.repos.Submission.Create(sub); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "submission", sub.ID, nil, sub, "submission created", s.repos.Audit)
	return sub, nil
}

func (s *SubmissionService) ListSubmissions(page, limit int) (*response.Paginated, error) {
	rows, total, err := s.repos.Submission.ListPaging(page, limit)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []submission.WithFormTitle{}
	}
	return &response.Paginated{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: utils.TotalPages(total, limit),
		Data:       rows,
	}, nil
}

func (s *SubmissionService) ListSubmissionsByForm(formID string, page, limit int) (*response.Paginated, error) {
	subs, total, err := s.repos.Submission.ListByFormPaging(formID, page, limit)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []submission.FormSubmission{}
	}
	return &response.Paginated{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: utils.TotalPages(total, limit),
		Data:       subs,
	}, nil
}

func (s *SubmissionService) GetSubmission(id string) (*submission.FormSubmission, error) {
	sub, err := s.repos.Submission.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (s *SubmissionService) DeleteSubmission(c *gin.Context, id string) error {
	sub, err := s.GetSubmission(id)
	if err != nil {
		return err
	}

	if err := s.repos.Submission.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubmissionNotFound
		}
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "submission", id, sub, nil, "submission deleted", s.repos.Audit)
	return nil
}
