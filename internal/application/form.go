package application

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/formbuilder/internal/domain/form"
	"github.com/linskybing/formbuilder/internal/repository"
	"github.com/linskybing/formbuilder/internal/validation"
	"github.com/linskybing/formbuilder/pkg/response"
	"github.com/linskybing/formbuilder/pkg/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FormService struct {
	repos *repository.Repos
}

func NewFormService(repos *repository.Repos) *FormService {
	return &FormService{repos: repos}
}

// validateFormInput collects schema failures plus the cross-field rules:
// labels must be non-blank and unique within a form after trimming and
// lower-casing.
// The rule lives here, server-side, once; the UI only repeats it as a hint.
func validateFormInput(input *form.FormInputDTO) []validation.FieldError {
	details := validation.Validate(*input)

	seen := make(map[string]bool, len(input.Fields))
	for i, fld := range input.Fields {
		key := fld.NormalizedLabel()
		if key == "" {
			// blank after trimming counts as missing; fully empty labels
			// already failed the schema's required check
			if fld.Label != "" {
				details = append(details, validation.FieldError{
					Field:   fmt.Sprintf("fields[%d].label", i),
					Message: "is required",
				})
			}
			continue
		}
		if seen[key] {
			details = append(details, validation.FieldError{
				Field:   "fields",
				Message: fmt.Sprintf("duplicate field label %q", fld.Label),
			})
		}
		seen[key] = true
	}
	return details
}

func (s *FormService) CreateForm(c *gin.Context, input form.FormInputDTO) (*form.Form, error) {
	if details := validateFormInput(&input); len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}
	input.Normalize()

	f := &form.Form{
		Title:  input.Title,
		Fields: datatypes.JSONSlice[form.Field](input.Fields),
	}
	if err := s.repos.Form.Create(f); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "form", f.ID, nil, f, "form created", s.repos.Audit)
	return f, nil
}

func (s *FormService) ListForms(page, limit int) (*response.Paginated, error) {
	forms, total, err := s.repos.Form.ListPaging(page, limit)
	if err != nil {
		return nil, err
	}
	if forms == nil {
		forms = []form.Form{}
	}
	return &response.Paginated{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: utils.TotalPages(total, limit),
		Data:       forms,
	}, nil
}

func (s *FormService) GetForm(id string) (*form.Form, error) {
	f, err := s.repos.Form.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return f, nil
}

// UpdateForm re-validates the full payload and replaces title and fields
// wholesale; there is no partial-update semantics.
func (s *FormService) UpdateForm(c *gin.Context, id string, input form.FormInputDTO) (*form.Form, error) {
	if details := validateFormInput(&input); len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}
	input.Normalize()

	f, err := s.GetForm(id)
	if err != nil {
		return nil, err
	}

	old := *f
	f.Title = input.Title
	f.Fields = datatypes.JSONSlice[form.Field](input.Fields)
	if err := s.repos.Form.Update(f); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "form", f.ID, old, f, "form updated", s.repos.Audit)
	return f, nil
}

func (s *FormService) DeleteForm(c *gin.Context, id string) error {
	f, err := s.GetForm(id)
	if err != nil {
		return err
	}

	if err := s.repos.Form.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFormNotFound
		}
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "form", id, f, nil, "form deleted", s.repos.Audit)
	return nil
}
