package application_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/formbuilder/internal/application"
	"github.com/linskybing/formbuilder/internal/domain/form"
	"github.com/linskybing/formbuilder/internal/domain/submission"
	"github.com/linskybing/formbuilder/internal/repository"
	"github.com/linskybing/formbuilder/internal/repository/mock_repository"
	"github.com/linskybing/formbuilder/internal/validation"
	"github.com/linskybing/formbuilder/pkg/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupSubmissionMocks(t *testing.T) (*application.SubmissionService,
	*mock_repository.MockFormRepo,
	*mock_repository.MockSubmissionRepo,
	*gin.Context) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock_repository.NewMockFormRepo(ctrl)
	mockSubmission := mock_repository.NewMockSubmissionRepo(ctrl)
	mockAudit := mock_repository.NewMockAuditRepo(ctrl)

	repos := &repository.Repos{
		Form:       mockForm,
		Submission: mockSubmission,
		Audit:      mockAudit,
	}

	svc := application.NewSubmissionService(repos)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	// mock utils globally
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repo repository.AuditRepo) {
	}

	return svc, mockForm, mockSubmission, c
}

func surveyForm() *form.Form {
	return &form.Form{
		ID:    "f-1",
		Title: "Survey",
		Fields: datatypes.JSONSlice[form.Field]{
			{Label: "Name", Type: form.FieldText, Required: true},
			{Label: "Subscribe", Type: form.FieldCheckbox},
		},
	}
}

func validInput() submission.SubmissionInputDTO {
	return submission.SubmissionInputDTO{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Responses: submission.ResponseMap{
			"Name":      submission.Text("Ada"),
			"Subscribe": submission.Checked(true),
		},
	}
}

func detailFields(err error, t *testing.T) []validation.FieldError {
	t.Helper()
	var verr *application.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	return verr.Details
}

func TestSubmissionServiceCreate(t *testing.T) {
	svc, mockForm, mockSubmission, c := setupSubmissionMocks(t)

	t.Run("success", func(t *testing.T) {
		mockForm.EXPECT().FindByID("f-1").Return(surveyForm(), nil)
		mockSubmission.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *submission.FormSubmission) error {
			s.ID = "s-1"
			return nil
		})

		sub, err := svc.CreateSubmission(c, "f-1", validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sub.FormID != "f-1" {
			t.Fatalf("expected form id f-1, got %s", sub.FormID)
		}
		responses := sub.Responses.Data()
		if responses["Name"].Text != "Ada" {
			t.Fatalf("expected text answer to survive, got %+v", responses["Name"])
		}
		if !responses["Subscribe"].Checked {
			t.Fatal("expected checkbox answer to survive")
		}
	})

	t.Run("trims respondent names", func(t *testing.T) {
		input := validInput()
		input.FirstName = "  Ada  "
		input.LastName = " Lovelace "

		mockForm.EXPECT().FindByID("f-1").Return(surveyForm(), nil)
		mockSubmission.EXPECT().Create(gomock.Any()).Return(nil)

		sub, err := svc.CreateSubmission(c, "f-1", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sub.FirstName != "Ada" || sub.LastName != "Lovelace" {
			t.Fatalf("expected trimmed names, got %q %q", sub.FirstName, sub.LastName)
		}
	})

	t.Run("unknown form", func(t *testing.T) {
		mockForm.EXPECT().FindByID("missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.CreateSubmission(c, "missing", validInput())
		if !errors.Is(err, application.ErrFormNotFound) {
			t.Fatalf("expected ErrFormNotFound, got %v", err)
		}
	})

	t.Run("missing respondent name", func(t *testing.T) {
		input := validInput()
		input.FirstName = ""

		details := detailFields(func() error {
			_, err := svc.CreateSubmission(c, "f-1", input)
			return err
		}(), t)
		if len(details) != 1 || details[0].Field != "firstName" {
			t.Fatalf("unexpected details: %+v", details)
		}
	})

	t.Run("required text left blank", func(t *testing.T) {
		input := validInput()
		input.Responses["Name"] = submission.Text("   ")

		mockForm.EXPECT().FindByID("f-1").Return(surveyForm(), nil)

		details := detailFields(func() error {
			_, err := svc.CreateSubmission(c, "f-1", input)
			return err
		}(), t)
		if len(details) != 1 || details[0].Field != "responses.Name" || details[0].Message != "is required" {
			t.Fatalf("unexpected details: %+v", details)
		}
	})

	t.Run("required field absent", func(t *testing.T) {
		input := validInput()
		delete(input.Responses, "Name")

		mockForm.EXPECT().FindByID("f-1").Return(surveyForm(), nil)

		details := detailFields(func() error {
			_, err := svc.CreateSubmission(c, "f-1", input)
			return err
		}(), t)
		if len(details) != 1 || details[0].Field != "responses.Name" {
			t.Fatalf("unexpected details: %+v", details)
		}
	})

	t.Run("type mismatch on text field", func(t *testing.T) {
		input := validInput()
		input.Responses["Name"] = submission.Checked(true)

		mockForm.EXPECT().FindByID("f-1").Return(surveyForm(), nil)

		details := detailFields(func() error {
			_, err := svc.CreateSubmission(c, "f-1", input)
			return err
		}(), t)
		if len(details) != 1 || details[0].Message != "must be a string" {
			t.Fatalf("unexpected details: %+v", details)
		}
	})

	t.Run("type mismatch on checkbox field", func(t *testing.T) {
		input := validInput()
		input.Responses["Subscribe"] = submission.Text("yes")

		mockForm.EXPECT().FindByID("f-1").Return(surveyForm(), nil)

		details := detailFields(func() error {
			_, err := svc.CreateSubmission(c, "f-1", input)
			return err
		}(), t)
		if len(details) != 1 || details[0].Message != "must be a boolean" {
			t.Fatalf("unexpected details: %+v", details)
		}
	})

	t.Run("unknown response keys reported in order", func(t *testing.T) {
		input := validInput()
		input.Responses["Zebra"] = submission.Text("x")
		input.Responses["Apple"] = submission.Text("y")

		mockForm.EXPECT().FindByID("f-1").Return(surveyForm(), nil)

		details := detailFields(func() error {
			_, err := svc.CreateSubmission(c, "f-1", input)
			return err
		}(), t)
		if len(details) != 2 {
			t.Fatalf("expected 2 unknown keys, got %+v", details)
		}
		if details[0].Field != "responses.Apple" || details[1].Field != "responses.Zebra" {
			t.Fatalf("expected sorted unknown keys, got %+v", details)
		}
	})

	t.Run("optional unchecked checkbox is fine", func(t *testing.T) {
		input := validInput()
		input.Responses["Subscribe"] = submission.Checked(false)

		mockForm.EXPECT().FindByID("f-1").Return(surveyForm(), nil)
		mockSubmission.EXPECT().Create(gomock.Any()).Return(nil)

		if _, err := svc.CreateSubmission(c, "f-1", input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSubmissionServiceReadDelete(t *testing.T) {
	svc, _, mockSubmission, c := setupSubmissionMocks(t)

	t.Run("ListSubmissions pagination envelope", func(t *testing.T) {
		rows := []submission.WithFormTitle{{ID: "s-1", FormTitle: "Survey"}}
		mockSubmission.EXPECT().ListPaging(2, 1).Return(rows, int64(3), nil)

		result, err := svc.ListSubmissions(2, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Page != 2 || result.TotalPages != 3 {
			t.Fatalf("unexpected envelope: %+v", result)
		}
	})

	t.Run("ListSubmissionsByForm empty page", func(t *testing.T) {
		mockSubmission.EXPECT().ListByFormPaging("f-1", 9, 10).Return(nil, int64(0), nil)

		result, err := svc.ListSubmissionsByForm("f-1", 9, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, ok := result.Data.([]submission.FormSubmission)
		if !ok || len(data) != 0 {
			t.Fatalf("expected empty slice data, got %#v", result.Data)
		}
	})

	t.Run("GetSubmission not found", func(t *testing.T) {
		mockSubmission.EXPECT().FindByID("missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetSubmission("missing")
		if !errors.Is(err, application.ErrSubmissionNotFound) {
			t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
		}
	})

	t.Run("DeleteSubmission success", func(t *testing.T) {
		sub := &submission.FormSubmission{ID: "s-1", FormID: "f-1"}
		mockSubmission.EXPECT().FindByID("s-1").Return(sub, nil)
		mockSubmission.EXPECT().Delete("s-1").Return(nil)

		if err := svc.DeleteSubmission(c, "s-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("DeleteSubmission not found", func(t *testing.T) {
		mockSubmission.EXPECT().FindByID("missing").Return(nil, gorm.ErrRecordNotFound)

		err := svc.DeleteSubmission(c, "missing")
		if !errors.Is(err, application.ErrSubmissionNotFound) {
			t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
		}
	})
}
