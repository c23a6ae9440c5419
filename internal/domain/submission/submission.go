package submission

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/formbuilder/internal/domain/form"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FieldValue is a single recorded answer. Text fields carry a string,
// checkbox fields carry a bool. On the wire it is the bare string or bool,
// so stored responses round-trip exactly as submitted.
type FieldValue struct {
	Kind    form.FieldType
	Text    string
	Checked bool
}

func Text(s string) FieldValue {
	return FieldValue{Kind: form.FieldText, Text: s}
}

func Checked(b bool) FieldValue {
	return FieldValue{Kind: form.FieldCheckbox, Checked: b}
}

func (v FieldValue) MarshalJSON() ([]byte, error) {
	if v.Kind == form.FieldCheckbox {
		return json.Marshal(v.Checked)
	}
	return json.Marshal(v.Text)
}

func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = Checked(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Text(s)
		return nil
	}
	return errors.New("response value must be a string or a boolean")
}

// ResponseMap maps a field label to the recorded answer.
type ResponseMap map[string]FieldValue

type FormSubmission struct {
	ID        string                          `json:"id" gorm:"primaryKey;size:36"`
	FormID    string                          `json:"formId" gorm:"size:36;index;not null"`
	FirstName string                          `json:"firstName" gorm:"not null"`
	LastName  string                          `json:"lastName" gorm:"not null"`
	Responses datatypes.JSONType[ResponseMap] `json:"responses"`
	CreatedAt time.Time                       `json:"createdAt"`
	UpdatedAt time.Time                       `json:"updatedAt"`
}

func (s *FormSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// WithFormTitle is the denormalized row served by the list-all endpoint:
// the owning form's title is resolved at read time.
type WithFormTitle struct {
	ID        string                          `json:"id" gorm:"column:id"`
	FormID    string                          `json:"formId" gorm:"column:form_id"`
	FormTitle string                          `json:"formTitle" gorm:"column:form_title"`
	FirstName string                          `json:"firstName" gorm:"column:first_name"`
	LastName  string                          `json:"lastName" gorm:"column:last_name"`
	Responses datatypes.JSONType[ResponseMap] `json:"responses" gorm:"column:responses"`
	CreatedAt time.Time                       `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time                       `json:"updatedAt" gorm:"column:updated_at"`
}
