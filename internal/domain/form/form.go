package form

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldCheckbox FieldType = "checkbox"
)

// Field is embedded in a form's JSONB column; it has no identity or
// lifecycle of its own. Order inside the slice is the display/fill order.
type Field struct {
	Label    string    `json:"label" validate:"required"`
	Type     FieldType `json:"type" validate:"required,oneof=text checkbox"`
	Required bool      `json:"required"`
}

// NormalizedLabel is the key used for the uniqueness rule: labels are
// compared after trimming and lower-casing.
func (f Field) NormalizedLabel() string {
	return strings.ToLower(strings.TrimSpace(f.Label))
}

type Form struct {
	ID        string                     `json:"id" gorm:"primaryKey;size:36"`
	Title     string                     `json:"title" gorm:"not null"`
	Fields    datatypes.JSONSlice[Field] `json:"fields" gorm:"not null"`
	CreatedAt time.Time                  `json:"createdAt"`
	UpdatedAt time.Time                  `json:"updatedAt"`
	DeletedAt gorm.DeletedAt             `json:"-" gorm:"index"`
}

func (f *Form) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
