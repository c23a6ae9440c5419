package validation_test

import (
	"testing"

	"github.com/linskybing/formbuilder/internal/domain/form"
	"github.com/linskybing/formbuilder/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestValidateCollectsAllFailures(t *testing.T) {
	input := form.FormInputDTO{
		Fields: []form.Field{
			{Type: form.FieldText},
			{Label: "Age", Type: "number"},
		},
	}

	details := validation.Validate(input)

	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.Field)
	}
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "fields[0].label")
	assert.Contains(t, fields, "fields[1].type")
}

func TestValidateUsesJSONNames(t *testing.T) {
	input := form.FormInputDTO{Fields: []form.Field{{Label: "Name", Type: form.FieldText}}}

	details := validation.Validate(input)

	assert.Len(t, details, 1)
	assert.Equal(t, "title", details[0].Field)
	assert.Equal(t, "is required", details[0].Message)
}

func TestValidateMessages(t *testing.T) {
	t.Run("min on empty fields", func(t *testing.T) {
		input := form.FormInputDTO{Title: "Survey", Fields: []form.Field{}}

		details := validation.Validate(input)

		assert.Len(t, details, 1)
		assert.Equal(t, "fields", details[0].Field)
		assert.Equal(t, "must contain at least 1 item(s)", details[0].Message)
	})

	t.Run("oneof on bad type", func(t *testing.T) {
		input := form.FormInputDTO{Title: "Survey", Fields: []form.Field{{Label: "Age", Type: "number"}}}

		details := validation.Validate(input)

		assert.Len(t, details, 1)
		assert.Equal(t, "fields[0].type", details[0].Field)
		assert.Equal(t, "must be one of [text, checkbox]", details[0].Message)
	})
}

func TestValidatePassesCleanPayload(t *testing.T) {
	input := form.FormInputDTO{
		Title: "Survey",
		Fields: []form.Field{
			{Label: "Name", Type: form.FieldText, Required: true},
			{Label: "Subscribe", Type: form.FieldCheckbox},
		},
	}

	assert.Empty(t, validation.Validate(input))
}
