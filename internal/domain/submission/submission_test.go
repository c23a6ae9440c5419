package submission_test

import (
	"encoding/json"
	"testing"

	"github.com/linskybing/formbuilder/internal/domain/form"
	"github.com/linskybing/formbuilder/internal/domain/submission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseMapWireFormat(t *testing.T) {
	responses := submission.ResponseMap{
		"Name":      submission.Text("Ada"),
		"Subscribe": submission.Checked(true),
		"Notes":     submission.Text(""),
	}

	raw, err := json.Marshal(responses)
	require.NoError(t, err)

	// values stay bare strings and bools, no wrapper object
	var plain map[string]any
	require.NoError(t, json.Unmarshal(raw, &plain))
	assert.Equal(t, "Ada", plain["Name"])
	assert.Equal(t, true, plain["Subscribe"])
	assert.Equal(t, "", plain["Notes"])

	var decoded submission.ResponseMap
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, responses["Name"].Text, decoded["Name"].Text)
	assert.Equal(t, form.FieldText, decoded["Name"].Kind)
	assert.True(t, decoded["Subscribe"].Checked)
	assert.Equal(t, form.FieldCheckbox, decoded["Subscribe"].Kind)
}

func TestFieldValueRejectsOtherTypes(t *testing.T) {
	var v submission.FieldValue

	assert.Error(t, json.Unmarshal([]byte(`42`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`["x"]`), &v))
}
