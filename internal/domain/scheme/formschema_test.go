package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func validate(t *testing.T, fields []FormField, payload map[string]interface{}) *gojsonschema.Result {
	t.Helper()
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(FormSchema(fields)),
		gojsonschema.NewGoLoader(payload),
	)
	require.NoError(t, err)
	return result
}

func TestFormSchema_AcceptsConformingPayload(t *testing.T) {
	fields := []FormField{
		{Label: "Land Holding (acres)", FieldType: FieldTypeNumber, Required: true},
		{Label: "Crop Type", FieldType: FieldTypeSelect, Options: []string{"Kharif", "Rabi"}, Required: true},
		{Label: "Remarks", FieldType: FieldTypeText},
	}

	result := validate(t, fields, map[string]interface{}{
		"Land Holding (acres)": 2.5,
		"Crop Type":            "Rabi",
	})
	assert.True(t, result.Valid())
}

func TestFormSchema_MissingRequiredField(t *testing.T) {
	fields := []FormField{
		{Label: "Identity Proof", FieldType: FieldTypeFile, Required: true},
	}

	result := validate(t, fields, map[string]interface{}{})
	assert.False(t, result.Valid())
}

func TestFormSchema_OptionalTextMayBeEmpty(t *testing.T) {
	fields := []FormField{
		{Label: "Aadhaar Card", FieldType: FieldTypeFile, Required: true},
		{Label: "Remarks", FieldType: FieldTypeText},
	}

	result := validate(t, fields, map[string]interface{}{
		"Aadhaar Card": "documents/abc123.pdf",
		"Remarks":      "",
	})
	assert.True(t, result.Valid())
}

func TestFormSchema_RequiredTextRejectsEmpty(t *testing.T) {
	fields := []FormField{
		{Label: "Bank Account Number", FieldType: FieldTypeText, Required: true},
	}

	result := validate(t, fields, map[string]interface{}{"Bank Account Number": ""})
	assert.False(t, result.Valid())
}

func TestFormSchema_RejectsUnknownKeys(t *testing.T) {
	fields := []FormField{
		{Label: "Remarks", FieldType: FieldTypeText},
	}

	result := validate(t, fields, map[string]interface{}{
		"Remarks":  "fine",
		"Injected": "value",
	})
	assert.False(t, result.Valid())
}

func TestFormSchema_SelectEnforcesOptions(t *testing.T) {
	fields := []FormField{
		{Label: "Crop Type", FieldType: FieldTypeSelect, Options: []string{"Kharif", "Rabi"}, Required: true},
	}

	result := validate(t, fields, map[string]interface{}{"Crop Type": "Zaid"})
	assert.False(t, result.Valid())
}

func TestFormSchema_NumberRejectsString(t *testing.T) {
	fields := []FormField{
		{Label: "Requested Amount", FieldType: FieldTypeNumber, Required: true},
	}

	result := validate(t, fields, map[string]interface{}{"Requested Amount": "10000"})
	assert.False(t, result.Valid())
}
