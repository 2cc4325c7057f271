package application

import (
	"encoding/json"
	"errors"
)

// ErrMalformedPayload is returned when the text-answer blob is not a flat
// JSON object of scalar values.
var ErrMalformedPayload = errors.New("invalid formData format, must be a flat JSON object")

// UploadedFile pairs a form-field label with the reference of a document
// already persisted to durable storage.
type UploadedFile struct {
	FieldLabel string
	Reference  string
}

// MergeSubmission parses the raw text-answer blob and overlays uploaded
// file references keyed by form-field label, file entries overwriting text
// answers of the same label. The second return value is the flat legacy
// document list in upload order. The merge is purely structural; required
// field and type validation happens later against the scheme's form fields.
func MergeSubmission(rawFormData []byte, files []UploadedFile) (map[string]interface{}, []string, error) {
	formData := map[string]interface{}{}
	if len(rawFormData) > 0 {
		if err := json.Unmarshal(rawFormData, &formData); err != nil {
			return nil, nil, ErrMalformedPayload
		}
	}

	for _, value := range formData {
		switch value.(type) {
		case map[string]interface{}, []interface{}:
			return nil, nil, ErrMalformedPayload
		}
	}

	legacyDocuments := make([]string, 0, len(files))
	for _, f := range files {
		formData[f.FieldLabel] = f.Reference
		legacyDocuments = append(legacyDocuments, f.Reference)
	}

	return formData, legacyDocuments, nil
}
