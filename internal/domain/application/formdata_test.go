package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSubmission_TextAndFiles(t *testing.T) {
	raw := []byte(`{"Crop Type": "Rabi", "Land Holding (acres)": 2.5}`)
	files := []UploadedFile{
		{FieldLabel: "Land Record", Reference: "documents/abc.pdf"},
		{FieldLabel: "Income Certificate", Reference: "documents/def.pdf"},
	}

	formData, docs, err := MergeSubmission(raw, files)
	require.NoError(t, err)

	assert.Equal(t, "Rabi", formData["Crop Type"])
	assert.Equal(t, 2.5, formData["Land Holding (acres)"])
	assert.Equal(t, "documents/abc.pdf", formData["Land Record"])
	assert.Equal(t, []string{"documents/abc.pdf", "documents/def.pdf"}, docs)
}

func TestMergeSubmission_EmptyPayload(t *testing.T) {
	formData, docs, err := MergeSubmission(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, formData)
	assert.Empty(t, docs)
}

func TestMergeSubmission_FileOverwritesTextAnswer(t *testing.T) {
	raw := []byte(`{"Land Record": "typed by hand"}`)
	files := []UploadedFile{{FieldLabel: "Land Record", Reference: "documents/real.pdf"}}

	formData, _, err := MergeSubmission(raw, files)
	require.NoError(t, err)
	assert.Equal(t, "documents/real.pdf", formData["Land Record"])
}

func TestMergeSubmission_RejectsInvalidJSON(t *testing.T) {
	_, _, err := MergeSubmission([]byte(`not json`), nil)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestMergeSubmission_RejectsNonObject(t *testing.T) {
	_, _, err := MergeSubmission([]byte(`["a", "b"]`), nil)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestMergeSubmission_RejectsNestedValues(t *testing.T) {
	_, _, err := MergeSubmission([]byte(`{"answers": {"nested": true}}`), nil)
	assert.ErrorIs(t, err, ErrMalformedPayload)

	_, _, err = MergeSubmission([]byte(`{"answers": [1, 2]}`), nil)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestStatus_Terminal(t *testing.T) {
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusMoreInfoRequired.Terminal())
}

func TestStatus_ValidDecision(t *testing.T) {
	assert.True(t, StatusApproved.ValidDecision())
	assert.True(t, StatusRejected.ValidDecision())
	assert.True(t, StatusMoreInfoRequired.ValidDecision())
	assert.False(t, StatusPending.ValidDecision())
	assert.False(t, Status("Escalated").ValidDecision())
}
