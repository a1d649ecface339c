package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/dom/hxh-catalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v and verifies success
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse verifies the {"error": ...} body and status
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	var body struct {
		Error string `json:"error"`
	}
	AssertJSONResponse(t, resp, &body)
	assert.Equal(t, expectedMessage, body.Error, "error message mismatch")
}

// AssertSameFields compares every client-visible field except id and created_at
func AssertSameFields(t *testing.T, expected, actual *domain.Character) {
	t.Helper()

	assert.Equal(t, expected.Name, actual.Name, "name")
	assert.Equal(t, expected.ImageURL, actual.ImageURL, "image_url")
	assert.Equal(t, expected.Age, actual.Age, "age")
	assert.Equal(t, expected.HeightCM, actual.HeightCM, "height_cm")
	assert.Equal(t, expected.WeightKG, actual.WeightKG, "weight_kg")
	assert.Equal(t, expected.NenType, actual.NenType, "nen_type")
	assert.Equal(t, expected.Origin, actual.Origin, "origin")
	assert.Equal(t, expected.Notes, actual.Notes, "notes")
}
