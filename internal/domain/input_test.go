package domain_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dom/hxh-catalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) map[string]any {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()

	var payload map[string]any
	require.NoError(t, dec.Decode(&payload))
	return payload
}

func TestParseCharacterInput_RequiredFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "missing name", body: `{"image_url":"http://x/k.jpg"}`},
		{name: "missing image_url", body: `{"name":"Kurapika"}`},
		{name: "empty name", body: `{"name":"","image_url":"http://x/k.jpg"}`},
		{name: "null image_url", body: `{"name":"Kurapika","image_url":null}`},
		{name: "missing required wins over bad optional", body: `{"name":"Kurapika","age":"old"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseCharacterInput(decode(t, tt.body))
			assert.ErrorIs(t, err, domain.ErrMissingRequiredFields)
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestParseCharacterInput_Normalization(t *testing.T) {
	body := `{
		"name": "Kurapika",
		"image_url": "http://x/k.jpg",
		"age": 17,
		"height_cm": "171",
		"weight_kg": "",
		"nen_type": "Conjurer",
		"origin": null,
		"notes": "",
		"hunter_license": true,
		"_id": "ignored"
	}`

	in, err := domain.ParseCharacterInput(decode(t, body))
	require.NoError(t, err)

	assert.Equal(t, "Kurapika", in.Name)
	assert.Equal(t, "http://x/k.jpg", in.ImageURL)
	require.NotNil(t, in.Age)
	assert.Equal(t, 17, *in.Age)
	require.NotNil(t, in.HeightCM)
	assert.Equal(t, 171, *in.HeightCM)
	assert.Nil(t, in.WeightKG)
	require.NotNil(t, in.NenType)
	assert.Equal(t, "Conjurer", *in.NenType)
	assert.Nil(t, in.Origin)
	require.NotNil(t, in.Notes)
	assert.Equal(t, "", *in.Notes)

	c := in.Character()
	assert.Empty(t, c.ID)
	assert.Nil(t, c.CreatedAt)
	assert.Equal(t, in.Age, c.Age)
}

func TestParseCharacterInput_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		field   string
		message string
	}{
		{
			name:    "fractional age",
			body:    `{"name":"Gon","image_url":"u","age":12.5}`,
			field:   "age",
			message: "age must be an integer",
		},
		{
			name:    "non numeric height",
			body:    `{"name":"Gon","image_url":"u","height_cm":"tall"}`,
			field:   "height_cm",
			message: "height_cm must be an integer",
		},
		{
			name:    "boolean weight",
			body:    `{"name":"Gon","image_url":"u","weight_kg":true}`,
			field:   "weight_kg",
			message: "weight_kg must be an integer",
		},
		{
			name:    "numeric name",
			body:    `{"name":42,"image_url":"u"}`,
			field:   "name",
			message: "name must be a string",
		},
		{
			name:    "object notes",
			body:    `{"name":"Gon","image_url":"u","notes":{"a":1}}`,
			field:   "notes",
			message: "notes must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseCharacterInput(decode(t, tt.body))
			require.Error(t, err)

			var fe *domain.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, tt.message, err.Error())
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestParseCharacterInput_PlainFloats(t *testing.T) {
	// Payloads decoded without UseNumber carry float64.
	in, err := domain.ParseCharacterInput(map[string]any{
		"name":      "Killua",
		"image_url": "u",
		"age":       float64(12),
	})
	require.NoError(t, err)
	require.NotNil(t, in.Age)
	assert.Equal(t, 12, *in.Age)
}
