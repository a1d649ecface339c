package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/dom/hxh-catalog/internal/domain"
	"github.com/dom/hxh-catalog/internal/repository"
	"github.com/google/uuid"
)

// CharacterBuilder creates test characters with a builder pattern
type CharacterBuilder struct {
	character domain.Character
}

// NewCharacterBuilder creates a new CharacterBuilder with a unique name
func NewCharacterBuilder() *CharacterBuilder {
	name := fmt.Sprintf("hunter_%s", uuid.New().String()[:8])
	return &CharacterBuilder{
		character: domain.Character{
			Name:     name,
			ImageURL: fmt.Sprintf("https://example.com/%s.jpg", name),
		},
	}
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithImageURL sets the image URL
func (b *CharacterBuilder) WithImageURL(url string) *CharacterBuilder {
	b.character.ImageURL = url
	return b
}

// WithStats sets age, height and weight
func (b *CharacterBuilder) WithStats(age, heightCM, weightKG int) *CharacterBuilder {
	b.character.Age = &age
	b.character.HeightCM = &heightCM
	b.character.WeightKG = &weightKG
	return b
}

// WithNenType sets the Nen category
func (b *CharacterBuilder) WithNenType(nen domain.NenType) *CharacterBuilder {
	s := string(nen)
	b.character.NenType = &s
	return b
}

// WithOrigin sets the origin
func (b *CharacterBuilder) WithOrigin(origin string) *CharacterBuilder {
	b.character.Origin = &origin
	return b
}

// WithNotes sets the notes
func (b *CharacterBuilder) WithNotes(notes string) *CharacterBuilder {
	b.character.Notes = &notes
	return b
}

// Character returns the unsaved character
func (b *CharacterBuilder) Character() *domain.Character {
	c := b.character
	return &c
}

// Payload returns the character as a JSON write payload
func (b *CharacterBuilder) Payload() map[string]any {
	payload := map[string]any{
		"name":      b.character.Name,
		"image_url": b.character.ImageURL,
	}
	if b.character.Age != nil {
		payload["age"] = *b.character.Age
	}
	if b.character.HeightCM != nil {
		payload["height_cm"] = *b.character.HeightCM
	}
	if b.character.WeightKG != nil {
		payload["weight_kg"] = *b.character.WeightKG
	}
	if b.character.NenType != nil {
		payload["nen_type"] = *b.character.NenType
	}
	if b.character.Origin != nil {
		payload["origin"] = *b.character.Origin
	}
	if b.character.Notes != nil {
		payload["notes"] = *b.character.Notes
	}
	return payload
}

// Build stores the character through the repository
func (b *CharacterBuilder) Build(t *testing.T, repo repository.CharacterRepository) *domain.Character {
	t.Helper()

	character := b.Character()
	if err := repo.Create(context.Background(), character); err != nil {
		t.Fatalf("failed to create character: %v", err)
	}

	return character
}

// SeedCharacters creates N test characters, in creation order
func SeedCharacters(t *testing.T, repo repository.CharacterRepository, count int) []*domain.Character {
	t.Helper()

	characters := make([]*domain.Character, count)
	for i := 0; i < count; i++ {
		characters[i] = NewCharacterBuilder().
			WithName(fmt.Sprintf("Hunter %02d", i)).
			WithStats(12+i, 150+i, 40+i).
			Build(t, repo)
	}
	return characters
}

// NewJSONRequest creates an HTTP request with a JSON body
func NewJSONRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// Do sends a request and fails the test on transport errors
func Do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", req.Method, req.URL, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}
