package domain

import "time"

// Character is the single catalog entity. ID is backend-assigned and opaque to
// callers: a decimal integer for the relational store, an ObjectID hex string for
// the document store.
type Character struct {
	ID        string     `json:"id" copier:"-"`
	Name      string     `json:"name"`
	Age       *int       `json:"age"`
	HeightCM  *int       `json:"height_cm"`
	WeightKG  *int       `json:"weight_kg"`
	NenType   *string    `json:"nen_type"`
	Origin    *string    `json:"origin"`
	ImageURL  string     `json:"image_url"`
	Notes     *string    `json:"notes"`
	CreatedAt *time.Time `json:"created_at,omitempty" copier:"-"`
}

// CharacterInput is a normalized write payload. Create and Replace both take one.
type CharacterInput struct {
	Name     string
	Age      *int
	HeightCM *int
	WeightKG *int
	NenType  *string
	Origin   *string
	ImageURL string
	Notes    *string
}

// Character builds an unsaved Character carrying every field of the input.
func (in CharacterInput) Character() *Character {
	return &Character{
		Name:     in.Name,
		Age:      in.Age,
		HeightCM: in.HeightCM,
		WeightKG: in.WeightKG,
		NenType:  in.NenType,
		Origin:   in.Origin,
		ImageURL: in.ImageURL,
		Notes:    in.Notes,
	}
}

type NenType string

const (
	NenEnhancer    NenType = "Enhancer"
	NenTransmuter  NenType = "Transmuter"
	NenEmitter     NenType = "Emitter"
	NenConjurer    NenType = "Conjurer"
	NenManipulator NenType = "Manipulator"
	NenSpecialist  NenType = "Specialist"
)
