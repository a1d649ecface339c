package repository

import (
	"context"

	"github.com/dom/hxh-catalog/internal/domain"
)

// CharacterRepository is implemented once per storage backend. Identifiers cross
// this boundary as opaque strings; an id the backend cannot parse is reported as
// domain.ErrCharacterNotFound, the same as an id that parses but matches nothing.
type CharacterRepository interface {
	List(ctx context.Context) ([]*domain.Character, error)
	GetByID(ctx context.Context, id string) (*domain.Character, error)
	Create(ctx context.Context, character *domain.Character) error
	Replace(ctx context.Context, id string, character *domain.Character) (*domain.Character, error)
	Delete(ctx context.Context, id string) (*domain.Character, error)
}

type Repositories struct {
	Character CharacterRepository
}
