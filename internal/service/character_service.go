package service

import (
	"context"

	"github.com/dom/hxh-catalog/internal/domain"
	"github.com/dom/hxh-catalog/internal/repository"
)

// CharacterService is backend-agnostic: it only sees the capability interface.
// Write payloads are validated here, so a rejected payload never reaches storage.
type CharacterService struct {
	characterRepo repository.CharacterRepository
}

func NewCharacterService(characterRepo repository.CharacterRepository) *CharacterService {
	return &CharacterService{characterRepo: characterRepo}
}

func (s *CharacterService) ListCharacters(ctx context.Context) ([]*domain.Character, error) {
	characters, err := s.characterRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if characters == nil {
		characters = []*domain.Character{}
	}
	return characters, nil
}

func (s *CharacterService) GetCharacter(ctx context.Context, id string) (*domain.Character, error) {
	return s.characterRepo.GetByID(ctx, id)
}

func (s *CharacterService) CreateCharacter(ctx context.Context, payload map[string]any) (*domain.Character, error) {
	input, err := domain.ParseCharacterInput(payload)
	if err != nil {
		return nil, err
	}

	character := input.Character()
	if err := s.characterRepo.Create(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}

func (s *CharacterService) ReplaceCharacter(ctx context.Context, id string, payload map[string]any) (*domain.Character, error) {
	input, err := domain.ParseCharacterInput(payload)
	if err != nil {
		return nil, err
	}
	return s.characterRepo.Replace(ctx, id, input.Character())
}

func (s *CharacterService) DeleteCharacter(ctx context.Context, id string) (*domain.Character, error) {
	return s.characterRepo.Delete(ctx, id)
}
