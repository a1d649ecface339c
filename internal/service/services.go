package service

import (
	"github.com/dom/hxh-catalog/internal/repository"
)

type Services struct {
	Character *CharacterService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Character: NewCharacterService(repos.Character),
	}
}
