package client

import (
	"context"
	"fmt"

	"github.com/dom/hxh-catalog/internal/domain"
)

func ptr[T any](v T) *T { return &v }

const wikiImages = "https://static.wikia.nocookie.net/hunterxhunter/images/"

// SeedCharacters is the demo dataset: Hisoka and five Phantom Troupe members.
var SeedCharacters = []domain.Character{
	{
		Name: "Hisoka Morow", Age: ptr(28), HeightCM: ptr(187), WeightKG: ptr(91),
		NenType: ptr(string(domain.NenTransmuter)), Origin: ptr("Desconocido"),
		ImageURL: wikiImages + "9/9f/Hisoka_Design.png",
		Notes:    ptr("Mago asesino con fascinación por oponentes fuertes."),
	},
	{
		Name: "Chrollo Lucilfer", Age: ptr(26), HeightCM: ptr(177), WeightKG: ptr(68),
		NenType: ptr(string(domain.NenSpecialist)), Origin: ptr("Meteor City"),
		ImageURL: wikiImages + "0/09/Chrollo_Design.png",
		Notes:    ptr("Líder de la Brigada Fantasma."),
	},
	{
		Name: "Feitan Portor", Age: ptr(28), HeightCM: ptr(160), WeightKG: ptr(45),
		NenType: ptr(string(domain.NenTransmuter)), Origin: ptr("Meteor City"),
		ImageURL: wikiImages + "b/bc/Feitan_Design.png",
		Notes:    ptr("Torturador de la Brigada Fantasma."),
	},
	{
		Name: "Phinks Magcub", Age: ptr(33), HeightCM: ptr(185), WeightKG: ptr(91),
		NenType: ptr(string(domain.NenEnhancer)), Origin: ptr("Meteor City"),
		ImageURL: wikiImages + "2/2b/Phinks_Design.png",
		Notes:    ptr("Miembro de la Brigada Fantasma."),
	},
	{
		Name: "Machi Komacine", Age: ptr(24), HeightCM: ptr(159), WeightKG: ptr(49),
		NenType: ptr(string(domain.NenTransmuter)), Origin: ptr("Meteor City"),
		ImageURL: wikiImages + "8/83/Machi_Design.png",
		Notes:    ptr("Experta en hilos de Nen."),
	},
	{
		Name: "Shalnark", Age: ptr(24), HeightCM: ptr(170), WeightKG: ptr(60),
		NenType: ptr(string(domain.NenManipulator)), Origin: ptr("Meteor City"),
		ImageURL: wikiImages + "3/3a/Shalnark_Design.png",
		Notes:    ptr("Intelectual y estratega de la Brigada Fantasma."),
	},
}

// Seed loads SeedCharacters through the public contract. With reset, every
// existing character is deleted first.
func (c *Client) Seed(ctx context.Context, reset bool) ([]*domain.Character, error) {
	if reset {
		existing, err := c.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list characters: %w", err)
		}
		for _, character := range existing {
			if _, err := c.Delete(ctx, character.ID); err != nil && !IsNotFound(err) {
				return nil, fmt.Errorf("failed to delete %s: %w", character.ID, err)
			}
		}
	}

	created := make([]*domain.Character, 0, len(SeedCharacters))
	for i := range SeedCharacters {
		character, err := c.Create(ctx, &SeedCharacters[i])
		if err != nil {
			return created, fmt.Errorf("failed to create %s: %w", SeedCharacters[i].Name, err)
		}
		created = append(created, character)
	}
	return created, nil
}
