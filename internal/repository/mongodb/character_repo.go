package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/dom/hxh-catalog/internal/domain"
	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type characterDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Age      *int               `bson:"age"`
	HeightCM *int               `bson:"height_cm"`
	WeightKG *int               `bson:"weight_kg"`
	NenType  *string            `bson:"nen_type"`
	Origin   *string            `bson:"origin"`
	ImageURL string             `bson:"image_url"`
	Notes    *string            `bson:"notes"`
}

type characterRepository struct {
	collection *mongo.Collection
}

func NewCharacterRepository(collection *mongo.Collection) *characterRepository {
	return &characterRepository{collection: collection}
}

func (r *characterRepository) List(ctx context.Context) ([]*domain.Character, error) {
	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer cursor.Close(ctx)

	characters := []*domain.Character{}
	for cursor.Next(ctx) {
		var doc characterDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode character: %w", err)
		}
		c, err := toCharacter(&doc)
		if err != nil {
			return nil, err
		}
		characters = append(characters, c)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	return characters, nil
}

func (r *characterRepository) GetByID(ctx context.Context, id string) (*domain.Character, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCharacterNotFound
	}

	var doc characterDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		return nil, notFoundOr("get character", err)
	}
	return toCharacter(&doc)
}

func (r *characterRepository) Create(ctx context.Context, character *domain.Character) error {
	res, err := r.collection.InsertOne(ctx, fromCharacter(character))
	if err != nil {
		return fmt.Errorf("create character: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("create character: unexpected inserted id %v", res.InsertedID)
	}
	character.ID = oid.Hex()
	character.CreatedAt = nil
	return nil
}

// Replace swaps the whole document atomically and returns the post-image.
func (r *characterRepository) Replace(ctx context.Context, id string, character *domain.Character) (*domain.Character, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCharacterNotFound
	}

	var doc characterDocument
	err = r.collection.FindOneAndReplace(ctx,
		bson.M{"_id": oid},
		fromCharacter(character),
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, notFoundOr("replace character", err)
	}
	return toCharacter(&doc)
}

// Delete removes the document atomically and returns the pre-image.
func (r *characterRepository) Delete(ctx context.Context, id string) (*domain.Character, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCharacterNotFound
	}

	var doc characterDocument
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		return nil, notFoundOr("delete character", err)
	}
	return toCharacter(&doc)
}

func notFoundOr(op string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrCharacterNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func toCharacter(doc *characterDocument) (*domain.Character, error) {
	var c domain.Character
	if err := copier.Copy(&c, doc); err != nil {
		return nil, fmt.Errorf("map character document: %w", err)
	}
	c.ID = doc.ID.Hex()
	return &c, nil
}

// fromCharacter leaves _id unset; the driver assigns one on insert and a
// replacement document without _id keeps the existing one.
func fromCharacter(c *domain.Character) *characterDocument {
	return &characterDocument{
		Name:     c.Name,
		Age:      c.Age,
		HeightCM: c.HeightCM,
		WeightKG: c.WeightKG,
		NenType:  c.NenType,
		Origin:   c.Origin,
		ImageURL: c.ImageURL,
		Notes:    c.Notes,
	}
}
