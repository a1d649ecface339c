package mongodb

import (
	"context"
	"fmt"

	"github.com/dom/hxh-catalog/internal/repository"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewConnection dials uri and pings the primary so a bad URI fails at startup
// rather than on the first request.
func NewConnection(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}

	return client, nil
}

func NewRepositories(db *mongo.Database, collection string) *repository.Repositories {
	return &repository.Repositories{
		Character: NewCharacterRepository(db.Collection(collection)),
	}
}
