package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// defaultTimeout bounds every single-document mongo operation.
var defaultTimeout = 5 * time.Second

// MongoStore is the persistence surface of the service.
type MongoStore interface {
	Masjid
	User
	Event

	Ping() error
	Close()
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoStore wraps a connected mongo client.
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.client.Ping(ctx, readpref.Primary())
}

func (m *mongoDB) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_ = m.client.Disconnect(ctx)
}
