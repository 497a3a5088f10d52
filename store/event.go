package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mud-ali/DIHacks2025/schema"
)

type Event interface {
	CreateEvent(event *schema.Event) (*schema.Event, error)
	ListEvents() ([]schema.Event, error)
}

func (m *mongoDB) CreateEvent(event *schema.Event) (*schema.Event, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.EventCollection)

	result, err := c.InsertOne(ctx, event)
	if err != nil {
		return nil, err
	}

	event.ID = result.InsertedID.(primitive.ObjectID)
	return event, nil
}

func (m *mongoDB) ListEvents() ([]schema.Event, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.EventCollection)

	cursor, err := c.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"start_time": 1}))
	if err != nil {
		return nil, err
	}

	events := []schema.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}

	return events, nil
}
