package schema

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDBIndexer ensures the indexes each collection relies on. It is run
// once at process start and by test suites against their scratch database.
type MongoDBIndexer struct {
	connURI  string
	database string
}

func NewMongoDBIndexer(connURI, database string) *MongoDBIndexer {
	return &MongoDBIndexer{
		connURI:  connURI,
		database: database,
	}
}

// IndexAll creates every index this service depends on: the 2dsphere index
// backing nearby queries and the unique user email index.
func (m *MongoDBIndexer) IndexAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.connURI))
	if err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}

	db := client.Database(m.database)

	if _, err := db.Collection(MasjidCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.M{"location": "2dsphere"},
	}); err != nil {
		log.WithField("prefix", "mongo").WithError(err).Error("fail to create masjid location index")
		return err
	}

	if _, err := db.Collection(UserCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		log.WithField("prefix", "mongo").WithError(err).Error("fail to create user email index")
		return err
	}

	return nil
}
