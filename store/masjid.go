package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mud-ali/DIHacks2025/schema"
)

var (
	ErrMasjidNotFound = fmt.Errorf("masjid not found")
)

type Masjid interface {
	CreateMasjid(masjid *schema.Masjid) (*schema.Masjid, error)
	ListMasjid() ([]schema.Masjid, error)
	GetMasjid(id primitive.ObjectID) (*schema.Masjid, error)
	UpdateMasjid(id primitive.ObjectID, update bson.M) (*schema.Masjid, error)
	NearbyMasjid(loc schema.Location, limit int64) ([]schema.Masjid, error)
}

// CreateMasjid inserts a new record. The caller has already run schema
// validation and coordinate resolution; every stored masjid carries a valid
// coordinate.
func (m *mongoDB) CreateMasjid(masjid *schema.Masjid) (*schema.Masjid, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.MasjidCollection)

	now := time.Now().Unix()
	masjid.CreatedAt = now
	masjid.UpdatedAt = now
	masjid.Location = schema.NewGeoJSONPoint(schema.Location{
		Latitude:  masjid.Latitude,
		Longitude: masjid.Longitude,
	})

	result, err := c.InsertOne(ctx, masjid)
	if err != nil {
		return nil, err
	}

	masjid.ID = result.InsertedID.(primitive.ObjectID)
	return masjid, nil
}

// ListMasjid returns every registered masjid in insertion order.
func (m *mongoDB) ListMasjid() ([]schema.Masjid, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.MasjidCollection)

	cursor, err := c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	masajid := []schema.Masjid{}
	if err := cursor.All(ctx, &masajid); err != nil {
		return nil, err
	}

	return masajid, nil
}

func (m *mongoDB) GetMasjid(id primitive.ObjectID) (*schema.Masjid, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.MasjidCollection)

	var masjid schema.Masjid
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&masjid); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMasjidNotFound
		}
		return nil, err
	}

	return &masjid, nil
}

// UpdateMasjid applies a partial update and returns the new document. When
// the update touches coordinates, the GeoJSON mirror is refreshed from the
// final values so the 2dsphere index never drifts.
func (m *mongoDB) UpdateMasjid(id primitive.ObjectID, update bson.M) (*schema.Masjid, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.MasjidCollection)

	update["updated_at"] = time.Now().Unix()

	var updated schema.Masjid
	err := c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMasjidNotFound
		}
		return nil, err
	}

	_, latChanged := update["latitude"]
	_, lngChanged := update["longitude"]
	if latChanged || lngChanged {
		location := schema.NewGeoJSONPoint(schema.Location{
			Latitude:  updated.Latitude,
			Longitude: updated.Longitude,
		})
		if err := c.FindOneAndUpdate(ctx,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{"location": location}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated); err != nil {
			return nil, err
		}
	}

	return &updated, nil
}

// NearbyMasjid lists masajid around loc ordered by proximity, annotated with
// kilometer distances for display.
func (m *mongoDB) NearbyMasjid(loc schema.Location, limit int64) ([]schema.Masjid, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.MasjidCollection)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$geoNear", Value: bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": []float64{loc.Longitude, loc.Latitude},
			},
			"distanceField": "distance",
			"spherical":     true,
		}}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	opts := options.Aggregate().SetMaxTime(5 * time.Second)
	cursor, err := c.Aggregate(ctx, pipeline, opts)
	if err != nil {
		log.WithField("prefix", "mongo").WithError(err).Warn("can not aggregate nearby masajid")
		return nil, err
	}

	masajid := []schema.Masjid{}
	for cursor.Next(ctx) {
		var masjid schema.Masjid
		if err := cursor.Decode(&masjid); err != nil {
			log.WithField("prefix", "mongo").WithError(err).Warn("nearby masjid decode fail")
			continue
		}
		if masjid.Distance != nil {
			// $geoNear reports meters
			km := *masjid.Distance / 1000
			masjid.Distance = &km
		}
		masajid = append(masajid, masjid)
	}

	return masajid, nil
}
