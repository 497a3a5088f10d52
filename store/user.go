package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mud-ali/DIHacks2025/schema"
)

var (
	ErrUserNotFound = fmt.Errorf("user not found")
	ErrEmailTaken   = fmt.Errorf("user with this email already exists")
)

type User interface {
	CreateUser(user *schema.User) (*schema.User, error)
	GetUserByEmail(email string) (*schema.User, error)
	GetUserByID(id primitive.ObjectID) (*schema.User, error)
	GrantMasjidAdmin(userID, masjidID primitive.ObjectID) error
}

func (m *mongoDB) CreateUser(user *schema.User) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	count, err := c.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	user.CreatedAt = time.Now().Unix()
	if user.Admin == nil {
		user.Admin = []primitive.ObjectID{}
	}

	result, err := c.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (m *mongoDB) GetUserByEmail(email string) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	var user schema.User
	if err := c.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (m *mongoDB) GetUserByID(id primitive.ObjectID) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	var user schema.User
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// GrantMasjidAdmin appends a masjid to the user's administered list. Used
// when a signed-in user registers a new masjid.
func (m *mongoDB) GrantMasjidAdmin(userID, masjidID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"admin": masjidID}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}
