package db

import (
	"context"
	"time"

	"github.com/rentx-lk/rentx-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserCollection stores accounts in the users collection. Emails are
// kept in normalized form and are unique through the index created by
// EnsureIndexes.
type MongoUserCollection struct {
	Collection *mongo.Collection
}

func (c *MongoUserCollection) InsertUser(ctx context.Context, user models.User) error {
	now := time.Now().UTC()
	user.Email = models.NormalizeEmail(user.Email)
	user.CreatedAt, user.UpdatedAt = now, now
	user.IsActive = true

	_, err := c.Collection.InsertOne(ctx, user)
	return mapMongoErr(err)
}

func (c *MongoUserCollection) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return c.findOne(ctx, bson.M{"_id": oid})
}

func (c *MongoUserCollection) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return c.findOne(ctx, bson.M{"email": models.NormalizeEmail(email)})
}

func (c *MongoUserCollection) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := c.Collection.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, mapMongoErr(err)
	}
	return &user, nil
}

// SetPassword stores a new password hash.
func (c *MongoUserCollection) SetPassword(ctx context.Context, id, hash string) error {
	return c.set(ctx, id, bson.M{"password_hash": hash})
}

// UpdateLastLogin stamps the account with the current time.
func (c *MongoUserCollection) UpdateLastLogin(ctx context.Context, id string) error {
	return c.set(ctx, id, bson.M{"last_login": time.Now().UTC()})
}

// set applies fields to one account and bumps updated_at.
func (c *MongoUserCollection) set(ctx context.Context, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	fields["updated_at"] = time.Now().UTC()

	result, err := c.Collection.UpdateByID(ctx, oid, bson.M{"$set": fields})
	if err != nil {
		return mapMongoErr(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
