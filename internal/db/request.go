package db

import (
	"context"
	"fmt"
	"time"

	"github.com/aquadrill/fieldops/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRequestCollection implements RequestCollection for MongoDB
type MongoRequestCollection struct {
	Collection *mongo.Collection
}

// InsertRequest inserts a new service request and returns its id.
func (c *MongoRequestCollection) InsertRequest(ctx context.Context, req models.ServiceRequest) (string, error) {
	if c.Collection == nil {
		return "", fmt.Errorf("mongo collection is nil")
	}
	req.CreatedAt = time.Now()

	result, err := c.Collection.InsertOne(ctx, req)
	if err != nil {
		return "", err
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id.Hex(), nil
}

// ListRequests returns every service request in the collection.
func (c *MongoRequestCollection) ListRequests(ctx context.Context) ([]models.ServiceRequest, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reqs []models.ServiceRequest
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// FindRequestByID finds a service request by its ID.
func (c *MongoRequestCollection) FindRequestByID(ctx context.Context, id string) (*models.ServiceRequest, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid request ID: %w", err)
	}

	var req models.ServiceRequest
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&req)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("request not found")
		}
		return nil, err
	}
	return &req, nil
}

// UpdateRequest replaces a service request by its ID.
func (c *MongoRequestCollection) UpdateRequest(ctx context.Context, id string, req models.ServiceRequest) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid request ID: %w", err)
	}

	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": req})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("request not found")
	}
	return nil
}

// DeleteRequest deletes a service request by its ID. There is no soft
// delete; removal is irreversible.
func (c *MongoRequestCollection) DeleteRequest(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid request ID: %w", err)
	}

	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("request not found")
	}
	return nil
}
