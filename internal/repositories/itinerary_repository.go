package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wanderai/internal/models/db_models"
)

type ItineraryRepository interface {
	Insert(ctx context.Context, itinerary *db_models.Itinerary) (primitive.ObjectID, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]db_models.Itinerary, error)
	FindByIDAndUser(ctx context.Context, id, userID primitive.ObjectID) (*db_models.Itinerary, error)
	DeleteByIDAndUser(ctx context.Context, id, userID primitive.ObjectID) (bool, error)
}

type itineraryRepository struct {
	collection *mongo.Collection
}

func NewItineraryRepository(db *mongo.Database) ItineraryRepository {
	return &itineraryRepository{
		collection: db.Collection("itineraries"),
	}
}

func (r *itineraryRepository) Insert(ctx context.Context, itinerary *db_models.Itinerary) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, itinerary)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// ListByUser returns the user's itineraries, newest first.
func (r *itineraryRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]db_models.Itinerary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var itineraries []db_models.Itinerary
	if err := cursor.All(ctx, &itineraries); err != nil {
		return nil, err
	}
	return itineraries, nil
}

// FindByIDAndUser scopes the lookup to the owner; a document owned by someone
// else is indistinguishable from a missing one.
func (r *itineraryRepository) FindByIDAndUser(ctx context.Context, id, userID primitive.ObjectID) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&itinerary)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) DeleteByIDAndUser(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
