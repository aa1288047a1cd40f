package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/mediamingle/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HistoryRepository defines the interface for watch-history operations
type HistoryRepository interface {
	// AddEntry records a view. A re-view of the same content within the dedupe
	// window bumps viewed_at on the existing document instead of inserting.
	AddEntry(ctx context.Context, entry *models.HistoryEntry) error
	GetByUser(ctx context.Context, userID uint, limit int64) ([]models.HistoryEntry, error)
	DeleteEntry(ctx context.Context, userID uint, id string) error
	DeleteAllByUser(ctx context.Context, userID uint) (int64, error)
}

// History re-views within this window collapse into the existing entry.
const historyDedupeWindow = 24 * time.Hour

// MongoHistoryRepository implements HistoryRepository for MongoDB
type MongoHistoryRepository struct {
	collection *mongo.Collection
}

// NewMongoHistoryRepository creates a new MongoHistoryRepository
func NewMongoHistoryRepository(db *mongo.Database) *MongoHistoryRepository {
	return &MongoHistoryRepository{collection: db.Collection("history")}
}

func (r *MongoHistoryRepository) AddEntry(ctx context.Context, entry *models.HistoryEntry) error {
	now := time.Now()
	recent := bson.M{
		"user_id":      entry.UserID,
		"content_type": entry.ContentType,
		"content_id":   entry.ContentID,
		"viewed_at":    bson.M{"$gte": now.Add(-historyDedupeWindow)},
	}

	res, err := r.collection.UpdateOne(ctx, recent, bson.M{"$set": bson.M{"viewed_at": now}})
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		entry.ViewedAt = now
		return nil
	}

	entry.ID = primitive.NewObjectID()
	entry.ViewedAt = now
	_, err = r.collection.InsertOne(ctx, entry)
	return err
}

func (r *MongoHistoryRepository) GetByUser(ctx context.Context, userID uint, limit int64) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	findOptions := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "viewed_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *MongoHistoryRepository) DeleteEntry(ctx context.Context, userID uint, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid history ID format: %w", err)
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoHistoryRepository) DeleteAllByUser(ctx context.Context, userID uint) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
