package videoRepo

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"savora/database"
	"savora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoVideoRepo implements VideoRepository using MongoDB.
type MongoVideoRepo struct {
	coll *mongo.Collection
}

// NewMongoVideoRepo creates a new instance of VideoRepository using MongoDB.
func NewMongoVideoRepo() VideoRepository {
	coll := database.Collection("videos")
	repo := &MongoVideoRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoVideoRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// FetchPage returns one page of videos, newest first. The category
// constraint mirrors the display-side matching: a case-insensitive
// substring, with "all" or empty meaning no restriction. Geo filtering
// and distance ordering stay with the caller.
func (r *MongoVideoRepo) FetchPage(ctx context.Context, limit, offset int, filter models.FeedFilter) ([]models.VideoItem, error) {
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" && !strings.EqualFold(filter.Category, "all") {
		query["category"] = bson.M{"$regex": primitive.Regex{
			Pattern: regexp.QuoteMeta(filter.Category),
			Options: "i",
		}}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(queryCtx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer cursor.Close(queryCtx)

	var items []models.VideoItem
	if err := cursor.All(queryCtx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode videos: %w", err)
	}
	return items, nil
}

// GetByID retrieves a video by its unique ID.
func (r *MongoVideoRepo) GetByID(id string) (*models.VideoItem, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var item models.VideoItem
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("video with id %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video with id %s: %w", id, err)
	}
	return &item, nil
}

// Create inserts a new video document.
func (r *MongoVideoRepo) Create(v *models.VideoItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	v.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, v)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}

// IncrementLikeCount adjusts the like counter by delta (may be negative).
func (r *MongoVideoRepo) IncrementLikeCount(id string, delta int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"like_count": delta}})
	if err != nil {
		return fmt.Errorf("failed to update like count for video %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("video with id %s not found", id)
	}
	return nil
}
