package restaurantRepo

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

// MongoRestaurantRepo implements RestaurantRepository using MongoDB.
type MongoRestaurantRepo struct {
	coll *mongo.Collection
}

// NewMongoRestaurantRepo creates a new instance of RestaurantRepository using MongoDB.
func NewMongoRestaurantRepo() RestaurantRepository {
	coll := database.Collection("restaurants")
	repo := &MongoRestaurantRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRestaurantRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new restaurant document.
func (r *MongoRestaurantRepo) Create(rest *models.Restaurant) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	rest.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, rest)
	if err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}
	return nil
}

// GetByID retrieves a restaurant by its unique ID.
func (r *MongoRestaurantRepo) GetByID(id string) (*models.Restaurant, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var rest models.Restaurant
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rest)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("restaurant with id %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch restaurant with id %s: %w", id, err)
	}
	return &rest, nil
}

// GetByOwner retrieves all restaurants managed by an owner account.
func (r *MongoRestaurantRepo) GetByOwner(ownerID string) ([]models.Restaurant, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var restaurants []models.Restaurant
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, fmt.Errorf("failed to decode restaurants: %w", err)
	}
	return restaurants, nil
}

// GetByCategory retrieves up to limit restaurants whose category loosely
// matches (case-insensitive substring); "all" or empty matches everything.
func (r *MongoRestaurantRepo) GetByCategory(category string, limit int) ([]models.Restaurant, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{}
	if category != "" && !strings.EqualFold(category, "all") {
		query["category"] = bson.M{"$regex": primitive.Regex{
			Pattern: regexp.QuoteMeta(category),
			Options: "i",
		}}
	}

	opts := options.Find().SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}
	defer cursor.Close(ctx)

	var restaurants []models.Restaurant
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, fmt.Errorf("failed to decode restaurants: %w", err)
	}
	return restaurants, nil
}

// ApplyReview folds a new rating into the running average and bumps the
// review counter in one round trip.
func (r *MongoRestaurantRepo) ApplyReview(id string, rating int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"rating": bson.M{"$divide": bson.A{
				bson.M{"$add": bson.A{
					bson.M{"$multiply": bson.A{"$rating", "$review_count"}},
					rating,
				}},
				bson.M{"$add": bson.A{"$review_count", 1}},
			}},
			"review_count": bson.M{"$add": bson.A{"$review_count", 1}},
		}}},
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, pipeline)
	if err != nil {
		return fmt.Errorf("failed to apply review to restaurant %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("restaurant with id %s not found", id)
	}
	return nil
}
