package restaurant

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	restaurantRepo "savora/database/repository/restaurant"
	"savora/models"
	"savora/services/geo"
	"savora/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	defaultBrowseLimit = 50
	browseCacheTTL     = 5 * time.Minute
)

// DefaultRestaurantService is the production implementation.
type DefaultRestaurantService struct {
	Repo  restaurantRepo.RestaurantRepository
	Cache *redis.Client // nil disables browse caching
}

// Create registers a new venue under the calling owner.
func (s *DefaultRestaurantService) Create(ctx context.Context, rest models.Restaurant) (*models.Restaurant, error) {
	if strings.TrimSpace(rest.Name) == "" || strings.TrimSpace(rest.Category) == "" {
		return nil, utils.NewAPIError(utils.KindValidation, "name and category are required")
	}
	rest.ID = uuid.New().String()
	rest.Rating = 0
	rest.ReviewCount = 0
	rest.CreatedAt = time.Now().UTC()
	if err := s.Repo.Create(&rest); err != nil {
		return nil, utils.WrapAPIError(utils.KindTransient, "could not create restaurant", err)
	}
	return &rest, nil
}

// GetByID fetches a venue and, when an origin is supplied, decorates it
// with the distance from that origin.
func (s *DefaultRestaurantService) GetByID(ctx context.Context, id string, origin *models.Coordinate) (*models.RestaurantWithDistance, error) {
	rest, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, utils.WrapAPIError(utils.KindNotFound, "restaurant not found", err)
	}
	out := decorate(*rest, origin)
	return &out, nil
}

// Browse lists venues by category, nearest first when an origin is
// supplied. Venues without a stored location sort after located ones.
// Results are cached briefly keyed on the full query.
func (s *DefaultRestaurantService) Browse(ctx context.Context, category string, origin *models.Coordinate, limit int) ([]models.RestaurantWithDistance, error) {
	if limit <= 0 {
		limit = defaultBrowseLimit
	}

	cacheKey := browseCacheKey(category, origin, limit)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var out []models.RestaurantWithDistance
			if jerr := json.Unmarshal([]byte(cached), &out); jerr == nil {
				return out, nil
			}
		}
	}

	rests, err := s.Repo.GetByCategory(category, limit)
	if err != nil {
		return nil, utils.WrapAPIError(utils.KindTransient, "could not load restaurants", err)
	}

	out := make([]models.RestaurantWithDistance, 0, len(rests))
	for _, r := range rests {
		out = append(out, decorate(r, origin))
	}
	if origin != nil {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].DistanceKm, out[j].DistanceKm
			if a == nil || b == nil {
				return a != nil && b == nil
			}
			return *a < *b
		})
	}

	if s.Cache != nil {
		if data, jerr := json.Marshal(out); jerr == nil {
			s.Cache.Set(ctx, cacheKey, data, browseCacheTTL)
		}
	}
	return out, nil
}

func browseCacheKey(category string, origin *models.Coordinate, limit int) string {
	payload, _ := json.Marshal(struct {
		Category string             `json:"category"`
		Origin   *models.Coordinate `json:"origin"`
		Limit    int                `json:"limit"`
	}{category, origin, limit})
	return fmt.Sprintf("restaurants:browse:%x", payload)
}

// ListOwned returns the venues managed by an owner account.
func (s *DefaultRestaurantService) ListOwned(ctx context.Context, ownerID string) ([]models.Restaurant, error) {
	rests, err := s.Repo.GetByOwner(ownerID)
	if err != nil {
		return nil, utils.WrapAPIError(utils.KindTransient, "could not load owned restaurants", err)
	}
	return rests, nil
}

func decorate(r models.Restaurant, origin *models.Coordinate) models.RestaurantWithDistance {
	out := models.RestaurantWithDistance{Restaurant: r}
	if origin == nil || r.Location == nil {
		return out
	}
	d := geo.DistanceKm(origin.Latitude, origin.Longitude, r.Location.Latitude, r.Location.Longitude)
	out.DistanceKm = &d
	out.DistanceLabel = geo.FormatDistance(d)
	return out
}
