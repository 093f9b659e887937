package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"savora/models"
	"savora/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	rankedPageTTL = 5 * time.Minute
	sessionTTL    = 10 * time.Minute
)

// DefaultFeedService serves ranked feed pages. Stateless page reads go
// through a short-lived Redis cache; cursor-style pagination runs
// through per-session Loaders held in memory.
type DefaultFeedService struct {
	Source      Source
	CacheClient *redis.Client

	mu       sync.Mutex
	sessions map[string]*feedSession
}

type feedSession struct {
	loader   *Loader
	filter   models.FeedFilter
	lastUsed time.Time
}

// NewDefaultFeedService builds the service over an upstream source.
func NewDefaultFeedService(source Source, cacheClient *redis.Client) *DefaultFeedService {
	return &DefaultFeedService{
		Source:      source,
		CacheClient: cacheClient,
		sessions:    make(map[string]*feedSession),
	}
}

// rankedSource applies geo filtering and distance ordering to every
// page fetched from the underlying source.
type rankedSource struct {
	inner Source
}

func (r rankedSource) FetchPage(ctx context.Context, limit, offset int, filter models.FeedFilter) ([]models.VideoItem, error) {
	page, err := r.inner.FetchPage(ctx, limit, offset, filter)
	if err != nil {
		return nil, err
	}
	return Rank(page, filter.Origin, filter.RadiusKm, filter.Category), nil
}

// GetPage returns one ranked feed page, consulting the cache first.
func (s *DefaultFeedService) GetPage(ctx context.Context, limit, offset int, filter models.FeedFilter) ([]models.VideoItem, error) {
	cacheKey, err := s.pageCacheKey(limit, offset, filter)
	if err == nil && s.CacheClient != nil {
		if cached, cerr := s.CacheClient.Get(ctx, cacheKey).Result(); cerr == nil && cached != "" {
			var items []models.VideoItem
			if jerr := json.Unmarshal([]byte(cached), &items); jerr == nil {
				return items, nil
			}
			// Corrupt cache entry: fall through and recompute.
		}
	}

	items, err := rankedSource{s.Source}.FetchPage(ctx, limit, offset, filter)
	if err != nil {
		return nil, utils.WrapAPIError(utils.KindTransient, "could not load feed", err)
	}

	if s.CacheClient != nil {
		if data, jerr := json.Marshal(items); jerr == nil {
			s.CacheClient.Set(ctx, cacheKey, data, rankedPageTTL)
		}
	}
	return items, nil
}

func (s *DefaultFeedService) pageCacheKey(limit, offset int, filter models.FeedFilter) (string, error) {
	payload, err := json.Marshal(struct {
		Limit  int               `json:"limit"`
		Offset int               `json:"offset"`
		Filter models.FeedFilter `json:"filter"`
	}{limit, offset, filter})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("feed:page:%x", payload), nil
}

// StartSession opens a cursor-paginated feed session and loads its
// first page. Returns the session ID, the page, and the has-more flag.
//
// The Loader runs over the raw source: the cursor and the has-more
// sentinel are computed from what the source actually returned, never
// from the ranked view. Ranking (radius filter, distance order) is a
// display pass over the held collection, so an out-of-radius item in a
// full raw page can never make a session look exhausted.
func (s *DefaultFeedService) StartSession(ctx context.Context, pageSize int, filter models.FeedFilter) (string, []models.VideoItem, bool, error) {
	if pageSize <= 0 {
		return "", nil, false, utils.NewAPIError(utils.KindValidation, "page size must be positive")
	}

	loader := NewLoader(s.Source)
	items, err := loader.LoadFirstPage(ctx, pageSize, filter)
	if err != nil {
		return "", nil, false, utils.WrapAPIError(utils.KindTransient, "could not load feed", err)
	}

	sessionID := uuid.New().String()
	s.mu.Lock()
	s.evictExpiredLocked()
	s.sessions[sessionID] = &feedSession{loader: loader, filter: filter, lastUsed: time.Now()}
	s.mu.Unlock()

	return sessionID, Rank(items, filter.Origin, filter.RadiusKm, filter.Category), loader.HasMore(), nil
}

// NextPage advances a session's cursor by one page. Calls that race an
// in-flight load or arrive after exhaustion return the held collection
// unchanged. The returned collection is the ranked view of everything
// fetched so far.
func (s *DefaultFeedService) NextPage(ctx context.Context, sessionID string) ([]models.VideoItem, bool, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if ok {
		sess.lastUsed = time.Now()
	}
	s.mu.Unlock()
	if !ok {
		return nil, false, utils.NewAPIError(utils.KindNotFound, "feed session not found or expired")
	}

	items, err := sess.loader.LoadNextPage(ctx)
	if err != nil {
		return nil, false, utils.WrapAPIError(utils.KindTransient, "could not load feed", err)
	}
	return Rank(items, sess.filter.Origin, sess.filter.RadiusKm, sess.filter.Category), sess.loader.HasMore(), nil
}

func (s *DefaultFeedService) evictExpiredLocked() {
	cutoff := time.Now().Add(-sessionTTL)
	for id, sess := range s.sessions {
		if sess.lastUsed.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
