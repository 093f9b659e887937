package feed

import (
	"context"
	"sync"
	"testing"

	"savora/models"
)

// scriptedSource serves pages keyed by the requested offset and records
// every offset it was asked for.
type scriptedSource struct {
	mu      sync.Mutex
	pages   map[int][]models.VideoItem
	offsets []int
}

func (s *scriptedSource) FetchPage(ctx context.Context, limit, offset int, filter models.FeedFilter) ([]models.VideoItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offsets = append(s.offsets, offset)
	return s.pages[offset], nil
}

func itemAt(id string, lat float64) models.VideoItem {
	return models.VideoItem{
		ID:       id,
		Location: &models.Coordinate{Latitude: lat, Longitude: 0},
	}
}

func radiusPtr(km float64) *float64 { return &km }

// A session must page through the source by raw document counts even
// when the radius filter thins out what the caller sees. One
// out-of-radius item inside a full page must not end the session or
// shift the cursor.
func TestSession_RadiusFilterDoesNotShortenCursor(t *testing.T) {
	// Origin at (0,0), radius 200 km. Latitude 0.5 is ~55 km away,
	// latitude 10 is ~1100 km away.
	src := &scriptedSource{pages: map[int][]models.VideoItem{
		0: {itemAt("a", 0.1), itemAt("far", 10), itemAt("b", 0.5)},
		3: {itemAt("c", 0.2), itemAt("d", 0.3), itemAt("e", 0.4)},
		6: nil,
	}}
	svc := NewDefaultFeedService(src, nil)
	filter := models.FeedFilter{
		Origin:   &models.Coordinate{Latitude: 0, Longitude: 0},
		RadiusKm: radiusPtr(200),
	}

	sessionID, first, hasMore, err := svc.StartSession(context.Background(), 3, filter)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("first page visible items = %d, want 2", len(first))
	}
	if !hasMore {
		t.Fatal("hasMore = false after a full raw page, want true")
	}

	second, hasMore, err := svc.NextPage(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("NextPage: %v", err)
	}
	if len(src.offsets) != 2 || src.offsets[1] != 3 {
		t.Fatalf("source offsets = %v, want [0 3]", src.offsets)
	}
	if len(second) != 5 {
		t.Fatalf("visible items after second page = %d, want 5", len(second))
	}
	for _, it := range second {
		if it.ID == "far" {
			t.Fatal("out-of-radius item leaked into the visible feed")
		}
	}
	if !hasMore {
		t.Fatal("hasMore = false after second full raw page, want true")
	}

	third, hasMore, err := svc.NextPage(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("NextPage (exhausting): %v", err)
	}
	if hasMore {
		t.Fatal("hasMore = true after empty raw page, want false")
	}
	if len(third) != 5 {
		t.Fatalf("visible items after exhaustion = %d, want 5", len(third))
	}
}

func TestNextPage_UnknownSession(t *testing.T) {
	svc := NewDefaultFeedService(&scriptedSource{pages: map[int][]models.VideoItem{}}, nil)
	if _, _, err := svc.NextPage(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for unknown session")
	}
}
