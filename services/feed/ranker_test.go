package feed

import (
	"testing"

	"savora/models"
	"savora/services/geo"
)

func coord(lat, lng float64) *models.Coordinate {
	return &models.Coordinate{Latitude: lat, Longitude: lng}
}

func TestRank_RadiusFilter(t *testing.T) {
	origin := coord(12.9716, 77.5946)
	items := []models.VideoItem{
		{ID: "near", Location: coord(12.9720, 77.5950)},   // ~50 m
		{ID: "far", Location: coord(13.3409, 74.7421)},    // ~300 km
		{ID: "unknown", Location: nil},                    // no coordinates
		{ID: "edge", Location: coord(12.9900, 77.6100)},   // ~2.6 km
	}
	radius := 5.0

	out := Rank(items, origin, &radius, "")

	got := map[string]bool{}
	for _, it := range out {
		got[it.ID] = true
	}
	if !got["near"] || !got["edge"] {
		t.Errorf("items within radius missing from output: %v", got)
	}
	if got["far"] {
		t.Errorf("item beyond radius retained")
	}
	if !got["unknown"] {
		t.Errorf("item with unknown coordinates must always be retained")
	}

	// Cross-check against true distances.
	for _, it := range items {
		if it.Location == nil {
			continue
		}
		d := geo.DistanceKm(origin.Latitude, origin.Longitude, it.Location.Latitude, it.Location.Longitude)
		if (d <= radius) != got[it.ID] {
			t.Errorf("item %s: distance %.2f km, in output = %v", it.ID, d, got[it.ID])
		}
	}
}

func TestRank_SortAscendingByDistance(t *testing.T) {
	origin := coord(0, 0)
	items := []models.VideoItem{
		{ID: "c", Location: coord(0, 3)},
		{ID: "a", Location: coord(0, 1)},
		{ID: "b", Location: coord(0, 2)},
	}
	out := Rank(items, origin, nil, "")
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if out[i].ID != id {
			t.Fatalf("position %d = %s, want %s", i, out[i].ID, id)
		}
	}
}

func TestRank_MissingCoordinatesStableOrder(t *testing.T) {
	origin := coord(0, 0)
	items := []models.VideoItem{
		{ID: "u1"},
		{ID: "k", Location: coord(0, 1)},
		{ID: "u2"},
		{ID: "u3"},
	}
	out := Rank(items, origin, nil, "")

	var unknowns []string
	for _, it := range out {
		if it.Location == nil {
			unknowns = append(unknowns, it.ID)
		}
	}
	want := []string{"u1", "u2", "u3"}
	for i := range want {
		if unknowns[i] != want[i] {
			t.Fatalf("unknown-coordinate items reordered: got %v, want %v", unknowns, want)
		}
	}
}

func TestRank_CategorySubstringMatch(t *testing.T) {
	items := []models.VideoItem{
		{ID: "1", Category: "North Indian"},
		{ID: "2", Category: "indian street food"},
		{ID: "3", Category: "Italian"},
	}

	out := Rank(items, nil, nil, "Indian")
	if len(out) != 2 {
		t.Fatalf("expected 2 matches for loose substring filter, got %d", len(out))
	}
	if out[0].ID != "1" || out[1].ID != "2" {
		t.Errorf("wrong items matched: %v, %v", out[0].ID, out[1].ID)
	}
}

func TestRank_SentinelAllKeepsEverything(t *testing.T) {
	items := []models.VideoItem{
		{ID: "1", Category: "Sushi"},
		{ID: "2", Category: "Tapas"},
	}
	for _, filter := range []string{"", "all", "ALL"} {
		if out := Rank(items, nil, nil, filter); len(out) != 2 {
			t.Errorf("filter %q dropped items: got %d, want 2", filter, len(out))
		}
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	origin := coord(0, 0)
	items := []models.VideoItem{
		{ID: "b", Location: coord(0, 2)},
		{ID: "a", Location: coord(0, 1)},
	}
	_ = Rank(items, origin, nil, "")
	if items[0].ID != "b" || items[1].ID != "a" {
		t.Errorf("input slice mutated: %v, %v", items[0].ID, items[1].ID)
	}
}
