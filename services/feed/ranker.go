package feed

import (
	"sort"
	"strings"

	"savora/models"
	"savora/services/geo"
)

// Rank filters and orders feed items for display.
//
// Category matching is a case-insensitive substring check; "all" or an
// empty filter disables it. When origin and radius are both set, items
// with known coordinates beyond the radius are dropped; items with no
// coordinates are always kept (unknown location, assumed in range).
// Ordering is ascending by distance, and any comparison involving a
// missing coordinate is treated as equal so the stable sort preserves
// the input order for those items. The input slice is not mutated.
func Rank(items []models.VideoItem, origin *models.Coordinate, radiusKm *float64, category string) []models.VideoItem {
	out := make([]models.VideoItem, 0, len(items))

	wantCategory := category != "" && !strings.EqualFold(category, CategoryAll)
	needle := strings.ToLower(category)

	for _, it := range items {
		if wantCategory && !strings.Contains(strings.ToLower(it.Category), needle) {
			continue
		}
		if origin != nil && radiusKm != nil && it.Location != nil {
			d := geo.DistanceKm(origin.Latitude, origin.Longitude, it.Location.Latitude, it.Location.Longitude)
			if d > *radiusKm {
				continue
			}
		}
		out = append(out, it)
	}

	if origin == nil {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Location, out[j].Location
		if a == nil || b == nil {
			return false
		}
		da := geo.DistanceKm(origin.Latitude, origin.Longitude, a.Latitude, a.Longitude)
		db := geo.DistanceKm(origin.Latitude, origin.Longitude, b.Latitude, b.Longitude)
		return da < db
	})
	return out
}
