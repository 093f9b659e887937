package feed

import (
	"context"
	"fmt"
	"sync"

	"savora/models"
)

// Loader is a page-cursor state machine over a Source. It accumulates
// pages, exposes "has more" status, and serializes page loads: a
// LoadNextPage issued while one is in flight is dropped, not queued,
// so pages never merge out of order. Each request carries a sequence
// number; a response arriving after a newer request was issued is
// discarded instead of clobbering fresher state.
type Loader struct {
	source Source

	mu       sync.Mutex
	pageSize int
	filter   models.FeedFilter
	items    []models.VideoItem
	offset   int
	hasMore  bool
	inFlight bool
	seq      uint64
}

// NewLoader builds a loader over the given source.
func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// LoadFirstPage resets the cursor and replaces the held collection with
// the first page. A fetch error leaves the previously held collection
// untouched.
func (l *Loader) LoadFirstPage(ctx context.Context, pageSize int, filter models.FeedFilter) ([]models.VideoItem, error) {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	l.pageSize = pageSize
	l.filter = filter
	l.inFlight = true
	l.mu.Unlock()

	page, err := l.source.FetchPage(ctx, pageSize, 0, filter)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.inFlight = false
	if err != nil {
		return nil, fmt.Errorf("feed: first page fetch failed: %w", err)
	}
	if seq < l.seq {
		// A newer request superseded this one; drop the stale result.
		return l.snapshotLocked(), nil
	}
	l.items = append([]models.VideoItem(nil), page...)
	l.offset = len(page)
	l.hasMore = len(page) == pageSize
	return l.snapshotLocked(), nil
}

// LoadNextPage appends the next page to the held collection. It is a
// no-op while a load is in flight or once the feed is exhausted; the
// guard is a boolean flag, not cancellation.
func (l *Loader) LoadNextPage(ctx context.Context) ([]models.VideoItem, error) {
	l.mu.Lock()
	if l.inFlight || !l.hasMore {
		defer l.mu.Unlock()
		return l.snapshotLocked(), nil
	}
	l.seq++
	seq := l.seq
	offset := l.offset
	pageSize := l.pageSize
	filter := l.filter
	l.inFlight = true
	l.mu.Unlock()

	page, err := l.source.FetchPage(ctx, pageSize, offset, filter)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.inFlight = false
	if err != nil {
		return nil, fmt.Errorf("feed: next page fetch failed: %w", err)
	}
	if seq < l.seq {
		return l.snapshotLocked(), nil
	}
	l.items = append(l.items, page...)
	l.offset += len(page)
	l.hasMore = len(page) == pageSize
	return l.snapshotLocked(), nil
}

// HasMore reports whether another page may exist.
func (l *Loader) HasMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hasMore
}

// Items returns a snapshot of the held collection.
func (l *Loader) Items() []models.VideoItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

func (l *Loader) snapshotLocked() []models.VideoItem {
	return append([]models.VideoItem(nil), l.items...)
}

// MergeOwnerAndPersonalSets merges two scoped result sets keyed by
// identity. Owner-scoped entries are inserted first; a personal-scoped
// entry sharing an ID overwrites the owner copy in place. Output order
// is first-seen; callers apply their own display ordering.
func MergeOwnerAndPersonalSets[T any](owner, personal []T, id func(T) string) []T {
	index := make(map[string]int, len(owner)+len(personal))
	merged := make([]T, 0, len(owner)+len(personal))

	for _, item := range owner {
		if pos, seen := index[id(item)]; seen {
			merged[pos] = item
			continue
		}
		index[id(item)] = len(merged)
		merged = append(merged, item)
	}
	for _, item := range personal {
		if pos, seen := index[id(item)]; seen {
			merged[pos] = item
			continue
		}
		index[id(item)] = len(merged)
		merged = append(merged, item)
	}
	return merged
}
