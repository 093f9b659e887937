package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"savora/models"
)

// fakeSource returns scripted pages and counts invocations.
type fakeSource struct {
	mu      sync.Mutex
	pages   [][]models.VideoItem
	calls   int
	err     error
	block   chan struct{} // when set, FetchPage waits until closed
	started chan struct{} // signalled once per FetchPage entry
}

func (f *fakeSource) FetchPage(ctx context.Context, limit, offset int, filter models.FeedFilter) ([]models.VideoItem, error) {
	f.mu.Lock()
	f.calls++
	started := f.started
	block := f.block
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if block != nil {
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	// Pages are addressed by the cursor position, so a failed call does
	// not consume a page.
	idx := 0
	if limit > 0 {
		idx = offset / limit
	}
	if idx < len(f.pages) {
		return f.pages[idx], nil
	}
	return nil, nil
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func makeItems(prefix string, n int) []models.VideoItem {
	items := make([]models.VideoItem, n)
	for i := range items {
		items[i] = models.VideoItem{ID: fmt.Sprintf("%s-%d", prefix, i)}
	}
	return items
}

func TestLoader_FirstPageSetsHasMore(t *testing.T) {
	src := &fakeSource{pages: [][]models.VideoItem{makeItems("p1", 10)}}
	loader := NewLoader(src)

	items, err := loader.LoadFirstPage(context.Background(), 10, models.FeedFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 10 {
		t.Errorf("got %d items, want 10", len(items))
	}
	if !loader.HasMore() {
		t.Errorf("full page must set hasMore = true")
	}
}

func TestLoader_ShortPageExhaustsAndNextPageIsNoOp(t *testing.T) {
	src := &fakeSource{pages: [][]models.VideoItem{makeItems("p1", 7)}}
	loader := NewLoader(src)

	if _, err := loader.LoadFirstPage(context.Background(), 10, models.FeedFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loader.HasMore() {
		t.Errorf("7 of 10 returned must set hasMore = false")
	}

	items, err := loader.LoadNextPage(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 7 {
		t.Errorf("exhausted next-page call changed held items: %d", len(items))
	}
	if src.callCount() != 1 {
		t.Errorf("exhausted next-page call hit the source: %d calls, want 1", src.callCount())
	}
}

func TestLoader_InFlightGuardDropsDuplicateCall(t *testing.T) {
	src := &fakeSource{
		pages: [][]models.VideoItem{makeItems("p1", 2), makeItems("p2", 2)},
	}
	loader := NewLoader(src)

	// First page loads unblocked.
	if _, err := loader.LoadFirstPage(context.Background(), 2, models.FeedFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Two rapid next-page calls; the first blocks inside the source.
	started := make(chan struct{}, 2)
	blockNext := make(chan struct{})
	src.mu.Lock()
	src.started = started
	src.block = blockNext
	src.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := loader.LoadNextPage(context.Background()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	}()
	<-started // first call is now in flight

	// Duplicate call while in flight must not fetch.
	if _, err := loader.LoadNextPage(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	close(blockNext)
	<-done

	if src.callCount() != 2 {
		t.Errorf("expected exactly 2 source calls (first page + one next page), got %d", src.callCount())
	}
	if len(loader.Items()) != 4 {
		t.Errorf("held collection has %d items, want 4", len(loader.Items()))
	}
}

func TestLoader_FetchErrorLeavesHeldItemsUntouched(t *testing.T) {
	src := &fakeSource{pages: [][]models.VideoItem{makeItems("p1", 3)}}
	loader := NewLoader(src)

	if _, err := loader.LoadFirstPage(context.Background(), 3, models.FeedFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src.mu.Lock()
	src.err = errors.New("network down")
	src.mu.Unlock()
	if _, err := loader.LoadNextPage(context.Background()); err == nil {
		t.Fatalf("expected error from failing source")
	}
	if got := len(loader.Items()); got != 3 {
		t.Errorf("held collection changed after failed fetch: %d items, want 3", got)
	}

	// A manual retry succeeds and appends.
	src.mu.Lock()
	src.err = nil
	src.pages = append(src.pages, makeItems("p2", 1))
	src.mu.Unlock()
	if _, err := loader.LoadNextPage(context.Background()); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if got := len(loader.Items()); got != 4 {
		t.Errorf("retry did not append: %d items, want 4", got)
	}
}

// gatedSource hands each FetchPage call its page through a dedicated
// channel, so tests control resolution order exactly.
type gatedSource struct {
	mu    sync.Mutex
	calls int
	gates []chan []models.VideoItem
}

func (g *gatedSource) FetchPage(ctx context.Context, limit, offset int, filter models.FeedFilter) ([]models.VideoItem, error) {
	g.mu.Lock()
	idx := g.calls
	g.calls++
	g.mu.Unlock()
	return <-g.gates[idx], nil
}

func (g *gatedSource) inFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func TestLoader_StaleResponseDiscarded(t *testing.T) {
	src := &gatedSource{gates: []chan []models.VideoItem{
		make(chan []models.VideoItem),
		make(chan []models.VideoItem),
	}}
	loader := NewLoader(src)

	done := make(chan struct{}, 2)
	go func() {
		loader.LoadFirstPage(context.Background(), 2, models.FeedFilter{})
		done <- struct{}{}
	}()
	for src.inFlight() < 1 {
		time.Sleep(time.Millisecond)
	}
	go func() {
		loader.LoadFirstPage(context.Background(), 2, models.FeedFilter{})
		done <- struct{}{}
	}()
	for src.inFlight() < 2 {
		time.Sleep(time.Millisecond)
	}

	// Resolve the newer request first, then let the older one land late.
	src.gates[1] <- makeItems("fresh", 2)
	<-done
	src.gates[0] <- makeItems("stale", 2)
	<-done

	items := loader.Items()
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	for _, it := range items {
		if it.ID[:5] != "fresh" {
			t.Errorf("stale response overwrote fresher state: %v", it.ID)
		}
	}
}

func TestMergeOwnerAndPersonalSets_PersonalWins(t *testing.T) {
	owner := []models.Booking{
		{ID: "b1", Status: models.BookingPending},
		{ID: "b2", Status: models.BookingConfirmed},
	}
	personal := []models.Booking{
		{ID: "b2", Status: models.BookingCancelled},
		{ID: "b3", Status: models.BookingPending},
	}

	merged := MergeOwnerAndPersonalSets(owner, personal, func(b models.Booking) string { return b.ID })

	if len(merged) != 3 {
		t.Fatalf("got %d merged bookings, want 3", len(merged))
	}
	byID := map[string]models.Booking{}
	for _, b := range merged {
		byID[b.ID] = b
	}
	if byID["b2"].Status != models.BookingCancelled {
		t.Errorf("shared ID resolved to owner view %q, want personal view %q", byID["b2"].Status, models.BookingCancelled)
	}
}
