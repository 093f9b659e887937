package comment

import (
	"testing"

	"savora/models"
)

func flatComment(id, parentID string, depth int) models.Comment {
	return models.Comment{ID: id, ParentID: parentID, Depth: depth, Text: "t-" + id}
}

func TestBuildTree_Threading(t *testing.T) {
	// Upstream order is newest first.
	flat := []models.Comment{
		flatComment("c4", "c2", 1),
		flatComment("c3", "", 0),
		flatComment("c2", "", 0),
		flatComment("c1", "", 0),
	}

	roots := BuildTree(flat)

	if len(roots) != 3 {
		t.Fatalf("got %d top-level nodes, want 3", len(roots))
	}
	var c2 *models.CommentNode
	for _, r := range roots {
		if r.ID == "c2" {
			c2 = r
		}
	}
	if c2 == nil {
		t.Fatalf("c2 missing from top level")
	}
	if len(c2.Replies) != 1 || c2.Replies[0].ID != "c4" {
		t.Errorf("c4 not attached under c2: %+v", c2.Replies)
	}
}

func TestBuildTree_NoNodeLostOrDuplicated(t *testing.T) {
	flat := []models.Comment{
		flatComment("a", "", 0),
		flatComment("b", "a", 1),
		flatComment("c", "b", 2),
		flatComment("d", "b", 2),
		flatComment("e", "", 0),
		flatComment("f", "ghost", 1), // orphan
	}

	roots := BuildTree(flat)

	if got := CountNodes(roots); got != len(flat) {
		t.Errorf("tree holds %d nodes, want %d", got, len(flat))
	}

	seen := map[string]int{}
	var walk func(nodes []*models.CommentNode)
	walk = func(nodes []*models.CommentNode) {
		for _, n := range nodes {
			seen[n.ID]++
			walk(n.Replies)
		}
	}
	walk(roots)
	for _, c := range flat {
		if seen[c.ID] != 1 {
			t.Errorf("comment %s appears %d times, want 1", c.ID, seen[c.ID])
		}
	}
}

func TestBuildTree_OrphanBecomesTopLevel(t *testing.T) {
	flat := []models.Comment{
		flatComment("root", "", 0),
		flatComment("orphan", "deleted-parent", 1),
	}

	roots := BuildTree(flat)

	if len(roots) != 2 {
		t.Fatalf("got %d top-level nodes, want 2 (orphan must surface)", len(roots))
	}
	found := false
	for _, r := range roots {
		if r.ID == "orphan" {
			found = true
		}
	}
	if !found {
		t.Errorf("orphan reply was dropped instead of degrading to top level")
	}
}

func TestBuildTree_PreservesUpstreamChildOrder(t *testing.T) {
	// Children arrive newest first and must stay that way.
	flat := []models.Comment{
		flatComment("r3", "p", 1),
		flatComment("r2", "p", 1),
		flatComment("r1", "p", 1),
		flatComment("p", "", 0),
	}

	roots := BuildTree(flat)
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	want := []string{"r3", "r2", "r1"}
	for i, id := range want {
		if roots[0].Replies[i].ID != id {
			t.Fatalf("reply order changed: position %d = %s, want %s", i, roots[0].Replies[i].ID, id)
		}
	}
}

func TestBuildTree_SelfReferencingParent(t *testing.T) {
	// A record whose parent_id points at itself must not form a cycle.
	flat := []models.Comment{
		flatComment("root", "", 0),
		flatComment("loop", "loop", 1),
	}

	roots := BuildTree(flat)

	if len(roots) != 2 {
		t.Fatalf("got %d top-level nodes, want 2 (self-parented node must surface)", len(roots))
	}
	if got := CountNodes(roots); got != 2 {
		t.Errorf("tree holds %d nodes, want 2", got)
	}
	for _, r := range roots {
		if r.ID == "loop" && len(r.Replies) != 0 {
			t.Errorf("self-parented node attached to itself: %d replies", len(r.Replies))
		}
	}
}

func TestBuildTree_EmptyInput(t *testing.T) {
	if roots := BuildTree(nil); len(roots) != 0 {
		t.Errorf("empty input produced %d roots", len(roots))
	}
}
