package comment

import "savora/models"

// BuildTree threads a flat comment list into a reply tree and returns
// the top-level nodes.
//
// The first pass indexes every node by ID; the second attaches each
// node to its parent's Replies. A node whose parent is missing from the
// list (deleted upstream) degrades to top-level rather than being
// dropped. Children keep the order the upstream fetch supplied (newest
// first); no re-sort happens here.
func BuildTree(flat []models.Comment) []*models.CommentNode {
	nodes := make(map[string]*models.CommentNode, len(flat))
	ordered := make([]*models.CommentNode, 0, len(flat))

	for _, c := range flat {
		node := &models.CommentNode{Comment: c}
		nodes[c.ID] = node
		ordered = append(ordered, node)
	}

	var roots []*models.CommentNode
	for _, node := range ordered {
		// A record claiming itself as parent would form a cycle; treat
		// it like an orphan.
		if node.ParentID != "" && node.ParentID != node.ID {
			if parent, ok := nodes[node.ParentID]; ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

// CountNodes walks a tree and returns the total node count.
func CountNodes(roots []*models.CommentNode) int {
	total := 0
	for _, n := range roots {
		total += 1 + CountNodes(n.Replies)
	}
	return total
}
