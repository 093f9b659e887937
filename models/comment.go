package models

import "time"

// MaxCommentDepth is enforced at comment creation, not by the tree
// builder; depth on a node is advisory metadata.
const MaxCommentDepth = 3

// Comment is one flat comment row as fetched from storage, newest first.
type Comment struct {
	ID         string    `bson:"id" json:"id"`
	VideoID    string    `bson:"video_id" json:"video_id"`
	ParentID   string    `bson:"parent_id,omitempty" json:"parent_id,omitempty"`
	Depth      int       `bson:"depth" json:"depth"`
	Text       string    `bson:"text" json:"text"`
	AuthorID   string    `bson:"author_id" json:"author_id"`
	AuthorName string    `bson:"author_name" json:"author_name"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// CommentNode is a comment with its replies attached. Replies are
// populated only at tree-construction time and never persisted.
type CommentNode struct {
	Comment
	Replies []*CommentNode `json:"replies"`
}
