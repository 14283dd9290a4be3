package model

import "time"

// Comment is a single durable record of user feedback attached to a page.
// PageID and ParentID are optional; a nil ParentID marks a root comment.
type Comment struct {
	ID        int64     `json:"id"`
	PageID    *string   `json:"page_id,omitempty"`
	PageURL   string    `json:"page_url"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Approved  bool      `json:"approved"`
	ParentID  *int64    `json:"parent_id,omitempty"`
}

// CommentInput carries caller-supplied fields for creation. ID, CreatedAt
// and Approved are assigned by the store and service.
type CommentInput struct {
	PageID   *string `json:"page_id,omitempty"`
	PageURL  string  `json:"page_url" validate:"required"`
	Author   string  `json:"author" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	ParentID *int64  `json:"parent_id,omitempty" validate:"omitempty,gt=0"`
}

// CommentNode is the transient threaded form produced for read requests.
// It is never stored.
type CommentNode struct {
	Comment
	Children []CommentNode `json:"children"`
}
