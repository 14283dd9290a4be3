package storage

import (
	"context"
	"errors"

	"github.com/uuice/lumos-comments/internal/comment/model"
)

// ErrNotFound is returned by single-record operations referencing an unknown id.
var ErrNotFound = errors.New("comment not found")

type Repository interface {
	Insert(ctx context.Context, in model.CommentInput, approved bool) (model.Comment, error)
	ListByPage(ctx context.Context, pageID, pageURL *string) ([]model.Comment, error)
	ListAll(ctx context.Context) ([]model.Comment, error)
	SetApproval(ctx context.Context, id int64, approved bool) (model.Comment, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
