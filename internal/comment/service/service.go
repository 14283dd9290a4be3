package service

import (
	"context"

	"github.com/uuice/lumos-comments/internal/comment/model"
)

type CommentService interface {
	Create(ctx context.Context, in model.CommentInput) (model.Comment, error)
	ListForPage(ctx context.Context, pageID, pageURL *string) ([]model.CommentNode, error)
	ListAllForAdmin(ctx context.Context, isAdmin bool) ([]model.CommentNode, error)
	SetApproval(ctx context.Context, id int64, approved, isAdmin bool) (model.Comment, error)
	Delete(ctx context.Context, id int64, isAdmin bool) (deleted bool, err error)
}
