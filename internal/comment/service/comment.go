package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/uuice/lumos-comments/internal/comment/model"
	"github.com/uuice/lumos-comments/internal/comment/moderation"
	"github.com/uuice/lumos-comments/internal/comment/storage"
	"github.com/uuice/lumos-comments/internal/comment/thread"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)

const maxContentLen = 10000

type commentService struct {
	repo     storage.Repository
	validate *validator.Validate
}

func New(repo storage.Repository) CommentService {
	return &commentService{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Create validates required fields and the parent reference, then inserts
// with approved=true (comments are auto-approved; moderation may unapprove
// later).
func (s *commentService) Create(ctx context.Context, in model.CommentInput) (model.Comment, error) {
	in.PageURL = strings.TrimSpace(in.PageURL)
	in.Author = strings.TrimSpace(in.Author)
	in.Content = strings.TrimSpace(in.Content)

	if err := s.validate.Struct(in); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return model.Comment{}, ErrInvalidInput
		}
		return model.Comment{}, err
	}
	if len(in.Content) > maxContentLen {
		return model.Comment{}, ErrInvalidInput
	}

	// parent_id must resolve to an existing comment at creation time. Ids are
	// assigned monotonically, so valid data can never contain a cycle.
	if in.ParentID != nil {
		ok, err := s.repo.Exists(ctx, *in.ParentID)
		if err != nil {
			return model.Comment{}, err
		}
		if !ok {
			return model.Comment{}, ErrInvalidInput
		}
	}

	return s.repo.Insert(ctx, in, true)
}

func (s *commentService) ListForPage(ctx context.Context, pageID, pageURL *string) ([]model.CommentNode, error) {
	comments, err := s.repo.ListByPage(ctx, pageID, pageURL)
	if err != nil {
		return nil, err
	}
	return thread.Assemble(comments), nil
}

func (s *commentService) ListAllForAdmin(ctx context.Context, isAdmin bool) ([]model.CommentNode, error) {
	if !moderation.CanModerate(isAdmin) {
		return nil, ErrForbidden
	}
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return thread.Assemble(moderation.VisibleSet(all, isAdmin)), nil
}

func (s *commentService) SetApproval(ctx context.Context, id int64, approved, isAdmin bool) (model.Comment, error) {
	if !moderation.CanModerate(isAdmin) {
		return model.Comment{}, ErrForbidden
	}
	if id <= 0 {
		return model.Comment{}, ErrInvalidInput
	}

	c, err := s.repo.SetApproval(ctx, id, approved)
	if errors.Is(err, storage.ErrNotFound) {
		return model.Comment{}, ErrNotFound
	}
	if err != nil {
		return model.Comment{}, err
	}
	return c, nil
}

func (s *commentService) Delete(ctx context.Context, id int64, isAdmin bool) (bool, error) {
	if !moderation.CanModerate(isAdmin) {
		return false, ErrForbidden
	}
	if id <= 0 {
		return false, ErrInvalidInput
	}

	return s.repo.Delete(ctx, id)
}
