package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/uuice/lumos-comments/internal/comment/model"
	"github.com/uuice/lumos-comments/internal/comment/storage"
)

type Repo struct {
	mu sync.RWMutex

	nextID int64
	byID   map[int64]model.Comment
}

func New() *Repo {
	return &Repo{
		nextID: 1,
		byID:   make(map[int64]model.Comment),
	}
}

func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]
	return ok, nil
}

func (r *Repo) Insert(ctx context.Context, in model.CommentInput, approved bool) (model.Comment, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	c := model.Comment{
		ID:        r.nextID,
		PageID:    in.PageID,
		PageURL:   in.PageURL,
		Author:    in.Author,
		Content:   in.Content,
		CreatedAt: time.Now().UTC(),
		Approved:  approved,
		ParentID:  in.ParentID,
	}
	r.nextID++

	r.byID[c.ID] = c

	return c, nil
}

func (r *Repo) ListByPage(ctx context.Context, pageID, pageURL *string) ([]model.Comment, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Comment, 0, len(r.byID))
	for _, c := range r.byID {
		if !c.Approved {
			continue
		}
		if pageID != nil && (c.PageID == nil || *c.PageID != *pageID) {
			continue
		}
		if pageURL != nil && c.PageURL != *pageURL {
			continue
		}
		out = append(out, c)
	}
	sortNewestFirst(out)

	return out, nil
}

func (r *Repo) ListAll(ctx context.Context) ([]model.Comment, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Comment, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sortNewestFirst(out)

	return out, nil
}

func (r *Repo) SetApproval(ctx context.Context, id int64, approved bool) (model.Comment, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return model.Comment{}, storage.ErrNotFound
	}
	c.Approved = approved
	r.byID[id] = c

	return c, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}

	// Single-row removal: children keep their parent_id and become orphans.
	delete(r.byID, id)

	return true, nil
}

func sortNewestFirst(cs []model.Comment) {
	sort.Slice(cs, func(i, j int) bool {
		a, b := cs[i], cs[j]
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID > b.ID
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}
