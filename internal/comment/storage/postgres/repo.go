package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/uuice/lumos-comments/internal/comment/model"
	"github.com/uuice/lumos-comments/internal/comment/storage"
)

type Repo struct {
	db *sql.DB
}

func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Open connects with the pgx stdlib driver and verifies the connection.
func Open(ctx context.Context, dsn string) (*Repo, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Repo{db: db}, nil
}

func (r *Repo) Close() error {
	return r.db.Close()
}

func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM comments WHERE id=$1`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r *Repo) Insert(ctx context.Context, in model.CommentInput, approved bool) (model.Comment, error) {
	var c model.Comment
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO comments(page_id, page_url, author, content, approved, parent_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, page_id, page_url, author, content, created_at, approved, parent_id
	`, in.PageID, in.PageURL, in.Author, in.Content, approved, in.ParentID).
		Scan(&c.ID, &c.PageID, &c.PageURL, &c.Author, &c.Content, &c.CreatedAt, &c.Approved, &c.ParentID)
	if err != nil {
		return model.Comment{}, err
	}
	return c, nil
}

func (r *Repo) ListByPage(ctx context.Context, pageID, pageURL *string) ([]model.Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, page_id, page_url, author, content, created_at, approved, parent_id
		FROM comments
		WHERE approved
		  AND ($1::text IS NULL OR page_id = $1)
		  AND ($2::text IS NULL OR page_url = $2)
		ORDER BY created_at DESC, id DESC
	`, pageID, pageURL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanComments(rows)
}

func (r *Repo) ListAll(ctx context.Context) ([]model.Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, page_id, page_url, author, content, created_at, approved, parent_id
		FROM comments
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanComments(rows)
}

func (r *Repo) SetApproval(ctx context.Context, id int64, approved bool) (model.Comment, error) {
	var c model.Comment
	err := r.db.QueryRowContext(ctx, `
		UPDATE comments
		SET approved = $2
		WHERE id = $1
		RETURNING id, page_id, page_url, author, content, created_at, approved, parent_id
	`, id, approved).
		Scan(&c.ID, &c.PageID, &c.PageURL, &c.Author, &c.Content, &c.CreatedAt, &c.Approved, &c.ParentID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Comment{}, storage.ErrNotFound
	}
	if err != nil {
		return model.Comment{}, err
	}
	return c, nil
}

// Delete removes exactly one row. Replies keep their parent_id; the
// thread assembler renders them as roots afterwards.
func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanComments(rows *sql.Rows) ([]model.Comment, error) {
	out := make([]model.Comment, 0, 64)
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.PageID, &c.PageURL, &c.Author, &c.Content, &c.CreatedAt, &c.Approved, &c.ParentID); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
