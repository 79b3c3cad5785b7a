package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/glabrego/substack-reader/internal/substack"
)

// Repository keeps a snapshot of the most recently fetched posts so they can
// be read back without network access.
type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS posts (
  position INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  subtitle TEXT NOT NULL,
  post_date TEXT NOT NULL,
  url TEXT NOT NULL,
  body_html TEXT NOT NULL,
  free INTEGER NOT NULL,
  fetched_at TEXT NOT NULL
);
`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// SavePosts replaces the stored snapshot with posts, keeping their order.
func (r *Repository) SavePosts(ctx context.Context, posts []substack.Post, fetchedAt time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM posts`); err != nil {
		return fmt.Errorf("clear posts: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO posts (position, title, subtitle, post_date, url, body_html, free, fetched_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return fmt.Errorf("prepare save statement: %w", err)
	}
	defer stmt.Close()

	stamp := fetchedAt.UTC().Format(time.RFC3339Nano)
	for i, post := range posts {
		_, err := stmt.ExecContext(
			ctx,
			i,
			post.Title,
			post.Subtitle,
			post.Date,
			post.URL,
			post.BodyHTML,
			boolToInt(post.Free),
			stamp,
		)
		if err != nil {
			return fmt.Errorf("save post %q: %w", post.URL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *Repository) ListPosts(ctx context.Context, limit int) ([]substack.Post, error) {
	if limit < 1 {
		limit = 25
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT title, subtitle, post_date, url, body_html, free
FROM posts
ORDER BY position ASC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]substack.Post, 0, limit)
	for rows.Next() {
		var post substack.Post
		var free int
		if err := rows.Scan(
			&post.Title,
			&post.Subtitle,
			&post.Date,
			&post.URL,
			&post.BodyHTML,
			&free,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		post.Free = free != 0
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

// LastFetchedAt reports when the stored snapshot was taken. The zero time
// means the archive is empty.
func (r *Repository) LastFetchedAt(ctx context.Context) (time.Time, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT fetched_at FROM posts ORDER BY position ASC LIMIT 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("query fetched_at: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse fetched_at %q: %w", raw, err)
	}
	return t, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
