package posts

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines persistence operations for posts.
type Repository interface {
	ListAll(ctx context.Context) ([]Post, error)
	ListByUser(ctx context.Context, userID int64) ([]Post, error)
	FindByID(ctx context.Context, id int64) (*Post, error)
	Insert(ctx context.Context, post Post) (*Post, error)
	Update(ctx context.Context, id int64, req UpdatePostRequest) error
	Delete(ctx context.Context, id int64) error
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const postColumns = `id, title, content, date_published, user_id`

func collectPosts(rows pgx.Rows) ([]Post, error) {
	defer rows.Close()
	var all []Post
	for rows.Next() {
		var post Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.DatePublished, &post.UserID); err != nil {
			return nil, err
		}
		all = append(all, post)
	}
	return all, rows.Err()
}

// ListAll returns every post ordered by id.
func (r *PGRepository) ListAll(ctx context.Context) ([]Post, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+postColumns+` FROM posts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

// ListByUser returns every post owned by the user.
func (r *PGRepository) ListByUser(ctx context.Context, userID int64) ([]Post, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+postColumns+` FROM posts WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

// FindByID fetches a post by id.
func (r *PGRepository) FindByID(ctx context.Context, id int64) (*Post, error) {
	var post Post
	err := r.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id).
		Scan(&post.ID, &post.Title, &post.Content, &post.DatePublished, &post.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Insert persists a new post and returns the stored row.
func (r *PGRepository) Insert(ctx context.Context, post Post) (*Post, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO posts (title, content, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, date_published`,
		post.Title, post.Content, post.UserID,
	).Scan(&post.ID, &post.DatePublished)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update writes the fields present in the request.
func (r *PGRepository) Update(ctx context.Context, id int64, req UpdatePostRequest) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE posts
		 SET title = COALESCE($2, title), content = COALESCE($3, content)
		 WHERE id = $1`,
		id, req.Title, req.Content)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a post.
func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repository = (*PGRepository)(nil)
