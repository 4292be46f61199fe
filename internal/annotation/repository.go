// Package annotation manages timestamped notes attached to movies.
package annotation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Annotation is a timestamped note (with optional screenshot) marking a
// moment of interest in a movie. ImageURL is derived from ImageKey on every
// read and never persisted.
type Annotation struct {
	ID          string    `json:"id"`
	MovieID     string    `json:"movie_id"`
	TimeSeconds int       `json:"time_seconds"`
	Title       string    `json:"title"`
	Body        *string   `json:"body"`
	ImageKey    *string   `json:"image_key"`
	CreatedAt   time.Time `json:"created_at"`
	ImageURL    *string   `json:"image_url"`
}

// ErrNotFound is returned when no annotation matches both id and movie id.
var ErrNotFound = errors.New("annotation not found")

// Repository handles all annotation database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Insert stores a new annotation and returns the persisted record.
func (r *Repository) Insert(ctx context.Context, a *Annotation) (*Annotation, error) {
	out := &Annotation{}
	err := r.db.QueryRow(ctx,
		`INSERT INTO annotations (id, movie_id, time_seconds, title, body, image_key)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, movie_id, time_seconds, title, body, image_key, created_at`,
		a.ID, a.MovieID, a.TimeSeconds, a.Title, a.Body, a.ImageKey,
	).Scan(&out.ID, &out.MovieID, &out.TimeSeconds, &out.Title, &out.Body, &out.ImageKey, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert annotation: %w", err)
	}
	return out, nil
}

// ListByMovie returns the movie's annotations ordered by position in the
// film, with creation time as a stable tiebreaker. A movie with no
// annotations yields an empty slice.
func (r *Repository) ListByMovie(ctx context.Context, movieID string) ([]*Annotation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, movie_id, time_seconds, title, body, image_key, created_at
		 FROM annotations
		 WHERE movie_id = $1
		 ORDER BY time_seconds ASC, created_at ASC`,
		movieID,
	)
	if err != nil {
		return nil, fmt.Errorf("list annotations: %w", err)
	}
	defer rows.Close()

	annotations := []*Annotation{}
	for rows.Next() {
		a := &Annotation{}
		if err := rows.Scan(&a.ID, &a.MovieID, &a.TimeSeconds, &a.Title, &a.Body, &a.ImageKey, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan annotation: %w", err)
		}
		annotations = append(annotations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list annotations: %w", err)
	}
	return annotations, nil
}

// Update overwrites title, body, and image key of the annotation scoped to
// its parent movie, and returns the persisted record.
func (r *Repository) Update(ctx context.Context, a *Annotation) (*Annotation, error) {
	out := &Annotation{}
	err := r.db.QueryRow(ctx,
		`UPDATE annotations
		 SET title = $3, body = $4, image_key = $5
		 WHERE id = $1 AND movie_id = $2
		 RETURNING id, movie_id, time_seconds, title, body, image_key, created_at`,
		a.ID, a.MovieID, a.Title, a.Body, a.ImageKey,
	).Scan(&out.ID, &out.MovieID, &out.TimeSeconds, &out.Title, &out.Body, &out.ImageKey, &out.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update annotation: %w", err)
	}
	return out, nil
}

// Delete removes the annotation scoped to its parent movie.
func (r *Repository) Delete(ctx context.Context, movieID, id string) error {
	var deleted string
	err := r.db.QueryRow(ctx,
		`DELETE FROM annotations
		 WHERE id = $1 AND movie_id = $2
		 RETURNING id`,
		id, movieID,
	).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete annotation: %w", err)
	}
	return nil
}
