// Package movie manages the movie catalogue and its persistence.
package movie

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Movie is a catalogued film with metadata and an optional cover image.
// CoverURL is derived on every read from CoverImageKey and never persisted;
// presigned URLs expire, so staleness is not an option.
type Movie struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Director       string    `json:"director"`
	Year           int       `json:"year"`
	RuntimeMinutes int       `json:"runtime_minutes"`
	CoverImageKey  *string   `json:"cover_image_key"`
	Links          []string  `json:"links"`
	CreatedAt      time.Time `json:"created_at"`
	CoverURL       *string   `json:"cover_url"`
}

// ErrNotFound is returned when a movie does not exist.
var ErrNotFound = errors.New("movie not found")

// Repository handles all movie database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Insert stores a new movie and returns the persisted record.
func (r *Repository) Insert(ctx context.Context, m *Movie) (*Movie, error) {
	out := &Movie{}
	err := r.db.QueryRow(ctx,
		`INSERT INTO movies (id, title, director, year, runtime_minutes, cover_image_key, links)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, title, director, year, runtime_minutes, cover_image_key, links, created_at`,
		m.ID, m.Title, m.Director, m.Year, m.RuntimeMinutes, m.CoverImageKey, m.Links,
	).Scan(&out.ID, &out.Title, &out.Director, &out.Year, &out.RuntimeMinutes, &out.CoverImageKey, &out.Links, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert movie: %w", err)
	}
	return out, nil
}

// List returns all movies ordered newest-created first.
func (r *Repository) List(ctx context.Context) ([]*Movie, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, director, year, runtime_minutes, cover_image_key, links, created_at
		 FROM movies
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	movies := []*Movie{}
	for rows.Next() {
		m := &Movie{}
		if err := rows.Scan(&m.ID, &m.Title, &m.Director, &m.Year, &m.RuntimeMinutes, &m.CoverImageKey, &m.Links, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

// GetByID fetches a movie by its UUID.
func (r *Repository) GetByID(ctx context.Context, id string) (*Movie, error) {
	m := &Movie{}
	err := r.db.QueryRow(ctx,
		`SELECT id, title, director, year, runtime_minutes, cover_image_key, links, created_at
		 FROM movies WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.Title, &m.Director, &m.Year, &m.RuntimeMinutes, &m.CoverImageKey, &m.Links, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	return m, nil
}

// Update overwrites all mutable columns of the movie and returns the
// persisted record. id and created_at are immutable.
func (r *Repository) Update(ctx context.Context, m *Movie) (*Movie, error) {
	out := &Movie{}
	err := r.db.QueryRow(ctx,
		`UPDATE movies
		 SET title = $2, director = $3, year = $4, runtime_minutes = $5, cover_image_key = $6, links = $7
		 WHERE id = $1
		 RETURNING id, title, director, year, runtime_minutes, cover_image_key, links, created_at`,
		m.ID, m.Title, m.Director, m.Year, m.RuntimeMinutes, m.CoverImageKey, m.Links,
	).Scan(&out.ID, &out.Title, &out.Director, &out.Year, &out.RuntimeMinutes, &out.CoverImageKey, &out.Links, &out.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}
	return out, nil
}

// Exists reports whether a movie with the given id is stored.
func (r *Repository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM movies WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check movie existence: %w", err)
	}
	return exists, nil
}
