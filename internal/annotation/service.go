package annotation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Store is the persistence contract the service depends on. ListByMovie
// returns annotations ordered by (time_seconds, created_at) ascending.
// *Repository satisfies it.
type Store interface {
	Insert(ctx context.Context, a *Annotation) (*Annotation, error)
	ListByMovie(ctx context.Context, movieID string) ([]*Annotation, error)
	Update(ctx context.Context, a *Annotation) (*Annotation, error)
	Delete(ctx context.Context, movieID, id string) error
}

// MovieStore answers movie-existence checks. *movie.Repository satisfies it.
type MovieStore interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// URLSigner resolves a storage key into a fresh presigned view URL.
type URLSigner interface {
	PresignGet(ctx context.Context, key string) (string, error)
}

// ErrMovieNotFound is returned when the parent movie does not exist.
// Distinct from ErrNotFound so a bad movie reference on create is not
// mistaken for a persistence failure.
var ErrMovieNotFound = errors.New("movie not found")

// CreateParams carries a validated create request.
type CreateParams struct {
	TimeSeconds int
	Title       string
	Body        *string
	ImageKey    *string
}

// UpdateParams carries a validated update request. Unlike create, body is
// required here; an omitted or null image_key clears the stored one.
type UpdateParams struct {
	Title    string
	Body     string
	ImageKey *string
}

// Service contains business logic for movie annotations.
type Service struct {
	store  Store
	movies MovieStore
	signer URLSigner
}

// NewService creates a new annotation Service.
func NewService(store Store, movies MovieStore, signer URLSigner) *Service {
	return &Service{store: store, movies: movies, signer: signer}
}

// Create stores a new annotation against an existing movie. The existence
// check runs before the insert so an unknown movie surfaces as
// ErrMovieNotFound rather than a foreign-key error.
func (s *Service) Create(ctx context.Context, movieID string, p CreateParams) (*Annotation, error) {
	exists, err := s.movies.Exists(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("check movie existence: %w", err)
	}
	if !exists {
		return nil, ErrMovieNotFound
	}

	a := &Annotation{
		ID:          uuid.NewString(),
		MovieID:     movieID,
		TimeSeconds: p.TimeSeconds,
		Title:       p.Title,
		Body:        p.Body,
		ImageKey:    p.ImageKey,
	}

	created, err := s.store.Insert(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create annotation: %w", err)
	}
	return s.withImageURL(ctx, created)
}

// ListByMovie returns the movie's annotations in timeline order, each with a
// freshly resolved image URL. An unknown movie id yields an empty list, not
// an error.
func (s *Service) ListByMovie(ctx context.Context, movieID string) ([]*Annotation, error) {
	annotations, err := s.store.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	for _, a := range annotations {
		if _, err := s.withImageURL(ctx, a); err != nil {
			return nil, err
		}
	}
	return annotations, nil
}

// Update overwrites the annotation's editable fields, scoped to the parent
// movie so an id collision across movies cannot leak.
func (s *Service) Update(ctx context.Context, movieID, id string, p UpdateParams) (*Annotation, error) {
	updated, err := s.store.Update(ctx, &Annotation{
		ID:       id,
		MovieID:  movieID,
		Title:    p.Title,
		Body:     &p.Body,
		ImageKey: p.ImageKey,
	})
	if err != nil {
		return nil, err
	}
	return s.withImageURL(ctx, updated)
}

// Delete removes the annotation, scoped to the parent movie.
func (s *Service) Delete(ctx context.Context, movieID, id string) error {
	return s.store.Delete(ctx, movieID, id)
}

// withImageURL resolves the annotation's image key into a presigned view URL
// in place. Annotations without an image keep a null URL.
func (s *Service) withImageURL(ctx context.Context, a *Annotation) (*Annotation, error) {
	if a.ImageKey == nil {
		a.ImageURL = nil
		return a, nil
	}
	url, err := s.signer.PresignGet(ctx, *a.ImageKey)
	if err != nil {
		return nil, fmt.Errorf("resolve image url: %w", err)
	}
	a.ImageURL = &url
	return a, nil
}
