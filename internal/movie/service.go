package movie

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Store is the persistence contract the service depends on. List returns
// movies newest-created first. *Repository satisfies it.
type Store interface {
	Insert(ctx context.Context, m *Movie) (*Movie, error)
	List(ctx context.Context) ([]*Movie, error)
	GetByID(ctx context.Context, id string) (*Movie, error)
	Update(ctx context.Context, m *Movie) (*Movie, error)
}

// URLSigner resolves a storage key into a fresh presigned view URL.
type URLSigner interface {
	PresignGet(ctx context.Context, key string) (string, error)
}

// CreateParams carries a validated create request.
type CreateParams struct {
	Title          string
	Director       string
	Year           int
	RuntimeMinutes int
	CoverImageKey  *string
	Links          []string
}

// UpdateParams carries a validated update request. CoverImageKeySet and
// LinksSet distinguish a field the caller omitted (preserve the stored
// value) from one set explicitly, including to null.
type UpdateParams struct {
	Title          string
	Director       string
	Year           int
	RuntimeMinutes int

	CoverImageKey    *string
	CoverImageKeySet bool
	Links            []string
	LinksSet         bool
}

// Service contains business logic for the movie catalogue.
type Service struct {
	store  Store
	signer URLSigner
}

// NewService creates a new movie Service.
func NewService(store Store, signer URLSigner) *Service {
	return &Service{store: store, signer: signer}
}

// Create stores a new movie under a server-generated id.
func (s *Service) Create(ctx context.Context, p CreateParams) (*Movie, error) {
	links := p.Links
	if links == nil {
		links = []string{}
	}

	m := &Movie{
		ID:             uuid.NewString(),
		Title:          p.Title,
		Director:       p.Director,
		Year:           p.Year,
		RuntimeMinutes: p.RuntimeMinutes,
		CoverImageKey:  p.CoverImageKey,
		Links:          links,
	}

	created, err := s.store.Insert(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}
	return s.withCoverURL(ctx, created)
}

// List returns all movies newest first, each with a freshly resolved cover URL.
func (s *Service) List(ctx context.Context) ([]*Movie, error) {
	movies, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range movies {
		if _, err := s.withCoverURL(ctx, m); err != nil {
			return nil, err
		}
	}
	return movies, nil
}

// Get returns a single movie with a freshly resolved cover URL.
func (s *Service) Get(ctx context.Context, id string) (*Movie, error) {
	m, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withCoverURL(ctx, m)
}

// Update overwrites the movie's mutable fields. Optional fields the caller
// omitted are read back from the stored record and preserved; an update is
// not a destructive overwrite of unspecified fields. The read-then-write is
// unguarded, so two concurrent updates of one movie can lose the optional
// fields of whichever lands first.
func (s *Service) Update(ctx context.Context, id string, p UpdateParams) (*Movie, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	coverKey := existing.CoverImageKey
	if p.CoverImageKeySet {
		coverKey = p.CoverImageKey
	}
	links := existing.Links
	if p.LinksSet {
		links = p.Links
	}
	if links == nil {
		links = []string{}
	}

	updated, err := s.store.Update(ctx, &Movie{
		ID:             id,
		Title:          p.Title,
		Director:       p.Director,
		Year:           p.Year,
		RuntimeMinutes: p.RuntimeMinutes,
		CoverImageKey:  coverKey,
		Links:          links,
	})
	if err != nil {
		return nil, err
	}
	return s.withCoverURL(ctx, updated)
}

// withCoverURL resolves the movie's cover key into a presigned view URL in
// place. Movies without a cover keep a null URL.
func (s *Service) withCoverURL(ctx context.Context, m *Movie) (*Movie, error) {
	if m.Links == nil {
		m.Links = []string{}
	}
	if m.CoverImageKey == nil {
		m.CoverURL = nil
		return m, nil
	}
	url, err := s.signer.PresignGet(ctx, *m.CoverImageKey)
	if err != nil {
		return nil, fmt.Errorf("resolve cover url: %w", err)
	}
	m.CoverURL = &url
	return m, nil
}
