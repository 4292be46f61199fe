package annotation

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

// memStore is an in-memory Store honoring the interface contract:
// ListByMovie returns annotations ordered by (time_seconds, created_at)
// ascending.
type memStore struct {
	annotations []*Annotation
	clock       time.Time
}

func newMemStore() *memStore {
	return &memStore{clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func copyAnnotation(a *Annotation) *Annotation {
	out := *a
	return &out
}

func (s *memStore) Insert(_ context.Context, a *Annotation) (*Annotation, error) {
	s.clock = s.clock.Add(time.Second)
	stored := copyAnnotation(a)
	stored.CreatedAt = s.clock
	s.annotations = append(s.annotations, stored)
	return copyAnnotation(stored), nil
}

func (s *memStore) ListByMovie(_ context.Context, movieID string) ([]*Annotation, error) {
	out := []*Annotation{}
	for _, a := range s.annotations {
		if a.MovieID == movieID {
			out = append(out, copyAnnotation(a))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TimeSeconds != out[j].TimeSeconds {
			return out[i].TimeSeconds < out[j].TimeSeconds
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *memStore) Update(_ context.Context, a *Annotation) (*Annotation, error) {
	for i, stored := range s.annotations {
		if stored.ID == a.ID && stored.MovieID == a.MovieID {
			updated := copyAnnotation(stored)
			updated.Title = a.Title
			updated.Body = a.Body
			updated.ImageKey = a.ImageKey
			s.annotations[i] = updated
			return copyAnnotation(updated), nil
		}
	}
	return nil, ErrNotFound
}

func (s *memStore) Delete(_ context.Context, movieID, id string) error {
	for i, stored := range s.annotations {
		if stored.ID == id && stored.MovieID == movieID {
			s.annotations = append(s.annotations[:i], s.annotations[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// memMovies answers existence checks from a fixed id set.
type memMovies struct {
	ids map[string]bool
}

func (m *memMovies) Exists(_ context.Context, id string) (bool, error) {
	return m.ids[id], nil
}

type fakeSigner struct {
	calls int
}

func (f *fakeSigner) PresignGet(_ context.Context, key string) (string, error) {
	f.calls++
	return "https://signed.example/" + key, nil
}

func newTestService() (*Service, *memStore) {
	store := newMemStore()
	movies := &memMovies{ids: map[string]bool{"movie-1": true, "movie-2": true}}
	return NewService(store, movies, &fakeSigner{}), store
}

func strptr(s string) *string { return &s }

func TestCreateAgainstUnknownMovieInsertsNothing(t *testing.T) {
	svc, store := newTestService()

	_, err := svc.Create(context.Background(), "no-such-movie", CreateParams{
		TimeSeconds: 10, Title: "Opening",
	})
	if !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
	if len(store.annotations) != 0 {
		t.Fatalf("expected no insert after failed existence check, store has %d rows", len(store.annotations))
	}
}

func TestListOrderedByTimeThenCreation(t *testing.T) {
	svc, _ := newTestService()

	for _, tc := range []struct {
		time  int
		title string
	}{
		{5400, "Diner scene"},
		{120, "Opening heist"},
		{120, "Second note at same second"},
		{30, "Titles"},
	} {
		if _, err := svc.Create(context.Background(), "movie-1", CreateParams{
			TimeSeconds: tc.time, Title: tc.title,
		}); err != nil {
			t.Fatalf("create %q: %v", tc.title, err)
		}
	}

	got, err := svc.ListByMovie(context.Background(), "movie-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Titles", "Opening heist", "Second note at same second", "Diner scene"}
	if len(got) != len(want) {
		t.Fatalf("expected %d annotations, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Title != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], got[i].Title)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].TimeSeconds < got[i-1].TimeSeconds {
			t.Fatalf("time_seconds not non-decreasing at position %d", i)
		}
	}
}

func TestListUnknownMovieReturnsEmptyList(t *testing.T) {
	svc, _ := newTestService()

	got, err := svc.ListByMovie(context.Background(), "no-such-movie")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %#v", got)
	}
}

func TestCreateResolvesImageURL(t *testing.T) {
	svc, _ := newTestService()

	a, err := svc.Create(context.Background(), "movie-1", CreateParams{
		TimeSeconds: 60, Title: "Shot", ImageKey: strptr("annotations/movie-1/x.png"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ImageURL == nil || *a.ImageURL != "https://signed.example/annotations/movie-1/x.png" {
		t.Fatalf("unexpected image url: %v", a.ImageURL)
	}
}

func TestUpdateScopedToParentMovie(t *testing.T) {
	svc, _ := newTestService()

	a, err := svc.Create(context.Background(), "movie-1", CreateParams{TimeSeconds: 60, Title: "Shot"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same annotation id, wrong parent: must not match.
	_, err = svc.Update(context.Background(), "movie-2", a.ID, UpdateParams{Title: "Hijacked", Body: "b"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-movie update, got %v", err)
	}

	updated, err := svc.Update(context.Background(), "movie-1", a.ID, UpdateParams{Title: "Renamed", Body: "notes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "Renamed" || updated.Body == nil || *updated.Body != "notes" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if updated.TimeSeconds != 60 {
		t.Fatalf("time_seconds should be immutable on update, got %d", updated.TimeSeconds)
	}
}

func TestUpdateClearsImageKeyWhenOmitted(t *testing.T) {
	svc, _ := newTestService()

	a, err := svc.Create(context.Background(), "movie-1", CreateParams{
		TimeSeconds: 60, Title: "Shot", ImageKey: strptr("annotations/movie-1/x.png"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.Update(context.Background(), "movie-1", a.ID, UpdateParams{Title: "Shot", Body: ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ImageKey != nil {
		t.Fatalf("expected image key cleared on full overwrite, got %v", *updated.ImageKey)
	}
}

func TestDeleteScopedToParentMovie(t *testing.T) {
	svc, store := newTestService()

	a, err := svc.Create(context.Background(), "movie-1", CreateParams{TimeSeconds: 60, Title: "Shot"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(context.Background(), "movie-2", a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-movie delete, got %v", err)
	}
	if len(store.annotations) != 1 {
		t.Fatalf("cross-movie delete removed a row")
	}

	if err := svc.Delete(context.Background(), "movie-1", a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.annotations) != 0 {
		t.Fatalf("expected annotation removed, store has %d rows", len(store.annotations))
	}
}
