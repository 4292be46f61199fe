package movie

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

// newTestRouter mounts the movie handler on a chi router the same way main does.
func newTestRouter(t *testing.T) (*chi.Mux, *memStore) {
	t.Helper()
	store := newMemStore()
	h := NewHandler(NewService(store, &fakeSigner{}))

	r := chi.NewRouter()
	r.Post("/movies", h.Create)
	r.Get("/movies", h.List)
	r.Route("/movies/{movieID}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
	})
	return r, store
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateMovieScenario(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/movies",
		`{"title":"Heat","director":"Michael Mann","year":1995,"runtime_minutes":170}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var m Movie
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if m.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if m.Title != "Heat" || m.Year != 1995 || m.RuntimeMinutes != 170 {
		t.Fatalf("unexpected movie returned: %+v", m)
	}
	if m.Links == nil || len(m.Links) != 0 {
		t.Fatalf("expected links to default to [], got %#v", m.Links)
	}
}

func TestCreateMovieValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing title", `{"director":"D","year":2000,"runtime_minutes":90}`},
		{"blank title", `{"title":"  ","director":"D","year":2000,"runtime_minutes":90}`},
		{"missing director", `{"title":"T","year":2000,"runtime_minutes":90}`},
		{"year as string", `{"title":"T","director":"D","year":"1995","runtime_minutes":90}`},
		{"year before film", `{"title":"T","director":"D","year":1500,"runtime_minutes":90}`},
		{"runtime as string", `{"title":"T","director":"D","year":2000,"runtime_minutes":"90"}`},
		{"zero runtime", `{"title":"T","director":"D","year":2000,"runtime_minutes":0}`},
		{"links as number", `{"title":"T","director":"D","year":2000,"runtime_minutes":90,"links":42}`},
		{"links array of numbers", `{"title":"T","director":"D","year":2000,"runtime_minutes":90,"links":[1,2]}`},
		{"not json", `movie please`},
	}

	for _, tc := range cases {
		rec := doJSON(t, r, http.MethodPost, "/movies", tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d: %s", tc.name, rec.Code, rec.Body.String())
		}
		var errBody map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &errBody); err != nil || errBody["error"] == "" {
			t.Fatalf("%s: expected an error message body, got %s", tc.name, rec.Body.String())
		}
	}
}

func TestCreateMovieNormalizesLinksFromString(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/movies",
		`{"title":"T","director":"D","year":2000,"runtime_minutes":90,"links":"http://a\n  http://b  \n\n"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var m Movie
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(m.Links) != 2 || m.Links[0] != "http://a" || m.Links[1] != "http://b" {
		t.Fatalf("links were not normalized: %#v", m.Links)
	}
}

func TestCreateMovieNormalizesLinksFromArray(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/movies",
		`{"title":"T","director":"D","year":2000,"runtime_minutes":90,"links":[" http://a ","","http://b"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var m Movie
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(m.Links) != 2 || m.Links[0] != "http://a" || m.Links[1] != "http://b" {
		t.Fatalf("links were not normalized: %#v", m.Links)
	}
}

func TestUpdateMoviePreservesOmittedFieldsOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/movies",
		`{"title":"T","director":"D","year":2000,"runtime_minutes":90,"links":["http://a","http://b"],"cover_image_key":"covers/m/x.jpg"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created Movie
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	rec = doJSON(t, r, http.MethodPut, "/movies/"+created.ID,
		`{"title":"T2","director":"D","year":2001,"runtime_minutes":95}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated Movie
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(updated.Links) != 2 || updated.Links[0] != "http://a" || updated.Links[1] != "http://b" {
		t.Fatalf("omitted links wiped by update: %#v", updated.Links)
	}
	if updated.CoverImageKey == nil || *updated.CoverImageKey != "covers/m/x.jpg" {
		t.Fatalf("omitted cover key wiped by update: %v", updated.CoverImageKey)
	}
}

func TestUpdateMovieExplicitNullClearsCover(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/movies",
		`{"title":"T","director":"D","year":2000,"runtime_minutes":90,"cover_image_key":"covers/m/x.jpg"}`)
	var created Movie
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	rec = doJSON(t, r, http.MethodPut, "/movies/"+created.ID,
		`{"title":"T","director":"D","year":2000,"runtime_minutes":90,"cover_image_key":null}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated Movie
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if updated.CoverImageKey != nil {
		t.Fatalf("explicit null did not clear cover key: %v", *updated.CoverImageKey)
	}
}

func TestGetMovieNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/movies/0b0d7a1e-0000-0000-0000-000000000000", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestUpdateMovieNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPut, "/movies/0b0d7a1e-0000-0000-0000-000000000000",
		`{"title":"T","director":"D","year":2000,"runtime_minutes":90}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}
