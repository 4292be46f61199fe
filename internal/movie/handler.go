package movie

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shotdeck/service/internal/response"
)

// Metadata only; image bytes go directly to object storage.
const maxBodyBytes = 2 << 20

const invalidBodyMsg = "Invalid body. Expected { title:string, director:string, year:number, runtime_minutes:number, (optional) cover_image_key:string, (optional) links:string[] }"

// Handler holds HTTP handlers for movie endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new movie Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// optionalString distinguishes an omitted JSON field from an explicit null.
// UnmarshalJSON only runs when the key is present in the payload.
type optionalString struct {
	set   bool
	value *string
}

func (o *optionalString) UnmarshalJSON(b []byte) error {
	o.set = true
	if string(b) == "null" {
		return nil
	}
	return json.Unmarshal(b, &o.value)
}

// linksField accepts either an array of URL strings or a single
// newline-separated string (the form textarea shape), normalizing both to a
// trimmed list with blank entries dropped. Any other shape is rejected.
type linksField struct {
	set   bool
	value []string
}

func (f *linksField) UnmarshalJSON(b []byte) error {
	f.set = true
	if string(b) == "null" {
		f.value = []string{}
		return nil
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		f.value = cleanLinks(arr)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		f.value = cleanLinks(strings.Split(s, "\n"))
		return nil
	}
	return errors.New("links must be an array of strings or a newline-separated string")
}

func cleanLinks(raw []string) []string {
	links := []string{}
	for _, l := range raw {
		if trimmed := strings.TrimSpace(l); trimmed != "" {
			links = append(links, trimmed)
		}
	}
	return links
}

type movieRequest struct {
	Title          *string        `json:"title"           example:"Heat"`
	Director       *string        `json:"director"        example:"Michael Mann"`
	Year           *int           `json:"year"            example:"1995"`
	RuntimeMinutes *int           `json:"runtime_minutes" example:"170"`
	CoverImageKey  optionalString `json:"cover_image_key" swaggertype:"string"`
	Links          linksField     `json:"links"           swaggertype:"array,string"`
}

// validate returns a client-facing message for the first violated field
// constraint, or "" when the request is well-formed.
func (req *movieRequest) validate() string {
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		return "title must be a non-empty string"
	}
	if req.Director == nil || strings.TrimSpace(*req.Director) == "" {
		return "director must be a non-empty string"
	}
	if req.Year == nil || *req.Year < 1888 {
		return "year must be a number no earlier than 1888"
	}
	if req.RuntimeMinutes == nil || *req.RuntimeMinutes < 1 {
		return "runtime_minutes must be a positive number"
	}
	return ""
}

// Create godoc
//
//	@Summary		Create a movie
//	@Description	Catalogue a new movie. The id is generated server-side; links defaults to an empty list.
//	@Tags			movies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		movieRequest	true	"Movie metadata"
//	@Success		201		{object}	Movie
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/movies [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req movieRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		response.BadRequest(w, invalidBodyMsg)
		return
	}
	if msg := req.validate(); msg != "" {
		response.BadRequest(w, msg)
		return
	}

	m, err := h.svc.Create(r.Context(), CreateParams{
		Title:          *req.Title,
		Director:       *req.Director,
		Year:           *req.Year,
		RuntimeMinutes: *req.RuntimeMinutes,
		CoverImageKey:  req.CoverImageKey.value,
		Links:          req.Links.value,
	})
	if err != nil {
		log.Printf("POST /movies error: %v", err)
		response.InternalError(w, "Failed to create movie")
		return
	}

	response.Created(w, m)
}

// List godoc
//
//	@Summary		List movies
//	@Description	Returns all movies newest-created first, each with a freshly presigned cover view URL.
//	@Tags			movies
//	@Produce		json
//	@Success		200	{array}		Movie
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/movies [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.List(r.Context())
	if err != nil {
		log.Printf("GET /movies error: %v", err)
		response.InternalError(w, "Failed to fetch movies")
		return
	}

	response.OK(w, movies)
}

// Get godoc
//
//	@Summary		Get a movie
//	@Tags			movies
//	@Produce		json
//	@Param			movieID	path		string	true	"Movie id"
//	@Success		200		{object}	Movie
//	@Failure		404		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/movies/{movieID} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "movieID")

	m, err := h.svc.Get(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(w, "Movie not found")
		return
	}
	if err != nil {
		log.Printf("GET /movies/%s error: %v", id, err)
		response.InternalError(w, "Failed to fetch movie")
		return
	}

	response.OK(w, m)
}

// Update godoc
//
//	@Summary		Update a movie
//	@Description	Full-record update. cover_image_key and links, when omitted from the payload, keep their stored values; an explicit null clears the cover key.
//	@Tags			movies
//	@Accept			json
//	@Produce		json
//	@Param			movieID	path		string			true	"Movie id"
//	@Param			request	body		movieRequest	true	"Movie metadata"
//	@Success		200		{object}	Movie
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		404		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/movies/{movieID} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "movieID")

	var req movieRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		response.BadRequest(w, invalidBodyMsg)
		return
	}
	if msg := req.validate(); msg != "" {
		response.BadRequest(w, msg)
		return
	}

	m, err := h.svc.Update(r.Context(), id, UpdateParams{
		Title:            *req.Title,
		Director:         *req.Director,
		Year:             *req.Year,
		RuntimeMinutes:   *req.RuntimeMinutes,
		CoverImageKey:    req.CoverImageKey.value,
		CoverImageKeySet: req.CoverImageKey.set,
		Links:            req.Links.value,
		LinksSet:         req.Links.set,
	})
	if errors.Is(err, ErrNotFound) {
		response.NotFound(w, "Movie not found")
		return
	}
	if err != nil {
		log.Printf("PUT /movies/%s error: %v", id, err)
		response.InternalError(w, "Failed to update movie")
		return
	}

	response.OK(w, m)
}
