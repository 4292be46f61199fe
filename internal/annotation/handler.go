package annotation

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shotdeck/service/internal/response"
)

const maxBodyBytes = 2 << 20

// Handler holds HTTP handlers for annotation endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new annotation Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type createRequest struct {
	TimeSeconds *int    `json:"time_seconds" example:"5400"`
	Title       *string `json:"title"        example:"Diner scene"`
	Body        *string `json:"body"`
	ImageKey    *string `json:"image_key"`
}

type updateRequest struct {
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	ImageKey *string `json:"image_key"`
}

// Create godoc
//
//	@Summary		Create an annotation
//	@Description	Attach a timestamped note to an existing movie.
//	@Tags			annotations
//	@Accept			json
//	@Produce		json
//	@Param			movieID	path		string			true	"Movie id"
//	@Param			request	body		createRequest	true	"Annotation metadata"
//	@Success		201		{object}	Annotation
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		404		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/movies/{movieID}/annotations [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieID")

	var req createRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid body. Expected { time_seconds:number, title:string, (optional) body:string, (optional) image_key:string }")
		return
	}
	if req.TimeSeconds == nil || *req.TimeSeconds < 0 {
		response.BadRequest(w, "time_seconds must be a non-negative number")
		return
	}
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		response.BadRequest(w, "title must be a non-empty string")
		return
	}

	a, err := h.svc.Create(r.Context(), movieID, CreateParams{
		TimeSeconds: *req.TimeSeconds,
		Title:       *req.Title,
		Body:        req.Body,
		ImageKey:    req.ImageKey,
	})
	if errors.Is(err, ErrMovieNotFound) {
		response.NotFound(w, "Movie not found")
		return
	}
	if err != nil {
		log.Printf("POST /movies/%s/annotations error: %v", movieID, err)
		response.InternalError(w, "Failed to create annotation")
		return
	}

	response.Created(w, a)
}

// List godoc
//
//	@Summary		List annotations for a movie
//	@Description	Returns the movie's annotations ordered by time_seconds, then creation time. An unknown movie id yields an empty list.
//	@Tags			annotations
//	@Produce		json
//	@Param			movieID	path		string	true	"Movie id"
//	@Success		200		{array}		Annotation
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/movies/{movieID}/annotations [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieID")

	annotations, err := h.svc.ListByMovie(r.Context(), movieID)
	if err != nil {
		log.Printf("GET /movies/%s/annotations error: %v", movieID, err)
		response.InternalError(w, "Failed to fetch annotations")
		return
	}

	response.OK(w, annotations)
}

// Update godoc
//
//	@Summary		Update an annotation
//	@Description	Overwrite title, body, and image key. Both title and body are required; an omitted image_key clears the stored one.
//	@Tags			annotations
//	@Accept			json
//	@Produce		json
//	@Param			movieID			path		string			true	"Movie id"
//	@Param			annotationID	path		string			true	"Annotation id"
//	@Param			request			body		updateRequest	true	"Annotation fields"
//	@Success		200				{object}	Annotation
//	@Failure		400				{object}	response.ErrorBody
//	@Failure		404				{object}	response.ErrorBody
//	@Failure		500				{object}	response.ErrorBody
//	@Router			/movies/{movieID}/annotations/{annotationID} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieID")
	annotationID := chi.URLParam(r, "annotationID")

	var req updateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid body. Expected { title:string, body:string, (optional) image_key:string }")
		return
	}
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		response.BadRequest(w, "title must be a non-empty string")
		return
	}
	if req.Body == nil {
		response.BadRequest(w, "body must be a string")
		return
	}

	a, err := h.svc.Update(r.Context(), movieID, annotationID, UpdateParams{
		Title:    *req.Title,
		Body:     *req.Body,
		ImageKey: req.ImageKey,
	})
	if errors.Is(err, ErrNotFound) {
		response.NotFound(w, "Annotation not found")
		return
	}
	if err != nil {
		log.Printf("PUT /movies/%s/annotations/%s error: %v", movieID, annotationID, err)
		response.InternalError(w, "Failed to update annotation")
		return
	}

	response.OK(w, a)
}

// Delete godoc
//
//	@Summary		Delete an annotation
//	@Tags			annotations
//	@Param			movieID			path	string	true	"Movie id"
//	@Param			annotationID	path	string	true	"Annotation id"
//	@Success		204
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/movies/{movieID}/annotations/{annotationID} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieID")
	annotationID := chi.URLParam(r, "annotationID")

	err := h.svc.Delete(r.Context(), movieID, annotationID)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(w, "Annotation not found")
		return
	}
	if err != nil {
		log.Printf("DELETE /movies/%s/annotations/%s error: %v", movieID, annotationID, err)
		response.InternalError(w, "Failed to delete annotation")
		return
	}

	response.NoContent(w)
}
