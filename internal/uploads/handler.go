package uploads

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/shotdeck/service/internal/response"
)

const maxBodyBytes = 2 << 20

// Handler holds HTTP handlers for the upload endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new uploads Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type presignRequest struct {
	MovieID     string `json:"movieId"     example:"e7eedc79-0707-4fe4-8734-526b7ef13a7b"`
	Type        string `json:"type"        enums:"cover,annotation"`
	ContentType string `json:"contentType" example:"image/jpeg"`
}

type viewURLData struct {
	URL string `json:"url"`
}

// Presign godoc
//
//	@Summary		Presign an image upload
//	@Description	Returns a short-lived PUT URL and the derived storage key. The client must upload with exactly the declared Content-Type, then reference the key in a metadata call.
//	@Tags			uploads
//	@Accept			json
//	@Produce		json
//	@Param			request	body		presignRequest	true	"Upload intent"
//	@Success		200		{object}	PresignResult
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/uploads/presign [post]
func (h *Handler) Presign(w http.ResponseWriter, r *http.Request) {
	var req presignRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		response.BadRequest(w, `Invalid body. Expected { movieId:string, type:"cover"|"annotation", contentType:"image/*" }`)
		return
	}
	if req.MovieID == "" {
		response.BadRequest(w, "movieId must be a non-empty string")
		return
	}
	if req.Type != "cover" && req.Type != "annotation" {
		response.BadRequest(w, `type must be "cover" or "annotation"`)
		return
	}
	if !strings.HasPrefix(req.ContentType, "image/") {
		response.BadRequest(w, "contentType must be an image media type")
		return
	}

	result, err := h.svc.Presign(r.Context(), req.MovieID, req.Type, req.ContentType)
	if err != nil {
		log.Printf("POST /uploads/presign error: %v", err)
		response.InternalError(w, "Failed to presign upload")
		return
	}

	response.OK(w, result)
}

// ViewURL godoc
//
//	@Summary		Resolve a storage key into a view URL
//	@Description	Returns a presigned GET URL for a stored image, valid long enough for a page render.
//	@Tags			uploads
//	@Produce		json
//	@Param			key	query		string	true	"Storage key"
//	@Success		200	{object}	viewURLData
//	@Failure		400	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/uploads/view-url [get]
func (h *Handler) ViewURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")

	url, err := h.svc.ViewURL(r.Context(), key)
	if errors.Is(err, ErrInvalidKey) {
		response.BadRequest(w, "Missing or invalid key")
		return
	}
	if err != nil {
		log.Printf("GET /uploads/view-url error: %v", err)
		response.InternalError(w, "Failed to generate view URL")
		return
	}

	response.OK(w, viewURLData{URL: url})
}
