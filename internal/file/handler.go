package file

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/filedrop/service/internal/response"
)

// Handler holds HTTP handlers for file endpoints.
type Handler struct {
	svc            *Service
	maxUploadBytes int64
}

// NewHandler creates a new file Handler. maxUploadBytes caps the accepted
// request body size for uploads.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{svc: svc, maxUploadBytes: maxUploadBytes}
}

type healthResponse struct {
	Status  string `json:"status"  example:"up"`
	Message string `json:"message" example:"file service is running"`
}

type uploadResponse struct {
	FileID  string `json:"fileId"  example:"e7eedc79-0707-4fe4-8734-526b7ef13a7b"`
	FileURL string `json:"fileUrl" example:"http://localhost:9000/uploads/e7eedc79-0707-4fe4-8734-526b7ef13a7b"`
	Message string `json:"message" example:"file uploaded successfully"`
}

type fileResponse struct {
	FileID      string `json:"fileId"      example:"e7eedc79-0707-4fe4-8734-526b7ef13a7b"`
	FileURL     string `json:"fileUrl"     example:"http://localhost:9000/uploads/e7eedc79-...?X-Amz-Signature=..."`
	ContentType string `json:"contentType" example:"image/png"`
	Extension   string `json:"extension"   example:".png"`
}

type fileByNameResponse struct {
	FileName    string `json:"fileName"    example:"report.pdf"`
	FileURL     string `json:"fileUrl"     example:"http://localhost:9000/uploads/e7eedc79-...?X-Amz-Signature=..."`
	ContentType string `json:"contentType" example:"application/pdf"`
}

// Health godoc
//
//	@Summary		Health check
//	@Description	Reports whether the service is up.
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	healthResponse
//	@Router			/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, healthResponse{
		Status:  "up",
		Message: "file service is running",
	})
}

// Upload godoc
//
//	@Summary		Upload a file
//	@Description	Accepts one multipart file. Images are resized to 300×300 and re-encoded as PNG; PDFs are stored byte-identical. Other content types are rejected.
//	@Tags			files
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"file to upload"
//	@Success		200		{object}	uploadResponse
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	f, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			h.writeError(w, ErrMissingFile)
			return
		}
		response.ServerError(w, "invalid multipart form: "+err.Error())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.ServerError(w, "read uploaded file: "+err.Error())
		return
	}

	desc, err := h.svc.Upload(r.Context(), Upload{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, uploadResponse{
		FileID:  desc.ID,
		FileURL: desc.URL,
		Message: "file uploaded successfully",
	})
}

// GetByID godoc
//
//	@Summary		Retrieve a file by identifier
//	@Description	Resolves a stored file and mints a time-limited signed download URL.
//	@Tags			files
//	@Produce		json
//	@Param			fileId	path		string	true	"file identifier"
//	@Success		200		{object}	fileResponse
//	@Failure		404		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/file/{fileId} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "fileId")

	desc, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, fileResponse{
		FileID:      desc.ID,
		FileURL:     desc.URL,
		ContentType: desc.ContentType,
		Extension:   desc.Extension,
	})
}

// GetByName godoc
//
//	@Summary		Retrieve a file by original filename
//	@Description	Scans stored objects for the first whose original filename matches exactly. With duplicate filenames the match is arbitrary.
//	@Tags			files
//	@Produce		json
//	@Param			name	path		string	true	"original filename"
//	@Success		200		{object}	fileByNameResponse
//	@Failure		404		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/file-by-name/{name} [get]
func (h *Handler) GetByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	desc, err := h.svc.GetByName(r.Context(), name)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, fileByNameResponse{
		FileName:    name,
		FileURL:     desc.URL,
		ContentType: desc.ContentType,
	})
}

// List godoc
//
//	@Summary		List all stored files
//	@Description	Returns the public URL of every stored object, in store enumeration order.
//	@Tags			files
//	@Produce		json
//	@Success		200	{array}		string
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/files [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	urls, err := h.svc.ListURLs(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, urls)
}

// writeError maps pipeline errors onto the wire: not-found gets 404,
// everything else collapses to 500 with the error message as JSON.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		response.NotFound(w, err.Error())
		return
	}
	response.ServerError(w, err.Error())
}
