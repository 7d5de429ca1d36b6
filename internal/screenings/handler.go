package screenings

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"screening-backend/internal/extract"
	"screening-backend/internal/match"
	"screening-backend/internal/requirement"
	"screening-backend/internal/shared/server/respond"
)

const maxUploadBytes = 5 << 20

// Handler serves the screenings endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the screenings routes on the given group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/screenings", h.create)
}

func (h *Handler) create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "Expected a multipart form", nil)
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "At least one file is required", nil)
		return
	}

	jobTitle := strings.TrimSpace(c.PostForm("job_title"))
	requirements := c.PostForm("job_requirements")

	var weights *match.Weights
	if raw := strings.TrimSpace(c.PostForm("weights")); raw != "" {
		var dto weightsDTO
		if err := json.Unmarshal([]byte(raw), &dto); err != nil {
			respond.Error(c, http.StatusBadRequest, "invalid_weights", "Weights must be a JSON object", nil)
			return
		}
		w := dto.toWeights()
		weights = &w
	}

	docs := make([]extract.RawDocument, 0, len(files))
	for _, fh := range files {
		if fh.Size > maxUploadBytes {
			respond.Error(c, http.StatusBadRequest, "file_too_large", "File exceeds the upload size limit", gin.H{"file": fh.Filename})
			return
		}
		content, err := readFile(fh)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "invalid_request", "Failed to read uploaded file", gin.H{"file": fh.Filename})
			return
		}
		docs = append(docs, extract.RawDocument{
			Content:   content,
			MediaType: fh.Header.Get("Content-Type"),
			FileName:  fh.Filename,
		})
	}

	batch, err := h.svc.Screen(c.Request.Context(), docs, jobTitle, requirements, weights)
	switch {
	case errors.Is(err, requirement.ErrEmptyRequirements):
		respond.Error(c, http.StatusBadRequest, "empty_requirements", "Job requirements text is required", nil)
		return
	case errors.Is(err, match.ErrConfiguration):
		respond.Error(c, http.StatusBadRequest, "configuration_error", "Weights must be non-negative and sum to 100", nil)
		return
	case err != nil:
		respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
		return
	}

	respond.OK(c, ToBatchResponse(batch))
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
}
