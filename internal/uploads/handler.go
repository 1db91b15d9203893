package uploads

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/server/respond"
	"jobboard-backend/internal/shared/telemetry"
	"jobboard-backend/internal/shared/util"
)

// Handler serves stored resume files.
type Handler struct {
	Intake *Intake
}

// NewHandler constructs a Handler.
func NewHandler(intake *Intake) *Handler {
	return &Handler{Intake: intake}
}

// RegisterRoutes attaches the static file route to the engine root.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/uploads/:filename", h.serve)
}

func (h *Handler) serve(c *gin.Context) {
	name, err := util.SanitizeFileName(c.Param("filename"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid file name", nil)
		return
	}

	f, err := h.Intake.Open(c.Request.Context(), name)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			telemetry.Error("uploads.serve.failed", map[string]any{
				"file":       name,
				"err":        err.Error(),
				"request_id": c.GetString("requestId"),
			})
		}
		respond.Error(c, http.StatusNotFound, "not_found", "File not found", nil)
		return
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, f); err != nil {
		telemetry.Warn("uploads.serve.copy_failed", map[string]any{
			"file": name,
			"err":  err.Error(),
		})
	}
}
