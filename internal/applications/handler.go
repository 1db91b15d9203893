package applications

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/server/respond"
	"jobboard-backend/internal/shared/telemetry"
	"jobboard-backend/internal/uploads"
)

// maxRequestBytes caps the whole multipart body. It sits above the resume
// ceiling so oversized files reach the intake and get its specific error.
const maxRequestBytes = 8 << 20

const customFieldPrefix = "custom_"

// Handler wires HTTP handlers to the submission service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches application routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.submit)
	rg.PATCH("/:id/status", h.updateStatus)
	rg.GET("", h.list)
	rg.GET("/job/:jobId", h.listByJob)
}

func (h *Handler) submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBytes)

	if err := c.Request.ParseMultipartForm(maxRequestBytes); err != nil {
		telemetry.Error("application.upload.parse_failed", map[string]any{
			"err":        err.Error(),
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusBadRequest, "upload_error", "File upload error", err.Error())
		return
	}

	req, err := parseSubmission(c)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	fileHeader, err := c.FormFile("resumeFile")
	if err == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			respond.Error(c, http.StatusBadRequest, "upload_error", "Unable to read uploaded file", nil)
			return
		}
		defer file.Close()
		req.Resume = &ResumeUpload{
			FileName:  fileHeader.Filename,
			SizeBytes: fileHeader.Size,
			Reader:    file,
		}
	}

	app, err := h.Svc.Submit(c.Request.Context(), req)
	if err != nil {
		h.respondSubmitError(c, err)
		return
	}

	c.Set("jobId", app.JobID)
	c.Set("applicationId", app.ID)
	respond.Created(c, app)
}

func (h *Handler) respondSubmitError(c *gin.Context, err error) {
	var missingErr *MissingFieldsError
	switch {
	case errors.Is(err, ErrJobNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Job not found", nil)
	case errors.As(err, &missingErr):
		respond.Error(c, http.StatusBadRequest, "validation_error", missingErr.Error(), gin.H{"missingFields": missingErr.Labels})
	case errors.Is(err, ErrResumeRequired):
		respond.Error(c, http.StatusBadRequest, "validation_error", ErrResumeRequired.Error(), nil)
	case errors.Is(err, uploads.ErrInvalidFileType), errors.Is(err, uploads.ErrFileTooLarge):
		respond.Error(c, http.StatusBadRequest, "upload_error", err.Error(), nil)
	default:
		telemetry.Error("application.submit.failed", map[string]any{
			"err":        err.Error(),
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to process application", nil)
	}
}

// parseSubmission translates the multipart wire format into an explicit
// submission: plain keys become known-field values and keys carrying the
// custom-field prefix become tagged custom values. This is the only place
// that knows about the prefix convention.
func parseSubmission(c *gin.Context) (SubmitRequest, error) {
	form := c.Request.MultipartForm
	if form == nil {
		return SubmitRequest{}, errors.New("Invalid submission body")
	}

	jobID, err := strconv.ParseInt(strings.TrimSpace(c.PostForm("jobId")), 10, 64)
	if err != nil {
		return SubmitRequest{}, errors.New("jobId is required")
	}

	req := SubmitRequest{
		JobID:  jobID,
		Fields: make(map[string]string, len(form.Value)),
	}
	var customKeys []string
	for key, values := range form.Value {
		if len(values) == 0 {
			continue
		}
		if strings.HasPrefix(key, customFieldPrefix) {
			customKeys = append(customKeys, key)
			continue
		}
		req.Fields[key] = values[0]
	}

	// Map iteration order is arbitrary; sort so repeated submissions
	// serialize their custom fields identically.
	sort.Strings(customKeys)
	for _, key := range customKeys {
		req.Custom = append(req.Custom, CustomFieldValue{
			Field: strings.TrimPrefix(key, customFieldPrefix),
			Value: form.Value[key][0],
		})
	}
	return req, nil
}

func (h *Handler) updateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "Application not found", nil)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body", nil)
		return
	}

	app, err := h.Svc.SetStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Application not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to update application status", nil)
		return
	}

	c.Set("applicationId", app.ID)
	respond.OK(c, app)
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to list applications", nil)
		return
	}
	respond.OK(c, list)
}

func (h *Handler) listByJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		respond.OK(c, []Application{})
		return
	}
	list, err := h.Svc.ListByJob(c.Request.Context(), jobID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to list applications", nil)
		return
	}
	respond.OK(c, list)
}
