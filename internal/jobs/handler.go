package jobs

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/server/respond"
	"jobboard-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the job repo and optional cache.
type Handler struct {
	Repo  Repo
	Cache *Cache
}

// NewHandler constructs a Handler. cache may be nil.
func NewHandler(repo Repo, cache *Cache) *Handler {
	return &Handler{Repo: repo, Cache: cache}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/company/:companyId", h.listByCompany)
	rg.GET("/:id", h.getByID)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}

type createJobRequest struct {
	CompanyID                 int64           `json:"companyId"`
	Title                     string          `json:"title"`
	Department                string          `json:"department"`
	EmploymentType            string          `json:"employmentType"`
	WorkMode                  string          `json:"workMode"`
	Location                  string          `json:"location"`
	Description               string          `json:"description"`
	Responsibilities          string          `json:"responsibilities"`
	RequiredQualifications    string          `json:"requiredQualifications"`
	PreferredQualifications   string          `json:"preferredQualifications"`
	SalaryRange               string          `json:"salaryRange"`
	Benefits                  string          `json:"benefits"`
	PostingDate               *time.Time      `json:"postingDate"`
	ApplicationDeadline       *time.Time      `json:"applicationDeadline"`
	HiringManager             string          `json:"hiringManager"`
	RecruiterContact          string          `json:"recruiterContact"`
	EqualOpportunityStatement string          `json:"equalOpportunityStatement"`
	ApprovalStatus            string          `json:"approvalStatus"`
	ApplicationForm           ApplicationForm `json:"applicationForm"`
}

func (h *Handler) create(c *gin.Context) {
	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "title is required", nil)
		return
	}

	now := time.Now().UTC()
	job := Job{
		CompanyID:                 req.CompanyID,
		Title:                     req.Title,
		Department:                req.Department,
		EmploymentType:            req.EmploymentType,
		WorkMode:                  req.WorkMode,
		Location:                  req.Location,
		Description:               req.Description,
		Responsibilities:          req.Responsibilities,
		RequiredQualifications:    req.RequiredQualifications,
		PreferredQualifications:   req.PreferredQualifications,
		SalaryRange:               req.SalaryRange,
		Benefits:                  req.Benefits,
		PostingDate:               now,
		ApplicationDeadline:       req.ApplicationDeadline,
		HiringManager:             req.HiringManager,
		RecruiterContact:          req.RecruiterContact,
		EqualOpportunityStatement: req.EqualOpportunityStatement,
		ApprovalStatus:            req.ApprovalStatus,
		ApplicationForm:           req.ApplicationForm,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
	if req.PostingDate != nil {
		job.PostingDate = *req.PostingDate
	}
	if strings.TrimSpace(job.ApprovalStatus) == "" {
		job.ApprovalStatus = ApprovalPending
	}
	job.ApplicationForm.Normalize()

	created, err := h.Repo.Create(c.Request.Context(), job)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to create job", nil)
		return
	}

	c.Set("jobId", created.ID)
	telemetry.Info("job.created", map[string]any{
		"job_id":          created.ID,
		"company_id":      created.CompanyID,
		"title":           created.Title,
		"required_fields": created.ApplicationForm.RequiredFields,
	})
	respond.Created(c, created)
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to list jobs", nil)
		return
	}
	respond.OK(c, list)
}

func (h *Handler) listByCompany(c *gin.Context) {
	companyID, err := strconv.ParseInt(c.Param("companyId"), 10, 64)
	if err != nil {
		respond.OK(c, []Job{})
		return
	}
	list, err := h.Repo.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to list jobs", nil)
		return
	}
	respond.OK(c, list)
}

func (h *Handler) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "Job not found", nil)
		return
	}

	if job, ok := h.Cache.Get(c.Request.Context(), id); ok {
		respond.OK(c, job)
		return
	}

	job, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Job not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch job", nil)
		return
	}
	h.Cache.Set(c.Request.Context(), job)
	respond.OK(c, job)
}

func (h *Handler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "Job not found", nil)
		return
	}

	var patch Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body", nil)
		return
	}

	job, err := h.Repo.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Job not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to update job", nil)
		return
	}

	h.Cache.Invalidate(c.Request.Context(), id)
	c.Set("jobId", id)
	respond.OK(c, job)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "Job not found", nil)
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Job not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to delete job", nil)
		return
	}

	h.Cache.Invalidate(c.Request.Context(), id)
	c.Set("jobId", id)
	telemetry.Info("job.deleted", map[string]any{"job_id": id})
	respond.OK(c, gin.H{"success": true})
}
