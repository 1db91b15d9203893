package companies

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the company repo.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches company routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/:id", h.getByID)
}

type createCompanyRequest struct {
	Name         string `json:"name"`
	LogoURL      string `json:"logoUrl"`
	PrimaryColor string `json:"primaryColor"`
}

func (h *Handler) create(c *gin.Context) {
	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "name is required", nil)
		return
	}

	company, err := h.Repo.Create(c.Request.Context(), Company{
		Name:         req.Name,
		LogoURL:      req.LogoURL,
		PrimaryColor: req.PrimaryColor,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to create company", nil)
		return
	}

	respond.Created(c, company)
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to list companies", nil)
		return
	}
	respond.OK(c, list)
}

func (h *Handler) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "Company not found", nil)
		return
	}

	company, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Company not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch company", nil)
		return
	}
	respond.OK(c, company)
}
