package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/devsolutions/backend/internal/model"
	"github.com/devsolutions/backend/internal/repository"
	"github.com/devsolutions/backend/internal/service"
	"github.com/devsolutions/backend/internal/validation"
)

const msgProjectNotFound = "Project not found"

// PortfolioHandler serves the portfolio showcase.
type PortfolioHandler struct {
	svc service.PortfolioService
}

func NewPortfolioHandler(svc service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{svc: svc}
}

// featuredOnly reports whether ?featured=true was given. Any other value,
// "1" and "yes" included, means no filter.
func featuredOnly(r *http.Request) bool {
	return strings.ToLower(r.URL.Query().Get("featured")) == "true"
}

// List handles GET /portfolio?featured=true&category=web.
func (h *PortfolioHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.PortfolioFilter{
		FeaturedOnly: featuredOnly(r),
		Category:     model.PortfolioCategory(r.URL.Query().Get("category")),
	}
	list, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(list))
}

// Get handles GET /portfolio/{id}. A non-numeric id is reported as not found.
func (h *PortfolioHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgProjectNotFound)
		return
	}
	p, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgProjectNotFound)
			return
		}
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type portfolioRequest struct {
	Title        *string                  `json:"title" validate:"required,notblank,max=200"`
	Description  *string                  `json:"description" validate:"required,notblank"`
	ImageURL     *string                  `json:"image_url" validate:"omitempty,http_url,max=200"`
	Technologies *string                  `json:"technologies" validate:"required,notblank,max=500"`
	ProjectURL   *string                  `json:"project_url" validate:"omitempty,http_url,max=200"`
	GithubURL    *string                  `json:"github_url" validate:"omitempty,http_url,max=200"`
	Category     *model.PortfolioCategory `json:"category" validate:"required,choice"`
	Featured     *bool                    `json:"featured"`
}

func (req *portfolioRequest) normalize() {
	req.Title = validation.Trim(req.Title)
	req.Description = validation.Trim(req.Description)
	req.ImageURL = validation.NilIfBlank(req.ImageURL)
	req.Technologies = validation.Trim(req.Technologies)
	req.ProjectURL = validation.NilIfBlank(req.ProjectURL)
	req.GithubURL = validation.NilIfBlank(req.GithubURL)
}

// Create handles POST /admin/portfolio.
func (h *PortfolioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req portfolioRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.normalize()
	if !validateRequest(w, r, &req) {
		return
	}

	p := &model.PortfolioProject{
		Title:        *req.Title,
		Description:  *req.Description,
		ImageURL:     req.ImageURL,
		Technologies: *req.Technologies,
		ProjectURL:   req.ProjectURL,
		GithubURL:    req.GithubURL,
		Category:     *req.Category,
		Featured:     req.Featured != nil && *req.Featured,
	}
	if err := h.svc.Create(r.Context(), p); err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}
