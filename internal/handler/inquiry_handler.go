package handler

import (
	"errors"
	"net/http"

	"github.com/devsolutions/backend/internal/metrics"
	"github.com/devsolutions/backend/internal/model"
	"github.com/devsolutions/backend/internal/repository"
	"github.com/devsolutions/backend/internal/service"
	"github.com/devsolutions/backend/internal/validation"
)

const inquiryThanks = "Thank you for your inquiry! We will review it and get back to you soon."

// InquiryHandler handles project inquiry submission and triage.
type InquiryHandler struct {
	svc service.InquiryService
}

func NewInquiryHandler(svc service.InquiryService) *InquiryHandler {
	return &InquiryHandler{svc: svc}
}

type inquiryRequest struct {
	Name        *string            `json:"name" validate:"required,notblank,max=200"`
	Email       *string            `json:"email" validate:"required,notblank,email,max=254"`
	Company     *string            `json:"company" validate:"omitempty,max=200"`
	Phone       *string            `json:"phone" validate:"omitempty,max=20"`
	ProjectType *model.ProjectType `json:"project_type" validate:"required,choice"`
	BudgetRange *string            `json:"budget_range" validate:"omitempty,max=100"`
	Description *string            `json:"description" validate:"required,notblank"`
	Timeline    *string            `json:"timeline" validate:"omitempty,max=100"`
}

func (req *inquiryRequest) normalize() {
	req.Name = validation.Trim(req.Name)
	req.Email = validation.Trim(req.Email)
	req.Company = validation.NilIfBlank(req.Company)
	req.Phone = validation.NilIfBlank(req.Phone)
	req.BudgetRange = validation.NilIfBlank(req.BudgetRange)
	req.Description = validation.Trim(req.Description)
	req.Timeline = validation.NilIfBlank(req.Timeline)
}

// Submit handles POST /project-inquiry/submit. Any status in the body is
// ignored; new inquiries always start as "new".
func (h *InquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req inquiryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.normalize()
	if !validateRequest(w, r, &req) {
		return
	}

	inq := &model.ProjectInquiry{
		Name:        *req.Name,
		Email:       *req.Email,
		Company:     req.Company,
		Phone:       req.Phone,
		ProjectType: *req.ProjectType,
		BudgetRange: req.BudgetRange,
		Description: *req.Description,
		Timeline:    req.Timeline,
	}
	if err := h.svc.Submit(r.Context(), inq); err != nil {
		writeInternalError(w, r, err)
		return
	}
	metrics.RecordSubmission(metrics.KindProjectInquiry)

	writeJSON(w, http.StatusCreated, createdResponse{Message: inquiryThanks, ID: inq.ID})
}

// List handles GET /project-inquiry/list.
func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(list))
}

type statusRequest struct {
	Status *model.InquiryStatus `json:"status" validate:"required,choice"`
}

// UpdateStatus handles PATCH /admin/project-inquiries/{id}/status.
func (h *InquiryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Project inquiry not found")
		return
	}
	var req statusRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, r, &req) {
		return
	}

	inq, err := h.svc.UpdateStatus(r.Context(), id, *req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project inquiry not found")
			return
		}
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, inq)
}
