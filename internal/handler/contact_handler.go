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

const contactThanks = "Thank you for your message! We will get back to you soon."

// ContactHandler handles contact form submission and the operator's inbox.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// contactRequest is the expected JSON body for POST /contact/submit.
type contactRequest struct {
	Name    *string `json:"name" validate:"required,notblank,max=200"`
	Email   *string `json:"email" validate:"required,notblank,email,max=254"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	Message *string `json:"message" validate:"required,notblank"`
}

func (req *contactRequest) normalize() {
	req.Name = validation.Trim(req.Name)
	req.Email = validation.Trim(req.Email)
	req.Phone = validation.NilIfBlank(req.Phone)
	req.Message = validation.Trim(req.Message)
}

// Submit handles POST /contact/submit.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.normalize()
	if !validateRequest(w, r, &req) {
		return
	}

	c := &model.ContactSubmission{
		Name:    *req.Name,
		Email:   *req.Email,
		Phone:   req.Phone,
		Message: *req.Message,
	}
	if err := h.contactService.Submit(r.Context(), c); err != nil {
		writeInternalError(w, r, err)
		return
	}
	metrics.RecordSubmission(metrics.KindContact)

	writeJSON(w, http.StatusCreated, createdResponse{Message: contactThanks, ID: c.ID})
}

// List handles GET /contact/list. Newest first.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.contactService.List(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(list))
}

type markReadRequest struct {
	IsRead *bool `json:"is_read" validate:"required"`
}

// MarkRead handles PATCH /admin/contacts/{id}/read.
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Contact submission not found")
		return
	}
	var req markReadRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, r, &req) {
		return
	}

	c, err := h.contactService.MarkRead(r.Context(), id, *req.IsRead)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Contact submission not found")
			return
		}
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
