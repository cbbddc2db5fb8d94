package handler

import (
	"net/http"

	"github.com/devsolutions/backend/internal/model"
	"github.com/devsolutions/backend/internal/service"
	"github.com/devsolutions/backend/internal/validation"
)

// TestimonialHandler serves client testimonials.
type TestimonialHandler struct {
	svc service.TestimonialService
}

func NewTestimonialHandler(svc service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{svc: svc}
}

// List handles GET /testimonials?featured=true.
func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context(), model.TestimonialFilter{FeaturedOnly: featuredOnly(r)})
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(list))
}

type testimonialRequest struct {
	ClientName     *string       `json:"client_name" validate:"required,notblank,max=200"`
	ClientPosition *string       `json:"client_position" validate:"omitempty,max=200"`
	Company        *string       `json:"company" validate:"omitempty,max=200"`
	Testimonial    *string       `json:"testimonial" validate:"required,notblank"`
	Rating         *model.Rating `json:"rating" validate:"omitempty,choice"`
	ImageURL       *string       `json:"image_url" validate:"omitempty,http_url,max=200"`
	Featured       *bool         `json:"featured"`
}

// Create handles POST /admin/testimonials. Rating defaults to 5.
func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req testimonialRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ClientName = validation.Trim(req.ClientName)
	req.ClientPosition = validation.NilIfBlank(req.ClientPosition)
	req.Company = validation.NilIfBlank(req.Company)
	req.Testimonial = validation.Trim(req.Testimonial)
	req.ImageURL = validation.NilIfBlank(req.ImageURL)
	if !validateRequest(w, r, &req) {
		return
	}

	t := &model.Testimonial{
		ClientName:     *req.ClientName,
		ClientPosition: req.ClientPosition,
		Company:        req.Company,
		Testimonial:    *req.Testimonial,
		ImageURL:       req.ImageURL,
		Featured:       req.Featured != nil && *req.Featured,
	}
	if req.Rating != nil {
		t.Rating = *req.Rating
	}
	if err := h.svc.Create(r.Context(), t); err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}
