package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/devsolutions/backend/internal/metrics"
	"github.com/devsolutions/backend/internal/model"
	"github.com/devsolutions/backend/internal/repository"
	"github.com/devsolutions/backend/internal/service"
	"github.com/devsolutions/backend/internal/validation"
)

const (
	msgSubscribed        = "Successfully subscribed to newsletter!"
	msgAlreadySubscribed = "You are already subscribed to our newsletter!"
	msgUnsubscribed      = "Successfully unsubscribed from newsletter"
	msgEmailRequired     = "Email is required"
	msgEmailNotFound     = "Email not found in our subscription list"
)

// NewsletterHandler はニュースレターの購読・解除・一覧を扱う
type NewsletterHandler struct {
	svc service.NewsletterService
}

func NewNewsletterHandler(svc service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{svc: svc}
}

type subscribeRequest struct {
	Email *string `json:"email" validate:"required,notblank,email,max=254"`
}

// Subscribe handles POST /newsletter/subscribe. A new address gets 201; an
// address that is already active, or was inactive and is now reactivated,
// gets 200.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Email = validation.Trim(req.Email)
	if !validateRequest(w, r, &req) {
		return
	}

	res, err := h.svc.Subscribe(r.Context(), *req.Email)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	metrics.RecordNewsletter(res.String())

	if res == model.Subscribed {
		writeJSON(w, http.StatusCreated, messageResponse{Message: msgSubscribed})
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msgAlreadySubscribed})
}

type unsubscribeRequest struct {
	Email *string `json:"email"`
}

// Unsubscribe handles POST /newsletter/unsubscribe. Only a missing or empty
// email is a 400; anything else, whitespace included, is trimmed and looked
// up, so an unknown or blank address answers 404. It is not format-checked.
func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req unsubscribeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == nil || *req.Email == "" {
		writeError(w, http.StatusBadRequest, msgEmailRequired)
		return
	}

	if err := h.svc.Unsubscribe(r.Context(), strings.TrimSpace(*req.Email)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgEmailNotFound)
			return
		}
		writeInternalError(w, r, err)
		return
	}
	metrics.RecordNewsletter("unsubscribed")

	writeJSON(w, http.StatusOK, messageResponse{Message: msgUnsubscribed})
}

// List handles GET /newsletter/list.
func (h *NewsletterHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(list))
}
