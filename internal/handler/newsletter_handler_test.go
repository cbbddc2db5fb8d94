package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/devsolutions/backend/internal/model"
	"github.com/devsolutions/backend/internal/repository"
	"github.com/devsolutions/backend/internal/validation"
)

func TestNewsletterHandler_Subscribe(t *testing.T) {
	tests := []struct {
		name     string
		result   model.SubscribeResult
		wantCode int
		wantMsg  string
	}{
		{"new address", model.Subscribed, http.StatusCreated, msgSubscribed},
		{"already active", model.AlreadySubscribed, http.StatusOK, msgAlreadySubscribed},
		{"reactivated", model.Reactivated, http.StatusOK, msgAlreadySubscribed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotEmail string
			h := NewNewsletterHandler(&mockNewsletterService{
				subscribeFunc: func(ctx context.Context, email string) (model.SubscribeResult, error) {
					gotEmail = email
					return tt.result, nil
				},
			})

			rec := serve(h.Subscribe, http.MethodPost, "/api/newsletter/subscribe", `{"email":" Reader@Example.com "}`)
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if m := decodeMap(t, rec); m["message"] != tt.wantMsg {
				t.Errorf("message = %v", m["message"])
			}
			if gotEmail != "Reader@Example.com" {
				t.Errorf("email passed as %q", gotEmail)
			}
		})
	}
}

func TestNewsletterHandler_Subscribe_Invalid(t *testing.T) {
	h := NewNewsletterHandler(&mockNewsletterService{
		subscribeFunc: func(ctx context.Context, email string) (model.SubscribeResult, error) {
			t.Fatal("Subscribe must not be called")
			return 0, nil
		},
	})

	tests := map[string]string{
		`{}`:                  validation.MsgRequired,
		`{"email":""}`:        validation.MsgBlank,
		`{"email":"nope"}`:    validation.MsgEmail,
	}
	for body, want := range tests {
		rec := serve(h.Subscribe, http.MethodPost, "/api/newsletter/subscribe", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, rec.Code)
			continue
		}
		if got := fieldMessages(t, rec, "email"); len(got) != 1 || got[0] != want {
			t.Errorf("%s: got %v, want [%q]", body, got, want)
		}
	}
}

func TestNewsletterHandler_Subscribe_ServiceError(t *testing.T) {
	h := NewNewsletterHandler(&mockNewsletterService{
		subscribeFunc: func(ctx context.Context, email string) (model.SubscribeResult, error) {
			return 0, errors.New("boom")
		},
	})
	rec := serve(h.Subscribe, http.MethodPost, "/api/newsletter/subscribe", `{"email":"a@example.com"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestNewsletterHandler_Unsubscribe(t *testing.T) {
	var gotEmail string
	h := NewNewsletterHandler(&mockNewsletterService{
		unsubscribeFunc: func(ctx context.Context, email string) error {
			gotEmail = email
			return nil
		},
	})

	rec := serve(h.Unsubscribe, http.MethodPost, "/api/newsletter/unsubscribe", `{"email":"a@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if m := decodeMap(t, rec); m["message"] != msgUnsubscribed {
		t.Errorf("message = %v", m["message"])
	}
	if gotEmail != "a@example.com" {
		t.Errorf("email = %q", gotEmail)
	}
}

func TestNewsletterHandler_Unsubscribe_EmailRequired(t *testing.T) {
	h := NewNewsletterHandler(&mockNewsletterService{})
	for _, body := range []string{`{}`, `{"email":""}`, `{"email":null}`, ``} {
		rec := serve(h.Unsubscribe, http.MethodPost, "/api/newsletter/unsubscribe", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%q: expected 400, got %d", body, rec.Code)
			continue
		}
		if m := decodeMap(t, rec); m["error"] != msgEmailRequired {
			t.Errorf("%q: error = %v", body, m["error"])
		}
	}
}

func TestNewsletterHandler_Unsubscribe_NotFound(t *testing.T) {
	h := NewNewsletterHandler(&mockNewsletterService{
		unsubscribeFunc: func(ctx context.Context, email string) error {
			return repository.ErrNotFound
		},
	})
	rec := serve(h.Unsubscribe, http.MethodPost, "/api/newsletter/unsubscribe", `{"email":"ghost@example.com"}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if m := decodeMap(t, rec); m["error"] != msgEmailNotFound {
		t.Errorf("error = %v", m["error"])
	}
}

func TestNewsletterHandler_Unsubscribe_BlankEmailIsLookedUp(t *testing.T) {
	var gotEmail *string
	h := NewNewsletterHandler(&mockNewsletterService{
		unsubscribeFunc: func(ctx context.Context, email string) error {
			gotEmail = &email
			return repository.ErrNotFound
		},
	})
	rec := serve(h.Unsubscribe, http.MethodPost, "/api/newsletter/unsubscribe", `{"email":"   "}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if m := decodeMap(t, rec); m["error"] != msgEmailNotFound {
		t.Errorf("error = %v", m["error"])
	}
	if gotEmail == nil || *gotEmail != "" {
		t.Errorf("service should get the trimmed address, got %v", gotEmail)
	}
}

func TestNewsletterHandler_List(t *testing.T) {
	h := NewNewsletterHandler(&mockNewsletterService{
		listFunc: func(ctx context.Context) ([]*model.NewsletterSubscription, error) {
			return []*model.NewsletterSubscription{
				{ID: 2, Email: "b@example.com", IsActive: false},
				{ID: 1, Email: "a@example.com", IsActive: true},
			}, nil
		},
	})
	rec := serve(h.List, http.MethodGet, "/api/newsletter/list", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []model.NewsletterSubscription
	decodeInto(t, rec, &got)
	if len(got) != 2 || got[0].IsActive {
		t.Errorf("inactive subscriptions must be listed too: %+v", got)
	}
}
