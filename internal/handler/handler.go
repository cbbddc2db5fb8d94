// Package handler exposes the lead-capture API over HTTP.
package handler

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/devsolutions/backend/internal/validation"
)

// maxBodyBytes caps request bodies read by decodeJSON.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type createdResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeInternalError logs err and answers 500 without exposing its text.
func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed",
		"request_id", GetRequestID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, "internal_error")
}

// decodeJSON reads the body into dst. An empty body leaves dst untouched so
// that validation reports the missing fields. A value of the wrong JSON type
// is reported against its field. On failure the 400 response has already
// been written and false is returned.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return true
	}

	err = json.Unmarshal(body, dst)
	if err == nil {
		return true
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if fe := fieldTypeErrors(body, dst); len(fe) > 0 {
			writeJSON(w, http.StatusBadRequest, fe)
			return false
		}
	}
	writeError(w, http.StatusBadRequest, "invalid_json")
	return false
}

// fieldTypeErrors decodes each member of a JSON object separately into the
// matching field of dst and reports the ones that do not fit. It returns nil
// when body is not an object.
func fieldTypeErrors(body []byte, dst any) validation.FieldErrors {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(body, &members); err != nil {
		return nil
	}
	t := reflect.TypeOf(dst)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	fe := validation.FieldErrors{}
	for i := range t.NumField() {
		sf := t.Field(i)
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		raw, ok := members[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, reflect.New(sf.Type).Interface()); err != nil {
			fe.Add(name, validation.MsgIncorrectType)
		}
	}
	return fe
}

// validateRequest runs the validate tags on req and writes a 400 with the
// field errors when it fails.
func validateRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	err := validation.Validate(req)
	if err == nil {
		return true
	}
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		writeJSON(w, http.StatusBadRequest, fe)
		return false
	}
	writeInternalError(w, r, err)
	return false
}

// pathID parses the {id} path segment. Only positive integers are accepted.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// orEmpty makes nil slices encode as [] rather than null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
