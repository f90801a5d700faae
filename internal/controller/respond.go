// internal/controller/respond.go
package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	appErrors "github.com/unclebandit/creatorhub-backend/internal/errors"
)

type ownerKey struct{}

// WithOwner stores the brand user id on the request context.
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerKey{}, ownerID)
}

// OwnerFromContext returns the brand user id, or "" if the request carried none.
func OwnerFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ownerKey{}).(string)
	return id
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeError maps application errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	var ve *appErrors.ValidationError
	var le *appErrors.DraftLoadError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: ve.Error(), Fields: ve.Fields})
	case appErrors.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, appErrors.ErrMissingOwner):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: err.Error()})
	case errors.Is(err, appErrors.ErrUnknownSection):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.As(err, &le):
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "draft storage unavailable"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}
