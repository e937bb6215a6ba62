package handler

import (
	"context"
	"errors"
	"net/http"

	"medical-api/internal/delivery/http/middleware"
	"medical-api/internal/usecase"
	"medical-api/pkg/response"
)

// writeError maps a usecase error onto the response status and body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *usecase.ValidationError
	var storeErr *usecase.StoreError

	switch {
	case errors.Is(err, context.Canceled):
		response.NoContent(w)
	case errors.Is(err, usecase.ErrRecordNotFound):
		response.NotFound(w)
	case errors.As(err, &validationErr):
		response.ValidationError(w, validationErr.Messages)
	case errors.As(err, &storeErr):
		middleware.LoggerFromContext(r.Context()).Errorf("Store update failed: %+v", err)
		response.InternalServerError(w, "Database Update Error", storeErr.Detail())
	default:
		middleware.LoggerFromContext(r.Context()).Errorf("Request failed: %+v", err)
		response.InternalServerError(w, "", "An unexpected error occurred")
	}
}
