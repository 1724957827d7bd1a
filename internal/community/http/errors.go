package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/commonhall/commonhall/internal/community/service"
	"github.com/commonhall/commonhall/pkg/residentsdk"
)

// writeServiceError maps service sentinels onto the wire error taxonomy.
// Handlers call this from their error branches so every endpoint speaks the
// same envelope. Unrecognized errors log and surface as server_error without
// leaking internals.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		apiErr := *residentsdk.ErrInvalidRequest
		apiErr.Description = err.Error()
		apiErr.WriteError(w)

	case errors.Is(err, service.ErrBuildingNotFound),
		errors.Is(err, service.ErrRequestNotFound),
		errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrProfileNotFound):
		apiErr := *residentsdk.ErrNotFound
		apiErr.Description = err.Error()
		apiErr.WriteError(w)

	case errors.Is(err, service.ErrBuildingExists),
		errors.Is(err, service.ErrPendingRequestExists),
		errors.Is(err, service.ErrRequestAlreadyReviewed):
		apiErr := *residentsdk.ErrConflict
		apiErr.Description = err.Error()
		apiErr.WriteError(w)

	case errors.Is(err, service.ErrNotVerified):
		residentsdk.ErrNotVerified.WriteError(w)

	case errors.Is(err, service.ErrWrongBuilding):
		residentsdk.ErrWrongBuilding.WriteError(w)

	default:
		log.Error("unhandled service error", "error", err)
		residentsdk.ErrServerError.WriteError(w)
	}
}

// writeInvalidBody is the shared response for undecodable JSON bodies.
func writeInvalidBody(w http.ResponseWriter) {
	apiErr := *residentsdk.ErrInvalidRequest
	apiErr.Description = "invalid JSON in request body"
	apiErr.WriteError(w)
}
