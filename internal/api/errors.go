package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/randpic-api/internal/api/shared"
	"github.com/phrazzld/randpic-api/internal/gallery"
	"github.com/phrazzld/randpic-api/internal/selector"
)

// Client-facing error messages.
const (
	MsgNoImages      = "No images found in the specified type."
	MsgReadFailed    = "Failed to read image"
	MsgUnexpectedErr = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, selector.ErrNoMatch):
		return http.StatusNotFound
	case errors.Is(err, gallery.ErrFileRead):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err that does not
// leak paths or other internal details.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return MsgUnexpectedErr
	case errors.Is(err, selector.ErrNoMatch):
		return MsgNoImages
	case errors.Is(err, gallery.ErrFileRead):
		return MsgReadFailed
	default:
		return MsgUnexpectedErr
	}
}

// HandleAPIError writes the mapped status and safe message for err and logs
// the details with any extra attributes.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, attrs ...slog.Attr) {
	shared.RespondWithErrorAndLog(
		w,
		r,
		MapErrorToStatusCode(err),
		GetSafeErrorMessage(err),
		err,
		shared.WithLogAttrs(attrs...),
	)
}
