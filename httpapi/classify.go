package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/terencecraig/debateUI-sub001/apierror"
)

// FromStatus maps an HTTP status code to the matching error variant:
//
//   - 401, 403 → AuthError
//   - 400, 422 → ValidationError (the message becomes its single issue)
//   - 409 → ConflictError
//   - 429 → RateLimitError (no wait hint; see FromResponse for header support)
//   - everything else, 404 and 5xx included → ServerError
//
// A bare 404 is classified as a server error because a status alone cannot
// name the missing resource; NotFoundError is produced from response payloads
// (FromResponse) or directly by call sites that know the resource and id.
//
// An empty message falls back to http.StatusText.
func FromStatus(statusCode int, message string) apierror.Error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apierror.NewAuthError(message, statusCode)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apierror.NewValidationError(apierror.IssuesFromMessages(message))
	case http.StatusConflict:
		return apierror.NewConflictError(message)
	case http.StatusTooManyRequests:
		return apierror.NewRateLimitError(0)
	default:
		return apierror.NewServerError(statusCode, message)
	}
}

// FromError converts a transport-level failure into a NetworkError carrying
// the original error as its cause. Returns nil for nil.
//
// An error that already is (or wraps) a variant passes through unchanged, so
// classifying twice never double-wraps.
func FromError(err error) apierror.Error {
	if err == nil {
		return nil
	}

	var apiErr apierror.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apierror.NewNetworkError("request timed out", err)
	case errors.Is(err, context.Canceled):
		return apierror.NewNetworkError("request canceled", err)
	default:
		return apierror.NewNetworkError("request failed", err)
	}
}
