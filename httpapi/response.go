package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/terencecraig/debateUI-sub001/apierror"
)

// maxFallbackMessage caps how much of an unparsable response body is carried
// into an error message.
const maxFallbackMessage = 512

// errorEnvelope is the wire shape the debate API answers failures with.
type errorEnvelope struct {
	Error *apierror.Response `json:"error"`
}

// FromResponse classifies a non-success HTTP response into an error variant.
// The caller has already read the body; this function performs no I/O.
//
// Bodies carrying an {"error": {...}} envelope with a recognized kind
// reconstruct that exact variant: a NOT_FOUND payload gets its resource and
// id back, RATE_LIMIT takes the payload's retry_after_ms or, failing that,
// the Retry-After header, VALIDATION gets its issue messages back, and
// CONFLICT restores the optional conflicting resource.
//
// Anything else, an unknown kind, a plain-text body, or no body at all,
// degrades to FromStatus with the most informative message available: the
// envelope's message, then the trimmed body, then the status text.
func FromResponse(statusCode int, header http.Header, body []byte) apierror.Error {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		if apiErr := fromPayload(statusCode, header, envelope.Error); apiErr != nil {
			return apiErr
		}
		if envelope.Error.Message != "" {
			return FromStatus(statusCode, envelope.Error.Message)
		}
	}

	return FromStatus(statusCode, fallbackMessage(body))
}

// fromPayload reconstructs the variant named by the payload's kind tag.
// Returns nil for kinds this client does not recognize; unknown tags from a
// newer server degrade to status-based classification instead of failing.
func fromPayload(statusCode int, header http.Header, payload *apierror.Response) apierror.Error {
	switch apierror.Kind(payload.Kind) {
	case apierror.KindNetwork:
		var cause error
		if payload.Cause != "" {
			cause = errors.New(payload.Cause)
		}
		return apierror.NewNetworkError(payload.Message, cause)
	case apierror.KindValidation:
		return apierror.NewValidationError(apierror.IssuesFromMessages(payload.Issues...))
	case apierror.KindAuth:
		return apierror.NewAuthError(payload.Message, payloadStatus(payload, statusCode))
	case apierror.KindRateLimit:
		if payload.RetryAfterMs != nil {
			return apierror.NewRateLimitError(*payload.RetryAfterMs)
		}
		return apierror.NewRateLimitError(retryAfterMillis(header))
	case apierror.KindNotFound:
		return apierror.NewNotFoundError(payload.Resource, payload.ID)
	case apierror.KindConflict:
		conflictErr := apierror.NewConflictError(payload.Message)
		if payload.ConflictingResource != nil {
			conflictErr = conflictErr.WithConflictingResource(*payload.ConflictingResource)
		}
		return conflictErr
	case apierror.KindServer:
		return apierror.NewServerError(payloadStatus(payload, statusCode), payload.Message)
	default:
		return nil
	}
}

// payloadStatus prefers the status recorded by the producer over the one the
// response arrived with.
func payloadStatus(payload *apierror.Response, statusCode int) int {
	if payload.StatusCode != nil {
		return *payload.StatusCode
	}
	return statusCode
}

// fallbackMessage turns a raw body into a message: trimmed and capped, empty
// when there is nothing usable. The cap never splits a multi-byte rune.
func fallbackMessage(body []byte) string {
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxFallbackMessage {
		cut := maxFallbackMessage
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut]
	}
	return msg
}

// retryAfterMillis reads the Retry-After header: integer seconds or an
// HTTP-date, converted to milliseconds. Missing, unparseable, or already
// elapsed values yield 0.
func retryAfterMillis(header http.Header) int64 {
	value := header.Get("Retry-After")
	if value == "" {
		return 0
	}

	if seconds, err := strconv.ParseInt(value, 10, 64); err == nil {
		if seconds < 0 {
			return 0
		}
		return seconds * 1000
	}

	if at, err := http.ParseTime(value); err == nil {
		if wait := time.Until(at); wait > 0 {
			return wait.Milliseconds()
		}
	}

	return 0
}
