package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"github.com/terencecraig/debateUI-sub001/apierror"
)

// envelopeFor serializes a variant the way the API does on the wire.
func envelopeFor(t *testing.T, err apierror.Error) []byte {
	t.Helper()
	body, marshalErr := json.Marshal(errorEnvelope{Error: apierror.ToResponse(err)})
	require.NoError(t, marshalErr)
	return body
}

func TestFromResponse_ReconstructsNotFound(t *testing.T) {
	original := apierror.NewNotFoundError("debate", "deb-123")
	body := envelopeFor(t, original)

	err := FromResponse(404, nil, body)

	var notFound *apierror.NotFoundError
	require.True(t, apierror.As(err, &notFound))
	require.Equal(t, "debate", notFound.Resource())
	require.Equal(t, "deb-123", notFound.ID())
	require.Equal(t, original.Error(), err.Error())
}

func TestFromResponse_ReconstructsValidation(t *testing.T) {
	original := apierror.NewValidationError(apierror.IssuesFromMessages(
		"title is required",
		"participants must not be empty",
		"format must be one of: standard, freestyle",
	))
	body := envelopeFor(t, original)

	err := FromResponse(422, nil, body)

	var valErr *apierror.ValidationError
	require.True(t, apierror.As(err, &valErr))
	require.Equal(t, 3, valErr.IssueCount())
	require.Equal(t, "title is required", valErr.Issues()[0].Message())
	require.Equal(t, "Validation Error (3 issues)", err.Error())
}

func TestFromResponse_ReconstructsAuth_PayloadStatusWins(t *testing.T) {
	original := apierror.NewAuthError("Invalid token", 401)
	body := envelopeFor(t, original)

	// The payload's recorded status beats the status the response came with
	err := FromResponse(403, nil, body)

	var authErr *apierror.AuthError
	require.True(t, apierror.As(err, &authErr))
	require.Equal(t, 401, authErr.StatusCode())
	require.Equal(t, "Invalid token", authErr.Message())
}

func TestFromResponse_AuthWithoutPayloadStatus(t *testing.T) {
	body := []byte(`{"error":{"kind":"AUTH","message":"access denied"}}`)

	err := FromResponse(403, nil, body)

	var authErr *apierror.AuthError
	require.True(t, apierror.As(err, &authErr))
	require.Equal(t, 403, authErr.StatusCode())
	require.Equal(t, "access denied", authErr.Message())
}

func TestFromResponse_ReconstructsRateLimit_PayloadWins(t *testing.T) {
	original := apierror.NewRateLimitError(5000)
	body := envelopeFor(t, original)

	header := http.Header{}
	header.Set("Retry-After", "1")

	err := FromResponse(429, header, body)

	var rateErr *apierror.RateLimitError
	require.True(t, apierror.As(err, &rateErr))
	require.Equal(t, int64(5000), rateErr.RetryAfterMs())
}

func TestFromResponse_RateLimitFromHeaderSeconds(t *testing.T) {
	body := []byte(`{"error":{"kind":"RATE_LIMIT"}}`)

	header := http.Header{}
	header.Set("Retry-After", "2")

	err := FromResponse(429, header, body)

	var rateErr *apierror.RateLimitError
	require.True(t, apierror.As(err, &rateErr))
	require.Equal(t, int64(2000), rateErr.RetryAfterMs())
	require.Equal(t, "Rate Limit Error: Retry after 2000ms", err.Error())
}

func TestFromResponse_RateLimitNoHint(t *testing.T) {
	body := []byte(`{"error":{"kind":"RATE_LIMIT"}}`)

	err := FromResponse(429, nil, body)

	var rateErr *apierror.RateLimitError
	require.True(t, apierror.As(err, &rateErr))
	require.Equal(t, int64(0), rateErr.RetryAfterMs())
}

func TestFromResponse_ReconstructsConflict(t *testing.T) {
	original := apierror.NewConflictError("Branch name taken").WithConflictingResource("branch-123")
	body := envelopeFor(t, original)

	err := FromResponse(409, nil, body)

	var conflictErr *apierror.ConflictError
	require.True(t, apierror.As(err, &conflictErr))
	require.Equal(t, "Branch name taken", conflictErr.Message())

	res, ok := conflictErr.ConflictingResource()
	require.True(t, ok)
	require.Equal(t, "branch-123", res)
}

func TestFromResponse_ReconstructsConflict_NoResource(t *testing.T) {
	original := apierror.NewConflictError("already voted")
	body := envelopeFor(t, original)

	err := FromResponse(409, nil, body)

	var conflictErr *apierror.ConflictError
	require.True(t, apierror.As(err, &conflictErr))

	_, ok := conflictErr.ConflictingResource()
	require.False(t, ok)
}

func TestFromResponse_ReconstructsNetwork(t *testing.T) {
	body := []byte(`{"error":{"kind":"NETWORK","message":"upstream unreachable","cause":"dial tcp: connection refused"}}`)

	err := FromResponse(502, nil, body)

	var netErr *apierror.NetworkError
	require.True(t, apierror.As(err, &netErr))
	require.Equal(t, "upstream unreachable", netErr.Message())
	require.Equal(t, "Network Error: upstream unreachable (Cause: dial tcp: connection refused)", err.Error())
}

func TestFromResponse_ReconstructsServer(t *testing.T) {
	original := apierror.NewServerError(503, "database migration in progress")
	body := envelopeFor(t, original)

	// Payload status survives even when a proxy rewrote the outer status
	err := FromResponse(502, nil, body)

	var serverErr *apierror.ServerError
	require.True(t, apierror.As(err, &serverErr))
	require.Equal(t, 503, serverErr.StatusCode())
	require.Equal(t, "database migration in progress", serverErr.Message())
}

func TestFromResponse_UnknownKindFallsBackWithMessage(t *testing.T) {
	body := []byte(`{"error":{"kind":"TEAPOT","message":"short and stout"}}`)

	err := FromResponse(418, nil, body)

	var serverErr *apierror.ServerError
	require.True(t, apierror.As(err, &serverErr))
	require.Equal(t, 418, serverErr.StatusCode())
	require.Equal(t, "short and stout", serverErr.Message())
}

func TestFromResponse_UnknownKindNoMessage(t *testing.T) {
	body := []byte(`{"error":{"kind":"TEAPOT"}}`)

	err := FromResponse(500, nil, body)

	// With nothing usable in the envelope the raw body is the message
	var serverErr *apierror.ServerError
	require.True(t, apierror.As(err, &serverErr))
	require.Equal(t, `{"error":{"kind":"TEAPOT"}}`, serverErr.Message())
}

func TestFromResponse_UnknownKindKeepsStatusMapping(t *testing.T) {
	// Unknown kind with a 429 outer status still classifies as rate limited
	body := []byte(`{"error":{"kind":"THROTTLED","message":"too eager"}}`)

	err := FromResponse(429, nil, body)
	require.True(t, apierror.IsRateLimitError(err))
}

func TestFromResponse_PlainTextBody(t *testing.T) {
	err := FromResponse(503, nil, []byte("  upstream maintenance window\n"))

	var serverErr *apierror.ServerError
	require.True(t, apierror.As(err, &serverErr))
	require.Equal(t, "upstream maintenance window", serverErr.Message())
}

func TestFromResponse_EmptyBody(t *testing.T) {
	err := FromResponse(502, nil, nil)

	var serverErr *apierror.ServerError
	require.True(t, apierror.As(err, &serverErr))
	require.Equal(t, "Bad Gateway", serverErr.Message())
}

func TestFromResponse_MalformedJSON(t *testing.T) {
	err := FromResponse(500, nil, []byte(`{"error":`))

	var serverErr *apierror.ServerError
	require.True(t, apierror.As(err, &serverErr))
	require.Equal(t, `{"error":`, serverErr.Message())
}

func TestFromResponse_HTMLBodyTruncated(t *testing.T) {
	body := []byte("<html>" + strings.Repeat("x", 2000))

	err := FromResponse(500, nil, body)

	var serverErr *apierror.ServerError
	require.True(t, apierror.As(err, &serverErr))
	require.Len(t, serverErr.Message(), maxFallbackMessage)
}

func TestFromResponse_RoundTripAllVariants(t *testing.T) {
	tests := []struct {
		name     string
		original apierror.Error
	}{
		{"network", apierror.NewNetworkError("upstream unreachable", nil)},
		{"validation", apierror.NewValidationError(apierror.IssuesFromMessages("a", "b"))},
		{"validation_empty", apierror.NewValidationError(nil)},
		{"auth", apierror.NewAuthError("Invalid token", 401)},
		{"rate_limit", apierror.NewRateLimitError(5000)},
		{"not_found", apierror.NewNotFoundError("debate", "deb-123")},
		{"conflict", apierror.NewConflictError("taken")},
		{"conflict_with_resource", apierror.NewConflictError("taken").WithConflictingResource("branch-1")},
		{"server", apierror.NewServerError(500, "internal")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := envelopeFor(t, tt.original)
			got := FromResponse(400, nil, body)

			require.Equal(t, tt.original.Kind(), got.Kind())
			require.Equal(t, tt.original.Error(), got.Error())
		})
	}
}

func TestRetryAfterMillis(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int64
	}{
		{"missing", "", 0},
		{"seconds", "5", 5000},
		{"zero", "0", 0},
		{"negative", "-3", 0},
		{"not_a_number", "soon", 0},
		{"http_date_in_past", "Wed, 21 Oct 2015 07:28:00 GMT", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.value != "" {
				header.Set("Retry-After", tt.value)
			}
			require.Equal(t, tt.want, retryAfterMillis(header))
		})
	}
}

func TestRetryAfterMillis_FutureHTTPDate(t *testing.T) {
	header := http.Header{}
	header.Set("Retry-After", time.Now().Add(10*time.Second).UTC().Format(http.TimeFormat))

	// The format carries whole seconds, so the wait lands below the
	// ten-second mark but stays well above zero.
	got := retryAfterMillis(header)
	require.Greater(t, got, int64(0))
	require.LessOrEqual(t, got, int64(10000))
}

func TestFallbackMessage(t *testing.T) {
	require.Equal(t, "", fallbackMessage(nil))
	require.Equal(t, "", fallbackMessage([]byte("  \n\t ")))
	require.Equal(t, "boom", fallbackMessage([]byte("  boom\n")))

	long := strings.Repeat("a", maxFallbackMessage+100)
	require.Len(t, fallbackMessage([]byte(long)), maxFallbackMessage)
}

func TestFallbackMessage_TruncatesOnRuneBoundary(t *testing.T) {
	// A three-byte rune straddling the cap is dropped whole
	body := []byte(strings.Repeat("a", maxFallbackMessage-1) + "世界")

	msg := fallbackMessage(body)
	require.Equal(t, strings.Repeat("a", maxFallbackMessage-1), msg)
	require.True(t, utf8.ValidString(msg))

	// A rune ending exactly at the cap survives
	body = []byte(strings.Repeat("a", maxFallbackMessage-2) + "ééé")

	msg = fallbackMessage(body)
	require.Len(t, msg, maxFallbackMessage)
	require.True(t, utf8.ValidString(msg))
	require.True(t, strings.HasSuffix(msg, "é"))
}
