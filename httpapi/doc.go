// Package httpapi classifies HTTP outcomes from the debate API into the
// typed error variants of the apierror package.
//
// The package is the boundary between raw transport results and the typed
// error model: each thing a failed call can produce (a status code, a
// response body, a transport error) has one function here that turns it
// into a variant. All functions are pure; the caller issues requests, reads
// bodies, and decides what to do with the classified error.
//
// # Classifying a Response
//
// After a request completes with a non-success status, hand the status,
// headers, and body to FromResponse:
//
//	resp, err := client.Do(req)
//	if err != nil {
//		return httpapi.FromError(err)
//	}
//	defer resp.Body.Close()
//
//	if resp.StatusCode >= 400 {
//		body, _ := io.ReadAll(resp.Body)
//		return httpapi.FromResponse(resp.StatusCode, resp.Header, body)
//	}
//
// Bodies carrying an {"error": {...}} envelope reconstruct the exact variant
// the server produced, including the resource and id of a NOT_FOUND payload
// and the retry_after_ms of a RATE_LIMIT payload. Plain-text bodies and
// unknown payload kinds degrade to status-based classification.
//
// # Classifying by Status Alone
//
// When no body is available, FromStatus maps the status code directly:
//
//	err := httpapi.FromStatus(429, "")
//	// apierror.IsRateLimitError(err) == true
//
// # Transport Failures
//
// FromError wraps errors from the HTTP client itself (connection failures,
// timeouts, canceled contexts) into NetworkError with the original error as
// the cause. An error that already carries a variant passes through
// unchanged, so it is safe to apply at every return path.
//
// # Degradation Order
//
// FromResponse never fails: it prefers the envelope's kind, then the
// envelope's message, then the trimmed body, then http.StatusText. The
// result is always exactly one of the seven variants.
package httpapi
