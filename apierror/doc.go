// Package apierror models the failures a remote API call can produce.
//
// The package is a closed tagged union of seven error kinds with one
// constructor, one narrowing predicate, and one canonical message shape per
// kind. Failures detected at the network or validation boundary are wrapped
// into a variant, travel up the call chain as values, and are consumed either
// by kind-specific handling or by Format for generic display. It maintains
// full compatibility with the standard library errors package (errors.Is,
// errors.As, errors.Unwrap).
//
// # Features
//
//   - Seven semantically distinct failure kinds as a sealed variant set
//   - One pure constructor and one narrowing predicate per kind
//   - Canonical, deterministic message formatting for every kind
//   - Retry classification (retryable vs permanent) for caller-side recovery
//   - JSON serialization for API responses
//   - Zero dependencies (Layer 0 library)
//
// # Design Principles
//
//   - Standard library compatibility (errors.Is, errors.As, errors.Unwrap)
//   - Immutability (errors are immutable once created)
//   - Exactly one variant active per value, never a flat bag of optional fields
//   - Exhaustive dispatch (no default branch silently swallows a variant)
//   - No I/O, no retries, no logging: pure data modeling and presentation
//
// # Quick Start
//
// Wrapping a failure at the boundary:
//
//	resp, err := httpClient.Do(req)
//	if err != nil {
//	    return apierror.NewNetworkError("failed to connect", err)
//	}
//
// Branching on a specific kind:
//
//	if apierror.IsRateLimitError(err) {
//	    // Back off before the next attempt
//	}
//
// Generic display:
//
//	fmt.Println(apierror.Format(err))
//
// # Variants
//
// Each kind carries only the fields that describe it:
//
//   - NetworkError: message and an optional underlying cause
//   - ValidationError: the validator's ordered issue list
//   - AuthError: message and HTTP status code (conventionally 401 or 403)
//   - RateLimitError: server-suggested wait in milliseconds
//   - NotFoundError: resource kind and entity identifier
//   - ConflictError: message and an optional conflicting resource
//   - ServerError: HTTP status code and message
//
// Optional fields have an explicit absent state: a nil cause for
// NetworkError, and a comma-ok accessor for ConflictError's conflicting
// resource. An empty string is a present value, not absence.
//
// # Canonical Messages
//
// Format renders one stable message shape per kind, for example:
//
//	Network Error: Connection timeout
//	Network Error: Failed to connect (Cause: ECONNREFUSED)
//	Validation Error: topic must not be empty
//	Validation Error (2 issues)
//	Auth Error (401): Invalid token
//	Rate Limit Error: Retry after 5000ms
//	Not Found Error: debate with id deb-123 not found
//	Conflict Error: Branch name taken (Conflicting: branch-123)
//	Server Error (500): Internal server error
//
// A ValidationError with exactly one issue shows the issue's message; any
// other count, including zero, shows the count. Every variant's Error method
// returns the same canonical string, so plain error printing and Format
// agree.
//
// # Narrowing
//
// The predicates answer the boolean question; errors.As recovers the typed
// variant for field access:
//
//	var rl *apierror.RateLimitError
//	if apierror.As(err, &rl) {
//	    time.Sleep(rl.RetryAfter())
//	}
//
// For every constructed value exactly one predicate returns true. The
// predicates answer for the first variant in the chain: a variant inside
// fmt.Errorf("%w", ...) is still found, but a cause that is itself a variant
// never changes the answer for the error that carries it. Use Unwrap or As
// to inspect such a cause:
//
//	outer := apierror.NewNetworkError("upstream call failed",
//	    apierror.NewServerError(502, "bad gateway"))
//	apierror.IsNetworkError(outer) // true
//	apierror.IsServerError(outer)  // false; the cause is not the variant
//
//	var server *apierror.ServerError
//	apierror.As(outer, &server)    // true; explicit narrowing reaches it
//
// # Classification
//
// Kinds are classified as either retryable or permanent:
//
//   - Retryable: NetworkError, RateLimitError, ServerError
//   - Permanent: ValidationError, AuthError, NotFoundError, ConflictError
//
// Use apierror.IsRetryable(err) to make retry decisions. The package never
// retries: recovery belongs to the caller, informed by the classification
// and by RateLimitError.RetryAfter.
//
// # Standard Library Compatibility
//
// Every variant implements error. NetworkError additionally implements
// Unwrap, so a wrapped transport failure remains reachable:
//
//	if errors.Is(err, context.DeadlineExceeded) {
//	    // The cause chain is intact
//	}
//
// # Wire Format
//
// ToResponse projects a variant onto a flat Response struct for JSON
// serialization; each variant also implements json.Marshaler directly.
// Only the fields of the active variant appear on the wire, and a network
// cause is reduced to its message text so no error chain leaks:
//
//	{"kind":"RATE_LIMIT","classification":"RETRYABLE","retry_after_ms":5000}
//
// # Performance
//
// Construction, predicate checks, and formatting are allocation-light and
// safe to call in hot paths; values are immutable and safe for concurrent
// use. See benchmarks for detailed characteristics.
package apierror
