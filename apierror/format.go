package apierror

import "fmt"

// Format renders any API error as its canonical human-readable message.
// The output is deterministic: equal inputs always produce identical strings.
//
// One message shape exists per variant:
//
//	Network Error: {message}
//	Network Error: {message} (Cause: {cause})
//	Validation Error: {message}             (exactly one issue)
//	Validation Error ({n} issues)           (zero or several issues)
//	Auth Error ({status}): {message}
//	Rate Limit Error: Retry after {n}ms
//	Not Found Error: {resource} with id {id} not found
//	Conflict Error: {message}
//	Conflict Error: {message} (Conflicting: {resource})
//	Server Error ({status}): {message}
//
// A nil error formats as the empty string. The variant set is closed, so an
// unknown implementation is a programming error inside this package and
// panics rather than being silently swallowed; every dispatch site must be
// extended when a variant is added.
func Format(err Error) string {
	switch e := err.(type) {
	case nil:
		return ""
	case *NetworkError:
		if e.cause != nil {
			return fmt.Sprintf("Network Error: %s (Cause: %v)", e.message, e.cause)
		}
		return fmt.Sprintf("Network Error: %s", e.message)
	case *ValidationError:
		if len(e.issues) == 1 {
			return fmt.Sprintf("Validation Error: %s", e.issues[0].Message())
		}
		return fmt.Sprintf("Validation Error (%d issues)", len(e.issues))
	case *AuthError:
		return fmt.Sprintf("Auth Error (%d): %s", e.statusCode, e.message)
	case *RateLimitError:
		return fmt.Sprintf("Rate Limit Error: Retry after %dms", e.retryAfterMs)
	case *NotFoundError:
		return fmt.Sprintf("Not Found Error: %s with id %s not found", e.resource, e.id)
	case *ConflictError:
		if e.hasConflicting {
			return fmt.Sprintf("Conflict Error: %s (Conflicting: %s)", e.message, e.conflictingResource)
		}
		return fmt.Sprintf("Conflict Error: %s", e.message)
	case *ServerError:
		return fmt.Sprintf("Server Error (%d): %s", e.statusCode, e.message)
	default:
		panic(fmt.Sprintf("apierror: Format called with unhandled variant %T", err))
	}
}
