package apierror

// Error is the closed set of failures raised at the remote API boundary.
//
// Exactly seven variants implement Error: NetworkError, ValidationError,
// AuthError, RateLimitError, NotFoundError, ConflictError, and ServerError.
// Which fields a value carries is determined entirely by its variant; use the
// Is* predicates or errors.As to narrow to a concrete variant before reading
// fields. Values are immutable once constructed and safe for concurrent use.
type Error interface {
	error

	// Kind returns the tag identifying which variant this value is.
	Kind() Kind

	// apiError restricts implementations to this package, keeping the
	// variant set closed.
	apiError()
}

// Compile-time checks that every variant satisfies Error.
var (
	_ Error = (*NetworkError)(nil)
	_ Error = (*ValidationError)(nil)
	_ Error = (*AuthError)(nil)
	_ Error = (*RateLimitError)(nil)
	_ Error = (*NotFoundError)(nil)
	_ Error = (*ConflictError)(nil)
	_ Error = (*ServerError)(nil)
)
