package apierror

// The predicates answer for the first variant in err's chain: foreign
// wrappers (fmt.Errorf with %w) are traversed, but a variant's own cause is
// not, so exactly one predicate is true for any chain carrying a variant.
// Reach a cause that is itself a variant explicitly, via Unwrap or As.

// IsNetworkError reports whether the first variant in err's chain is a NetworkError.
func IsNetworkError(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindNetwork
}

// IsValidationError reports whether the first variant in err's chain is a ValidationError.
func IsValidationError(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindValidation
}

// IsAuthError reports whether the first variant in err's chain is an AuthError.
func IsAuthError(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindAuth
}

// IsRateLimitError reports whether the first variant in err's chain is a RateLimitError.
func IsRateLimitError(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindRateLimit
}

// IsNotFoundError reports whether the first variant in err's chain is a NotFoundError.
func IsNotFoundError(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindNotFound
}

// IsConflictError reports whether the first variant in err's chain is a ConflictError.
func IsConflictError(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindConflict
}

// IsServerError reports whether the first variant in err's chain is a ServerError.
func IsServerError(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindServer
}
