package apierror

import stderrors "errors"

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var rl *apierror.RateLimitError
//	if apierror.As(err, &rl) {
//	    wait := rl.RetryAfter()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the result of calling Unwrap on err, if any.
// This is a convenience wrapper around the standard library errors.Unwrap.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// KindOf extracts the variant kind from an error.
// The boolean is false if the error is nil or no variant from this package
// appears in its chain.
//
// Example:
//
//	if kind, ok := apierror.KindOf(err); ok && kind == apierror.KindNotFound {
//	    // Handle the missing entity
//	}
func KindOf(err error) (Kind, bool) {
	if err == nil {
		return "", false
	}

	var apiErr Error
	if stderrors.As(err, &apiErr) {
		return apiErr.Kind(), true
	}

	return "", false
}

// ClassificationOf extracts the retry classification from an error.
// Returns ClassificationPermanent if the error is nil or carries no variant
// from this package. This is a safe default that prevents inappropriate
// retry attempts.
func ClassificationOf(err error) Classification {
	if err == nil {
		return ClassificationPermanent
	}

	var apiErr Error
	if stderrors.As(err, &apiErr) {
		return classificationForKind(apiErr.Kind())
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or carries no variant from this package
// (safe default).
//
// This is the primary function for making retry decisions. The caller owns
// the retry loop and the backoff; for rate limits, RateLimitError.RetryAfter
// carries the server's own suggestion.
//
// Example:
//
//	if apierror.IsRetryable(err) {
//	    time.Sleep(backoff)
//	    return retry(operation)
//	}
func IsRetryable(err error) bool {
	return ClassificationOf(err).IsRetryable()
}
