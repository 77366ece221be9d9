package apierror

// NewNetworkError creates a NetworkError with the given message and an
// optional cause. Pass nil when there is no lower-level failure to record;
// a nil cause is the absent state and is never formatted.
//
// Example:
//
//	resp, err := httpClient.Do(req)
//	if err != nil {
//	    return apierror.NewNetworkError("failed to connect", err)
//	}
func NewNetworkError(message string, cause error) *NetworkError {
	return &NetworkError{
		message: message,
		cause:   cause,
	}
}

// NewValidationError creates a ValidationError from the validator's issues.
// The slice is copied, so later mutation of the argument does not affect the
// error. A nil or empty slice is allowed and formats as zero issues.
//
// Example:
//
//	err := apierror.NewValidationError([]apierror.Issue{
//	    apierror.PlainIssue{Path: "topic", Text: "topic must not be empty"},
//	})
func NewValidationError(issues []Issue) *ValidationError {
	var copied []Issue
	if len(issues) > 0 {
		copied = make([]Issue, len(issues))
		copy(copied, issues)
	}
	return &ValidationError{
		issues: copied,
	}
}

// NewAuthError creates an AuthError with the given message and the HTTP
// status code the API answered with, conventionally 401 or 403.
func NewAuthError(message string, statusCode int) *AuthError {
	return &AuthError{
		message:    message,
		statusCode: statusCode,
	}
}

// NewRateLimitError creates a RateLimitError carrying the server-suggested
// wait in milliseconds. Negative values are clamped to zero so the value is
// always a usable wait.
//
// Example:
//
//	err := apierror.NewRateLimitError(5000)
func NewRateLimitError(retryAfterMs int64) *RateLimitError {
	if retryAfterMs < 0 {
		retryAfterMs = 0
	}
	return &RateLimitError{
		retryAfterMs: retryAfterMs,
	}
}

// NewNotFoundError creates a NotFoundError identifying the missing entity by
// resource kind and identifier.
//
// Example:
//
//	err := apierror.NewNotFoundError("debate", "deb-123")
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{
		resource: resource,
		id:       id,
	}
}

// NewConflictError creates a ConflictError with the given message and no
// conflicting resource recorded. Use WithConflictingResource to attach one.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{
		message: message,
	}
}

// WithConflictingResource returns a copy of the error that records the
// resource the operation collided with. The receiver is not modified.
//
// An empty identifier still counts as present; absence is only the state
// produced by NewConflictError.
//
// Example:
//
//	err := apierror.NewConflictError("Branch name taken").
//	    WithConflictingResource("branch-123")
func (e *ConflictError) WithConflictingResource(resource string) *ConflictError {
	return &ConflictError{
		message:             e.message,
		conflictingResource: resource,
		hasConflicting:      true,
	}
}

// NewServerError creates a ServerError with the HTTP status code the API
// answered with and the given message.
func NewServerError(statusCode int, message string) *ServerError {
	return &ServerError{
		statusCode: statusCode,
		message:    message,
	}
}
