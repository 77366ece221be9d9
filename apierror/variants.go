package apierror

import "time"

// NetworkError reports that a request never completed: connection failures,
// timeouts, DNS errors, and similar transport-level faults.
type NetworkError struct {
	message string
	cause   error
}

// Kind returns KindNetwork.
func (e *NetworkError) Kind() Kind {
	return KindNetwork
}

// Message returns the human-readable error message.
func (e *NetworkError) Message() string {
	return e.message
}

// Cause returns the lower-level failure that triggered this error.
// Returns nil if no cause was recorded.
func (e *NetworkError) Cause() error {
	return e.cause
}

// Unwrap returns the wrapped cause for standard library compatibility.
// Returns nil if no cause was recorded.
func (e *NetworkError) Unwrap() error {
	return e.cause
}

// Error returns the canonical string representation of the error.
func (e *NetworkError) Error() string {
	return Format(e)
}

// ValidationError reports that a request payload failed schema validation.
// It carries the validator's issues in their original order.
type ValidationError struct {
	issues []Issue
}

// Kind returns KindValidation.
func (e *ValidationError) Kind() Kind {
	return KindValidation
}

// Issues returns a defensive copy of the validation issues.
// Returns nil if the error was constructed without issues (maintains immutability).
func (e *ValidationError) Issues() []Issue {
	if e.issues == nil {
		return nil
	}
	issues := make([]Issue, len(e.issues))
	copy(issues, e.issues)
	return issues
}

// IssueCount returns the number of validation issues.
func (e *ValidationError) IssueCount() int {
	return len(e.issues)
}

// Error returns the canonical string representation of the error.
func (e *ValidationError) Error() string {
	return Format(e)
}

// AuthError reports that a request lacked valid or sufficient credentials.
// The status code is conventionally 401 or 403 but is not enforced.
type AuthError struct {
	message    string
	statusCode int
}

// Kind returns KindAuth.
func (e *AuthError) Kind() Kind {
	return KindAuth
}

// Message returns the human-readable error message.
func (e *AuthError) Message() string {
	return e.message
}

// StatusCode returns the HTTP status code the API answered with.
func (e *AuthError) StatusCode() int {
	return e.statusCode
}

// Error returns the canonical string representation of the error.
func (e *AuthError) Error() string {
	return Format(e)
}

// RateLimitError reports that the caller exceeded the API rate limit.
// RetryAfterMs carries the server's hint for when to try again.
type RateLimitError struct {
	retryAfterMs int64
}

// Kind returns KindRateLimit.
func (e *RateLimitError) Kind() Kind {
	return KindRateLimit
}

// RetryAfterMs returns the server-suggested wait in milliseconds.
// The value is never negative.
func (e *RateLimitError) RetryAfterMs() int64 {
	return e.retryAfterMs
}

// RetryAfter returns the server-suggested wait as a time.Duration.
func (e *RateLimitError) RetryAfter() time.Duration {
	return time.Duration(e.retryAfterMs) * time.Millisecond
}

// Error returns the canonical string representation of the error.
func (e *RateLimitError) Error() string {
	return Format(e)
}

// NotFoundError reports that a requested entity does not exist.
type NotFoundError struct {
	resource string
	id       string
}

// Kind returns KindNotFound.
func (e *NotFoundError) Kind() Kind {
	return KindNotFound
}

// Resource returns the kind of entity that was missing, such as "debate".
func (e *NotFoundError) Resource() string {
	return e.resource
}

// ID returns the identifier of the missing entity.
func (e *NotFoundError) ID() string {
	return e.id
}

// Error returns the canonical string representation of the error.
func (e *NotFoundError) Error() string {
	return Format(e)
}

// ConflictError reports that a request collided with existing state, such as
// creating a resource under a name that is already taken.
type ConflictError struct {
	message             string
	conflictingResource string
	hasConflicting      bool
}

// Kind returns KindConflict.
func (e *ConflictError) Kind() Kind {
	return KindConflict
}

// Message returns the human-readable error message.
func (e *ConflictError) Message() string {
	return e.message
}

// ConflictingResource returns the identifier of the resource the operation
// collided with. The boolean is false when no conflicting resource was
// recorded, which is distinct from an empty identifier.
func (e *ConflictError) ConflictingResource() (string, bool) {
	return e.conflictingResource, e.hasConflicting
}

// Error returns the canonical string representation of the error.
func (e *ConflictError) Error() string {
	return Format(e)
}

// ServerError reports that the API itself failed or answered with a status
// this client does not recognize as any more specific failure.
type ServerError struct {
	statusCode int
	message    string
}

// Kind returns KindServer.
func (e *ServerError) Kind() Kind {
	return KindServer
}

// StatusCode returns the HTTP status code the API answered with.
func (e *ServerError) StatusCode() int {
	return e.statusCode
}

// Message returns the human-readable error message.
func (e *ServerError) Message() string {
	return e.message
}

// Error returns the canonical string representation of the error.
func (e *ServerError) Error() string {
	return Format(e)
}

// Marker methods keeping the variant set closed to this package.
func (e *NetworkError) apiError() {}

func (e *ValidationError) apiError() {}

func (e *AuthError) apiError() {}

func (e *RateLimitError) apiError() {}

func (e *NotFoundError) apiError() {}

func (e *ConflictError) apiError() {}

func (e *ServerError) apiError() {}
