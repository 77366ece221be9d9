package apierror

import (
	"encoding/json"
	"fmt"
)

// Response represents the JSON structure for API error payloads.
// It is a flat, serializable projection of the variant set: the wire format
// is an artifact of serialization, while the in-memory model stays the
// closed set of variant types.
//
// Numeric and optional-string fields are pointers so that a present zero is
// distinguishable from an absent field on the wire.
type Response struct {
	// Kind is the variant tag identifying the failure kind.
	Kind string `json:"kind"`

	// Message is the human-readable error message, where the variant has one.
	Message string `json:"message,omitempty"`

	// Classification indicates whether the failure is retryable or permanent.
	Classification string `json:"classification"`

	// StatusCode is the HTTP status for auth and server failures.
	StatusCode *int `json:"status_code,omitempty"`

	// RetryAfterMs is the server-suggested wait for rate limit failures.
	RetryAfterMs *int64 `json:"retry_after_ms,omitempty"`

	// Resource is the missing entity's kind for not-found failures.
	Resource string `json:"resource,omitempty"`

	// ID is the missing entity's identifier for not-found failures.
	ID string `json:"id,omitempty"`

	// ConflictingResource identifies what a conflicting operation collided with.
	ConflictingResource *string `json:"conflicting_resource,omitempty"`

	// Issues carries the validation issue messages, in order.
	Issues []string `json:"issues,omitempty"`

	// Cause is the message text of a network failure's underlying error.
	// The error chain itself is never serialized.
	Cause string `json:"cause,omitempty"`
}

// ToResponse converts an API error to a Response suitable for JSON
// serialization. Returns nil if err is nil.
//
// Only the fields belonging to the error's variant are populated; the rest
// stay absent. For network failures the cause is reduced to its message
// text, so no internal error chain leaks onto the wire.
//
// Example:
//
//	resp := apierror.ToResponse(err)
//	if resp != nil {
//	    _ = json.NewEncoder(w).Encode(resp)
//	}
func ToResponse(err Error) *Response {
	if err == nil {
		return nil
	}

	resp := &Response{
		Kind:           string(err.Kind()),
		Classification: string(classificationForKind(err.Kind())),
	}

	switch e := err.(type) {
	case *NetworkError:
		resp.Message = e.message
		if e.cause != nil {
			resp.Cause = e.cause.Error()
		}
	case *ValidationError:
		if len(e.issues) > 0 {
			messages := make([]string, len(e.issues))
			for i, issue := range e.issues {
				messages[i] = issue.Message()
			}
			resp.Issues = messages
		}
	case *AuthError:
		resp.Message = e.message
		statusCode := e.statusCode
		resp.StatusCode = &statusCode
	case *RateLimitError:
		retryAfterMs := e.retryAfterMs
		resp.RetryAfterMs = &retryAfterMs
	case *NotFoundError:
		resp.Resource = e.resource
		resp.ID = e.id
	case *ConflictError:
		resp.Message = e.message
		if e.hasConflicting {
			conflicting := e.conflictingResource
			resp.ConflictingResource = &conflicting
		}
	case *ServerError:
		resp.Message = e.message
		statusCode := e.statusCode
		resp.StatusCode = &statusCode
	default:
		panic(fmt.Sprintf("apierror: ToResponse called with unhandled variant %T", err))
	}

	return resp
}

// MarshalJSON implements json.Marshaler for NetworkError.
func (e *NetworkError) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToResponse(e))
}

// MarshalJSON implements json.Marshaler for ValidationError.
func (e *ValidationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToResponse(e))
}

// MarshalJSON implements json.Marshaler for AuthError.
func (e *AuthError) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToResponse(e))
}

// MarshalJSON implements json.Marshaler for RateLimitError.
func (e *RateLimitError) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToResponse(e))
}

// MarshalJSON implements json.Marshaler for NotFoundError.
func (e *NotFoundError) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToResponse(e))
}

// MarshalJSON implements json.Marshaler for ConflictError.
func (e *ConflictError) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToResponse(e))
}

// MarshalJSON implements json.Marshaler for ServerError.
func (e *ServerError) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToResponse(e))
}
