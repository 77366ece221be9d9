package apierror

// Kind identifies one variant of the API error set.
// Kinds are string-based for debuggability and natural JSON serialization.
type Kind string

const (
	// KindNetwork indicates the request never completed at the transport level.
	KindNetwork Kind = "NETWORK"

	// KindValidation indicates the request payload failed schema validation.
	KindValidation Kind = "VALIDATION"

	// KindAuth indicates the request lacked valid or sufficient credentials.
	KindAuth Kind = "AUTH"

	// KindRateLimit indicates the caller exceeded the API rate limit.
	KindRateLimit Kind = "RATE_LIMIT"

	// KindNotFound indicates a requested entity does not exist.
	KindNotFound Kind = "NOT_FOUND"

	// KindConflict indicates the request collided with existing state.
	KindConflict Kind = "CONFLICT"

	// KindServer indicates the API itself failed or answered unexpectedly.
	KindServer Kind = "SERVER"
)
