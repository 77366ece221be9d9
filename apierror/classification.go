package apierror

// Classification indicates whether a failure should trigger a retry.
// Callers use it to decide between retrying with backoff and surfacing the
// failure; this package itself never retries.
type Classification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: network faults, rate limits, server-side errors.
	ClassificationRetryable Classification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: validation failures, missing entities, rejected credentials.
	ClassificationPermanent Classification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c Classification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// kindClassifications maps each variant kind to its classification.
// This determines the retry behavior callers observe for each failure kind.
var kindClassifications = map[Kind]Classification{
	// Retryable kinds (temporary failures)
	KindNetwork:   ClassificationRetryable,
	KindRateLimit: ClassificationRetryable,
	KindServer:    ClassificationRetryable,

	// Permanent kinds (will not succeed on retry)
	KindValidation: ClassificationPermanent,
	KindAuth:       ClassificationPermanent,
	KindNotFound:   ClassificationPermanent,
	KindConflict:   ClassificationPermanent,
}

// classificationForKind returns the classification for a kind.
// Returns ClassificationPermanent if the kind is not in the map (safe default).
func classificationForKind(kind Kind) Classification {
	if class, ok := kindClassifications[kind]; ok {
		return class
	}
	return ClassificationPermanent
}
