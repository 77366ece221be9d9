package apierror

// Issue is one schema-validation failure as this package consumes it.
//
// The validator producing issues stays external; this package never inspects
// an issue beyond its message text and the issue count. Callers adapt their
// validator's records by implementing Issue or converting to PlainIssue.
type Issue interface {
	// Message returns the human-readable description of the failure.
	Message() string
}

// PlainIssue is a minimal Issue carrying a message and an optional path to
// the offending field. Path is informational only and never read here.
type PlainIssue struct {
	Path string
	Text string
}

// Message returns the issue's message text.
func (i PlainIssue) Message() string {
	return i.Text
}

// IssuesFromMessages adapts bare message strings into validation issues.
// Returns nil for an empty argument list.
//
// Example:
//
//	err := apierror.NewValidationError(apierror.IssuesFromMessages(
//	    "topic must not be empty",
//	    "format must be one of: oxford, lincoln-douglas",
//	))
func IssuesFromMessages(messages ...string) []Issue {
	if len(messages) == 0 {
		return nil
	}
	issues := make([]Issue, len(messages))
	for i, m := range messages {
		issues[i] = PlainIssue{Text: m}
	}
	return issues
}
