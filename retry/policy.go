package retry

import (
	"fmt"
	"strings"
	"time"

	"github.com/terencecraig/debateUI-sub001/apierror"
)

// Strategy enumerates supported backoff strategies.
type Strategy string

const (
	StrategyFixed       Strategy = "fixed"
	StrategyLinear      Strategy = "linear"
	StrategyExponential Strategy = "exponential"
)

// NormalizeStrategy converts arbitrary user input (case-insensitive) into a
// typed strategy, returning empty string for unknown.
func NormalizeStrategy(raw string) Strategy {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(StrategyFixed):
		return StrategyFixed
	case string(StrategyLinear):
		return StrategyLinear
	case string(StrategyExponential):
		return StrategyExponential
	default:
		return ""
	}
}

// Policy encapsulates backoff settings for transient API failures.
// It is immutable after construction and only computes durations: callers own
// the retry loop and the sleeping.
type Policy struct {
	Strategy   Strategy      // fixed|linear|exponential
	Initial    time.Duration // base delay
	Max        time.Duration // cap for growth
	MaxRetries int           // maximum retry attempts after the first failure
}

// DefaultPolicy returns a sensible default policy (linear, 1s initial, 30s cap, 2 retries).
func DefaultPolicy() Policy {
	return Policy{Strategy: StrategyLinear, Initial: time.Second, Max: 30 * time.Second, MaxRetries: 2}
}

// NewPolicy builds a policy from raw settings; zero/invalid values fall back to defaults.
func NewPolicy(strategy Strategy, initial, maxDuration time.Duration, maxRetries int) Policy {
	p := DefaultPolicy()
	if maxRetries >= 0 {
		p.MaxRetries = maxRetries
	}
	if initial > 0 {
		p.Initial = initial
	}
	if maxDuration > 0 {
		p.Max = maxDuration
	}
	if strategy != "" {
		switch strategy {
		case StrategyFixed, StrategyLinear, StrategyExponential:
			p.Strategy = strategy
		default:
			// unknown -> keep default
		}
	}
	if p.Initial > p.Max {
		p.Initial = p.Max
	}
	return p
}

// Delay returns the backoff delay for the given retry attempt number
// (1-based: first retry => 1). Non-positive attempts yield 0.
func (p Policy) Delay(retryCount int) time.Duration {
	if retryCount <= 0 {
		return 0
	}
	switch p.Strategy {
	case StrategyFixed:
		return p.Initial
	case StrategyExponential:
		if p.Initial <= 0 {
			return 0
		}
		d := p.Initial
		for i := 1; i < retryCount; i++ {
			if d >= p.Max/2 {
				return p.Max
			}
			d *= 2
		}
		if d > p.Max {
			return p.Max
		}
		return d
	default: // linear
		if p.Initial <= 0 {
			return 0
		}
		if time.Duration(retryCount) > p.Max/p.Initial {
			return p.Max
		}
		return time.Duration(retryCount) * p.Initial
	}
}

// DelayFor returns the delay before the given retry attempt, honoring the
// server's hint when err carries a rate limit: the hinted wait acts as a
// floor and may exceed Max, since the server knows its own window.
func (p Policy) DelayFor(err error, retryCount int) time.Duration {
	delay := p.Delay(retryCount)

	var rateErr *apierror.RateLimitError
	if apierror.As(err, &rateErr) {
		if hinted := rateErr.RetryAfter(); hinted > delay {
			return hinted
		}
	}
	return delay
}

// ShouldRetry reports whether the given retry attempt (1-based) should be
// made: the attempt must be within MaxRetries and the error classified as
// retryable. Permanent failures and foreign errors never retry.
func (p Policy) ShouldRetry(err error, retryCount int) bool {
	if retryCount < 1 || retryCount > p.MaxRetries {
		return false
	}
	return apierror.IsRetryable(err)
}

// Validate ensures invariants; returns error if policy impossible to apply.
func (p Policy) Validate() error {
	if p.Initial <= 0 {
		return fmt.Errorf("initial must be >0")
	}
	if p.Max <= 0 {
		return fmt.Errorf("max must be >0")
	}
	if p.MaxRetries < 0 {
		return fmt.Errorf("max retries cannot be negative")
	}
	return nil
}
