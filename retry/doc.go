// Package retry computes backoff delays for retrying failed debate API
// calls. It decides nothing and sleeps never: Policy turns an attempt number
// and a classified error into a duration, and the caller owns the loop.
//
// The classification from the apierror package drives the gate: network,
// rate-limit, and server failures are worth retrying, everything else is
// permanent. A RateLimitError's server-suggested wait takes precedence over
// the computed backoff, including the cap.
//
//	policy := retry.DefaultPolicy()
//
//	for attempt := 0; ; attempt++ {
//		err := call()
//		if err == nil {
//			return nil
//		}
//		if !policy.ShouldRetry(err, attempt+1) {
//			return err
//		}
//		time.Sleep(policy.DelayFor(err, attempt+1))
//	}
package retry
