package fetcher

import (
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// RetryPolicy controls transport-level retries
type RetryPolicy struct {
	MaxRetries       int
	BaseDelay        time.Duration
	MaxDelay         time.Duration
	RetryStatusCodes []int
}

// DefaultRetryPolicy returns the default transport retry policy
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:       2,
		BaseDelay:        10 * time.Second,
		MaxDelay:         60 * time.Second,
		RetryStatusCodes: []int{429, 500, 502, 503, 504},
	}
}

// RetryTransport wraps an http.RoundTripper with retry logic for rate
// limiting and transient upstream failures
type RetryTransport struct {
	base             http.RoundTripper
	policy           RetryPolicy
	logger           zerolog.Logger
	retryStatusCodes map[int]bool
}

// NewRetryTransport creates a new RetryTransport
func NewRetryTransport(base http.RoundTripper, policy RetryPolicy, logger zerolog.Logger) *RetryTransport {
	statusCodeMap := make(map[int]bool)
	for _, code := range policy.RetryStatusCodes {
		statusCodeMap[code] = true
	}

	return &RetryTransport{
		base:             base,
		policy:           policy,
		logger:           logger.With().Str("component", "RetryTransport").Logger(),
		retryStatusCodes: statusCodeMap,
	}
}

// RoundTrip implements http.RoundTripper with retry logic
func (rt *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var lastResp *http.Response
	var lastErr error

	for attempt := 0; attempt <= rt.policy.MaxRetries; attempt++ {
		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		default:
		}

		resp, err := rt.base.RoundTrip(req.Clone(req.Context()))
		if err != nil {
			lastErr = err
			lastResp = nil

			if attempt < rt.policy.MaxRetries {
				rt.logger.Debug().
					Str("url", req.URL.String()).
					Int("attempt", attempt+1).
					Err(err).
					Msg("Network error, retrying")
				continue
			}
			break
		}

		lastResp = resp
		lastErr = nil

		if rt.retryStatusCodes[resp.StatusCode] && attempt < rt.policy.MaxRetries {
			if resp.Body != nil {
				_ = resp.Body.Close()
			}

			if err := rt.waitForRetry(req, attempt, resp.StatusCode); err != nil {
				return nil, err
			}
			continue
		}

		return resp, nil
	}

	if lastErr != nil {
		return nil, lastErr
	}

	// Retries exhausted; hand back the last response, retryable status
	// code and all
	return lastResp, nil
}

// waitForRetry sleeps for the backoff delay, honoring cancellation
func (rt *RetryTransport) waitForRetry(req *http.Request, attempt, statusCode int) error {
	delay := rt.calculateDelay(attempt)

	rt.logger.Warn().
		Str("url", req.URL.String()).
		Int("status_code", statusCode).
		Int("attempt", attempt+1).
		Int("max_retries", rt.policy.MaxRetries).
		Dur("delay", delay).
		Msg("Retryable status, waiting before retry")

	select {
	case <-req.Context().Done():
		return req.Context().Err()
	case <-time.After(delay):
		return nil
	}
}

// calculateDelay applies exponential backoff with jitter
func (rt *RetryTransport) calculateDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return rt.policy.BaseDelay
	}

	delay := rt.policy.BaseDelay * time.Duration(math.Pow(2, float64(attempt)))
	if delay > rt.policy.MaxDelay {
		delay = rt.policy.MaxDelay
	}

	// Jitter keeps repeated clients from retrying in lockstep
	if m := delay.Milliseconds() / 10; m > 0 {
		delay += time.Duration(rand.Intn(int(m))) * time.Millisecond
	}

	return delay
}
