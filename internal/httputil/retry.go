// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for the nuclear-data fetch path.
package httputil

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// retryable responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 10 * time.Second

// RetryLog receives backoff diagnostics. Defaults to stderr so that slow
// NDS fetches explain themselves; tests silence it with io.Discard.
var RetryLog io.Writer = os.Stderr

const defaultMaxRetries = 5

// retryable reports whether a status code is worth waiting out. The NDS
// service rate-limits with 429 and answers 503 during maintenance
// windows; anything else is returned to the caller immediately.
func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable
}

// DoWithRetry executes an HTTP request and retries retryable statuses
// with exponential backoff. The delay starts at RetryBaseDelay and
// doubles each attempt.
//
// When maxRetries is 0 the default (5) is used. On each retry the
// response body is drained and closed before sleeping. If the context is
// cancelled during a backoff wait the function returns ctx.Err(). After
// exhausting retries the last response is returned so the caller can
// inspect it.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if !retryable(resp.StatusCode) {
			return resp, nil
		}

		// Exhausted retries — return the response as-is.
		if attempt >= maxRetries {
			return resp, nil
		}

		// Drain and close the body before retrying.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		fmt.Fprintf(RetryLog, "HTTP %d from %s, retrying in %v (attempt %d/%d)\n",
			resp.StatusCode, req.URL.Host, backoff, attempt+1, maxRetries)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
