package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/jsamuelsen11/mentorship-admin/internal/platform/logging"
)

// jitterFraction spreads each delay by ±25%.
const jitterFraction = 0.25

// send performs up to retry.attempts round trips. The final response is
// written to resp so its body stays open for the caller.
func (c *Client) send(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retry.attempts <= 0 {
		return fmt.Errorf("httpclient: retry attempts must be >= 1, got %d", c.retry.attempts)
	}

	rewind, err := rewinder(req)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := range c.retry.attempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, lastErr); err != nil {
				return err
			}
			if err := rewind(); err != nil {
				return err
			}
		}

		r, err := c.http.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return err
			}
			lastErr = err
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.service)
		if attempt == c.retry.attempts-1 {
			*resp = r
			return lastErr
		}
		discard(r)
	}

	return lastErr
}

// rewinder returns a func that resets req.Body before a retry. Requests built
// from a seekable body (object uploads from the SDK, strings, byte slices)
// carry GetBody and are rewound without copying; any other body is buffered
// once.
func rewinder(req *http.Request) (func() error, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return func() error { return nil }, nil
	}

	if req.GetBody != nil {
		return func() error {
			body, err := req.GetBody()
			if err != nil {
				return fmt.Errorf("rewinding request body: %w", err)
			}
			req.Body = body
			return nil
		}, nil
	}

	buf, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	reset := func() error {
		req.Body = io.NopCloser(bytes.NewReader(buf))
		req.ContentLength = int64(len(buf))
		return nil
	}
	return reset, reset()
}

// discard drains and closes r so the connection can be reused.
func discard(r *http.Response) {
	_, _ = io.Copy(io.Discard, r.Body)
	_ = r.Body.Close()
}

func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	delay := backoff(attempt, c.retry)

	logging.FromContext(ctx).WarnContext(ctx, "retrying outbound request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
		slog.String("peer_service", c.service),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.attempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// backoff is the delay before retry number attempt (1 is the first retry):
// initial × factor^(attempt-1), capped at max, then jittered.
func backoff(attempt int, p retryPolicy) time.Duration {
	delay := math.Min(float64(p.initial)*math.Pow(p.factor, float64(attempt-1)), float64(p.max))
	delay += delay * jitterFraction * (2*randUnit() - 1)
	return time.Duration(math.Max(delay, 0))
}

// randUnit returns a float64 in [0, 1) from crypto/rand.
func randUnit() float64 {
	const mantissa = 53
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(64-mantissa)) / (1 << mantissa)
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadlines end the call; everything else is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus: 429 and every 5xx.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
