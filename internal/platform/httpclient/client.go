// Package httpclient is the outbound transport for object storage. Every
// request passes through, in order:
//
//	breaker → rate limiter → id headers → client span → retry → net/http
//
// The aws-sdk-go-v2 S3 client plugs in through Client.SDK, so uploads and
// downloads of document blobs share one breaker, one limiter and one set of
// client metrics:
//
//	client := httpclient.New(&cfg.Client, "object-storage", tel, logger)
//	s3.NewFromConfig(awsCfg, func(o *s3.Options) { o.HTTPClient = client.SDK() })
//
// The inbound request and correlation ids are forwarded when the context
// carries them (see WithRequestID and WithCorrelationID).
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/mentorship-admin/internal/platform/config"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/telemetry"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"

	resultSuccess     = "success"
	resultError       = "error"
	resultCanceled    = "canceled"
	resultCircuitOpen = "circuit_open"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID returns ctx carrying id for the X-Request-ID header of
// outbound calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID returns ctx carrying id for the X-Correlation-ID header of
// outbound calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

type retryPolicy struct {
	attempts int
	initial  time.Duration
	max      time.Duration
	factor   float64
}

// Client sends requests to one downstream service.
type Client struct {
	http    *http.Client
	service string
	breaker *gobreaker.CircuitBreaker[struct{}]
	limiter *rate.Limiter // nil when unlimited
	retry   retryPolicy
	metrics *telemetry.Metrics
}

// New builds a Client for service. metrics may be nil.
func New(cfg *config.ClientConfig, service string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		service: service,
		retry: retryPolicy{
			attempts: cfg.Retry.MaxAttempts,
			initial:  cfg.Retry.InitialInterval,
			max:      cfg.Retry.MaxInterval,
			factor:   cfg.Retry.Multiplier,
		},
		metrics: metrics,
	}

	if cfg.RateLimit.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	c.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        service,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		// A caller abandoning a download says nothing about the store's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return c
}

// Do sends req. On success resp has an open body the caller closes. When
// retries are exhausted on a retryable status both resp and err are non-nil.
// A rejected (breaker open) or failed transport call returns a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}

		forwardIDs(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		req = req.WithContext(spanCtx)
		err := c.send(spanCtx, req, &resp)
		endSpan(span, resp, err)

		return struct{}{}, err
	})

	c.record(ctx, req.Method, start, resp, err)

	return resp, err
}

// Name identifies the downstream service in health reports.
func (c *Client) Name() string {
	return c.service
}

// HealthCheck reads the breaker state; it never touches the network.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.service)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.service)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.service, state)
	}
}

func forwardIDs(ctx context.Context, req *http.Request) {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set(headerRequestID, id)
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		req.Header.Set(headerCorrelationID, id)
	}
}

func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.Tracer("httpclient").Start(ctx, "HTTP "+req.Method+" "+c.service,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.Redacted()),
			attribute.String("peer.service", c.service),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// record runs outside the breaker so rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.service),
		telemetry.AttrResult.String(outcome(status, err)),
	)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func outcome(status int, err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return resultCircuitOpen
	case errors.Is(err, context.Canceled):
		return resultCanceled
	case status > 0 && status < http.StatusBadRequest:
		return resultSuccess
	default:
		return resultError
	}
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
