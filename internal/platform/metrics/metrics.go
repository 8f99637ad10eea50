// Package metrics holds the Prometheus counters for domain events: field
// validation failures, status classifications, document uploads and logins.
// HTTP and outbound-client instruments live in package telemetry.
package metrics

import (
	"errors"
	"regexp"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
)

// LabelUnknown replaces label values that are not part of a fixed set, so
// clients cannot mint new series.
const LabelUnknown = "unknown"

var fieldIndex = regexp.MustCompile(`\[\d+\]`)

// FieldLabel drops element indexes: line_items[3].quantity becomes
// line_items[].quantity.
func FieldLabel(field string) string {
	return fieldIndex.ReplaceAllString(field, "[]")
}

// Metrics holds all Prometheus metrics for the application. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	ValidationFailures *prometheus.CounterVec
	Classifications    *prometheus.CounterVec
	Uploads            *prometheus.CounterVec
	Logins             *prometheus.CounterVec
	RevocationChecks   prometheus.Histogram
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ValidationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mentorship_validation_failures_total",
			Help: "Field-level validation failures by entity and field",
		}, []string{"entity", "field"}),
		Classifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mentorship_status_classifications_total",
			Help: "Status classifications served by entity type and category",
		}, []string{"entity_type", "category"}),
		Uploads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mentorship_document_uploads_total",
			Help: "Document uploads by file class and result",
		}, []string{"class", "result"}),
		Logins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mentorship_logins_total",
			Help: "Login attempts by result",
		}, []string{"result"}),
		RevocationChecks: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "mentorship_token_revocation_check_duration_seconds",
			Help:    "Latency of token revocation lookups",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}),
	}
}

// NewRegistry returns a registry with the Go runtime and process collectors
// plus the application metrics.
func NewRegistry() (*prometheus.Registry, *Metrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg, New(reg)
}

// ObserveValidation counts each failed field when err is a
// *domain.ValidationError. Other errors are ignored.
func (m *Metrics) ObserveValidation(entity string, err error) {
	if m == nil {
		return
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	for field := range verr.Fields {
		m.ValidationFailures.WithLabelValues(entity, FieldLabel(field)).Inc()
	}
}

// ObserveClassification counts one classification.
func (m *Metrics) ObserveClassification(entityType, category string) {
	if m == nil {
		return
	}
	m.Classifications.WithLabelValues(entityType, category).Inc()
}

// Upload results.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
	ResultFailed   = "failed"
)

// ObserveUpload counts one upload attempt.
func (m *Metrics) ObserveUpload(class, result string) {
	if m == nil {
		return
	}
	m.Uploads.WithLabelValues(class, result).Inc()
}

// ObserveLogin counts one login attempt.
func (m *Metrics) ObserveLogin(success bool) {
	if m == nil {
		return
	}
	result := "failure"
	if success {
		result = "success"
	}
	m.Logins.WithLabelValues(result).Inc()
}

// ObserveRevocationCheck records the duration of one revocation lookup in
// seconds.
func (m *Metrics) ObserveRevocationCheck(seconds float64) {
	if m == nil {
		return
	}
	m.RevocationChecks.Observe(seconds)
}
