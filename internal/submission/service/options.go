package service

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	submissionmetrics "consign/internal/submission/metrics"
)

type serviceConfig struct {
	logger  *slog.Logger
	metrics *submissionmetrics.Metrics
	clock   Clock
	tracer  trace.Tracer
}

// Option configures optional service dependencies.
type Option func(*serviceConfig)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *serviceConfig) {
		cfg.logger = logger
	}
}

// WithMetrics sets the prometheus metrics sink.
func WithMetrics(m *submissionmetrics.Metrics) Option {
	return func(cfg *serviceConfig) {
		cfg.metrics = m
	}
}

// WithClock overrides the clock, mainly for deterministic tests.
func WithClock(clock Clock) Option {
	return func(cfg *serviceConfig) {
		cfg.clock = clock
	}
}

// WithTracer sets the tracer used for read-path spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(cfg *serviceConfig) {
		cfg.tracer = tracer
	}
}
