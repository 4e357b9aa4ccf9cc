package linter

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("github.com/suzuki-shunsuke/pep8-review/pkg/linter")
	meter  = otel.Meter("github.com/suzuki-shunsuke/pep8-review/pkg/linter")
)

var (
	runDuration metric.Float64Histogram
	runTotal    metric.Int64Counter
	outputLines metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

func initMetrics() error {
	metricsOnce.Do(func() {
		var err error
		runDuration, err = meter.Float64Histogram(
			"pep8_review_linter_duration_seconds",
			metric.WithDescription("Duration of linter runs"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
		runTotal, err = meter.Int64Counter(
			"pep8_review_linter_runs_total",
			metric.WithDescription("Total number of linter runs"),
		)
		if err != nil {
			metricsErr = err
			return
		}
		outputLines, err = meter.Int64Histogram(
			"pep8_review_findings",
			metric.WithDescription("Number of output lines per linter run"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func startRunSpan(ctx context.Context, command string, mode Mode) (context.Context, trace.Span) {
	return tracer.Start(ctx, "linter.Run",
		trace.WithAttributes(
			attribute.String("linter.command", command),
			attribute.String("linter.mode", mode.String()),
		),
	)
}

func recordRun(ctx context.Context, span trace.Span, mode Mode, duration time.Duration, lines int, err error) {
	success := err == nil
	span.SetAttributes(
		attribute.Int("linter.output_lines", lines),
		attribute.Bool("linter.success", success),
	)
	if err != nil {
		span.RecordError(err)
	}
	if initMetrics() != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("mode", mode.String()),
		attribute.Bool("success", success),
	)
	runDuration.Record(ctx, duration.Seconds(), attrs)
	runTotal.Add(ctx, 1, attrs)
	if success {
		outputLines.Record(ctx, int64(lines), metric.WithAttributes(
			attribute.String("mode", mode.String()),
		))
	}
}
