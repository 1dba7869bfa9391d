package usecase

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "club-stats/internal/usecase"

func newClampCounter(meter metric.Meter) metric.Int64Counter {
	if meter == nil {
		meter = otel.Meter(meterName)
	}
	counter, err := meter.Int64Counter(
		"stats.counter.clamped",
		metric.WithDescription("Player counter decrements that would have gone below zero"),
		metric.WithUnit("{clamp}"),
	)
	if err != nil {
		return noop.Int64Counter{}
	}
	return counter
}
