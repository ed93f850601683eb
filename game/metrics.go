package game

import (
	"context"
	"fmt"

	"classic-snake/game/manager"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "classic-snake/game"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

type metrics struct {
	runs       metric.Int64Counter
	foodEaten  metric.Int64Counter
	collisions metric.Int64Counter
}

func newMetrics() (*metrics, error) {
	m := meter()
	var (
		mt  metrics
		err error
	)

	mt.runs, err = m.Int64Counter(
		"snake.runs",
		metric.WithDescription("Runs started"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create runs counter: %w", err)
	}

	mt.foodEaten, err = m.Int64Counter(
		"snake.food.eaten",
		metric.WithDescription("Food items eaten"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create food counter: %w", err)
	}

	mt.collisions, err = m.Int64Counter(
		"snake.collisions",
		metric.WithDescription("Runs ended by a collision"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create collisions counter: %w", err)
	}

	return &mt, nil
}

func (mt *metrics) runStarted(ctx context.Context) {
	mt.runs.Add(ctx, 1)
}

func (mt *metrics) ate(ctx context.Context, bonus bool) {
	mt.foodEaten.Add(ctx, 1, metric.WithAttributes(attribute.Bool("bonus", bonus)))
}

func (mt *metrics) collided(ctx context.Context, kind manager.CollisionType) {
	mt.collisions.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind.String())))
}
