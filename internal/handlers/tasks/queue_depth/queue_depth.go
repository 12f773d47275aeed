package queue_depth

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"slasty/pkg/logger"
)

var unassignedOrders = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "dispatch_unassigned_orders",
		Help: "Number of orders waiting for assignment",
	},
)

type Service interface {
	CountUnassigned(ctx context.Context) (int64, error)
}

type QueueDepth struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func New(log logger.Logger, service Service, interval time.Duration) *QueueDepth {
	return &QueueDepth{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (q *QueueDepth) TTL() time.Duration {
	return q.interval
}

func (q *QueueDepth) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, q.interval)
	defer cancel()

	count, err := q.service.CountUnassigned(ctxWithTimeout)
	if err != nil {
		return err
	}

	unassignedOrders.Set(float64(count))

	if count > 0 {
		q.log.With(
			logger.NewField("unassigned_orders", count),
		).Info("queue depth export")
	}

	return nil
}

func (q *QueueDepth) Info() string {
	return "queue depth export"
}
