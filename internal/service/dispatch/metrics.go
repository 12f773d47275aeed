package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersAssignedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_orders_assigned_total",
			Help: "Total number of orders assigned to couriers",
		},
	)

	OrdersCompletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_orders_completed_total",
			Help: "Total number of completed orders",
		},
	)

	AssignConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_assign_conflicts_total",
			Help: "Total number of assignment serialization conflicts",
		},
	)

	AssignDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dispatch_assign_duration_seconds",
			Help:    "Duration of assignment attempts including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)
)
