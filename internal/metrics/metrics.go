package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Held item metrics
var (
	HeldItemDispatchPasses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHeldItemDispatchPasses,
			Help: HelpTextHeldItemDispatchPasses,
		},
		[]string{LabelEffect},
	)

	HeldItemsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHeldItemsApplied,
			Help: HelpTextHeldItemsApplied,
		},
		[]string{LabelEffect, LabelItem},
	)

	HeldItemTransfers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHeldItemTransfers,
			Help: HelpTextHeldItemTransfers,
		},
		[]string{LabelItem, LabelResult},
	)

	HeldItemsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHeldItemsConsumed,
			Help: HelpTextHeldItemsConsumed,
		},
		[]string{LabelItem, LabelRemoved},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)
