package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	orderTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ezwh_order_transitions_total",
		Help: "Order state transitions by order kind",
	}, []string{"kind", "from", "to"})

	unitsMoved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ezwh_sku_units_total",
		Help: "SKU units received, consumed or returned",
	}, []string{"direction"})
)
