package sif

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	costingCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sif_costing_created_total",
		Help: "Costing models created by name",
	}, []string{"costing"})

	costingUnknownTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sif_costing_unknown_total",
		Help: "Costing requests with an unregistered name",
	})
)
