package routing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchPassesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "routing_search_passes_total",
		Help: "Search passes by result",
	}, []string{"result"})

	labelsCreated = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "routing_labels_created",
		Help:    "Edge labels created per search pass",
		Buckets: []float64{10, 100, 1000, 10000, 100000, 1000000},
	})
)
