package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RecordWrites counts successful writes per collection in the record store.
var RecordWrites = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "desparches_record_writes_total",
		Help: "Number of record store writes, labeled by collection name.",
	},
	[]string{"collection"},
)

// RecordReadFailures counts reads that degraded to the default value because
// the stored record was missing, corrupt or the medium failed.
var RecordReadFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "desparches_record_read_failures_total",
		Help: "Number of record store reads that fell back to a default value.",
	},
	[]string{"collection"},
)
