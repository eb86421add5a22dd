package buffers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	allocationsTotal = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "tuple_buffer_allocations_total",
		Help: "The total number of buffers allocated through a factory",
	})

	allocatedBytesTotal = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "tuple_buffer_allocated_bytes_total",
		Help: "The total number of bytes requested from buffer factories",
	})

	codecBytesTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "tuple_buffer_codec_bytes_total",
		Help: "The total number of bytes produced by buffer codecs",
	}, []string{"codec", "direction"})
)
