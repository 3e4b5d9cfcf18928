package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	packets = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sepd",
			Subsystem: "reader",
			Name:      "packets_total",
			Help:      "Packets decoded.",
		},
		[]string{"reader"},
	)
	invalidPackets = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sepd",
			Subsystem: "reader",
			Name:      "invalid_packets_total",
			Help:      "Packets dropped because the body failed to parse.",
		},
		[]string{"reader"},
	)
	skippedBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sepd",
			Subsystem: "reader",
			Name:      "resync_skipped_bytes_total",
			Help:      "Bytes discarded while searching for a packet header.",
		},
		[]string{"reader"},
	)
	wouldBlocks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sepd",
			Subsystem: "reader",
			Name:      "would_block_total",
			Help:      "Reads that found no complete packet.",
		},
		[]string{"reader"},
	)
	packetSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sepd",
			Subsystem: "reader",
			Name:      "packet_size_bytes",
			Help:      "Size of decoded packets including the header.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 7),
		},
		[]string{"reader"},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sepd",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sepd",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(packets, invalidPackets, skippedBytes, wouldBlocks, packetSize, httpRequests, httpDuration)
	})
}

func RecordPacket(reader string, size int) {
	RegisterMetrics()
	packets.WithLabelValues(reader).Inc()
	packetSize.WithLabelValues(reader).Observe(float64(size))
}

func RecordInvalidPacket(reader string) {
	RegisterMetrics()
	invalidPackets.WithLabelValues(reader).Inc()
}

func RecordSkippedBytes(reader string, n int) {
	RegisterMetrics()
	skippedBytes.WithLabelValues(reader).Add(float64(n))
}

func RecordWouldBlock(reader string) {
	RegisterMetrics()
	wouldBlocks.WithLabelValues(reader).Inc()
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}
