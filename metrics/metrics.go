package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var Operations = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "media_canvas_operations_total",
}, []string{"operation"})
var OperationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "media_canvas_operation_failures_total",
}, []string{"operation"})
var ExifTags = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "media_canvas_exif_tags_total",
}, []string{"tag", "found"})
var Rotations = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "media_canvas_rotations_total",
}, []string{"rotation"})
var CompressionRatio = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "media_canvas_compression_ratio",
	Buckets: []float64{0.1, 0.25, 0.5, 0.75, 1, 1.5, 2},
})
var DataUrlBytes = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "media_canvas_data_url_bytes",
	Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
})

func init() {
	prometheus.MustRegister(Operations)
	prometheus.MustRegister(OperationFailures)
	prometheus.MustRegister(ExifTags)
	prometheus.MustRegister(Rotations)
	prometheus.MustRegister(CompressionRatio)
	prometheus.MustRegister(DataUrlBytes)
}
