package metrics

import (
    "net/http"
    "time"

    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
    requests = prometheus.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "genrelay",
            Name:      "requests_total",
            Help:      "Total HTTP requests by endpoint and result",
        },
        []string{"endpoint", "result"},
    )

    modelLatency = prometheus.NewHistogramVec(
        prometheus.HistogramOpts{
            Namespace: "genrelay",
            Name:      "model_request_duration_seconds",
            Help:      "Duration of model calls by provider and result",
            Buckets:   prometheus.DefBuckets,
        },
        []string{"provider", "result"},
    )

    uploadBytes = prometheus.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "genrelay",
            Name:      "upload_bytes_total",
            Help:      "Total uploaded bytes by endpoint",
        },
        []string{"endpoint"},
    )

    cacheHits = prometheus.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "genrelay",
            Name:      "cache_events_total",
            Help:      "Response cache events (hit, miss)",
        },
        []string{"event"},
    )
)

// Init registers collectors.
func Init() {
    prometheus.MustRegister(requests, modelLatency, uploadBytes, cacheHits)
}

// Handler returns the http.Handler for /metrics
func Handler() http.Handler { return promhttp.Handler() }

func IncRequest(endpoint, result string) { requests.WithLabelValues(endpoint, result).Inc() }

func ObserveModel(provider, result string, dur time.Duration) {
    modelLatency.WithLabelValues(provider, result).Observe(dur.Seconds())
}

func AddUploadBytes(endpoint string, n int64) {
    uploadBytes.WithLabelValues(endpoint).Add(float64(n))
}

func CacheHit()  { cacheHits.WithLabelValues("hit").Inc() }
func CacheMiss() { cacheHits.WithLabelValues("miss").Inc() }
