package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// LoginAttempts is labelled by result: success, failure.
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phish_trainer_login_attempts_total",
			Help: "Login attempts by result",
		},
		[]string{"result"},
	)

	// DashboardEvents counts dashboard actions: profile_update,
	// password_change, stats_read. Result is success or failure.
	DashboardEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phish_trainer_dashboard_events_total",
			Help: "Dashboard actions by kind and result",
		},
		[]string{"event", "result"},
	)

	TestSubmissions = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "phish_trainer_test_score_percent",
			Help:    "Score percentage of submitted tests",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
)

var initOnce sync.Once

// Init registers the collectors with the default registry. Calling it more
// than once is a no-op.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestCounter, RequestDuration, LoginAttempts, DashboardEvents, TestSubmissions)
	})
}

// Result maps ok to the result label value.
func Result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
