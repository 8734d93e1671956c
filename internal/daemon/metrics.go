package daemon

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/theirongolddev/pocketguard/internal/model"
)

// metrics holds the collectors of one service. Each service owns a registry so
// several can live in one process.
type metrics struct {
	registry *prometheus.Registry

	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	expensesRecorded *prometheus.CounterVec
	alertsEmitted    *prometheus.CounterVec
	dayResets        prometheus.Counter
	spendingTotal    prometheus.Gauge
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		requestCount: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pocketguard_requests_total",
				Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
			},
			[]string{"code", "method", "url"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "pocketguard_request_duration_seconds",
				Help: "The HTTP request latencies in seconds.",
			},
			[]string{"code", "method", "url"},
		),
		expensesRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pocketguard_expenses_recorded_total",
				Help: "Expenses recorded, partitioned by regular or emergency.",
			},
			[]string{"kind"},
		),
		alertsEmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pocketguard_alerts_emitted_total",
				Help: "Alerts produced by the engine, partitioned by alert kind.",
			},
			[]string{"kind"},
		),
		dayResets: factory.NewCounter(prometheus.CounterOpts{
			Name: "pocketguard_day_resets_total",
			Help: "Day boundaries applied, from the scheduler or the API.",
		}),
		spendingTotal: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pocketguard_spending_total",
			Help: "Total spending recorded this month in the smallest currency unit.",
		}),
	}
}

func (m *metrics) observeAlerts(alerts []model.Alert) {
	for _, a := range alerts {
		m.alertsEmitted.WithLabelValues(string(a.Kind)).Inc()
	}
}

// middleware updates the request metrics.
func (m *metrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Replace URL parameters with their name to keep cardinality low
		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		m.requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		m.requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}
