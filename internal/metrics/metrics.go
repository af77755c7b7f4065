package metrics

import (
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// Collectors are created eagerly so packages can record before Register runs
// (tests never register).
var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "charizard_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "charizard_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	AnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "charizard_analyses_total",
			Help: "Completed analyses, by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	AnalysisDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "charizard_analysis_duration_seconds",
			Help:    "Duration of full analyses, by kind.",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
		},
		[]string{"kind"},
	)

	YouTubeCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "charizard_youtube_api_calls_total",
			Help: "YouTube Data API calls, by endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	)

	KeyRotations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "charizard_youtube_key_rotations_total",
			Help: "Times an API key ran out of quota and the next key was used.",
		},
	)

	LLMFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "charizard_llm_fallbacks_total",
			Help: "LLM calls answered with the default result, by operation.",
		},
		[]string{"operation"},
	)

	JobsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "charizard_jobs_processed_total",
			Help: "Async jobs processed, by kind and final status.",
		},
		[]string{"kind", "status"},
	)
)

var once sync.Once

// Register registers all collectors with the default registry. Call once at
// startup; pool may be nil when the SQLite store is used.
func Register(pool *pgxpool.Pool) {
	once.Do(func() {
		if pool != nil {
			prometheus.MustRegister(
				prometheus.NewGaugeFunc(
					prometheus.GaugeOpts{
						Name: "charizard_db_connection_pool_active",
						Help: "Number of active database connections.",
					},
					func() float64 { return float64(pool.Stat().AcquiredConns()) },
				),
				prometheus.NewGaugeFunc(
					prometheus.GaugeOpts{
						Name: "charizard_db_connection_pool_idle",
						Help: "Number of idle database connections.",
					},
					func() float64 { return float64(pool.Stat().IdleConns()) },
				),
			)
		}

		prometheus.MustRegister(
			RequestDuration,
			RequestsInFlight,
			AnalysesTotal,
			AnalysisDuration,
			YouTubeCalls,
			KeyRotations,
			LLMFallbacks,
			JobsProcessed,
		)
	})
}
