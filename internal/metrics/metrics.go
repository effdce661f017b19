package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"uniassist/internal/db"
)

var (
	queryDesc = prometheus.NewDesc(
		"uniassist_queries_total",
		"Total processed query count by subject and outcome",
		[]string{"subject", "outcome"},
		nil,
	)
)

// QueryStatCollector is a custom Prometheus collector that reads per-subject
// query counts from the database on each scrape.
type QueryStatCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *QueryStatCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- queryDesc
}

// Collect queries the database for all query stats and emits them as counters.
func (c *QueryStatCollector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.db.GetAllQueryStats(context.Background())
	if err != nil {
		slog.Error("failed to collect query stat metrics", "error", err)
		return
	}
	for _, s := range stats {
		ch <- prometheus.MustNewConstMetric(
			queryDesc,
			prometheus.CounterValue,
			float64(s.Count),
			s.Subject,
			s.Outcome,
		)
	}
}

// Recorder provides async query outcome recording.
type Recorder struct {
	db *db.DB
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup.
func Init(database *db.DB) {
	recorderOnce.Do(func() {
		recorder = &Recorder{db: database}
		prometheus.MustRegister(&QueryStatCollector{db: database})
	})
}

// RecordQueryOutcome asynchronously records a processed query outcome.
// subject may be empty when no subject resolved; it is stored as "none".
func RecordQueryOutcome(subject, outcome string) {
	if recorder == nil {
		return
	}
	if subject == "" {
		subject = "none"
	}
	go func() {
		if err := recorder.db.IncrementQueryStat(context.Background(), subject, outcome); err != nil {
			slog.Error("failed to record query outcome", "subject", subject, "outcome", outcome, "error", err)
		}
	}()
}
