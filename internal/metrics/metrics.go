package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"leadsearch/internal/db"
)

var (
	agentSearchesDesc = prometheus.NewDesc(
		"leadsearch_agent_searches_total",
		"Total logged agent searches by criteria",
		[]string{"criteria"},
		nil,
	)
)

// SearchCollector is a custom Prometheus collector that reads agent search
// totals from the audit table on each scrape.
type SearchCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *SearchCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- agentSearchesDesc
}

// Collect queries the audit table for per-criteria totals and emits them as
// counters.
func (c *SearchCollector) Collect(ch chan<- prometheus.Metric) {
	totals, err := c.db.GetSearchTotals(context.Background())
	if err != nil {
		slog.Error("failed to collect agent search metrics", "error", err)
		return
	}
	for _, t := range totals {
		ch <- prometheus.MustNewConstMetric(
			agentSearchesDesc,
			prometheus.CounterValue,
			float64(t.Count),
			t.Criteria,
		)
	}
}

var initOnce sync.Once

// Init registers the custom collector. Must be called once at startup.
func Init(database *db.DB) {
	initOnce.Do(func() {
		prometheus.MustRegister(&SearchCollector{db: database})
	})
}
