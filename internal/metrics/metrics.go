package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// WHOIS chain stages
const (
	StageRDAP    = "rdap"
	StageWhois   = "whois"
	StageUnknown = "unknown"
)

// Metrics tracks upstream source health and tool usage.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	WhoisChainStage   *prometheus.CounterVec
	DNSQueries        *prometheus.CounterVec
	FeedFetches       *prometheus.CounterVec
	AvailabilityCheck *prometheus.CounterVec
	BulkBatchSize     prometheus.Histogram
	ExpiredResults    prometheus.Histogram
	ToolCalls         *prometheus.CounterVec
	ToolDuration      *prometheus.HistogramVec
}

// New creates a Metrics instance registered with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		WhoisChainStage: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "domain_mcp_whois_chain_total",
			Help: "WHOIS lookups by the stage that produced the record",
		}, []string{"stage"}),
		DNSQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "domain_mcp_dns_queries_total",
			Help: "DNS-over-HTTPS queries by record type and outcome",
		}, []string{"record_type", "outcome"}),
		FeedFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "domain_mcp_feed_fetches_total",
			Help: "Expired domain feed downloads by source and outcome",
		}, []string{"source", "outcome"}),
		AvailabilityCheck: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "domain_mcp_availability_checks_total",
			Help: "Availability verdicts by result",
		}, []string{"available"}),
		BulkBatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "domain_mcp_bulk_batch_size",
			Help:    "Number of domains per bulk check",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
		}),
		ExpiredResults: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "domain_mcp_expired_results",
			Help:    "Candidates returned per expired domain search",
			Buckets: []float64{0, 1, 2, 5, 10},
		}),
		ToolCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "domain_mcp_tool_calls_total",
			Help: "Tool invocations by tool and outcome",
		}, []string{"tool", "outcome"}),
		ToolDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "domain_mcp_tool_duration_seconds",
			Help:    "Tool invocation latency",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"tool"}),
	}
}

// IncWhoisStage records which chain stage answered a lookup
func (m *Metrics) IncWhoisStage(stage string) {
	if m == nil {
		return
	}
	m.WhoisChainStage.WithLabelValues(stage).Inc()
}

// IncDNSQuery records one record-type query
func (m *Metrics) IncDNSQuery(recordType string, err error) {
	if m == nil {
		return
	}
	m.DNSQueries.WithLabelValues(recordType, outcome(err)).Inc()
}

// IncFeedFetch records one feed download
func (m *Metrics) IncFeedFetch(source string, err error) {
	if m == nil {
		return
	}
	m.FeedFetches.WithLabelValues(source, outcome(err)).Inc()
}

// IncAvailability records an availability verdict
func (m *Metrics) IncAvailability(available bool) {
	if m == nil {
		return
	}
	label := "false"
	if available {
		label = "true"
	}
	m.AvailabilityCheck.WithLabelValues(label).Inc()
}

// ObserveBulkBatch records the size of a bulk check
func (m *Metrics) ObserveBulkBatch(size int) {
	if m == nil {
		return
	}
	m.BulkBatchSize.Observe(float64(size))
}

// ObserveExpiredResults records how many candidates a search returned
func (m *Metrics) ObserveExpiredResults(count int) {
	if m == nil {
		return
	}
	m.ExpiredResults.Observe(float64(count))
}

// ObserveToolCall records a tool invocation.
// Call with time.Now() at the start of the invocation.
func (m *Metrics) ObserveToolCall(tool string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.ToolCalls.WithLabelValues(tool, outcome(err)).Inc()
	m.ToolDuration.WithLabelValues(tool).Observe(time.Since(start).Seconds())
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}
