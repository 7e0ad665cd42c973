package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics records submission outcomes and email dispatch latency.
type QuoteMetrics struct {
	submissions  *prometheus.CounterVec
	dispatchTime prometheus.Histogram
}

// NewQuoteMetrics registers the quote metrics on the provided registerer.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_submissions_total",
		Help: "Quote form submissions by outcome.",
	}, []string{"outcome"})
	dispatchTime := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "quote_email_dispatch_seconds",
		Help:    "Time spent handing the quote email to the SMTP provider.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(submissions, dispatchTime)
	return &QuoteMetrics{
		submissions:  submissions,
		dispatchTime: dispatchTime,
	}
}

// IncSubmission increments the counter for the given outcome.
func (m *QuoteMetrics) IncSubmission(outcome string) {
	if m == nil || m.submissions == nil {
		return
	}
	m.submissions.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveDispatch records one email dispatch attempt duration.
func (m *QuoteMetrics) ObserveDispatch(duration time.Duration) {
	if m == nil || m.dispatchTime == nil {
		return
	}
	m.dispatchTime.Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return "unknown"
	}
	return trimmed
}
