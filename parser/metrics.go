package parser

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors a Driver reports to when wired in
// by a caller (e.g. the serve subcommand exposing /metrics). Collection is
// opt-in: a Driver with a nil *Metrics does no reporting at all.
type Metrics struct {
	SentencesParsed      *prometheus.CounterVec
	ChartFillSeconds     prometheus.Histogram
	SkimmerInvocations   prometheus.Counter
	MaxSuperCatsExceeded prometheus.Counter
}

// NewMetrics constructs and registers the parser's collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SentencesParsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sentences_parsed_total",
			Help: "Sentences processed by outcome.",
		}, []string{"outcome"}),
		ChartFillSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "chart_fill_seconds",
			Help:    "Wall-clock time spent filling a chart for one sentence.",
			Buckets: prometheus.DefBuckets,
		}),
		SkimmerInvocations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "skimmer_invocations_total",
			Help: "Times the skimmer fallback decoder ran because the root cell was empty.",
		}),
		MaxSuperCatsExceeded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "max_supercats_exceeded_total",
			Help: "Sentences skipped for exceeding MAX_SUPERCATS.",
		}),
	}
	reg.MustRegister(m.SentencesParsed, m.ChartFillSeconds, m.SkimmerInvocations, m.MaxSuperCatsExceeded)
	return m
}

// Observe records the outcome of one ParseSentence call and its fill
// duration in seconds.
func (m *Metrics) Observe(outcome Outcome, fillSeconds float64) {
	if m == nil {
		return
	}
	m.SentencesParsed.WithLabelValues(outcome.String()).Inc()
	m.ChartFillSeconds.Observe(fillSeconds)
	if outcome == SkippedMaxSuperCats {
		m.MaxSuperCatsExceeded.Inc()
	}
}

// ObserveSkimmer records one skimmer invocation.
func (m *Metrics) ObserveSkimmer() {
	if m == nil {
		return
	}
	m.SkimmerInvocations.Inc()
}
