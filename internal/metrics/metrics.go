package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	analyzesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "quill",
		Name:      "analyses_total",
		Help:      "Total number of analyze requests processed",
	})
	wordsFlagged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "quill",
		Name:      "words_flagged_total",
		Help:      "Total number of words reported as unknown",
	})
	analyzeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "quill",
		Name:      "analyze_duration_seconds",
		Help:      "Histogram of analyze durations in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
	})
	dictionaryWords = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "quill",
		Name:      "dictionary_words",
		Help:      "Number of words in the default and most recently uploaded dictionaries",
	}, []string{"source"})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(analyzesTotal, wordsFlagged, analyzeDuration, dictionaryWords)
	})
}

func IncAnalyses() { analyzesTotal.Inc() }

func AddWordsFlagged(n int) { wordsFlagged.Add(float64(n)) }

func ObserveAnalyzeDuration(d time.Duration) {
	analyzeDuration.Observe(d.Seconds())
}

// SetDictionaryWords records the size of a loaded dictionary. The source
// is a fixed identifier ("default" or "uploaded"), never a per-request id,
// to keep the label set bounded.
func SetDictionaryWords(source string, n int) {
	dictionaryWords.WithLabelValues(source).Set(float64(n))
}
