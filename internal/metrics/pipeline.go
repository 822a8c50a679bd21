package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pipelineRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "anomaly_pipeline",
		Name:      "runs_total",
		Help:      "Count of anomaly pipeline runs.",
	}, []string{"percentile", "status"})

	pipelineRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "anomaly_pipeline",
		Name:      "run_duration_seconds",
		Help:      "Duration of a full pipeline run.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	pipelineRunRows = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "anomaly_pipeline",
		Name:      "run_rows",
		Help:      "Number of rows in the augmented table of a successful run.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 12), // 1..4M
	})

	pipelineSuspiciousRows = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "anomaly_pipeline",
		Name:      "suspicious_rows",
		Help:      "Suspicious rows flagged by the last successful run.",
	}, []string{"percentile"})

	pipelineStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "anomaly_pipeline",
		Name:      "stage_duration_seconds",
		Help:      "Duration of a single pipeline stage.",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"stage", "status"})

	pipelineStageDroppedRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "anomaly_pipeline",
		Name:      "stage_dropped_rows_total",
		Help:      "Rows removed by a pipeline stage.",
	}, []string{"stage"})

	pipelineDegenerateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "anomaly_pipeline",
		Name:      "degenerate_normalization_total",
		Help:      "Runs where a feature maximum was not positive.",
	}, []string{"feature"})
)

// Pipeline tracks anomaly pipeline runs.
type Pipeline struct{}

// NewPipeline creates a Pipeline metrics collector.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// ObserveStage records duration and dropped rows of one stage.
func (m Pipeline) ObserveStage(stage string, err error, rowsIn, rowsOut int, started time.Time) {
	pipelineStageDuration.WithLabelValues(stage, status(err)).Observe(time.Since(started).Seconds())
	if err == nil && rowsOut < rowsIn {
		pipelineStageDroppedRows.WithLabelValues(stage).Add(float64(rowsIn - rowsOut))
	}
}

// ObserveRun records the outcome of a full run.
func (m Pipeline) ObserveRun(err error, percentile, rows, suspicious int, started time.Time) {
	p := strconv.Itoa(percentile)
	pipelineRunsTotal.WithLabelValues(p, status(err)).Inc()
	pipelineRunDuration.WithLabelValues(status(err)).Observe(time.Since(started).Seconds())
	if err != nil {
		return
	}
	pipelineRunRows.Observe(float64(rows))
	pipelineSuspiciousRows.WithLabelValues(p).Set(float64(suspicious))
}

// ObserveDegenerate counts a zero-maximum feature.
func (m Pipeline) ObserveDegenerate(feature string) {
	pipelineDegenerateTotal.WithLabelValues(feature).Inc()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
