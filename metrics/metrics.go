package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ScoresSavedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "parade_scores_saved_total",
	Help: "Number of score saves by result",
}, []string{"result"})

var PositionShiftsCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "parade_position_shifts_total",
	Help: "Number of entries moved up by position insertions",
})

var JudgeSubmissionsCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "parade_judge_submissions_total",
	Help: "Number of judges that locked their scores",
})

var QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "sql_query_duration_seconds",
	Help: "Duration of sql queries in seconds",
}, []string{"query"})

var AggregationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "parade_aggregation_duration_seconds",
	Help: "Duration of winner aggregation",
	Buckets: []float64{
		0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2, 5,
	},
})
