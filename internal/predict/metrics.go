package predict

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "heartd",
			Subsystem: "predict",
			Name:      "predictions_total",
			Help:      "Total number of scored records by predicted label",
		},
		[]string{"label"},
	)

	validationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "heartd",
			Subsystem: "predict",
			Name:      "validation_failures_total",
			Help:      "Total number of rejected records by offending field",
		},
		[]string{"field"},
	)
)

func init() {
	prometheus.MustRegister(predictionsTotal, validationFailuresTotal)
}

func labelValue(label int) string {
	if label == 1 {
		return "positive"
	}
	return "negative"
}
