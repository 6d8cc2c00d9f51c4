package blockvalidator

import (
	"github.com/kaspanet/hybridgate/domain/consensus/ruleerrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultAccepted = "accepted"
	resultError    = "error"
)

// validationsTotal counts ValidateBlock outcomes by result. The result is
// "accepted", the name of the violated rule, or "error" for failures that
// aren't rule violations.
var validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "hybridgate",
	Name:      "block_validations_total",
	Help:      "Total number of validated blocks by result",
}, []string{"result"})

func recordValidation(err error) {
	if err == nil {
		validationsTotal.WithLabelValues(resultAccepted).Inc()
		return
	}
	if name, ok := ruleerrors.RuleName(err); ok {
		validationsTotal.WithLabelValues(name).Inc()
		return
	}
	validationsTotal.WithLabelValues(resultError).Inc()
}
