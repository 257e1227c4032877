package paths

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamequ_path_state_transitions_total",
		Help: "Total path state transitions by source and target state",
	}, []string{"from", "to"})

	stepErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gamequ_simulation_step_errors_total",
		Help: "Total path advance failures during simulation steps",
	})
)
