package history

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// framesAdvanced counts calls to Keeper.AdvanceFrame across all keepers.
	framesAdvanced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gamequ_history_frames_advanced_total",
		Help: "Total number of history frames advanced",
	})

	layersEvicted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gamequ_history_layers_evicted_total",
		Help: "Total number of frame layers evicted from history windows",
	})

	// lookups counts history reads by result (hit, miss).
	lookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamequ_history_lookups_total",
		Help: "Total history lookups by result",
	}, []string{"result"})

	eventsTriggered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamequ_events_triggered_total",
		Help: "Total edge-triggered event firings by kind",
	}, []string{"kind"})
)
