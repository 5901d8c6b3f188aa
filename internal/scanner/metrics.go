package scanner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loadsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "megawave_library_loads_total",
		Help: "Number of library loads started.",
	})
	tracksAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "megawave_library_tracks_added_total",
		Help: "Number of tracks admitted into the library.",
	})
	tracksSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "megawave_library_tracks_skipped_total",
		Help: "Number of files skipped because extraction failed.",
	})
)
