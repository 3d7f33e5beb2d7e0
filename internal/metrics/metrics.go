// Package metrics expose les compteurs Prometheus du service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SubmissionsTotal compte les soumissions citoyennes par backend final.
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "samadhaan_submissions_total",
		Help: "Citizen report submissions by storage backend (remote or local).",
	}, []string{"backend"})

	// FallbacksTotal compte les bascules silencieuses vers le store local.
	FallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "samadhaan_local_fallbacks_total",
		Help: "Submissions that fell back to local storage after a remote failure.",
	})

	// StatusUpdatesTotal compte les avancements de statut par type d'entité.
	StatusUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "samadhaan_status_updates_total",
		Help: "Status cycle advances by entity kind.",
	}, []string{"kind"})
)
