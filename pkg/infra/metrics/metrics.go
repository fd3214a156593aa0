package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shield_analyses_total",
		Help: "Analysis requests by outcome.",
	}, []string{"outcome"})

	CompletionErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shield_completion_errors_total",
		Help: "Model backend failures by taxonomy kind.",
	}, []string{"kind"})

	AlertsEmittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shield_alerts_emitted_total",
		Help: "Alert events delivered to subscribers by kind.",
	}, []string{"kind"})

	ActiveSubscriptions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "shield_alert_subscriptions_active",
		Help: "Currently attached alert subscribers.",
	})
)
