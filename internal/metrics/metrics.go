// Package metrics holds the prometheus collectors for ledger movements and
// HTTP traffic.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var Registry = prometheus.NewRegistry()

var (
	factory = promauto.With(Registry)

	creditsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubcredits_credits_total",
			Help: "Credits moved through the ledger",
		},
		[]string{"type"},
	)

	redemptionsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubcredits_redemptions_total",
			Help: "Shop redemption attempts by outcome",
		},
		[]string{"outcome"},
	)

	tasksCompletedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "clubcredits_tasks_completed_total",
			Help: "Tasks marked completed",
		},
	)

	promotionsTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "clubcredits_waitlist_promotions_total",
			Help: "Volunteers promoted from a waitlist",
		},
	)

	tasksGeneratedTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubcredits_tasks_generated_total",
			Help: "Tasks generated from templates",
		},
		[]string{"source"},
	)

	plannerRunsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubcredits_planner_runs_total",
			Help: "Planner runs by result",
		},
		[]string{"result"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry in the prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

func CreditsEarned(amount int) {
	creditsTotal.WithLabelValues("earned").Add(float64(amount))
}

func CreditsSpent(amount int) {
	creditsTotal.WithLabelValues("spent").Add(float64(amount))
}

// CreditsAdjusted records the absolute value of a manual correction.
func CreditsAdjusted(amount int) {
	if amount < 0 {
		amount = -amount
	}
	creditsTotal.WithLabelValues("adjustment").Add(float64(amount))
}

func Redemption(outcome string) {
	redemptionsTotal.WithLabelValues(outcome).Inc()
}

func TaskCompleted() {
	tasksCompletedTotal.Inc()
}

func Promotion() {
	promotionsTotal.Inc()
}

func TasksGenerated(source string, n int) {
	tasksGeneratedTotal.WithLabelValues(source).Add(float64(n))
}

func PlannerRun(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	plannerRunsTotal.WithLabelValues(result).Inc()
}
