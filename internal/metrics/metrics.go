package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	TransactionsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_transactions_created_total",
			Help: "Transactions created from ingress events, by outcome (created or idempotent).",
		},
		[]string{"result"},
	)

	Transitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_transitions_total",
			Help: "Terminal transitions applied, by status and trigger.",
		},
		[]string{"status", "trigger"},
	)

	RejectedTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_transitions_rejected_total",
			Help: "Transition attempts refused by the state machine, by reason.",
		},
		[]string{"reason"},
	)

	SettledAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_settled_amounts",
			Help:    "Distribution of confirmed payment amounts.",
			Buckets: prometheus.LinearBuckets(0, 250, 20),
		},
		[]string{"currency"},
	)

	OutcomePublishes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_outcome_publish_total",
			Help: "Outcome event publish attempts, by result and source (transition or sweep).",
		},
		[]string{"result", "source"},
	)

	IngressMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_ingress_messages_total",
			Help: "Ingress messages handled, by result.",
		},
		[]string{"result"},
	)

	DeadLettered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_dead_lettered_total",
			Help: "Messages sent to the DLQ, by original topic.",
		},
		[]string{"topic"},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		TransactionsCreated,
		Transitions,
		RejectedTransitions,
		SettledAmounts,
		OutcomePublishes,
		IngressMessages,
		DeadLettered,
	)
}
