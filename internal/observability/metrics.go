package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mia_events_total",
		Help: "Chat events received, by kind.",
	}, []string{"kind"})

	HandlerErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mia_handler_errors_total",
		Help: "Chat events whose handler returned an error, by kind.",
	}, []string{"kind"})

	RepliesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mia_replies_total",
		Help: "Generated replies, by whether the contact block was appended.",
	}, []string{"contact_enforced"})

	InferenceFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mia_inference_failures_total",
		Help: "Completion streams that errored or came back empty.",
	})

	OutboundTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mia_outbound_total",
		Help: "Outbound transport calls, by method and result.",
	}, []string{"method", "result"})
)
