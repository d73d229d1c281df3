package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK       = "ok"
	resultRejected = "rejected"
	resultError    = "error"
)

var (
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "green_basket",
		Subsystem: "engine",
		Name:      "transitions_total",
		Help:      "Order state machine transitions by event and result.",
	}, []string{"event", "result"})

	ordersCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "green_basket",
		Subsystem: "engine",
		Name:      "orders_created_total",
		Help:      "Orders created at checkout by initial status.",
	}, []string{"status"})

	otpFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "green_basket",
		Subsystem: "engine",
		Name:      "otp_failures_total",
		Help:      "Rejected delivery OTP submissions.",
	})
)

func observeTransition(event string, err error) {
	transitionsTotal.WithLabelValues(event, transitionResult(err)).Inc()
}
