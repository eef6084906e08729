package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RemindersScheduled counts reminder schedules written by the dispatcher.
	RemindersScheduled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medicaction_reminders_scheduled_total",
		Help: "Number of reminder schedules created or replaced.",
	})

	// RemindersCancelled counts reminder schedules removed by the dispatcher.
	RemindersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medicaction_reminders_cancelled_total",
		Help: "Number of reminder schedules cancelled.",
	})

	// PushSent counts push messages accepted by the push endpoint.
	PushSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medicaction_push_sent_total",
		Help: "Number of push notifications sent.",
	})

	// PushFailed counts push messages whose delivery attempt failed.
	PushFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medicaction_push_failed_total",
		Help: "Number of push notifications that failed to send.",
	})

	// PushRejected counts push messages dropped by the open circuit breaker
	// before any delivery attempt.
	PushRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medicaction_push_rejected_total",
		Help: "Number of push notifications rejected while the circuit breaker was open.",
	})

	// LifecycleStepFailures counts non-fatal failures of trailing lifecycle
	// steps (notification scheduling, activity logging) after the row write
	// already succeeded.
	LifecycleStepFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medicaction_lifecycle_step_failures_total",
		Help: "Number of failed trailing steps in medication lifecycle operations.",
	}, []string{"operation", "step"})
)
