package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "car_rental"

var (
	once sync.Once

	usersRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_registered_total",
			Help:      "Count of registered users.",
		},
	)

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_created_total",
			Help:      "Count of bookings created.",
		},
	)

	bookingRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_rejected_total",
			Help:      "Count of booking attempts rejected by reason.",
		},
		[]string{"reason"},
	)

	bookingStatus = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_status_changed_total",
			Help:      "Count of booking status changes by new status.",
		},
		[]string{"status"},
	)

	remindersSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_reminders_sent_total",
			Help:      "Count of pending booking reminders sent to owners.",
		},
	)

	availabilitySearches = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_searches_total",
			Help:      "Count of availability searches.",
		},
	)

	availableCarsFound = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "availability_search_results",
			Help:      "Number of cars returned by availability searches.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			usersRegistered,
			bookingCreated,
			bookingRejected,
			bookingStatus,
			remindersSent,
			availabilitySearches,
			availableCarsFound,
		)
	})
}

func IncUserRegistered() {
	usersRegistered.Inc()
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingRejected(reason string) {
	bookingRejected.WithLabelValues(reason).Inc()
}

func IncBookingStatus(status string) {
	bookingStatus.WithLabelValues(status).Inc()
}

func IncReminderSent() {
	remindersSent.Inc()
}

func ObserveAvailabilitySearch(found int) {
	availabilitySearches.Inc()
	availableCarsFound.Observe(float64(found))
}
