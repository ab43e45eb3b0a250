package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_total",
			Help: "Order lifecycle transitions by resulting status",
		},
		[]string{"status"},
	)

	reservationRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reservation_rejections_total",
			Help: "Rejected purchase intents by reason",
		},
		[]string{"reason"},
	)

	reservationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reservation_duration_seconds",
			Help:    "Duration of the reserve-and-create-order operation",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)

	checkins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_checkins_total",
			Help: "Check-in scans by result",
		},
		[]string{"result"},
	)
)

func OrderCreated()   { ordersTotal.WithLabelValues("pending").Inc() }
func OrderPaid()      { ordersTotal.WithLabelValues("paid").Inc() }
func OrderCancelled() { ordersTotal.WithLabelValues("cancelled").Inc() }
func OrderRefunded()  { ordersTotal.WithLabelValues("refunded").Inc() }

func OrdersExpired(n int) {
	ordersTotal.WithLabelValues("expired").Add(float64(n))
}

func ReservationRejected(reason string) {
	reservationRejections.WithLabelValues(reason).Inc()
}

func ObserveReservation(d time.Duration) {
	reservationDuration.Observe(d.Seconds())
}

func CheckInResult(result string) {
	checkins.WithLabelValues(result).Inc()
}
