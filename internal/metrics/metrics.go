package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BookingsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "travelapp_bookings_created_total",
		Help: "Number of bookings created",
	})

	PaymentsInitiated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "travelapp_payments_initiated_total",
		Help: "Number of payments successfully initiated with the gateway",
	})

	PaymentsVerified = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "travelapp_payments_verified_total",
		Help: "Number of payment verifications by resolved status",
	}, []string{"status"})
)

func init() {
	prometheus.MustRegister(BookingsCreated, PaymentsInitiated, PaymentsVerified)
}

// Handler exposes the default prometheus registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
