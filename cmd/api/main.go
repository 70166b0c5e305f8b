package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"travelapp/internal/config"
	"travelapp/internal/database"
	"travelapp/internal/domain"
	"travelapp/internal/gateway"
	"travelapp/internal/mailer"
	"travelapp/internal/metrics"
	"travelapp/internal/middleware"
	"travelapp/internal/modules/booking"
	"travelapp/internal/modules/health"
	"travelapp/internal/modules/payment"
	"travelapp/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&domain.Booking{}, &domain.Payment{}); err != nil {
		log.Fatal(err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	chapa := gateway.NewClient(cfg.ChapaBaseURL, cfg.ChapaSecretKey, cfg.ChapaTimeout)

	dispatcher := mailer.NewQueueDispatcher(mailer.NewLogSender(), cfg.MailWorkers, cfg.MailQueueSize)
	defer dispatcher.Close()

	bookingService := booking.NewService(bookingRepo, dispatcher)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(paymentRepo, chapa, cfg.Currency, cfg.PaymentCallbackURL)
	paymentHandler := payment.NewHandler(paymentService)

	healthHandler := health.NewHandler()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	root := r.Group("")
	{
		bookingHandler.RegisterRoutes(root)
		paymentHandler.RegisterRoutes(root)
		healthHandler.RegisterRoutes(root)
		root.GET("/metrics", metrics.Handler())
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
