package main

import (
	"context"
	"log"
	"net/http"

	"realstate/internal/auth"
	"realstate/internal/config"
	"realstate/internal/controllers"
	"realstate/internal/logger"
	"realstate/internal/middleware"
	"realstate/internal/payments"
	"realstate/internal/repository"
	"realstate/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// Initialize structured logging to file
	logger.Setup(cfg.LogFile)

	// Connect to the database; nothing works without it
	store, err := repository.Connect(context.Background(), cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer store.Disconnect(context.Background())

	tokens := auth.NewTokenService(cfg.TokenSecret, 0)
	intents := payments.NewStripeIntents(cfg.PaymentSecret)
	finalizer := payments.NewFinalizer(store)

	// Setup Gin router with every component wired explicitly
	r := routes.SetupRouter(routes.Deps{
		Store:    store,
		Verifier: tokens,
		Auth:     controllers.NewAuthController(tokens),
		Users:    controllers.NewUserController(store),
		Listings: controllers.NewListingController(store),
		Carts:    controllers.NewCartController(store),
		Bookings: controllers.NewBookingController(store),
		Reviews:  controllers.NewReviewController(store),
		Payments: controllers.NewPaymentController(store, intents, finalizer),
	})

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Real State running at :%s", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
