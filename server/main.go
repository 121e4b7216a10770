package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/api"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/catalog"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/fulfillment"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/notifier"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/payment"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/config"
)

func main() {
	cfg := config.Load()

	mongoClient, err := config.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		log.Fatalf("error connecting to mongo: %v\n", err)
	}
	defer mongoClient.Disconnect(context.Background())

	db := mongoClient.Database(cfg.Database)
	kafkaBrokers := []string{cfg.KafkaBroker}

	// Stores and indexes
	productStore := catalog.NewMongoProductStore(db)
	orderStore := fulfillment.NewMongoOrderStore(db)
	stockStore := fulfillment.NewMongoStockStore(db)
	paymentStore := payment.NewMongoPaymentStore(db)

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	if err := productStore.EnsureIndexes(indexCtx); err != nil {
		log.Fatalf("error creating product indexes: %v", err)
	}
	if err := orderStore.EnsureIndexes(indexCtx); err != nil {
		log.Fatalf("error creating order indexes: %v", err)
	}
	cancelIndex()

	// Services
	events := fulfillment.NewKafkaEvents(kafkaBrokers)
	defer events.Close()

	catalogSvc := catalog.NewService(productStore, catalog.LogImageReleaser{})
	orderSvc := fulfillment.NewService(orderStore, stockStore, events)

	signer := payment.NewHMACSigner(os.Getenv("PAYTM_MERCHANT_KEY"))
	gateway := payment.NewHTTPGateway(cfg.GatewayURL, cfg.MerchantID)
	paymentSvc := payment.NewService(paymentStore, gateway, signer, cfg.MerchantID)

	// Background consumers and jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go notifier.New(db, kafkaBrokers).Run(ctx)

	scheduler := cron.New()
	scheduler.AddFunc("@midnight", func() {
		reminderCtx, cancelReminder := context.WithTimeout(context.Background(), time.Minute)
		defer cancelReminder()

		sent, err := orderSvc.PendingReminders(reminderCtx, time.Now().Add(-24*time.Hour))
		if err != nil {
			log.Printf("Pending order reminder run failed: %v", err)
			return
		}
		log.Printf("Dispatched %d pending order reminder(s)", sent)
	})
	scheduler.Start()
	defer scheduler.Stop()

	// HTTP server
	server := api.NewServer(catalogSvc, orderSvc, paymentSvc, cfg.FrontendURL)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.Router(),
	}

	go func() {
		log.Printf("Starting storefront API on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down storefront API...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}

	log.Println("Storefront API stopped")
}
