package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shutterdesk/config"
	"shutterdesk/cron"
	"shutterdesk/database"
	catalogRepoPkg "shutterdesk/database/repository/catalog"
	invoiceRepoPkg "shutterdesk/database/repository/invoice"
	sessionRepoPkg "shutterdesk/database/repository/session"
	shootRepoPkg "shutterdesk/database/repository/shoot"
	"shutterdesk/handlers"
	"shutterdesk/middleware"
	"shutterdesk/routes"
	"shutterdesk/services/invoicing"
	"shutterdesk/services/notification"
	"shutterdesk/services/portfolio"
	"shutterdesk/services/session"
	"shutterdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	stripe.Key = config.AppConfig.StripeKey

	// Background email worker and its queue client.
	cron.InitEmailWorker()
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	sessRepo := sessionRepoPkg.NewMongoSessionRepo()
	catRepo := catalogRepoPkg.NewMongoCatalogRepo()
	shootRepo := shootRepoPkg.NewMongoShootRepo()
	invRepo := invoiceRepoPkg.NewMongoInvoiceRepo()

	if err := sessRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create session indexes: %v", err)
	}
	if err := catRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create catalog indexes: %v", err)
	}

	// services.
	portfolioService := &portfolio.DefaultPortfolioService{
		Repo: shootRepo,
	}
	invoicingService := &invoicing.DefaultInvoicingService{
		Repo: invRepo,
	}
	notificationService := &notification.DefaultNotificationService{
		Client: queueClient,
	}
	sessionService := &session.DefaultSessionService{
		Repo:         sessRepo,
		Catalog:      catRepo,
		Portfolio:    portfolioService,
		Invoicing:    invoicingService,
		Notification: notificationService,
		Cache:        utils.GetCacheClient(),
	}

	sessionHandler := handlers.NewSessionHandler(sessionService, logger)
	catalogHandler := handlers.NewCatalogHandler(catRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		LoginOperator:  handlers.LoginOperatorHandler,
		LogoutOperator: handlers.LogoutOperatorHandler,

		ListSessions:      sessionHandler.ListSessions,
		GetSnapshot:       sessionHandler.GetSnapshot,
		CreateSession:     sessionHandler.CreateSession,
		GetSession:        sessionHandler.GetSession,
		UpdateSession:     sessionHandler.UpdateSession,
		DeleteSession:     sessionHandler.DeleteSession,
		GetSummary:        sessionHandler.GetSummary,
		TransitionSession: sessionHandler.TransitionSession,
		GenerateShoot:     sessionHandler.GenerateShoot,
		CreateInvoice:     sessionHandler.CreateInvoice,
		EmailClient:       sessionHandler.EmailClient,
		GetDocument:       sessionHandler.GetDocument,

		ListPackages:  catalogHandler.ListPackages,
		ListAddOns:    catalogHandler.ListAddOns,
		UpsertPackage: catalogHandler.UpsertPackage,
		UpsertAddOn:   catalogHandler.UpsertAddOn,
	}

	routes.RegisterRoutes(router, handlerBundle)
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
