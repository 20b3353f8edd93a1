package main

import (
	"os"
	"os/signal"
	"syscall"

	"koperasi-portal/internal/config"
	"koperasi-portal/internal/handler"
	"koperasi-portal/internal/middleware"
	"koperasi-portal/internal/repository"
	"koperasi-portal/internal/service"
	"koperasi-portal/pkg/database"
	"koperasi-portal/pkg/jwt"
	"koperasi-portal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	envErr := godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.Env, cfg.LogLevel)
	if envErr != nil {
		log.Debug(".env file not found, using process environment")
	}

	if cfg.AuthRequired && cfg.JWTSecret == "" {
		log.Fatal("AUTH_REQUIRED is set but JWT_SECRET is empty")
	}

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("Database setup failed")
	}
	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.WithError(err).Fatal("Database migration failed")
		}
		log.Info("Database schema migrated")
	}

	// 3. Dependency Injection (Wiring Layers)
	memberRepo := repository.NewMemberRepo(db)
	savingsRepo := repository.NewSavingsRepo(db)
	loanRepo := repository.NewLoanRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)
	productRepo := repository.NewProductRepo(db)

	signer := jwt.NewSigner(cfg.JWTSecret)

	dashService := service.NewDashboardService(memberRepo, savingsRepo, loanRepo, txRepo, notificationRepo)
	txService := service.NewTransactionService(txRepo)
	productService := service.NewProductService(productRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	authService := service.NewAuthService(memberRepo, signer)

	rpc := handler.NewRPCHandler(handler.Handlers{
		Health:       handler.NewHealthHandler(),
		Dashboard:    handler.NewDashboardHandler(dashService),
		Transaction:  handler.NewTransactionHandler(txService),
		Product:      handler.NewProductHandler(productService),
		Notification: handler.NewNotificationHandler(notificationService),
		Auth:         handler.NewAuthHandler(authService),
	}, cfg.AuthRequired, log)

	// 4. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      "Koperasi Member Portal v1.0",
		ErrorHandler: handler.ErrorHandler(log),
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} ${latency} ${method} ${path}\n",
		Output: log.Writer(),
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	if cfg.JWTSecret != "" {
		app.Use(middleware.MemberSession(signer))
	}

	// 5. Routes
	rpc.Mount(app)

	// 6. Graceful Shutdown
	go func() {
		log.WithField("port", cfg.Port).Info("RPC server listening")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.WithError(err).Panic("Server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
	if err := database.Close(db); err != nil {
		log.WithError(err).Warn("Failed to close database")
	}

	log.Info("Server exited")
}
