package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"goru/internal/config"
	"goru/internal/handlers"
	"goru/internal/middleware"
	"goru/internal/models"
	"goru/internal/repositories"
	"goru/internal/services"
	"goru/pkg/rabbitmq"
	"goru/pkg/stripe"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database ---
	db, err := openDatabase(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.WishlistItem{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// The request path never depends on the broker; without a URL the
	// services simply skip publishing.
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient

		// Consume the commerce events this process publishes. The default
		// handler only logs them.
		go func() {
			log.Println("Starting RabbitMQ consumer for commerce events...")
			if consumerErr := mqClient.ConsumeEvents(rabbitmq.LogDelivery); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	} else {
		log.Println("RABBITMQ_URL not set, event publishing disabled")
	}

	// --- Payment gateway (optional) ---
	var gateway services.CheckoutGateway
	if cfg.StripeSecretKey != "" {
		stripeClient, err := stripe.NewClient(stripe.Config{SecretKey: cfg.StripeSecretKey})
		if err != nil {
			log.Fatalf("Failed to initialize Stripe client: %v", err)
		}
		gateway = stripeClient
	} else {
		log.Println("STRIPE_SECRET_KEY not set, checkout disabled")
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	wishlistRepo := repositories.NewGORMWishlistRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWT)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo, publisher)
	wishlistService := services.NewWishlistService(wishlistRepo, productRepo)
	paymentService := services.NewPaymentService(gateway, publisher)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler()
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New()) // Request logger

	// Credential flows are public; everything under /users and /payments
	// runs behind the access guard.
	authHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app)

	guard := middleware.AuthRequired(authService, userRepo)
	userRoutes := app.Group("/users", guard)
	userHandler.RegisterRoutes(userRoutes)
	cartHandler.RegisterRoutes(userRoutes)
	wishlistHandler.RegisterRoutes(userRoutes)
	paymentHandler.RegisterRoutes(app.Group("", guard))

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase picks the driver from the DSN shape: postgres for postgres
// DSNs, sqlite for everything else. TranslateError turns driver-specific
// uniqueness violations into gorm.ErrDuplicatedKey, which the repositories
// rely on for conflict detection.
func openDatabase(dsn string) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return gorm.Open(postgres.Open(dsn), gormCfg)
	}
	return gorm.Open(sqlite.Open(dsn), gormCfg)
}
