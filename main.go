package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lumina/internal/handlers"
	"lumina/internal/middleware"
	"lumina/internal/services"
	"lumina/internal/storage"
	"lumina/internal/store"
	"lumina/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite") // sqlite or postgres
	viper.SetDefault("DB_DSN", "lumina.db")
	viper.SetDefault("JWT_SECRET", "lumina_dev_secret")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Initialize Persistence ---
	db, err := openDatabase(viper.GetString("DB_DRIVER"), viper.GetString("DB_DSN"))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	snapshotStorage, err := storage.NewGormStorage(db)
	if err != nil {
		log.Fatalf("Failed to initialize snapshot storage: %v", err)
	}

	// --- Initialize State Store ---
	// The store restores the persisted snapshot, or falls back to the seed
	// dataset when nothing usable is stored.
	appStore := store.New(snapshotStorage)
	if err := appStore.Load(); err != nil {
		log.Fatalf("Failed to load application state: %v", err)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, events will not be published: %v", err)
			mqClient = nil
		} else {
			defer mqClient.Close()
		}
	}

	// --- Start Event Consumer ---
	// Drains the storefront event queue so published events are visible when
	// running against a live broker. A real deployment would hang inventory
	// or email workers off this queue instead.
	if mqClient != nil {
		go func() {
			log.Println("Starting storefront event consumer...")
			err := mqClient.ConsumeEvents(func(msg amqp.Delivery) error {
				log.Printf("Received %s event (Tag: %d): %s", msg.Type, msg.DeliveryTag, msg.Body)
				return nil
			})
			if err != nil {
				log.Printf("Failed to start event consumer: %v", err)
			}
		}()
	}

	// --- Subscribe to Store Commits ---
	// Every commit is logged; when a broker is configured the commit is also
	// forwarded so external consumers can react without polling.
	unsubscribe := appStore.Subscribe(func(ev store.Event) {
		log.Printf("State committed by %s", ev.Op)
		if mqClient == nil {
			return
		}
		body, err := json.Marshal(map[string]interface{}{
			"op": ev.Op,
			"at": ev.At.Format(time.RFC3339),
		})
		if err != nil {
			log.Printf("Failed to marshal commit event: %v", err)
			return
		}
		if err := mqClient.Publish("state.committed", body); err != nil {
			log.Printf("Warning: failed to forward commit event: %v", err)
		}
	})
	defer unsubscribe()

	// --- Initialize Services ---
	authService := services.NewAuthService(appStore, jwtSecret)
	productService := services.NewProductService(appStore)
	cartService := services.NewCartService(appStore)
	orderService := services.NewOrderService(appStore, mqClient)
	comparisonService := services.NewComparisonService(appStore)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	comparisonHandler := handlers.NewComparisonHandler(comparisonService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")

	// Public routes: login/logout, catalog browsing, cart, comparison.
	authHandler.RegisterRoutes(apiV1)
	productHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1)
	comparisonHandler.RegisterRoutes(apiV1)

	// Routes that need a session token: profile, checkout, own orders.
	protected := apiV1.Group("", middleware.AuthRequired(authService))
	authHandler.RegisterProtectedRoutes(protected)
	orderHandler.RegisterRoutes(protected)

	// Admin panel routes: product CRUD and order status management.
	admin := apiV1.Group("", middleware.AuthRequired(authService), middleware.AdminRequired())
	productHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase opens the snapshot database with the configured driver.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
}
