package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/valvesss/weseg-replit/internal/config"
	"github.com/valvesss/weseg-replit/internal/database/minio"
	"github.com/valvesss/weseg-replit/internal/database/postgres"
	"github.com/valvesss/weseg-replit/internal/database/redis"
	"github.com/valvesss/weseg-replit/internal/handlers"
	"github.com/valvesss/weseg-replit/internal/repository"
	"github.com/valvesss/weseg-replit/internal/services"
)

func setupLogging() (*os.File, error) {
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		// No log directory configured: keep slog's default stderr output.
		return nil, nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	logFileName := fmt.Sprintf("log_%s.log", time.Now().Format("2006-01-02"))
	file, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	slog.SetDefault(slog.New(slog.NewTextHandler(file, nil)))
	return file, nil
}

func buildStore(cfg *config.BrokerConfig) (*repository.Store, error) {
	switch cfg.StorageDriver {
	case "postgres":
		db, err := postgres.ConnectAndCreateDB(cfg.PostgresCfg)
		if err != nil {
			// The database may still be starting; block until it is up.
			log.Printf("Postgres not reachable yet: %v", err)
			postgres.RetryConnectOnFailed(5*time.Second, &db, cfg.PostgresCfg)
		}
		return repository.NewPostgresStore(db), nil
	case "memory":
		return repository.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func main() {
	godotenv.Load()

	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := config.New()

	store, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("Failed to build store: %v", err)
	}

	redisClient, err := redis.NewRedisClient(cfg.RedisCfg)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	minioClient, err := minio.NewMinioClient(cfg.MinioCfg)
	if err != nil {
		log.Fatalf("Failed to connect to minio: %v", err)
	}

	sessionTTL := time.Duration(cfg.SessionTTLMin) * time.Minute
	sessionService := services.NewSessionService(redisClient.GetClient(), sessionTTL)
	authService, err := services.NewAuthService(cfg.BrokerEmail, cfg.BrokerPass, sessionService)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	contactService := services.NewContactService(store.Contacts)
	leadService := services.NewPipelineLeadService(store.Leads)
	policyService := services.NewPolicyService(store.Policies)
	claimService := services.NewClaimService(store.Claims)
	documentService := services.NewDocumentService(store.Documents, minioClient)
	profileService := services.NewBrokerProfileService(store.BrokerProfile)
	dashboardService := services.NewDashboardService(store.Contacts, store.Leads, store.Policies, store.Claims)

	app := fiber.New()
	app.Get("/checkhealth", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Broker CRM is healthy")
	})

	handlers.NewAuthHandler(authService, sessionTTL).Register(app)

	mw := handlers.NewMiddleware(sessionService)
	api := app.Group("/api", mw.RequireSession)
	handlers.NewContactHandler(contactService).Register(api)
	handlers.NewPipelineLeadHandler(leadService).Register(api)
	handlers.NewPolicyHandler(policyService).Register(api)
	handlers.NewClaimHandler(claimService).Register(api)
	handlers.NewDocumentHandler(documentService).Register(api)
	handlers.NewBrokerProfileHandler(profileService).Register(api)
	handlers.NewDashboardHandler(dashboardService).Register(api)

	slog.Info("starting broker CRM", "port", cfg.Port, "storage", cfg.StorageDriver)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
