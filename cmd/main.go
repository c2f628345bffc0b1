package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/bafoka-network/voice-assistant/internal/ai"
	"github.com/bafoka-network/voice-assistant/internal/alerts"
	"github.com/bafoka-network/voice-assistant/internal/backend"
	"github.com/bafoka-network/voice-assistant/internal/config"
	"github.com/bafoka-network/voice-assistant/internal/conversation"
	"github.com/bafoka-network/voice-assistant/internal/delivery"
	"github.com/bafoka-network/voice-assistant/internal/domain"
	"github.com/bafoka-network/voice-assistant/internal/fraud"
	"github.com/bafoka-network/voice-assistant/internal/infra"
	"github.com/bafoka-network/voice-assistant/internal/intent"
	"github.com/bafoka-network/voice-assistant/internal/ports"
	"github.com/bafoka-network/voice-assistant/internal/prompts"
	"github.com/bafoka-network/voice-assistant/internal/speech"
	"github.com/bafoka-network/voice-assistant/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	_ = godotenv.Load()
	cfg := config.Load()

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	alertInfra := alerts.NewInfra(cfg)
	notifier := alerts.NewService(alertInfra)

	// =========================================================================
	// STORAGE
	// =========================================================================

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(opt)
	}

	var convStore ports.ConversationStore
	var memStore *storage.MemoryStore
	if rdb != nil {
		convStore = storage.NewRedisStore(rdb, cfg.ConversationTTL, zl)
	} else {
		memStore = storage.NewMemoryStore(cfg.ConversationTTL)
		convStore = memStore
	}

	localAudio, err := storage.NewLocalAudioStore(cfg)
	if err != nil {
		log.Fatalf("failed to init audio storage: %v", err)
	}

	var audioStore ports.AudioStore = localAudio
	if os.Getenv("S3_ENDPOINT") != "" {
		s3Audio, err := storage.NewS3AudioStore()
		if err != nil {
			log.Fatalf("failed to init s3 audio storage: %v", err)
		}
		audioStore = s3Audio
	}

	var (
		turnRepo   ports.TurnRepo
		auditRepo  ports.AuditRepo
		promptRepo prompts.Repo
	)
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.PingContext(ctx); err != nil {
			cancel()
			log.Fatalf("db ping failed: %v", err)
		}
		cancel()

		turnRepo = infra.NewTurnRepo(db)
		auditRepo = infra.NewAuditRepo(db)
		promptRepo = prompts.NewRepo(db)
	}

	// =========================================================================
	// CLIENTS (BACKEND / LLM / SPEECH)
	// =========================================================================

	bafoka := backend.NewClient(cfg, zl)

	speechService, err := speech.NewServiceFromConfig(cfg)
	if err != nil {
		log.Fatalf("failed to init speech providers: %v", err)
	}

	llmClient := ai.NewOpenAIClient(cfg)

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	texts := prompts.NewService(cfg, promptRepo)
	if err := texts.Reload(context.Background()); err != nil {
		log.Printf("[prompts] override reload failed: %v", err)
	}
	classifier := intent.NewClassifier()
	risk := fraud.NewDetector(rdb, zl)

	aiService := ai.NewAiService(cfg, llmClient, bafoka, turnRepo, notifier)

	manager := conversation.NewManager(cfg, convStore, bafoka, texts, classifier, risk, aiService, zl)

	assistant := domain.NewAssistantService(manager, speechService, audioStore, turnRepo, auditRepo, notifier, zl)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// TODO: probe the backend instead of reporting "unknown".
	services := map[string]string{
		"api":     "healthy",
		"backend": "unknown",
		"stt":     cfg.STTProvider,
		"tts":     cfg.TTSProvider,
		"llm":     cfg.LLMModel,
		"store":   "memory",
		"history": "disabled",
	}
	if rdb != nil {
		services["store"] = "redis"
	}
	if turnRepo != nil {
		services["history"] = "postgres"
	}

	delivery.RegisterRoutes(
		r,
		delivery.NewAssistantHandler(assistant, cfg, services, zl),
		delivery.NewAudioHandler(localAudio),
		delivery.NewDashboardHandler(bafoka, zl),
		delivery.NewHistoryHandler(turnRepo, auditRepo, zl),
		prompts.NewHandler(texts),
		cfg.AdminAPIKey,
	)

	// =========================================================================
	// BACKGROUND JOBS
	// =========================================================================

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		maxAge := time.Duration(cfg.AudioCleanupHours) * time.Hour
		for range ticker.C {
			removed, err := audioStore.Cleanup(context.Background(), maxAge)
			if err != nil {
				log.Printf("[audio-cleanup] error: %v", err)
			} else if removed > 0 {
				log.Printf("[audio-cleanup] removed %d files", removed)
			}

			if memStore != nil {
				if swept := memStore.Sweep(); swept > 0 {
					log.Printf("[conversation-sweep] dropped %d expired conversations", swept)
				}
			}
		}
	}()

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := cfg.Host + ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "voice-assistant",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
