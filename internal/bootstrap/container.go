package bootstrap

import (
	"context"
	"log"
	"time"

	"tutor-match-be/internal/config"
	"tutor-match-be/internal/controller"
	"tutor-match-be/internal/pkg/logger"
	"tutor-match-be/internal/pkg/mailer"
	"tutor-match-be/internal/repository/memory"
	"tutor-match-be/internal/repository/redisstore"
	"tutor-match-be/internal/repository/unitofwork"
	"tutor-match-be/internal/service"
	"tutor-match-be/pkg/booking"
	"tutor-match-be/pkg/embedding"
	"tutor-match-be/pkg/match"
	"tutor-match-be/pkg/store"

	pktNats "tutor-match-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	MatchController controller.IMatchController
	ChatController  controller.IChatController
	TutorController controller.ITutorController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Embedding Provider based on Config
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	// 3. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Session storage: redis when configured, in-process otherwise
	sessionTTL := time.Duration(cfg.App.SessionTTLMinutes) * time.Minute
	var sessionRepo store.SessionRepository
	if cfg.App.SessionBackend == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionRepo = redisstore.NewSessionRepository(rdb, sessionTTL)
		log.Printf("[INFO] Using Session Backend: REDIS")
	} else {
		sessionRepo = memory.NewSessionRepository(sessionTTL)
		log.Printf("[INFO] Using Session Backend: MEMORY")
	}

	// 4. Matching pipeline
	retriever := match.NewVectorRetriever(uowFactory, embeddingProvider, sysLogger)
	tutorSource := match.NewRepositoryTutorSource(uowFactory)
	pipeline := match.NewPipeline(retriever, tutorSource, sysLogger)

	bookingMachine := booking.NewMachine(cfg.App.SchedulingBaseURL)

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Keys.EmbedTutorTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedTutorTopic,
		uowFactory,
		embeddingProvider,
	)

	matchService := service.NewMatchService(pipeline, sessionRepo, sysLogger)
	chatService := service.NewChatService(sessionRepo, bookingMachine, natsPub, emailService, sysLogger)
	tutorService := service.NewTutorService(uowFactory, publisherService)

	// 6. Controllers
	return &Container{
		MatchController: controller.NewMatchController(matchService),
		ChatController:  controller.NewChatController(chatService),
		TutorController: controller.NewTutorController(tutorService),
		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
