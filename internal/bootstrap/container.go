package bootstrap

import (
	"log"

	"se-trainer-be/internal/config"
	"se-trainer-be/internal/controller"
	"se-trainer-be/internal/pkg/logger"
	"se-trainer-be/internal/repository/unitofwork"
	"se-trainer-be/internal/service"
	embeddingFactory "se-trainer-be/pkg/embedding/factory"
	llmFactory "se-trainer-be/pkg/llm/factory"

	pktNats "se-trainer-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	TrainerController controller.ITrainerController
	KBController      controller.IKBController
	UsageController   controller.IUsageController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared infrastructure
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	embeddingProvider, err := embeddingFactory.NewEmbeddingProvider(
		cfg.Ai.EmbeddingProvider,
		cfg.Keys.GoogleGemini,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OllamaModel,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Embedding Provider: %v", err)
	}
	log.Printf("[INFO] Using Embedding Provider: %s", cfg.Ai.EmbeddingProvider)

	llmProvider, err := llmFactory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Keys.GoogleGemini,
		cfg.Ai.LLMModel,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 3.5 Infrastructure
	// NATS feeds downstream reporting; the API works without it.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.EmbedCardTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedCardTopic,
		uowFactory,
		embeddingProvider,
	)

	quotaService := service.NewQuotaService(uowFactory)
	retrievalService := service.NewRetrievalService(
		uowFactory,
		embeddingProvider,
		sysLogger,
		cfg.Ai.UserTopK,
		cfg.Ai.PublicTopK,
	)
	sessionService := service.NewSessionService(uowFactory)
	turnService := service.NewTurnService(
		uowFactory,
		quotaService,
		retrievalService,
		llmProvider,
		natsPub,
		sysLogger,
	)
	templateService := service.NewTemplateService(uowFactory, publisherService, sysLogger)

	// 5. Controllers
	return &Container{
		TrainerController: controller.NewTrainerController(sessionService, turnService),
		KBController:      controller.NewKBController(templateService),
		UsageController:   controller.NewUsageController(quotaService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
