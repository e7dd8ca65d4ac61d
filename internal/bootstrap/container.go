package bootstrap

import (
	"context"
	"log"
	"os"
	"time"

	"bytemart-search-be/internal/config"
	"bytemart-search-be/internal/controller"
	"bytemart-search-be/internal/mapper"
	"bytemart-search-be/internal/pkg/logger"
	"bytemart-search-be/internal/repository/implementation"
	"bytemart-search-be/internal/repository/memory"
	"bytemart-search-be/internal/service"
	"bytemart-search-be/pkg/catalog"
	"bytemart-search-be/pkg/embedding/jina"
	"bytemart-search-be/pkg/fixedfilter"
	"bytemart-search-be/pkg/intent"
	"bytemart-search-be/pkg/llm"
	"bytemart-search-be/pkg/llm/factory"
	"bytemart-search-be/pkg/pipeline"
	"bytemart-search-be/pkg/prefs"
	"bytemart-search-be/pkg/query"
	"bytemart-search-be/pkg/rerank"
	"bytemart-search-be/pkg/search"
	"bytemart-search-be/pkg/specfilter"
	"bytemart-search-be/pkg/tags"

	pktNats "bytemart-search-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SearchController controller.ISearchController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Core pipeline, exposed for the simulation entrypoint
	Orchestrator *pipeline.Orchestrator
	Snapshot     *catalog.Snapshot
	SessionRepo  *memory.SessionRepository
}

// NewContainer wires the whole search stack. db may be nil when the catalog
// loads from a snapshot directory.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	pkgLogger := log.New(os.Stderr, "[search] ", log.LstdFlags)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
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
		rdb = nil // History degrades to a no-op without Redis
	}

	// 3. External AI collaborators
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	visionProvider, ok := llmProvider.(llm.VisionProvider)
	if !ok {
		log.Fatalf("[FATAL] LLM Provider %s does not support image input, required for intent classification", cfg.Ai.LLMProvider)
	}

	embeddingProvider := jina.NewJinaProvider(cfg.Ai.EmbedBaseURL, cfg.Ai.EmbedModel, cfg.Keys.Jina)
	reranker := rerank.NewClient(cfg.Ai.RerankBaseURL, cfg.Keys.Voyage, cfg.Ai.RerankModel, 30*time.Second, pkgLogger)

	// 4. Catalog snapshot
	var loader catalog.Loader
	if cfg.Catalog.Source == "postgres" {
		if db == nil {
			log.Fatalf("[FATAL] CATALOG_SOURCE=postgres but no database connection configured")
		}
		catalogRepo := implementation.NewCatalogRepository(db)
		loader = implementation.NewPostgresLoader(catalogRepo, mapper.NewCatalogMapper(), pkgLogger)
	} else {
		loader = catalog.NewFileLoader(cfg.Catalog.SnapshotDir, pkgLogger)
	}
	snapshot, err := loader.Load(context.Background())
	if err != nil {
		log.Fatalf("[FATAL] Failed to load catalog snapshot: %v", err)
	}

	// 5. Pipeline components
	history := prefs.NewHistory(rdb, pkgLogger)
	encoder := search.NewQueryEncoder(embeddingProvider, snapshot.CombinedIndex.Dim(), pkgLogger)
	retriever := search.NewRetriever(snapshot.CombinedIndex, snapshot.TextIndex)
	blender := search.NewBlendingReranker(snapshot.BM25, cfg.Search.LambdaHybrid, cfg.Search.LambdaText)

	orchestrator := pipeline.NewOrchestrator(pipeline.Deps{
		Snapshot:   snapshot,
		Encoder:    encoder,
		Retriever:  retriever,
		Blender:    blender,
		Reranker:   reranker,
		Classifier: intent.NewClassifier(visionProvider, pkgLogger),
		Describer:  intent.NewDescriber(visionProvider, pkgLogger),
		Decomposer: query.NewDecomposer(llmProvider, pkgLogger),
		Merger:     query.NewMerger(llmProvider, pkgLogger),
		Fixed:      fixedfilter.New(llmProvider, pkgLogger),
		Numeric: specfilter.NewEngine(
			specfilter.NewPredicateParser(llmProvider, pkgLogger),
			specfilter.NewAttributeExtractor(llmProvider, cfg.Search.ExtractBatch, pkgLogger),
			pkgLogger,
		),
		Tagger:     tags.NewExtractor(llmProvider, pkgLogger),
		PrefQuery:  prefs.NewGenerator(llmProvider, history, pkgLogger),
		Logger:     pkgLogger,
		RetrieveK:  cfg.Search.RetrieveK,
		RerankK:    cfg.Search.RerankK,
		ImgWeight:  cfg.Search.ImgWeight,
		TextWeight: cfg.Search.TextWeight,
	})

	// 6. Services
	sessionRepo := memory.NewSessionRepository()
	publisherService := service.NewPublisherService(cfg.Keys.TurnTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.TurnTopic, history)

	searchService := service.NewSearchService(
		sessionRepo,
		orchestrator,
		snapshot,
		mapper.NewCatalogMapper(),
		publisherService,
		natsPub,
		sysLogger,
	)

	// 7. Controllers
	return &Container{
		SearchController: controller.NewSearchController(searchService),
		ConsumerService:  consumerService,
		Orchestrator:     orchestrator,
		Snapshot:         snapshot,
		SessionRepo:      sessionRepo,
	}
}
