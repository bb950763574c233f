package bootstrap

import (
	"context"
	"log"

	"roadmap-voting-be/internal/config"
	"roadmap-voting-be/internal/controller"
	"roadmap-voting-be/internal/pkg/logger"
	"roadmap-voting-be/internal/pkg/mailer"
	"roadmap-voting-be/internal/repository/contract"
	"roadmap-voting-be/internal/repository/implementation"
	"roadmap-voting-be/internal/repository/memory"
	"roadmap-voting-be/internal/service"
	pktNats "roadmap-voting-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	RoadmapController controller.IRoadmapController
	AdminController   controller.IAdminController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

// NewContainer wires every dependency explicitly. The store and cache are
// injected, never reached through globals, so tests can substitute
// in-memory implementations. db may be nil; the service then runs on the
// in-memory store.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// KV: redis when configured, in-process cache otherwise.
	var kv contract.KVStore
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		kv = implementation.NewRedisKVStore(rdb)
	} else {
		log.Println("[WARN] REDIS_URL not set, using in-memory cache")
		kv = memory.NewKVStore()
	}

	// Store: postgres when a DSN is configured, in-memory otherwise.
	var store contract.FeatureStore
	var auditLog contract.AdminLogRepository
	if db != nil {
		store = implementation.NewFeatureStore(db)
		auditLog = implementation.NewAdminLogRepository(db)
	} else {
		log.Println("[WARN] No database configured, using in-memory feature store")
		store = memory.NewFeatureStore()
		auditLog = memory.NewAdminLogRepository()
	}

	// NATS (best effort, service nil-checks the publisher)
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		pub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			natsPub = pub
		}
	}

	// Internal event bus for submission alerts
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	publisherService := service.NewPublisherService(cfg.App.SubmitAlertTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.SubmitAlertTopic,
		emailService,
		cfg.Admin.AlertEmail,
		sysLogger,
	)

	rateLimiter := service.NewRateLimiter(kv, sysLogger)
	listingCache := service.NewListingCache(kv, sysLogger)

	roadmapService := service.NewRoadmapService(
		store,
		rateLimiter,
		listingCache,
		publisherService,
		natsPub,
		sysLogger,
	)
	adminService := service.NewAdminService(
		store,
		auditLog,
		listingCache,
		natsPub,
		sysLogger,
		cfg,
	)

	return &Container{
		RoadmapController: controller.NewRoadmapController(roadmapService),
		AdminController:   controller.NewAdminController(adminService),
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
