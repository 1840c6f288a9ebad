package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/scholarship-service/internal/api/http"
	"github.com/spec-kit/scholarship-service/internal/api/http/handlers"
	"github.com/spec-kit/scholarship-service/internal/auth"
	"github.com/spec-kit/scholarship-service/internal/cache"
	"github.com/spec-kit/scholarship-service/internal/config"
	"github.com/spec-kit/scholarship-service/internal/events"
	"github.com/spec-kit/scholarship-service/internal/observability"
	"github.com/spec-kit/scholarship-service/internal/payments"
	"github.com/spec-kit/scholarship-service/internal/persistence"
	"github.com/spec-kit/scholarship-service/internal/repository"
	"github.com/spec-kit/scholarship-service/internal/repository/memory"
	"github.com/spec-kit/scholarship-service/internal/service"
	"github.com/spec-kit/scholarship-service/internal/worker"
)

type repositories struct {
	users        repository.UserRepository
	scholarships repository.ScholarshipRepository
	orders       repository.OrderRepository
	checkouts    repository.CheckoutRepository
	payments     repository.PaymentRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App, cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}
	repos := buildRepositories(pg)

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	var catalogCache service.CatalogCache
	if redis.Client != nil {
		catalogCache = cache.NewCatalogCache(redis.Client, cfg.Redis.CatalogTTL())
	}

	dispatcher := events.NewInMemoryDispatcher()
	notifications := service.NewNotificationService(dispatcher, logger)

	var publisher worker.Publisher
	if cfg.Broker.URL != "" {
		rabbit, err := worker.NewRabbitMQPublisher(ctx, cfg.Broker, logger)
		if err != nil {
			logger.Error("event forwarding disabled", zap.Error(err))
		} else {
			defer rabbit.Close()
			publisher = rabbit
		}
	}
	worker.StartEventWorkers(dispatcher, notifications, publisher, logger)

	if cfg.Payment.SecretKey == "" {
		logger.Warn("PAYMENT_SECRET_KEY not set; payment intents will fail")
	}
	gateway := payments.NewStripeGateway(cfg.Payment)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	sessionMiddleware := auth.NewSessionMiddleware(tokens, cfg.Auth.CookieName)

	userService := service.NewUserService(repos.users, dispatcher, logger)
	scholarshipService := service.NewScholarshipService(service.ScholarshipDependencies{
		ScholarshipRepo: repos.scholarships,
		Cache:           catalogCache,
		Dispatcher:      dispatcher,
		Logger:          logger,
	})
	orderService := service.NewOrderService(service.OrderDependencies{
		OrderRepo:       repos.orders,
		ScholarshipRepo: repos.scholarships,
		Dispatcher:      dispatcher,
		Logger:          logger,
	})
	paymentService := service.NewPaymentService(repos.payments, gateway, dispatcher, logger)
	checkoutService := service.NewCheckoutService(repos.checkouts)
	sessionService := service.NewSessionService(tokens)

	metrics := observability.NewMetrics()
	app := httptransport.NewApp(cfg, logger, metrics, httptransport.RouteConfig{
		Health:            handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Users:             handlers.NewUsersHandler(userService),
		Scholarships:      handlers.NewScholarshipsHandler(scholarshipService),
		Orders:            handlers.NewOrdersHandler(orderService),
		Payments:          handlers.NewPaymentsHandler(paymentService),
		Checkout:          handlers.NewCheckoutHandler(checkoutService),
		Session:           handlers.NewSessionHandler(sessionService, handlers.NewCookiePolicy(cfg.Auth.CookieName, cfg.App.Production())),
		SessionMiddleware: sessionMiddleware,
		UserLookup:        repos.users,
	})

	go func() {
		logger.Info("scholarship server listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown incomplete", zap.Error(err))
	}
}

func buildRepositories(pg *persistence.Postgres) repositories {
	if !pg.Enabled() {
		store := memory.NewStore()
		return repositories{
			users:        store.Users,
			scholarships: store.Scholarships,
			orders:       store.Orders,
			checkouts:    store.Checkouts,
			payments:     store.Payments,
		}
	}
	pool := pg.PoolHandle()
	return repositories{
		users:        repository.NewUserRepository(pool),
		scholarships: repository.NewScholarshipRepository(pool),
		orders:       repository.NewOrderRepository(pool),
		checkouts:    repository.NewCheckoutRepository(pool),
		payments:     repository.NewPaymentRepository(pool),
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
