package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kaushals1950/DhaaraAI/internal/accounts"
	"github.com/kaushals1950/DhaaraAI/internal/articles"
	"github.com/kaushals1950/DhaaraAI/internal/auth"
	"github.com/kaushals1950/DhaaraAI/internal/cache"
	"github.com/kaushals1950/DhaaraAI/internal/cases"
	"github.com/kaushals1950/DhaaraAI/internal/chat"
	"github.com/kaushals1950/DhaaraAI/internal/communications"
	"github.com/kaushals1950/DhaaraAI/internal/config"
	"github.com/kaushals1950/DhaaraAI/internal/db"
	"github.com/kaushals1950/DhaaraAI/internal/documents"
	"github.com/kaushals1950/DhaaraAI/internal/lawyers"
	"github.com/kaushals1950/DhaaraAI/internal/middleware"
	"github.com/kaushals1950/DhaaraAI/internal/payments"
	"github.com/kaushals1950/DhaaraAI/internal/reviews"
	"github.com/kaushals1950/DhaaraAI/internal/storage"
	"github.com/kaushals1950/DhaaraAI/internal/transport"
	"github.com/kaushals1950/DhaaraAI/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		lawyersRepo  lawyers.Repository  = lawyers.NewFixtureRepository(lawyers.FixtureLawyers(), lawyers.FixtureReviews())
		articlesRepo articles.Repository = articles.NewMemoryRepository(articles.FixtureArticles())
		accountsRepo accounts.Repository = accounts.NewMemoryRepository()
	)
	if cfg.MongoURI != "" {
		client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			logger.Error("mongo connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("mongo connected", slog.String("db", cfg.MongoDB))
		defer client.Disconnect(context.Background())

		if err := db.EnsureIndexes(ctx, cols); err != nil {
			logger.Error("index creation failed", slog.String("error", err.Error()))
			os.Exit(1)
		}

		lawyersRepo = lawyers.NewMongoRepository(cols.Lawyers, cols.LawyerReviews)
		articlesRepo = articles.NewMongoRepository(cols.Articles)
		accountsRepo = accounts.NewMongoRepository(cols.Users)
	} else {
		logger.Info("mongo disabled, serving in-memory fixtures")
	}

	var cacheStore cache.Cache = cache.NewMemory()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisCache.Close()
		if cfg.RedisURL != "" {
			logger.Info("redis connected (url)")
		} else {
			logger.Info("redis connected", slog.String("addr", cfg.RedisAddr))
		}
		cacheStore = redisCache
	}
	if cfg.CacheTTLSeconds <= 0 {
		cacheStore = cache.NewNoop()
	}

	var fileStore storage.FileStore = storage.NewURLStore("")
	if cfg.MinIOEndpoint != "" {
		minioStore, err := storage.NewMinIOStore(storage.MinIOConfig{
			Endpoint:  cfg.MinIOEndpoint,
			AccessKey: cfg.MinIOAccessKey,
			SecretKey: cfg.MinIOSecretKey,
			Bucket:    cfg.MinIOBucket,
			UseSSL:    cfg.MinIOUseSSL,
		})
		if err != nil {
			logger.Error("minio setup failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := minioStore.EnsureBucket(ctx); err != nil {
			logger.Error("minio bucket check failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("minio storage enabled", slog.String("bucket", cfg.MinIOBucket))
		fileStore = minioStore
	}

	tokens := auth.NewManager(cfg.JWTSecret, cfg.AccessTTL(), "dhaara")
	if tokens == nil {
		logger.Info("jwt secret missing, login disabled")
	}

	val := validation.New()

	lawyersHandler := lawyers.NewHandler(lawyers.NewService(lawyersRepo, cacheStore, cfg.CacheTTL(), logger), val, logger)
	chatHandler := chat.NewHandler(logger)
	documentsHandler := documents.NewHandler(
		documents.NewService(documents.NewFixtureRepository(documents.FixtureTemplates(), documents.FixtureSchemas()), cacheStore, cfg.CacheTTL(), logger),
		val, logger)
	casesHandler := cases.NewHandler(cases.NewService(cases.NewFixtureRepository(cases.FixtureCases())), val, logger)
	commsRepo := communications.NewFixtureRepository(
		communications.FixtureCallSessions(),
		communications.FixtureConversations(),
		communications.FixtureMessages(cfg.Timezone),
	)
	commsHandler := communications.NewHandler(communications.NewService(commsRepo, fileStore, cfg.Timezone), val, logger, cfg.MaxUploadBytes())
	paymentsRepo := payments.NewFixtureRepository(
		payments.FixturePaymentMethods(),
		payments.FixtureTransactions(),
		payments.FixtureEscrowAccounts(),
	)
	paymentsHandler := payments.NewHandler(payments.NewService(paymentsRepo, cfg.Timezone), val, logger)
	reviewsHandler := reviews.NewHandler(reviews.NewService(reviews.NewFixtureRepository(reviews.FixtureReviews(), reviews.FixtureLawyerStats())), val, logger)
	articlesHandler := articles.NewHandler(articles.NewService(articlesRepo), val, logger)
	accountsHandler := accounts.NewHandler(accounts.NewService(accountsRepo, tokens), val, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigins))
	r.Use(chiMiddleware.Timeout(cfg.RequestTimeout()))

	chatLimiter := middleware.NewRateLimiter("chat", cfg.RateLimitChat, cfg.RateLimitWindow())
	reviewsLimiter := middleware.NewRateLimiter("reviews", cfg.RateLimitReviews, cfg.RateLimitWindow())
	uploadsLimiter := middleware.NewRateLimiter("uploads", cfg.RateLimitUploads, cfg.RateLimitWindow())
	authLimiter := middleware.NewRateLimiter("auth", cfg.RateLimitAuth, cfg.RateLimitWindow())

	registerRoutes := func(api chi.Router) {
		lawyersHandler.Routes(api)
		chatHandler.Routes(api, chatLimiter.Middleware)
		documentsHandler.Routes(api)
		casesHandler.Routes(api)
		commsHandler.Routes(api, uploadsLimiter.Middleware)
		paymentsHandler.Routes(api)
		reviewsHandler.Routes(api, reviewsLimiter.Middleware)
		articlesHandler.Routes(api)
		accountsHandler.Routes(api, authLimiter.Middleware)
	}

	r.Get("/health", health)
	r.Route("/api", registerRoutes)
	r.Route("/api/v1", registerRoutes)

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}

func health(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
