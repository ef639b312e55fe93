package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/movielog/movielog/internal/facades"
	"github.com/movielog/movielog/internal/handlers"
	"github.com/movielog/movielog/internal/jwt"
	"github.com/movielog/movielog/internal/logger"
	"github.com/movielog/movielog/internal/middlewares"
	"github.com/movielog/movielog/internal/migrations"
	"github.com/movielog/movielog/internal/repositories"
	"github.com/movielog/movielog/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title movielog API
// @version 1.0.0
// @description Movie/series catalog service with per-user watched and saved lists
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-auth-token
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		storageBackend, fileDir,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, cacheExpSecond,
		kafkaAddr, kafkaTopic,
		omdbAPIKey, omdbURL, omdbTimeoutSecond,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		storageBackend, fileDir,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, cacheExpSecond,
		kafkaAddr, kafkaTopic,
		omdbAPIKey, omdbURL, omdbTimeoutSecond,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, storage, Redis, Kafka, upstream, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	storageBackend, fileDir string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, cacheExpSecond int,
	kafkaAddr, kafkaTopic string,
	omdbAPIKey, omdbURL string, omdbTimeoutSecond int,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Storage config
	storageBackend = getEnv("STORAGE_BACKEND", "postgres")
	fileDir = getEnv("FILE_STORAGE_DIR", "data")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if cacheExpSecond, err = strconv.Atoi(getEnv("CATALOG_CACHE_EXP_SECOND", "300")); err != nil {
		return
	}

	// Kafka config, optional: empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "list-events")

	// Upstream provider config
	omdbAPIKey = getEnv("OMDB_API_KEY", "")
	omdbURL = getEnv("OMDB_URL", "http://www.omdbapi.com/")
	if omdbTimeoutSecond, err = strconv.Atoi(getEnv("OMDB_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "360000")); err != nil {
		return
	}

	return
}

// run initializes the logger, storage backend, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	storageBackend, fileDir string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, cacheExpSecond int,
	kafkaAddr, kafkaTopic string,
	omdbAPIKey, omdbURL string, omdbTimeoutSecond int,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Select storage backend
	var (
		userReader services.UserReader
		userWriter services.UserWriter
		listReader services.ListReader
		listWriter services.ListWriter
	)

	switch storageBackend {
	case "file":
		logger.Log.Infof("Using file storage backend in %s", fileDir)
		store, err := repositories.NewFileStore(fileDir)
		if err != nil {
			logger.Log.Fatal("file store initialization error:", err)
		}
		userRepo := repositories.NewFileUserRepository(store)
		listRepo := repositories.NewFileListRepository(store)
		userReader, userWriter = userRepo, userRepo
		listReader, listWriter = listRepo, listRepo

	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			pgUser, pgPassword, pgHost, pgPort, pgDB)
		logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			logger.Log.Fatal("PostgreSQL connection error:", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(pgMaxOpenConns)
		db.SetMaxIdleConns(pgMaxIdleConns)
		if err := db.PingContext(ctx); err != nil {
			logger.Log.Fatal("PostgreSQL ping failed:", err)
		}

		if err := migrations.Up(ctx, db.DB); err != nil {
			logger.Log.Fatal("migrations failed:", err)
		}

		userReader = repositories.NewUserReadRepository(db)
		userWriter = repositories.NewUserWriteRepository(db)
		listReader = repositories.NewListReadRepository(db)
		listWriter = repositories.NewListWriteRepository(db)

	default:
		return fmt.Errorf("unknown storage backend: %s", storageBackend)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for list activity events
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer configured for %s, topic %s", kafkaAddr, kafkaTopic)
	}

	// Initialize JWT service
	jwt := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize upstream facade and cache
	omdbFacade := facades.NewOMDBFacade(omdbAPIKey, omdbURL, time.Duration(omdbTimeoutSecond)*time.Second)
	catalogCache := repositories.NewCatalogCacheRepository(rdb, time.Duration(cacheExpSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReader, userWriter, jwt)
	listService := services.NewListService(listReader, listWriter, userReader, kafkaWriter)
	catalogService := services.NewCatalogService(omdbFacade, catalogCache)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	profileHandler := handlers.NewProfileHandler(listService)
	addWatchedHandler := handlers.NewAddWatchedHandler(listService)
	removeWatchedHandler := handlers.NewRemoveWatchedHandler(listService)
	addSavedHandler := handlers.NewAddSavedHandler(listService)
	removeSavedHandler := handlers.NewRemoveSavedHandler(listService)
	searchHandler := handlers.NewSearchHandler(catalogService)
	detailHandler := handlers.NewDetailHandler(catalogService)
	popularHandler := handlers.NewPopularHandler(catalogService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(jwt)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", registerHandler)
		r.Post("/auth/login", loginHandler)
		r.Get("/movies/search/{query}", searchHandler)
		r.Get("/movies/popular", popularHandler)

		// Protected routes. Detail is token-gated while search stays public.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/movies/detail/{id}", detailHandler)
			r.Get("/user/profile", profileHandler)
			r.Post("/user/watched", addWatchedHandler)
			r.Delete("/user/watched/{content_id}", removeWatchedHandler)
			r.Post("/user/saved", addSavedHandler)
			r.Delete("/user/saved/{content_id}", removeSavedHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
