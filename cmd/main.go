package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-family-wallet/docs"
	"github.com/sbilibin2017/gw-family-wallet/internal/chain"
	"github.com/sbilibin2017/gw-family-wallet/internal/facades"
	"github.com/sbilibin2017/gw-family-wallet/internal/handlers"
	"github.com/sbilibin2017/gw-family-wallet/internal/keyvault"
	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	"github.com/sbilibin2017/gw-family-wallet/internal/metrics"
	"github.com/sbilibin2017/gw-family-wallet/internal/middlewares"
	"github.com/sbilibin2017/gw-family-wallet/internal/repositories"
	"github.com/sbilibin2017/gw-family-wallet/internal/services"
	"github.com/sbilibin2017/gw-family-wallet/internal/tokens"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers         []string
	KafkaWithdrawalTopic string

	GWHost string
	GWPort string

	RPCURL            string
	RPCConfirmTimeout time.Duration

	KMSMasterKey string

	PriceAPIURL string
	PriceAPIKey string

	RateCacheTTL      time.Duration
	RateCurrencies    []string
	WithdrawLockTTL   time.Duration
	BalanceFanout     int
	TokenRegistryPath string
}

// @title gw-family-wallet API
// @version 1.0.0
// @description Custody and settlement core of the family wallet: balances, withdrawals, token rates, trades and key export
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file, then reads the configuration.
// Variables already set in the environment win over the file.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	}
	getDuration := func(key, defaultValue string) (time.Duration, error) {
		d, err := time.ParseDuration(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return d, nil
	}
	getList := func(key, defaultValue string) []string {
		var out []string
		for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Kafka config, publishing is disabled without brokers
	cfg.KafkaBrokers = getList("KAFKA_BROKERS", "")
	cfg.KafkaWithdrawalTopic = getEnv("KAFKA_WITHDRAWAL_TOPIC", "wallet.withdrawals")

	// gRPC config
	cfg.GWHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	cfg.GWPort = getEnv("GW_EXCHANGER_PORT", "50051")

	// Chain config, chain operations are disabled without an endpoint
	cfg.RPCURL = getEnv("RPC_URL", "")
	if cfg.RPCConfirmTimeout, err = getDuration("RPC_CONFIRM_TIMEOUT", chain.DefaultConfirmTimeout.String()); err != nil {
		return
	}

	cfg.KMSMasterKey = getEnv("KMS_MASTER_KEY", "")

	// Price source config
	cfg.PriceAPIURL = getEnv("PRICE_API_URL", facades.DefaultPriceAPIURL)
	cfg.PriceAPIKey = getEnv("PRICE_API_KEY", "")

	if cfg.RateCacheTTL, err = getDuration("RATE_CACHE_TTL", "10m"); err != nil {
		return
	}
	cfg.RateCurrencies = getList("RATE_CURRENCIES", "USD,EUR,RUB")
	if cfg.WithdrawLockTTL, err = getDuration("WITHDRAW_LOCK_TTL", "5m"); err != nil {
		return
	}
	if cfg.BalanceFanout, err = getInt("BALANCE_FANOUT", strconv.Itoa(services.DefaultBalanceFanout)); err != nil {
		return
	}
	cfg.TokenRegistryPath = getEnv("TOKEN_REGISTRY_PATH", "")

	// The lease must outlive the longest confirmation wait.
	if cfg.WithdrawLockTTL <= cfg.RPCConfirmTimeout {
		err = fmt.Errorf("WITHDRAW_LOCK_TTL (%s) must exceed RPC_CONFIRM_TIMEOUT (%s)", cfg.WithdrawLockTTL, cfg.RPCConfirmTimeout)
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, gRPC and RPC clients and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	if cfg.KMSMasterKey == "" {
		return errors.New("KMS_MASTER_KEY is required")
	}
	kms, err := keyvault.NewLocalKMS(cfg.KMSMasterKey)
	if err != nil {
		return fmt.Errorf("init kms: %w", err)
	}

	registry, err := tokens.Load(cfg.TokenRegistryPath)
	if err != nil {
		return err
	}

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Connect to gRPC exchanger
	grpcAddr := fmt.Sprintf("%s:%s", cfg.GWHost, cfg.GWPort)
	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to gRPC service at %s: %w", grpcAddr, err)
	}
	defer conn.Close()

	// Connect to the chain
	chainClient, err := chain.Dial(ctx, chain.Config{URL: cfg.RPCURL, ConfirmTimeout: cfg.RPCConfirmTimeout})
	if err != nil {
		return err
	}
	defer chainClient.Close()
	if !chainClient.Configured() {
		logger.Log.Warnw("RPC_URL not set, balances and withdrawals are unavailable")
	} else {
		verifyCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if mismatched := registry.Verify(verifyCtx, chainClient); len(mismatched) > 0 {
			logger.Log.Warnw("Token registry disagrees with on-chain symbols", "tokens", len(mismatched))
		}
		cancel()
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaWithdrawalTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			MaxAttempts:  3,
			WriteTimeout: 10 * time.Second,
			Logger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
				logger.Log.Debugf(msg, args...)
			}),
			ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
				logger.Log.Errorf(msg, args...)
			}),
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka writer initialized", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaWithdrawalTopic)
	} else {
		logger.Log.Warnw("KAFKA_BROKERS not set, withdrawal events are not published")
	}

	// Metrics
	promRegistry := prometheus.NewRegistry()
	metrics.Register(promRegistry)
	walletMetrics := metrics.NewWallet(promRegistry)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	familyReadRepo := repositories.NewFamilyReadRepository(db)
	tradeReadRepo := repositories.NewTradeReadRepository(db)
	rateWriteRepo := repositories.NewTokenRateWriteRepository(db)
	rateReadRepo := repositories.NewTokenRateReadRepository(db)
	rateCacheRepo := repositories.NewTokenRateCacheRepository(rdb, cfg.RateCacheTTL)
	withdrawLockRepo := repositories.NewWithdrawLockRepository(rdb, cfg.WithdrawLockTTL)

	// Initialize facades
	exchangeFacade := facades.NewExchangeRatesGRPCFacade(pb.NewExchangeServiceClient(conn))
	priceFacade := facades.NewTokenPriceHTTPFacade(&http.Client{Timeout: 15 * time.Second}, cfg.PriceAPIURL, cfg.PriceAPIKey)

	// Initialize services
	vault := keyvault.NewVault(kms)
	balanceService := services.NewBalanceService(chainClient, cfg.BalanceFanout, walletMetrics)
	withdrawService := services.NewWithdrawService(
		userReadRepo, familyReadRepo, vault, chainClient, registry, kafkaWriter, walletMetrics,
	)
	serializedWithdraw := services.NewSerializedWithdrawService(userReadRepo, withdrawLockRepo, withdrawService)
	ingestionService := services.NewRateIngestionService(
		registry, priceFacade, exchangeFacade, rateWriteRepo, rateCacheRepo, cfg.RateCurrencies, walletMetrics,
	)
	rateQueryService := services.NewRateQueryService(rateCacheRepo, rateReadRepo)
	tradeService := services.NewTradeService(userReadRepo, tradeReadRepo)
	keyExportService := services.NewKeyExportService(userReadRepo, userWriteRepo, vault, walletMetrics)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.MetricsMiddleware)
		handlers.RegisterWithdrawHandler(r, handlers.NewWithdrawHandler(serializedWithdraw))
		handlers.RegisterGetBalancesHandler(r, handlers.NewGetBalancesHandler(balanceService, registry))
		handlers.RegisterTokenRateHandler(r, handlers.NewTokenRateHandler(ingestionService))
		handlers.RegisterGetRateHandler(r, handlers.NewGetRateHandler(rateQueryService))
		handlers.RegisterGetTradesHandler(r, handlers.NewGetTradesHandler(tradeService))
		handlers.RegisterKeyExportHandler(r, handlers.NewKeyExportHandler(keyExportService))
	})

	handlers.RegisterHealthHandler(r, handlers.NewHealthHandler(db))
	r.Handle("/metrics", metrics.Handler(promRegistry))
	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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

	// In-flight withdrawals may be waiting on confirmations.
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.RPCConfirmTimeout+10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
