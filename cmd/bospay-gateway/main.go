package main

import (
	// Go Internal Packages
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Local Packages
	api "bospay-gateway/api"
	config "bospay-gateway/config"
	bospay "bospay-gateway/repositories/bospay"
	cache "bospay-gateway/repositories/cache"
	redis "bospay-gateway/repositories/redis"
	insights "bospay-gateway/services/insights"
	staff "bospay-gateway/services/staff"
	timeline "bospay-gateway/services/timeline"

	// External Packages
	"github.com/alecthomas/kingpin/v2"
	"github.com/gin-gonic/gin"
	_ "github.com/jsternberg/zap-logfmt"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"go.uber.org/zap"
)

// LoadSecrets loads the secret variables and overrides the config
func LoadSecrets(k config.Config) config.Config {
	backendURL := os.Getenv("BACKEND_URL")
	if backendURL != "" {
		k.Backend.BaseURL = backendURL
	}

	redisURI := os.Getenv("REDIS_URI")
	if redisURI != "" {
		k.Redis.URI = redisURI
	}

	redisPassword := os.Getenv("REDIS_PASSWORD")
	if redisPassword != "" {
		k.Redis.Password = redisPassword
	}

	isProdMode := os.Getenv("IS_PROD_MODE")
	if isProdMode != "" {
		k.IsProdMode = isProdMode == "true"
	}
	return k
}

// LoadConfig loads the default configuration and overrides it with the config file
// specified by the path defined in the config flag
func LoadConfig() *koanf.Koanf {
	configPathMsg := "Path to the application config file"
	configPath := kingpin.Flag("config", configPathMsg).Short('c').Default("config.yml").String()

	kingpin.Parse()
	k := koanf.New(".")
	_ = k.Load(rawbytes.Provider(config.DefaultConfig), yaml.Parser())
	if *configPath != "" {
		_ = k.Load(file.Provider(*configPath), yaml.Parser())
	}
	return k
}

func main() {
	k := LoadConfig()
	appKonf := config.Config{}

	// Unmarshalling config into struct
	err := k.Unmarshal("", &appKonf)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Update and validate config before starting the server
	appKonf = LoadSecrets(appKonf)
	if err = appKonf.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if !appKonf.IsProdMode {
		k.Print()
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "logfmt"
	_ = cfg.Level.UnmarshalText([]byte(k.String("logger.level")))
	cfg.InitialFields = make(map[string]any)
	cfg.InitialFields["host"], _ = os.Hostname()
	cfg.InitialFields["service"] = appKonf.Application
	cfg.OutputPaths = []string{"stdout"}
	logger, _ := cfg.Build()
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Response cache backing
	var store cache.Store
	switch appKonf.Cache.Mode {
	case "memory":
		memory := cache.NewMemory()
		defer memory.Stop()
		store = memory
	case "redis":
		redisClient, err := redis.Connect(ctx, appKonf.Redis.URI, appKonf.Redis.Password)
		if err != nil {
			logger.Fatal("cannot create redis client", zap.Error(err))
		}
		store = redis.NewStore(redisClient, logger)
	case "off":
		store = nil
	}

	rawClient := bospay.NewClient(appKonf.Backend.BaseURL,
		time.Duration(appKonf.Backend.TimeoutSeconds)*time.Second, logger)
	client := bospay.NewCachingClient(rawClient, bospay.CacheConfig{
		Store:           store,
		OrgTTL:          appKonf.Cache.OrgTTL(),
		ListTTL:         appKonf.Cache.ListTTL(),
		MaxAttempts:     appKonf.Retry.MaxAttempts,
		InitialInterval: appKonf.Retry.InitialInterval(),
	}, logger)

	timelineSvc := timeline.NewService(logger, client)
	staffSvc := staff.NewService(logger, client)
	insightsSvc := insights.NewService(logger, client)

	if appKonf.IsProdMode {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := api.NewHandler(logger, timelineSvc, staffSvc, insightsSvc, client)
	router := api.NewRouter(logger, handler)

	server := &http.Server{Addr: appKonf.Server.Addr, Handler: router}
	go func() {
		logger.Info("gateway listening", zap.String("addr", appKonf.Server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("cannot serve http", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
