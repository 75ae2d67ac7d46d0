/*
Package main is the entry point for the console gateway.

It loads configuration, initialises logging, connects the session backend
and the audit stores, starts the decision audit workers, serves HTTP, and
shuts down gracefully on SIGINT or SIGTERM.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/smsportal/console-gateway/internal/api"
	"github.com/smsportal/console-gateway/internal/api/handler"
	"github.com/smsportal/console-gateway/internal/core/domain"
	"github.com/smsportal/console-gateway/internal/core/ports"
	"github.com/smsportal/console-gateway/internal/core/service"
	mongodb "github.com/smsportal/console-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/smsportal/console-gateway/internal/infrastructure/db/redis"
	"github.com/smsportal/console-gateway/internal/infrastructure/queue"
	"github.com/smsportal/console-gateway/internal/infrastructure/session"
	"github.com/smsportal/console-gateway/internal/pkg/config"
	"github.com/smsportal/console-gateway/internal/pkg/transport"
	"github.com/smsportal/console-gateway/pkg/logger"
)

const serviceName = "console-gateway"

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})
	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("session_backend", cfg.Session.Backend).
		Strs("exempt_prefixes", cfg.Gate.ExemptPrefixes).
		Bool("jwt_validation", cfg.JWTSecret != "").
		Msg("configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("console gateway stopped")
	}
	log.Info().Msg("console gateway stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.Get()

	var (
		stores    ports.SessionStoreFactory
		recorder  service.DecisionRecorder
		readiness []handler.ReadinessCheck
	)

	if cfg.Session.Backend == session.BackendMemory {
		log.Warn().Msg("memory session backend: sessions are lost on restart and decisions are not audited")
		stores = session.NewMemoryBackend()
	} else {
		mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  serviceName,
		})
		if err != nil {
			return err
		}
		defer disconnectMongo(mongoClient, log)

		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:       cfg.Redis.Addr,
			DB:         cfg.Redis.DB,
			ClientName: serviceName,
		})
		if err != nil {
			return err
		}
		defer closeRedis(rdb, log)

		stores, err = persistentStores(ctx, cfg, db, rdb)
		if err != nil {
			return err
		}

		audit := service.NewAuditService(
			mongodb.NewDecisionRepository(db),
			redisdb.NewDecisionDedup(rdb, cfg.Audit.DedupWindow),
			logger.For("audit"),
		)
		dispatcher := queue.NewDispatcher(cfg.Audit.Workers, audit, logger.For("audit"))
		dispatcher.Start(ctx)
		recorder = dispatcher

		readiness = append(readiness, handler.MongoCheck(db), handler.RedisCheck(rdb))
	}

	if cfg.UpstreamBaseURL != "" {
		readiness = append(readiness, handler.UpstreamCheck(
			transport.NewClient(nil),
			strings.TrimRight(cfg.UpstreamBaseURL, "/"),
		))
	}

	provider := service.NewSessionAuthProvider(stores, cfg.JWTSecret, logger.For("auth"))
	authz := service.NewAuthorizationService(
		provider,
		domain.RoutePolicy{ExemptPrefixes: cfg.Gate.ExemptPrefixes},
		recorder,
		logger.For("gate"),
	)

	router := api.NewRouter(api.Deps{
		Stores:       stores,
		Authz:        authz,
		Readiness:    readiness,
		Log:          logger.For("http"),
		CookieName:   cfg.Session.CookieName,
		SecureCookie: !cfg.IsDevelopment(),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("console gateway listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

func persistentStores(ctx context.Context, cfg *config.Config, db *mongodriver.Database, rdb *redis.Client) (ports.SessionStoreFactory, error) {
	if cfg.Session.Backend == session.BackendMongo {
		backend := session.NewMongoBackend(db, cfg.Session.TTL)
		if err := backend.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		return backend, nil
	}
	return session.NewRedisBackend(rdb, cfg.Session.TTL), nil
}

func disconnectMongo(client *mongodriver.Client, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Warn().Err(err).Msg("mongo disconnect failed")
	}
}

func closeRedis(rdb *redis.Client, log zerolog.Logger) {
	if err := rdb.Close(); err != nil {
		log.Warn().Err(err).Msg("redis close failed")
	}
}
