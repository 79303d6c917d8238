// @title        Shift Scheduler API
// @version      1.0
// @description  Shift requests, approvals and hours for security guards.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/winner-security/shift-scheduler/internal/api"
	"github.com/winner-security/shift-scheduler/internal/core/ports"
	"github.com/winner-security/shift-scheduler/internal/core/service"
	mongodb "github.com/winner-security/shift-scheduler/internal/infrastructure/db/mongo"
	"github.com/winner-security/shift-scheduler/internal/infrastructure/db/postgres"
	redisdb "github.com/winner-security/shift-scheduler/internal/infrastructure/db/redis"
	"github.com/winner-security/shift-scheduler/internal/pkg/config"
	"github.com/winner-security/shift-scheduler/pkg/logger"
)

// stores groups the repositories of whichever driver is configured.
type stores struct {
	identities ports.IdentityRepository
	profiles   ports.ProfileRepository
	shifts     ports.ShiftRepository
	pinger     ports.Pinger
	close      func(context.Context)
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "shift-scheduler",
	})

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open store")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}

	authService := service.NewAuthService(
		st.identities,
		st.profiles,
		redisdb.NewSessionStore(rdb),
		service.AuthConfig{
			JWTSecret:   cfg.JWTSecret,
			SessionTTL:  cfg.SessionTTL,
			EmailDomain: cfg.EmailDomain,
		},
		log.With().Str("component", "auth").Logger(),
	)
	shiftService := service.NewShiftService(st.shifts, st.profiles, log.With().Str("component", "shifts").Logger())
	approvalService := service.NewApprovalService(st.shifts, st.profiles, log.With().Str("component", "approvals").Logger())

	e := api.NewRouter(api.Dependencies{
		AuthService:     authService,
		ShiftService:    shiftService,
		ApprovalService: approvalService,
		Stores: map[string]ports.Pinger{
			cfg.StoreDriver: st.pinger,
			"redis":         redisdb.NewPinger(rdb),
		},
		SecureCookie: cfg.SecureCookie || cfg.IsProduction(),
		Log:          log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("driver", cfg.StoreDriver).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(log, srv, func(ctx context.Context) {
		st.close(ctx)
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close error")
		}
	})
}

func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN, MaxConns: cfg.Postgres.MaxConns})
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return &stores{
			identities: postgres.NewIdentityRepository(db),
			profiles:   postgres.NewProfileRepository(db),
			shifts:     postgres.NewShiftRepository(db),
			pinger:     db,
			close:      func(context.Context) { db.Close() },
		}, nil
	default:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &stores{
			identities: mongodb.NewIdentityRepository(db),
			profiles:   mongodb.NewProfileRepository(db),
			shifts:     mongodb.NewShiftRepository(db),
			pinger:     mongodb.NewPinger(db),
			close: func(ctx context.Context) {
				if err := client.Disconnect(ctx); err != nil {
					log.Error().Err(err).Msg("mongo disconnect error")
				}
			},
		}, nil
	}
}

func waitForShutdown(log zerolog.Logger, srv *http.Server, closeStores func(context.Context)) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	closeStores(shutdownCtx)

	log.Info().Msg("server exited cleanly")
}
