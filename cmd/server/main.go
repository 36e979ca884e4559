package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fitcall/backend/api/handler"
	"github.com/fitcall/backend/internal/config"
	"github.com/fitcall/backend/internal/infrastructure/buffer"
	"github.com/fitcall/backend/internal/infrastructure/monitor"
	pgInfra "github.com/fitcall/backend/internal/infrastructure/postgres"
	redisInfra "github.com/fitcall/backend/internal/infrastructure/redis"
	"github.com/fitcall/backend/internal/middleware"
	"github.com/fitcall/backend/internal/router"
	"github.com/fitcall/backend/internal/services"
	"github.com/fitcall/backend/internal/services/lifecycle"
	"github.com/fitcall/backend/internal/services/scheduler"
	"github.com/fitcall/backend/pkg/clock"
	"github.com/fitcall/backend/pkg/httpcontext"
	"github.com/fitcall/backend/pkg/logger"
	"github.com/fitcall/backend/repository/postgres"
	redisRepo "github.com/fitcall/backend/repository/redis"
	authUC "github.com/fitcall/backend/usecase/auth"
	callUC "github.com/fitcall/backend/usecase/call"
	challengeUC "github.com/fitcall/backend/usecase/challenge"
	friendsUC "github.com/fitcall/backend/usecase/friends"
	goalUC "github.com/fitcall/backend/usecase/goal"
	statsUC "github.com/fitcall/backend/usecase/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	bufferStore, err := buffer.Open(cfg.Buffer.Path, "buffer")
	if err != nil {
		zapLogger.Fatal("failed to open buffer store", zap.Error(err))
	}
	manager.Register("buffer", func(ctx context.Context) error {
		return bufferStore.Close()
	})

	mon := monitor.New(pool, redisClient, bufferStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	callRepo := postgres.NewCallRepository(pool)
	challengeRepo := postgres.NewChallengeRepository(pool)
	friendshipRepo := postgres.NewFriendshipRepository(pool)
	goalRepo := postgres.NewGoalRepository(pool)
	stepRepo := postgres.NewStepRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, 24*time.Hour)

	bufferProcessor := services.NewBufferProcessor(
		bufferStore,
		mon,
		callRepo,
		zapLogger,
		services.ProcessorConfig{
			Interval:   cfg.Buffer.SyncInterval,
			BatchSize:  50,
			MaxRetries: cfg.Buffer.MaxRetry,
		},
	)
	bufferProcessor.Start()
	manager.Register("buffer_processor", func(ctx context.Context) error {
		bufferProcessor.Stop(ctx)
		return nil
	})

	bufferBridge := services.NewBufferBridge(bufferProcessor)
	systemClock := clock.System()

	authUseCase := authUC.New(userRepo, sessionRepo, zapLogger)
	friendsUseCase := friendsUC.New(friendshipRepo, userRepo, zapLogger)
	challengeUseCase := challengeUC.New(challengeRepo, callRepo, userRepo, friendsUseCase, systemClock, zapLogger)
	statsUseCase := statsUC.New(callRepo, userRepo, systemClock, zapLogger)
	callUseCase := callUC.New(callRepo, bufferBridge, zapLogger)
	goalUseCase := goalUC.New(goalRepo, stepRepo, zapLogger)

	if cfg.Scheduler.Enabled {
		callScheduler := scheduler.New(callRepo, userRepo, activityRepo, systemClock, cfg.Scheduler.CallSchedule, zapLogger)
		if err := callScheduler.Start(); err != nil {
			zapLogger.Fatal("call scheduler failed to start", zap.Error(err))
		}
		manager.Register("call_scheduler", func(ctx context.Context) error {
			callScheduler.Stop(ctx)
			return nil
		})
	}

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:      apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger, time.Hour),
		Challenge: apiHandler.NewChallengeHandler(challengeUseCase, ctxAdapter, zapLogger),
		Stats:     apiHandler.NewStatsHandler(statsUseCase, ctxAdapter, zapLogger),
		Friends:   apiHandler.NewFriendsHandler(friendsUseCase, ctxAdapter, zapLogger),
		Call:      apiHandler.NewCallHandler(callUseCase, ctxAdapter, zapLogger),
		Goal:      apiHandler.NewGoalHandler(goalUseCase, ctxAdapter, zapLogger),
		Health:    apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
