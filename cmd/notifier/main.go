package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	gamehandler "github.com/gamenightlabs/notifier/internal/api/handlers/game"
	schedhandler "github.com/gamenightlabs/notifier/internal/api/handlers/schedule"
	"github.com/gamenightlabs/notifier/internal/api/router"
	"github.com/gamenightlabs/notifier/internal/api/server"
	"github.com/gamenightlabs/notifier/internal/config"
	notifmsg "github.com/gamenightlabs/notifier/internal/rabbitmq/handlers/notification"
	"github.com/gamenightlabs/notifier/internal/rabbitmq/queue"
	gamerepo "github.com/gamenightlabs/notifier/internal/repository/game"
	schedrepo "github.com/gamenightlabs/notifier/internal/repository/schedule"
	gamesvc "github.com/gamenightlabs/notifier/internal/service/game"
	notifsvc "github.com/gamenightlabs/notifier/internal/service/notification"
	schedsvc "github.com/gamenightlabs/notifier/internal/service/schedule"
	"github.com/gamenightlabs/notifier/internal/worker"
	"github.com/gamenightlabs/notifier/pkg/discord"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewNotificationQueue(ch, cfg)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create notification queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))

	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	schedules := schedrepo.NewRepository(db)
	games := gamerepo.NewRepository(db)

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	discordClient := discord.NewClient(cfg.Discord.Token)

	scheduleService := schedsvc.NewService(schedules, rdb)
	gameService := gamesvc.NewService(games, scheduleService)
	notificationService := notifsvc.NewService(games, discordClient)

	messageHandler := notifmsg.NewHandler(notificationService)

	scanner := worker.NewScanner(
		schedules, q, scheduleService,
		cfg.Scheduler.PollInterval,
		cfg.Scheduler.BatchSize,
		cfg.Scheduler.Retention,
		cfg.Retry,
	)
	notifier := worker.NewNotifier(q, messageHandler)

	go scanner.Run(ctx)
	go notifier.Run(ctx, cfg.Retry, cfg.Workers.Count)

	gameHandler := gamehandler.NewHandler(gameService, val, cfg)
	scheduleHandler := schedhandler.NewHandler(scheduleService, cfg)

	r := router.New(gameHandler, scheduleHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
