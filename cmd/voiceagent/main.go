package main

import (
	"context"
	"errors"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	reminderapi "github.com/mahbubulalom/voice-reminder/internal/api/handlers/reminder"
	"github.com/mahbubulalom/voice-reminder/internal/api/handlers/voice"
	"github.com/mahbubulalom/voice-reminder/internal/api/router"
	"github.com/mahbubulalom/voice-reminder/internal/api/server"
	"github.com/mahbubulalom/voice-reminder/internal/callflow"
	"github.com/mahbubulalom/voice-reminder/internal/config"
	"github.com/mahbubulalom/voice-reminder/internal/metrics"
	callmsg "github.com/mahbubulalom/voice-reminder/internal/rabbitmq/handlers/call"
	"github.com/mahbubulalom/voice-reminder/internal/rabbitmq/queue"
	"github.com/mahbubulalom/voice-reminder/internal/reconcile"
	reminderrepo "github.com/mahbubulalom/voice-reminder/internal/repository/reminder"
	remindersvc "github.com/mahbubulalom/voice-reminder/internal/service/reminder"
	"github.com/mahbubulalom/voice-reminder/internal/worker"
	"github.com/mahbubulalom/voice-reminder/pkg/openai"
	"github.com/mahbubulalom/voice-reminder/pkg/twilio"
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

	q, err := queue.NewCallQueue(ch, cfg)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create call queue")
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

	repo := reminderrepo.NewRepository(db)

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	twilioClient := twilio.NewClient(
		cfg.Twilio.AccountSID,
		cfg.Twilio.AuthToken,
		cfg.Twilio.FromNumber,
		cfg.Twilio.Timeout,
	)
	openaiClient := openai.NewClient(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		cfg.OpenAI.BaseURL,
		cfg.OpenAI.Timeout,
	)

	m := metrics.New()

	service := remindersvc.NewService(
		repo, q, twilioClient, openaiClient, rdb, m,
		cfg.Server.BaseURL, cfg.Reminder.LeadTime, cfg.OpenAI.Timeout,
	)
	reconciler := reconcile.NewReconciler(repo, rdb, m)
	engine := callflow.NewEngine(
		repo, service, openaiClient, reconciler,
		cfg.Server.BaseURL+"/webhooks/voice/answer",
		cfg.Twilio.StaffNumber,
		cfg.OpenAI.Timeout,
	)

	reminderHandler := reminderapi.NewHandler(service, val, cfg)
	voiceHandler := voice.NewHandler(engine, reconciler, m, cfg)
	jobHandler := callmsg.NewHandler(service, q)

	dialer := worker.NewDialer(q, jobHandler, service)

	go dialer.Run(ctx, cfg.Retry, cfg.Workers.Count)

	r := router.New(reminderHandler, voiceHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
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

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
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
