package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campsite/booking-service/booking/config"
	"github.com/campsite/booking-service/booking/internal/handler"
	"github.com/campsite/booking-service/booking/internal/repository"
	"github.com/campsite/booking-service/booking/internal/server"
	"github.com/campsite/booking-service/booking/internal/service"
	"github.com/campsite/booking-service/booking/migrations"
	"github.com/campsite/booking-service/pkg/kafka"
	"github.com/campsite/booking-service/pkg/logger"
	"github.com/campsite/booking-service/pkg/postgres"

	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "booking")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	lockTimeout, err := repository.NewLockTimeout("pgx")
	if err != nil {
		log.Fatal("lock timeout", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, lockTimeout, repository.Config{
		SelectTimeout:          cfg.Booking.SelectLockTimeout,
		SelectForUpdateTimeout: cfg.Booking.SelectForUpdateLockTimeout,
	}, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	svc := service.NewService(repo, service.Config{
		MaxStayDays:         cfg.Booking.MaxStayDays,
		WindowMonths:        cfg.Booking.WindowMonths,
		CreateRetryAttempts: cfg.Booking.CreateRetryAttempts,
		UpdateRetryAttempts: cfg.Booking.UpdateRetryAttempts,
		RetryInitialDelay:   cfg.Booking.RetryInitialDelay,
		RetryMaxDelay:       cfg.Booking.RetryMaxDelay,
	}, log)

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}

	h := handler.New(svc, producer, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	if err = producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
