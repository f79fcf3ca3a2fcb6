package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/config"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/handler"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/repository"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/server"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/service"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/migrations"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/cache"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/kafka"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/logger"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/postgres"
)

const cachePrefix = "bookstore:"

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "bookstore")
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	opts := []service.Option{service.WithPolicy(cfg.Policy)}

	redisClient, err := cache.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
		opts = append(opts, service.WithCache(cache.NewRedis(redisClient, cfg.Redis.TTL, cachePrefix)))
	}

	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close()
		opts = append(opts, service.WithPublisher(service.NewKafkaPublisher(producer, log)))
	}

	svc := service.NewService(repo, log, opts...)
	if err = svc.EnsureAdmin(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal("bootstrap admin", zap.Error(err))
	}

	if cfg.Kafka.Enabled() {
		group, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		defer group.Close()
		go kafka.Consume(ctx, group, handler.NewConsumer(svc.RecordEvent, log), log, kafka.RentalEventsTopic)
	}

	h := handler.New(svc, log)
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
	stop()

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
