package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/readwell/library-service/config"
	"github.com/readwell/library-service/internal/events"
	"github.com/readwell/library-service/internal/handler"
	"github.com/readwell/library-service/internal/repository"
	"github.com/readwell/library-service/internal/server"
	"github.com/readwell/library-service/internal/service"
	"github.com/readwell/library-service/migrations"
	"github.com/readwell/library-service/pkg/kafka"
	"github.com/readwell/library-service/pkg/logger"
	"github.com/readwell/library-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	producer, err := kafka.NewSyncProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewSyncProducer", zap.Error(err))
	}
	publisher := events.NewPublisher(producer, log)

	authSvc := service.NewAuth(repo, cfg.Auth.TokenTTL, log)
	catalogSvc := service.NewCatalog(repo, repo, repo, repo, log)
	lendingSvc := service.NewLending(repo, repo, publisher, cfg.Lending.LoanPeriod(), log)
	wishlistSvc := service.NewWishlist(repo, log)
	reviewSvc := service.NewReviews(repo, log)
	requestSvc := service.NewRequests(repo, log)

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}

	h := handler.New(handler.Services{
		Auth:     authSvc,
		Catalog:  catalogSvc,
		Lending:  lendingSvc,
		Wishlist: wishlistSvc,
		Reviews:  reviewSvc,
		Requests: requestSvc,
	}, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		return srv.Run()
	})
	gg.Go(func() error {
		kafka.Consume(ctx, consumer, handler.NewConsumer(catalogSvc.ApplyLoanEvent, log), kafka.LoanEventsTopic, log)
		return nil
	})

	<-ctx.Done()
	log.Debug("Graceful shutdown")

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if err = consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	if err = producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()

	if err = gg.Wait(); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
