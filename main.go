package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sankaL/loku-caters-sub000/internal/config"
	"github.com/sankaL/loku-caters-sub000/internal/db"
	httpapi "github.com/sankaL/loku-caters-sub000/internal/http"
	"github.com/sankaL/loku-caters-sub000/internal/logger"
	"github.com/sankaL/loku-caters-sub000/internal/mailer"
	"github.com/sankaL/loku-caters-sub000/internal/queue"
	"github.com/sankaL/loku-caters-sub000/internal/storage"
	"github.com/sankaL/loku-caters-sub000/internal/ws"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	mailClient := mailer.NewClient(cfg.ResendAPIKey, cfg.FromEmail, cfg.ReplyToEmail, cfg.Currency, cfg.EtransferEmail)

	var queueClient *queue.Client
	if cfg.RabbitMQURL != "" {
		log.Info("rabbitmq enabled", zap.String("emailQueue", queue.EmailJobsQueue))
		qc, err := queue.New(cfg.RabbitMQURL)
		if err != nil {
			if cfg.Env == "production" {
				log.Fatal("rabbitmq connection failed", zap.Error(err))
			}
			log.Warn("rabbitmq connection failed; continuing without email worker", zap.Error(err))
			qc = nil
		}
		if qc != nil {
			if err := queue.EnsureEmailTopology(ctx, qc); err != nil {
				if cfg.Env == "production" {
					log.Fatal("rabbitmq email topology failed", zap.Error(err))
				}
				log.Warn("rabbitmq email topology failed; continuing without email worker", zap.Error(err))
				_ = qc.Close()
				qc = nil
			}
		}

		queueClient = qc
		if qc != nil {
			defer qc.Close()
		}

		if queueClient != nil {
			if cfg.RabbitMQWorkerMode == "daemon" {
				log.Info("email worker enabled", zap.String("mode", "daemon"))
				go func() {
					err := queueClient.ConsumeWithRetry(queue.EmailJobsQueue, func(ctx context.Context, body []byte) error {
						return queue.ProcessEmailJob(ctx, pool, mailClient, body)
					}, int(cfg.EmailMaxAttempts), 5*time.Second)
					if err != nil {
						log.Error("email consumer stopped", zap.Error(err))
					}
				}()
			} else {
				log.Info("email worker disabled", zap.String("mode", cfg.RabbitMQWorkerMode))
			}
		}
	} else {
		log.Info("email worker disabled (RABBITMQ_URL is empty)")
	}

	var objectStore *storage.ObjectStore
	if cfg.ObjectStoreBucket != "" {
		objectStore, err = storage.NewObjectStore(ctx, storage.Config{
			Endpoint:        cfg.ObjectStoreEndpoint,
			Region:          cfg.ObjectStoreRegion,
			AccessKeyID:     cfg.ObjectStoreAccessKeyID,
			SecretAccessKey: cfg.ObjectStoreSecretAccessKey,
			Bucket:          cfg.ObjectStoreBucket,
			PublicBaseURL:   cfg.ObjectStorePublicBaseURL,
		})
		if err != nil {
			if cfg.Env == "production" {
				log.Fatal("object store init failed", zap.Error(err))
			}
			log.Warn("object store init failed; image uploads disabled", zap.Error(err))
			objectStore = nil
		}
	} else {
		log.Info("image uploads disabled (OBJECT_STORE_BUCKET is empty)")
	}

	wsServer := ws.New(pool, log, cfg)
	apiServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(pool, log, cfg, queueClient, objectStore, wsServer),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("storefront api ready", zap.String("base", "/api"))
		log.Info("admin ws ready", zap.String("base", "/ws"))
		log.Info("service listening", zap.String("addr", cfg.HTTPAddr))
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctxShutdown); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}
}
