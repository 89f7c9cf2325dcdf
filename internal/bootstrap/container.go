package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/codewave/webhost/internal/config"
	"github.com/codewave/webhost/internal/infra/blob"
	"github.com/codewave/webhost/internal/infra/cache"
	"github.com/codewave/webhost/internal/infra/db"
	"github.com/codewave/webhost/internal/infra/httpclient"
	"github.com/codewave/webhost/internal/infra/logger"
	"github.com/codewave/webhost/internal/infra/queue"
	"github.com/codewave/webhost/internal/modules/handler"
	"github.com/codewave/webhost/internal/modules/repo"
	"github.com/codewave/webhost/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB, only resolved for the postgres backend
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			if err := d.AutoMigrate(&repo.ProjectRow{}); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		return d, nil
	})

	// Redis, only resolved for the redis backend
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		rdb := cache.New(cfg)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return rdb, nil
	})

	// RabbitMQ Connection
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return amqp.Dial(cfg.RabbitMQ.URL)
	})

	// events are off unless a broker is configured
	do.Provide(inj, func(i *do.Injector) (service.EventPublisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.RabbitMQ.URL == "" {
			return nil, nil
		}
		conn, err := do.Invoke[*amqp.Connection](i)
		if err != nil {
			return nil, err
		}
		// the publisher owns conn from here on and closes it with its channel
		pub, err := queue.NewPublisher(conn, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.Queue, do.MustInvoke[*zap.Logger](i))
		if err != nil {
			_ = conn.Close()
			return nil, err
		}
		return pub, nil
	})

	// S3 mirror is off unless a bucket is configured
	do.Provide(inj, func(i *do.Injector) (service.SiteMirror, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.S3.Bucket == "" {
			return nil, nil
		}
		return blob.NewS3(context.Background(), cfg)
	})

	// Repo
	do.Provide(inj, newProjectRepo)
	do.Provide(inj, func(i *do.Injector) (repo.ContentRepo, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return repo.NewContentRepo(filepath.Join(cfg.Storage.Root, cfg.Storage.SitesDir)), nil
	})

	// Clients
	do.Provide(inj, func(i *do.Injector) (*httpclient.CaptchaClient, error) {
		return httpclient.NewCaptchaClient(do.MustInvoke[*config.Config](i), do.MustInvoke[*zap.Logger](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*httpclient.GitHubClient, error) {
		return httpclient.NewGitHubClient(do.MustInvoke[*config.Config](i), do.MustInvoke[*zap.Logger](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.UploadService, error) {
		return service.NewUploadService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.ContentRepo](i),
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[service.SiteMirror](i),
			do.MustInvoke[service.EventPublisher](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.ContentRepo](i),
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[service.SiteMirror](i),
			do.MustInvoke[service.EventPublisher](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.FileService, error) {
		return service.NewFileService(
			do.MustInvoke[repo.ContentRepo](i),
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[service.EventPublisher](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SiteService, error) {
		return service.NewSiteService(do.MustInvoke[repo.ContentRepo](i)), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.UploadHandler, error) {
		return handler.NewUploadHandler(
			do.MustInvoke[service.UploadService](i),
			do.MustInvoke[*config.Config](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.FileHandler, error) {
		return handler.NewFileHandler(do.MustInvoke[service.FileService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SiteHandler, error) {
		return handler.NewSiteHandler(
			do.MustInvoke[service.SiteService](i),
			do.MustInvoke[service.ProjectService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.VerifyHandler, error) {
		return handler.NewVerifyHandler(
			do.MustInvoke[*httpclient.CaptchaClient](i),
			do.MustInvoke[*httpclient.GitHubClient](i),
		), nil
	})

	return inj
}

// newProjectRepo picks the record store named by storage.backend.
func newProjectRepo(i *do.Injector) (repo.ProjectRepo, error) {
	cfg := do.MustInvoke[*config.Config](i)
	switch cfg.Storage.Backend {
	case BackendFile, "":
		return repo.NewFileProjectRepo(filepath.Join(cfg.Storage.Root, cfg.Storage.DBFile)), nil
	case BackendMemory:
		return repo.NewMemoryProjectRepo(), nil
	case BackendRedis:
		rdb, err := do.Invoke[*redis.Client](i)
		if err != nil {
			return nil, err
		}
		return repo.NewRedisProjectRepo(rdb, cfg.Storage.RedisKey), nil
	case BackendPostgres:
		gdb, err := do.Invoke[*gorm.DB](i)
		if err != nil {
			return nil, err
		}
		return repo.NewGormProjectRepo(gdb), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
