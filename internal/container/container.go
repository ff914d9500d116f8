package container

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"dynamic/catalogs/internal/client"
	"dynamic/catalogs/internal/config"
	"dynamic/catalogs/internal/metrics"
	"dynamic/catalogs/internal/server"
	"dynamic/catalogs/internal/service"

	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// Container holds all initialized components
type Container struct {
	Config      *config.Config
	Environment *config.Environment
	Metrics     *metrics.Metrics
	Client      client.TraktClient
	Service     *service.Service
	Server      *server.Server
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	level, err := log.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)

	container := &Container{
		Config:      cfg,
		Environment: &config.Environment{},
		Metrics:     metrics.New(),
	}

	if err := container.Environment.Set(cfg.Trakt); err != nil {
		return nil, fmt.Errorf("failed to set environment: %w", err)
	}
	log.Info("✅ Trakt credentials loaded")

	container.Client = client.NewTraktClient(cfg.Trakt, container.Environment, container.Metrics)

	svc, err := service.NewService(container.Client, container.Metrics, cfg.Catalogs)
	if err != nil {
		return nil, err
	}
	container.Service = svc

	container.Server = server.New(cfg.Server, svc, container.Metrics)

	return container, nil
}

// Run serves HTTP until ctx is cancelled, then shuts the server down gracefully
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.Server.Start()
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		return c.Server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if err := c.Client.Close(); err != nil {
		return fmt.Errorf("failed to close trakt client: %w", err)
	}

	log.Info("Container shut down successfully")
	return nil
}
