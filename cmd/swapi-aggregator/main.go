package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/swapi-aggregator/internal/pkg/application/catalog"
	"github.com/diwise/swapi-aggregator/internal/pkg/infrastructure/cache"
	"github.com/diwise/swapi-aggregator/internal/pkg/infrastructure/router"
	"github.com/diwise/swapi-aggregator/internal/pkg/presentation/api/resources"
	"github.com/diwise/swapi-aggregator/pkg/swapi/client"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName string = "swapi-aggregator"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, logger, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	flags := parseExternalConfig(ctx, DefaultFlags())

	cfg, err := newCatalogConfig(flags)
	if err != nil {
		logger.Error("failed to load configuration", "err", err.Error())
		os.Exit(1)
	}

	r, err := initialize(ctx, cfg)
	if err != nil {
		logger.Error("failed to initialize service", "err", err.Error())
		os.Exit(1)
	}

	logger.Info("starting to listen for connections", "port", flags[servicePort], "upstream", cfg.BaseURL)

	err = http.ListenAndServe(flags[listenAddress]+":"+flags[servicePort], r)
	if err != nil {
		logger.Error("failed to listen for connections", "err", err.Error())
		os.Exit(1)
	}
}

func initialize(ctx context.Context, cfg *catalog.Config) (*chi.Mux, error) {
	fetcher := client.NewFetcher(
		cache.New(time.Duration(cfg.CacheTTLSeconds)*time.Second),
		client.Timeout(time.Duration(cfg.RequestTimeoutSeconds)*time.Second),
		client.Debug(cfg.Debug),
	)

	app, err := catalog.New(*cfg, fetcher)
	if err != nil {
		return nil, err
	}

	r := router.New(serviceName)
	resources.RegisterHandlers(ctx, r, app)
	r.Handle("/metrics", promhttp.Handler())

	return r, nil
}
