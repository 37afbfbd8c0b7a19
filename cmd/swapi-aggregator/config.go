package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/swapi-aggregator/internal/pkg/application/catalog"
)

type FlagType int
type FlagMap map[FlagType]string

const (
	listenAddress FlagType = iota
	servicePort

	configPath

	swapiBaseURL
	cacheTTL
	requestTimeout
	maxConcurrentFetches
	debugMode
)

func DefaultFlags() FlagMap {
	return FlagMap{
		listenAddress: "",
		servicePort:   "8080",
	}
}

var envVariables = map[FlagType]string{
	servicePort:          "SERVICE_PORT",
	configPath:           "CATALOG_CONFIG_PATH",
	swapiBaseURL:         "SWAPI_BASE_URL",
	cacheTTL:             "CACHE_TTL_SECONDS",
	requestTimeout:       "REQUEST_TIMEOUT_SECONDS",
	maxConcurrentFetches: "MAX_CONCURRENT_FETCHES",
	debugMode:            "DEBUG",
}

// parseExternalConfig applies environment variables and then command line
// flags on top of the supplied defaults.
func parseExternalConfig(ctx context.Context, flags FlagMap) FlagMap {
	for f, key := range envVariables {
		flags[f] = env.GetVariableOrDefault(ctx, key, flags[f])
	}

	apply := func(f FlagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	flag.Func("config", "path to a catalog configuration file", apply(configPath))
	flag.Func("port", "the port to listen for connections on", apply(servicePort))
	flag.Func("swapi", "base url of the upstream catalog", apply(swapiBaseURL))
	flag.Parse()

	return flags
}

// newCatalogConfig loads the optional configuration file and lets any
// explicitly set flags override its values.
func newCatalogConfig(flags FlagMap) (*catalog.Config, error) {
	defaults := catalog.DefaultConfig()
	cfg := &defaults

	if path := flags[configPath]; path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open configuration file %s: %w", path, err)
		}
		defer f.Close()

		cfg, err = catalog.LoadConfiguration(f, defaults)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration from %s: %w", path, err)
		}
	}

	if baseURL := flags[swapiBaseURL]; baseURL != "" {
		cfg.BaseURL = baseURL
	}

	ints := map[FlagType]*int{
		cacheTTL:             &cfg.CacheTTLSeconds,
		requestTimeout:       &cfg.RequestTimeoutSeconds,
		maxConcurrentFetches: &cfg.MaxConcurrentFetches,
	}

	for f, dst := range ints {
		if flags[f] == "" {
			continue
		}

		n, err := strconv.Atoi(flags[f])
		if err != nil {
			return nil, fmt.Errorf("invalid value %q for %s: %w", flags[f], envVariables[f], err)
		}
		*dst = n
	}

	if flags[debugMode] != "" {
		enabled, err := strconv.ParseBool(flags[debugMode])
		if err != nil {
			return nil, fmt.Errorf("invalid value %q for %s: %w", flags[debugMode], envVariables[debugMode], err)
		}
		cfg.Debug = enabled
	}

	return cfg, nil
}
