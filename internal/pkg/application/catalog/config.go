package catalog

import (
	"io"

	yaml "gopkg.in/yaml.v2"
)

const DefaultBaseURL string = "https://swapi.dev/api"

type Config struct {
	BaseURL               string            `yaml:"baseURL"`
	Resources             map[string]string `yaml:"resources"`
	CacheTTLSeconds       int               `yaml:"cacheTTLSeconds"`
	RequestTimeoutSeconds int               `yaml:"requestTimeoutSeconds"`
	MaxConcurrentFetches  int               `yaml:"maxConcurrentFetches"`
	Debug                 bool              `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:               DefaultBaseURL,
		CacheTTLSeconds:       300,
		RequestTimeoutSeconds: 5,
	}
}

// resourcePaths returns the path segment for every kind, falling back to the
// kind name when none is configured.
func (cfg Config) resourcePaths() map[string]string {
	paths := make(map[string]string, len(Relations))
	for kind := range Relations {
		paths[kind] = kind
		if p, ok := cfg.Resources[kind]; ok && p != "" {
			paths[kind] = p
		}
	}
	return paths
}

// LoadConfiguration reads a yaml document on top of the supplied defaults.
func LoadConfiguration(data io.Reader, defaults Config) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := defaults
	err = yaml.Unmarshal(buf, &cfg)

	return &cfg, err
}
