package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option adjusts Load.
type Option func(*loader)

type loader struct {
	dir string
}

// WithConfigDir reads the YAML files from dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(l *loader) { l.dir = dir }
}

// Load builds the configuration for profile. Later layers win:
//
//	built-in defaults
//	<dir>/base.yaml
//	<dir>/<profile>.yaml
//	APP_* environment variables
//
// Both YAML files must exist. An environment variable names a key with its
// dots replaced by underscores, so APP_DATABASE_CIRCUIT_BREAKER_MAX_FAILURES
// sets database.circuit_breaker.max_failures. The result is validated.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}

	l := loader{dir: defaultConfigDir}
	for _, opt := range opts {
		opt(&l)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	for _, name := range []string{"base", profile} {
		path := filepath.Join(l.dir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeys(k.Keys()),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading %s* environment: %w", envPrefix, err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return &cfg, nil
}

// envKeys maps APP_SERVER_READ_TIMEOUT to server.read_timeout by matching
// against the keys already loaded; underscores alone cannot tell a nesting
// boundary from a word break. Unknown variables fall back to treating every
// underscore as a dot.
func envKeys(known []string) func(key, value string) (string, any) {
	byEnvName := make(map[string]string, len(known))
	for _, k := range known {
		byEnvName[strings.ReplaceAll(k, ".", "_")] = k
	}

	return func(key, value string) (string, any) {
		name := strings.ToLower(strings.TrimPrefix(key, envPrefix))
		if k, ok := byEnvName[name]; ok {
			return k, value
		}
		return strings.ReplaceAll(name, "_", "."), value
	}
}

// checkProfile rejects names that could escape the config directory.
func checkProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("config profile is empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("config profile %q must be a plain file name", profile)
	}
	return nil
}
