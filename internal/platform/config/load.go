package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
	baseProfile      = "base"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir      string
	noTokenSigning bool
}

// WithConfigDir reads the YAML files from dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithoutTokenSigning skips the auth.jwt_secret, auth.issuer and
// auth.token_ttl checks, for tools that hash passwords but never issue
// tokens. auth.bcrypt_cost is still checked.
func WithoutTokenSigning() Option {
	return func(o *loadOptions) {
		o.noTokenSigning = true
	}
}

// Load builds the configuration for profile. Later layers win:
//
//  1. built-in defaults (defaults.go)
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. APP_* environment variables
//
// Environment names are matched against the keys the earlier layers define,
// so underscores inside a key survive:
//
//	APP_SERVER_READ_TIMEOUT        -> server.read_timeout
//	APP_CLIENT_RETRY_MAX_ATTEMPTS  -> client.retry.max_attempts
//	APP_SEED_ADMIN_PASSWORD        -> seed.admin_password
//
// Names matching no known key fall back to one level per underscore.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")

	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	for _, name := range []string{baseProfile, profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	envProvider := env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeyMapper(k.Keys()),
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.validate(!o.noTokenSigning); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case profile == baseProfile:
		return fmt.Errorf("profile %q is the shared layer, not a profile", profile)
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile must be a plain name, got %q", profile)
	}
	return nil
}

// envKeyMapper turns APP_SEED_ADMIN_EMAIL into seed.admin_email using the
// keys already loaded.
func envKeyMapper(known []string) func(string, string) (string, any) {
	lookup := make(map[string]string, len(known))
	for _, key := range known {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(name, value string) (string, any) {
		name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
		if key, ok := lookup[name]; ok {
			return key, value
		}
		return strings.ReplaceAll(name, "_", "."), value
	}
}
