package config

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain/inventory"
)

// minJWTSecretLength is the minimum HS256 secret size in bytes.
const minJWTSecretLength = 32

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return c.validate(true)
}

func (c *Config) validate(signing bool) error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.Database.validate(),
		c.Storage.validate(),
		c.Auth.validate(signing),
		c.Inventory.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.MaxUploadMB < 1 {
		errs = append(errs, fmt.Errorf("server.max_upload_mb must be >= 1, got %d", s.MaxUploadMB))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	switch d.Driver {
	case DriverMemory:
		return nil
	case DriverPostgres:
		var errs []error
		if d.URL == "" {
			errs = append(errs, errors.New("database.url must not be empty when driver is postgres"))
		}
		if d.MaxConns < 1 {
			errs = append(errs, fmt.Errorf("database.max_conns must be >= 1, got %d", d.MaxConns))
		}
		return errors.Join(errs...)
	default:
		return fmt.Errorf("database.driver must be one of: memory, postgres; got %q", d.Driver)
	}
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case DriverLocal:
		if s.Root == "" {
			return errors.New("storage.root must not be empty when driver is local")
		}
		return nil
	case DriverS3:
		var errs []error
		if s.Bucket == "" {
			errs = append(errs, errors.New("storage.bucket must not be empty when driver is s3"))
		}
		if s.Region == "" {
			errs = append(errs, errors.New("storage.region must not be empty when driver is s3"))
		}
		return errors.Join(errs...)
	default:
		return fmt.Errorf("storage.driver must be one of: local, s3; got %q", s.Driver)
	}
}

func (a *AuthConfig) validate(signing bool) error {
	var errs []error

	if signing {
		if len(a.JWTSecret) < minJWTSecretLength {
			errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d bytes", minJWTSecretLength))
		}
		if a.Issuer == "" {
			errs = append(errs, errors.New("auth.issuer must not be empty"))
		}
		if a.TokenTTL <= 0 {
			errs = append(errs, errors.New("auth.token_ttl must be positive"))
		}
	}
	if a.BcryptCost < bcrypt.MinCost || a.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("auth.bcrypt_cost must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, a.BcryptCost))
	}

	return errors.Join(errs...)
}

func (i *InventoryConfig) validate() error {
	if len(i.StockRules) == 0 {
		return nil
	}
	if _, err := inventory.NewStockRules(i.Rules()); err != nil {
		return fmt.Errorf("inventory.stock_rules: %w", err)
	}
	return nil
}

// Rules converts the configured stock rules, falling back to
// inventory.DefaultRules when none are configured.
func (i *InventoryConfig) Rules() []inventory.Rule {
	if len(i.StockRules) == 0 {
		return inventory.DefaultRules()
	}
	rules := make([]inventory.Rule, len(i.StockRules))
	for n, r := range i.StockRules {
		rules[n] = inventory.Rule{Status: r.Status, Expression: r.Expression}
	}
	return rules
}
