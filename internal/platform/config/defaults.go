package config

const (
	defaultServerPort  = 8080
	defaultMaxUploadMB = 16

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultDatabaseMaxConns = 10
	defaultBcryptCost       = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
// Every key that may be set from the environment needs an entry here so that
// buildEnvLookup can resolve it.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",
		"server.max_upload_mb": defaultMaxUploadMB,

		"log.level":  "info",
		"log.format": "json",

		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "mentorship-admin",

		"database.driver":           DriverMemory,
		"database.url":              "",
		"database.max_conns":        defaultDatabaseMaxConns,
		"database.migrate_on_start": false,

		"redis.url": "",

		"storage.driver":            DriverLocal,
		"storage.root":              "data/blobs",
		"storage.bucket":            "",
		"storage.region":            "",
		"storage.endpoint":          "",
		"storage.use_path_style":    false,
		"storage.access_key_id":     "",
		"storage.secret_access_key": "",

		"auth.jwt_secret":  "",
		"auth.issuer":      "mentorship-admin",
		"auth.token_ttl":   "1h",
		"auth.bcrypt_cost": defaultBcryptCost,

		"seed.enabled":        false,
		"seed.admin_name":     "Administrator",
		"seed.admin_email":    "",
		"seed.admin_password": "",
	}
}
