package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/mentorship-admin/internal/platform/logging"
)

func entry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m), buf.String())
	return m
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	var jsonBuf, textBuf, otherBuf bytes.Buffer
	logging.New("info", "json", &jsonBuf).Info("hello")
	logging.New("info", "text", &textBuf).Info("hello")
	logging.New("info", "logfmt", &otherBuf).Info("hello")

	m := entry(t, &jsonBuf)
	assert.Equal(t, "INFO", m["level"])
	assert.Equal(t, "hello", m["msg"])

	assert.Contains(t, textBuf.String(), "level=INFO")
	assert.Contains(t, textBuf.String(), "msg=hello")

	assert.Equal(t, "hello", entry(t, &otherBuf)["msg"])
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level     string
		debug     bool
		info      bool
		warn      bool
		hasSource bool
	}{
		{level: "debug", debug: true, info: true, warn: true, hasSource: true},
		{level: "DEBUG", debug: true, info: true, warn: true, hasSource: true},
		{level: "info", info: true, warn: true},
		{level: "Warn", warn: true},
		{level: "error"},
		{level: "verbose", info: true, warn: true},
		{level: "", info: true, warn: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			logger := logging.New(tt.level, "json", &bytes.Buffer{})

			assert.Equal(t, tt.debug, logger.Enabled(ctx, slog.LevelDebug), "debug")
			assert.Equal(t, tt.info, logger.Enabled(ctx, slog.LevelInfo), "info")
			assert.Equal(t, tt.warn, logger.Enabled(ctx, slog.LevelWarn), "warn")
			assert.True(t, logger.Enabled(ctx, slog.LevelError), "error")

			var buf bytes.Buffer
			logging.New(tt.level, "json", &buf).Error("boom")
			_, hasSource := entry(t, &buf)["source"]
			assert.Equal(t, tt.hasSource, hasSource)
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Same(t, slog.Default(), logging.FromContext(context.Background()))

	first := slog.New(slog.DiscardHandler)
	second := first.With(slog.String("request_id", "r-1"))

	ctx := logging.WithLogger(context.Background(), first)
	assert.Same(t, first, logging.FromContext(ctx))

	ctx = logging.WithLogger(ctx, second)
	assert.Same(t, second, logging.FromContext(ctx))
}

func TestNew_RedactsCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		attr slog.Attr
		raw  string
	}{
		{"authorization header", slog.String("authorization", "Bearer supersecret-token"), "supersecret-token"},
		{"login password", slog.String("password", "hunter22"), "hunter22"},
		{"password hash", slog.String("password_hash", "$2a$10$abcdefghijklmnopqrstuv"), "abcdefghijklmnopqrstuv"},
		{"seeded admin password", slog.String("admin_password", "changeme"), "changeme"},
		{"s3 secret key", slog.String("secret_access_key", "wJalrXUtnFEMI"), "wJalrXUtnFEMI"},
		{"issued token", slog.String("access_token", "abc.def.ghi"), "abc.def.ghi"},
		{"raw bearer", slog.String("raw_header", "Bearer eyJhbGciOiJIUzI1NiJ9"), "eyJhbGciOiJIUzI1NiJ9"},
		{"inline api key", slog.String("note", "api_key=k-123456"), "k-123456"},
		{"redis url", slog.String("redis", "redis://:s3cretpw@cache:6379/0"), "s3cretpw"},
		{"database url", slog.String("dsn", "postgres://admin:dbpass@db:5432/mentorship"), "dbpass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			assert.NotContains(t, buf.String(), tt.raw)
			assert.Contains(t, buf.String(), "[REDACTED]")
		})
	}
}

func TestNew_KeepsOrdinaryFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("seeding admin",
		slog.String("admin_email", "admin@example.com"),
		slog.String("path", "/api/v1/mentees"),
		slog.String("storage_key", "documents/2026/handbook.pdf"),
		slog.String("version", "1.2.3"),
	)

	m := entry(t, &buf)
	assert.Equal(t, "admin@example.com", m["admin_email"])
	assert.Equal(t, "/api/v1/mentees", m["path"])
	assert.Equal(t, "documents/2026/handbook.pdf", m["storage_key"])
	assert.Equal(t, "1.2.3", m["version"])
}
