package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders are the lowercase request headers that carry
// credentials. The HTTP middleware masks the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// Field names whose values are always masked: login passwords, the JWT
// signing secret, issued tokens and the seeded admin's credentials.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"access_token",
	"jwt_secret",
}

// Prefixes cover variants such as password_hash, secret_access_key,
// admin_password and api_key_v2.
var sensitivePrefixes = []string{
	"password_",
	"secret_",
	"admin_password",
	"api_key",
}

// Values that leak through fields with harmless names.
var (
	bearerPattern   = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	jwtPattern      = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	apiKeyPattern   = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
	urlUserPassword = regexp.MustCompile(`[a-z][a-z0-9+.\-]*://[^:/@\s]*:[^@/\s]+@`)
)

func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+4)
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	opts = append(opts,
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyPattern),
		masq.WithRegex(urlUserPassword),
	)
	return masq.New(opts...)
}
