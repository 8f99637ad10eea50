package middleware

import (
	"log/slog"
	"net/http"
	"strings"
)

const redacted = "[REDACTED]"

// sensitiveHeaders lists lowercase header names whose values carry
// credentials or session state.
var sensitiveHeaders = map[string]bool{
	"authorization":        true,
	"proxy-authorization":  true,
	"x-api-key":            true,
	"x-auth-token":         true,
	"cookie":               true,
	"set-cookie":           true,
	"x-amz-security-token": true,
}

// RedactHeaders renders headers as slog attributes with sensitive values
// replaced by "[REDACTED]". Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
	}
	return attrs
}
