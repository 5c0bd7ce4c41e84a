package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"
)

// LevelTrace logs request and response bodies.
const LevelTrace = slog.LevelDebug - 4

var secretKeys = map[string]bool{
	"access_token":  true,
	"refresh_token": true,
	"client_secret": true,
	"code":          true,
}

const redacted = "[REDACTED]"

func (c *Client) tracing(ctx context.Context) bool {
	return c.logger.Enabled(ctx, LevelTrace)
}

func (c *Client) trace(ctx context.Context, msg string, contentType string, body []byte, attrs ...slog.Attr) {
	if !c.tracing(ctx) {
		return
	}
	attrs = append(attrs, slog.String("body", redact(contentType, body)))
	c.logger.LogAttrs(ctx, LevelTrace, msg, attrs...)
}

// redact pretty-prints body with token-bearing fields masked.
func redact(contentType string, body []byte) string {
	if len(body) == 0 {
		return ""
	}

	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return redacted
		}
		for k := range values {
			if secretKeys[k] {
				values.Set(k, redacted)
			}
		}
		return values.Encode()
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	v = redactValue(v)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return redacted
	}
	return strings.TrimRight(buf.String(), "\n")
}

func redactValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, child := range v {
			if secretKeys[k] {
				v[k] = redacted
				continue
			}
			v[k] = redactValue(child)
		}
		return v
	case []any:
		for i, child := range v {
			v[i] = redactValue(child)
		}
		return v
	default:
		return v
	}
}
