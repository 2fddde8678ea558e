package common

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// WithRequestID stores the request id for loggers further down the stack
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// GetRequestIDFromContext extracts the request ID from the request context
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok && id != ""
}

// LocalPath reduces a Referer header to a same-site path. Anything that is
// not a plain absolute path (other hosts, schemes, protocol relative URLs)
// collapses to fallback.
func LocalPath(referer, fallback string) string {
	referer = strings.TrimSpace(referer)
	if referer == "" {
		return fallback
	}
	u, err := url.Parse(referer)
	if err != nil {
		return fallback
	}
	p := u.EscapedPath()
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, `\`) {
		return fallback
	}
	return p
}

// ValidatePaginationParams validates pagination parameters
func ValidatePaginationParams(limit, offset int) (int, int, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 1000 {
		limit = 1000
	}
	if offset < 0 {
		return 0, 0, fmt.Errorf("offset cannot be negative")
	}
	return limit, offset, nil
}
