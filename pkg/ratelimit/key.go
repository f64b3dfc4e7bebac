package ratelimit

import (
	"context"
	"net"
	"strings"

	"github.com/hive-community/backend/pkg/xcontext"
)

// ByIP keys the limiter on the caller address, preferring X-Forwarded-For
// when a proxy sits in front.
func ByIP() KeyFunc {
	return func(ctx context.Context) string {
		return clientIP(ctx)
	}
}

// ByUserOrIP keys on the authenticated user id, falling back to the caller
// address for anonymous requests.
func ByUserOrIP() KeyFunc {
	return func(ctx context.Context) string {
		if userID := xcontext.RequestUserID(ctx); userID != "" {
			return userID
		}

		return clientIP(ctx)
	}
}

func clientIP(ctx context.Context) string {
	r := xcontext.HTTPRequest(ctx)
	if r == nil {
		return "unknown"
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
