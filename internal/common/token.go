package common

import (
	"context"
	"strings"

	"github.com/hive-community/backend/pkg/xcontext"
)

// BearerToken extracts the access token from the Authorization header of the
// current request. It returns an empty string when the header is missing or
// not a bearer scheme.
func BearerToken(ctx context.Context) string {
	req := xcontext.HTTPRequest(ctx)
	if req == nil {
		return ""
	}

	authorization := req.Header.Get("Authorization")
	scheme, token, found := strings.Cut(authorization, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}
