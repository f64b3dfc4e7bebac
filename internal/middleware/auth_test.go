package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hive-community/backend/internal/common"
	"github.com/hive-community/backend/internal/model"
	"github.com/hive-community/backend/internal/repository"
	"github.com/hive-community/backend/pkg/errorx"
	"github.com/hive-community/backend/pkg/testutil"
	"github.com/hive-community/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newAuthContext(t *testing.T, token string) context.Context {
	ctx := testutil.MockContext()
	req := httptest.NewRequest("POST", "/api/getMe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return xcontext.WithHTTPRequest(ctx, req)
}

func issueToken(t *testing.T, ctx context.Context, userID string) string {
	token, err := xcontext.TokenEngine(ctx).Generate(
		time.Minute, model.AccessToken{ID: userID})
	require.NoError(t, err)
	return token
}

func Test_AuthVerifier_Required(t *testing.T) {
	ctx := newAuthContext(t, "")
	verifier := NewAuthVerifier(
		repository.NewUserRepository(),
		common.NewTokenBlacklist(xcontext.RedisClient(ctx)),
	)

	// Missing token.
	_, err := verifier.Required()(ctx)
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)

	// Valid token resolves the request user.
	ctx = newAuthContext(t, issueToken(t, ctx, testutil.User1.ID))
	newCtx, err := verifier.Required()(ctx)
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, xcontext.RequestUserID(newCtx))
}

func Test_AuthVerifier_RevokedToken(t *testing.T) {
	ctx := testutil.MockContext()
	token := issueToken(t, ctx, testutil.User1.ID)

	blacklist := common.NewTokenBlacklist(xcontext.RedisClient(ctx))
	verifier := NewAuthVerifier(repository.NewUserRepository(), blacklist)

	req := httptest.NewRequest("POST", "/api/getMe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	ctx = xcontext.WithHTTPRequest(ctx, req)

	_, err := verifier.Required()(ctx)
	require.NoError(t, err)

	require.NoError(t, blacklist.Revoke(ctx, token, time.Now().Add(time.Minute)))

	_, err = verifier.Required()(ctx)
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.TokenRevoked, errx.Code)
	require.Equal(t, "Token has been revoked", errx.Message)
}

func Test_AuthVerifier_UnknownOrInactiveUser(t *testing.T) {
	ctx := testutil.MockContext()
	userRepo := repository.NewUserRepository()
	verifier := NewAuthVerifier(
		userRepo, common.NewTokenBlacklist(xcontext.RedisClient(ctx)))

	req := httptest.NewRequest("POST", "/api/getMe", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, ctx, "ghost"))
	_, err := verifier.Required()(xcontext.WithHTTPRequest(ctx, req))
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)

	require.NoError(t, userRepo.Update(ctx, testutil.User2.ID, map[string]any{"is_active": false}))
	req.Header.Set("Authorization", "Bearer "+issueToken(t, ctx, testutil.User2.ID))
	_, err = verifier.Required()(xcontext.WithHTTPRequest(ctx, req))
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)
	require.Equal(t, "Account is deactivated", errx.Message)
}

func Test_AuthVerifier_Optional(t *testing.T) {
	ctx := newAuthContext(t, "")
	verifier := NewAuthVerifier(
		repository.NewUserRepository(),
		common.NewTokenBlacklist(xcontext.RedisClient(ctx)),
	)

	// No token is fine, the request stays anonymous.
	newCtx, err := verifier.Optional()(ctx)
	require.NoError(t, err)
	require.Empty(t, xcontext.RequestUserID(newCtx))

	// Garbage tokens are ignored too.
	ctx = newAuthContext(t, "garbage")
	newCtx, err = verifier.Optional()(ctx)
	require.NoError(t, err)
	require.Empty(t, xcontext.RequestUserID(newCtx))
}
