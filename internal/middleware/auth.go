package middleware

import (
	"context"

	"github.com/hive-community/backend/internal/common"
	"github.com/hive-community/backend/internal/model"
	"github.com/hive-community/backend/internal/repository"
	"github.com/hive-community/backend/pkg/errorx"
	"github.com/hive-community/backend/pkg/router"
	"github.com/hive-community/backend/pkg/xcontext"
)

// AuthVerifier authenticates requests with a bearer token. Required mode
// rejects the request on any failure; Optional mode lets it through
// unauthenticated.
type AuthVerifier struct {
	userRepo  repository.UserRepository
	blacklist *common.TokenBlacklist
}

func NewAuthVerifier(
	userRepo repository.UserRepository,
	blacklist *common.TokenBlacklist,
) *AuthVerifier {
	return &AuthVerifier{userRepo: userRepo, blacklist: blacklist}
}

func (verifier *AuthVerifier) Required() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		return verifier.verify(ctx)
	}
}

func (verifier *AuthVerifier) Optional() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		newCtx, err := verifier.verify(ctx)
		if err != nil {
			return ctx, nil
		}

		return newCtx, nil
	}
}

func (verifier *AuthVerifier) verify(ctx context.Context) (context.Context, error) {
	token := common.BearerToken(ctx)
	if token == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Access token is required")
	}

	if verifier.blacklist.IsRevoked(ctx, token) {
		return nil, errorx.New(errorx.TokenRevoked, "Token has been revoked")
	}

	var accessToken model.AccessToken
	if err := xcontext.TokenEngine(ctx).Verify(token, &accessToken); err != nil {
		xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
		return nil, errorx.New(errorx.Unauthenticated, "Invalid or expired token")
	}

	user, err := verifier.userRepo.GetByID(ctx, accessToken.ID)
	if err != nil {
		return nil, errorx.New(errorx.Unauthenticated, "User not found")
	}

	if !user.IsActive {
		return nil, errorx.New(errorx.Unauthenticated, "Account is deactivated")
	}

	newCtx := xcontext.WithRequestUserID(ctx, user.ID)

	// Best effort, a failed touch must not fail the request.
	if err := verifier.userRepo.UpdateLastSeen(newCtx, user.ID); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update last seen of %s: %v", user.ID, err)
	}

	return newCtx, nil
}
