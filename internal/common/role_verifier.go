package common

import (
	"context"
	"errors"

	"github.com/hive-community/backend/internal/repository"
	"github.com/hive-community/backend/pkg/xcontext"
)

// ModeratorVerifier approximates a moderator role with a reputation
// threshold. There is no dedicated role field yet.
// TODO: replace with a real role column once admin tooling lands.
type ModeratorVerifier struct {
	userRepo repository.UserRepository
}

func NewModeratorVerifier(userRepo repository.UserRepository) *ModeratorVerifier {
	return &ModeratorVerifier{userRepo: userRepo}
}

func (verifier *ModeratorVerifier) Verify(ctx context.Context) error {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return errors.New("no authenticated user")
	}

	u, err := verifier.userRepo.GetByID(ctx, userID)
	if err != nil {
		return errors.New("user is not valid")
	}

	if u.Reputation < xcontext.Configs(ctx).Auth.ModeratorReputation {
		return errors.New("user does not have moderator permission")
	}

	return nil
}
