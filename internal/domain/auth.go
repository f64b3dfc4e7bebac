package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hive-community/backend/internal/common"
	"github.com/hive-community/backend/internal/entity"
	"github.com/hive-community/backend/internal/model"
	"github.com/hive-community/backend/internal/repository"
	"github.com/hive-community/backend/pkg/crypto"
	"github.com/hive-community/backend/pkg/errorx"
	"github.com/hive-community/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const (
	minPasswordLength = 6
	maxNameLength     = 50

	resetTokenLifetime = time.Hour
)

type AuthDomain interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetMe(ctx context.Context, req *model.GetMeRequest) (*model.GetMeResponse, error)
	UpdateProfile(ctx context.Context, req *model.UpdateProfileRequest) (*model.UpdateProfileResponse, error)
	ChangePassword(ctx context.Context, req *model.ChangePasswordRequest) (*model.ChangePasswordResponse, error)
	Logout(ctx context.Context, req *model.LogoutRequest) (*model.LogoutResponse, error)
	RefreshToken(ctx context.Context, req *model.RefreshTokenRequest) (*model.RefreshTokenResponse, error)
	ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) (*model.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) (*model.ResetPasswordResponse, error)
}

type authDomain struct {
	userRepo  repository.UserRepository
	blacklist *common.TokenBlacklist
}

func NewAuthDomain(
	userRepo repository.UserRepository,
	blacklist *common.TokenBlacklist,
) AuthDomain {
	return &authDomain{userRepo: userRepo, blacklist: blacklist}
}

func (d *authDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	fields := map[string]string{}
	if !checkEmail(req.Email) {
		fields["email"] = "Please provide a valid email address"
	}

	if len(req.Password) < minPasswordLength {
		fields["password"] = "Password must be at least 6 characters"
	}

	if req.FirstName == "" || len(req.FirstName) > maxNameLength {
		fields["firstName"] = "First name must be between 1 and 50 characters"
	}

	if req.LastName == "" || len(req.LastName) > maxNameLength {
		fields["lastName"] = "Last name must be between 1 and 50 characters"
	}

	if len(fields) > 0 {
		return nil, errorx.NewValidation(fields)
	}

	_, err := d.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "User with this email already exists")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	hashed, err := crypto.HashPassword(req.Password, xcontext.Configs(ctx).Auth.BcryptCost)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	user := &entity.User{
		Base:      entity.Base{ID: uuid.NewString()},
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsMentor:  true,
		IsActive:  true,
		LastSeen:  time.Now(),
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	token, err := d.generateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &model.RegisterResponse{
		User:        model.ConvertUser(user, true),
		AccessToken: token,
	}, nil
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	user, err := d.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid email or password")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	if !crypto.ComparePassword(user.Password, req.Password) {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid email or password")
	}

	if !user.IsActive {
		return nil, errorx.New(errorx.Unauthenticated, "Account is deactivated")
	}

	if err := d.userRepo.UpdateLastSeen(ctx, user.ID); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update last seen of %s: %v", user.ID, err)
	}

	token, err := d.generateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		User:        model.ConvertUser(user, true),
		AccessToken: token,
	}, nil
}

func (d *authDomain) GetMe(
	ctx context.Context, req *model.GetMeRequest,
) (*model.GetMeResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get current user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetMeResponse{User: model.ConvertUser(user, true)}, nil
}

func (d *authDomain) UpdateProfile(
	ctx context.Context, req *model.UpdateProfileRequest,
) (*model.UpdateProfileResponse, error) {
	updates := map[string]any{}

	if req.FirstName != nil {
		if *req.FirstName == "" || len(*req.FirstName) > maxNameLength {
			return nil, errorx.New(errorx.BadRequest, "First name must be between 1 and 50 characters")
		}
		updates["first_name"] = *req.FirstName
	}

	if req.LastName != nil {
		if *req.LastName == "" || len(*req.LastName) > maxNameLength {
			return nil, errorx.New(errorx.BadRequest, "Last name must be between 1 and 50 characters")
		}
		updates["last_name"] = *req.LastName
	}

	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}

	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}

	if req.Goals != nil {
		updates["goals"] = entity.Array[string](*req.Goals)
	}

	if req.Interests != nil {
		updates["interests"] = entity.Array[string](*req.Interests)
	}

	if req.Expertise != nil {
		updates["expertise"] = entity.Array[string](*req.Expertise)
	}

	if req.MentorInterests != nil {
		updates["mentor_interests"] = entity.Array[string](*req.MentorInterests)
	}

	if req.IsMentor != nil {
		updates["is_mentor"] = *req.IsMentor
	}

	if req.IsSeekingMentor != nil {
		updates["is_seeking_mentor"] = *req.IsSeekingMentor
	}

	userID := xcontext.RequestUserID(ctx)
	if len(updates) > 0 {
		if err := d.userRepo.Update(ctx, userID, updates); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update profile: %v", err)
			return nil, errorx.Unknown
		}
	}

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get updated user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateProfileResponse{User: model.ConvertUser(user, true)}, nil
}

func (d *authDomain) ChangePassword(
	ctx context.Context, req *model.ChangePasswordRequest,
) (*model.ChangePasswordResponse, error) {
	if len(req.NewPassword) < minPasswordLength {
		return nil, errorx.New(errorx.BadRequest, "Password must be at least 6 characters")
	}

	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get current user: %v", err)
		return nil, errorx.Unknown
	}

	if !crypto.ComparePassword(user.Password, req.CurrentPassword) {
		return nil, errorx.New(errorx.Unauthenticated, "Current password is incorrect")
	}

	hashed, err := crypto.HashPassword(req.NewPassword, xcontext.Configs(ctx).Auth.BcryptCost)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userRepo.Update(ctx, user.ID, map[string]any{"password": hashed}); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update password: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ChangePasswordResponse{}, nil
}

func (d *authDomain) Logout(
	ctx context.Context, req *model.LogoutRequest,
) (*model.LogoutResponse, error) {
	token := common.BearerToken(ctx)
	if token == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Access token is required")
	}

	expiresAt, err := xcontext.TokenEngine(ctx).Expiry(token)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot read token expiry: %v", err)
		expiresAt = time.Time{}
	}

	if err := d.blacklist.Revoke(ctx, token, expiresAt); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot revoke token: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	if err := d.userRepo.UpdateLastSeen(ctx, userID); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update last seen of %s: %v", userID, err)
	}

	return &model.LogoutResponse{}, nil
}

func (d *authDomain) RefreshToken(
	ctx context.Context, req *model.RefreshTokenRequest,
) (*model.RefreshTokenResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get current user: %v", err)
		return nil, errorx.Unknown
	}

	token, err := d.generateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &model.RefreshTokenResponse{AccessToken: token}, nil
}

func (d *authDomain) ForgotPassword(
	ctx context.Context, req *model.ForgotPasswordRequest,
) (*model.ForgotPasswordResponse, error) {
	user, err := d.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "No user found with this email")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	resetToken, err := crypto.GenerateRandomString()
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate reset token: %v", err)
		return nil, errorx.Unknown
	}

	err = d.userRepo.Update(ctx, user.ID, map[string]any{
		"reset_password_token":   resetToken,
		"reset_password_expires": time.Now().Add(resetTokenLifetime),
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot store reset token: %v", err)
		return nil, errorx.Unknown
	}

	// Mail delivery is out of scope, the token is handed back directly.
	return &model.ForgotPasswordResponse{ResetToken: resetToken}, nil
}

func (d *authDomain) ResetPassword(
	ctx context.Context, req *model.ResetPasswordRequest,
) (*model.ResetPasswordResponse, error) {
	if len(req.NewPassword) < minPasswordLength {
		return nil, errorx.New(errorx.BadRequest, "Password must be at least 6 characters")
	}

	if req.ResetToken == "" {
		return nil, errorx.New(errorx.BadRequest, "Reset token is required")
	}

	user, err := d.userRepo.GetByResetToken(ctx, req.ResetToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.BadRequest, "Invalid or expired reset token")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by reset token: %v", err)
		return nil, errorx.Unknown
	}

	if time.Now().After(user.ResetPasswordExpires) {
		return nil, errorx.New(errorx.BadRequest, "Invalid or expired reset token")
	}

	hashed, err := crypto.HashPassword(req.NewPassword, xcontext.Configs(ctx).Auth.BcryptCost)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	err = d.userRepo.Update(ctx, user.ID, map[string]any{
		"password":               hashed,
		"reset_password_token":   "",
		"reset_password_expires": time.Time{},
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reset password: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ResetPasswordResponse{}, nil
}

func (d *authDomain) generateAccessToken(ctx context.Context, user *entity.User) (string, error) {
	token, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.AccessToken.Expiration,
		model.AccessToken{ID: user.ID, Email: user.Email},
	)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return "", errorx.Unknown
	}

	return token, nil
}
