package domain

import (
	"testing"

	"github.com/hive-community/backend/internal/common"
	"github.com/hive-community/backend/internal/model"
	"github.com/hive-community/backend/internal/repository"
	"github.com/hive-community/backend/pkg/errorx"
	"github.com/hive-community/backend/pkg/testutil"
	"github.com/hive-community/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_authDomain_RegisterLoginFlow(t *testing.T) {
	ctx := testutil.MockContext()
	userRepo := repository.NewUserRepository()
	blacklist := common.NewTokenBlacklist(xcontext.RedisClient(ctx))
	domain := NewAuthDomain(userRepo, blacklist)

	registerResp, err := domain.Register(ctx, &model.RegisterRequest{
		Email:     "dave@example.com",
		Password:  "longenough",
		FirstName: "Dave",
		LastName:  "Pham",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registerResp.AccessToken)
	require.Equal(t, "dave@example.com", registerResp.User.Email)

	loginResp, err := domain.Login(ctx, &model.LoginRequest{
		Email:    "dave@example.com",
		Password: "longenough",
	})
	require.NoError(t, err)
	require.NotEmpty(t, loginResp.AccessToken)

	// The issued token authenticates a getMe call.
	var accessToken model.AccessToken
	err = xcontext.TokenEngine(ctx).Verify(loginResp.AccessToken, &accessToken)
	require.NoError(t, err)

	meResp, err := domain.GetMe(
		xcontext.WithRequestUserID(ctx, accessToken.ID), &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, "dave@example.com", meResp.User.Email)
}

func Test_authDomain_Register_DuplicateEmail(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewAuthDomain(
		repository.NewUserRepository(),
		common.NewTokenBlacklist(xcontext.RedisClient(ctx)),
	)

	_, err := domain.Register(ctx, &model.RegisterRequest{
		Email:     testutil.User1.Email,
		Password:  "longenough",
		FirstName: "Alice",
		LastName:  "Clone",
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)
}

func Test_authDomain_Register_Validation(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewAuthDomain(
		repository.NewUserRepository(),
		common.NewTokenBlacklist(xcontext.RedisClient(ctx)),
	)

	_, err := domain.Register(ctx, &model.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
	require.Contains(t, errx.Fields, "email")
	require.Contains(t, errx.Fields, "password")
	require.Contains(t, errx.Fields, "firstName")
	require.Contains(t, errx.Fields, "lastName")
}

func Test_authDomain_Login_InvalidCredentials(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewAuthDomain(
		repository.NewUserRepository(),
		common.NewTokenBlacklist(xcontext.RedisClient(ctx)),
	)

	_, err := domain.Login(ctx, &model.LoginRequest{
		Email:    testutil.User1.Email,
		Password: "wrong-password",
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)

	_, err = domain.Login(ctx, &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: testutil.PlainPassword,
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)
}

func Test_authDomain_ChangePassword(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	domain := NewAuthDomain(
		repository.NewUserRepository(),
		common.NewTokenBlacklist(xcontext.RedisClient(ctx)),
	)

	_, err := domain.ChangePassword(ctx, &model.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)

	_, err = domain.ChangePassword(ctx, &model.ChangePasswordRequest{
		CurrentPassword: testutil.PlainPassword,
		NewPassword:     "newpassword",
	})
	require.NoError(t, err)

	_, err = domain.Login(ctx, &model.LoginRequest{
		Email:    testutil.User1.Email,
		Password: "newpassword",
	})
	require.NoError(t, err)
}

func Test_authDomain_ForgotAndResetPassword(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewAuthDomain(
		repository.NewUserRepository(),
		common.NewTokenBlacklist(xcontext.RedisClient(ctx)),
	)

	forgotResp, err := domain.ForgotPassword(ctx, &model.ForgotPasswordRequest{
		Email: testutil.User2.Email,
	})
	require.NoError(t, err)
	require.NotEmpty(t, forgotResp.ResetToken)

	_, err = domain.ResetPassword(ctx, &model.ResetPasswordRequest{
		ResetToken:  "bogus-token",
		NewPassword: "resetpassword",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	_, err = domain.ResetPassword(ctx, &model.ResetPasswordRequest{
		ResetToken:  forgotResp.ResetToken,
		NewPassword: "resetpassword",
	})
	require.NoError(t, err)

	_, err = domain.Login(ctx, &model.LoginRequest{
		Email:    testutil.User2.Email,
		Password: "resetpassword",
	})
	require.NoError(t, err)
}
