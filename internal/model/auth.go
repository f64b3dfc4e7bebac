package model

import "net/http"

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type RegisterResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"accessToken"`
}

func (RegisterResponse) SuccessMessage() string {
	return "User registered successfully"
}

func (RegisterResponse) SuccessStatusCode() int {
	return http.StatusCreated
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"accessToken"`
}

func (LoginResponse) SuccessMessage() string {
	return "Login successful"
}

type GetMeRequest struct{}

type GetMeResponse struct {
	User User `json:"user"`
}

type UpdateProfileRequest struct {
	FirstName       *string   `json:"firstName"`
	LastName        *string   `json:"lastName"`
	Bio             *string   `json:"bio"`
	Avatar          *string   `json:"avatar"`
	Goals           *[]string `json:"goals"`
	Interests       *[]string `json:"interests"`
	Expertise       *[]string `json:"expertise"`
	MentorInterests *[]string `json:"mentorInterests"`
	IsMentor        *bool     `json:"isMentor"`
	IsSeekingMentor *bool     `json:"isSeekingMentor"`
}

type UpdateProfileResponse struct {
	User User `json:"user"`
}

func (UpdateProfileResponse) SuccessMessage() string {
	return "Profile updated successfully"
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ChangePasswordResponse struct{}

func (ChangePasswordResponse) SuccessMessage() string {
	return "Password changed successfully"
}

type LogoutRequest struct{}

type LogoutResponse struct{}

func (LogoutResponse) SuccessMessage() string {
	return "Logged out successfully"
}

type RefreshTokenRequest struct{}

type RefreshTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

func (RefreshTokenResponse) SuccessMessage() string {
	return "Token refreshed successfully"
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ForgotPasswordResponse struct {
	ResetToken string `json:"resetToken"`
}

func (ForgotPasswordResponse) SuccessMessage() string {
	return "Password reset token generated"
}

type ResetPasswordRequest struct {
	ResetToken  string `json:"resetToken"`
	NewPassword string `json:"newPassword"`
}

type ResetPasswordResponse struct{}

func (ResetPasswordResponse) SuccessMessage() string {
	return "Password reset successfully"
}
