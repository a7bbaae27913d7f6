package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	"github.com/kipsang/dukapos-api/internal/domain/enum"
	"github.com/kipsang/dukapos-api/internal/domain/repository"
	"github.com/kipsang/dukapos-api/pkg/apperror"
	"github.com/kipsang/dukapos-api/pkg/oauth"
	"github.com/kipsang/dukapos-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
	googleSvc  *oauth.GoogleOAuthService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	jwtManager *utils.JWTManager,
	googleSvc *oauth.GoogleOAuthService,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		googleSvc:  googleSvc,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperror.NewAppError(403, "Account is deactivated")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// RegisterInput represents the registration input. Registration is an
// admin-only operation; new staff get a temporary password they must change
// on first login.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      enum.Role
	Phone     *string
}

// Register creates a new staff account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	if !input.Role.Valid() {
		return nil, apperror.NewBadRequestError("Invalid role")
	}

	existingUser, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	// Username defaults to the part of the email before @
	username := input.Email
	if idx := strings.Index(input.Email, "@"); idx > 0 {
		username = input.Email[:idx]
	}

	user := &entity.User{
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		Username:            username,
		Email:               input.Email,
		Password:            hashedPassword,
		Role:                input.Role,
		Phone:               input.Phone,
		IsActive:            true,
		ForcePasswordChange: true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	if !user.IsActive {
		return nil, apperror.NewAppError(403, "Account is deactivated")
	}

	return s.issueTokens(user)
}

// GoogleLogin signs a user in from a verified Google profile. Accounts are
// not auto-provisioned: the email must belong to an existing staff member.
func (s *AuthService) GoogleLogin(ctx context.Context, code string) (*LoginOutput, error) {
	if s.googleSvc == nil || !s.googleSvc.IsConfigured() {
		return nil, apperror.NewBadRequestError("Google login is not configured")
	}

	token, err := s.googleSvc.ExchangeCode(ctx, code)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid authorization code")
	}

	info, err := s.googleSvc.GetUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}
	if !info.VerifiedEmail {
		return nil, apperror.NewBadRequestError("Google account email is not verified")
	}

	user, err := s.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewAppError(403, "No account exists for this email")
	}
	if !user.IsActive {
		return nil, apperror.NewAppError(403, "Account is deactivated")
	}

	// Link the Google identity on first OAuth login
	if user.ProviderID == nil {
		user.Provider = "google"
		user.ProviderID = &info.ID
		if info.Picture != "" {
			user.Photo = &info.Picture
		}
	}
	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// GetAuthURL returns the Google consent URL
func (s *AuthService) GetAuthURL(state string) (string, error) {
	if s.googleSvc == nil || !s.googleSvc.IsConfigured() {
		return "", apperror.NewBadRequestError("Google login is not configured")
	}
	return s.googleSvc.GetAuthURL(state), nil
}

// GetCurrentUser returns the current user by ID
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePassword changes the user's password and clears the forced-change flag
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrNotFound
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return apperror.NewBadRequestError("Current password is incorrect")
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	user.ForcePasswordChange = false
	return s.userRepo.Update(ctx, user)
}

func (s *AuthService) issueTokens(user *entity.User) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Role.String())
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
