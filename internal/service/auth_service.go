package service

import (
	"context"
	"errors"
	"fmt"

	"study_planner/internal/model"
	"study_planner/internal/repository"
	"study_planner/internal/utils"
)

var (
	ErrUserAlreadyExists  = errors.New("username, email, or phone already registered")
	ErrUserNotFound       = errors.New("no account matches that contact")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

// AuthService provides registration, login, and the password reset flow
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, loginInput, password string) (*model.User, error)
	ForgotPassword(ctx context.Context, contact string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authService struct {
	userRepo  repository.UserRepository
	tokenUtil *utils.ResetTokenUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, tokenUtil *utils.ResetTokenUtil) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenUtil: tokenUtil,
	}
}

// Register creates a new account. Username, email, and phone must each be
// unused; the password is stored only as a bcrypt hash.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	conflicts, err := s.userRepo.CountConflicts(ctx, req.Username, req.Email, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	if conflicts > 0 {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

// Login authenticates a user by username, email, or phone
func (s *authService) Login(ctx context.Context, loginInput, password string) (*model.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, loginInput)
	if err != nil {
		return nil, fmt.Errorf("error finding user by login: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials // User not found
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials // Password mismatch
	}

	return user, nil
}

// ForgotPassword issues a reset token for the account matching the given
// email or phone
func (s *authService) ForgotPassword(ctx context.Context, contact string) (string, error) {
	user, err := s.userRepo.FindByContact(ctx, contact)
	if err != nil {
		return "", fmt.Errorf("error finding user by contact: %w", err)
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	token, err := s.tokenUtil.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return token, nil
}

// ResetPassword validates a reset token and rewrites the account's
// password hash
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := s.tokenUtil.ValidateToken(token)
	if err != nil {
		return ErrInvalidResetToken
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, claims.UserID, hashedPassword); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}
	return nil
}
