package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vibast-solutions/ms-go-accounts/app/dto"
	"github.com/vibast-solutions/ms-go-accounts/app/entity"
	"github.com/vibast-solutions/ms-go-accounts/app/repository"
	"github.com/vibast-solutions/ms-go-accounts/config"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidToken       = errors.New("invalid or expired reset token")
	ErrMailDelivery       = errors.New("failed to send reset email")
)

const resetMailSubject = "Password Reset"

type AuthService struct {
	userRepo *repository.UserRepository
	mailer   Mailer
	cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, mailer Mailer, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		mailer:   mailer,
		cfg:      cfg,
	}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*entity.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can win between the lookup and the
		// insert; the unique key reports it as a duplicate.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// RequestPasswordReset issues a fresh reset token for the account, replacing
// any outstanding one, and mails the reset link to the registered address.
// A delivery failure is reported as ErrMailDelivery but does not roll back
// the issued token.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (*dto.RequestPasswordResetResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	token, expiresAt, err := NewResetToken(s.cfg.ResetTokenTTL)
	if err != nil {
		return nil, err
	}

	rows, err := s.userRepo.SetResetToken(ctx, user.Email, token, expiresAt)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// The record vanished between the lookup and the update; no token
		// was persisted, so no link is mailed.
		return nil, ErrUserNotFound
	}

	link := s.resetLink(token)
	if err := s.mailer.Send(user.Email, resetMailSubject, resetMailBody(link)); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMailDelivery, err.Error())
	}

	return &dto.RequestPasswordResetResult{
		ResetToken: token,
		Recipient:  user.Email,
		ExpiresAt:  expiresAt,
	}, nil
}

// ValidateResetToken returns the email holding the token if it is still
// valid. Unknown, expired and already-consumed tokens are indistinguishable.
func (s *AuthService) ValidateResetToken(ctx context.Context, token string) (string, error) {
	user, err := s.userRepo.FindByValidResetToken(ctx, token, time.Now())
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidToken
	}
	return user.Email, nil
}

// ResetPassword consumes the token and installs the new password. The store
// update is a single conditional statement, so of two racing calls on the
// same token exactly one succeeds and the other sees ErrInvalidToken.
func (s *AuthService) ResetPassword(ctx context.Context, token, password, confirmPassword string) error {
	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}

	rows, err := s.userRepo.ConsumePasswordReset(ctx, token, hashedPassword, time.Now())
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrInvalidToken
	}

	return nil
}

func (s *AuthService) resetLink(token string) string {
	return strings.TrimRight(s.cfg.ResetBaseURL, "/") + "/auth/reset/" + token
}

func resetMailBody(link string) string {
	return "You are receiving this because you (or someone else) have requested the reset of the password for your account.\n\n" +
		"Please click on the following link, or paste this into your browser to complete the process:\n\n" +
		link + "\n\n" +
		"If you did not request this, please ignore this email and your password will remain unchanged.\n"
}
