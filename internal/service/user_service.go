package service

import (
	"context"
	"errors"
	"strings"

	"github.com/JorgegrDev/medic-action/internal/auth"
	dom "github.com/JorgegrDev/medic-action/internal/domain"
	"github.com/JorgegrDev/medic-action/internal/repo"
	"github.com/JorgegrDev/medic-action/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrEmailTaken = errors.New("email already registered")

// GoogleTokenVerifier validates a Google id token and returns the identity it
// carries. Implemented by auth.GoogleVerifier.
type GoogleTokenVerifier interface {
	Verify(ctx context.Context, idToken string) (auth.GoogleProfile, error)
}

// UserService handles user auth logic.
type UserService struct {
	repo   repo.UserRepo
	google GoogleTokenVerifier
}

// NewUserService returns a new UserService. The verifier may be nil when
// Google sign-in is not configured.
func NewUserService(repo repo.UserRepo, google GoogleTokenVerifier) *UserService {
	return &UserService{repo: repo, google: google}
}

// ValidateCredentials checks email and password; returns user if valid.
func (s *UserService) ValidateCredentials(ctx context.Context, email, password string) (dom.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if u.PasswordHash == "" {
		// Google-only account: password login is not available.
		return dom.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Register creates a new user with hashed password.
func (s *UserService) Register(ctx context.Context, email, password string) (dom.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, email, string(hash))
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrEmailTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// GoogleSignIn verifies the id token and finds or creates the matching user.
func (s *UserService) GoogleSignIn(ctx context.Context, idToken string) (dom.User, error) {
	if s.google == nil {
		return dom.User{}, auth.ErrInvalidIDToken
	}
	profile, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return dom.User{}, err
	}

	u, err := s.repo.GetByGoogleSub(ctx, profile.Subject)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return dom.User{}, err
	}

	u, err = s.repo.CreateFromGoogle(ctx, normalizeEmail(profile.Email), profile.Subject)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			// The email already has a password account; sign-in methods are
			// not merged.
			return dom.User{}, ErrEmailTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
