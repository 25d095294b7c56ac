package service

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"simpleblog/internal/models"
	"simpleblog/internal/repository"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password so that login failures never reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid username/password")

const (
	maxUsernameLength = 10
	minPasswordLength = 7
)

type AuthService interface {
	Register(username, password string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
}

type authService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func NewAuthService(users repository.UserRepository, logger *zap.Logger) AuthService {
	return &authService{users: users, logger: logger}
}

// Register validates the credentials, hashes the password and stores the
// new user. All validation failures are accumulated and returned together
// as ValidationErrors.
func (s *authService) Register(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	var errs ValidationErrors
	if username == "" {
		errs = append(errs, "you must provide a username")
	}
	if len(username) > maxUsernameLength {
		errs = append(errs, "username cannot exceed 10 characters")
	}
	if len(password) < minPasswordLength {
		errs = append(errs, "password must be at least 7 characters")
	}
	if username != "" {
		if _, err := s.users.GetByUsername(username); err == nil {
			errs = append(errs, "that username is already taken")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Username: username, PasswordHash: string(hash)}
	if err := s.users.Create(user); err != nil {
		// A concurrent registration can still win the unique index race.
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, ValidationErrors{"that username is already taken"}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}

// Authenticate checks the credentials against the stored hash. Unknown
// usernames and wrong passwords both map to ErrInvalidCredentials.
func (s *authService) Authenticate(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	var errs ValidationErrors
	if username == "" {
		errs = append(errs, "invalid username")
	}
	if strings.TrimSpace(password) == "" {
		errs = append(errs, "invalid password")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("User logged in", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}
