package service

import (
	"context"
	"errors"
	"fmt"

	"expense_api/internal/model"
	"expense_api/internal/repository"
	"expense_api/internal/utils"
)

var (
	ErrUserAlreadyExists = errors.New("username already exists")
	ErrWrongUsername     = errors.New("wrong username")
	ErrWrongPassword     = errors.New("wrong password")
	ErrHashFailure       = errors.New("password hashing failed")
	ErrPasswordCheck     = errors.New("password check failed")
)

// AuthService provides registration, login and the hash preview.
//
// Login does not issue a session or token: the returned user id is what
// callers pass back as their owner id, and nothing verifies they hold it.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, error)
	HashPreview(raw string) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   utils.PasswordHasher
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, hasher utils.PasswordHasher) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// Register hashes the password and stores a new user. A taken username is
// reported by the store's unique constraint, not by a lookup beforehand.
func (s *authService) Register(ctx context.Context, username, password string) (*model.User, error) {
	hashedPassword, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHashFailure, err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	return user, nil
}

// Login checks the credentials. Anything other than exactly one matching
// row is treated as an unknown username.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, error) {
	users, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error finding user by username: %w", err)
	}
	if len(users) != 1 {
		return nil, ErrWrongUsername
	}
	user := users[0]

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPasswordCheck, err)
	}
	if !ok {
		return nil, ErrWrongPassword
	}
	return &user, nil
}

// HashPreview hashes raw the same way Register does. Debugging aid only.
func (s *authService) HashPreview(raw string) (string, error) {
	hashed, err := s.hasher.Hash(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashFailure, err)
	}
	return hashed, nil
}
