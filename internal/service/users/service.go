package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
	"github.com/mamadbah2/dairyfarm/internal/repository"
)

var (
	// ErrEmailExists indicates an account is already registered with the email.
	ErrEmailExists = errors.New("email already exists")
	// ErrUserNotFound indicates no account matches the email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPassword indicates the supplied password does not match.
	ErrInvalidPassword = errors.New("invalid password")
)

// Service implements signup and login for farm accounts.
type Service struct {
	repo   repository.UserRepository
	logger *zap.Logger
	cost   int
}

// NewService wires a new user service instance.
func NewService(repo repository.UserRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger, cost: bcrypt.DefaultCost}
}

// Register stores a new account. Passwords are stored as bcrypt hashes.
func (s *Service) Register(ctx context.Context, profile models.User) error {
	profile.Email = strings.TrimSpace(profile.Email)

	_, err := s.repo.FindUserByEmail(ctx, profile.Email)
	switch {
	case err == nil:
		return ErrEmailExists
	case !errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(profile.Password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	profile.Password = string(hash)
	profile.ID = primitive.NilObjectID

	if err := s.repo.CreateUser(ctx, &profile); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user signed up", zap.String("user_id", profile.ID.Hex()))
	return nil
}

// Authenticate returns the stored account when email and password match.
// The returned record never carries the password hash.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.FindUserByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	user.Password = ""
	return user, nil
}
