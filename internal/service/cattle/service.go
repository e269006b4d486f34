package cattle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
	"github.com/mamadbah2/dairyfarm/internal/repository"
)

// ErrMissingFields indicates name, age, breed or gender was not supplied.
var ErrMissingFields = errors.New("required fields are missing")

// Service manages the herd registry.
type Service struct {
	repo   repository.CattleRepository
	logger *zap.Logger
}

// NewService wires a new cattle service instance.
func NewService(repo repository.CattleRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// List returns every registered animal.
func (s *Service) List(ctx context.Context) ([]models.Cattle, error) {
	cattle, err := s.repo.ListCattle(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cattle: %w", err)
	}
	return cattle, nil
}

// Register validates and stores a new animal.
func (s *Service) Register(ctx context.Context, record models.Cattle) (*models.Cattle, error) {
	for _, field := range []string{record.Name, record.Age, record.Breed, record.Gender} {
		if strings.TrimSpace(field) == "" {
			return nil, ErrMissingFields
		}
	}

	record.ID = primitive.NilObjectID
	if err := s.repo.CreateCattle(ctx, &record); err != nil {
		return nil, fmt.Errorf("register cattle: %w", err)
	}

	s.logger.Debug("cattle registered", zap.String("cattle_id", record.ID.Hex()), zap.String("name", record.Name))
	return &record, nil
}
