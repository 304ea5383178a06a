package preassessment

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("pre-assessment not found")

type Repository interface {
	Create(ctx context.Context, p *PreAssessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*PreAssessment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByClient(ctx context.Context, clientID string, limit, offset int) ([]*PreAssessment, int, error)
}
