package analysis

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=repository_mock.go --case=underscore

type Repository interface {
	Save(ctx context.Context, record *AnalysisRecord) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]AnalysisRecord, error)
	ListFlagged(ctx context.Context, minScore int) ([]AnalysisRecord, error)
}
