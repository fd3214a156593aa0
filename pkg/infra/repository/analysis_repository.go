package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/digitalshield/shield/pkg/domain"
	"github.com/digitalshield/shield/pkg/domain/analysis"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnalysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) analysis.Repository {
	return &AnalysisRepository{db: db}
}

func (r *AnalysisRepository) Save(ctx context.Context, record *analysis.AnalysisRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("analysis record: %w", err)
	}
	return nil
}

// Delete removes a record only when the requesting identity owns it. A
// mismatch surfaces as NotOwner, never as a silent no-op.
func (r *AnalysisRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	var record analysis.AnalysisRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFoundError("analysis record", id)
		}
		return fmt.Errorf("analysis record: %w", err)
	}
	if record.OwnerID != ownerID {
		return domain.NewNotOwnerError(id)
	}
	if err := r.db.WithContext(ctx).Delete(&analysis.AnalysisRecord{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("analysis record: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's records newest first; ties resolve in
// insertion order.
func (r *AnalysisRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]analysis.AnalysisRecord, error) {
	var records []analysis.AnalysisRecord
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("analysis records: %w", err)
	}
	return records, nil
}

func (r *AnalysisRepository) ListFlagged(ctx context.Context, minScore int) ([]analysis.AnalysisRecord, error) {
	var records []analysis.AnalysisRecord
	err := r.db.WithContext(ctx).
		Where("toxicity_score >= ?", minScore).
		Order("toxicity_score DESC, created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("flagged analysis records: %w", err)
	}
	return records, nil
}
