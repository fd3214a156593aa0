package repository

import (
	"context"
	"fmt"

	"github.com/digitalshield/shield/pkg/domain/tip"
	"gorm.io/gorm"
)

type SafetyTipRepository struct {
	db *gorm.DB
}

func NewSafetyTipRepository(db *gorm.DB) tip.Repository {
	return &SafetyTipRepository{db: db}
}

func (r *SafetyTipRepository) Create(ctx context.Context, entity *tip.SafetyTip) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("safety tip: %w", err)
	}
	return nil
}

func (r *SafetyTipRepository) List(ctx context.Context) ([]tip.SafetyTip, error) {
	var tips []tip.SafetyTip
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tips).Error; err != nil {
		return nil, fmt.Errorf("safety tips: %w", err)
	}
	return tips, nil
}
