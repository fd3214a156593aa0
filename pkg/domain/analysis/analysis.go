package analysis

import (
	"fmt"
	"time"

	"github.com/digitalshield/shield/pkg/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalysisRecord is the durable result of one analysis: the submitted text,
// its verdict, and whichever derived artifacts existed when the owner chose
// to save. Immutable after creation except for deletion by its owner.
type AnalysisRecord struct {
	ID               uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID          uuid.UUID          `json:"owner_id" gorm:"type:uuid;not null;index:idx_analysis_owner"`
	OriginalText     string             `json:"original_text" gorm:"not null"`
	ToxicityScore    int                `json:"toxicity_score" gorm:"not null;index:idx_analysis_score"`
	Categories       domain.StringsJSON `json:"categories" gorm:"type:jsonb"`
	HighlightedWords domain.StringsJSON `json:"highlighted_words" gorm:"type:jsonb"`
	Explanation      string             `json:"explanation,omitempty"`
	SaferVersion     string             `json:"safer_version,omitempty"`
	Advice           string             `json:"advice,omitempty"`
	ModelUsed        string             `json:"model_used"`
	CreatedAt        time.Time          `json:"created_at"`
}

func (AnalysisRecord) TableName() string {
	return "message_analysis"
}

func (r *AnalysisRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return r.Validate()
}

func (r *AnalysisRecord) Validate() error {
	if r.OwnerID == uuid.Nil {
		return fmt.Errorf("owner_id is required")
	}
	if r.OriginalText == "" {
		return fmt.Errorf("original_text is required")
	}
	if r.ToxicityScore < 0 || r.ToxicityScore > 100 {
		return fmt.Errorf("toxicity_score must be within [0,100]")
	}
	return nil
}

// Severity derives the record's band from its stored score.
func (r *AnalysisRecord) Severity() Severity {
	return SeverityForScore(r.ToxicityScore)
}
