package tip

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SafetyTip is shared reference content; its insertion is broadcast to every
// live subscriber regardless of identity.
type SafetyTip struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (SafetyTip) TableName() string {
	return "safety_tips"
}

func (t *SafetyTip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return t.Validate()
}

func (t *SafetyTip) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("title is required")
	}
	if t.Content == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}
