package event

import "github.com/google/uuid"

// SafetyTipCreatedEvent is emitted when new shared reference content lands.
type SafetyTipCreatedEvent struct {
	TipID uuid.UUID `json:"tip_id"`
	Title string    `json:"title"`
}

func (e SafetyTipCreatedEvent) Type() string {
	return SafetyTipCreatedEventType
}
