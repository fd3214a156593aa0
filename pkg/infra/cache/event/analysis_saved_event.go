package event

import "github.com/google/uuid"

// AnalysisSavedEvent is emitted once per persisted analysis record.
type AnalysisSavedEvent struct {
	RecordID uuid.UUID `json:"record_id"`
	OwnerID  uuid.UUID `json:"owner_id"`
	Score    int       `json:"score"`
}

func (e AnalysisSavedEvent) Type() string {
	return AnalysisSavedEventType
}
