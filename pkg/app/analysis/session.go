package analysis

import (
	"sync"
	"time"

	domainAnalysis "github.com/digitalshield/shield/pkg/domain/analysis"
	"github.com/google/uuid"
)

type State string

const (
	StateSubmitted State = "submitted"
	StateVerdicted State = "verdicted"
	StatePersisted State = "persisted"
	StateErrored   State = "errored"
	StateDisposed  State = "disposed"
)

// Session tracks one analysis request through its stages. The verdict stage
// must complete before either derived-generation stage can run; the two
// derived stages are unordered relative to each other. The session lock is
// never held across a network call.
type Session struct {
	mu        sync.Mutex
	id        uuid.UUID
	modelID   string
	text      string
	state     State
	verdict   *domainAnalysis.Verdict
	safer     string
	advice    string
	createdAt time.Time
}

func newSession(text, modelID string) *Session {
	return &Session{
		id:        uuid.New(),
		modelID:   modelID,
		text:      text,
		state:     StateSubmitted,
		createdAt: time.Now(),
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Snapshot is an immutable view of the session for handlers.
type Snapshot struct {
	ID           uuid.UUID               `json:"session_id"`
	ModelID      string                  `json:"model_id"`
	Text         string                  `json:"-"`
	State        State                   `json:"state"`
	Verdict      *domainAnalysis.Verdict `json:"verdict,omitempty"`
	SaferVersion string                  `json:"safer_version,omitempty"`
	Advice       string                  `json:"advice,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:           s.id,
		ModelID:      s.modelID,
		Text:         s.text,
		State:        s.state,
		Verdict:      s.verdict,
		SaferVersion: s.safer,
		Advice:       s.advice,
	}
}

func (s *Session) disposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateDisposed
}

// hasVerdict reports whether stage 1 completed for this session.
func (s *Session) hasVerdict() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verdict != nil && s.state != StateDisposed
}
