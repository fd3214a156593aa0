package analysis

import (
	"context"
	"strings"
	"sync"

	"github.com/digitalshield/shield/pkg/analyzer"
	"github.com/digitalshield/shield/pkg/app/completion"
	"github.com/digitalshield/shield/pkg/domain"
	domainAnalysis "github.com/digitalshield/shield/pkg/domain/analysis"
	"github.com/digitalshield/shield/pkg/infra/cache"
	"github.com/digitalshield/shield/pkg/infra/cache/channel"
	"github.com/digitalshield/shield/pkg/infra/cache/event"
	"github.com/digitalshield/shield/pkg/infra/metrics"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Pipeline drives analysis requests through the verdict stage, the optional
// derived-generation stages and caller-initiated persistence. Requests are
// independent; the session registry is the only state shared between them.
type Pipeline struct {
	logger        *logrus.Logger
	gateway       completion.Gateway
	parser        *analyzer.Parser
	repo          domainAnalysis.Repository
	publisher     cache.EventPublisher
	maxTextLength int

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewPipeline(
	logger *logrus.Logger,
	gateway completion.Gateway,
	parser *analyzer.Parser,
	repo domainAnalysis.Repository,
	publisher cache.EventPublisher,
	maxTextLength int,
) *Pipeline {
	return &Pipeline{
		logger:        logger,
		gateway:       gateway,
		parser:        parser,
		repo:          repo,
		publisher:     publisher,
		maxTextLength: maxTextLength,
		sessions:      make(map[uuid.UUID]*Session),
	}
}

// Analyze runs the mandatory verdict stage. Validation failures never reach
// the model backend; a stage failure aborts the request without exposing a
// partial verdict. Stage-1 failures are not retried here; the caller decides.
func (p *Pipeline) Analyze(ctx context.Context, text, modelID string) (Snapshot, error) {
	if strings.TrimSpace(text) == "" {
		metrics.AnalysesTotal.WithLabelValues("invalid_input").Inc()
		return Snapshot{}, domain.NewInvalidInputError("text is required")
	}
	if len(text) > p.maxTextLength {
		metrics.AnalysesTotal.WithLabelValues("invalid_input").Inc()
		return Snapshot{}, domain.NewInvalidInputError("text exceeds the maximum length")
	}

	session := newSession(text, modelID)
	p.mu.Lock()
	p.sessions[session.id] = session
	p.mu.Unlock()

	resp, err := p.gateway.Complete(ctx, modelID, toxicitySystemPrompt, toxicityUserPrompt(text))
	if err != nil {
		p.failSession(session)
		metrics.AnalysesTotal.WithLabelValues("gateway_error").Inc()
		return Snapshot{}, err
	}

	verdict, err := p.parser.Parse(resp.Response)
	if err != nil {
		p.failSession(session)
		metrics.AnalysesTotal.WithLabelValues("malformed_verdict").Inc()
		p.logger.WithError(err).WithField("model", modelID).Error("model returned an unusable verdict")
		return Snapshot{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.state == StateDisposed {
		return Snapshot{}, domain.NewPreconditionFailedError("session was disposed")
	}
	session.verdict = verdict
	session.state = StateVerdicted

	metrics.AnalysesTotal.WithLabelValues("success").Inc()
	p.logger.WithFields(logrus.Fields{
		"session_id": session.id,
		"model":      modelID,
		"score":      verdict.Score,
		"severity":   verdict.Severity,
	}).Info("analysis verdict produced")

	return Snapshot{
		ID:      session.id,
		ModelID: session.modelID,
		State:   session.state,
		Verdict: session.verdict,
	}, nil
}

// GenerateSaferVersion produces a rewritten form of the analyzed text. It
// requires a completed verdict stage and runs independently of advice
// generation; a failure here never touches an existing advice result.
func (p *Pipeline) GenerateSaferVersion(ctx context.Context, sessionID uuid.UUID) (string, error) {
	session, err := p.verdictedSession(sessionID)
	if err != nil {
		return "", err
	}

	resp, err := p.gateway.Complete(ctx, session.modelID, saferVersionSystemPrompt, saferVersionUserPrompt(session.text))
	if err != nil {
		return "", err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.state == StateDisposed {
		// In-flight completion finished after disposal; the result is dropped.
		return "", domain.NewPreconditionFailedError("session was disposed")
	}
	session.safer = strings.TrimSpace(resp.Response)
	return session.safer, nil
}

// GenerateAdvice produces safety advice conditioned on the verdict's
// categories and severity.
func (p *Pipeline) GenerateAdvice(ctx context.Context, sessionID uuid.UUID) (string, error) {
	session, err := p.verdictedSession(sessionID)
	if err != nil {
		return "", err
	}

	snapshot := session.Snapshot()
	resp, err := p.gateway.Complete(
		ctx,
		session.modelID,
		adviceSystemPrompt(snapshot.Verdict.Categories),
		adviceUserPrompt(session.text, snapshot.Verdict.Severity),
	)
	if err != nil {
		return "", err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.state == StateDisposed {
		return "", domain.NewPreconditionFailedError("session was disposed")
	}
	session.advice = strings.TrimSpace(resp.Response)
	return session.advice, nil
}

// Save persists whichever subset of {verdict, rewrite, advice} the session
// holds and announces the insert. Nothing is persisted implicitly; repeated
// anonymous scans accumulate no storage.
func (p *Pipeline) Save(ctx context.Context, sessionID, ownerID uuid.UUID) (*domainAnalysis.AnalysisRecord, error) {
	if ownerID == uuid.Nil {
		return nil, domain.NewInvalidInputError("an owner identity is required to save")
	}

	session, err := p.verdictedSession(sessionID)
	if err != nil {
		return nil, err
	}

	snapshot := session.Snapshot()
	record := &domainAnalysis.AnalysisRecord{
		OwnerID:          ownerID,
		OriginalText:     snapshot.Text,
		ToxicityScore:    snapshot.Verdict.Score,
		Categories:       snapshot.Verdict.CategoryLabels(),
		HighlightedWords: snapshot.Verdict.HighlightedWords,
		Explanation:      snapshot.Verdict.Explanation,
		SaferVersion:     snapshot.SaferVersion,
		Advice:           snapshot.Advice,
		ModelUsed:        snapshot.ModelID,
	}

	if err := p.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	session.mu.Lock()
	session.state = StatePersisted
	session.mu.Unlock()

	ev := event.AnalysisSavedEvent{
		RecordID: record.ID,
		OwnerID:  record.OwnerID,
		Score:    record.ToxicityScore,
	}
	if err := p.publisher.Publish(ctx, channel.AnalysisEventsChannel, ev); err != nil {
		// The record is durable; only the realtime announcement was lost.
		p.logger.WithError(err).WithField("record_id", record.ID).Error("failed to publish analysis saved event")
	}

	return record, nil
}

// Dispose invalidates the session. In-flight completions are allowed to
// finish but their results are discarded; later stage calls fail with
// PreconditionFailed. Disposing an unknown session is a no-op.
func (p *Pipeline) Dispose(sessionID uuid.UUID) {
	p.mu.Lock()
	session, ok := p.sessions[sessionID]
	delete(p.sessions, sessionID)
	p.mu.Unlock()
	if !ok {
		return
	}

	session.mu.Lock()
	session.state = StateDisposed
	session.mu.Unlock()
}

func (p *Pipeline) Session(sessionID uuid.UUID) (Snapshot, bool) {
	p.mu.RLock()
	session, ok := p.sessions[sessionID]
	p.mu.RUnlock()
	if !ok {
		return Snapshot{}, false
	}
	return session.Snapshot(), true
}

func (p *Pipeline) verdictedSession(sessionID uuid.UUID) (*Session, error) {
	p.mu.RLock()
	session, ok := p.sessions[sessionID]
	p.mu.RUnlock()
	if !ok {
		return nil, domain.NewPreconditionFailedError("unknown analysis session")
	}
	if !session.hasVerdict() {
		return nil, domain.NewPreconditionFailedError("no verdict exists for this session")
	}
	return session, nil
}

// failSession marks the session errored and removes it from the registry.
// A failed Analyze never returns the session ID, so the entry would
// otherwise be unreachable and retained for the process lifetime.
func (p *Pipeline) failSession(session *Session) {
	session.mu.Lock()
	if session.state != StateDisposed {
		session.state = StateErrored
	}
	session.mu.Unlock()

	p.mu.Lock()
	delete(p.sessions, session.id)
	p.mu.Unlock()
}
