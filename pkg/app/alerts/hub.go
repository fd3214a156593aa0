package alerts

import (
	"sync"

	"github.com/digitalshield/shield/pkg/infra/cache/event"
	"github.com/digitalshield/shield/pkg/infra/metrics"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HighSeverityThreshold is the fixed score at which a persisted analysis
// triggers an owner-scoped alert. The moderation review queue uses its own,
// independently configured threshold.
const HighSeverityThreshold = 70

const subscriptionBuffer = 16

type EventKind string

const (
	KindHighSeverityAlert EventKind = "high_severity_alert"
	KindNewSafetyTip      EventKind = "new_safety_tip"
)

// AlertEvent is ephemeral; it is delivered at most once per live subscription
// per emission and never persisted.
type AlertEvent struct {
	Kind     EventKind `json:"kind"`
	RecordID uuid.UUID `json:"record_id,omitempty"`
	Score    int       `json:"score,omitempty"`
	Title    string    `json:"title,omitempty"`
}

// Subscription is one live delivery channel scoped to an owner. Unsubscribe
// is idempotent and must be called on every exit path; it closes the channel
// and releases the registry entry.
type Subscription struct {
	id      uuid.UUID
	ownerID uuid.UUID
	ch      chan AlertEvent
	hub     *Hub
	once    sync.Once
}

func (s *Subscription) C() <-chan AlertEvent {
	return s.ch
}

func (s *Subscription) OwnerID() uuid.UUID {
	return s.ownerID
}

func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		s.hub.detachLocked(s)
	})
}

// Hub is the subscription registry: the only shared mutable state in the
// pipeline. Entries are append/remove-only per subscriber; no subscriber can
// touch another's entry.
type Hub struct {
	logger *logrus.Logger
	mu     sync.Mutex
	subs   map[uuid.UUID]map[uuid.UUID]*Subscription
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		logger: logger,
		subs:   make(map[uuid.UUID]map[uuid.UUID]*Subscription),
	}
}

func (h *Hub) Subscribe(ownerID uuid.UUID) *Subscription {
	sub := &Subscription{
		id:      uuid.New(),
		ownerID: ownerID,
		ch:      make(chan AlertEvent, subscriptionBuffer),
		hub:     h,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	owned, ok := h.subs[ownerID]
	if !ok {
		owned = make(map[uuid.UUID]*Subscription)
		h.subs[ownerID] = owned
	}
	owned[sub.id] = sub

	metrics.ActiveSubscriptions.Inc()
	h.logger.WithFields(logrus.Fields{
		"owner_id":        ownerID,
		"subscription_id": sub.id,
	}).Debug("alert subscriber attached")

	return sub
}

// detachLocked removes the subscription and closes its channel. Callers must
// hold h.mu and must route through sub.once so the channel closes only once.
func (h *Hub) detachLocked(sub *Subscription) {
	owned, ok := h.subs[sub.ownerID]
	if !ok {
		return
	}
	if _, ok := owned[sub.id]; !ok {
		return
	}
	delete(owned, sub.id)
	if len(owned) == 0 {
		delete(h.subs, sub.ownerID)
	}
	close(sub.ch)

	metrics.ActiveSubscriptions.Dec()
	h.logger.WithField("subscription_id", sub.id).Debug("alert subscriber detached")
}

// NotifyAnalysisSaved fans a persisted-analysis event out to the record
// owner's live subscriptions when the score crosses the alert threshold.
func (h *Hub) NotifyAnalysisSaved(ev event.AnalysisSavedEvent) {
	if ev.Score < HighSeverityThreshold {
		return
	}

	alert := AlertEvent{
		Kind:     KindHighSeverityAlert,
		RecordID: ev.RecordID,
		Score:    ev.Score,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sub := range h.subs[ev.OwnerID] {
		h.deliver(sub, alert)
	}
}

// NotifySafetyTipCreated broadcasts new reference content to every live
// subscription regardless of owner.
func (h *Hub) NotifySafetyTipCreated(ev event.SafetyTipCreatedEvent) {
	alert := AlertEvent{
		Kind:  KindNewSafetyTip,
		Title: ev.Title,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, owned := range h.subs {
		for _, sub := range owned {
			h.deliver(sub, alert)
		}
	}
}

func (h *Hub) deliver(sub *Subscription, alert AlertEvent) {
	select {
	case sub.ch <- alert:
		metrics.AlertsEmittedTotal.WithLabelValues(string(alert.Kind)).Inc()
	default:
		// A subscriber that stopped draining is cut loose instead of being fed
		// a silently gapped stream; the closed channel tells it that it lagged.
		h.logger.WithFields(logrus.Fields{
			"subscription_id": sub.id,
			"kind":            alert.Kind,
		}).Warn("closing lagging alert subscription")
		sub.once.Do(func() {
			h.detachLocked(sub)
		})
	}
}
