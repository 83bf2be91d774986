package mem

import (
	"sync"
	"time"

	"nomadtrip/internal/models/request_models"
	"nomadtrip/internal/models/response_models"
	"nomadtrip/pkg/utils"
)

type Stage string

const (
	StageFlight   Stage = "flight"
	StageHotel    Stage = "hotel"
	StageActivity Stage = "activity"
	StageDone     Stage = "done"
)

// PlanSession is the session-context object owning one planning run: the
// submitted request, the generated option set, the accumulating selection and
// the assistant transcript. The option set is immutable once attached; a new
// generation produces a new session.
type PlanSession struct {
	ID        string
	UserID    string
	Request   request_models.TripPlanRequest
	Options   response_models.TripOptions
	Selection response_models.TripSelection
	Stage     Stage
	Messages  []response_models.ChatMessage
	CreatedAt time.Time
}

type PlanSessionStore interface {
	Put(s *PlanSession)

	// Update runs fn with the session under the store lock so concurrent
	// requests against one session serialize. Returns ErrSessionNotFound
	// for unknown or expired ids.
	Update(id string, fn func(*PlanSession) error) error

	// View is Update for read-only callers.
	View(id string, fn func(*PlanSession) error) error
}

type sessionEntry struct {
	session   *PlanSession
	expiresAt time.Time
}

type PlanSessions struct {
	mu   sync.Mutex
	ttl  time.Duration
	data map[string]*sessionEntry
}

func NewPlanSessions(ttl time.Duration) *PlanSessions {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &PlanSessions{
		ttl:  ttl,
		data: make(map[string]*sessionEntry),
	}
}

func (s *PlanSessions) Put(session *PlanSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = &sessionEntry{
		session:   session,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.evictExpiredLocked()
}

func (s *PlanSessions) Update(id string, fn func(*PlanSession) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return utils.ErrSessionNotFound
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id)
		return utils.ErrSessionNotFound
	}
	e.expiresAt = time.Now().Add(s.ttl)
	return fn(e.session)
}

func (s *PlanSessions) View(id string, fn func(*PlanSession) error) error {
	return s.Update(id, fn)
}

// evictExpiredLocked runs under the store lock on every Put. The walk is a
// handful of map entries at realistic session counts, so expired sessions
// never outlive the next insertion.
func (s *PlanSessions) evictExpiredLocked() {
	now := time.Now()
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, id)
		}
	}
}
