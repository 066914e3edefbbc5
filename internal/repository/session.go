// Package repository keeps the live questionnaire sessions. State lives in
// memory only: a session exists until it is reset or the process stops, and
// durable copies leave through the export endpoints.
package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Inphy521/Home-Economics/internal/models"
	"github.com/Inphy521/Home-Economics/internal/wizard"
)

// SubmissionState tracks the most recent upload attempt for one session.
type SubmissionState string

const (
	SubmissionIdle    SubmissionState = "idle"
	SubmissionPending SubmissionState = "pending"
	SubmissionSuccess SubmissionState = "success"
	SubmissionFailed  SubmissionState = "failed"
)

// SubmissionStatus is what the status indicator polls for.
type SubmissionStatus struct {
	State   SubmissionState `json:"state"`
	Message string          `json:"message,omitempty"`
	Final   bool            `json:"final"`
}

// Session is one student's in-flight questionnaire. Request goroutines, the
// upload goroutine and the reminder sweep all touch it, so everything mutable
// sits behind the session mutex: the wizard is reachable only through
// WithWizard, which holds the lock for the duration of fn.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	wiz        *wizard.Wizard
	submission SubmissionStatus
	reminded   bool
}

// WithWizard runs fn with the session lock held. All reads and writes of the
// wizard and its record go through here, including response serialization, so
// a concurrent gate never races a reader. fn must not call SetSubmission or
// MarkReminded; those take the same lock.
func (s *Session) WithWizard(fn func(*wizard.Wizard)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.wiz)
}

// SetSubmission records the latest upload state.
func (s *Session) SetSubmission(status SubmissionStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submission = status
}

// Submission returns the latest upload state.
func (s *Session) Submission() SubmissionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submission
}

// MarkReminded flags the session so the follow-up reminder fires once.
// It reports whether the flag was newly set.
func (s *Session) MarkReminded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reminded {
		return false
	}
	s.reminded = true
	return true
}

// Store holds all live sessions keyed by the cookie-bound session ID.
type Store struct {
	log    *zap.Logger
	points []models.PressurePoint

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore builds an empty session store. The pressure points seed every
// new wizard's quiz dataset.
func NewStore(log *zap.Logger, points []models.PressurePoint) *Store {
	return &Store{
		log:      log,
		points:   points,
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the session for id, creating a fresh one (and a fresh
// ID when none was supplied) on first contact.
func (s *Store) GetOrCreate(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if session, ok := s.sessions[id]; ok {
			return session
		}
	}
	if id == "" {
		id = uuid.NewString()
	}

	session := &Session{
		ID:         id,
		wiz:        wizard.New(s.log, s.points),
		CreatedAt:  time.Now().UTC(),
		submission: SubmissionStatus{State: SubmissionIdle},
	}
	s.sessions[id] = session
	s.log.Info("Session created", zap.String("sessionID", id))
	return session
}

// Reset discards a session's state and hands back a fresh one under the
// same ID, mirroring the start-over confirmation in the questionnaire.
func (s *Store) Reset(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &Session{
		ID:         id,
		wiz:        wizard.New(s.log, s.points),
		CreatedAt:  time.Now().UTC(),
		submission: SubmissionStatus{State: SubmissionIdle},
	}
	s.sessions[id] = session
	s.log.Info("Session reset", zap.String("sessionID", id))
	return session
}

// Range calls fn for every live session. Used by the follow-up reminder
// sweep.
func (s *Store) Range(fn func(*Session)) {
	s.mu.RLock()
	snapshot := make([]*Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		snapshot = append(snapshot, session)
	}
	s.mu.RUnlock()

	for _, session := range snapshot {
		fn(session)
	}
}
