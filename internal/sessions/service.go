// Package sessions tracks study sessions for learning analytics. A user
// has at most one active session; opening a new scope (course, subject,
// or chapter view) closes the previous session and starts a fresh one.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/studium/internal/logger"
	"github.com/abhisek/studium/internal/store"
)

// ErrNoActiveSession is returned when an operation needs a running
// session and none exists.
var ErrNoActiveSession = errors.New("no active study session")

// Service manages study-session lifecycle and activity logging.
type Service struct {
	repo store.SessionRepo
	log  *logger.Logger

	mu    sync.Mutex
	users map[string]*sync.Mutex
}

// NewService creates the session tracker.
func NewService(repo store.SessionRepo, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:  repo,
		log:   log,
		users: make(map[string]*sync.Mutex),
	}
}

// userLock serializes session transitions per user so two concurrent
// page loads cannot leave two sessions open.
func (s *Service) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.users[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.users[userID] = lock
	}
	return lock
}

// Start opens a new session scoped to the given course, subject, and
// chapter, closing any session the user still has open.
func (s *Service) Start(ctx context.Context, in store.SessionStartInput) (*store.Session, error) {
	lock := s.userLock(in.UserID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.repo.Start(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("start study session: %w", err)
	}
	return session, nil
}

// Active returns the user's currently open session.
func (s *Service) Active(ctx context.Context, userID string) (*store.Session, error) {
	session, err := s.repo.Active(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("load active session: %w", err)
	}
	return session, nil
}

// LogActivity appends an activity to the user's active session. Missing
// sessions are tolerated: analytics never block the main flow.
func (s *Service) LogActivity(ctx context.Context, userID, activityType string, details map[string]any) {
	session, err := s.Active(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNoActiveSession) {
			s.log.Warn("load active session for activity log failed", "user_id", userID, "error", err)
		}
		return
	}

	_, err = s.repo.AppendActivity(ctx, session.ID, store.Activity{
		Type:      activityType,
		Timestamp: time.Now().UTC(),
		Details:   details,
	})
	if err != nil {
		s.log.Warn("append session activity failed", "session_id", session.ID, "type", activityType, "error", err)
	}
}

// End closes the user's active session and scores it. Engagement grows
// with logged activity, capped at 100.
func (s *Service) End(ctx context.Context, userID string) (*store.Session, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.Active(ctx, userID)
	if err != nil {
		return nil, err
	}

	duration := int(time.Since(session.SessionStart).Minutes())
	if duration < 0 {
		duration = 0
	}
	engagement := EngagementScore(len(session.Activities))

	closed, err := s.repo.End(ctx, session.ID, duration, engagement, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("end study session: %w", err)
	}
	return closed, nil
}

// Recent returns the user's latest sessions, newest first.
func (s *Service) Recent(ctx context.Context, userID string, limit int) ([]*store.Session, error) {
	sessions, err := s.repo.RecentByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent sessions: %w", err)
	}
	return sessions, nil
}

// EngagementScore maps an activity count to a 0-100 engagement metric.
func EngagementScore(activityCount int) float64 {
	score := float64(activityCount * 10)
	if score > 100 {
		return 100
	}
	return score
}
