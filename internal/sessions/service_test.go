package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/studium/internal/store"
)

type fakeSessionRepo struct {
	sessions map[int]*store.Session
	nextID   int
	starts   []store.SessionStartInput
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[int]*store.Session), nextID: 1}
}

func (r *fakeSessionRepo) Start(ctx context.Context, in store.SessionStartInput) (*store.Session, error) {
	r.starts = append(r.starts, in)
	for _, s := range r.sessions {
		if s.UserID == in.UserID && s.SessionEnd == nil {
			now := time.Now()
			s.SessionEnd = &now
		}
	}
	s := &store.Session{
		ID:           r.nextID,
		UserID:       in.UserID,
		SessionStart: time.Now(),
		CourseID:     in.CourseID,
		SubjectID:    in.SubjectID,
		ChapterID:    in.ChapterID,
	}
	r.nextID++
	r.sessions[s.ID] = s
	return s, nil
}

func (r *fakeSessionRepo) Get(ctx context.Context, id int) (*store.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return s, nil
}

func (r *fakeSessionRepo) Active(ctx context.Context, userID string) (*store.Session, error) {
	for _, s := range r.sessions {
		if s.UserID == userID && s.SessionEnd == nil {
			return s, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *fakeSessionRepo) AppendActivity(ctx context.Context, id int, a store.Activity) (*store.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	s.Activities = append(s.Activities, a)
	switch a.Type {
	case "question_asked":
		s.QuestionsAsked++
	case "bookmark_created":
		s.BookmarksCreated++
	case "quiz_completed":
		s.QuizzesCompleted++
	}
	return s, nil
}

func (r *fakeSessionRepo) End(ctx context.Context, id, durationMinutes int, engagement, focus, effectiveness float64) (*store.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	now := time.Now()
	s.SessionEnd = &now
	s.DurationMinutes = &durationMinutes
	s.EngagementScore = engagement
	s.FocusScore = focus
	s.LearningEffectiveness = effectiveness
	return s, nil
}

func (r *fakeSessionRepo) RecentByUser(ctx context.Context, userID string, limit int) ([]*store.Session, error) {
	var out []*store.Session
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func intp(v int) *int { return &v }

func TestStartClosesPreviousSession(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	first, err := svc.Start(ctx, store.SessionStartInput{UserID: "u1", CourseID: intp(1)})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	second, err := svc.Start(ctx, store.SessionStartInput{UserID: "u1", ChapterID: intp(7)})
	if err != nil {
		t.Fatalf("start second: %v", err)
	}

	if repo.sessions[first.ID].SessionEnd == nil {
		t.Error("first session should be closed when a new one starts")
	}
	active, err := svc.Active(ctx, "u1")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if active.ID != second.ID {
		t.Errorf("active session = %d, want %d", active.ID, second.ID)
	}
}

func TestActiveNoSession(t *testing.T) {
	svc := NewService(newFakeSessionRepo(), nil)
	if _, err := svc.Active(context.Background(), "nobody"); err != ErrNoActiveSession {
		t.Errorf("err = %v, want ErrNoActiveSession", err)
	}
}

func TestLogActivity(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	s, err := svc.Start(ctx, store.SessionStartInput{UserID: "u1"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	svc.LogActivity(ctx, "u1", "question_asked", map[string]any{"chapter_id": 3})
	svc.LogActivity(ctx, "u1", "bookmark_created", nil)
	svc.LogActivity(ctx, "u1", "quiz_completed", map[string]any{"score": 80})

	got := repo.sessions[s.ID]
	if len(got.Activities) != 3 {
		t.Fatalf("activities = %d, want 3", len(got.Activities))
	}
	if got.QuestionsAsked != 1 || got.BookmarksCreated != 1 || got.QuizzesCompleted != 1 {
		t.Errorf("counters = %d/%d/%d, want 1/1/1",
			got.QuestionsAsked, got.BookmarksCreated, got.QuizzesCompleted)
	}
	if got.Activities[0].Details["chapter_id"] != 3 {
		t.Errorf("details not recorded: %v", got.Activities[0].Details)
	}
	if got.Activities[0].Timestamp.IsZero() {
		t.Error("activity timestamp not set")
	}
}

func TestLogActivityWithoutSessionIsSilent(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewService(repo, nil)

	// Must not panic or create anything.
	svc.LogActivity(context.Background(), "ghost", "question_asked", nil)
	if len(repo.sessions) != 0 {
		t.Errorf("sessions created = %d, want 0", len(repo.sessions))
	}
}

func TestEndComputesEngagement(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	s, err := svc.Start(ctx, store.SessionStartInput{UserID: "u1"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	// Backdate the start so the computed duration is meaningful.
	repo.sessions[s.ID].SessionStart = time.Now().Add(-25 * time.Minute)
	for i := 0; i < 4; i++ {
		svc.LogActivity(ctx, "u1", "question_asked", nil)
	}

	closed, err := svc.End(ctx, "u1")
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if closed.DurationMinutes == nil || *closed.DurationMinutes != 25 {
		t.Errorf("duration = %v, want 25", closed.DurationMinutes)
	}
	if closed.EngagementScore != 40 {
		t.Errorf("engagement = %v, want 40", closed.EngagementScore)
	}
	if closed.FocusScore != 0 || closed.LearningEffectiveness != 0 {
		t.Errorf("focus/effectiveness = %v/%v, want 0/0",
			closed.FocusScore, closed.LearningEffectiveness)
	}

	if _, err := svc.End(ctx, "u1"); err != ErrNoActiveSession {
		t.Errorf("second end err = %v, want ErrNoActiveSession", err)
	}
}

func TestEngagementScoreCap(t *testing.T) {
	cases := []struct {
		activities int
		want       float64
	}{
		{0, 0},
		{3, 30},
		{10, 100},
		{15, 100},
	}
	for _, c := range cases {
		if got := EngagementScore(c.activities); got != c.want {
			t.Errorf("EngagementScore(%d) = %v, want %v", c.activities, got, c.want)
		}
	}
}
