package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/studium/ent"
	"github.com/abhisek/studium/ent/schema"
	"github.com/abhisek/studium/ent/studysession"
)

// sessionRepo implements SessionRepo backed by ent.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Start(ctx context.Context, in SessionStartInput) (*Session, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	// Close any session the user left open before opening a new one.
	open, err := tx.StudySession.Query().
		Where(
			studysession.UserID(in.UserID),
			studysession.SessionEndIsNil(),
		).
		All(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("find open sessions: %w", err)
	}
	now := time.Now()
	for _, s := range open {
		minutes := int(now.Sub(s.SessionStart).Minutes())
		if minutes < 0 {
			minutes = 0
		}
		err := tx.StudySession.UpdateOneID(s.ID).
			SetSessionEnd(now).
			SetDurationMinutes(minutes).
			Exec(ctx)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("close session %d: %w", s.ID, err)
		}
	}

	s, err := tx.StudySession.Create().
		SetUserID(in.UserID).
		SetNillableCourseID(in.CourseID).
		SetNillableSubjectID(in.SubjectID).
		SetNillableChapterID(in.ChapterID).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("create session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit session start: %w", err)
	}
	return sessionFromEnt(s), nil
}

func (r *sessionRepo) Get(ctx context.Context, id int) (*Session, error) {
	s, err := r.client.StudySession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sessionFromEnt(s), nil
}

func (r *sessionRepo) Active(ctx context.Context, userID string) (*Session, error) {
	s, err := r.client.StudySession.Query().
		Where(
			studysession.UserID(userID),
			studysession.SessionEndIsNil(),
		).
		Order(ent.Desc(studysession.FieldSessionStart)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("active session for %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("find active session: %w", err)
	}
	return sessionFromEnt(s), nil
}

func (r *sessionRepo) AppendActivity(ctx context.Context, id int, a Activity) (*Session, error) {
	s, err := r.client.StudySession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	activities := append(s.Activities, schema.Activity(a))
	upd := r.client.StudySession.UpdateOneID(id).
		SetActivities(activities)
	switch a.Type {
	case "question_asked":
		upd = upd.AddQuestionsAsked(1)
	case "bookmark_created":
		upd = upd.AddBookmarksCreated(1)
	case "quiz_completed":
		upd = upd.AddQuizzesCompleted(1)
	}
	s, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append activity: %w", err)
	}
	return sessionFromEnt(s), nil
}

func (r *sessionRepo) End(ctx context.Context, id, durationMinutes int, engagement, focus, effectiveness float64) (*Session, error) {
	s, err := r.client.StudySession.UpdateOneID(id).
		SetSessionEnd(time.Now()).
		SetDurationMinutes(durationMinutes).
		SetEngagementScore(engagement).
		SetFocusScore(focus).
		SetLearningEffectiveness(effectiveness).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("end session: %w", err)
	}
	return sessionFromEnt(s), nil
}

func (r *sessionRepo) RecentByUser(ctx context.Context, userID string, limit int) ([]*Session, error) {
	q := r.client.StudySession.Query().
		Where(studysession.UserID(userID)).
		Order(ent.Desc(studysession.FieldSessionStart))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent sessions: %w", err)
	}
	out := make([]*Session, len(rows))
	for i, s := range rows {
		out[i] = sessionFromEnt(s)
	}
	return out, nil
}

func sessionFromEnt(s *ent.StudySession) *Session {
	activities := make([]Activity, len(s.Activities))
	for i, a := range s.Activities {
		activities[i] = Activity(a)
	}
	return &Session{
		ID:                    s.ID,
		UserID:                s.UserID,
		SessionStart:          s.SessionStart,
		SessionEnd:            s.SessionEnd,
		DurationMinutes:       s.DurationMinutes,
		CourseID:              s.CourseID,
		SubjectID:             s.SubjectID,
		ChapterID:             s.ChapterID,
		Activities:            activities,
		ConceptsStudied:       s.ConceptsStudied,
		EngagementScore:       s.EngagementScore,
		FocusScore:            s.FocusScore,
		LearningEffectiveness: s.LearningEffectiveness,
		QuestionsAsked:        s.QuestionsAsked,
		BookmarksCreated:      s.BookmarksCreated,
		QuizzesCompleted:      s.QuizzesCompleted,
	}
}
