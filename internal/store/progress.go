package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/studium/ent"
	"github.com/abhisek/studium/ent/subject"
	"github.com/abhisek/studium/ent/userprogress"
)

// progressRepo implements ProgressRepo backed by ent.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) GetOrCreate(ctx context.Context, userID string, subjectID int, chapterID *int, initialStatus string) (*ProgressEntry, bool, error) {
	q := r.client.UserProgress.Query().
		Where(
			userprogress.UserID(userID),
			userprogress.SubjectID(subjectID),
		)
	if chapterID == nil {
		q = q.Where(userprogress.ChapterIDIsNil())
	} else {
		q = q.Where(userprogress.ChapterID(*chapterID))
	}

	p, err := q.Only(ctx)
	if err == nil {
		return progressFromEnt(p), false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("get progress: %w", err)
	}

	p, err = r.client.UserProgress.Create().
		SetUserID(userID).
		SetSubjectID(subjectID).
		SetNillableChapterID(chapterID).
		SetStatus(initialStatus).
		Save(ctx)
	if err != nil {
		// Lost a race with a concurrent insert; read the winner.
		if ent.IsConstraintError(err) {
			p, qerr := q.Only(ctx)
			if qerr != nil {
				return nil, false, fmt.Errorf("get progress after conflict: %w", qerr)
			}
			return progressFromEnt(p), false, nil
		}
		return nil, false, fmt.Errorf("create progress: %w", err)
	}
	return progressFromEnt(p), true, nil
}

func (r *progressRepo) ForUserSubject(ctx context.Context, userID string, subjectID int) ([]*ProgressEntry, error) {
	rows, err := r.client.UserProgress.Query().
		Where(
			userprogress.UserID(userID),
			userprogress.SubjectID(subjectID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("progress for subject: %w", err)
	}
	return progressListFromEnt(rows), nil
}

func (r *progressRepo) ForUserCourse(ctx context.Context, userID string, courseID int) ([]*ProgressEntry, error) {
	rows, err := r.client.UserProgress.Query().
		Where(
			userprogress.UserID(userID),
			userprogress.HasSubjectWith(subject.CourseID(courseID)),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("progress for course: %w", err)
	}
	return progressListFromEnt(rows), nil
}

func (r *progressRepo) Touch(ctx context.Context, id int) error {
	err := r.client.UserProgress.UpdateOneID(id).
		SetLastAccessed(time.Now()).
		AddSessionsCount(1).
		Exec(ctx)
	return wrapProgressErr(id, "touch progress", err)
}

func (r *progressRepo) MarkCompleted(ctx context.Context, id int, completionPercentage float64) error {
	err := r.client.UserProgress.UpdateOneID(id).
		SetStatus("completed").
		SetCompletionPercentage(completionPercentage).
		SetCompletedAt(time.Now()).
		SetLastAccessed(time.Now()).
		Exec(ctx)
	return wrapProgressErr(id, "mark completed", err)
}

func (r *progressRepo) IncQuestionsAsked(ctx context.Context, id int) error {
	err := r.client.UserProgress.UpdateOneID(id).
		AddQuestionsAsked(1).
		SetLastAccessed(time.Now()).
		Exec(ctx)
	return wrapProgressErr(id, "increment questions", err)
}

func (r *progressRepo) IncConceptsBookmarked(ctx context.Context, id int) error {
	err := r.client.UserProgress.UpdateOneID(id).
		AddConceptsBookmarked(1).
		SetLastAccessed(time.Now()).
		Exec(ctx)
	return wrapProgressErr(id, "increment bookmarks", err)
}

func (r *progressRepo) AddStudyTime(ctx context.Context, id, minutes int) error {
	err := r.client.UserProgress.UpdateOneID(id).
		AddTimeSpentMinutes(minutes).
		SetLastAccessed(time.Now()).
		Exec(ctx)
	return wrapProgressErr(id, "add study time", err)
}

func (r *progressRepo) ApplyQuizOutcome(ctx context.Context, id int, avgScore float64, masteryLevel string, struggleAreas []string) error {
	err := r.client.UserProgress.UpdateOneID(id).
		AddQuizzesTaken(1).
		SetAvgQuizScore(avgScore).
		SetMasteryLevel(masteryLevel).
		SetStruggleAreas(struggleAreas).
		SetLastAccessed(time.Now()).
		Exec(ctx)
	return wrapProgressErr(id, "apply quiz outcome", err)
}

func wrapProgressErr(id int, op string, err error) error {
	if err == nil {
		return nil
	}
	if ent.IsNotFound(err) {
		return fmt.Errorf("progress %d: %w", id, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func progressListFromEnt(rows []*ent.UserProgress) []*ProgressEntry {
	out := make([]*ProgressEntry, len(rows))
	for i, p := range rows {
		out[i] = progressFromEnt(p)
	}
	return out
}

func progressFromEnt(p *ent.UserProgress) *ProgressEntry {
	return &ProgressEntry{
		ID:                   p.ID,
		UserID:               p.UserID,
		SubjectID:            p.SubjectID,
		ChapterID:            p.ChapterID,
		Status:               p.Status,
		CompletionPercentage: p.CompletionPercentage,
		MasteryLevel:         p.MasteryLevel,
		TimeSpentMinutes:     p.TimeSpentMinutes,
		SessionsCount:        p.SessionsCount,
		QuestionsAsked:       p.QuestionsAsked,
		ConceptsBookmarked:   p.ConceptsBookmarked,
		QuizzesTaken:         p.QuizzesTaken,
		AvgQuizScore:         p.AvgQuizScore,
		DifficultyPreference: p.DifficultyPreference,
		StruggleAreas:        p.StruggleAreas,
		LastAccessed:         p.LastAccessed,
		CompletedAt:          p.CompletedAt,
	}
}
