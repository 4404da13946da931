package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/studium/ent"
	"github.com/abhisek/studium/ent/courseenrollment"
)

// enrollmentRepo implements EnrollmentRepo backed by ent.
type enrollmentRepo struct {
	client *ent.Client
}

func (r *enrollmentRepo) Create(ctx context.Context, in EnrollmentInput) (*Enrollment, error) {
	b := r.client.CourseEnrollment.Create().
		SetUserID(in.UserID).
		SetCourseID(in.CourseID)
	if in.StudyGoalHoursPerWeek > 0 {
		b = b.SetStudyGoalHoursPerWeek(in.StudyGoalHoursPerWeek)
	}
	if in.PreferredDifficulty != "" {
		b = b.SetPreferredDifficulty(in.PreferredDifficulty)
	}
	if in.LearningStylePreference != "" {
		b = b.SetLearningStylePreference(in.LearningStylePreference)
	}
	e, err := b.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("enrollment user %s course %d: %w", in.UserID, in.CourseID, ErrDuplicate)
		}
		return nil, fmt.Errorf("create enrollment: %w", err)
	}
	return enrollmentFromEnt(e), nil
}

func (r *enrollmentRepo) Get(ctx context.Context, userID string, courseID int) (*Enrollment, error) {
	e, err := r.client.CourseEnrollment.Query().
		Where(
			courseenrollment.UserID(userID),
			courseenrollment.CourseID(courseID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("enrollment user %s course %d: %w", userID, courseID, ErrNotFound)
		}
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	return enrollmentFromEnt(e), nil
}

func (r *enrollmentRepo) ListByUser(ctx context.Context, userID string) ([]*Enrollment, error) {
	rows, err := r.client.CourseEnrollment.Query().
		Where(courseenrollment.UserID(userID)).
		Order(ent.Desc(courseenrollment.FieldLastActivity)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	out := make([]*Enrollment, len(rows))
	for i, e := range rows {
		out[i] = enrollmentFromEnt(e)
	}
	return out, nil
}

func (r *enrollmentRepo) TouchActivity(ctx context.Context, id int) error {
	err := r.client.CourseEnrollment.UpdateOneID(id).
		SetLastActivity(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("enrollment %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("touch enrollment: %w", err)
	}
	return nil
}

func (r *enrollmentRepo) UpdateCachedProgress(ctx context.Context, id int, overallProgress float64, subjectsCompleted, chaptersCompleted, totalStudyTimeMinutes int) error {
	err := r.client.CourseEnrollment.UpdateOneID(id).
		SetOverallProgressPercentage(overallProgress).
		SetSubjectsCompleted(subjectsCompleted).
		SetChaptersCompleted(chaptersCompleted).
		SetTotalStudyTimeMinutes(totalStudyTimeMinutes).
		SetLastActivity(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("enrollment %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("update cached progress: %w", err)
	}
	return nil
}

func (r *enrollmentRepo) SetPreferredDifficulty(ctx context.Context, id int, difficulty string) error {
	err := r.client.CourseEnrollment.UpdateOneID(id).
		SetPreferredDifficulty(difficulty).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("enrollment %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("set preferred difficulty: %w", err)
	}
	return nil
}

func enrollmentFromEnt(e *ent.CourseEnrollment) *Enrollment {
	return &Enrollment{
		ID:                      e.ID,
		UserID:                  e.UserID,
		CourseID:                e.CourseID,
		EnrollmentDate:          e.EnrollmentDate,
		LastActivity:            e.LastActivity,
		StudyGoalHoursPerWeek:   e.StudyGoalHoursPerWeek,
		OverallProgress:         e.OverallProgressPercentage,
		SubjectsCompleted:       e.SubjectsCompleted,
		ChaptersCompleted:       e.ChaptersCompleted,
		TotalStudyTimeMinutes:   e.TotalStudyTimeMinutes,
		PreferredDifficulty:     e.PreferredDifficulty,
		LearningStylePreference: e.LearningStylePreference,
		CompletedAt:             e.CompletedAt,
	}
}
