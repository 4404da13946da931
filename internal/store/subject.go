package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studium/ent"
	"github.com/abhisek/studium/ent/subject"
)

// subjectRepo implements SubjectRepo backed by ent.
type subjectRepo struct {
	client *ent.Client
}

func (r *subjectRepo) CreateWithChapters(ctx context.Context, in SubjectInput, chapters []ChapterInput) (*Subject, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	s, err := tx.Subject.Create().
		SetCourseID(in.CourseID).
		SetName(in.Name).
		SetPreface(in.Preface).
		SetOverallSummary(in.OverallSummary).
		SetSubjectAnalysis(in.Analysis).
		SetSubjectDomain(in.Domain).
		SetLearningStyle(in.LearningStyle).
		SetComplexityLevel(in.ComplexityLevel).
		SetOriginalFilename(in.OriginalFilename).
		SetFileSizeMB(in.FileSizeMB).
		SetProcessingTimeSeconds(in.ProcessingTimeSeconds).
		SetTotalChapters(len(chapters)).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("create subject: %w", err)
	}

	for _, ch := range chapters {
		_, err := tx.Chapter.Create().
			SetSubjectID(s.ID).
			SetChapterNumber(ch.ChapterNumber).
			SetTitle(ch.Title).
			SetIntroSummary(ch.IntroSummary).
			SetContentBlocks(ch.ContentBlocks).
			SetChapterMetadata(ch.Metadata).
			SetDifficultyLevel(ch.DifficultyLevel).
			SetEstimatedStudyTime(ch.EstimatedStudyTime).
			SetTotalContentBlocks(ch.Counts.Blocks).
			SetConceptCount(ch.Counts.Concepts).
			SetVisualizationCount(ch.Counts.Visualizations).
			SetExerciseCount(ch.Counts.Exercises).
			SetCaseStudyCount(ch.Counts.CaseStudies).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("create chapter %d: %w", ch.ChapterNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit subject: %w", err)
	}
	return subjectFromEnt(s), nil
}

func (r *subjectRepo) Get(ctx context.Context, id int) (*Subject, error) {
	s, err := r.client.Subject.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("subject %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get subject: %w", err)
	}
	return subjectFromEnt(s), nil
}

func (r *subjectRepo) ListByCourse(ctx context.Context, courseID int) ([]*Subject, error) {
	rows, err := r.client.Subject.Query().
		Where(subject.CourseID(courseID)).
		Order(ent.Asc(subject.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	out := make([]*Subject, len(rows))
	for i, s := range rows {
		out[i] = subjectFromEnt(s)
	}
	return out, nil
}

func (r *subjectRepo) CountByCourse(ctx context.Context, courseID int) (int, error) {
	n, err := r.client.Subject.Query().
		Where(subject.CourseID(courseID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count subjects: %w", err)
	}
	return n, nil
}

func (r *subjectRepo) Delete(ctx context.Context, id int) error {
	err := r.client.Subject.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("subject %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("delete subject: %w", err)
	}
	return nil
}

func (r *subjectRepo) UpdateStats(ctx context.Context, id, totalChapters, estimatedReadTime, interactiveElements int) error {
	err := r.client.Subject.UpdateOneID(id).
		SetTotalChapters(totalChapters).
		SetEstimatedReadTime(estimatedReadTime).
		SetInteractiveElementsCount(interactiveElements).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("subject %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("update subject stats: %w", err)
	}
	return nil
}

func subjectFromEnt(s *ent.Subject) *Subject {
	return &Subject{
		ID:                    s.ID,
		CourseID:              s.CourseID,
		Name:                  s.Name,
		Preface:               s.Preface,
		OverallSummary:        s.OverallSummary,
		Analysis:              s.SubjectAnalysis,
		Domain:                s.SubjectDomain,
		LearningStyle:         s.LearningStyle,
		ComplexityLevel:       s.ComplexityLevel,
		OriginalFilename:      s.OriginalFilename,
		FileSizeMB:            s.FileSizeMB,
		ProcessingTimeSeconds: s.ProcessingTimeSeconds,
		TotalChapters:         s.TotalChapters,
		EstimatedReadTime:     s.EstimatedReadTime,
		InteractiveElements:   s.InteractiveElementsCount,
		CreatedAt:             s.CreatedAt,
	}
}
