package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studium/ent"
	"github.com/abhisek/studium/ent/chapter"
	"github.com/abhisek/studium/ent/subject"
)

// chapterRepo implements ChapterRepo backed by ent.
type chapterRepo struct {
	client *ent.Client
}

func (r *chapterRepo) Get(ctx context.Context, id int) (*Chapter, error) {
	c, err := r.client.Chapter.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("chapter %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get chapter: %w", err)
	}
	return chapterFromEnt(c), nil
}

func (r *chapterRepo) ListBySubject(ctx context.Context, subjectID int) ([]*Chapter, error) {
	rows, err := r.client.Chapter.Query().
		Where(chapter.SubjectID(subjectID)).
		Order(ent.Asc(chapter.FieldChapterNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	out := make([]*Chapter, len(rows))
	for i, c := range rows {
		out[i] = chapterFromEnt(c)
	}
	return out, nil
}

func (r *chapterRepo) CountByCourse(ctx context.Context, courseID int) (int, error) {
	n, err := r.client.Chapter.Query().
		Where(chapter.HasSubjectWith(subject.CourseID(courseID))).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count chapters: %w", err)
	}
	return n, nil
}

func (r *chapterRepo) NextUncompleted(ctx context.Context, courseID int, completedIDs []int, limit int) ([]ChapterRef, error) {
	q := r.client.Chapter.Query().
		Where(chapter.HasSubjectWith(subject.CourseID(courseID)))
	if len(completedIDs) > 0 {
		q = q.Where(chapter.IDNotIn(completedIDs...))
	}
	rows, err := q.
		WithSubject().
		Order(
			chapter.BySubjectField(subject.FieldCreatedAt),
			ent.Asc(chapter.FieldChapterNumber),
		).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("next chapters: %w", err)
	}
	out := make([]ChapterRef, len(rows))
	for i, c := range rows {
		ref := ChapterRef{ID: c.ID, Title: c.Title, SubjectID: c.SubjectID}
		if c.Edges.Subject != nil {
			ref.SubjectName = c.Edges.Subject.Name
		}
		out[i] = ref
	}
	return out, nil
}

func (r *chapterRepo) UpdateCounts(ctx context.Context, id int, counts ChapterCounts, estimatedStudyTime int) error {
	err := r.client.Chapter.UpdateOneID(id).
		SetTotalContentBlocks(counts.Blocks).
		SetConceptCount(counts.Concepts).
		SetVisualizationCount(counts.Visualizations).
		SetExerciseCount(counts.Exercises).
		SetCaseStudyCount(counts.CaseStudies).
		SetEstimatedStudyTime(estimatedStudyTime).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("chapter %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("update chapter counts: %w", err)
	}
	return nil
}

func (r *chapterRepo) SetContentBlocks(ctx context.Context, id int, blocks []map[string]any) error {
	err := r.client.Chapter.UpdateOneID(id).
		SetContentBlocks(blocks).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("chapter %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("set content blocks: %w", err)
	}
	return nil
}

func chapterFromEnt(c *ent.Chapter) *Chapter {
	return &Chapter{
		ID:                 c.ID,
		SubjectID:          c.SubjectID,
		ChapterNumber:      c.ChapterNumber,
		Title:              c.Title,
		IntroSummary:       c.IntroSummary,
		ContentBlocks:      c.ContentBlocks,
		Metadata:           c.ChapterMetadata,
		DifficultyLevel:    c.DifficultyLevel,
		EstimatedStudyTime: c.EstimatedStudyTime,
		Counts: ChapterCounts{
			Blocks:         c.TotalContentBlocks,
			Concepts:       c.ConceptCount,
			Visualizations: c.VisualizationCount,
			Exercises:      c.ExerciseCount,
			CaseStudies:    c.CaseStudyCount,
		},
		CreatedAt: c.CreatedAt,
	}
}
