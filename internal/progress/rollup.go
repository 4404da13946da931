package progress

import (
	"context"
	"fmt"

	"github.com/abhisek/studium/internal/store"
)

// Content block types counted by the chapter rollup.
const (
	blockConcept       = "concept_explanation"
	blockVisualization = "interactive_visualization"
	blockExercise      = "problem_solving"
	blockCaseStudy     = "case_study"
)

// CountBlocks tallies a chapter's content blocks by declared type.
func CountBlocks(blocks []map[string]any) store.ChapterCounts {
	counts := store.ChapterCounts{Blocks: len(blocks)}
	for _, b := range blocks {
		t, _ := b["type"].(string)
		switch t {
		case blockConcept:
			counts.Concepts++
		case blockVisualization:
			counts.Visualizations++
		case blockExercise:
			counts.Exercises++
		case blockCaseStudy:
			counts.CaseStudies++
		}
	}
	return counts
}

// UpdateChapterStats recounts a chapter's content blocks and walks the
// change up through its subject and course.
func (s *Service) UpdateChapterStats(ctx context.Context, chapterID int) error {
	ch, err := s.st.Chapters.Get(ctx, chapterID)
	if err != nil {
		return fmt.Errorf("load chapter: %w", err)
	}

	counts := CountBlocks(ch.ContentBlocks)
	if err := s.st.Chapters.UpdateCounts(ctx, chapterID, counts, ch.EstimatedStudyTime); err != nil {
		return fmt.Errorf("update chapter counts: %w", err)
	}

	return s.UpdateSubjectStats(ctx, ch.SubjectID)
}

// UpdateSubjectStats recomputes a subject's totals from its chapters and
// walks the change up to the course.
func (s *Service) UpdateSubjectStats(ctx context.Context, subjectID int) error {
	subj, err := s.st.Subjects.Get(ctx, subjectID)
	if err != nil {
		return fmt.Errorf("load subject: %w", err)
	}

	chapters, err := s.st.Chapters.ListBySubject(ctx, subjectID)
	if err != nil {
		return fmt.Errorf("list chapters: %w", err)
	}

	readTime := 0
	interactive := 0
	for _, ch := range chapters {
		est := ch.EstimatedStudyTime
		if est <= 0 {
			est = 30
		}
		readTime += est
		interactive += ch.Counts.Visualizations + ch.Counts.Exercises
	}

	if err := s.st.Subjects.UpdateStats(ctx, subjectID, len(chapters), readTime, interactive); err != nil {
		return fmt.Errorf("update subject stats: %w", err)
	}

	return s.UpdateCourseStats(ctx, subj.CourseID)
}

// UpdateCourseStats recomputes a course's totals from its subjects.
func (s *Service) UpdateCourseStats(ctx context.Context, courseID int) error {
	subjects, err := s.st.Subjects.ListByCourse(ctx, courseID)
	if err != nil {
		return fmt.Errorf("list subjects: %w", err)
	}

	totalChapters := 0
	totalMinutes := 0
	for _, subj := range subjects {
		totalChapters += subj.TotalChapters
		totalMinutes += subj.EstimatedReadTime
	}

	if err := s.st.Courses.UpdateStats(ctx, courseID, len(subjects), totalChapters, totalMinutes/60); err != nil {
		return fmt.Errorf("update course stats: %w", err)
	}
	return nil
}
