package server

import (
	"github.com/gin-gonic/gin"

	"github.com/abhisek/studium/internal/store"
)

// JSON view builders. Handlers never hand records to the encoder
// directly so column additions stay invisible to API clients.

func courseJSON(course *store.Course) gin.H {
	return gin.H{
		"id":                    course.ID,
		"name":                  course.Name,
		"description":           course.Description,
		"academic_level":        course.AcademicLevel,
		"institution":           course.Institution,
		"instructor":            course.Instructor,
		"semester":              course.Semester,
		"total_subjects":        course.TotalSubjects,
		"total_chapters":        course.TotalChapters,
		"estimated_study_hours": course.EstimatedStudyHours,
		"created_at":            course.CreatedAt,
	}
}

func subjectJSON(subject *store.Subject) gin.H {
	return gin.H{
		"id":                      subject.ID,
		"course_id":               subject.CourseID,
		"name":                    subject.Name,
		"preface":                 subject.Preface,
		"overall_summary":         subject.OverallSummary,
		"subject_domain":          subject.Domain,
		"learning_style":          subject.LearningStyle,
		"complexity_level":        subject.ComplexityLevel,
		"original_filename":       subject.OriginalFilename,
		"file_size_mb":            subject.FileSizeMB,
		"processing_time_seconds": subject.ProcessingTimeSeconds,
		"total_chapters":          subject.TotalChapters,
		"estimated_read_time":     subject.EstimatedReadTime,
		"interactive_elements":    subject.InteractiveElements,
		"created_at":              subject.CreatedAt,
	}
}

func chapterJSON(ch *store.Chapter) gin.H {
	return gin.H{
		"id":                   ch.ID,
		"subject_id":           ch.SubjectID,
		"chapter_number":       ch.ChapterNumber,
		"title":                ch.Title,
		"intro_summary":        ch.IntroSummary,
		"content_blocks":       ch.ContentBlocks,
		"chapter_metadata":     ch.Metadata,
		"difficulty_level":     ch.DifficultyLevel,
		"estimated_study_time": ch.EstimatedStudyTime,
		"total_blocks":         ch.Counts.Blocks,
		"concept_count":        ch.Counts.Concepts,
		"visualization_count":  ch.Counts.Visualizations,
		"exercise_count":       ch.Counts.Exercises,
		"case_study_count":     ch.Counts.CaseStudies,
	}
}

func chapterSummaryJSON(ch *store.Chapter) gin.H {
	return gin.H{
		"id":                   ch.ID,
		"chapter_number":       ch.ChapterNumber,
		"title":                ch.Title,
		"difficulty_level":     ch.DifficultyLevel,
		"estimated_study_time": ch.EstimatedStudyTime,
	}
}

func progressJSON(p *store.ProgressEntry) gin.H {
	if p == nil {
		return nil
	}
	return gin.H{
		"id":                    p.ID,
		"subject_id":            p.SubjectID,
		"chapter_id":            p.ChapterID,
		"status":                p.Status,
		"completion_percentage": p.CompletionPercentage,
		"mastery_level":         p.MasteryLevel,
		"time_spent_minutes":    p.TimeSpentMinutes,
		"sessions_count":        p.SessionsCount,
		"questions_asked":       p.QuestionsAsked,
		"concepts_bookmarked":   p.ConceptsBookmarked,
		"quizzes_taken":         p.QuizzesTaken,
		"avg_quiz_score":        p.AvgQuizScore,
		"difficulty_preference": p.DifficultyPreference,
		"struggle_areas":        p.StruggleAreas,
		"last_accessed":         p.LastAccessed,
	}
}

func sessionJSON(s *store.Session) gin.H {
	return gin.H{
		"id":                s.ID,
		"session_start":     s.SessionStart,
		"session_end":       s.SessionEnd,
		"duration_minutes":  s.DurationMinutes,
		"course_id":         s.CourseID,
		"subject_id":        s.SubjectID,
		"chapter_id":        s.ChapterID,
		"engagement_score":  s.EngagementScore,
		"questions_asked":   s.QuestionsAsked,
		"bookmarks_created": s.BookmarksCreated,
		"quizzes_completed": s.QuizzesCompleted,
	}
}

func bookmarkJSON(b *store.Bookmark) gin.H {
	return gin.H{
		"id":                         b.ID,
		"chapter_id":                 b.ChapterID,
		"content_block_index":        b.ContentBlockIndex,
		"content_block_type":         b.ContentBlockType,
		"title":                      b.Title,
		"note":                       b.Note,
		"tags":                       b.Tags,
		"reason":                     b.Reason,
		"difficulty_when_bookmarked": b.DifficultyWhenBookmarked,
		"created_at":                 b.CreatedAt,
	}
}
