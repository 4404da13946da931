package progress

import (
	"errors"
	"time"
)

// ErrNotEnrolled is returned when progress is requested for a course the
// user never enrolled in.
var ErrNotEnrolled = errors.New("user not enrolled in course")

// CourseSummary is the aggregated progress of one user in one course.
type CourseSummary struct {
	CourseID            int       `json:"course_id"`
	EnrollmentDate      time.Time `json:"enrollment_date"`
	OverallProgress     float64   `json:"overall_progress"`
	SubjectsCompleted   int       `json:"subjects_completed"`
	TotalSubjects       int       `json:"total_subjects"`
	ChaptersCompleted   int       `json:"chapters_completed"`
	TotalChapters       int       `json:"total_chapters"`
	TotalStudyTimeHours float64   `json:"total_study_time_hours"`
	AverageQuizScore    float64   `json:"average_quiz_score"`
	QuizzesTaken        int       `json:"quizzes_taken"`
	LastActivity        time.Time `json:"last_activity"`
}

// StudySchedule recommends a daily study cadence.
type StudySchedule struct {
	RecommendedMinutesPerDay int      `json:"recommended_minutes_per_day"`
	OptimalStudyTimes        []string `json:"optimal_study_times"`
	BreakIntervals           int      `json:"break_intervals"`
}

// NextChapter is one recommended chapter to study next.
type NextChapter struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Subject string `json:"subject"`
}

// ContentFocus recommends what to study and at what difficulty.
type ContentFocus struct {
	ReviewSubjects       []string      `json:"review_subjects"`
	NextChapters         []NextChapter `json:"next_chapters"`
	DifficultyAdjustment string        `json:"difficulty_adjustment"`
}

// ProgressGoals sets weekly targets.
type ProgressGoals struct {
	WeeklyChapters  int      `json:"weekly_chapters"`
	TargetQuizScore int      `json:"target_quiz_score"`
	MasteryFocus    []string `json:"mastery_focus"`
}

// Recommendations is the adaptive study plan for one user and course.
type Recommendations struct {
	StudySchedule      StudySchedule `json:"study_schedule"`
	ContentFocus       ContentFocus  `json:"content_focus"`
	LearningStrategies []string      `json:"learning_strategies"`
	ProgressGoals      ProgressGoals `json:"progress_goals"`
}

// SubjectProgress is the per-subject slice of detailed course progress.
type SubjectProgress struct {
	SubjectID   int    `json:"subject_id"`
	Name        string `json:"name"`
	Progress    int    `json:"progress"`
	Mastery     string `json:"mastery"`
	QuizAverage int    `json:"quiz_average"`
	Domain      string `json:"domain"`
}

// DetailedProgress is the course summary plus per-subject breakdown.
type DetailedProgress struct {
	OverallProgress   float64           `json:"overall_progress"`
	CompletedChapters int               `json:"completed_chapters"`
	TotalStudyHours   float64           `json:"total_study_hours"`
	AverageQuizScore  float64           `json:"average_quiz_score"`
	SubjectProgress   []SubjectProgress `json:"subject_progress"`
}

// DomainPerformance aggregates quiz scores in one subject domain.
type DomainPerformance struct {
	Domain  string  `json:"domain"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// ChapterStats is per-chapter progress for one user.
type ChapterStats struct {
	Status         string  `json:"status"`
	TimeSpent      int     `json:"time_spent"`
	QuestionsAsked int     `json:"questions_asked"`
	QuizzesTaken   int     `json:"quizzes_taken"`
	AvgQuizScore   float64 `json:"avg_quiz_score"`
}
