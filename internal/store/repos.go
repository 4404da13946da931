package store

import (
	"context"
	"errors"
)

// Sentinel errors returned by repositories so callers never depend on
// driver or ent error types.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique constraint is violated.
	ErrDuplicate = errors.New("duplicate record")
)

// CourseInput carries the fields needed to create a course.
type CourseInput struct {
	Name          string
	Description   string
	AcademicLevel string
	Institution   string
	Instructor    string
	Semester      string
}

// CourseRepo persists courses.
type CourseRepo interface {
	Create(ctx context.Context, in CourseInput) (*Course, error)
	Get(ctx context.Context, id int) (*Course, error)
	GetByName(ctx context.Context, name string) (*Course, error)
	List(ctx context.Context) ([]*Course, error)
	Delete(ctx context.Context, id int) error

	// UpdateStats writes the denormalized content counters.
	UpdateStats(ctx context.Context, id, totalSubjects, totalChapters, estimatedStudyHours int) error
}

// SubjectInput carries the fields needed to create a subject.
type SubjectInput struct {
	CourseID              int
	Name                  string
	Preface               map[string]any
	OverallSummary        map[string]any
	Analysis              map[string]any
	Domain                string
	LearningStyle         string
	ComplexityLevel       string
	OriginalFilename      string
	FileSizeMB            float64
	ProcessingTimeSeconds int
}

// ChapterInput carries the fields needed to create a chapter.
type ChapterInput struct {
	ChapterNumber      int
	Title              string
	IntroSummary       map[string]any
	ContentBlocks      []map[string]any
	Metadata           map[string]any
	DifficultyLevel    string
	EstimatedStudyTime int
	Counts             ChapterCounts
}

// SubjectRepo persists subjects and their chapters.
type SubjectRepo interface {
	// CreateWithChapters stores a subject and all its chapters in one
	// transaction so a failed upload leaves nothing behind.
	CreateWithChapters(ctx context.Context, in SubjectInput, chapters []ChapterInput) (*Subject, error)

	Get(ctx context.Context, id int) (*Subject, error)
	ListByCourse(ctx context.Context, courseID int) ([]*Subject, error)
	CountByCourse(ctx context.Context, courseID int) (int, error)
	Delete(ctx context.Context, id int) error

	UpdateStats(ctx context.Context, id, totalChapters, estimatedReadTime, interactiveElements int) error
}

// ChapterRepo reads and updates chapters.
type ChapterRepo interface {
	Get(ctx context.Context, id int) (*Chapter, error)
	ListBySubject(ctx context.Context, subjectID int) ([]*Chapter, error)
	CountByCourse(ctx context.Context, courseID int) (int, error)

	// NextUncompleted returns up to limit chapters in the course that
	// are not in completedIDs, ordered by subject creation time then
	// chapter number.
	NextUncompleted(ctx context.Context, courseID int, completedIDs []int, limit int) ([]ChapterRef, error)

	UpdateCounts(ctx context.Context, id int, counts ChapterCounts, estimatedStudyTime int) error
	SetContentBlocks(ctx context.Context, id int, blocks []map[string]any) error
}

// EnrollmentInput carries the fields needed to enroll a user.
type EnrollmentInput struct {
	UserID                  string
	CourseID                int
	StudyGoalHoursPerWeek   int
	PreferredDifficulty     string
	LearningStylePreference string
}

// EnrollmentRepo persists course enrollments.
type EnrollmentRepo interface {
	Create(ctx context.Context, in EnrollmentInput) (*Enrollment, error)
	Get(ctx context.Context, userID string, courseID int) (*Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]*Enrollment, error)

	// TouchActivity bumps last_activity to now.
	TouchActivity(ctx context.Context, id int) error

	// UpdateCachedProgress refreshes the denormalized progress columns
	// the aggregator computes.
	UpdateCachedProgress(ctx context.Context, id int, overallProgress float64, subjectsCompleted, chaptersCompleted, totalStudyTimeMinutes int) error
	SetPreferredDifficulty(ctx context.Context, id int, difficulty string) error
}

// ProgressRepo persists per-user learning progress rows.
type ProgressRepo interface {
	// GetOrCreate finds the row for (userID, subjectID, chapterID) or
	// creates it with the given initial status. chapterID nil addresses
	// the subject-level row.
	GetOrCreate(ctx context.Context, userID string, subjectID int, chapterID *int, initialStatus string) (*ProgressEntry, bool, error)

	ForUserSubject(ctx context.Context, userID string, subjectID int) ([]*ProgressEntry, error)
	ForUserCourse(ctx context.Context, userID string, courseID int) ([]*ProgressEntry, error)

	// Touch bumps last_accessed and increments sessions_count.
	Touch(ctx context.Context, id int) error
	MarkCompleted(ctx context.Context, id int, completionPercentage float64) error
	IncQuestionsAsked(ctx context.Context, id int) error
	IncConceptsBookmarked(ctx context.Context, id int) error
	AddStudyTime(ctx context.Context, id, minutes int) error

	// ApplyQuizOutcome increments quizzes_taken and writes the new
	// running average, mastery level, and struggle areas.
	ApplyQuizOutcome(ctx context.Context, id int, avgScore float64, masteryLevel string, struggleAreas []string) error
}

// QuizInput carries the fields needed to store a graded quiz attempt.
type QuizInput struct {
	UserID           string
	ChapterID        int
	Title            string
	QuizType         string
	SubjectDomain    string
	Score            int
	TotalQuestions   int
	Percentage       float64
	DifficultyLevel  string
	TimeTakenSeconds *int
	ConceptMastery   map[string]ConceptScore
	WeakConcepts     []string
	Questions        []map[string]any
	UserAnswers      map[string]AnsweredQuestion
}

// QuizRepo persists quiz results.
type QuizRepo interface {
	Create(ctx context.Context, in QuizInput) (*QuizRecord, error)
	ForUser(ctx context.Context, userID string, limit int) ([]*QuizRecord, error)
	ForUserChapter(ctx context.Context, userID string, chapterID int) ([]*QuizRecord, error)
	ForUserSubject(ctx context.Context, userID string, subjectID int) ([]*QuizRecord, error)
	ForUserCourse(ctx context.Context, userID string, courseID int) ([]*QuizRecord, error)

	// LowScoresForUserCourse returns attempts below the percentage
	// threshold, most recent first.
	LowScoresForUserCourse(ctx context.Context, userID string, courseID int, threshold float64) ([]*QuizRecord, error)
}

// BookmarkInput carries the fields needed to create a bookmark.
type BookmarkInput struct {
	UserID                   string
	ChapterID                int
	ContentBlockIndex        int
	ContentBlockType         string
	Title                    string
	Note                     string
	Tags                     []string
	Reason                   string
	DifficultyWhenBookmarked string
}

// BookmarkRepo persists bookmarks.
type BookmarkRepo interface {
	Create(ctx context.Context, in BookmarkInput) (*Bookmark, error)
	Delete(ctx context.Context, id int, userID string) error
	ListByUser(ctx context.Context, userID string) ([]*BookmarkView, error)
	ListByUserChapter(ctx context.Context, userID string, chapterID int) ([]*Bookmark, error)
}

// SessionStartInput carries the scope of a new study session.
type SessionStartInput struct {
	UserID    string
	CourseID  *int
	SubjectID *int
	ChapterID *int
}

// SessionRepo persists study sessions.
type SessionRepo interface {
	// Start closes any session still open for the user, then opens a
	// new one, all in one transaction.
	Start(ctx context.Context, in SessionStartInput) (*Session, error)

	Get(ctx context.Context, id int) (*Session, error)
	Active(ctx context.Context, userID string) (*Session, error)

	// AppendActivity adds an activity to the running log and bumps the
	// matching counter for question, bookmark, and quiz activity types.
	AppendActivity(ctx context.Context, id int, a Activity) (*Session, error)

	// End closes the session with its computed duration and scores.
	End(ctx context.Context, id, durationMinutes int, engagement, focus, effectiveness float64) (*Session, error)

	RecentByUser(ctx context.Context, userID string, limit int) ([]*Session, error)
}

// AIRequestInput carries one provider call for the request log.
type AIRequestInput struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMS    int64
	Success      bool
	ErrorMessage string
}

// AIRequestRepo persists the AI request log.
type AIRequestRepo interface {
	Append(ctx context.Context, in AIRequestInput) error
	Recent(ctx context.Context, limit int) ([]*AIRequest, error)
	UsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
}
