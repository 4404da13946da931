package store

import "time"

// Course is a stored course with denormalized content counters.
type Course struct {
	ID                  int
	Name                string
	Description         string
	AcademicLevel       string
	Institution         string
	Instructor          string
	Semester            string
	TotalSubjects       int
	TotalChapters       int
	EstimatedStudyHours int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Subject is a stored subject (one uploaded document) inside a course.
type Subject struct {
	ID                    int
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
	TotalChapters         int
	EstimatedReadTime     int
	InteractiveElements   int
	CreatedAt             time.Time
}

// ChapterCounts tallies content block kinds inside one chapter.
type ChapterCounts struct {
	Blocks         int
	Concepts       int
	Visualizations int
	Exercises      int
	CaseStudies    int
}

// Chapter is a stored chapter with its generated content blocks.
type Chapter struct {
	ID                 int
	SubjectID          int
	ChapterNumber      int
	Title              string
	IntroSummary       map[string]any
	ContentBlocks      []map[string]any
	Metadata           map[string]any
	DifficultyLevel    string
	EstimatedStudyTime int
	Counts             ChapterCounts
	CreatedAt          time.Time
}

// ChapterRef is a lightweight chapter reference used for recommendations.
type ChapterRef struct {
	ID          int
	Title       string
	SubjectID   int
	SubjectName string
}

// Enrollment links a user to a course together with cached progress.
type Enrollment struct {
	ID                      int
	UserID                  string
	CourseID                int
	EnrollmentDate          time.Time
	LastActivity            time.Time
	StudyGoalHoursPerWeek   int
	OverallProgress         float64
	SubjectsCompleted       int
	ChaptersCompleted       int
	TotalStudyTimeMinutes   int
	PreferredDifficulty     string
	LearningStylePreference string
	CompletedAt             *time.Time
}

// ProgressEntry is one user_progress row. ChapterID is nil for
// subject-level entries that mark a whole subject completed.
type ProgressEntry struct {
	ID                   int
	UserID               string
	SubjectID            int
	ChapterID            *int
	Status               string
	CompletionPercentage float64
	MasteryLevel         string
	TimeSpentMinutes     int
	SessionsCount        int
	QuestionsAsked       int
	ConceptsBookmarked   int
	QuizzesTaken         int
	AvgQuizScore         float64
	DifficultyPreference string
	StruggleAreas        []string
	LastAccessed         time.Time
	CompletedAt          *time.Time
}

// ConceptScore counts correct answers per concept within a quiz.
type ConceptScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// AnsweredQuestion records a single graded answer. UserAnswer is nil
// when the question was left blank.
type AnsweredQuestion struct {
	UserAnswer    *int   `json:"user_answer"`
	CorrectAnswer int    `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	QuestionType  string `json:"question_type"`
	ConceptTested string `json:"concept_tested"`
}

// QuizRecord is a stored quiz attempt.
type QuizRecord struct {
	ID               int
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
	CompletedAt      time.Time
}

// Bookmark is a stored bookmark on one content block.
type Bookmark struct {
	ID                       int
	UserID                   string
	ChapterID                int
	ContentBlockIndex        int
	ContentBlockType         string
	Title                    string
	Note                     string
	Tags                     []string
	Reason                   string
	DifficultyWhenBookmarked string
	CreatedAt                time.Time
}

// BookmarkView is a bookmark joined with its chapter, subject and course
// names for grouped listings.
type BookmarkView struct {
	Bookmark
	ChapterTitle  string
	ChapterNumber int
	SubjectName   string
	SubjectDomain string
	CourseID      int
	CourseName    string
}

// Activity is one logged event inside a study session.
type Activity struct {
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Details   map[string]any `json:"details,omitempty"`
}

// Session is a stored study session.
type Session struct {
	ID                    int
	UserID                string
	SessionStart          time.Time
	SessionEnd            *time.Time
	DurationMinutes       *int
	CourseID              *int
	SubjectID             *int
	ChapterID             *int
	Activities            []Activity
	ConceptsStudied       []string
	EngagementScore       float64
	FocusScore            float64
	LearningEffectiveness float64
	QuestionsAsked        int
	BookmarksCreated      int
	QuizzesCompleted      int
}

// AIRequest is one logged provider call.
type AIRequest struct {
	ID           int
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMS    int64
	Success      bool
	ErrorMessage string
	CreatedAt    time.Time
}

// PurposeUsage aggregates AI request counts and tokens per purpose.
type PurposeUsage struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}
