// Code generated by ent, DO NOT EDIT.

package studysession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the studysession type in the database.
	Label = "study_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSessionStart holds the string denoting the session_start field in the database.
	FieldSessionStart = "session_start"
	// FieldSessionEnd holds the string denoting the session_end field in the database.
	FieldSessionEnd = "session_end"
	// FieldDurationMinutes holds the string denoting the duration_minutes field in the database.
	FieldDurationMinutes = "duration_minutes"
	// FieldActivities holds the string denoting the activities field in the database.
	FieldActivities = "activities"
	// FieldConceptsStudied holds the string denoting the concepts_studied field in the database.
	FieldConceptsStudied = "concepts_studied"
	// FieldDifficultyAdjustments holds the string denoting the difficulty_adjustments field in the database.
	FieldDifficultyAdjustments = "difficulty_adjustments"
	// FieldCompletionProgress holds the string denoting the completion_progress field in the database.
	FieldCompletionProgress = "completion_progress"
	// FieldQuestionsAsked holds the string denoting the questions_asked field in the database.
	FieldQuestionsAsked = "questions_asked"
	// FieldBookmarksCreated holds the string denoting the bookmarks_created field in the database.
	FieldBookmarksCreated = "bookmarks_created"
	// FieldQuizzesCompleted holds the string denoting the quizzes_completed field in the database.
	FieldQuizzesCompleted = "quizzes_completed"
	// FieldEngagementScore holds the string denoting the engagement_score field in the database.
	FieldEngagementScore = "engagement_score"
	// FieldFocusScore holds the string denoting the focus_score field in the database.
	FieldFocusScore = "focus_score"
	// FieldLearningEffectiveness holds the string denoting the learning_effectiveness field in the database.
	FieldLearningEffectiveness = "learning_effectiveness"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldChapterID holds the string denoting the chapter_id field in the database.
	FieldChapterID = "chapter_id"
	// EdgeCourse holds the string denoting the course edge name in mutations.
	EdgeCourse = "course"
	// EdgeSubject holds the string denoting the subject edge name in mutations.
	EdgeSubject = "subject"
	// EdgeChapter holds the string denoting the chapter edge name in mutations.
	EdgeChapter = "chapter"
	// Table holds the table name of the studysession in the database.
	Table = "study_sessions"
	// CourseTable is the table that holds the course relation/edge.
	CourseTable = "study_sessions"
	// CourseInverseTable is the table name for the Course entity.
	// It exists in this package in order to avoid circular dependency with the "course" package.
	CourseInverseTable = "courses"
	// CourseColumn is the table column denoting the course relation/edge.
	CourseColumn = "course_id"
	// SubjectTable is the table that holds the subject relation/edge.
	SubjectTable = "study_sessions"
	// SubjectInverseTable is the table name for the Subject entity.
	// It exists in this package in order to avoid circular dependency with the "subject" package.
	SubjectInverseTable = "subjects"
	// SubjectColumn is the table column denoting the subject relation/edge.
	SubjectColumn = "subject_id"
	// ChapterTable is the table that holds the chapter relation/edge.
	ChapterTable = "study_sessions"
	// ChapterInverseTable is the table name for the Chapter entity.
	// It exists in this package in order to avoid circular dependency with the "chapter" package.
	ChapterInverseTable = "chapters"
	// ChapterColumn is the table column denoting the chapter relation/edge.
	ChapterColumn = "chapter_id"
)

// Columns holds all SQL columns for studysession fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSessionStart,
	FieldSessionEnd,
	FieldDurationMinutes,
	FieldActivities,
	FieldConceptsStudied,
	FieldDifficultyAdjustments,
	FieldCompletionProgress,
	FieldQuestionsAsked,
	FieldBookmarksCreated,
	FieldQuizzesCompleted,
	FieldEngagementScore,
	FieldFocusScore,
	FieldLearningEffectiveness,
	FieldCourseID,
	FieldSubjectID,
	FieldChapterID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultSessionStart holds the default value on creation for the "session_start" field.
	DefaultSessionStart func() time.Time
	// DefaultDifficultyAdjustments holds the default value on creation for the "difficulty_adjustments" field.
	DefaultDifficultyAdjustments int
	// DefaultCompletionProgress holds the default value on creation for the "completion_progress" field.
	DefaultCompletionProgress float64
	// DefaultQuestionsAsked holds the default value on creation for the "questions_asked" field.
	DefaultQuestionsAsked int
	// DefaultBookmarksCreated holds the default value on creation for the "bookmarks_created" field.
	DefaultBookmarksCreated int
	// DefaultQuizzesCompleted holds the default value on creation for the "quizzes_completed" field.
	DefaultQuizzesCompleted int
	// DefaultEngagementScore holds the default value on creation for the "engagement_score" field.
	DefaultEngagementScore float64
	// DefaultFocusScore holds the default value on creation for the "focus_score" field.
	DefaultFocusScore float64
	// DefaultLearningEffectiveness holds the default value on creation for the "learning_effectiveness" field.
	DefaultLearningEffectiveness float64
)

// OrderOption defines the ordering options for the StudySession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySessionStart orders the results by the session_start field.
func BySessionStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionStart, opts...).ToFunc()
}

// BySessionEnd orders the results by the session_end field.
func BySessionEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionEnd, opts...).ToFunc()
}

// ByDurationMinutes orders the results by the duration_minutes field.
func ByDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMinutes, opts...).ToFunc()
}

// ByDifficultyAdjustments orders the results by the difficulty_adjustments field.
func ByDifficultyAdjustments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyAdjustments, opts...).ToFunc()
}

// ByCompletionProgress orders the results by the completion_progress field.
func ByCompletionProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionProgress, opts...).ToFunc()
}

// ByQuestionsAsked orders the results by the questions_asked field.
func ByQuestionsAsked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsAsked, opts...).ToFunc()
}

// ByBookmarksCreated orders the results by the bookmarks_created field.
func ByBookmarksCreated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBookmarksCreated, opts...).ToFunc()
}

// ByQuizzesCompleted orders the results by the quizzes_completed field.
func ByQuizzesCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizzesCompleted, opts...).ToFunc()
}

// ByEngagementScore orders the results by the engagement_score field.
func ByEngagementScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementScore, opts...).ToFunc()
}

// ByFocusScore orders the results by the focus_score field.
func ByFocusScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFocusScore, opts...).ToFunc()
}

// ByLearningEffectiveness orders the results by the learning_effectiveness field.
func ByLearningEffectiveness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningEffectiveness, opts...).ToFunc()
}

// ByCourseID orders the results by the course_id field.
func ByCourseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByChapterID orders the results by the chapter_id field.
func ByChapterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterID, opts...).ToFunc()
}

// ByCourseField orders the results by course field.
func ByCourseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCourseStep(), sql.OrderByField(field, opts...))
	}
}

// BySubjectField orders the results by subject field.
func BySubjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByChapterField orders the results by chapter field.
func ByChapterField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChapterStep(), sql.OrderByField(field, opts...))
	}
}
func newCourseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CourseInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CourseTable, CourseColumn),
	)
}
func newSubjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubjectTable, SubjectColumn),
	)
}
func newChapterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChapterInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ChapterTable, ChapterColumn),
	)
}
