// Code generated by ent, DO NOT EDIT.

package userprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the userprogress type in the database.
	Label = "user_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCompletionPercentage holds the string denoting the completion_percentage field in the database.
	FieldCompletionPercentage = "completion_percentage"
	// FieldMasteryLevel holds the string denoting the mastery_level field in the database.
	FieldMasteryLevel = "mastery_level"
	// FieldTimeSpentMinutes holds the string denoting the time_spent_minutes field in the database.
	FieldTimeSpentMinutes = "time_spent_minutes"
	// FieldSessionsCount holds the string denoting the sessions_count field in the database.
	FieldSessionsCount = "sessions_count"
	// FieldLastAccessed holds the string denoting the last_accessed field in the database.
	FieldLastAccessed = "last_accessed"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldQuestionsAsked holds the string denoting the questions_asked field in the database.
	FieldQuestionsAsked = "questions_asked"
	// FieldConceptsBookmarked holds the string denoting the concepts_bookmarked field in the database.
	FieldConceptsBookmarked = "concepts_bookmarked"
	// FieldQuizzesTaken holds the string denoting the quizzes_taken field in the database.
	FieldQuizzesTaken = "quizzes_taken"
	// FieldAvgQuizScore holds the string denoting the avg_quiz_score field in the database.
	FieldAvgQuizScore = "avg_quiz_score"
	// FieldDifficultyPreference holds the string denoting the difficulty_preference field in the database.
	FieldDifficultyPreference = "difficulty_preference"
	// FieldLearningVelocity holds the string denoting the learning_velocity field in the database.
	FieldLearningVelocity = "learning_velocity"
	// FieldStruggleAreas holds the string denoting the struggle_areas field in the database.
	FieldStruggleAreas = "struggle_areas"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldChapterID holds the string denoting the chapter_id field in the database.
	FieldChapterID = "chapter_id"
	// EdgeSubject holds the string denoting the subject edge name in mutations.
	EdgeSubject = "subject"
	// EdgeChapter holds the string denoting the chapter edge name in mutations.
	EdgeChapter = "chapter"
	// Table holds the table name of the userprogress in the database.
	Table = "user_progresses"
	// SubjectTable is the table that holds the subject relation/edge.
	SubjectTable = "user_progresses"
	// SubjectInverseTable is the table name for the Subject entity.
	// It exists in this package in order to avoid circular dependency with the "subject" package.
	SubjectInverseTable = "subjects"
	// SubjectColumn is the table column denoting the subject relation/edge.
	SubjectColumn = "subject_id"
	// ChapterTable is the table that holds the chapter relation/edge.
	ChapterTable = "user_progresses"
	// ChapterInverseTable is the table name for the Chapter entity.
	// It exists in this package in order to avoid circular dependency with the "chapter" package.
	ChapterInverseTable = "chapters"
	// ChapterColumn is the table column denoting the chapter relation/edge.
	ChapterColumn = "chapter_id"
)

// Columns holds all SQL columns for userprogress fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldStatus,
	FieldCompletionPercentage,
	FieldMasteryLevel,
	FieldTimeSpentMinutes,
	FieldSessionsCount,
	FieldLastAccessed,
	FieldCompletedAt,
	FieldQuestionsAsked,
	FieldConceptsBookmarked,
	FieldQuizzesTaken,
	FieldAvgQuizScore,
	FieldDifficultyPreference,
	FieldLearningVelocity,
	FieldStruggleAreas,
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
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultCompletionPercentage holds the default value on creation for the "completion_percentage" field.
	DefaultCompletionPercentage float64
	// DefaultMasteryLevel holds the default value on creation for the "mastery_level" field.
	DefaultMasteryLevel string
	// DefaultTimeSpentMinutes holds the default value on creation for the "time_spent_minutes" field.
	DefaultTimeSpentMinutes int
	// DefaultSessionsCount holds the default value on creation for the "sessions_count" field.
	DefaultSessionsCount int
	// DefaultLastAccessed holds the default value on creation for the "last_accessed" field.
	DefaultLastAccessed func() time.Time
	// DefaultQuestionsAsked holds the default value on creation for the "questions_asked" field.
	DefaultQuestionsAsked int
	// DefaultConceptsBookmarked holds the default value on creation for the "concepts_bookmarked" field.
	DefaultConceptsBookmarked int
	// DefaultQuizzesTaken holds the default value on creation for the "quizzes_taken" field.
	DefaultQuizzesTaken int
	// DefaultAvgQuizScore holds the default value on creation for the "avg_quiz_score" field.
	DefaultAvgQuizScore float64
	// DefaultDifficultyPreference holds the default value on creation for the "difficulty_preference" field.
	DefaultDifficultyPreference string
	// DefaultLearningVelocity holds the default value on creation for the "learning_velocity" field.
	DefaultLearningVelocity float64
)

// OrderOption defines the ordering options for the UserProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCompletionPercentage orders the results by the completion_percentage field.
func ByCompletionPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionPercentage, opts...).ToFunc()
}

// ByMasteryLevel orders the results by the mastery_level field.
func ByMasteryLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryLevel, opts...).ToFunc()
}

// ByTimeSpentMinutes orders the results by the time_spent_minutes field.
func ByTimeSpentMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentMinutes, opts...).ToFunc()
}

// BySessionsCount orders the results by the sessions_count field.
func BySessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionsCount, opts...).ToFunc()
}

// ByLastAccessed orders the results by the last_accessed field.
func ByLastAccessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAccessed, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByQuestionsAsked orders the results by the questions_asked field.
func ByQuestionsAsked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsAsked, opts...).ToFunc()
}

// ByConceptsBookmarked orders the results by the concepts_bookmarked field.
func ByConceptsBookmarked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptsBookmarked, opts...).ToFunc()
}

// ByQuizzesTaken orders the results by the quizzes_taken field.
func ByQuizzesTaken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizzesTaken, opts...).ToFunc()
}

// ByAvgQuizScore orders the results by the avg_quiz_score field.
func ByAvgQuizScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgQuizScore, opts...).ToFunc()
}

// ByDifficultyPreference orders the results by the difficulty_preference field.
func ByDifficultyPreference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyPreference, opts...).ToFunc()
}

// ByLearningVelocity orders the results by the learning_velocity field.
func ByLearningVelocity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningVelocity, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByChapterID orders the results by the chapter_id field.
func ByChapterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterID, opts...).ToFunc()
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
