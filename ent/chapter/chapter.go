// Code generated by ent, DO NOT EDIT.

package chapter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the chapter type in the database.
	Label = "chapter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldChapterNumber holds the string denoting the chapter_number field in the database.
	FieldChapterNumber = "chapter_number"
	// FieldIntroSummary holds the string denoting the intro_summary field in the database.
	FieldIntroSummary = "intro_summary"
	// FieldContentBlocks holds the string denoting the content_blocks field in the database.
	FieldContentBlocks = "content_blocks"
	// FieldChapterMetadata holds the string denoting the chapter_metadata field in the database.
	FieldChapterMetadata = "chapter_metadata"
	// FieldDifficultyLevel holds the string denoting the difficulty_level field in the database.
	FieldDifficultyLevel = "difficulty_level"
	// FieldEstimatedStudyTime holds the string denoting the estimated_study_time field in the database.
	FieldEstimatedStudyTime = "estimated_study_time"
	// FieldTotalContentBlocks holds the string denoting the total_content_blocks field in the database.
	FieldTotalContentBlocks = "total_content_blocks"
	// FieldConceptCount holds the string denoting the concept_count field in the database.
	FieldConceptCount = "concept_count"
	// FieldVisualizationCount holds the string denoting the visualization_count field in the database.
	FieldVisualizationCount = "visualization_count"
	// FieldExerciseCount holds the string denoting the exercise_count field in the database.
	FieldExerciseCount = "exercise_count"
	// FieldCaseStudyCount holds the string denoting the case_study_count field in the database.
	FieldCaseStudyCount = "case_study_count"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// EdgeSubject holds the string denoting the subject edge name in mutations.
	EdgeSubject = "subject"
	// EdgeProgress holds the string denoting the progress edge name in mutations.
	EdgeProgress = "progress"
	// EdgeBookmarks holds the string denoting the bookmarks edge name in mutations.
	EdgeBookmarks = "bookmarks"
	// EdgeQuizResults holds the string denoting the quiz_results edge name in mutations.
	EdgeQuizResults = "quiz_results"
	// EdgeStudySessions holds the string denoting the study_sessions edge name in mutations.
	EdgeStudySessions = "study_sessions"
	// Table holds the table name of the chapter in the database.
	Table = "chapters"
	// SubjectTable is the table that holds the subject relation/edge.
	SubjectTable = "chapters"
	// SubjectInverseTable is the table name for the Subject entity.
	// It exists in this package in order to avoid circular dependency with the "subject" package.
	SubjectInverseTable = "subjects"
	// SubjectColumn is the table column denoting the subject relation/edge.
	SubjectColumn = "subject_id"
	// ProgressTable is the table that holds the progress relation/edge.
	ProgressTable = "user_progresses"
	// ProgressInverseTable is the table name for the UserProgress entity.
	// It exists in this package in order to avoid circular dependency with the "userprogress" package.
	ProgressInverseTable = "user_progresses"
	// ProgressColumn is the table column denoting the progress relation/edge.
	ProgressColumn = "chapter_id"
	// BookmarksTable is the table that holds the bookmarks relation/edge.
	BookmarksTable = "bookmarks"
	// BookmarksInverseTable is the table name for the Bookmark entity.
	// It exists in this package in order to avoid circular dependency with the "bookmark" package.
	BookmarksInverseTable = "bookmarks"
	// BookmarksColumn is the table column denoting the bookmarks relation/edge.
	BookmarksColumn = "chapter_id"
	// QuizResultsTable is the table that holds the quiz_results relation/edge.
	QuizResultsTable = "quiz_results"
	// QuizResultsInverseTable is the table name for the QuizResult entity.
	// It exists in this package in order to avoid circular dependency with the "quizresult" package.
	QuizResultsInverseTable = "quiz_results"
	// QuizResultsColumn is the table column denoting the quiz_results relation/edge.
	QuizResultsColumn = "chapter_id"
	// StudySessionsTable is the table that holds the study_sessions relation/edge.
	StudySessionsTable = "study_sessions"
	// StudySessionsInverseTable is the table name for the StudySession entity.
	// It exists in this package in order to avoid circular dependency with the "studysession" package.
	StudySessionsInverseTable = "study_sessions"
	// StudySessionsColumn is the table column denoting the study_sessions relation/edge.
	StudySessionsColumn = "chapter_id"
)

// Columns holds all SQL columns for chapter fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTitle,
	FieldChapterNumber,
	FieldIntroSummary,
	FieldContentBlocks,
	FieldChapterMetadata,
	FieldDifficultyLevel,
	FieldEstimatedStudyTime,
	FieldTotalContentBlocks,
	FieldConceptCount,
	FieldVisualizationCount,
	FieldExerciseCount,
	FieldCaseStudyCount,
	FieldSubjectID,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultChapterNumber holds the default value on creation for the "chapter_number" field.
	DefaultChapterNumber int
	// DefaultDifficultyLevel holds the default value on creation for the "difficulty_level" field.
	DefaultDifficultyLevel string
	// DefaultEstimatedStudyTime holds the default value on creation for the "estimated_study_time" field.
	DefaultEstimatedStudyTime int
	// DefaultTotalContentBlocks holds the default value on creation for the "total_content_blocks" field.
	DefaultTotalContentBlocks int
	// DefaultConceptCount holds the default value on creation for the "concept_count" field.
	DefaultConceptCount int
	// DefaultVisualizationCount holds the default value on creation for the "visualization_count" field.
	DefaultVisualizationCount int
	// DefaultExerciseCount holds the default value on creation for the "exercise_count" field.
	DefaultExerciseCount int
	// DefaultCaseStudyCount holds the default value on creation for the "case_study_count" field.
	DefaultCaseStudyCount int
)

// OrderOption defines the ordering options for the Chapter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByChapterNumber orders the results by the chapter_number field.
func ByChapterNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterNumber, opts...).ToFunc()
}

// ByDifficultyLevel orders the results by the difficulty_level field.
func ByDifficultyLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyLevel, opts...).ToFunc()
}

// ByEstimatedStudyTime orders the results by the estimated_study_time field.
func ByEstimatedStudyTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedStudyTime, opts...).ToFunc()
}

// ByTotalContentBlocks orders the results by the total_content_blocks field.
func ByTotalContentBlocks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalContentBlocks, opts...).ToFunc()
}

// ByConceptCount orders the results by the concept_count field.
func ByConceptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptCount, opts...).ToFunc()
}

// ByVisualizationCount orders the results by the visualization_count field.
func ByVisualizationCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisualizationCount, opts...).ToFunc()
}

// ByExerciseCount orders the results by the exercise_count field.
func ByExerciseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExerciseCount, opts...).ToFunc()
}

// ByCaseStudyCount orders the results by the case_study_count field.
func ByCaseStudyCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseStudyCount, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// BySubjectField orders the results by subject field.
func BySubjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByProgressCount orders the results by progress count.
func ByProgressCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProgressStep(), opts...)
	}
}

// ByProgress orders the results by progress terms.
func ByProgress(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProgressStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBookmarksCount orders the results by bookmarks count.
func ByBookmarksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBookmarksStep(), opts...)
	}
}

// ByBookmarks orders the results by bookmarks terms.
func ByBookmarks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBookmarksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByQuizResultsCount orders the results by quiz_results count.
func ByQuizResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuizResultsStep(), opts...)
	}
}

// ByQuizResults orders the results by quiz_results terms.
func ByQuizResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuizResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStudySessionsCount orders the results by study_sessions count.
func ByStudySessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStudySessionsStep(), opts...)
	}
}

// ByStudySessions orders the results by study_sessions terms.
func ByStudySessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStudySessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubjectTable, SubjectColumn),
	)
}
func newProgressStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProgressInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ProgressTable, ProgressColumn),
	)
}
func newBookmarksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BookmarksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BookmarksTable, BookmarksColumn),
	)
}
func newQuizResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuizResultsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuizResultsTable, QuizResultsColumn),
	)
}
func newStudySessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StudySessionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StudySessionsTable, StudySessionsColumn),
	)
}
