// Code generated by ent, DO NOT EDIT.

package subject

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the subject type in the database.
	Label = "subject"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPreface holds the string denoting the preface field in the database.
	FieldPreface = "preface"
	// FieldOverallSummary holds the string denoting the overall_summary field in the database.
	FieldOverallSummary = "overall_summary"
	// FieldSubjectDomain holds the string denoting the subject_domain field in the database.
	FieldSubjectDomain = "subject_domain"
	// FieldLearningStyle holds the string denoting the learning_style field in the database.
	FieldLearningStyle = "learning_style"
	// FieldComplexityLevel holds the string denoting the complexity_level field in the database.
	FieldComplexityLevel = "complexity_level"
	// FieldSubjectAnalysis holds the string denoting the subject_analysis field in the database.
	FieldSubjectAnalysis = "subject_analysis"
	// FieldOriginalFilename holds the string denoting the original_filename field in the database.
	FieldOriginalFilename = "original_filename"
	// FieldFileSizeMB holds the string denoting the file_size_mb field in the database.
	FieldFileSizeMB = "file_size_mb"
	// FieldProcessingTimeSeconds holds the string denoting the processing_time_seconds field in the database.
	FieldProcessingTimeSeconds = "processing_time_seconds"
	// FieldTotalChapters holds the string denoting the total_chapters field in the database.
	FieldTotalChapters = "total_chapters"
	// FieldEstimatedReadTime holds the string denoting the estimated_read_time field in the database.
	FieldEstimatedReadTime = "estimated_read_time"
	// FieldInteractiveElementsCount holds the string denoting the interactive_elements_count field in the database.
	FieldInteractiveElementsCount = "interactive_elements_count"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// EdgeCourse holds the string denoting the course edge name in mutations.
	EdgeCourse = "course"
	// EdgeChapters holds the string denoting the chapters edge name in mutations.
	EdgeChapters = "chapters"
	// EdgeProgress holds the string denoting the progress edge name in mutations.
	EdgeProgress = "progress"
	// EdgeStudySessions holds the string denoting the study_sessions edge name in mutations.
	EdgeStudySessions = "study_sessions"
	// Table holds the table name of the subject in the database.
	Table = "subjects"
	// CourseTable is the table that holds the course relation/edge.
	CourseTable = "subjects"
	// CourseInverseTable is the table name for the Course entity.
	// It exists in this package in order to avoid circular dependency with the "course" package.
	CourseInverseTable = "courses"
	// CourseColumn is the table column denoting the course relation/edge.
	CourseColumn = "course_id"
	// ChaptersTable is the table that holds the chapters relation/edge.
	ChaptersTable = "chapters"
	// ChaptersInverseTable is the table name for the Chapter entity.
	// It exists in this package in order to avoid circular dependency with the "chapter" package.
	ChaptersInverseTable = "chapters"
	// ChaptersColumn is the table column denoting the chapters relation/edge.
	ChaptersColumn = "subject_id"
	// ProgressTable is the table that holds the progress relation/edge.
	ProgressTable = "user_progresses"
	// ProgressInverseTable is the table name for the UserProgress entity.
	// It exists in this package in order to avoid circular dependency with the "userprogress" package.
	ProgressInverseTable = "user_progresses"
	// ProgressColumn is the table column denoting the progress relation/edge.
	ProgressColumn = "subject_id"
	// StudySessionsTable is the table that holds the study_sessions relation/edge.
	StudySessionsTable = "study_sessions"
	// StudySessionsInverseTable is the table name for the StudySession entity.
	// It exists in this package in order to avoid circular dependency with the "studysession" package.
	StudySessionsInverseTable = "study_sessions"
	// StudySessionsColumn is the table column denoting the study_sessions relation/edge.
	StudySessionsColumn = "subject_id"
)

// Columns holds all SQL columns for subject fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldPreface,
	FieldOverallSummary,
	FieldSubjectDomain,
	FieldLearningStyle,
	FieldComplexityLevel,
	FieldSubjectAnalysis,
	FieldOriginalFilename,
	FieldFileSizeMB,
	FieldProcessingTimeSeconds,
	FieldTotalChapters,
	FieldEstimatedReadTime,
	FieldInteractiveElementsCount,
	FieldCourseID,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultSubjectDomain holds the default value on creation for the "subject_domain" field.
	DefaultSubjectDomain string
	// DefaultLearningStyle holds the default value on creation for the "learning_style" field.
	DefaultLearningStyle string
	// DefaultComplexityLevel holds the default value on creation for the "complexity_level" field.
	DefaultComplexityLevel string
	// DefaultTotalChapters holds the default value on creation for the "total_chapters" field.
	DefaultTotalChapters int
	// DefaultEstimatedReadTime holds the default value on creation for the "estimated_read_time" field.
	DefaultEstimatedReadTime int
	// DefaultInteractiveElementsCount holds the default value on creation for the "interactive_elements_count" field.
	DefaultInteractiveElementsCount int
)

// OrderOption defines the ordering options for the Subject queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySubjectDomain orders the results by the subject_domain field.
func BySubjectDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectDomain, opts...).ToFunc()
}

// ByLearningStyle orders the results by the learning_style field.
func ByLearningStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningStyle, opts...).ToFunc()
}

// ByComplexityLevel orders the results by the complexity_level field.
func ByComplexityLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComplexityLevel, opts...).ToFunc()
}

// ByOriginalFilename orders the results by the original_filename field.
func ByOriginalFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalFilename, opts...).ToFunc()
}

// ByFileSizeMB orders the results by the file_size_mb field.
func ByFileSizeMB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSizeMB, opts...).ToFunc()
}

// ByProcessingTimeSeconds orders the results by the processing_time_seconds field.
func ByProcessingTimeSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingTimeSeconds, opts...).ToFunc()
}

// ByTotalChapters orders the results by the total_chapters field.
func ByTotalChapters(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalChapters, opts...).ToFunc()
}

// ByEstimatedReadTime orders the results by the estimated_read_time field.
func ByEstimatedReadTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedReadTime, opts...).ToFunc()
}

// ByInteractiveElementsCount orders the results by the interactive_elements_count field.
func ByInteractiveElementsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInteractiveElementsCount, opts...).ToFunc()
}

// ByCourseID orders the results by the course_id field.
func ByCourseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseID, opts...).ToFunc()
}

// ByCourseField orders the results by course field.
func ByCourseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCourseStep(), sql.OrderByField(field, opts...))
	}
}

// ByChaptersCount orders the results by chapters count.
func ByChaptersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChaptersStep(), opts...)
	}
}

// ByChapters orders the results by chapters terms.
func ByChapters(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChaptersStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newCourseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CourseInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CourseTable, CourseColumn),
	)
}
func newChaptersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChaptersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChaptersTable, ChaptersColumn),
	)
}
func newProgressStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProgressInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ProgressTable, ProgressColumn),
	)
}
func newStudySessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StudySessionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StudySessionsTable, StudySessionsColumn),
	)
}
