// Code generated by ent, DO NOT EDIT.

package courseenrollment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the courseenrollment type in the database.
	Label = "course_enrollment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldEnrollmentDate holds the string denoting the enrollment_date field in the database.
	FieldEnrollmentDate = "enrollment_date"
	// FieldTargetCompletionDate holds the string denoting the target_completion_date field in the database.
	FieldTargetCompletionDate = "target_completion_date"
	// FieldStudyGoalHoursPerWeek holds the string denoting the study_goal_hours_per_week field in the database.
	FieldStudyGoalHoursPerWeek = "study_goal_hours_per_week"
	// FieldOverallProgressPercentage holds the string denoting the overall_progress_percentage field in the database.
	FieldOverallProgressPercentage = "overall_progress_percentage"
	// FieldSubjectsCompleted holds the string denoting the subjects_completed field in the database.
	FieldSubjectsCompleted = "subjects_completed"
	// FieldChaptersCompleted holds the string denoting the chapters_completed field in the database.
	FieldChaptersCompleted = "chapters_completed"
	// FieldTotalStudyTimeMinutes holds the string denoting the total_study_time_minutes field in the database.
	FieldTotalStudyTimeMinutes = "total_study_time_minutes"
	// FieldPreferredDifficulty holds the string denoting the preferred_difficulty field in the database.
	FieldPreferredDifficulty = "preferred_difficulty"
	// FieldLearningStylePreference holds the string denoting the learning_style_preference field in the database.
	FieldLearningStylePreference = "learning_style_preference"
	// FieldLastActivity holds the string denoting the last_activity field in the database.
	FieldLastActivity = "last_activity"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// EdgeCourse holds the string denoting the course edge name in mutations.
	EdgeCourse = "course"
	// Table holds the table name of the courseenrollment in the database.
	Table = "course_enrollments"
	// CourseTable is the table that holds the course relation/edge.
	CourseTable = "course_enrollments"
	// CourseInverseTable is the table name for the Course entity.
	// It exists in this package in order to avoid circular dependency with the "course" package.
	CourseInverseTable = "courses"
	// CourseColumn is the table column denoting the course relation/edge.
	CourseColumn = "course_id"
)

// Columns holds all SQL columns for courseenrollment fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldEnrollmentDate,
	FieldTargetCompletionDate,
	FieldStudyGoalHoursPerWeek,
	FieldOverallProgressPercentage,
	FieldSubjectsCompleted,
	FieldChaptersCompleted,
	FieldTotalStudyTimeMinutes,
	FieldPreferredDifficulty,
	FieldLearningStylePreference,
	FieldLastActivity,
	FieldCompletedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultEnrollmentDate holds the default value on creation for the "enrollment_date" field.
	DefaultEnrollmentDate func() time.Time
	// DefaultStudyGoalHoursPerWeek holds the default value on creation for the "study_goal_hours_per_week" field.
	DefaultStudyGoalHoursPerWeek int
	// DefaultOverallProgressPercentage holds the default value on creation for the "overall_progress_percentage" field.
	DefaultOverallProgressPercentage float64
	// DefaultSubjectsCompleted holds the default value on creation for the "subjects_completed" field.
	DefaultSubjectsCompleted int
	// DefaultChaptersCompleted holds the default value on creation for the "chapters_completed" field.
	DefaultChaptersCompleted int
	// DefaultTotalStudyTimeMinutes holds the default value on creation for the "total_study_time_minutes" field.
	DefaultTotalStudyTimeMinutes int
	// DefaultPreferredDifficulty holds the default value on creation for the "preferred_difficulty" field.
	DefaultPreferredDifficulty string
	// DefaultLearningStylePreference holds the default value on creation for the "learning_style_preference" field.
	DefaultLearningStylePreference string
	// DefaultLastActivity holds the default value on creation for the "last_activity" field.
	DefaultLastActivity func() time.Time
)

// OrderOption defines the ordering options for the CourseEnrollment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByEnrollmentDate orders the results by the enrollment_date field.
func ByEnrollmentDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrollmentDate, opts...).ToFunc()
}

// ByTargetCompletionDate orders the results by the target_completion_date field.
func ByTargetCompletionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetCompletionDate, opts...).ToFunc()
}

// ByStudyGoalHoursPerWeek orders the results by the study_goal_hours_per_week field.
func ByStudyGoalHoursPerWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyGoalHoursPerWeek, opts...).ToFunc()
}

// ByOverallProgressPercentage orders the results by the overall_progress_percentage field.
func ByOverallProgressPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallProgressPercentage, opts...).ToFunc()
}

// BySubjectsCompleted orders the results by the subjects_completed field.
func BySubjectsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectsCompleted, opts...).ToFunc()
}

// ByChaptersCompleted orders the results by the chapters_completed field.
func ByChaptersCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChaptersCompleted, opts...).ToFunc()
}

// ByTotalStudyTimeMinutes orders the results by the total_study_time_minutes field.
func ByTotalStudyTimeMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalStudyTimeMinutes, opts...).ToFunc()
}

// ByPreferredDifficulty orders the results by the preferred_difficulty field.
func ByPreferredDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredDifficulty, opts...).ToFunc()
}

// ByLearningStylePreference orders the results by the learning_style_preference field.
func ByLearningStylePreference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningStylePreference, opts...).ToFunc()
}

// ByLastActivity orders the results by the last_activity field.
func ByLastActivity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivity, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
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
func newCourseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CourseInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CourseTable, CourseColumn),
	)
}
