// Code generated by ent, DO NOT EDIT.

package course

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the course type in the database.
	Label = "course"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAcademicLevel holds the string denoting the academic_level field in the database.
	FieldAcademicLevel = "academic_level"
	// FieldInstitution holds the string denoting the institution field in the database.
	FieldInstitution = "institution"
	// FieldInstructor holds the string denoting the instructor field in the database.
	FieldInstructor = "instructor"
	// FieldSemester holds the string denoting the semester field in the database.
	FieldSemester = "semester"
	// FieldTotalSubjects holds the string denoting the total_subjects field in the database.
	FieldTotalSubjects = "total_subjects"
	// FieldTotalChapters holds the string denoting the total_chapters field in the database.
	FieldTotalChapters = "total_chapters"
	// FieldEstimatedStudyHours holds the string denoting the estimated_study_hours field in the database.
	FieldEstimatedStudyHours = "estimated_study_hours"
	// EdgeSubjects holds the string denoting the subjects edge name in mutations.
	EdgeSubjects = "subjects"
	// EdgeEnrollments holds the string denoting the enrollments edge name in mutations.
	EdgeEnrollments = "enrollments"
	// EdgeStudySessions holds the string denoting the study_sessions edge name in mutations.
	EdgeStudySessions = "study_sessions"
	// Table holds the table name of the course in the database.
	Table = "courses"
	// SubjectsTable is the table that holds the subjects relation/edge.
	SubjectsTable = "subjects"
	// SubjectsInverseTable is the table name for the Subject entity.
	// It exists in this package in order to avoid circular dependency with the "subject" package.
	SubjectsInverseTable = "subjects"
	// SubjectsColumn is the table column denoting the subjects relation/edge.
	SubjectsColumn = "course_id"
	// EnrollmentsTable is the table that holds the enrollments relation/edge.
	EnrollmentsTable = "course_enrollments"
	// EnrollmentsInverseTable is the table name for the CourseEnrollment entity.
	// It exists in this package in order to avoid circular dependency with the "courseenrollment" package.
	EnrollmentsInverseTable = "course_enrollments"
	// EnrollmentsColumn is the table column denoting the enrollments relation/edge.
	EnrollmentsColumn = "course_id"
	// StudySessionsTable is the table that holds the study_sessions relation/edge.
	StudySessionsTable = "study_sessions"
	// StudySessionsInverseTable is the table name for the StudySession entity.
	// It exists in this package in order to avoid circular dependency with the "studysession" package.
	StudySessionsInverseTable = "study_sessions"
	// StudySessionsColumn is the table column denoting the study_sessions relation/edge.
	StudySessionsColumn = "course_id"
)

// Columns holds all SQL columns for course fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldDescription,
	FieldAcademicLevel,
	FieldInstitution,
	FieldInstructor,
	FieldSemester,
	FieldTotalSubjects,
	FieldTotalChapters,
	FieldEstimatedStudyHours,
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
	// DefaultAcademicLevel holds the default value on creation for the "academic_level" field.
	DefaultAcademicLevel string
	// DefaultTotalSubjects holds the default value on creation for the "total_subjects" field.
	DefaultTotalSubjects int
	// DefaultTotalChapters holds the default value on creation for the "total_chapters" field.
	DefaultTotalChapters int
	// DefaultEstimatedStudyHours holds the default value on creation for the "estimated_study_hours" field.
	DefaultEstimatedStudyHours int
)

// OrderOption defines the ordering options for the Course queries.
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

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByAcademicLevel orders the results by the academic_level field.
func ByAcademicLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcademicLevel, opts...).ToFunc()
}

// ByInstitution orders the results by the institution field.
func ByInstitution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstitution, opts...).ToFunc()
}

// ByInstructor orders the results by the instructor field.
func ByInstructor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstructor, opts...).ToFunc()
}

// BySemester orders the results by the semester field.
func BySemester(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSemester, opts...).ToFunc()
}

// ByTotalSubjects orders the results by the total_subjects field.
func ByTotalSubjects(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalSubjects, opts...).ToFunc()
}

// ByTotalChapters orders the results by the total_chapters field.
func ByTotalChapters(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalChapters, opts...).ToFunc()
}

// ByEstimatedStudyHours orders the results by the estimated_study_hours field.
func ByEstimatedStudyHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedStudyHours, opts...).ToFunc()
}

// BySubjectsCount orders the results by subjects count.
func BySubjectsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubjectsStep(), opts...)
	}
}

// BySubjects orders the results by subjects terms.
func BySubjects(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubjectsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEnrollmentsCount orders the results by enrollments count.
func ByEnrollmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEnrollmentsStep(), opts...)
	}
}

// ByEnrollments orders the results by enrollments terms.
func ByEnrollments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEnrollmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newSubjectsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubjectsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubjectsTable, SubjectsColumn),
	)
}
func newEnrollmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EnrollmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EnrollmentsTable, EnrollmentsColumn),
	)
}
func newStudySessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StudySessionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StudySessionsTable, StudySessionsColumn),
	)
}
