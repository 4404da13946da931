// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studium/ent/course"
)

// Course is the model entity for the Course schema.
type Course struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// undergraduate, masters, phd, professional
	AcademicLevel string `json:"academic_level,omitempty"`
	// Institution holds the value of the "institution" field.
	Institution string `json:"institution,omitempty"`
	// Instructor holds the value of the "instructor" field.
	Instructor string `json:"instructor,omitempty"`
	// Semester holds the value of the "semester" field.
	Semester string `json:"semester,omitempty"`
	// Rollup: count of subjects, recomputed on subject writes
	TotalSubjects int `json:"total_subjects,omitempty"`
	// Rollup: sum of subject chapter counts
	TotalChapters int `json:"total_chapters,omitempty"`
	// Rollup: sum of subject read minutes / 60
	EstimatedStudyHours int `json:"estimated_study_hours,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CourseQuery when eager-loading is set.
	Edges        CourseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CourseEdges holds the relations/edges for other nodes in the graph.
type CourseEdges struct {
	// Subjects holds the value of the subjects edge.
	Subjects []*Subject `json:"subjects,omitempty"`
	// Enrollments holds the value of the enrollments edge.
	Enrollments []*CourseEnrollment `json:"enrollments,omitempty"`
	// StudySessions holds the value of the study_sessions edge.
	StudySessions []*StudySession `json:"study_sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// SubjectsOrErr returns the Subjects value or an error if the edge
// was not loaded in eager-loading.
func (e CourseEdges) SubjectsOrErr() ([]*Subject, error) {
	if e.loadedTypes[0] {
		return e.Subjects, nil
	}
	return nil, &NotLoadedError{edge: "subjects"}
}

// EnrollmentsOrErr returns the Enrollments value or an error if the edge
// was not loaded in eager-loading.
func (e CourseEdges) EnrollmentsOrErr() ([]*CourseEnrollment, error) {
	if e.loadedTypes[1] {
		return e.Enrollments, nil
	}
	return nil, &NotLoadedError{edge: "enrollments"}
}

// StudySessionsOrErr returns the StudySessions value or an error if the edge
// was not loaded in eager-loading.
func (e CourseEdges) StudySessionsOrErr() ([]*StudySession, error) {
	if e.loadedTypes[2] {
		return e.StudySessions, nil
	}
	return nil, &NotLoadedError{edge: "study_sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Course) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case course.FieldID, course.FieldTotalSubjects, course.FieldTotalChapters, course.FieldEstimatedStudyHours:
			values[i] = new(sql.NullInt64)
		case course.FieldName, course.FieldDescription, course.FieldAcademicLevel, course.FieldInstitution, course.FieldInstructor, course.FieldSemester:
			values[i] = new(sql.NullString)
		case course.FieldCreatedAt, course.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Course fields.
func (_m *Course) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case course.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case course.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case course.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case course.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case course.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case course.FieldAcademicLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field academic_level", values[i])
			} else if value.Valid {
				_m.AcademicLevel = value.String
			}
		case course.FieldInstitution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field institution", values[i])
			} else if value.Valid {
				_m.Institution = value.String
			}
		case course.FieldInstructor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instructor", values[i])
			} else if value.Valid {
				_m.Instructor = value.String
			}
		case course.FieldSemester:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field semester", values[i])
			} else if value.Valid {
				_m.Semester = value.String
			}
		case course.FieldTotalSubjects:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_subjects", values[i])
			} else if value.Valid {
				_m.TotalSubjects = int(value.Int64)
			}
		case course.FieldTotalChapters:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_chapters", values[i])
			} else if value.Valid {
				_m.TotalChapters = int(value.Int64)
			}
		case course.FieldEstimatedStudyHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_study_hours", values[i])
			} else if value.Valid {
				_m.EstimatedStudyHours = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Course.
// This includes values selected through modifiers, order, etc.
func (_m *Course) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubjects queries the "subjects" edge of the Course entity.
func (_m *Course) QuerySubjects() *SubjectQuery {
	return NewCourseClient(_m.config).QuerySubjects(_m)
}

// QueryEnrollments queries the "enrollments" edge of the Course entity.
func (_m *Course) QueryEnrollments() *CourseEnrollmentQuery {
	return NewCourseClient(_m.config).QueryEnrollments(_m)
}

// QueryStudySessions queries the "study_sessions" edge of the Course entity.
func (_m *Course) QueryStudySessions() *StudySessionQuery {
	return NewCourseClient(_m.config).QueryStudySessions(_m)
}

// Update returns a builder for updating this Course.
// Note that you need to call Course.Unwrap() before calling this method if this Course
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Course) Update() *CourseUpdateOne {
	return NewCourseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Course entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Course) Unwrap() *Course {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Course is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Course) String() string {
	var builder strings.Builder
	builder.WriteString("Course(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("academic_level=")
	builder.WriteString(_m.AcademicLevel)
	builder.WriteString(", ")
	builder.WriteString("institution=")
	builder.WriteString(_m.Institution)
	builder.WriteString(", ")
	builder.WriteString("instructor=")
	builder.WriteString(_m.Instructor)
	builder.WriteString(", ")
	builder.WriteString("semester=")
	builder.WriteString(_m.Semester)
	builder.WriteString(", ")
	builder.WriteString("total_subjects=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalSubjects))
	builder.WriteString(", ")
	builder.WriteString("total_chapters=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalChapters))
	builder.WriteString(", ")
	builder.WriteString("estimated_study_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedStudyHours))
	builder.WriteByte(')')
	return builder.String()
}

// Courses is a parsable slice of Course.
type Courses []*Course
