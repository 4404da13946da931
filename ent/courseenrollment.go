// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studium/ent/course"
	"github.com/abhisek/studium/ent/courseenrollment"
)

// CourseEnrollment is the model entity for the CourseEnrollment schema.
type CourseEnrollment struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// EnrollmentDate holds the value of the "enrollment_date" field.
	EnrollmentDate time.Time `json:"enrollment_date,omitempty"`
	// TargetCompletionDate holds the value of the "target_completion_date" field.
	TargetCompletionDate *time.Time `json:"target_completion_date,omitempty"`
	// StudyGoalHoursPerWeek holds the value of the "study_goal_hours_per_week" field.
	StudyGoalHoursPerWeek int `json:"study_goal_hours_per_week,omitempty"`
	// Cached; refreshed by the progress aggregator
	OverallProgressPercentage float64 `json:"overall_progress_percentage,omitempty"`
	// SubjectsCompleted holds the value of the "subjects_completed" field.
	SubjectsCompleted int `json:"subjects_completed,omitempty"`
	// ChaptersCompleted holds the value of the "chapters_completed" field.
	ChaptersCompleted int `json:"chapters_completed,omitempty"`
	// TotalStudyTimeMinutes holds the value of the "total_study_time_minutes" field.
	TotalStudyTimeMinutes int `json:"total_study_time_minutes,omitempty"`
	// PreferredDifficulty holds the value of the "preferred_difficulty" field.
	PreferredDifficulty string `json:"preferred_difficulty,omitempty"`
	// LearningStylePreference holds the value of the "learning_style_preference" field.
	LearningStylePreference string `json:"learning_style_preference,omitempty"`
	// LastActivity holds the value of the "last_activity" field.
	LastActivity time.Time `json:"last_activity,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID int `json:"course_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CourseEnrollmentQuery when eager-loading is set.
	Edges        CourseEnrollmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CourseEnrollmentEdges holds the relations/edges for other nodes in the graph.
type CourseEnrollmentEdges struct {
	// Course holds the value of the course edge.
	Course *Course `json:"course,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CourseOrErr returns the Course value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CourseEnrollmentEdges) CourseOrErr() (*Course, error) {
	if e.Course != nil {
		return e.Course, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: course.Label}
	}
	return nil, &NotLoadedError{edge: "course"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CourseEnrollment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case courseenrollment.FieldOverallProgressPercentage:
			values[i] = new(sql.NullFloat64)
		case courseenrollment.FieldID, courseenrollment.FieldStudyGoalHoursPerWeek, courseenrollment.FieldSubjectsCompleted, courseenrollment.FieldChaptersCompleted, courseenrollment.FieldTotalStudyTimeMinutes, courseenrollment.FieldCourseID:
			values[i] = new(sql.NullInt64)
		case courseenrollment.FieldUserID, courseenrollment.FieldPreferredDifficulty, courseenrollment.FieldLearningStylePreference:
			values[i] = new(sql.NullString)
		case courseenrollment.FieldEnrollmentDate, courseenrollment.FieldTargetCompletionDate, courseenrollment.FieldLastActivity, courseenrollment.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CourseEnrollment fields.
func (_m *CourseEnrollment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case courseenrollment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case courseenrollment.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case courseenrollment.FieldEnrollmentDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field enrollment_date", values[i])
			} else if value.Valid {
				_m.EnrollmentDate = value.Time
			}
		case courseenrollment.FieldTargetCompletionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field target_completion_date", values[i])
			} else if value.Valid {
				_m.TargetCompletionDate = new(time.Time)
				*_m.TargetCompletionDate = value.Time
			}
		case courseenrollment.FieldStudyGoalHoursPerWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field study_goal_hours_per_week", values[i])
			} else if value.Valid {
				_m.StudyGoalHoursPerWeek = int(value.Int64)
			}
		case courseenrollment.FieldOverallProgressPercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_progress_percentage", values[i])
			} else if value.Valid {
				_m.OverallProgressPercentage = value.Float64
			}
		case courseenrollment.FieldSubjectsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subjects_completed", values[i])
			} else if value.Valid {
				_m.SubjectsCompleted = int(value.Int64)
			}
		case courseenrollment.FieldChaptersCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chapters_completed", values[i])
			} else if value.Valid {
				_m.ChaptersCompleted = int(value.Int64)
			}
		case courseenrollment.FieldTotalStudyTimeMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_study_time_minutes", values[i])
			} else if value.Valid {
				_m.TotalStudyTimeMinutes = int(value.Int64)
			}
		case courseenrollment.FieldPreferredDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_difficulty", values[i])
			} else if value.Valid {
				_m.PreferredDifficulty = value.String
			}
		case courseenrollment.FieldLearningStylePreference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learning_style_preference", values[i])
			} else if value.Valid {
				_m.LearningStylePreference = value.String
			}
		case courseenrollment.FieldLastActivity:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity", values[i])
			} else if value.Valid {
				_m.LastActivity = value.Time
			}
		case courseenrollment.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case courseenrollment.FieldCourseID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				_m.CourseID = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CourseEnrollment.
// This includes values selected through modifiers, order, etc.
func (_m *CourseEnrollment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCourse queries the "course" edge of the CourseEnrollment entity.
func (_m *CourseEnrollment) QueryCourse() *CourseQuery {
	return NewCourseEnrollmentClient(_m.config).QueryCourse(_m)
}

// Update returns a builder for updating this CourseEnrollment.
// Note that you need to call CourseEnrollment.Unwrap() before calling this method if this CourseEnrollment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CourseEnrollment) Update() *CourseEnrollmentUpdateOne {
	return NewCourseEnrollmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CourseEnrollment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CourseEnrollment) Unwrap() *CourseEnrollment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CourseEnrollment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CourseEnrollment) String() string {
	var builder strings.Builder
	builder.WriteString("CourseEnrollment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("enrollment_date=")
	builder.WriteString(_m.EnrollmentDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.TargetCompletionDate; v != nil {
		builder.WriteString("target_completion_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("study_goal_hours_per_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudyGoalHoursPerWeek))
	builder.WriteString(", ")
	builder.WriteString("overall_progress_percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallProgressPercentage))
	builder.WriteString(", ")
	builder.WriteString("subjects_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubjectsCompleted))
	builder.WriteString(", ")
	builder.WriteString("chapters_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChaptersCompleted))
	builder.WriteString(", ")
	builder.WriteString("total_study_time_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalStudyTimeMinutes))
	builder.WriteString(", ")
	builder.WriteString("preferred_difficulty=")
	builder.WriteString(_m.PreferredDifficulty)
	builder.WriteString(", ")
	builder.WriteString("learning_style_preference=")
	builder.WriteString(_m.LearningStylePreference)
	builder.WriteString(", ")
	builder.WriteString("last_activity=")
	builder.WriteString(_m.LastActivity.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("course_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CourseID))
	builder.WriteByte(')')
	return builder.String()
}

// CourseEnrollments is a parsable slice of CourseEnrollment.
type CourseEnrollments []*CourseEnrollment
