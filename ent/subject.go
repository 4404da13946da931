// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studium/ent/course"
	"github.com/abhisek/studium/ent/subject"
)

// Subject is the model entity for the Subject schema.
type Subject struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Generated welcome, objectives, relevance
	Preface map[string]interface{} `json:"preface,omitempty"`
	// Generated themes, applications, difficulty
	OverallSummary map[string]interface{} `json:"overall_summary,omitempty"`
	// Domain key from subject analysis: economics, computer_science, ...
	SubjectDomain string `json:"subject_domain,omitempty"`
	// theoretical, practical, mixed
	LearningStyle string `json:"learning_style,omitempty"`
	// ComplexityLevel holds the value of the "complexity_level" field.
	ComplexityLevel string `json:"complexity_level,omitempty"`
	// Full analysis profile returned by the model
	SubjectAnalysis map[string]interface{} `json:"subject_analysis,omitempty"`
	// OriginalFilename holds the value of the "original_filename" field.
	OriginalFilename string `json:"original_filename,omitempty"`
	// FileSizeMB holds the value of the "file_size_mb" field.
	FileSizeMB float64 `json:"file_size_mb,omitempty"`
	// ProcessingTimeSeconds holds the value of the "processing_time_seconds" field.
	ProcessingTimeSeconds int `json:"processing_time_seconds,omitempty"`
	// Rollup: count of chapters
	TotalChapters int `json:"total_chapters,omitempty"`
	// Rollup: sum of chapter study minutes
	EstimatedReadTime int `json:"estimated_read_time,omitempty"`
	// Rollup: sum of chapter visualization + exercise counts
	InteractiveElementsCount int `json:"interactive_elements_count,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID int `json:"course_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubjectQuery when eager-loading is set.
	Edges        SubjectEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubjectEdges holds the relations/edges for other nodes in the graph.
type SubjectEdges struct {
	// Course holds the value of the course edge.
	Course *Course `json:"course,omitempty"`
	// Chapters holds the value of the chapters edge.
	Chapters []*Chapter `json:"chapters,omitempty"`
	// Progress holds the value of the progress edge.
	Progress []*UserProgress `json:"progress,omitempty"`
	// StudySessions holds the value of the study_sessions edge.
	StudySessions []*StudySession `json:"study_sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// CourseOrErr returns the Course value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubjectEdges) CourseOrErr() (*Course, error) {
	if e.Course != nil {
		return e.Course, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: course.Label}
	}
	return nil, &NotLoadedError{edge: "course"}
}

// ChaptersOrErr returns the Chapters value or an error if the edge
// was not loaded in eager-loading.
func (e SubjectEdges) ChaptersOrErr() ([]*Chapter, error) {
	if e.loadedTypes[1] {
		return e.Chapters, nil
	}
	return nil, &NotLoadedError{edge: "chapters"}
}

// ProgressOrErr returns the Progress value or an error if the edge
// was not loaded in eager-loading.
func (e SubjectEdges) ProgressOrErr() ([]*UserProgress, error) {
	if e.loadedTypes[2] {
		return e.Progress, nil
	}
	return nil, &NotLoadedError{edge: "progress"}
}

// StudySessionsOrErr returns the StudySessions value or an error if the edge
// was not loaded in eager-loading.
func (e SubjectEdges) StudySessionsOrErr() ([]*StudySession, error) {
	if e.loadedTypes[3] {
		return e.StudySessions, nil
	}
	return nil, &NotLoadedError{edge: "study_sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Subject) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subject.FieldPreface, subject.FieldOverallSummary, subject.FieldSubjectAnalysis:
			values[i] = new([]byte)
		case subject.FieldFileSizeMB:
			values[i] = new(sql.NullFloat64)
		case subject.FieldID, subject.FieldProcessingTimeSeconds, subject.FieldTotalChapters, subject.FieldEstimatedReadTime, subject.FieldInteractiveElementsCount, subject.FieldCourseID:
			values[i] = new(sql.NullInt64)
		case subject.FieldName, subject.FieldSubjectDomain, subject.FieldLearningStyle, subject.FieldComplexityLevel, subject.FieldOriginalFilename:
			values[i] = new(sql.NullString)
		case subject.FieldCreatedAt, subject.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Subject fields.
func (_m *Subject) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subject.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case subject.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case subject.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case subject.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case subject.FieldPreface:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field preface", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Preface); err != nil {
					return fmt.Errorf("unmarshal field preface: %w", err)
				}
			}
		case subject.FieldOverallSummary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field overall_summary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OverallSummary); err != nil {
					return fmt.Errorf("unmarshal field overall_summary: %w", err)
				}
			}
		case subject.FieldSubjectDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_domain", values[i])
			} else if value.Valid {
				_m.SubjectDomain = value.String
			}
		case subject.FieldLearningStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learning_style", values[i])
			} else if value.Valid {
				_m.LearningStyle = value.String
			}
		case subject.FieldComplexityLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field complexity_level", values[i])
			} else if value.Valid {
				_m.ComplexityLevel = value.String
			}
		case subject.FieldSubjectAnalysis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field subject_analysis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SubjectAnalysis); err != nil {
					return fmt.Errorf("unmarshal field subject_analysis: %w", err)
				}
			}
		case subject.FieldOriginalFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_filename", values[i])
			} else if value.Valid {
				_m.OriginalFilename = value.String
			}
		case subject.FieldFileSizeMB:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size_mb", values[i])
			} else if value.Valid {
				_m.FileSizeMB = value.Float64
			}
		case subject.FieldProcessingTimeSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_time_seconds", values[i])
			} else if value.Valid {
				_m.ProcessingTimeSeconds = int(value.Int64)
			}
		case subject.FieldTotalChapters:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_chapters", values[i])
			} else if value.Valid {
				_m.TotalChapters = int(value.Int64)
			}
		case subject.FieldEstimatedReadTime:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_read_time", values[i])
			} else if value.Valid {
				_m.EstimatedReadTime = int(value.Int64)
			}
		case subject.FieldInteractiveElementsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interactive_elements_count", values[i])
			} else if value.Valid {
				_m.InteractiveElementsCount = int(value.Int64)
			}
		case subject.FieldCourseID:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Subject.
// This includes values selected through modifiers, order, etc.
func (_m *Subject) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCourse queries the "course" edge of the Subject entity.
func (_m *Subject) QueryCourse() *CourseQuery {
	return NewSubjectClient(_m.config).QueryCourse(_m)
}

// QueryChapters queries the "chapters" edge of the Subject entity.
func (_m *Subject) QueryChapters() *ChapterQuery {
	return NewSubjectClient(_m.config).QueryChapters(_m)
}

// QueryProgress queries the "progress" edge of the Subject entity.
func (_m *Subject) QueryProgress() *UserProgressQuery {
	return NewSubjectClient(_m.config).QueryProgress(_m)
}

// QueryStudySessions queries the "study_sessions" edge of the Subject entity.
func (_m *Subject) QueryStudySessions() *StudySessionQuery {
	return NewSubjectClient(_m.config).QueryStudySessions(_m)
}

// Update returns a builder for updating this Subject.
// Note that you need to call Subject.Unwrap() before calling this method if this Subject
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Subject) Update() *SubjectUpdateOne {
	return NewSubjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Subject entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Subject) Unwrap() *Subject {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Subject is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Subject) String() string {
	var builder strings.Builder
	builder.WriteString("Subject(")
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
	builder.WriteString("preface=")
	builder.WriteString(fmt.Sprintf("%v", _m.Preface))
	builder.WriteString(", ")
	builder.WriteString("overall_summary=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallSummary))
	builder.WriteString(", ")
	builder.WriteString("subject_domain=")
	builder.WriteString(_m.SubjectDomain)
	builder.WriteString(", ")
	builder.WriteString("learning_style=")
	builder.WriteString(_m.LearningStyle)
	builder.WriteString(", ")
	builder.WriteString("complexity_level=")
	builder.WriteString(_m.ComplexityLevel)
	builder.WriteString(", ")
	builder.WriteString("subject_analysis=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubjectAnalysis))
	builder.WriteString(", ")
	builder.WriteString("original_filename=")
	builder.WriteString(_m.OriginalFilename)
	builder.WriteString(", ")
	builder.WriteString("file_size_mb=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSizeMB))
	builder.WriteString(", ")
	builder.WriteString("processing_time_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingTimeSeconds))
	builder.WriteString(", ")
	builder.WriteString("total_chapters=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalChapters))
	builder.WriteString(", ")
	builder.WriteString("estimated_read_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedReadTime))
	builder.WriteString(", ")
	builder.WriteString("interactive_elements_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.InteractiveElementsCount))
	builder.WriteString(", ")
	builder.WriteString("course_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CourseID))
	builder.WriteByte(')')
	return builder.String()
}

// Subjects is a parsable slice of Subject.
type Subjects []*Subject
