// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studium/ent/chapter"
	"github.com/abhisek/studium/ent/course"
	"github.com/abhisek/studium/ent/schema"
	"github.com/abhisek/studium/ent/studysession"
	"github.com/abhisek/studium/ent/subject"
)

// StudySession is the model entity for the StudySession schema.
type StudySession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SessionStart holds the value of the "session_start" field.
	SessionStart time.Time `json:"session_start,omitempty"`
	// SessionEnd holds the value of the "session_end" field.
	SessionEnd *time.Time `json:"session_end,omitempty"`
	// DurationMinutes holds the value of the "duration_minutes" field.
	DurationMinutes *int `json:"duration_minutes,omitempty"`
	// Activities holds the value of the "activities" field.
	Activities []schema.Activity `json:"activities,omitempty"`
	// ConceptsStudied holds the value of the "concepts_studied" field.
	ConceptsStudied []string `json:"concepts_studied,omitempty"`
	// DifficultyAdjustments holds the value of the "difficulty_adjustments" field.
	DifficultyAdjustments int `json:"difficulty_adjustments,omitempty"`
	// CompletionProgress holds the value of the "completion_progress" field.
	CompletionProgress float64 `json:"completion_progress,omitempty"`
	// QuestionsAsked holds the value of the "questions_asked" field.
	QuestionsAsked int `json:"questions_asked,omitempty"`
	// BookmarksCreated holds the value of the "bookmarks_created" field.
	BookmarksCreated int `json:"bookmarks_created,omitempty"`
	// QuizzesCompleted holds the value of the "quizzes_completed" field.
	QuizzesCompleted int `json:"quizzes_completed,omitempty"`
	// EngagementScore holds the value of the "engagement_score" field.
	EngagementScore float64 `json:"engagement_score,omitempty"`
	// FocusScore holds the value of the "focus_score" field.
	FocusScore float64 `json:"focus_score,omitempty"`
	// LearningEffectiveness holds the value of the "learning_effectiveness" field.
	LearningEffectiveness float64 `json:"learning_effectiveness,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID *int `json:"course_id,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID *int `json:"subject_id,omitempty"`
	// ChapterID holds the value of the "chapter_id" field.
	ChapterID *int `json:"chapter_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StudySessionQuery when eager-loading is set.
	Edges        StudySessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StudySessionEdges holds the relations/edges for other nodes in the graph.
type StudySessionEdges struct {
	// Course holds the value of the course edge.
	Course *Course `json:"course,omitempty"`
	// Subject holds the value of the subject edge.
	Subject *Subject `json:"subject,omitempty"`
	// Chapter holds the value of the chapter edge.
	Chapter *Chapter `json:"chapter,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CourseOrErr returns the Course value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StudySessionEdges) CourseOrErr() (*Course, error) {
	if e.Course != nil {
		return e.Course, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: course.Label}
	}
	return nil, &NotLoadedError{edge: "course"}
}

// SubjectOrErr returns the Subject value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StudySessionEdges) SubjectOrErr() (*Subject, error) {
	if e.Subject != nil {
		return e.Subject, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: subject.Label}
	}
	return nil, &NotLoadedError{edge: "subject"}
}

// ChapterOrErr returns the Chapter value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StudySessionEdges) ChapterOrErr() (*Chapter, error) {
	if e.Chapter != nil {
		return e.Chapter, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: chapter.Label}
	}
	return nil, &NotLoadedError{edge: "chapter"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudySession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studysession.FieldActivities, studysession.FieldConceptsStudied:
			values[i] = new([]byte)
		case studysession.FieldCompletionProgress, studysession.FieldEngagementScore, studysession.FieldFocusScore, studysession.FieldLearningEffectiveness:
			values[i] = new(sql.NullFloat64)
		case studysession.FieldID, studysession.FieldDurationMinutes, studysession.FieldDifficultyAdjustments, studysession.FieldQuestionsAsked, studysession.FieldBookmarksCreated, studysession.FieldQuizzesCompleted, studysession.FieldCourseID, studysession.FieldSubjectID, studysession.FieldChapterID:
			values[i] = new(sql.NullInt64)
		case studysession.FieldUserID:
			values[i] = new(sql.NullString)
		case studysession.FieldSessionStart, studysession.FieldSessionEnd:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudySession fields.
func (_m *StudySession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studysession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case studysession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case studysession.FieldSessionStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field session_start", values[i])
			} else if value.Valid {
				_m.SessionStart = value.Time
			}
		case studysession.FieldSessionEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field session_end", values[i])
			} else if value.Valid {
				_m.SessionEnd = new(time.Time)
				*_m.SessionEnd = value.Time
			}
		case studysession.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = new(int)
				*_m.DurationMinutes = int(value.Int64)
			}
		case studysession.FieldActivities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field activities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Activities); err != nil {
					return fmt.Errorf("unmarshal field activities: %w", err)
				}
			}
		case studysession.FieldConceptsStudied:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concepts_studied", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConceptsStudied); err != nil {
					return fmt.Errorf("unmarshal field concepts_studied: %w", err)
				}
			}
		case studysession.FieldDifficultyAdjustments:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_adjustments", values[i])
			} else if value.Valid {
				_m.DifficultyAdjustments = int(value.Int64)
			}
		case studysession.FieldCompletionProgress:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_progress", values[i])
			} else if value.Valid {
				_m.CompletionProgress = value.Float64
			}
		case studysession.FieldQuestionsAsked:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_asked", values[i])
			} else if value.Valid {
				_m.QuestionsAsked = int(value.Int64)
			}
		case studysession.FieldBookmarksCreated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bookmarks_created", values[i])
			} else if value.Valid {
				_m.BookmarksCreated = int(value.Int64)
			}
		case studysession.FieldQuizzesCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quizzes_completed", values[i])
			} else if value.Valid {
				_m.QuizzesCompleted = int(value.Int64)
			}
		case studysession.FieldEngagementScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_score", values[i])
			} else if value.Valid {
				_m.EngagementScore = value.Float64
			}
		case studysession.FieldFocusScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field focus_score", values[i])
			} else if value.Valid {
				_m.FocusScore = value.Float64
			}
		case studysession.FieldLearningEffectiveness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field learning_effectiveness", values[i])
			} else if value.Valid {
				_m.LearningEffectiveness = value.Float64
			}
		case studysession.FieldCourseID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				_m.CourseID = new(int)
				*_m.CourseID = int(value.Int64)
			}
		case studysession.FieldSubjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = new(int)
				*_m.SubjectID = int(value.Int64)
			}
		case studysession.FieldChapterID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_id", values[i])
			} else if value.Valid {
				_m.ChapterID = new(int)
				*_m.ChapterID = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudySession.
// This includes values selected through modifiers, order, etc.
func (_m *StudySession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCourse queries the "course" edge of the StudySession entity.
func (_m *StudySession) QueryCourse() *CourseQuery {
	return NewStudySessionClient(_m.config).QueryCourse(_m)
}

// QuerySubject queries the "subject" edge of the StudySession entity.
func (_m *StudySession) QuerySubject() *SubjectQuery {
	return NewStudySessionClient(_m.config).QuerySubject(_m)
}

// QueryChapter queries the "chapter" edge of the StudySession entity.
func (_m *StudySession) QueryChapter() *ChapterQuery {
	return NewStudySessionClient(_m.config).QueryChapter(_m)
}

// Update returns a builder for updating this StudySession.
// Note that you need to call StudySession.Unwrap() before calling this method if this StudySession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudySession) Update() *StudySessionUpdateOne {
	return NewStudySessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudySession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudySession) Unwrap() *StudySession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudySession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudySession) String() string {
	var builder strings.Builder
	builder.WriteString("StudySession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("session_start=")
	builder.WriteString(_m.SessionStart.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.SessionEnd; v != nil {
		builder.WriteString("session_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationMinutes; v != nil {
		builder.WriteString("duration_minutes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("activities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Activities))
	builder.WriteString(", ")
	builder.WriteString("concepts_studied=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptsStudied))
	builder.WriteString(", ")
	builder.WriteString("difficulty_adjustments=")
	builder.WriteString(fmt.Sprintf("%v", _m.DifficultyAdjustments))
	builder.WriteString(", ")
	builder.WriteString("completion_progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionProgress))
	builder.WriteString(", ")
	builder.WriteString("questions_asked=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsAsked))
	builder.WriteString(", ")
	builder.WriteString("bookmarks_created=")
	builder.WriteString(fmt.Sprintf("%v", _m.BookmarksCreated))
	builder.WriteString(", ")
	builder.WriteString("quizzes_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizzesCompleted))
	builder.WriteString(", ")
	builder.WriteString("engagement_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.EngagementScore))
	builder.WriteString(", ")
	builder.WriteString("focus_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FocusScore))
	builder.WriteString(", ")
	builder.WriteString("learning_effectiveness=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearningEffectiveness))
	builder.WriteString(", ")
	if v := _m.CourseID; v != nil {
		builder.WriteString("course_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SubjectID; v != nil {
		builder.WriteString("subject_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ChapterID; v != nil {
		builder.WriteString("chapter_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// StudySessions is a parsable slice of StudySession.
type StudySessions []*StudySession
