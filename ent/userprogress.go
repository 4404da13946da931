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
	"github.com/abhisek/studium/ent/subject"
	"github.com/abhisek/studium/ent/userprogress"
)

// UserProgress is the model entity for the UserProgress schema.
type UserProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// not_started, in_progress, completed, mastered
	Status string `json:"status,omitempty"`
	// CompletionPercentage holds the value of the "completion_percentage" field.
	CompletionPercentage float64 `json:"completion_percentage,omitempty"`
	// novice, developing, proficient, expert
	MasteryLevel string `json:"mastery_level,omitempty"`
	// TimeSpentMinutes holds the value of the "time_spent_minutes" field.
	TimeSpentMinutes int `json:"time_spent_minutes,omitempty"`
	// SessionsCount holds the value of the "sessions_count" field.
	SessionsCount int `json:"sessions_count,omitempty"`
	// LastAccessed holds the value of the "last_accessed" field.
	LastAccessed time.Time `json:"last_accessed,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// QuestionsAsked holds the value of the "questions_asked" field.
	QuestionsAsked int `json:"questions_asked,omitempty"`
	// ConceptsBookmarked holds the value of the "concepts_bookmarked" field.
	ConceptsBookmarked int `json:"concepts_bookmarked,omitempty"`
	// QuizzesTaken holds the value of the "quizzes_taken" field.
	QuizzesTaken int `json:"quizzes_taken,omitempty"`
	// AvgQuizScore holds the value of the "avg_quiz_score" field.
	AvgQuizScore float64 `json:"avg_quiz_score,omitempty"`
	// DifficultyPreference holds the value of the "difficulty_preference" field.
	DifficultyPreference string `json:"difficulty_preference,omitempty"`
	// Multiplier applied to study time estimates
	LearningVelocity float64 `json:"learning_velocity,omitempty"`
	// Concepts the user keeps getting wrong
	StruggleAreas []string `json:"struggle_areas,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID int `json:"subject_id,omitempty"`
	// Nil marks the subject-level row
	ChapterID *int `json:"chapter_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserProgressQuery when eager-loading is set.
	Edges        UserProgressEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserProgressEdges holds the relations/edges for other nodes in the graph.
type UserProgressEdges struct {
	// Subject holds the value of the subject edge.
	Subject *Subject `json:"subject,omitempty"`
	// Chapter holds the value of the chapter edge.
	Chapter *Chapter `json:"chapter,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SubjectOrErr returns the Subject value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserProgressEdges) SubjectOrErr() (*Subject, error) {
	if e.Subject != nil {
		return e.Subject, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: subject.Label}
	}
	return nil, &NotLoadedError{edge: "subject"}
}

// ChapterOrErr returns the Chapter value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserProgressEdges) ChapterOrErr() (*Chapter, error) {
	if e.Chapter != nil {
		return e.Chapter, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: chapter.Label}
	}
	return nil, &NotLoadedError{edge: "chapter"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userprogress.FieldStruggleAreas:
			values[i] = new([]byte)
		case userprogress.FieldCompletionPercentage, userprogress.FieldAvgQuizScore, userprogress.FieldLearningVelocity:
			values[i] = new(sql.NullFloat64)
		case userprogress.FieldID, userprogress.FieldTimeSpentMinutes, userprogress.FieldSessionsCount, userprogress.FieldQuestionsAsked, userprogress.FieldConceptsBookmarked, userprogress.FieldQuizzesTaken, userprogress.FieldSubjectID, userprogress.FieldChapterID:
			values[i] = new(sql.NullInt64)
		case userprogress.FieldUserID, userprogress.FieldStatus, userprogress.FieldMasteryLevel, userprogress.FieldDifficultyPreference:
			values[i] = new(sql.NullString)
		case userprogress.FieldLastAccessed, userprogress.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserProgress fields.
func (_m *UserProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userprogress.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userprogress.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case userprogress.FieldCompletionPercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_percentage", values[i])
			} else if value.Valid {
				_m.CompletionPercentage = value.Float64
			}
		case userprogress.FieldMasteryLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_level", values[i])
			} else if value.Valid {
				_m.MasteryLevel = value.String
			}
		case userprogress.FieldTimeSpentMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_minutes", values[i])
			} else if value.Valid {
				_m.TimeSpentMinutes = int(value.Int64)
			}
		case userprogress.FieldSessionsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sessions_count", values[i])
			} else if value.Valid {
				_m.SessionsCount = int(value.Int64)
			}
		case userprogress.FieldLastAccessed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_accessed", values[i])
			} else if value.Valid {
				_m.LastAccessed = value.Time
			}
		case userprogress.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case userprogress.FieldQuestionsAsked:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_asked", values[i])
			} else if value.Valid {
				_m.QuestionsAsked = int(value.Int64)
			}
		case userprogress.FieldConceptsBookmarked:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field concepts_bookmarked", values[i])
			} else if value.Valid {
				_m.ConceptsBookmarked = int(value.Int64)
			}
		case userprogress.FieldQuizzesTaken:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quizzes_taken", values[i])
			} else if value.Valid {
				_m.QuizzesTaken = int(value.Int64)
			}
		case userprogress.FieldAvgQuizScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_quiz_score", values[i])
			} else if value.Valid {
				_m.AvgQuizScore = value.Float64
			}
		case userprogress.FieldDifficultyPreference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_preference", values[i])
			} else if value.Valid {
				_m.DifficultyPreference = value.String
			}
		case userprogress.FieldLearningVelocity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field learning_velocity", values[i])
			} else if value.Valid {
				_m.LearningVelocity = value.Float64
			}
		case userprogress.FieldStruggleAreas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field struggle_areas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StruggleAreas); err != nil {
					return fmt.Errorf("unmarshal field struggle_areas: %w", err)
				}
			}
		case userprogress.FieldSubjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = int(value.Int64)
			}
		case userprogress.FieldChapterID:
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

// Value returns the ent.Value that was dynamically selected and assigned to the UserProgress.
// This includes values selected through modifiers, order, etc.
func (_m *UserProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubject queries the "subject" edge of the UserProgress entity.
func (_m *UserProgress) QuerySubject() *SubjectQuery {
	return NewUserProgressClient(_m.config).QuerySubject(_m)
}

// QueryChapter queries the "chapter" edge of the UserProgress entity.
func (_m *UserProgress) QueryChapter() *ChapterQuery {
	return NewUserProgressClient(_m.config).QueryChapter(_m)
}

// Update returns a builder for updating this UserProgress.
// Note that you need to call UserProgress.Unwrap() before calling this method if this UserProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserProgress) Update() *UserProgressUpdateOne {
	return NewUserProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserProgress) Unwrap() *UserProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserProgress) String() string {
	var builder strings.Builder
	builder.WriteString("UserProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("completion_percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionPercentage))
	builder.WriteString(", ")
	builder.WriteString("mastery_level=")
	builder.WriteString(_m.MasteryLevel)
	builder.WriteString(", ")
	builder.WriteString("time_spent_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentMinutes))
	builder.WriteString(", ")
	builder.WriteString("sessions_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionsCount))
	builder.WriteString(", ")
	builder.WriteString("last_accessed=")
	builder.WriteString(_m.LastAccessed.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("questions_asked=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsAsked))
	builder.WriteString(", ")
	builder.WriteString("concepts_bookmarked=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptsBookmarked))
	builder.WriteString(", ")
	builder.WriteString("quizzes_taken=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizzesTaken))
	builder.WriteString(", ")
	builder.WriteString("avg_quiz_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgQuizScore))
	builder.WriteString(", ")
	builder.WriteString("difficulty_preference=")
	builder.WriteString(_m.DifficultyPreference)
	builder.WriteString(", ")
	builder.WriteString("learning_velocity=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearningVelocity))
	builder.WriteString(", ")
	builder.WriteString("struggle_areas=")
	builder.WriteString(fmt.Sprintf("%v", _m.StruggleAreas))
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubjectID))
	builder.WriteString(", ")
	if v := _m.ChapterID; v != nil {
		builder.WriteString("chapter_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// UserProgresses is a parsable slice of UserProgress.
type UserProgresses []*UserProgress
