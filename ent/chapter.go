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
)

// Chapter is the model entity for the Chapter schema.
type Chapter struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// ChapterNumber holds the value of the "chapter_number" field.
	ChapterNumber int `json:"chapter_number,omitempty"`
	// Generated concepts, objectives, context
	IntroSummary map[string]interface{} `json:"intro_summary,omitempty"`
	// Typed content blocks; the type key drives the counters below
	ContentBlocks []map[string]interface{} `json:"content_blocks,omitempty"`
	// ChapterMetadata holds the value of the "chapter_metadata" field.
	ChapterMetadata map[string]interface{} `json:"chapter_metadata,omitempty"`
	// DifficultyLevel holds the value of the "difficulty_level" field.
	DifficultyLevel string `json:"difficulty_level,omitempty"`
	// Minutes
	EstimatedStudyTime int `json:"estimated_study_time,omitempty"`
	// TotalContentBlocks holds the value of the "total_content_blocks" field.
	TotalContentBlocks int `json:"total_content_blocks,omitempty"`
	// ConceptCount holds the value of the "concept_count" field.
	ConceptCount int `json:"concept_count,omitempty"`
	// VisualizationCount holds the value of the "visualization_count" field.
	VisualizationCount int `json:"visualization_count,omitempty"`
	// ExerciseCount holds the value of the "exercise_count" field.
	ExerciseCount int `json:"exercise_count,omitempty"`
	// CaseStudyCount holds the value of the "case_study_count" field.
	CaseStudyCount int `json:"case_study_count,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID int `json:"subject_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChapterQuery when eager-loading is set.
	Edges        ChapterEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChapterEdges holds the relations/edges for other nodes in the graph.
type ChapterEdges struct {
	// Subject holds the value of the subject edge.
	Subject *Subject `json:"subject,omitempty"`
	// Progress holds the value of the progress edge.
	Progress []*UserProgress `json:"progress,omitempty"`
	// Bookmarks holds the value of the bookmarks edge.
	Bookmarks []*Bookmark `json:"bookmarks,omitempty"`
	// QuizResults holds the value of the quiz_results edge.
	QuizResults []*QuizResult `json:"quiz_results,omitempty"`
	// StudySessions holds the value of the study_sessions edge.
	StudySessions []*StudySession `json:"study_sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// SubjectOrErr returns the Subject value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChapterEdges) SubjectOrErr() (*Subject, error) {
	if e.Subject != nil {
		return e.Subject, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: subject.Label}
	}
	return nil, &NotLoadedError{edge: "subject"}
}

// ProgressOrErr returns the Progress value or an error if the edge
// was not loaded in eager-loading.
func (e ChapterEdges) ProgressOrErr() ([]*UserProgress, error) {
	if e.loadedTypes[1] {
		return e.Progress, nil
	}
	return nil, &NotLoadedError{edge: "progress"}
}

// BookmarksOrErr returns the Bookmarks value or an error if the edge
// was not loaded in eager-loading.
func (e ChapterEdges) BookmarksOrErr() ([]*Bookmark, error) {
	if e.loadedTypes[2] {
		return e.Bookmarks, nil
	}
	return nil, &NotLoadedError{edge: "bookmarks"}
}

// QuizResultsOrErr returns the QuizResults value or an error if the edge
// was not loaded in eager-loading.
func (e ChapterEdges) QuizResultsOrErr() ([]*QuizResult, error) {
	if e.loadedTypes[3] {
		return e.QuizResults, nil
	}
	return nil, &NotLoadedError{edge: "quiz_results"}
}

// StudySessionsOrErr returns the StudySessions value or an error if the edge
// was not loaded in eager-loading.
func (e ChapterEdges) StudySessionsOrErr() ([]*StudySession, error) {
	if e.loadedTypes[4] {
		return e.StudySessions, nil
	}
	return nil, &NotLoadedError{edge: "study_sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Chapter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chapter.FieldIntroSummary, chapter.FieldContentBlocks, chapter.FieldChapterMetadata:
			values[i] = new([]byte)
		case chapter.FieldID, chapter.FieldChapterNumber, chapter.FieldEstimatedStudyTime, chapter.FieldTotalContentBlocks, chapter.FieldConceptCount, chapter.FieldVisualizationCount, chapter.FieldExerciseCount, chapter.FieldCaseStudyCount, chapter.FieldSubjectID:
			values[i] = new(sql.NullInt64)
		case chapter.FieldTitle, chapter.FieldDifficultyLevel:
			values[i] = new(sql.NullString)
		case chapter.FieldCreatedAt, chapter.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Chapter fields.
func (_m *Chapter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chapter.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case chapter.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case chapter.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case chapter.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case chapter.FieldChapterNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_number", values[i])
			} else if value.Valid {
				_m.ChapterNumber = int(value.Int64)
			}
		case chapter.FieldIntroSummary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field intro_summary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.IntroSummary); err != nil {
					return fmt.Errorf("unmarshal field intro_summary: %w", err)
				}
			}
		case chapter.FieldContentBlocks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_blocks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContentBlocks); err != nil {
					return fmt.Errorf("unmarshal field content_blocks: %w", err)
				}
			}
		case chapter.FieldChapterMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChapterMetadata); err != nil {
					return fmt.Errorf("unmarshal field chapter_metadata: %w", err)
				}
			}
		case chapter.FieldDifficultyLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_level", values[i])
			} else if value.Valid {
				_m.DifficultyLevel = value.String
			}
		case chapter.FieldEstimatedStudyTime:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_study_time", values[i])
			} else if value.Valid {
				_m.EstimatedStudyTime = int(value.Int64)
			}
		case chapter.FieldTotalContentBlocks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_content_blocks", values[i])
			} else if value.Valid {
				_m.TotalContentBlocks = int(value.Int64)
			}
		case chapter.FieldConceptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field concept_count", values[i])
			} else if value.Valid {
				_m.ConceptCount = int(value.Int64)
			}
		case chapter.FieldVisualizationCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field visualization_count", values[i])
			} else if value.Valid {
				_m.VisualizationCount = int(value.Int64)
			}
		case chapter.FieldExerciseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exercise_count", values[i])
			} else if value.Valid {
				_m.ExerciseCount = int(value.Int64)
			}
		case chapter.FieldCaseStudyCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field case_study_count", values[i])
			} else if value.Valid {
				_m.CaseStudyCount = int(value.Int64)
			}
		case chapter.FieldSubjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Chapter.
// This includes values selected through modifiers, order, etc.
func (_m *Chapter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubject queries the "subject" edge of the Chapter entity.
func (_m *Chapter) QuerySubject() *SubjectQuery {
	return NewChapterClient(_m.config).QuerySubject(_m)
}

// QueryProgress queries the "progress" edge of the Chapter entity.
func (_m *Chapter) QueryProgress() *UserProgressQuery {
	return NewChapterClient(_m.config).QueryProgress(_m)
}

// QueryBookmarks queries the "bookmarks" edge of the Chapter entity.
func (_m *Chapter) QueryBookmarks() *BookmarkQuery {
	return NewChapterClient(_m.config).QueryBookmarks(_m)
}

// QueryQuizResults queries the "quiz_results" edge of the Chapter entity.
func (_m *Chapter) QueryQuizResults() *QuizResultQuery {
	return NewChapterClient(_m.config).QueryQuizResults(_m)
}

// QueryStudySessions queries the "study_sessions" edge of the Chapter entity.
func (_m *Chapter) QueryStudySessions() *StudySessionQuery {
	return NewChapterClient(_m.config).QueryStudySessions(_m)
}

// Update returns a builder for updating this Chapter.
// Note that you need to call Chapter.Unwrap() before calling this method if this Chapter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Chapter) Update() *ChapterUpdateOne {
	return NewChapterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Chapter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Chapter) Unwrap() *Chapter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Chapter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Chapter) String() string {
	var builder strings.Builder
	builder.WriteString("Chapter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("chapter_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChapterNumber))
	builder.WriteString(", ")
	builder.WriteString("intro_summary=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntroSummary))
	builder.WriteString(", ")
	builder.WriteString("content_blocks=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentBlocks))
	builder.WriteString(", ")
	builder.WriteString("chapter_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChapterMetadata))
	builder.WriteString(", ")
	builder.WriteString("difficulty_level=")
	builder.WriteString(_m.DifficultyLevel)
	builder.WriteString(", ")
	builder.WriteString("estimated_study_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedStudyTime))
	builder.WriteString(", ")
	builder.WriteString("total_content_blocks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalContentBlocks))
	builder.WriteString(", ")
	builder.WriteString("concept_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptCount))
	builder.WriteString(", ")
	builder.WriteString("visualization_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.VisualizationCount))
	builder.WriteString(", ")
	builder.WriteString("exercise_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExerciseCount))
	builder.WriteString(", ")
	builder.WriteString("case_study_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CaseStudyCount))
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubjectID))
	builder.WriteByte(')')
	return builder.String()
}

// Chapters is a parsable slice of Chapter.
type Chapters []*Chapter
