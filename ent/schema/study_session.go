package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Activity is one logged action inside a study session.
type Activity struct {
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Details   map[string]any `json:"details,omitempty"`
}

// StudySession is one open-ended study session. session_end is nil while
// the session is active; at most one active session exists per user
// (application-enforced, see the sessions service).
type StudySession struct {
	ent.Schema
}

func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			MaxLen(50).
			NotEmpty(),
		field.Time("session_start").
			Default(time.Now).
			Immutable(),
		field.Time("session_end").
			Optional().
			Nillable(),
		field.Int("duration_minutes").
			Optional().
			Nillable(),
		field.JSON("activities", []Activity{}).
			Optional(),
		field.JSON("concepts_studied", []string{}).
			Optional(),
		field.Int("difficulty_adjustments").
			Default(0),
		field.Float("completion_progress").
			Default(0),
		field.Int("questions_asked").
			Default(0),
		field.Int("bookmarks_created").
			Default(0),
		field.Int("quizzes_completed").
			Default(0),
		field.Float("engagement_score").
			Default(0),
		field.Float("focus_score").
			Default(0),
		field.Float("learning_effectiveness").
			Default(0),
		field.Int("course_id").
			Optional().
			Nillable(),
		field.Int("subject_id").
			Optional().
			Nillable(),
		field.Int("chapter_id").
			Optional().
			Nillable(),
	}
}

func (StudySession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("course", Course.Type).
			Ref("study_sessions").
			Field("course_id").
			Unique(),
		edge.From("subject", Subject.Type).
			Ref("study_sessions").
			Field("subject_id").
			Unique(),
		edge.From("chapter", Chapter.Type).
			Ref("study_sessions").
			Field("chapter_id").
			Unique(),
	}
}

func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "session_start"),
	}
}
