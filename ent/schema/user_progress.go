package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserProgress tracks one user's progress on a subject or chapter.
// A row with a nil chapter_id is the subject-level progress row; exactly
// one row exists per (user, subject, chapter) triple including it.
type UserProgress struct {
	ent.Schema
}

func (UserProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			MaxLen(50).
			NotEmpty(),
		field.String("status").
			Default("not_started").
			Comment("not_started, in_progress, completed, mastered"),
		field.Float("completion_percentage").
			Default(0),
		field.String("mastery_level").
			Default("novice").
			Comment("novice, developing, proficient, expert"),
		field.Int("time_spent_minutes").
			Default(0),
		field.Int("sessions_count").
			Default(0),
		field.Time("last_accessed").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("questions_asked").
			Default(0),
		field.Int("concepts_bookmarked").
			Default(0),
		field.Int("quizzes_taken").
			Default(0),
		field.Float("avg_quiz_score").
			Default(0),
		field.String("difficulty_preference").
			Default("intermediate"),
		field.Float("learning_velocity").
			Default(1.0).
			Comment("Multiplier applied to study time estimates"),
		field.JSON("struggle_areas", []string{}).
			Optional().
			Comment("Concepts the user keeps getting wrong"),
		field.Int("subject_id"),
		field.Int("chapter_id").
			Optional().
			Nillable().
			Comment("Nil marks the subject-level row"),
	}
}

func (UserProgress) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("subject", Subject.Type).
			Ref("progress").
			Field("subject_id").
			Unique().
			Required(),
		edge.From("chapter", Chapter.Type).
			Ref("progress").
			Field("chapter_id").
			Unique(),
	}
}

func (UserProgress) Indexes() []ent.Index {
	return []ent.Index{
		// SQLite treats NULLs as distinct, so subject-level rows
		// (chapter_id IS NULL) are deduplicated by application logic.
		index.Fields("user_id", "subject_id", "chapter_id").
			Unique(),
		index.Fields("user_id", "chapter_id"),
	}
}
