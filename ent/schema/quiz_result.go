package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConceptScore is the per-concept correct/total tally stored with a quiz
// result.
type ConceptScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// AnsweredQuestion is one graded question kept for review.
type AnsweredQuestion struct {
	UserAnswer    *int   `json:"user_answer"`
	CorrectAnswer int    `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	QuestionType  string `json:"question_type"`
	ConceptTested string `json:"concept_tested"`
}

// QuizResult is one submitted quiz attempt.
type QuizResult struct {
	ent.Schema
}

func (QuizResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			MaxLen(50).
			NotEmpty(),
		field.String("quiz_title").
			MaxLen(200).
			NotEmpty(),
		field.String("quiz_type").
			Default("practice").
			Comment("practice, assessment, review"),
		field.String("subject_domain").
			Optional(),
		field.Int("score"),
		field.Int("total_questions"),
		field.Float("percentage"),
		field.String("difficulty_level").
			Default("intermediate"),
		field.Int("time_taken_seconds").
			Optional().
			Nillable(),
		field.JSON("concept_mastery", map[string]ConceptScore{}).
			Optional(),
		field.JSON("areas_for_improvement", []string{}).
			Optional().
			Comment("Concepts below the weak threshold on this attempt"),
		field.JSON("questions", []map[string]any{}).
			Optional().
			Comment("Original quiz questions, kept for review"),
		field.JSON("user_answers", map[string]AnsweredQuestion{}).
			Optional().
			Comment("Keyed by question index"),
		field.Time("completed_at").
			Default(time.Now).
			Immutable(),
		field.Int("chapter_id"),
	}
}

func (QuizResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chapter", Chapter.Type).
			Ref("quiz_results").
			Field("chapter_id").
			Unique().
			Required(),
	}
}

func (QuizResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "chapter_id"),
		index.Fields("user_id", "subject_domain"),
	}
}
