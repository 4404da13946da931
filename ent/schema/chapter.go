package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Chapter is a subdivision of a subject holding typed content blocks.
// The per-type counters are derived by scanning content_blocks and are
// recomputed by the rollup chain after every content write.
type Chapter struct {
	ent.Schema
}

func (Chapter) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Chapter) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			MaxLen(200).
			NotEmpty(),
		field.Int("chapter_number").
			Default(0),
		field.JSON("intro_summary", map[string]any{}).
			Optional().
			Comment("Generated concepts, objectives, context"),
		field.JSON("content_blocks", []map[string]any{}).
			Optional().
			Comment("Typed content blocks; the type key drives the counters below"),
		field.JSON("chapter_metadata", map[string]any{}).
			Optional(),
		field.String("difficulty_level").
			Default("intermediate"),
		field.Int("estimated_study_time").
			Default(30).
			Comment("Minutes"),
		field.Int("total_content_blocks").
			Default(0),
		field.Int("concept_count").
			Default(0),
		field.Int("visualization_count").
			Default(0),
		field.Int("exercise_count").
			Default(0),
		field.Int("case_study_count").
			Default(0),
		field.Int("subject_id"),
	}
}

func (Chapter) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("subject", Subject.Type).
			Ref("chapters").
			Field("subject_id").
			Unique().
			Required(),
		edge.To("progress", UserProgress.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("bookmarks", Bookmark.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("quiz_results", QuizResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("study_sessions", StudySession.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

func (Chapter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id", "chapter_number"),
	}
}
