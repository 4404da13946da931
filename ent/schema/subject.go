package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subject is one processed book/PDF within a course. Each successful
// PDF-processing call creates exactly one subject.
type Subject struct {
	ent.Schema
}

func (Subject) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Subject) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(200).
			NotEmpty(),
		field.JSON("preface", map[string]any{}).
			Optional().
			Comment("Generated welcome, objectives, relevance"),
		field.JSON("overall_summary", map[string]any{}).
			Optional().
			Comment("Generated themes, applications, difficulty"),
		field.String("subject_domain").
			Default("general").
			Comment("Domain key from subject analysis: economics, computer_science, ..."),
		field.String("learning_style").
			Default("mixed").
			Comment("theoretical, practical, mixed"),
		field.String("complexity_level").
			Default("intermediate"),
		field.JSON("subject_analysis", map[string]any{}).
			Optional().
			Comment("Full analysis profile returned by the model"),
		field.String("original_filename").
			Optional(),
		field.Float("file_size_mb").
			Optional(),
		field.Int("processing_time_seconds").
			Optional(),
		field.Int("total_chapters").
			Default(0).
			Comment("Rollup: count of chapters"),
		field.Int("estimated_read_time").
			Default(0).
			Comment("Rollup: sum of chapter study minutes"),
		field.Int("interactive_elements_count").
			Default(0).
			Comment("Rollup: sum of chapter visualization + exercise counts"),
		field.Int("course_id"),
	}
}

func (Subject) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("course", Course.Type).
			Ref("subjects").
			Field("course_id").
			Unique().
			Required(),
		edge.To("chapters", Chapter.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("progress", UserProgress.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("study_sessions", StudySession.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

func (Subject) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
		index.Fields("subject_domain"),
	}
}
