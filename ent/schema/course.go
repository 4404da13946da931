package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Course is the top-level organizational unit. It groups the subjects
// (processed books) a learner studies together.
type Course struct {
	ent.Schema
}

func (Course) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(200).
			NotEmpty().
			Unique(),
		field.Text("description").
			Optional(),
		field.String("academic_level").
			Default("masters").
			Comment("undergraduate, masters, phd, professional"),
		field.String("institution").
			Optional(),
		field.String("instructor").
			Optional(),
		field.String("semester").
			Optional(),
		field.Int("total_subjects").
			Default(0).
			Comment("Rollup: count of subjects, recomputed on subject writes"),
		field.Int("total_chapters").
			Default(0).
			Comment("Rollup: sum of subject chapter counts"),
		field.Int("estimated_study_hours").
			Default(0).
			Comment("Rollup: sum of subject read minutes / 60"),
	}
}

func (Course) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("subjects", Subject.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("enrollments", CourseEnrollment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("study_sessions", StudySession.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}
