package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CourseEnrollment ties a user to a course. Exactly one row per
// (user, course) pair.
type CourseEnrollment struct {
	ent.Schema
}

func (CourseEnrollment) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			MaxLen(50).
			NotEmpty(),
		field.Time("enrollment_date").
			Default(time.Now).
			Immutable(),
		field.Time("target_completion_date").
			Optional().
			Nillable(),
		field.Int("study_goal_hours_per_week").
			Default(10),
		field.Float("overall_progress_percentage").
			Default(0).
			Comment("Cached; refreshed by the progress aggregator"),
		field.Int("subjects_completed").
			Default(0),
		field.Int("chapters_completed").
			Default(0),
		field.Int("total_study_time_minutes").
			Default(0),
		field.String("preferred_difficulty").
			Default("intermediate"),
		field.String("learning_style_preference").
			Default("mixed"),
		field.Time("last_activity").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("course_id"),
	}
}

func (CourseEnrollment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("course", Course.Type).
			Ref("enrollments").
			Field("course_id").
			Unique().
			Required(),
	}
}

func (CourseEnrollment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "course_id").
			Unique(),
	}
}
