package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Bookmark marks one content block inside a chapter for later review.
type Bookmark struct {
	ent.Schema
}

func (Bookmark) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			MaxLen(50).
			NotEmpty(),
		field.Int("content_block_index").
			Default(0),
		field.String("content_block_type").
			Optional().
			Comment("concept_explanation, case_study, ..."),
		field.String("title").
			MaxLen(200).
			NotEmpty(),
		field.Text("note").
			Optional(),
		field.JSON("tags", []string{}).
			Optional(),
		field.String("difficulty_when_bookmarked").
			Optional(),
		field.String("reason_for_bookmark").
			Default("important").
			Comment("important, difficult, review_later, example"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_reviewed").
			Optional().
			Nillable(),
		field.Int("chapter_id"),
	}
}

func (Bookmark) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chapter", Chapter.Type).
			Ref("bookmarks").
			Field("chapter_id").
			Unique().
			Required(),
	}
}

func (Bookmark) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "chapter_id", "content_block_index").
			Unique(),
	}
}
