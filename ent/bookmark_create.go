// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studium/ent/bookmark"
	"github.com/abhisek/studium/ent/chapter"
)

// BookmarkCreate is the builder for creating a Bookmark entity.
type BookmarkCreate struct {
	config
	mutation *BookmarkMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *BookmarkCreate) SetUserID(v string) *BookmarkCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetContentBlockIndex sets the "content_block_index" field.
func (_c *BookmarkCreate) SetContentBlockIndex(v int) *BookmarkCreate {
	_c.mutation.SetContentBlockIndex(v)
	return _c
}

// SetNillableContentBlockIndex sets the "content_block_index" field if the given value is not nil.
func (_c *BookmarkCreate) SetNillableContentBlockIndex(v *int) *BookmarkCreate {
	if v != nil {
		_c.SetContentBlockIndex(*v)
	}
	return _c
}

// SetContentBlockType sets the "content_block_type" field.
func (_c *BookmarkCreate) SetContentBlockType(v string) *BookmarkCreate {
	_c.mutation.SetContentBlockType(v)
	return _c
}

// SetNillableContentBlockType sets the "content_block_type" field if the given value is not nil.
func (_c *BookmarkCreate) SetNillableContentBlockType(v *string) *BookmarkCreate {
	if v != nil {
		_c.SetContentBlockType(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *BookmarkCreate) SetTitle(v string) *BookmarkCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *BookmarkCreate) SetNote(v string) *BookmarkCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *BookmarkCreate) SetNillableNote(v *string) *BookmarkCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *BookmarkCreate) SetTags(v []string) *BookmarkCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetDifficultyWhenBookmarked sets the "difficulty_when_bookmarked" field.
func (_c *BookmarkCreate) SetDifficultyWhenBookmarked(v string) *BookmarkCreate {
	_c.mutation.SetDifficultyWhenBookmarked(v)
	return _c
}

// SetNillableDifficultyWhenBookmarked sets the "difficulty_when_bookmarked" field if the given value is not nil.
func (_c *BookmarkCreate) SetNillableDifficultyWhenBookmarked(v *string) *BookmarkCreate {
	if v != nil {
		_c.SetDifficultyWhenBookmarked(*v)
	}
	return _c
}

// SetReasonForBookmark sets the "reason_for_bookmark" field.
func (_c *BookmarkCreate) SetReasonForBookmark(v string) *BookmarkCreate {
	_c.mutation.SetReasonForBookmark(v)
	return _c
}

// SetNillableReasonForBookmark sets the "reason_for_bookmark" field if the given value is not nil.
func (_c *BookmarkCreate) SetNillableReasonForBookmark(v *string) *BookmarkCreate {
	if v != nil {
		_c.SetReasonForBookmark(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BookmarkCreate) SetCreatedAt(v time.Time) *BookmarkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BookmarkCreate) SetNillableCreatedAt(v *time.Time) *BookmarkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastReviewed sets the "last_reviewed" field.
func (_c *BookmarkCreate) SetLastReviewed(v time.Time) *BookmarkCreate {
	_c.mutation.SetLastReviewed(v)
	return _c
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_c *BookmarkCreate) SetNillableLastReviewed(v *time.Time) *BookmarkCreate {
	if v != nil {
		_c.SetLastReviewed(*v)
	}
	return _c
}

// SetChapterID sets the "chapter_id" field.
func (_c *BookmarkCreate) SetChapterID(v int) *BookmarkCreate {
	_c.mutation.SetChapterID(v)
	return _c
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_c *BookmarkCreate) SetChapter(v *Chapter) *BookmarkCreate {
	return _c.SetChapterID(v.ID)
}

// Mutation returns the BookmarkMutation object of the builder.
func (_c *BookmarkCreate) Mutation() *BookmarkMutation {
	return _c.mutation
}

// Save creates the Bookmark in the database.
func (_c *BookmarkCreate) Save(ctx context.Context) (*Bookmark, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BookmarkCreate) SaveX(ctx context.Context) *Bookmark {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookmarkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookmarkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BookmarkCreate) defaults() {
	if _, ok := _c.mutation.ContentBlockIndex(); !ok {
		v := bookmark.DefaultContentBlockIndex
		_c.mutation.SetContentBlockIndex(v)
	}
	if _, ok := _c.mutation.ReasonForBookmark(); !ok {
		v := bookmark.DefaultReasonForBookmark
		_c.mutation.SetReasonForBookmark(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bookmark.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BookmarkCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Bookmark.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := bookmark.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Bookmark.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentBlockIndex(); !ok {
		return &ValidationError{Name: "content_block_index", err: errors.New(`ent: missing required field "Bookmark.content_block_index"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Bookmark.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := bookmark.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Bookmark.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReasonForBookmark(); !ok {
		return &ValidationError{Name: "reason_for_bookmark", err: errors.New(`ent: missing required field "Bookmark.reason_for_bookmark"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Bookmark.created_at"`)}
	}
	if _, ok := _c.mutation.ChapterID(); !ok {
		return &ValidationError{Name: "chapter_id", err: errors.New(`ent: missing required field "Bookmark.chapter_id"`)}
	}
	if len(_c.mutation.ChapterIDs()) == 0 {
		return &ValidationError{Name: "chapter", err: errors.New(`ent: missing required edge "Bookmark.chapter"`)}
	}
	return nil
}

func (_c *BookmarkCreate) sqlSave(ctx context.Context) (*Bookmark, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BookmarkCreate) createSpec() (*Bookmark, *sqlgraph.CreateSpec) {
	var (
		_node = &Bookmark{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bookmark.Table, sqlgraph.NewFieldSpec(bookmark.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(bookmark.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ContentBlockIndex(); ok {
		_spec.SetField(bookmark.FieldContentBlockIndex, field.TypeInt, value)
		_node.ContentBlockIndex = value
	}
	if value, ok := _c.mutation.ContentBlockType(); ok {
		_spec.SetField(bookmark.FieldContentBlockType, field.TypeString, value)
		_node.ContentBlockType = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(bookmark.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(bookmark.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(bookmark.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.DifficultyWhenBookmarked(); ok {
		_spec.SetField(bookmark.FieldDifficultyWhenBookmarked, field.TypeString, value)
		_node.DifficultyWhenBookmarked = value
	}
	if value, ok := _c.mutation.ReasonForBookmark(); ok {
		_spec.SetField(bookmark.FieldReasonForBookmark, field.TypeString, value)
		_node.ReasonForBookmark = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bookmark.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastReviewed(); ok {
		_spec.SetField(bookmark.FieldLastReviewed, field.TypeTime, value)
		_node.LastReviewed = &value
	}
	if nodes := _c.mutation.ChapterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bookmark.ChapterTable,
			Columns: []string{bookmark.ChapterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChapterID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BookmarkCreateBulk is the builder for creating many Bookmark entities in bulk.
type BookmarkCreateBulk struct {
	config
	err      error
	builders []*BookmarkCreate
}

// Save creates the Bookmark entities in the database.
func (_c *BookmarkCreateBulk) Save(ctx context.Context) ([]*Bookmark, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bookmark, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BookmarkMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BookmarkCreateBulk) SaveX(ctx context.Context) []*Bookmark {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookmarkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookmarkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
