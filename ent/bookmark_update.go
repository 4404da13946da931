// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studium/ent/bookmark"
	"github.com/abhisek/studium/ent/chapter"
	"github.com/abhisek/studium/ent/predicate"
)

// BookmarkUpdate is the builder for updating Bookmark entities.
type BookmarkUpdate struct {
	config
	hooks    []Hook
	mutation *BookmarkMutation
}

// Where appends a list predicates to the BookmarkUpdate builder.
func (_u *BookmarkUpdate) Where(ps ...predicate.Bookmark) *BookmarkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BookmarkUpdate) SetUserID(v string) *BookmarkUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BookmarkUpdate) SetNillableUserID(v *string) *BookmarkUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetContentBlockIndex sets the "content_block_index" field.
func (_u *BookmarkUpdate) SetContentBlockIndex(v int) *BookmarkUpdate {
	_u.mutation.ResetContentBlockIndex()
	_u.mutation.SetContentBlockIndex(v)
	return _u
}

// SetNillableContentBlockIndex sets the "content_block_index" field if the given value is not nil.
func (_u *BookmarkUpdate) SetNillableContentBlockIndex(v *int) *BookmarkUpdate {
	if v != nil {
		_u.SetContentBlockIndex(*v)
	}
	return _u
}

// AddContentBlockIndex adds value to the "content_block_index" field.
func (_u *BookmarkUpdate) AddContentBlockIndex(v int) *BookmarkUpdate {
	_u.mutation.AddContentBlockIndex(v)
	return _u
}

// SetContentBlockType sets the "content_block_type" field.
func (_u *BookmarkUpdate) SetContentBlockType(v string) *BookmarkUpdate {
	_u.mutation.SetContentBlockType(v)
	return _u
}

// SetNillableContentBlockType sets the "content_block_type" field if the given value is not nil.
func (_u *BookmarkUpdate) SetNillableContentBlockType(v *string) *BookmarkUpdate {
	if v != nil {
		_u.SetContentBlockType(*v)
	}
	return _u
}

// ClearContentBlockType clears the value of the "content_block_type" field.
func (_u *BookmarkUpdate) ClearContentBlockType() *BookmarkUpdate {
	_u.mutation.ClearContentBlockType()
	return _u
}

// SetTitle sets the "title" field.
func (_u *BookmarkUpdate) SetTitle(v string) *BookmarkUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BookmarkUpdate) SetNillableTitle(v *string) *BookmarkUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *BookmarkUpdate) SetNote(v string) *BookmarkUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *BookmarkUpdate) SetNillableNote(v *string) *BookmarkUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *BookmarkUpdate) ClearNote() *BookmarkUpdate {
	_u.mutation.ClearNote()
	return _u
}

// SetTags sets the "tags" field.
func (_u *BookmarkUpdate) SetTags(v []string) *BookmarkUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *BookmarkUpdate) AppendTags(v []string) *BookmarkUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *BookmarkUpdate) ClearTags() *BookmarkUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetDifficultyWhenBookmarked sets the "difficulty_when_bookmarked" field.
func (_u *BookmarkUpdate) SetDifficultyWhenBookmarked(v string) *BookmarkUpdate {
	_u.mutation.SetDifficultyWhenBookmarked(v)
	return _u
}

// SetNillableDifficultyWhenBookmarked sets the "difficulty_when_bookmarked" field if the given value is not nil.
func (_u *BookmarkUpdate) SetNillableDifficultyWhenBookmarked(v *string) *BookmarkUpdate {
	if v != nil {
		_u.SetDifficultyWhenBookmarked(*v)
	}
	return _u
}

// ClearDifficultyWhenBookmarked clears the value of the "difficulty_when_bookmarked" field.
func (_u *BookmarkUpdate) ClearDifficultyWhenBookmarked() *BookmarkUpdate {
	_u.mutation.ClearDifficultyWhenBookmarked()
	return _u
}

// SetReasonForBookmark sets the "reason_for_bookmark" field.
func (_u *BookmarkUpdate) SetReasonForBookmark(v string) *BookmarkUpdate {
	_u.mutation.SetReasonForBookmark(v)
	return _u
}

// SetNillableReasonForBookmark sets the "reason_for_bookmark" field if the given value is not nil.
func (_u *BookmarkUpdate) SetNillableReasonForBookmark(v *string) *BookmarkUpdate {
	if v != nil {
		_u.SetReasonForBookmark(*v)
	}
	return _u
}

// SetLastReviewed sets the "last_reviewed" field.
func (_u *BookmarkUpdate) SetLastReviewed(v time.Time) *BookmarkUpdate {
	_u.mutation.SetLastReviewed(v)
	return _u
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_u *BookmarkUpdate) SetNillableLastReviewed(v *time.Time) *BookmarkUpdate {
	if v != nil {
		_u.SetLastReviewed(*v)
	}
	return _u
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (_u *BookmarkUpdate) ClearLastReviewed() *BookmarkUpdate {
	_u.mutation.ClearLastReviewed()
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *BookmarkUpdate) SetChapterID(v int) *BookmarkUpdate {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *BookmarkUpdate) SetNillableChapterID(v *int) *BookmarkUpdate {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_u *BookmarkUpdate) SetChapter(v *Chapter) *BookmarkUpdate {
	return _u.SetChapterID(v.ID)
}

// Mutation returns the BookmarkMutation object of the builder.
func (_u *BookmarkUpdate) Mutation() *BookmarkMutation {
	return _u.mutation
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (_u *BookmarkUpdate) ClearChapter() *BookmarkUpdate {
	_u.mutation.ClearChapter()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BookmarkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookmarkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BookmarkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookmarkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookmarkUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := bookmark.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Bookmark.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := bookmark.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Bookmark.title": %w`, err)}
		}
	}
	if _u.mutation.ChapterCleared() && len(_u.mutation.ChapterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bookmark.chapter"`)
	}
	return nil
}

func (_u *BookmarkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bookmark.Table, bookmark.Columns, sqlgraph.NewFieldSpec(bookmark.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(bookmark.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentBlockIndex(); ok {
		_spec.SetField(bookmark.FieldContentBlockIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContentBlockIndex(); ok {
		_spec.AddField(bookmark.FieldContentBlockIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentBlockType(); ok {
		_spec.SetField(bookmark.FieldContentBlockType, field.TypeString, value)
	}
	if _u.mutation.ContentBlockTypeCleared() {
		_spec.ClearField(bookmark.FieldContentBlockType, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(bookmark.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(bookmark.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(bookmark.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(bookmark.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bookmark.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(bookmark.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.DifficultyWhenBookmarked(); ok {
		_spec.SetField(bookmark.FieldDifficultyWhenBookmarked, field.TypeString, value)
	}
	if _u.mutation.DifficultyWhenBookmarkedCleared() {
		_spec.ClearField(bookmark.FieldDifficultyWhenBookmarked, field.TypeString)
	}
	if value, ok := _u.mutation.ReasonForBookmark(); ok {
		_spec.SetField(bookmark.FieldReasonForBookmark, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastReviewed(); ok {
		_spec.SetField(bookmark.FieldLastReviewed, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedCleared() {
		_spec.ClearField(bookmark.FieldLastReviewed, field.TypeTime)
	}
	if _u.mutation.ChapterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChapterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bookmark.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BookmarkUpdateOne is the builder for updating a single Bookmark entity.
type BookmarkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BookmarkMutation
}

// SetUserID sets the "user_id" field.
func (_u *BookmarkUpdateOne) SetUserID(v string) *BookmarkUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BookmarkUpdateOne) SetNillableUserID(v *string) *BookmarkUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetContentBlockIndex sets the "content_block_index" field.
func (_u *BookmarkUpdateOne) SetContentBlockIndex(v int) *BookmarkUpdateOne {
	_u.mutation.ResetContentBlockIndex()
	_u.mutation.SetContentBlockIndex(v)
	return _u
}

// SetNillableContentBlockIndex sets the "content_block_index" field if the given value is not nil.
func (_u *BookmarkUpdateOne) SetNillableContentBlockIndex(v *int) *BookmarkUpdateOne {
	if v != nil {
		_u.SetContentBlockIndex(*v)
	}
	return _u
}

// AddContentBlockIndex adds value to the "content_block_index" field.
func (_u *BookmarkUpdateOne) AddContentBlockIndex(v int) *BookmarkUpdateOne {
	_u.mutation.AddContentBlockIndex(v)
	return _u
}

// SetContentBlockType sets the "content_block_type" field.
func (_u *BookmarkUpdateOne) SetContentBlockType(v string) *BookmarkUpdateOne {
	_u.mutation.SetContentBlockType(v)
	return _u
}

// SetNillableContentBlockType sets the "content_block_type" field if the given value is not nil.
func (_u *BookmarkUpdateOne) SetNillableContentBlockType(v *string) *BookmarkUpdateOne {
	if v != nil {
		_u.SetContentBlockType(*v)
	}
	return _u
}

// ClearContentBlockType clears the value of the "content_block_type" field.
func (_u *BookmarkUpdateOne) ClearContentBlockType() *BookmarkUpdateOne {
	_u.mutation.ClearContentBlockType()
	return _u
}

// SetTitle sets the "title" field.
func (_u *BookmarkUpdateOne) SetTitle(v string) *BookmarkUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BookmarkUpdateOne) SetNillableTitle(v *string) *BookmarkUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *BookmarkUpdateOne) SetNote(v string) *BookmarkUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *BookmarkUpdateOne) SetNillableNote(v *string) *BookmarkUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *BookmarkUpdateOne) ClearNote() *BookmarkUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// SetTags sets the "tags" field.
func (_u *BookmarkUpdateOne) SetTags(v []string) *BookmarkUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *BookmarkUpdateOne) AppendTags(v []string) *BookmarkUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *BookmarkUpdateOne) ClearTags() *BookmarkUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetDifficultyWhenBookmarked sets the "difficulty_when_bookmarked" field.
func (_u *BookmarkUpdateOne) SetDifficultyWhenBookmarked(v string) *BookmarkUpdateOne {
	_u.mutation.SetDifficultyWhenBookmarked(v)
	return _u
}

// SetNillableDifficultyWhenBookmarked sets the "difficulty_when_bookmarked" field if the given value is not nil.
func (_u *BookmarkUpdateOne) SetNillableDifficultyWhenBookmarked(v *string) *BookmarkUpdateOne {
	if v != nil {
		_u.SetDifficultyWhenBookmarked(*v)
	}
	return _u
}

// ClearDifficultyWhenBookmarked clears the value of the "difficulty_when_bookmarked" field.
func (_u *BookmarkUpdateOne) ClearDifficultyWhenBookmarked() *BookmarkUpdateOne {
	_u.mutation.ClearDifficultyWhenBookmarked()
	return _u
}

// SetReasonForBookmark sets the "reason_for_bookmark" field.
func (_u *BookmarkUpdateOne) SetReasonForBookmark(v string) *BookmarkUpdateOne {
	_u.mutation.SetReasonForBookmark(v)
	return _u
}

// SetNillableReasonForBookmark sets the "reason_for_bookmark" field if the given value is not nil.
func (_u *BookmarkUpdateOne) SetNillableReasonForBookmark(v *string) *BookmarkUpdateOne {
	if v != nil {
		_u.SetReasonForBookmark(*v)
	}
	return _u
}

// SetLastReviewed sets the "last_reviewed" field.
func (_u *BookmarkUpdateOne) SetLastReviewed(v time.Time) *BookmarkUpdateOne {
	_u.mutation.SetLastReviewed(v)
	return _u
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_u *BookmarkUpdateOne) SetNillableLastReviewed(v *time.Time) *BookmarkUpdateOne {
	if v != nil {
		_u.SetLastReviewed(*v)
	}
	return _u
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (_u *BookmarkUpdateOne) ClearLastReviewed() *BookmarkUpdateOne {
	_u.mutation.ClearLastReviewed()
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *BookmarkUpdateOne) SetChapterID(v int) *BookmarkUpdateOne {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *BookmarkUpdateOne) SetNillableChapterID(v *int) *BookmarkUpdateOne {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_u *BookmarkUpdateOne) SetChapter(v *Chapter) *BookmarkUpdateOne {
	return _u.SetChapterID(v.ID)
}

// Mutation returns the BookmarkMutation object of the builder.
func (_u *BookmarkUpdateOne) Mutation() *BookmarkMutation {
	return _u.mutation
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (_u *BookmarkUpdateOne) ClearChapter() *BookmarkUpdateOne {
	_u.mutation.ClearChapter()
	return _u
}

// Where appends a list predicates to the BookmarkUpdate builder.
func (_u *BookmarkUpdateOne) Where(ps ...predicate.Bookmark) *BookmarkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BookmarkUpdateOne) Select(field string, fields ...string) *BookmarkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bookmark entity.
func (_u *BookmarkUpdateOne) Save(ctx context.Context) (*Bookmark, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookmarkUpdateOne) SaveX(ctx context.Context) *Bookmark {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BookmarkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookmarkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookmarkUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := bookmark.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Bookmark.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := bookmark.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Bookmark.title": %w`, err)}
		}
	}
	if _u.mutation.ChapterCleared() && len(_u.mutation.ChapterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bookmark.chapter"`)
	}
	return nil
}

func (_u *BookmarkUpdateOne) sqlSave(ctx context.Context) (_node *Bookmark, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bookmark.Table, bookmark.Columns, sqlgraph.NewFieldSpec(bookmark.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bookmark.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bookmark.FieldID)
		for _, f := range fields {
			if !bookmark.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bookmark.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(bookmark.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentBlockIndex(); ok {
		_spec.SetField(bookmark.FieldContentBlockIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContentBlockIndex(); ok {
		_spec.AddField(bookmark.FieldContentBlockIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentBlockType(); ok {
		_spec.SetField(bookmark.FieldContentBlockType, field.TypeString, value)
	}
	if _u.mutation.ContentBlockTypeCleared() {
		_spec.ClearField(bookmark.FieldContentBlockType, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(bookmark.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(bookmark.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(bookmark.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(bookmark.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bookmark.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(bookmark.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.DifficultyWhenBookmarked(); ok {
		_spec.SetField(bookmark.FieldDifficultyWhenBookmarked, field.TypeString, value)
	}
	if _u.mutation.DifficultyWhenBookmarkedCleared() {
		_spec.ClearField(bookmark.FieldDifficultyWhenBookmarked, field.TypeString)
	}
	if value, ok := _u.mutation.ReasonForBookmark(); ok {
		_spec.SetField(bookmark.FieldReasonForBookmark, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastReviewed(); ok {
		_spec.SetField(bookmark.FieldLastReviewed, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedCleared() {
		_spec.ClearField(bookmark.FieldLastReviewed, field.TypeTime)
	}
	if _u.mutation.ChapterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChapterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Bookmark{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bookmark.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
