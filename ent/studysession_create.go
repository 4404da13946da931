// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studium/ent/chapter"
	"github.com/abhisek/studium/ent/course"
	"github.com/abhisek/studium/ent/schema"
	"github.com/abhisek/studium/ent/studysession"
	"github.com/abhisek/studium/ent/subject"
)

// StudySessionCreate is the builder for creating a StudySession entity.
type StudySessionCreate struct {
	config
	mutation *StudySessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *StudySessionCreate) SetUserID(v string) *StudySessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionStart sets the "session_start" field.
func (_c *StudySessionCreate) SetSessionStart(v time.Time) *StudySessionCreate {
	_c.mutation.SetSessionStart(v)
	return _c
}

// SetNillableSessionStart sets the "session_start" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableSessionStart(v *time.Time) *StudySessionCreate {
	if v != nil {
		_c.SetSessionStart(*v)
	}
	return _c
}

// SetSessionEnd sets the "session_end" field.
func (_c *StudySessionCreate) SetSessionEnd(v time.Time) *StudySessionCreate {
	_c.mutation.SetSessionEnd(v)
	return _c
}

// SetNillableSessionEnd sets the "session_end" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableSessionEnd(v *time.Time) *StudySessionCreate {
	if v != nil {
		_c.SetSessionEnd(*v)
	}
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *StudySessionCreate) SetDurationMinutes(v int) *StudySessionCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableDurationMinutes(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetDurationMinutes(*v)
	}
	return _c
}

// SetActivities sets the "activities" field.
func (_c *StudySessionCreate) SetActivities(v []schema.Activity) *StudySessionCreate {
	_c.mutation.SetActivities(v)
	return _c
}

// SetConceptsStudied sets the "concepts_studied" field.
func (_c *StudySessionCreate) SetConceptsStudied(v []string) *StudySessionCreate {
	_c.mutation.SetConceptsStudied(v)
	return _c
}

// SetDifficultyAdjustments sets the "difficulty_adjustments" field.
func (_c *StudySessionCreate) SetDifficultyAdjustments(v int) *StudySessionCreate {
	_c.mutation.SetDifficultyAdjustments(v)
	return _c
}

// SetNillableDifficultyAdjustments sets the "difficulty_adjustments" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableDifficultyAdjustments(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetDifficultyAdjustments(*v)
	}
	return _c
}

// SetCompletionProgress sets the "completion_progress" field.
func (_c *StudySessionCreate) SetCompletionProgress(v float64) *StudySessionCreate {
	_c.mutation.SetCompletionProgress(v)
	return _c
}

// SetNillableCompletionProgress sets the "completion_progress" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableCompletionProgress(v *float64) *StudySessionCreate {
	if v != nil {
		_c.SetCompletionProgress(*v)
	}
	return _c
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_c *StudySessionCreate) SetQuestionsAsked(v int) *StudySessionCreate {
	_c.mutation.SetQuestionsAsked(v)
	return _c
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableQuestionsAsked(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetQuestionsAsked(*v)
	}
	return _c
}

// SetBookmarksCreated sets the "bookmarks_created" field.
func (_c *StudySessionCreate) SetBookmarksCreated(v int) *StudySessionCreate {
	_c.mutation.SetBookmarksCreated(v)
	return _c
}

// SetNillableBookmarksCreated sets the "bookmarks_created" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableBookmarksCreated(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetBookmarksCreated(*v)
	}
	return _c
}

// SetQuizzesCompleted sets the "quizzes_completed" field.
func (_c *StudySessionCreate) SetQuizzesCompleted(v int) *StudySessionCreate {
	_c.mutation.SetQuizzesCompleted(v)
	return _c
}

// SetNillableQuizzesCompleted sets the "quizzes_completed" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableQuizzesCompleted(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetQuizzesCompleted(*v)
	}
	return _c
}

// SetEngagementScore sets the "engagement_score" field.
func (_c *StudySessionCreate) SetEngagementScore(v float64) *StudySessionCreate {
	_c.mutation.SetEngagementScore(v)
	return _c
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableEngagementScore(v *float64) *StudySessionCreate {
	if v != nil {
		_c.SetEngagementScore(*v)
	}
	return _c
}

// SetFocusScore sets the "focus_score" field.
func (_c *StudySessionCreate) SetFocusScore(v float64) *StudySessionCreate {
	_c.mutation.SetFocusScore(v)
	return _c
}

// SetNillableFocusScore sets the "focus_score" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableFocusScore(v *float64) *StudySessionCreate {
	if v != nil {
		_c.SetFocusScore(*v)
	}
	return _c
}

// SetLearningEffectiveness sets the "learning_effectiveness" field.
func (_c *StudySessionCreate) SetLearningEffectiveness(v float64) *StudySessionCreate {
	_c.mutation.SetLearningEffectiveness(v)
	return _c
}

// SetNillableLearningEffectiveness sets the "learning_effectiveness" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableLearningEffectiveness(v *float64) *StudySessionCreate {
	if v != nil {
		_c.SetLearningEffectiveness(*v)
	}
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *StudySessionCreate) SetCourseID(v int) *StudySessionCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableCourseID(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetCourseID(*v)
	}
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *StudySessionCreate) SetSubjectID(v int) *StudySessionCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableSubjectID(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetSubjectID(*v)
	}
	return _c
}

// SetChapterID sets the "chapter_id" field.
func (_c *StudySessionCreate) SetChapterID(v int) *StudySessionCreate {
	_c.mutation.SetChapterID(v)
	return _c
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableChapterID(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetChapterID(*v)
	}
	return _c
}

// SetCourse sets the "course" edge to the Course entity.
func (_c *StudySessionCreate) SetCourse(v *Course) *StudySessionCreate {
	return _c.SetCourseID(v.ID)
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_c *StudySessionCreate) SetSubject(v *Subject) *StudySessionCreate {
	return _c.SetSubjectID(v.ID)
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_c *StudySessionCreate) SetChapter(v *Chapter) *StudySessionCreate {
	return _c.SetChapterID(v.ID)
}

// Mutation returns the StudySessionMutation object of the builder.
func (_c *StudySessionCreate) Mutation() *StudySessionMutation {
	return _c.mutation
}

// Save creates the StudySession in the database.
func (_c *StudySessionCreate) Save(ctx context.Context) (*StudySession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudySessionCreate) SaveX(ctx context.Context) *StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudySessionCreate) defaults() {
	if _, ok := _c.mutation.SessionStart(); !ok {
		v := studysession.DefaultSessionStart()
		_c.mutation.SetSessionStart(v)
	}
	if _, ok := _c.mutation.DifficultyAdjustments(); !ok {
		v := studysession.DefaultDifficultyAdjustments
		_c.mutation.SetDifficultyAdjustments(v)
	}
	if _, ok := _c.mutation.CompletionProgress(); !ok {
		v := studysession.DefaultCompletionProgress
		_c.mutation.SetCompletionProgress(v)
	}
	if _, ok := _c.mutation.QuestionsAsked(); !ok {
		v := studysession.DefaultQuestionsAsked
		_c.mutation.SetQuestionsAsked(v)
	}
	if _, ok := _c.mutation.BookmarksCreated(); !ok {
		v := studysession.DefaultBookmarksCreated
		_c.mutation.SetBookmarksCreated(v)
	}
	if _, ok := _c.mutation.QuizzesCompleted(); !ok {
		v := studysession.DefaultQuizzesCompleted
		_c.mutation.SetQuizzesCompleted(v)
	}
	if _, ok := _c.mutation.EngagementScore(); !ok {
		v := studysession.DefaultEngagementScore
		_c.mutation.SetEngagementScore(v)
	}
	if _, ok := _c.mutation.FocusScore(); !ok {
		v := studysession.DefaultFocusScore
		_c.mutation.SetFocusScore(v)
	}
	if _, ok := _c.mutation.LearningEffectiveness(); !ok {
		v := studysession.DefaultLearningEffectiveness
		_c.mutation.SetLearningEffectiveness(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudySessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "StudySession.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := studysession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StudySession.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionStart(); !ok {
		return &ValidationError{Name: "session_start", err: errors.New(`ent: missing required field "StudySession.session_start"`)}
	}
	if _, ok := _c.mutation.DifficultyAdjustments(); !ok {
		return &ValidationError{Name: "difficulty_adjustments", err: errors.New(`ent: missing required field "StudySession.difficulty_adjustments"`)}
	}
	if _, ok := _c.mutation.CompletionProgress(); !ok {
		return &ValidationError{Name: "completion_progress", err: errors.New(`ent: missing required field "StudySession.completion_progress"`)}
	}
	if _, ok := _c.mutation.QuestionsAsked(); !ok {
		return &ValidationError{Name: "questions_asked", err: errors.New(`ent: missing required field "StudySession.questions_asked"`)}
	}
	if _, ok := _c.mutation.BookmarksCreated(); !ok {
		return &ValidationError{Name: "bookmarks_created", err: errors.New(`ent: missing required field "StudySession.bookmarks_created"`)}
	}
	if _, ok := _c.mutation.QuizzesCompleted(); !ok {
		return &ValidationError{Name: "quizzes_completed", err: errors.New(`ent: missing required field "StudySession.quizzes_completed"`)}
	}
	if _, ok := _c.mutation.EngagementScore(); !ok {
		return &ValidationError{Name: "engagement_score", err: errors.New(`ent: missing required field "StudySession.engagement_score"`)}
	}
	if _, ok := _c.mutation.FocusScore(); !ok {
		return &ValidationError{Name: "focus_score", err: errors.New(`ent: missing required field "StudySession.focus_score"`)}
	}
	if _, ok := _c.mutation.LearningEffectiveness(); !ok {
		return &ValidationError{Name: "learning_effectiveness", err: errors.New(`ent: missing required field "StudySession.learning_effectiveness"`)}
	}
	return nil
}

func (_c *StudySessionCreate) sqlSave(ctx context.Context) (*StudySession, error) {
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

func (_c *StudySessionCreate) createSpec() (*StudySession, *sqlgraph.CreateSpec) {
	var (
		_node = &StudySession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studysession.Table, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(studysession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionStart(); ok {
		_spec.SetField(studysession.FieldSessionStart, field.TypeTime, value)
		_node.SessionStart = value
	}
	if value, ok := _c.mutation.SessionEnd(); ok {
		_spec.SetField(studysession.FieldSessionEnd, field.TypeTime, value)
		_node.SessionEnd = &value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(studysession.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = &value
	}
	if value, ok := _c.mutation.Activities(); ok {
		_spec.SetField(studysession.FieldActivities, field.TypeJSON, value)
		_node.Activities = value
	}
	if value, ok := _c.mutation.ConceptsStudied(); ok {
		_spec.SetField(studysession.FieldConceptsStudied, field.TypeJSON, value)
		_node.ConceptsStudied = value
	}
	if value, ok := _c.mutation.DifficultyAdjustments(); ok {
		_spec.SetField(studysession.FieldDifficultyAdjustments, field.TypeInt, value)
		_node.DifficultyAdjustments = value
	}
	if value, ok := _c.mutation.CompletionProgress(); ok {
		_spec.SetField(studysession.FieldCompletionProgress, field.TypeFloat64, value)
		_node.CompletionProgress = value
	}
	if value, ok := _c.mutation.QuestionsAsked(); ok {
		_spec.SetField(studysession.FieldQuestionsAsked, field.TypeInt, value)
		_node.QuestionsAsked = value
	}
	if value, ok := _c.mutation.BookmarksCreated(); ok {
		_spec.SetField(studysession.FieldBookmarksCreated, field.TypeInt, value)
		_node.BookmarksCreated = value
	}
	if value, ok := _c.mutation.QuizzesCompleted(); ok {
		_spec.SetField(studysession.FieldQuizzesCompleted, field.TypeInt, value)
		_node.QuizzesCompleted = value
	}
	if value, ok := _c.mutation.EngagementScore(); ok {
		_spec.SetField(studysession.FieldEngagementScore, field.TypeFloat64, value)
		_node.EngagementScore = value
	}
	if value, ok := _c.mutation.FocusScore(); ok {
		_spec.SetField(studysession.FieldFocusScore, field.TypeFloat64, value)
		_node.FocusScore = value
	}
	if value, ok := _c.mutation.LearningEffectiveness(); ok {
		_spec.SetField(studysession.FieldLearningEffectiveness, field.TypeFloat64, value)
		_node.LearningEffectiveness = value
	}
	if nodes := _c.mutation.CourseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   studysession.CourseTable,
			Columns: []string{studysession.CourseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CourseID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   studysession.SubjectTable,
			Columns: []string{studysession.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SubjectID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChapterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   studysession.ChapterTable,
			Columns: []string{studysession.ChapterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChapterID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StudySessionCreateBulk is the builder for creating many StudySession entities in bulk.
type StudySessionCreateBulk struct {
	config
	err      error
	builders []*StudySessionCreate
}

// Save creates the StudySession entities in the database.
func (_c *StudySessionCreateBulk) Save(ctx context.Context) ([]*StudySession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudySession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudySessionMutation)
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
func (_c *StudySessionCreateBulk) SaveX(ctx context.Context) []*StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
