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
	"github.com/abhisek/studium/ent/quizresult"
	"github.com/abhisek/studium/ent/schema"
)

// QuizResultCreate is the builder for creating a QuizResult entity.
type QuizResultCreate struct {
	config
	mutation *QuizResultMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *QuizResultCreate) SetUserID(v string) *QuizResultCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuizTitle sets the "quiz_title" field.
func (_c *QuizResultCreate) SetQuizTitle(v string) *QuizResultCreate {
	_c.mutation.SetQuizTitle(v)
	return _c
}

// SetQuizType sets the "quiz_type" field.
func (_c *QuizResultCreate) SetQuizType(v string) *QuizResultCreate {
	_c.mutation.SetQuizType(v)
	return _c
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableQuizType(v *string) *QuizResultCreate {
	if v != nil {
		_c.SetQuizType(*v)
	}
	return _c
}

// SetSubjectDomain sets the "subject_domain" field.
func (_c *QuizResultCreate) SetSubjectDomain(v string) *QuizResultCreate {
	_c.mutation.SetSubjectDomain(v)
	return _c
}

// SetNillableSubjectDomain sets the "subject_domain" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableSubjectDomain(v *string) *QuizResultCreate {
	if v != nil {
		_c.SetSubjectDomain(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizResultCreate) SetScore(v int) *QuizResultCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *QuizResultCreate) SetTotalQuestions(v int) *QuizResultCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetPercentage sets the "percentage" field.
func (_c *QuizResultCreate) SetPercentage(v float64) *QuizResultCreate {
	_c.mutation.SetPercentage(v)
	return _c
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_c *QuizResultCreate) SetDifficultyLevel(v string) *QuizResultCreate {
	_c.mutation.SetDifficultyLevel(v)
	return _c
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableDifficultyLevel(v *string) *QuizResultCreate {
	if v != nil {
		_c.SetDifficultyLevel(*v)
	}
	return _c
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (_c *QuizResultCreate) SetTimeTakenSeconds(v int) *QuizResultCreate {
	_c.mutation.SetTimeTakenSeconds(v)
	return _c
}

// SetNillableTimeTakenSeconds sets the "time_taken_seconds" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableTimeTakenSeconds(v *int) *QuizResultCreate {
	if v != nil {
		_c.SetTimeTakenSeconds(*v)
	}
	return _c
}

// SetConceptMastery sets the "concept_mastery" field.
func (_c *QuizResultCreate) SetConceptMastery(v map[string]schema.ConceptScore) *QuizResultCreate {
	_c.mutation.SetConceptMastery(v)
	return _c
}

// SetAreasForImprovement sets the "areas_for_improvement" field.
func (_c *QuizResultCreate) SetAreasForImprovement(v []string) *QuizResultCreate {
	_c.mutation.SetAreasForImprovement(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *QuizResultCreate) SetQuestions(v []map[string]interface{}) *QuizResultCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetUserAnswers sets the "user_answers" field.
func (_c *QuizResultCreate) SetUserAnswers(v map[string]schema.AnsweredQuestion) *QuizResultCreate {
	_c.mutation.SetUserAnswers(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *QuizResultCreate) SetCompletedAt(v time.Time) *QuizResultCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableCompletedAt(v *time.Time) *QuizResultCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetChapterID sets the "chapter_id" field.
func (_c *QuizResultCreate) SetChapterID(v int) *QuizResultCreate {
	_c.mutation.SetChapterID(v)
	return _c
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_c *QuizResultCreate) SetChapter(v *Chapter) *QuizResultCreate {
	return _c.SetChapterID(v.ID)
}

// Mutation returns the QuizResultMutation object of the builder.
func (_c *QuizResultCreate) Mutation() *QuizResultMutation {
	return _c.mutation
}

// Save creates the QuizResult in the database.
func (_c *QuizResultCreate) Save(ctx context.Context) (*QuizResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizResultCreate) SaveX(ctx context.Context) *QuizResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizResultCreate) defaults() {
	if _, ok := _c.mutation.QuizType(); !ok {
		v := quizresult.DefaultQuizType
		_c.mutation.SetQuizType(v)
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		v := quizresult.DefaultDifficultyLevel
		_c.mutation.SetDifficultyLevel(v)
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := quizresult.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizResultCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuizResult.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := quizresult.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizResult.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuizTitle(); !ok {
		return &ValidationError{Name: "quiz_title", err: errors.New(`ent: missing required field "QuizResult.quiz_title"`)}
	}
	if v, ok := _c.mutation.QuizTitle(); ok {
		if err := quizresult.QuizTitleValidator(v); err != nil {
			return &ValidationError{Name: "quiz_title", err: fmt.Errorf(`ent: validator failed for field "QuizResult.quiz_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuizType(); !ok {
		return &ValidationError{Name: "quiz_type", err: errors.New(`ent: missing required field "QuizResult.quiz_type"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizResult.score"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "QuizResult.total_questions"`)}
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		return &ValidationError{Name: "percentage", err: errors.New(`ent: missing required field "QuizResult.percentage"`)}
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		return &ValidationError{Name: "difficulty_level", err: errors.New(`ent: missing required field "QuizResult.difficulty_level"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "QuizResult.completed_at"`)}
	}
	if _, ok := _c.mutation.ChapterID(); !ok {
		return &ValidationError{Name: "chapter_id", err: errors.New(`ent: missing required field "QuizResult.chapter_id"`)}
	}
	if len(_c.mutation.ChapterIDs()) == 0 {
		return &ValidationError{Name: "chapter", err: errors.New(`ent: missing required edge "QuizResult.chapter"`)}
	}
	return nil
}

func (_c *QuizResultCreate) sqlSave(ctx context.Context) (*QuizResult, error) {
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

func (_c *QuizResultCreate) createSpec() (*QuizResult, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizresult.Table, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(quizresult.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuizTitle(); ok {
		_spec.SetField(quizresult.FieldQuizTitle, field.TypeString, value)
		_node.QuizTitle = value
	}
	if value, ok := _c.mutation.QuizType(); ok {
		_spec.SetField(quizresult.FieldQuizType, field.TypeString, value)
		_node.QuizType = value
	}
	if value, ok := _c.mutation.SubjectDomain(); ok {
		_spec.SetField(quizresult.FieldSubjectDomain, field.TypeString, value)
		_node.SubjectDomain = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(quizresult.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.Percentage(); ok {
		_spec.SetField(quizresult.FieldPercentage, field.TypeFloat64, value)
		_node.Percentage = value
	}
	if value, ok := _c.mutation.DifficultyLevel(); ok {
		_spec.SetField(quizresult.FieldDifficultyLevel, field.TypeString, value)
		_node.DifficultyLevel = value
	}
	if value, ok := _c.mutation.TimeTakenSeconds(); ok {
		_spec.SetField(quizresult.FieldTimeTakenSeconds, field.TypeInt, value)
		_node.TimeTakenSeconds = &value
	}
	if value, ok := _c.mutation.ConceptMastery(); ok {
		_spec.SetField(quizresult.FieldConceptMastery, field.TypeJSON, value)
		_node.ConceptMastery = value
	}
	if value, ok := _c.mutation.AreasForImprovement(); ok {
		_spec.SetField(quizresult.FieldAreasForImprovement, field.TypeJSON, value)
		_node.AreasForImprovement = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(quizresult.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.UserAnswers(); ok {
		_spec.SetField(quizresult.FieldUserAnswers, field.TypeJSON, value)
		_node.UserAnswers = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(quizresult.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if nodes := _c.mutation.ChapterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quizresult.ChapterTable,
			Columns: []string{quizresult.ChapterColumn},
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

// QuizResultCreateBulk is the builder for creating many QuizResult entities in bulk.
type QuizResultCreateBulk struct {
	config
	err      error
	builders []*QuizResultCreate
}

// Save creates the QuizResult entities in the database.
func (_c *QuizResultCreateBulk) Save(ctx context.Context) ([]*QuizResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizResultMutation)
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
func (_c *QuizResultCreateBulk) SaveX(ctx context.Context) []*QuizResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
