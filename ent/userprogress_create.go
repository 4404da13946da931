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
	"github.com/abhisek/studium/ent/subject"
	"github.com/abhisek/studium/ent/userprogress"
)

// UserProgressCreate is the builder for creating a UserProgress entity.
type UserProgressCreate struct {
	config
	mutation *UserProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserProgressCreate) SetUserID(v string) *UserProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *UserProgressCreate) SetStatus(v string) *UserProgressCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableStatus(v *string) *UserProgressCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompletionPercentage sets the "completion_percentage" field.
func (_c *UserProgressCreate) SetCompletionPercentage(v float64) *UserProgressCreate {
	_c.mutation.SetCompletionPercentage(v)
	return _c
}

// SetNillableCompletionPercentage sets the "completion_percentage" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableCompletionPercentage(v *float64) *UserProgressCreate {
	if v != nil {
		_c.SetCompletionPercentage(*v)
	}
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *UserProgressCreate) SetMasteryLevel(v string) *UserProgressCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableMasteryLevel(v *string) *UserProgressCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_c *UserProgressCreate) SetTimeSpentMinutes(v int) *UserProgressCreate {
	_c.mutation.SetTimeSpentMinutes(v)
	return _c
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableTimeSpentMinutes(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetTimeSpentMinutes(*v)
	}
	return _c
}

// SetSessionsCount sets the "sessions_count" field.
func (_c *UserProgressCreate) SetSessionsCount(v int) *UserProgressCreate {
	_c.mutation.SetSessionsCount(v)
	return _c
}

// SetNillableSessionsCount sets the "sessions_count" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableSessionsCount(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetSessionsCount(*v)
	}
	return _c
}

// SetLastAccessed sets the "last_accessed" field.
func (_c *UserProgressCreate) SetLastAccessed(v time.Time) *UserProgressCreate {
	_c.mutation.SetLastAccessed(v)
	return _c
}

// SetNillableLastAccessed sets the "last_accessed" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableLastAccessed(v *time.Time) *UserProgressCreate {
	if v != nil {
		_c.SetLastAccessed(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *UserProgressCreate) SetCompletedAt(v time.Time) *UserProgressCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableCompletedAt(v *time.Time) *UserProgressCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_c *UserProgressCreate) SetQuestionsAsked(v int) *UserProgressCreate {
	_c.mutation.SetQuestionsAsked(v)
	return _c
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableQuestionsAsked(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetQuestionsAsked(*v)
	}
	return _c
}

// SetConceptsBookmarked sets the "concepts_bookmarked" field.
func (_c *UserProgressCreate) SetConceptsBookmarked(v int) *UserProgressCreate {
	_c.mutation.SetConceptsBookmarked(v)
	return _c
}

// SetNillableConceptsBookmarked sets the "concepts_bookmarked" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableConceptsBookmarked(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetConceptsBookmarked(*v)
	}
	return _c
}

// SetQuizzesTaken sets the "quizzes_taken" field.
func (_c *UserProgressCreate) SetQuizzesTaken(v int) *UserProgressCreate {
	_c.mutation.SetQuizzesTaken(v)
	return _c
}

// SetNillableQuizzesTaken sets the "quizzes_taken" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableQuizzesTaken(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetQuizzesTaken(*v)
	}
	return _c
}

// SetAvgQuizScore sets the "avg_quiz_score" field.
func (_c *UserProgressCreate) SetAvgQuizScore(v float64) *UserProgressCreate {
	_c.mutation.SetAvgQuizScore(v)
	return _c
}

// SetNillableAvgQuizScore sets the "avg_quiz_score" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableAvgQuizScore(v *float64) *UserProgressCreate {
	if v != nil {
		_c.SetAvgQuizScore(*v)
	}
	return _c
}

// SetDifficultyPreference sets the "difficulty_preference" field.
func (_c *UserProgressCreate) SetDifficultyPreference(v string) *UserProgressCreate {
	_c.mutation.SetDifficultyPreference(v)
	return _c
}

// SetNillableDifficultyPreference sets the "difficulty_preference" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableDifficultyPreference(v *string) *UserProgressCreate {
	if v != nil {
		_c.SetDifficultyPreference(*v)
	}
	return _c
}

// SetLearningVelocity sets the "learning_velocity" field.
func (_c *UserProgressCreate) SetLearningVelocity(v float64) *UserProgressCreate {
	_c.mutation.SetLearningVelocity(v)
	return _c
}

// SetNillableLearningVelocity sets the "learning_velocity" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableLearningVelocity(v *float64) *UserProgressCreate {
	if v != nil {
		_c.SetLearningVelocity(*v)
	}
	return _c
}

// SetStruggleAreas sets the "struggle_areas" field.
func (_c *UserProgressCreate) SetStruggleAreas(v []string) *UserProgressCreate {
	_c.mutation.SetStruggleAreas(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *UserProgressCreate) SetSubjectID(v int) *UserProgressCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetChapterID sets the "chapter_id" field.
func (_c *UserProgressCreate) SetChapterID(v int) *UserProgressCreate {
	_c.mutation.SetChapterID(v)
	return _c
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableChapterID(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetChapterID(*v)
	}
	return _c
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_c *UserProgressCreate) SetSubject(v *Subject) *UserProgressCreate {
	return _c.SetSubjectID(v.ID)
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_c *UserProgressCreate) SetChapter(v *Chapter) *UserProgressCreate {
	return _c.SetChapterID(v.ID)
}

// Mutation returns the UserProgressMutation object of the builder.
func (_c *UserProgressCreate) Mutation() *UserProgressMutation {
	return _c.mutation
}

// Save creates the UserProgress in the database.
func (_c *UserProgressCreate) Save(ctx context.Context) (*UserProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserProgressCreate) SaveX(ctx context.Context) *UserProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserProgressCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := userprogress.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CompletionPercentage(); !ok {
		v := userprogress.DefaultCompletionPercentage
		_c.mutation.SetCompletionPercentage(v)
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := userprogress.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
	if _, ok := _c.mutation.TimeSpentMinutes(); !ok {
		v := userprogress.DefaultTimeSpentMinutes
		_c.mutation.SetTimeSpentMinutes(v)
	}
	if _, ok := _c.mutation.SessionsCount(); !ok {
		v := userprogress.DefaultSessionsCount
		_c.mutation.SetSessionsCount(v)
	}
	if _, ok := _c.mutation.LastAccessed(); !ok {
		v := userprogress.DefaultLastAccessed()
		_c.mutation.SetLastAccessed(v)
	}
	if _, ok := _c.mutation.QuestionsAsked(); !ok {
		v := userprogress.DefaultQuestionsAsked
		_c.mutation.SetQuestionsAsked(v)
	}
	if _, ok := _c.mutation.ConceptsBookmarked(); !ok {
		v := userprogress.DefaultConceptsBookmarked
		_c.mutation.SetConceptsBookmarked(v)
	}
	if _, ok := _c.mutation.QuizzesTaken(); !ok {
		v := userprogress.DefaultQuizzesTaken
		_c.mutation.SetQuizzesTaken(v)
	}
	if _, ok := _c.mutation.AvgQuizScore(); !ok {
		v := userprogress.DefaultAvgQuizScore
		_c.mutation.SetAvgQuizScore(v)
	}
	if _, ok := _c.mutation.DifficultyPreference(); !ok {
		v := userprogress.DefaultDifficultyPreference
		_c.mutation.SetDifficultyPreference(v)
	}
	if _, ok := _c.mutation.LearningVelocity(); !ok {
		v := userprogress.DefaultLearningVelocity
		_c.mutation.SetLearningVelocity(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UserProgress.status"`)}
	}
	if _, ok := _c.mutation.CompletionPercentage(); !ok {
		return &ValidationError{Name: "completion_percentage", err: errors.New(`ent: missing required field "UserProgress.completion_percentage"`)}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "UserProgress.mastery_level"`)}
	}
	if _, ok := _c.mutation.TimeSpentMinutes(); !ok {
		return &ValidationError{Name: "time_spent_minutes", err: errors.New(`ent: missing required field "UserProgress.time_spent_minutes"`)}
	}
	if _, ok := _c.mutation.SessionsCount(); !ok {
		return &ValidationError{Name: "sessions_count", err: errors.New(`ent: missing required field "UserProgress.sessions_count"`)}
	}
	if _, ok := _c.mutation.LastAccessed(); !ok {
		return &ValidationError{Name: "last_accessed", err: errors.New(`ent: missing required field "UserProgress.last_accessed"`)}
	}
	if _, ok := _c.mutation.QuestionsAsked(); !ok {
		return &ValidationError{Name: "questions_asked", err: errors.New(`ent: missing required field "UserProgress.questions_asked"`)}
	}
	if _, ok := _c.mutation.ConceptsBookmarked(); !ok {
		return &ValidationError{Name: "concepts_bookmarked", err: errors.New(`ent: missing required field "UserProgress.concepts_bookmarked"`)}
	}
	if _, ok := _c.mutation.QuizzesTaken(); !ok {
		return &ValidationError{Name: "quizzes_taken", err: errors.New(`ent: missing required field "UserProgress.quizzes_taken"`)}
	}
	if _, ok := _c.mutation.AvgQuizScore(); !ok {
		return &ValidationError{Name: "avg_quiz_score", err: errors.New(`ent: missing required field "UserProgress.avg_quiz_score"`)}
	}
	if _, ok := _c.mutation.DifficultyPreference(); !ok {
		return &ValidationError{Name: "difficulty_preference", err: errors.New(`ent: missing required field "UserProgress.difficulty_preference"`)}
	}
	if _, ok := _c.mutation.LearningVelocity(); !ok {
		return &ValidationError{Name: "learning_velocity", err: errors.New(`ent: missing required field "UserProgress.learning_velocity"`)}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "UserProgress.subject_id"`)}
	}
	if len(_c.mutation.SubjectIDs()) == 0 {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required edge "UserProgress.subject"`)}
	}
	return nil
}

func (_c *UserProgressCreate) sqlSave(ctx context.Context) (*UserProgress, error) {
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

func (_c *UserProgressCreate) createSpec() (*UserProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &UserProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userprogress.Table, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(userprogress.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompletionPercentage(); ok {
		_spec.SetField(userprogress.FieldCompletionPercentage, field.TypeFloat64, value)
		_node.CompletionPercentage = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(userprogress.FieldMasteryLevel, field.TypeString, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(userprogress.FieldTimeSpentMinutes, field.TypeInt, value)
		_node.TimeSpentMinutes = value
	}
	if value, ok := _c.mutation.SessionsCount(); ok {
		_spec.SetField(userprogress.FieldSessionsCount, field.TypeInt, value)
		_node.SessionsCount = value
	}
	if value, ok := _c.mutation.LastAccessed(); ok {
		_spec.SetField(userprogress.FieldLastAccessed, field.TypeTime, value)
		_node.LastAccessed = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(userprogress.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.QuestionsAsked(); ok {
		_spec.SetField(userprogress.FieldQuestionsAsked, field.TypeInt, value)
		_node.QuestionsAsked = value
	}
	if value, ok := _c.mutation.ConceptsBookmarked(); ok {
		_spec.SetField(userprogress.FieldConceptsBookmarked, field.TypeInt, value)
		_node.ConceptsBookmarked = value
	}
	if value, ok := _c.mutation.QuizzesTaken(); ok {
		_spec.SetField(userprogress.FieldQuizzesTaken, field.TypeInt, value)
		_node.QuizzesTaken = value
	}
	if value, ok := _c.mutation.AvgQuizScore(); ok {
		_spec.SetField(userprogress.FieldAvgQuizScore, field.TypeFloat64, value)
		_node.AvgQuizScore = value
	}
	if value, ok := _c.mutation.DifficultyPreference(); ok {
		_spec.SetField(userprogress.FieldDifficultyPreference, field.TypeString, value)
		_node.DifficultyPreference = value
	}
	if value, ok := _c.mutation.LearningVelocity(); ok {
		_spec.SetField(userprogress.FieldLearningVelocity, field.TypeFloat64, value)
		_node.LearningVelocity = value
	}
	if value, ok := _c.mutation.StruggleAreas(); ok {
		_spec.SetField(userprogress.FieldStruggleAreas, field.TypeJSON, value)
		_node.StruggleAreas = value
	}
	if nodes := _c.mutation.SubjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   userprogress.SubjectTable,
			Columns: []string{userprogress.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SubjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChapterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   userprogress.ChapterTable,
			Columns: []string{userprogress.ChapterColumn},
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

// UserProgressCreateBulk is the builder for creating many UserProgress entities in bulk.
type UserProgressCreateBulk struct {
	config
	err      error
	builders []*UserProgressCreate
}

// Save creates the UserProgress entities in the database.
func (_c *UserProgressCreateBulk) Save(ctx context.Context) ([]*UserProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserProgressMutation)
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
func (_c *UserProgressCreateBulk) SaveX(ctx context.Context) []*UserProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
