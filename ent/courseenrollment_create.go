// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studium/ent/course"
	"github.com/abhisek/studium/ent/courseenrollment"
)

// CourseEnrollmentCreate is the builder for creating a CourseEnrollment entity.
type CourseEnrollmentCreate struct {
	config
	mutation *CourseEnrollmentMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CourseEnrollmentCreate) SetUserID(v string) *CourseEnrollmentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetEnrollmentDate sets the "enrollment_date" field.
func (_c *CourseEnrollmentCreate) SetEnrollmentDate(v time.Time) *CourseEnrollmentCreate {
	_c.mutation.SetEnrollmentDate(v)
	return _c
}

// SetNillableEnrollmentDate sets the "enrollment_date" field if the given value is not nil.
func (_c *CourseEnrollmentCreate) SetNillableEnrollmentDate(v *time.Time) *CourseEnrollmentCreate {
	if v != nil {
		_c.SetEnrollmentDate(*v)
	}
	return _c
}

// SetTargetCompletionDate sets the "target_completion_date" field.
func (_c *CourseEnrollmentCreate) SetTargetCompletionDate(v time.Time) *CourseEnrollmentCreate {
	_c.mutation.SetTargetCompletionDate(v)
	return _c
}

// SetNillableTargetCompletionDate sets the "target_completion_date" field if the given value is not nil.
func (_c *CourseEnrollmentCreate) SetNillableTargetCompletionDate(v *time.Time) *CourseEnrollmentCreate {
	if v != nil {
		_c.SetTargetCompletionDate(*v)
	}
	return _c
}

// SetStudyGoalHoursPerWeek sets the "study_goal_hours_per_week" field.
func (_c *CourseEnrollmentCreate) SetStudyGoalHoursPerWeek(v int) *CourseEnrollmentCreate {
	_c.mutation.SetStudyGoalHoursPerWeek(v)
	return _c
}

// SetNillableStudyGoalHoursPerWeek sets the "study_goal_hours_per_week" field if the given value is not nil.
func (_c *CourseEnrollmentCreate) SetNillableStudyGoalHoursPerWeek(v *int) *CourseEnrollmentCreate {
	if v != nil {
		_c.SetStudyGoalHoursPerWeek(*v)
	}
	return _c
}

// SetOverallProgressPercentage sets the "overall_progress_percentage" field.
func (_c *CourseEnrollmentCreate) SetOverallProgressPercentage(v float64) *CourseEnrollmentCreate {
	_c.mutation.SetOverallProgressPercentage(v)
	return _c
}

// SetNillableOverallProgressPercentage sets the "overall_progress_percentage" field if the given value is not nil.
func (_c *CourseEnrollmentCreate) SetNillableOverallProgressPercentage(v *float64) *CourseEnrollmentCreate {
	if v != nil {
		_c.SetOverallProgressPercentage(*v)
	}
	return _c
}

// SetSubjectsCompleted sets the "subjects_completed" field.
func (_c *CourseEnrollmentCreate) SetSubjectsCompleted(v int) *CourseEnrollmentCreate {
	_c.mutation.SetSubjectsCompleted(v)
	return _c
}

// SetNillableSubjectsCompleted sets the "subjects_completed" field if the given value is not nil.
func (_c *CourseEnrollmentCreate) SetNillableSubjectsCompleted(v *int) *CourseEnrollmentCreate {
	if v != nil {
		_c.SetSubjectsCompleted(*v)
	}
	return _c
}

// SetChaptersCompleted sets the "chapters_completed" field.
func (_c *CourseEnrollmentCreate) SetChaptersCompleted(v int) *CourseEnrollmentCreate {
	_c.mutation.SetChaptersCompleted(v)
	return _c
}

// SetNillableChaptersCompleted sets the "chapters_completed" field if the given value is not nil.
func (_c *CourseEnrollmentCreate) SetNillableChaptersCompleted(v *int) *CourseEnrollmentCreate {
	if v != nil {
		_c.SetChaptersCompleted(*v)
	}
	return _c
}

// SetTotalStudyTimeMinutes sets the "total_study_time_minutes" field.
func (_c *CourseEnrollmentCreate) SetTotalStudyTimeMinutes(v int) *CourseEnrollmentCreate {
	_c.mutation.SetTotalStudyTimeMinutes(v)
	return _c
}

// SetNillableTotalStudyTimeMinutes sets the "total_study_time_minutes" field if the given value is not nil.
func (_c *CourseEnrollmentCreate) SetNillableTotalStudyTimeMinutes(v *int) *CourseEnrollmentCreate {
	if v != nil {
		_c.SetTotalStudyTimeMinutes(*v)
	}
	return _c
}

// SetPreferredDifficulty sets the "preferred_difficulty" field.
func (_c *CourseEnrollmentCreate) SetPreferredDifficulty(v string) *CourseEnrollmentCreate {
	_c.mutation.SetPreferredDifficulty(v)
	return _c
}

// SetNillablePreferredDifficulty sets the "preferred_difficulty" field if the given value is not nil.
func (_c *CourseEnrollmentCreate) SetNillablePreferredDifficulty(v *string) *CourseEnrollmentCreate {
	if v != nil {
		_c.SetPreferredDifficulty(*v)
	}
	return _c
}

// SetLearningStylePreference sets the "learning_style_preference" field.
func (_c *CourseEnrollmentCreate) SetLearningStylePreference(v string) *CourseEnrollmentCreate {
	_c.mutation.SetLearningStylePreference(v)
	return _c
}

// SetNillableLearningStylePreference sets the "learning_style_preference" field if the given value is not nil.
func (_c *CourseEnrollmentCreate) SetNillableLearningStylePreference(v *string) *CourseEnrollmentCreate {
	if v != nil {
		_c.SetLearningStylePreference(*v)
	}
	return _c
}

// SetLastActivity sets the "last_activity" field.
func (_c *CourseEnrollmentCreate) SetLastActivity(v time.Time) *CourseEnrollmentCreate {
	_c.mutation.SetLastActivity(v)
	return _c
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_c *CourseEnrollmentCreate) SetNillableLastActivity(v *time.Time) *CourseEnrollmentCreate {
	if v != nil {
		_c.SetLastActivity(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CourseEnrollmentCreate) SetCompletedAt(v time.Time) *CourseEnrollmentCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CourseEnrollmentCreate) SetNillableCompletedAt(v *time.Time) *CourseEnrollmentCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *CourseEnrollmentCreate) SetCourseID(v int) *CourseEnrollmentCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetCourse sets the "course" edge to the Course entity.
func (_c *CourseEnrollmentCreate) SetCourse(v *Course) *CourseEnrollmentCreate {
	return _c.SetCourseID(v.ID)
}

// Mutation returns the CourseEnrollmentMutation object of the builder.
func (_c *CourseEnrollmentCreate) Mutation() *CourseEnrollmentMutation {
	return _c.mutation
}

// Save creates the CourseEnrollment in the database.
func (_c *CourseEnrollmentCreate) Save(ctx context.Context) (*CourseEnrollment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseEnrollmentCreate) SaveX(ctx context.Context) *CourseEnrollment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseEnrollmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseEnrollmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseEnrollmentCreate) defaults() {
	if _, ok := _c.mutation.EnrollmentDate(); !ok {
		v := courseenrollment.DefaultEnrollmentDate()
		_c.mutation.SetEnrollmentDate(v)
	}
	if _, ok := _c.mutation.StudyGoalHoursPerWeek(); !ok {
		v := courseenrollment.DefaultStudyGoalHoursPerWeek
		_c.mutation.SetStudyGoalHoursPerWeek(v)
	}
	if _, ok := _c.mutation.OverallProgressPercentage(); !ok {
		v := courseenrollment.DefaultOverallProgressPercentage
		_c.mutation.SetOverallProgressPercentage(v)
	}
	if _, ok := _c.mutation.SubjectsCompleted(); !ok {
		v := courseenrollment.DefaultSubjectsCompleted
		_c.mutation.SetSubjectsCompleted(v)
	}
	if _, ok := _c.mutation.ChaptersCompleted(); !ok {
		v := courseenrollment.DefaultChaptersCompleted
		_c.mutation.SetChaptersCompleted(v)
	}
	if _, ok := _c.mutation.TotalStudyTimeMinutes(); !ok {
		v := courseenrollment.DefaultTotalStudyTimeMinutes
		_c.mutation.SetTotalStudyTimeMinutes(v)
	}
	if _, ok := _c.mutation.PreferredDifficulty(); !ok {
		v := courseenrollment.DefaultPreferredDifficulty
		_c.mutation.SetPreferredDifficulty(v)
	}
	if _, ok := _c.mutation.LearningStylePreference(); !ok {
		v := courseenrollment.DefaultLearningStylePreference
		_c.mutation.SetLearningStylePreference(v)
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		v := courseenrollment.DefaultLastActivity()
		_c.mutation.SetLastActivity(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseEnrollmentCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CourseEnrollment.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := courseenrollment.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CourseEnrollment.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnrollmentDate(); !ok {
		return &ValidationError{Name: "enrollment_date", err: errors.New(`ent: missing required field "CourseEnrollment.enrollment_date"`)}
	}
	if _, ok := _c.mutation.StudyGoalHoursPerWeek(); !ok {
		return &ValidationError{Name: "study_goal_hours_per_week", err: errors.New(`ent: missing required field "CourseEnrollment.study_goal_hours_per_week"`)}
	}
	if _, ok := _c.mutation.OverallProgressPercentage(); !ok {
		return &ValidationError{Name: "overall_progress_percentage", err: errors.New(`ent: missing required field "CourseEnrollment.overall_progress_percentage"`)}
	}
	if _, ok := _c.mutation.SubjectsCompleted(); !ok {
		return &ValidationError{Name: "subjects_completed", err: errors.New(`ent: missing required field "CourseEnrollment.subjects_completed"`)}
	}
	if _, ok := _c.mutation.ChaptersCompleted(); !ok {
		return &ValidationError{Name: "chapters_completed", err: errors.New(`ent: missing required field "CourseEnrollment.chapters_completed"`)}
	}
	if _, ok := _c.mutation.TotalStudyTimeMinutes(); !ok {
		return &ValidationError{Name: "total_study_time_minutes", err: errors.New(`ent: missing required field "CourseEnrollment.total_study_time_minutes"`)}
	}
	if _, ok := _c.mutation.PreferredDifficulty(); !ok {
		return &ValidationError{Name: "preferred_difficulty", err: errors.New(`ent: missing required field "CourseEnrollment.preferred_difficulty"`)}
	}
	if _, ok := _c.mutation.LearningStylePreference(); !ok {
		return &ValidationError{Name: "learning_style_preference", err: errors.New(`ent: missing required field "CourseEnrollment.learning_style_preference"`)}
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		return &ValidationError{Name: "last_activity", err: errors.New(`ent: missing required field "CourseEnrollment.last_activity"`)}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "CourseEnrollment.course_id"`)}
	}
	if len(_c.mutation.CourseIDs()) == 0 {
		return &ValidationError{Name: "course", err: errors.New(`ent: missing required edge "CourseEnrollment.course"`)}
	}
	return nil
}

func (_c *CourseEnrollmentCreate) sqlSave(ctx context.Context) (*CourseEnrollment, error) {
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

func (_c *CourseEnrollmentCreate) createSpec() (*CourseEnrollment, *sqlgraph.CreateSpec) {
	var (
		_node = &CourseEnrollment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(courseenrollment.Table, sqlgraph.NewFieldSpec(courseenrollment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(courseenrollment.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.EnrollmentDate(); ok {
		_spec.SetField(courseenrollment.FieldEnrollmentDate, field.TypeTime, value)
		_node.EnrollmentDate = value
	}
	if value, ok := _c.mutation.TargetCompletionDate(); ok {
		_spec.SetField(courseenrollment.FieldTargetCompletionDate, field.TypeTime, value)
		_node.TargetCompletionDate = &value
	}
	if value, ok := _c.mutation.StudyGoalHoursPerWeek(); ok {
		_spec.SetField(courseenrollment.FieldStudyGoalHoursPerWeek, field.TypeInt, value)
		_node.StudyGoalHoursPerWeek = value
	}
	if value, ok := _c.mutation.OverallProgressPercentage(); ok {
		_spec.SetField(courseenrollment.FieldOverallProgressPercentage, field.TypeFloat64, value)
		_node.OverallProgressPercentage = value
	}
	if value, ok := _c.mutation.SubjectsCompleted(); ok {
		_spec.SetField(courseenrollment.FieldSubjectsCompleted, field.TypeInt, value)
		_node.SubjectsCompleted = value
	}
	if value, ok := _c.mutation.ChaptersCompleted(); ok {
		_spec.SetField(courseenrollment.FieldChaptersCompleted, field.TypeInt, value)
		_node.ChaptersCompleted = value
	}
	if value, ok := _c.mutation.TotalStudyTimeMinutes(); ok {
		_spec.SetField(courseenrollment.FieldTotalStudyTimeMinutes, field.TypeInt, value)
		_node.TotalStudyTimeMinutes = value
	}
	if value, ok := _c.mutation.PreferredDifficulty(); ok {
		_spec.SetField(courseenrollment.FieldPreferredDifficulty, field.TypeString, value)
		_node.PreferredDifficulty = value
	}
	if value, ok := _c.mutation.LearningStylePreference(); ok {
		_spec.SetField(courseenrollment.FieldLearningStylePreference, field.TypeString, value)
		_node.LearningStylePreference = value
	}
	if value, ok := _c.mutation.LastActivity(); ok {
		_spec.SetField(courseenrollment.FieldLastActivity, field.TypeTime, value)
		_node.LastActivity = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(courseenrollment.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.CourseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   courseenrollment.CourseTable,
			Columns: []string{courseenrollment.CourseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CourseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CourseEnrollmentCreateBulk is the builder for creating many CourseEnrollment entities in bulk.
type CourseEnrollmentCreateBulk struct {
	config
	err      error
	builders []*CourseEnrollmentCreate
}

// Save creates the CourseEnrollment entities in the database.
func (_c *CourseEnrollmentCreateBulk) Save(ctx context.Context) ([]*CourseEnrollment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CourseEnrollment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseEnrollmentMutation)
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
func (_c *CourseEnrollmentCreateBulk) SaveX(ctx context.Context) []*CourseEnrollment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseEnrollmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseEnrollmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
