// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studium/ent/course"
	"github.com/abhisek/studium/ent/courseenrollment"
	"github.com/abhisek/studium/ent/predicate"
)

// CourseEnrollmentUpdate is the builder for updating CourseEnrollment entities.
type CourseEnrollmentUpdate struct {
	config
	hooks    []Hook
	mutation *CourseEnrollmentMutation
}

// Where appends a list predicates to the CourseEnrollmentUpdate builder.
func (_u *CourseEnrollmentUpdate) Where(ps ...predicate.CourseEnrollment) *CourseEnrollmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CourseEnrollmentUpdate) SetUserID(v string) *CourseEnrollmentUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CourseEnrollmentUpdate) SetNillableUserID(v *string) *CourseEnrollmentUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTargetCompletionDate sets the "target_completion_date" field.
func (_u *CourseEnrollmentUpdate) SetTargetCompletionDate(v time.Time) *CourseEnrollmentUpdate {
	_u.mutation.SetTargetCompletionDate(v)
	return _u
}

// SetNillableTargetCompletionDate sets the "target_completion_date" field if the given value is not nil.
func (_u *CourseEnrollmentUpdate) SetNillableTargetCompletionDate(v *time.Time) *CourseEnrollmentUpdate {
	if v != nil {
		_u.SetTargetCompletionDate(*v)
	}
	return _u
}

// ClearTargetCompletionDate clears the value of the "target_completion_date" field.
func (_u *CourseEnrollmentUpdate) ClearTargetCompletionDate() *CourseEnrollmentUpdate {
	_u.mutation.ClearTargetCompletionDate()
	return _u
}

// SetStudyGoalHoursPerWeek sets the "study_goal_hours_per_week" field.
func (_u *CourseEnrollmentUpdate) SetStudyGoalHoursPerWeek(v int) *CourseEnrollmentUpdate {
	_u.mutation.ResetStudyGoalHoursPerWeek()
	_u.mutation.SetStudyGoalHoursPerWeek(v)
	return _u
}

// SetNillableStudyGoalHoursPerWeek sets the "study_goal_hours_per_week" field if the given value is not nil.
func (_u *CourseEnrollmentUpdate) SetNillableStudyGoalHoursPerWeek(v *int) *CourseEnrollmentUpdate {
	if v != nil {
		_u.SetStudyGoalHoursPerWeek(*v)
	}
	return _u
}

// AddStudyGoalHoursPerWeek adds value to the "study_goal_hours_per_week" field.
func (_u *CourseEnrollmentUpdate) AddStudyGoalHoursPerWeek(v int) *CourseEnrollmentUpdate {
	_u.mutation.AddStudyGoalHoursPerWeek(v)
	return _u
}

// SetOverallProgressPercentage sets the "overall_progress_percentage" field.
func (_u *CourseEnrollmentUpdate) SetOverallProgressPercentage(v float64) *CourseEnrollmentUpdate {
	_u.mutation.ResetOverallProgressPercentage()
	_u.mutation.SetOverallProgressPercentage(v)
	return _u
}

// SetNillableOverallProgressPercentage sets the "overall_progress_percentage" field if the given value is not nil.
func (_u *CourseEnrollmentUpdate) SetNillableOverallProgressPercentage(v *float64) *CourseEnrollmentUpdate {
	if v != nil {
		_u.SetOverallProgressPercentage(*v)
	}
	return _u
}

// AddOverallProgressPercentage adds value to the "overall_progress_percentage" field.
func (_u *CourseEnrollmentUpdate) AddOverallProgressPercentage(v float64) *CourseEnrollmentUpdate {
	_u.mutation.AddOverallProgressPercentage(v)
	return _u
}

// SetSubjectsCompleted sets the "subjects_completed" field.
func (_u *CourseEnrollmentUpdate) SetSubjectsCompleted(v int) *CourseEnrollmentUpdate {
	_u.mutation.ResetSubjectsCompleted()
	_u.mutation.SetSubjectsCompleted(v)
	return _u
}

// SetNillableSubjectsCompleted sets the "subjects_completed" field if the given value is not nil.
func (_u *CourseEnrollmentUpdate) SetNillableSubjectsCompleted(v *int) *CourseEnrollmentUpdate {
	if v != nil {
		_u.SetSubjectsCompleted(*v)
	}
	return _u
}

// AddSubjectsCompleted adds value to the "subjects_completed" field.
func (_u *CourseEnrollmentUpdate) AddSubjectsCompleted(v int) *CourseEnrollmentUpdate {
	_u.mutation.AddSubjectsCompleted(v)
	return _u
}

// SetChaptersCompleted sets the "chapters_completed" field.
func (_u *CourseEnrollmentUpdate) SetChaptersCompleted(v int) *CourseEnrollmentUpdate {
	_u.mutation.ResetChaptersCompleted()
	_u.mutation.SetChaptersCompleted(v)
	return _u
}

// SetNillableChaptersCompleted sets the "chapters_completed" field if the given value is not nil.
func (_u *CourseEnrollmentUpdate) SetNillableChaptersCompleted(v *int) *CourseEnrollmentUpdate {
	if v != nil {
		_u.SetChaptersCompleted(*v)
	}
	return _u
}

// AddChaptersCompleted adds value to the "chapters_completed" field.
func (_u *CourseEnrollmentUpdate) AddChaptersCompleted(v int) *CourseEnrollmentUpdate {
	_u.mutation.AddChaptersCompleted(v)
	return _u
}

// SetTotalStudyTimeMinutes sets the "total_study_time_minutes" field.
func (_u *CourseEnrollmentUpdate) SetTotalStudyTimeMinutes(v int) *CourseEnrollmentUpdate {
	_u.mutation.ResetTotalStudyTimeMinutes()
	_u.mutation.SetTotalStudyTimeMinutes(v)
	return _u
}

// SetNillableTotalStudyTimeMinutes sets the "total_study_time_minutes" field if the given value is not nil.
func (_u *CourseEnrollmentUpdate) SetNillableTotalStudyTimeMinutes(v *int) *CourseEnrollmentUpdate {
	if v != nil {
		_u.SetTotalStudyTimeMinutes(*v)
	}
	return _u
}

// AddTotalStudyTimeMinutes adds value to the "total_study_time_minutes" field.
func (_u *CourseEnrollmentUpdate) AddTotalStudyTimeMinutes(v int) *CourseEnrollmentUpdate {
	_u.mutation.AddTotalStudyTimeMinutes(v)
	return _u
}

// SetPreferredDifficulty sets the "preferred_difficulty" field.
func (_u *CourseEnrollmentUpdate) SetPreferredDifficulty(v string) *CourseEnrollmentUpdate {
	_u.mutation.SetPreferredDifficulty(v)
	return _u
}

// SetNillablePreferredDifficulty sets the "preferred_difficulty" field if the given value is not nil.
func (_u *CourseEnrollmentUpdate) SetNillablePreferredDifficulty(v *string) *CourseEnrollmentUpdate {
	if v != nil {
		_u.SetPreferredDifficulty(*v)
	}
	return _u
}

// SetLearningStylePreference sets the "learning_style_preference" field.
func (_u *CourseEnrollmentUpdate) SetLearningStylePreference(v string) *CourseEnrollmentUpdate {
	_u.mutation.SetLearningStylePreference(v)
	return _u
}

// SetNillableLearningStylePreference sets the "learning_style_preference" field if the given value is not nil.
func (_u *CourseEnrollmentUpdate) SetNillableLearningStylePreference(v *string) *CourseEnrollmentUpdate {
	if v != nil {
		_u.SetLearningStylePreference(*v)
	}
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *CourseEnrollmentUpdate) SetLastActivity(v time.Time) *CourseEnrollmentUpdate {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *CourseEnrollmentUpdate) SetNillableLastActivity(v *time.Time) *CourseEnrollmentUpdate {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CourseEnrollmentUpdate) SetCompletedAt(v time.Time) *CourseEnrollmentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CourseEnrollmentUpdate) SetNillableCompletedAt(v *time.Time) *CourseEnrollmentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CourseEnrollmentUpdate) ClearCompletedAt() *CourseEnrollmentUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *CourseEnrollmentUpdate) SetCourseID(v int) *CourseEnrollmentUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *CourseEnrollmentUpdate) SetNillableCourseID(v *int) *CourseEnrollmentUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetCourse sets the "course" edge to the Course entity.
func (_u *CourseEnrollmentUpdate) SetCourse(v *Course) *CourseEnrollmentUpdate {
	return _u.SetCourseID(v.ID)
}

// Mutation returns the CourseEnrollmentMutation object of the builder.
func (_u *CourseEnrollmentUpdate) Mutation() *CourseEnrollmentMutation {
	return _u.mutation
}

// ClearCourse clears the "course" edge to the Course entity.
func (_u *CourseEnrollmentUpdate) ClearCourse() *CourseEnrollmentUpdate {
	_u.mutation.ClearCourse()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseEnrollmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseEnrollmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseEnrollmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseEnrollmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseEnrollmentUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := courseenrollment.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CourseEnrollment.user_id": %w`, err)}
		}
	}
	if _u.mutation.CourseCleared() && len(_u.mutation.CourseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CourseEnrollment.course"`)
	}
	return nil
}

func (_u *CourseEnrollmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courseenrollment.Table, courseenrollment.Columns, sqlgraph.NewFieldSpec(courseenrollment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(courseenrollment.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetCompletionDate(); ok {
		_spec.SetField(courseenrollment.FieldTargetCompletionDate, field.TypeTime, value)
	}
	if _u.mutation.TargetCompletionDateCleared() {
		_spec.ClearField(courseenrollment.FieldTargetCompletionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.StudyGoalHoursPerWeek(); ok {
		_spec.SetField(courseenrollment.FieldStudyGoalHoursPerWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudyGoalHoursPerWeek(); ok {
		_spec.AddField(courseenrollment.FieldStudyGoalHoursPerWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverallProgressPercentage(); ok {
		_spec.SetField(courseenrollment.FieldOverallProgressPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallProgressPercentage(); ok {
		_spec.AddField(courseenrollment.FieldOverallProgressPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SubjectsCompleted(); ok {
		_spec.SetField(courseenrollment.FieldSubjectsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubjectsCompleted(); ok {
		_spec.AddField(courseenrollment.FieldSubjectsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChaptersCompleted(); ok {
		_spec.SetField(courseenrollment.FieldChaptersCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChaptersCompleted(); ok {
		_spec.AddField(courseenrollment.FieldChaptersCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalStudyTimeMinutes(); ok {
		_spec.SetField(courseenrollment.FieldTotalStudyTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalStudyTimeMinutes(); ok {
		_spec.AddField(courseenrollment.FieldTotalStudyTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreferredDifficulty(); ok {
		_spec.SetField(courseenrollment.FieldPreferredDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningStylePreference(); ok {
		_spec.SetField(courseenrollment.FieldLearningStylePreference, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(courseenrollment.FieldLastActivity, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(courseenrollment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(courseenrollment.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.CourseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courseenrollment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseEnrollmentUpdateOne is the builder for updating a single CourseEnrollment entity.
type CourseEnrollmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseEnrollmentMutation
}

// SetUserID sets the "user_id" field.
func (_u *CourseEnrollmentUpdateOne) SetUserID(v string) *CourseEnrollmentUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CourseEnrollmentUpdateOne) SetNillableUserID(v *string) *CourseEnrollmentUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTargetCompletionDate sets the "target_completion_date" field.
func (_u *CourseEnrollmentUpdateOne) SetTargetCompletionDate(v time.Time) *CourseEnrollmentUpdateOne {
	_u.mutation.SetTargetCompletionDate(v)
	return _u
}

// SetNillableTargetCompletionDate sets the "target_completion_date" field if the given value is not nil.
func (_u *CourseEnrollmentUpdateOne) SetNillableTargetCompletionDate(v *time.Time) *CourseEnrollmentUpdateOne {
	if v != nil {
		_u.SetTargetCompletionDate(*v)
	}
	return _u
}

// ClearTargetCompletionDate clears the value of the "target_completion_date" field.
func (_u *CourseEnrollmentUpdateOne) ClearTargetCompletionDate() *CourseEnrollmentUpdateOne {
	_u.mutation.ClearTargetCompletionDate()
	return _u
}

// SetStudyGoalHoursPerWeek sets the "study_goal_hours_per_week" field.
func (_u *CourseEnrollmentUpdateOne) SetStudyGoalHoursPerWeek(v int) *CourseEnrollmentUpdateOne {
	_u.mutation.ResetStudyGoalHoursPerWeek()
	_u.mutation.SetStudyGoalHoursPerWeek(v)
	return _u
}

// SetNillableStudyGoalHoursPerWeek sets the "study_goal_hours_per_week" field if the given value is not nil.
func (_u *CourseEnrollmentUpdateOne) SetNillableStudyGoalHoursPerWeek(v *int) *CourseEnrollmentUpdateOne {
	if v != nil {
		_u.SetStudyGoalHoursPerWeek(*v)
	}
	return _u
}

// AddStudyGoalHoursPerWeek adds value to the "study_goal_hours_per_week" field.
func (_u *CourseEnrollmentUpdateOne) AddStudyGoalHoursPerWeek(v int) *CourseEnrollmentUpdateOne {
	_u.mutation.AddStudyGoalHoursPerWeek(v)
	return _u
}

// SetOverallProgressPercentage sets the "overall_progress_percentage" field.
func (_u *CourseEnrollmentUpdateOne) SetOverallProgressPercentage(v float64) *CourseEnrollmentUpdateOne {
	_u.mutation.ResetOverallProgressPercentage()
	_u.mutation.SetOverallProgressPercentage(v)
	return _u
}

// SetNillableOverallProgressPercentage sets the "overall_progress_percentage" field if the given value is not nil.
func (_u *CourseEnrollmentUpdateOne) SetNillableOverallProgressPercentage(v *float64) *CourseEnrollmentUpdateOne {
	if v != nil {
		_u.SetOverallProgressPercentage(*v)
	}
	return _u
}

// AddOverallProgressPercentage adds value to the "overall_progress_percentage" field.
func (_u *CourseEnrollmentUpdateOne) AddOverallProgressPercentage(v float64) *CourseEnrollmentUpdateOne {
	_u.mutation.AddOverallProgressPercentage(v)
	return _u
}

// SetSubjectsCompleted sets the "subjects_completed" field.
func (_u *CourseEnrollmentUpdateOne) SetSubjectsCompleted(v int) *CourseEnrollmentUpdateOne {
	_u.mutation.ResetSubjectsCompleted()
	_u.mutation.SetSubjectsCompleted(v)
	return _u
}

// SetNillableSubjectsCompleted sets the "subjects_completed" field if the given value is not nil.
func (_u *CourseEnrollmentUpdateOne) SetNillableSubjectsCompleted(v *int) *CourseEnrollmentUpdateOne {
	if v != nil {
		_u.SetSubjectsCompleted(*v)
	}
	return _u
}

// AddSubjectsCompleted adds value to the "subjects_completed" field.
func (_u *CourseEnrollmentUpdateOne) AddSubjectsCompleted(v int) *CourseEnrollmentUpdateOne {
	_u.mutation.AddSubjectsCompleted(v)
	return _u
}

// SetChaptersCompleted sets the "chapters_completed" field.
func (_u *CourseEnrollmentUpdateOne) SetChaptersCompleted(v int) *CourseEnrollmentUpdateOne {
	_u.mutation.ResetChaptersCompleted()
	_u.mutation.SetChaptersCompleted(v)
	return _u
}

// SetNillableChaptersCompleted sets the "chapters_completed" field if the given value is not nil.
func (_u *CourseEnrollmentUpdateOne) SetNillableChaptersCompleted(v *int) *CourseEnrollmentUpdateOne {
	if v != nil {
		_u.SetChaptersCompleted(*v)
	}
	return _u
}

// AddChaptersCompleted adds value to the "chapters_completed" field.
func (_u *CourseEnrollmentUpdateOne) AddChaptersCompleted(v int) *CourseEnrollmentUpdateOne {
	_u.mutation.AddChaptersCompleted(v)
	return _u
}

// SetTotalStudyTimeMinutes sets the "total_study_time_minutes" field.
func (_u *CourseEnrollmentUpdateOne) SetTotalStudyTimeMinutes(v int) *CourseEnrollmentUpdateOne {
	_u.mutation.ResetTotalStudyTimeMinutes()
	_u.mutation.SetTotalStudyTimeMinutes(v)
	return _u
}

// SetNillableTotalStudyTimeMinutes sets the "total_study_time_minutes" field if the given value is not nil.
func (_u *CourseEnrollmentUpdateOne) SetNillableTotalStudyTimeMinutes(v *int) *CourseEnrollmentUpdateOne {
	if v != nil {
		_u.SetTotalStudyTimeMinutes(*v)
	}
	return _u
}

// AddTotalStudyTimeMinutes adds value to the "total_study_time_minutes" field.
func (_u *CourseEnrollmentUpdateOne) AddTotalStudyTimeMinutes(v int) *CourseEnrollmentUpdateOne {
	_u.mutation.AddTotalStudyTimeMinutes(v)
	return _u
}

// SetPreferredDifficulty sets the "preferred_difficulty" field.
func (_u *CourseEnrollmentUpdateOne) SetPreferredDifficulty(v string) *CourseEnrollmentUpdateOne {
	_u.mutation.SetPreferredDifficulty(v)
	return _u
}

// SetNillablePreferredDifficulty sets the "preferred_difficulty" field if the given value is not nil.
func (_u *CourseEnrollmentUpdateOne) SetNillablePreferredDifficulty(v *string) *CourseEnrollmentUpdateOne {
	if v != nil {
		_u.SetPreferredDifficulty(*v)
	}
	return _u
}

// SetLearningStylePreference sets the "learning_style_preference" field.
func (_u *CourseEnrollmentUpdateOne) SetLearningStylePreference(v string) *CourseEnrollmentUpdateOne {
	_u.mutation.SetLearningStylePreference(v)
	return _u
}

// SetNillableLearningStylePreference sets the "learning_style_preference" field if the given value is not nil.
func (_u *CourseEnrollmentUpdateOne) SetNillableLearningStylePreference(v *string) *CourseEnrollmentUpdateOne {
	if v != nil {
		_u.SetLearningStylePreference(*v)
	}
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *CourseEnrollmentUpdateOne) SetLastActivity(v time.Time) *CourseEnrollmentUpdateOne {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *CourseEnrollmentUpdateOne) SetNillableLastActivity(v *time.Time) *CourseEnrollmentUpdateOne {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CourseEnrollmentUpdateOne) SetCompletedAt(v time.Time) *CourseEnrollmentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CourseEnrollmentUpdateOne) SetNillableCompletedAt(v *time.Time) *CourseEnrollmentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CourseEnrollmentUpdateOne) ClearCompletedAt() *CourseEnrollmentUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *CourseEnrollmentUpdateOne) SetCourseID(v int) *CourseEnrollmentUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *CourseEnrollmentUpdateOne) SetNillableCourseID(v *int) *CourseEnrollmentUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetCourse sets the "course" edge to the Course entity.
func (_u *CourseEnrollmentUpdateOne) SetCourse(v *Course) *CourseEnrollmentUpdateOne {
	return _u.SetCourseID(v.ID)
}

// Mutation returns the CourseEnrollmentMutation object of the builder.
func (_u *CourseEnrollmentUpdateOne) Mutation() *CourseEnrollmentMutation {
	return _u.mutation
}

// ClearCourse clears the "course" edge to the Course entity.
func (_u *CourseEnrollmentUpdateOne) ClearCourse() *CourseEnrollmentUpdateOne {
	_u.mutation.ClearCourse()
	return _u
}

// Where appends a list predicates to the CourseEnrollmentUpdate builder.
func (_u *CourseEnrollmentUpdateOne) Where(ps ...predicate.CourseEnrollment) *CourseEnrollmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseEnrollmentUpdateOne) Select(field string, fields ...string) *CourseEnrollmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CourseEnrollment entity.
func (_u *CourseEnrollmentUpdateOne) Save(ctx context.Context) (*CourseEnrollment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseEnrollmentUpdateOne) SaveX(ctx context.Context) *CourseEnrollment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseEnrollmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseEnrollmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseEnrollmentUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := courseenrollment.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CourseEnrollment.user_id": %w`, err)}
		}
	}
	if _u.mutation.CourseCleared() && len(_u.mutation.CourseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CourseEnrollment.course"`)
	}
	return nil
}

func (_u *CourseEnrollmentUpdateOne) sqlSave(ctx context.Context) (_node *CourseEnrollment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courseenrollment.Table, courseenrollment.Columns, sqlgraph.NewFieldSpec(courseenrollment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CourseEnrollment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, courseenrollment.FieldID)
		for _, f := range fields {
			if !courseenrollment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != courseenrollment.FieldID {
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
		_spec.SetField(courseenrollment.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetCompletionDate(); ok {
		_spec.SetField(courseenrollment.FieldTargetCompletionDate, field.TypeTime, value)
	}
	if _u.mutation.TargetCompletionDateCleared() {
		_spec.ClearField(courseenrollment.FieldTargetCompletionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.StudyGoalHoursPerWeek(); ok {
		_spec.SetField(courseenrollment.FieldStudyGoalHoursPerWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudyGoalHoursPerWeek(); ok {
		_spec.AddField(courseenrollment.FieldStudyGoalHoursPerWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverallProgressPercentage(); ok {
		_spec.SetField(courseenrollment.FieldOverallProgressPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallProgressPercentage(); ok {
		_spec.AddField(courseenrollment.FieldOverallProgressPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SubjectsCompleted(); ok {
		_spec.SetField(courseenrollment.FieldSubjectsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubjectsCompleted(); ok {
		_spec.AddField(courseenrollment.FieldSubjectsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChaptersCompleted(); ok {
		_spec.SetField(courseenrollment.FieldChaptersCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChaptersCompleted(); ok {
		_spec.AddField(courseenrollment.FieldChaptersCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalStudyTimeMinutes(); ok {
		_spec.SetField(courseenrollment.FieldTotalStudyTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalStudyTimeMinutes(); ok {
		_spec.AddField(courseenrollment.FieldTotalStudyTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreferredDifficulty(); ok {
		_spec.SetField(courseenrollment.FieldPreferredDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningStylePreference(); ok {
		_spec.SetField(courseenrollment.FieldLearningStylePreference, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(courseenrollment.FieldLastActivity, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(courseenrollment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(courseenrollment.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.CourseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CourseEnrollment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courseenrollment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
