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
	"github.com/abhisek/studium/ent/chapter"
	"github.com/abhisek/studium/ent/predicate"
	"github.com/abhisek/studium/ent/subject"
	"github.com/abhisek/studium/ent/userprogress"
)

// UserProgressUpdate is the builder for updating UserProgress entities.
type UserProgressUpdate struct {
	config
	hooks    []Hook
	mutation *UserProgressMutation
}

// Where appends a list predicates to the UserProgressUpdate builder.
func (_u *UserProgressUpdate) Where(ps ...predicate.UserProgress) *UserProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserProgressUpdate) SetUserID(v string) *UserProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableUserID(v *string) *UserProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserProgressUpdate) SetStatus(v string) *UserProgressUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableStatus(v *string) *UserProgressUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletionPercentage sets the "completion_percentage" field.
func (_u *UserProgressUpdate) SetCompletionPercentage(v float64) *UserProgressUpdate {
	_u.mutation.ResetCompletionPercentage()
	_u.mutation.SetCompletionPercentage(v)
	return _u
}

// SetNillableCompletionPercentage sets the "completion_percentage" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableCompletionPercentage(v *float64) *UserProgressUpdate {
	if v != nil {
		_u.SetCompletionPercentage(*v)
	}
	return _u
}

// AddCompletionPercentage adds value to the "completion_percentage" field.
func (_u *UserProgressUpdate) AddCompletionPercentage(v float64) *UserProgressUpdate {
	_u.mutation.AddCompletionPercentage(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *UserProgressUpdate) SetMasteryLevel(v string) *UserProgressUpdate {
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableMasteryLevel(v *string) *UserProgressUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_u *UserProgressUpdate) SetTimeSpentMinutes(v int) *UserProgressUpdate {
	_u.mutation.ResetTimeSpentMinutes()
	_u.mutation.SetTimeSpentMinutes(v)
	return _u
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableTimeSpentMinutes(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetTimeSpentMinutes(*v)
	}
	return _u
}

// AddTimeSpentMinutes adds value to the "time_spent_minutes" field.
func (_u *UserProgressUpdate) AddTimeSpentMinutes(v int) *UserProgressUpdate {
	_u.mutation.AddTimeSpentMinutes(v)
	return _u
}

// SetSessionsCount sets the "sessions_count" field.
func (_u *UserProgressUpdate) SetSessionsCount(v int) *UserProgressUpdate {
	_u.mutation.ResetSessionsCount()
	_u.mutation.SetSessionsCount(v)
	return _u
}

// SetNillableSessionsCount sets the "sessions_count" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableSessionsCount(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetSessionsCount(*v)
	}
	return _u
}

// AddSessionsCount adds value to the "sessions_count" field.
func (_u *UserProgressUpdate) AddSessionsCount(v int) *UserProgressUpdate {
	_u.mutation.AddSessionsCount(v)
	return _u
}

// SetLastAccessed sets the "last_accessed" field.
func (_u *UserProgressUpdate) SetLastAccessed(v time.Time) *UserProgressUpdate {
	_u.mutation.SetLastAccessed(v)
	return _u
}

// SetNillableLastAccessed sets the "last_accessed" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableLastAccessed(v *time.Time) *UserProgressUpdate {
	if v != nil {
		_u.SetLastAccessed(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *UserProgressUpdate) SetCompletedAt(v time.Time) *UserProgressUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableCompletedAt(v *time.Time) *UserProgressUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *UserProgressUpdate) ClearCompletedAt() *UserProgressUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_u *UserProgressUpdate) SetQuestionsAsked(v int) *UserProgressUpdate {
	_u.mutation.ResetQuestionsAsked()
	_u.mutation.SetQuestionsAsked(v)
	return _u
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableQuestionsAsked(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetQuestionsAsked(*v)
	}
	return _u
}

// AddQuestionsAsked adds value to the "questions_asked" field.
func (_u *UserProgressUpdate) AddQuestionsAsked(v int) *UserProgressUpdate {
	_u.mutation.AddQuestionsAsked(v)
	return _u
}

// SetConceptsBookmarked sets the "concepts_bookmarked" field.
func (_u *UserProgressUpdate) SetConceptsBookmarked(v int) *UserProgressUpdate {
	_u.mutation.ResetConceptsBookmarked()
	_u.mutation.SetConceptsBookmarked(v)
	return _u
}

// SetNillableConceptsBookmarked sets the "concepts_bookmarked" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableConceptsBookmarked(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetConceptsBookmarked(*v)
	}
	return _u
}

// AddConceptsBookmarked adds value to the "concepts_bookmarked" field.
func (_u *UserProgressUpdate) AddConceptsBookmarked(v int) *UserProgressUpdate {
	_u.mutation.AddConceptsBookmarked(v)
	return _u
}

// SetQuizzesTaken sets the "quizzes_taken" field.
func (_u *UserProgressUpdate) SetQuizzesTaken(v int) *UserProgressUpdate {
	_u.mutation.ResetQuizzesTaken()
	_u.mutation.SetQuizzesTaken(v)
	return _u
}

// SetNillableQuizzesTaken sets the "quizzes_taken" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableQuizzesTaken(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetQuizzesTaken(*v)
	}
	return _u
}

// AddQuizzesTaken adds value to the "quizzes_taken" field.
func (_u *UserProgressUpdate) AddQuizzesTaken(v int) *UserProgressUpdate {
	_u.mutation.AddQuizzesTaken(v)
	return _u
}

// SetAvgQuizScore sets the "avg_quiz_score" field.
func (_u *UserProgressUpdate) SetAvgQuizScore(v float64) *UserProgressUpdate {
	_u.mutation.ResetAvgQuizScore()
	_u.mutation.SetAvgQuizScore(v)
	return _u
}

// SetNillableAvgQuizScore sets the "avg_quiz_score" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableAvgQuizScore(v *float64) *UserProgressUpdate {
	if v != nil {
		_u.SetAvgQuizScore(*v)
	}
	return _u
}

// AddAvgQuizScore adds value to the "avg_quiz_score" field.
func (_u *UserProgressUpdate) AddAvgQuizScore(v float64) *UserProgressUpdate {
	_u.mutation.AddAvgQuizScore(v)
	return _u
}

// SetDifficultyPreference sets the "difficulty_preference" field.
func (_u *UserProgressUpdate) SetDifficultyPreference(v string) *UserProgressUpdate {
	_u.mutation.SetDifficultyPreference(v)
	return _u
}

// SetNillableDifficultyPreference sets the "difficulty_preference" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableDifficultyPreference(v *string) *UserProgressUpdate {
	if v != nil {
		_u.SetDifficultyPreference(*v)
	}
	return _u
}

// SetLearningVelocity sets the "learning_velocity" field.
func (_u *UserProgressUpdate) SetLearningVelocity(v float64) *UserProgressUpdate {
	_u.mutation.ResetLearningVelocity()
	_u.mutation.SetLearningVelocity(v)
	return _u
}

// SetNillableLearningVelocity sets the "learning_velocity" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableLearningVelocity(v *float64) *UserProgressUpdate {
	if v != nil {
		_u.SetLearningVelocity(*v)
	}
	return _u
}

// AddLearningVelocity adds value to the "learning_velocity" field.
func (_u *UserProgressUpdate) AddLearningVelocity(v float64) *UserProgressUpdate {
	_u.mutation.AddLearningVelocity(v)
	return _u
}

// SetStruggleAreas sets the "struggle_areas" field.
func (_u *UserProgressUpdate) SetStruggleAreas(v []string) *UserProgressUpdate {
	_u.mutation.SetStruggleAreas(v)
	return _u
}

// AppendStruggleAreas appends value to the "struggle_areas" field.
func (_u *UserProgressUpdate) AppendStruggleAreas(v []string) *UserProgressUpdate {
	_u.mutation.AppendStruggleAreas(v)
	return _u
}

// ClearStruggleAreas clears the value of the "struggle_areas" field.
func (_u *UserProgressUpdate) ClearStruggleAreas() *UserProgressUpdate {
	_u.mutation.ClearStruggleAreas()
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *UserProgressUpdate) SetSubjectID(v int) *UserProgressUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableSubjectID(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *UserProgressUpdate) SetChapterID(v int) *UserProgressUpdate {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableChapterID(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// ClearChapterID clears the value of the "chapter_id" field.
func (_u *UserProgressUpdate) ClearChapterID() *UserProgressUpdate {
	_u.mutation.ClearChapterID()
	return _u
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *UserProgressUpdate) SetSubject(v *Subject) *UserProgressUpdate {
	return _u.SetSubjectID(v.ID)
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_u *UserProgressUpdate) SetChapter(v *Chapter) *UserProgressUpdate {
	return _u.SetChapterID(v.ID)
}

// Mutation returns the UserProgressMutation object of the builder.
func (_u *UserProgressUpdate) Mutation() *UserProgressMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *UserProgressUpdate) ClearSubject() *UserProgressUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (_u *UserProgressUpdate) ClearChapter() *UserProgressUpdate {
	_u.mutation.ClearChapter()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.user_id": %w`, err)}
		}
	}
	if _u.mutation.SubjectCleared() && len(_u.mutation.SubjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserProgress.subject"`)
	}
	return nil
}

func (_u *UserProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userprogress.Table, userprogress.Columns, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(userprogress.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletionPercentage(); ok {
		_spec.SetField(userprogress.FieldCompletionPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionPercentage(); ok {
		_spec.AddField(userprogress.FieldCompletionPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(userprogress.FieldMasteryLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(userprogress.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMinutes(); ok {
		_spec.AddField(userprogress.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionsCount(); ok {
		_spec.SetField(userprogress.FieldSessionsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsCount(); ok {
		_spec.AddField(userprogress.FieldSessionsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccessed(); ok {
		_spec.SetField(userprogress.FieldLastAccessed, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(userprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(userprogress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.QuestionsAsked(); ok {
		_spec.SetField(userprogress.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAsked(); ok {
		_spec.AddField(userprogress.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConceptsBookmarked(); ok {
		_spec.SetField(userprogress.FieldConceptsBookmarked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptsBookmarked(); ok {
		_spec.AddField(userprogress.FieldConceptsBookmarked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizzesTaken(); ok {
		_spec.SetField(userprogress.FieldQuizzesTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizzesTaken(); ok {
		_spec.AddField(userprogress.FieldQuizzesTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgQuizScore(); ok {
		_spec.SetField(userprogress.FieldAvgQuizScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgQuizScore(); ok {
		_spec.AddField(userprogress.FieldAvgQuizScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DifficultyPreference(); ok {
		_spec.SetField(userprogress.FieldDifficultyPreference, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningVelocity(); ok {
		_spec.SetField(userprogress.FieldLearningVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLearningVelocity(); ok {
		_spec.AddField(userprogress.FieldLearningVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StruggleAreas(); ok {
		_spec.SetField(userprogress.FieldStruggleAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStruggleAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprogress.FieldStruggleAreas, value)
		})
	}
	if _u.mutation.StruggleAreasCleared() {
		_spec.ClearField(userprogress.FieldStruggleAreas, field.TypeJSON)
	}
	if _u.mutation.SubjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChapterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChapterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserProgressUpdateOne is the builder for updating a single UserProgress entity.
type UserProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *UserProgressUpdateOne) SetUserID(v string) *UserProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableUserID(v *string) *UserProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserProgressUpdateOne) SetStatus(v string) *UserProgressUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableStatus(v *string) *UserProgressUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletionPercentage sets the "completion_percentage" field.
func (_u *UserProgressUpdateOne) SetCompletionPercentage(v float64) *UserProgressUpdateOne {
	_u.mutation.ResetCompletionPercentage()
	_u.mutation.SetCompletionPercentage(v)
	return _u
}

// SetNillableCompletionPercentage sets the "completion_percentage" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableCompletionPercentage(v *float64) *UserProgressUpdateOne {
	if v != nil {
		_u.SetCompletionPercentage(*v)
	}
	return _u
}

// AddCompletionPercentage adds value to the "completion_percentage" field.
func (_u *UserProgressUpdateOne) AddCompletionPercentage(v float64) *UserProgressUpdateOne {
	_u.mutation.AddCompletionPercentage(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *UserProgressUpdateOne) SetMasteryLevel(v string) *UserProgressUpdateOne {
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableMasteryLevel(v *string) *UserProgressUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_u *UserProgressUpdateOne) SetTimeSpentMinutes(v int) *UserProgressUpdateOne {
	_u.mutation.ResetTimeSpentMinutes()
	_u.mutation.SetTimeSpentMinutes(v)
	return _u
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableTimeSpentMinutes(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetTimeSpentMinutes(*v)
	}
	return _u
}

// AddTimeSpentMinutes adds value to the "time_spent_minutes" field.
func (_u *UserProgressUpdateOne) AddTimeSpentMinutes(v int) *UserProgressUpdateOne {
	_u.mutation.AddTimeSpentMinutes(v)
	return _u
}

// SetSessionsCount sets the "sessions_count" field.
func (_u *UserProgressUpdateOne) SetSessionsCount(v int) *UserProgressUpdateOne {
	_u.mutation.ResetSessionsCount()
	_u.mutation.SetSessionsCount(v)
	return _u
}

// SetNillableSessionsCount sets the "sessions_count" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableSessionsCount(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetSessionsCount(*v)
	}
	return _u
}

// AddSessionsCount adds value to the "sessions_count" field.
func (_u *UserProgressUpdateOne) AddSessionsCount(v int) *UserProgressUpdateOne {
	_u.mutation.AddSessionsCount(v)
	return _u
}

// SetLastAccessed sets the "last_accessed" field.
func (_u *UserProgressUpdateOne) SetLastAccessed(v time.Time) *UserProgressUpdateOne {
	_u.mutation.SetLastAccessed(v)
	return _u
}

// SetNillableLastAccessed sets the "last_accessed" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableLastAccessed(v *time.Time) *UserProgressUpdateOne {
	if v != nil {
		_u.SetLastAccessed(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *UserProgressUpdateOne) SetCompletedAt(v time.Time) *UserProgressUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableCompletedAt(v *time.Time) *UserProgressUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *UserProgressUpdateOne) ClearCompletedAt() *UserProgressUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_u *UserProgressUpdateOne) SetQuestionsAsked(v int) *UserProgressUpdateOne {
	_u.mutation.ResetQuestionsAsked()
	_u.mutation.SetQuestionsAsked(v)
	return _u
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableQuestionsAsked(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetQuestionsAsked(*v)
	}
	return _u
}

// AddQuestionsAsked adds value to the "questions_asked" field.
func (_u *UserProgressUpdateOne) AddQuestionsAsked(v int) *UserProgressUpdateOne {
	_u.mutation.AddQuestionsAsked(v)
	return _u
}

// SetConceptsBookmarked sets the "concepts_bookmarked" field.
func (_u *UserProgressUpdateOne) SetConceptsBookmarked(v int) *UserProgressUpdateOne {
	_u.mutation.ResetConceptsBookmarked()
	_u.mutation.SetConceptsBookmarked(v)
	return _u
}

// SetNillableConceptsBookmarked sets the "concepts_bookmarked" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableConceptsBookmarked(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetConceptsBookmarked(*v)
	}
	return _u
}

// AddConceptsBookmarked adds value to the "concepts_bookmarked" field.
func (_u *UserProgressUpdateOne) AddConceptsBookmarked(v int) *UserProgressUpdateOne {
	_u.mutation.AddConceptsBookmarked(v)
	return _u
}

// SetQuizzesTaken sets the "quizzes_taken" field.
func (_u *UserProgressUpdateOne) SetQuizzesTaken(v int) *UserProgressUpdateOne {
	_u.mutation.ResetQuizzesTaken()
	_u.mutation.SetQuizzesTaken(v)
	return _u
}

// SetNillableQuizzesTaken sets the "quizzes_taken" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableQuizzesTaken(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetQuizzesTaken(*v)
	}
	return _u
}

// AddQuizzesTaken adds value to the "quizzes_taken" field.
func (_u *UserProgressUpdateOne) AddQuizzesTaken(v int) *UserProgressUpdateOne {
	_u.mutation.AddQuizzesTaken(v)
	return _u
}

// SetAvgQuizScore sets the "avg_quiz_score" field.
func (_u *UserProgressUpdateOne) SetAvgQuizScore(v float64) *UserProgressUpdateOne {
	_u.mutation.ResetAvgQuizScore()
	_u.mutation.SetAvgQuizScore(v)
	return _u
}

// SetNillableAvgQuizScore sets the "avg_quiz_score" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableAvgQuizScore(v *float64) *UserProgressUpdateOne {
	if v != nil {
		_u.SetAvgQuizScore(*v)
	}
	return _u
}

// AddAvgQuizScore adds value to the "avg_quiz_score" field.
func (_u *UserProgressUpdateOne) AddAvgQuizScore(v float64) *UserProgressUpdateOne {
	_u.mutation.AddAvgQuizScore(v)
	return _u
}

// SetDifficultyPreference sets the "difficulty_preference" field.
func (_u *UserProgressUpdateOne) SetDifficultyPreference(v string) *UserProgressUpdateOne {
	_u.mutation.SetDifficultyPreference(v)
	return _u
}

// SetNillableDifficultyPreference sets the "difficulty_preference" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableDifficultyPreference(v *string) *UserProgressUpdateOne {
	if v != nil {
		_u.SetDifficultyPreference(*v)
	}
	return _u
}

// SetLearningVelocity sets the "learning_velocity" field.
func (_u *UserProgressUpdateOne) SetLearningVelocity(v float64) *UserProgressUpdateOne {
	_u.mutation.ResetLearningVelocity()
	_u.mutation.SetLearningVelocity(v)
	return _u
}

// SetNillableLearningVelocity sets the "learning_velocity" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableLearningVelocity(v *float64) *UserProgressUpdateOne {
	if v != nil {
		_u.SetLearningVelocity(*v)
	}
	return _u
}

// AddLearningVelocity adds value to the "learning_velocity" field.
func (_u *UserProgressUpdateOne) AddLearningVelocity(v float64) *UserProgressUpdateOne {
	_u.mutation.AddLearningVelocity(v)
	return _u
}

// SetStruggleAreas sets the "struggle_areas" field.
func (_u *UserProgressUpdateOne) SetStruggleAreas(v []string) *UserProgressUpdateOne {
	_u.mutation.SetStruggleAreas(v)
	return _u
}

// AppendStruggleAreas appends value to the "struggle_areas" field.
func (_u *UserProgressUpdateOne) AppendStruggleAreas(v []string) *UserProgressUpdateOne {
	_u.mutation.AppendStruggleAreas(v)
	return _u
}

// ClearStruggleAreas clears the value of the "struggle_areas" field.
func (_u *UserProgressUpdateOne) ClearStruggleAreas() *UserProgressUpdateOne {
	_u.mutation.ClearStruggleAreas()
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *UserProgressUpdateOne) SetSubjectID(v int) *UserProgressUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableSubjectID(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *UserProgressUpdateOne) SetChapterID(v int) *UserProgressUpdateOne {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableChapterID(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// ClearChapterID clears the value of the "chapter_id" field.
func (_u *UserProgressUpdateOne) ClearChapterID() *UserProgressUpdateOne {
	_u.mutation.ClearChapterID()
	return _u
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *UserProgressUpdateOne) SetSubject(v *Subject) *UserProgressUpdateOne {
	return _u.SetSubjectID(v.ID)
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_u *UserProgressUpdateOne) SetChapter(v *Chapter) *UserProgressUpdateOne {
	return _u.SetChapterID(v.ID)
}

// Mutation returns the UserProgressMutation object of the builder.
func (_u *UserProgressUpdateOne) Mutation() *UserProgressMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *UserProgressUpdateOne) ClearSubject() *UserProgressUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (_u *UserProgressUpdateOne) ClearChapter() *UserProgressUpdateOne {
	_u.mutation.ClearChapter()
	return _u
}

// Where appends a list predicates to the UserProgressUpdate builder.
func (_u *UserProgressUpdateOne) Where(ps ...predicate.UserProgress) *UserProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserProgressUpdateOne) Select(field string, fields ...string) *UserProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserProgress entity.
func (_u *UserProgressUpdateOne) Save(ctx context.Context) (*UserProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProgressUpdateOne) SaveX(ctx context.Context) *UserProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.user_id": %w`, err)}
		}
	}
	if _u.mutation.SubjectCleared() && len(_u.mutation.SubjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserProgress.subject"`)
	}
	return nil
}

func (_u *UserProgressUpdateOne) sqlSave(ctx context.Context) (_node *UserProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userprogress.Table, userprogress.Columns, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userprogress.FieldID)
		for _, f := range fields {
			if !userprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userprogress.FieldID {
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
		_spec.SetField(userprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(userprogress.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletionPercentage(); ok {
		_spec.SetField(userprogress.FieldCompletionPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionPercentage(); ok {
		_spec.AddField(userprogress.FieldCompletionPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(userprogress.FieldMasteryLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(userprogress.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMinutes(); ok {
		_spec.AddField(userprogress.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionsCount(); ok {
		_spec.SetField(userprogress.FieldSessionsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsCount(); ok {
		_spec.AddField(userprogress.FieldSessionsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccessed(); ok {
		_spec.SetField(userprogress.FieldLastAccessed, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(userprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(userprogress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.QuestionsAsked(); ok {
		_spec.SetField(userprogress.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAsked(); ok {
		_spec.AddField(userprogress.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConceptsBookmarked(); ok {
		_spec.SetField(userprogress.FieldConceptsBookmarked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptsBookmarked(); ok {
		_spec.AddField(userprogress.FieldConceptsBookmarked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizzesTaken(); ok {
		_spec.SetField(userprogress.FieldQuizzesTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizzesTaken(); ok {
		_spec.AddField(userprogress.FieldQuizzesTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgQuizScore(); ok {
		_spec.SetField(userprogress.FieldAvgQuizScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgQuizScore(); ok {
		_spec.AddField(userprogress.FieldAvgQuizScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DifficultyPreference(); ok {
		_spec.SetField(userprogress.FieldDifficultyPreference, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningVelocity(); ok {
		_spec.SetField(userprogress.FieldLearningVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLearningVelocity(); ok {
		_spec.AddField(userprogress.FieldLearningVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StruggleAreas(); ok {
		_spec.SetField(userprogress.FieldStruggleAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStruggleAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprogress.FieldStruggleAreas, value)
		})
	}
	if _u.mutation.StruggleAreasCleared() {
		_spec.ClearField(userprogress.FieldStruggleAreas, field.TypeJSON)
	}
	if _u.mutation.SubjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChapterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChapterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UserProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
