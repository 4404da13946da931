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
	"github.com/abhisek/studium/ent/course"
	"github.com/abhisek/studium/ent/predicate"
	"github.com/abhisek/studium/ent/schema"
	"github.com/abhisek/studium/ent/studysession"
	"github.com/abhisek/studium/ent/subject"
)

// StudySessionUpdate is the builder for updating StudySession entities.
type StudySessionUpdate struct {
	config
	hooks    []Hook
	mutation *StudySessionMutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdate) Where(ps ...predicate.StudySession) *StudySessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StudySessionUpdate) SetUserID(v string) *StudySessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableUserID(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionEnd sets the "session_end" field.
func (_u *StudySessionUpdate) SetSessionEnd(v time.Time) *StudySessionUpdate {
	_u.mutation.SetSessionEnd(v)
	return _u
}

// SetNillableSessionEnd sets the "session_end" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableSessionEnd(v *time.Time) *StudySessionUpdate {
	if v != nil {
		_u.SetSessionEnd(*v)
	}
	return _u
}

// ClearSessionEnd clears the value of the "session_end" field.
func (_u *StudySessionUpdate) ClearSessionEnd() *StudySessionUpdate {
	_u.mutation.ClearSessionEnd()
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *StudySessionUpdate) SetDurationMinutes(v int) *StudySessionUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableDurationMinutes(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *StudySessionUpdate) AddDurationMinutes(v int) *StudySessionUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// ClearDurationMinutes clears the value of the "duration_minutes" field.
func (_u *StudySessionUpdate) ClearDurationMinutes() *StudySessionUpdate {
	_u.mutation.ClearDurationMinutes()
	return _u
}

// SetActivities sets the "activities" field.
func (_u *StudySessionUpdate) SetActivities(v []schema.Activity) *StudySessionUpdate {
	_u.mutation.SetActivities(v)
	return _u
}

// AppendActivities appends value to the "activities" field.
func (_u *StudySessionUpdate) AppendActivities(v []schema.Activity) *StudySessionUpdate {
	_u.mutation.AppendActivities(v)
	return _u
}

// ClearActivities clears the value of the "activities" field.
func (_u *StudySessionUpdate) ClearActivities() *StudySessionUpdate {
	_u.mutation.ClearActivities()
	return _u
}

// SetConceptsStudied sets the "concepts_studied" field.
func (_u *StudySessionUpdate) SetConceptsStudied(v []string) *StudySessionUpdate {
	_u.mutation.SetConceptsStudied(v)
	return _u
}

// AppendConceptsStudied appends value to the "concepts_studied" field.
func (_u *StudySessionUpdate) AppendConceptsStudied(v []string) *StudySessionUpdate {
	_u.mutation.AppendConceptsStudied(v)
	return _u
}

// ClearConceptsStudied clears the value of the "concepts_studied" field.
func (_u *StudySessionUpdate) ClearConceptsStudied() *StudySessionUpdate {
	_u.mutation.ClearConceptsStudied()
	return _u
}

// SetDifficultyAdjustments sets the "difficulty_adjustments" field.
func (_u *StudySessionUpdate) SetDifficultyAdjustments(v int) *StudySessionUpdate {
	_u.mutation.ResetDifficultyAdjustments()
	_u.mutation.SetDifficultyAdjustments(v)
	return _u
}

// SetNillableDifficultyAdjustments sets the "difficulty_adjustments" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableDifficultyAdjustments(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetDifficultyAdjustments(*v)
	}
	return _u
}

// AddDifficultyAdjustments adds value to the "difficulty_adjustments" field.
func (_u *StudySessionUpdate) AddDifficultyAdjustments(v int) *StudySessionUpdate {
	_u.mutation.AddDifficultyAdjustments(v)
	return _u
}

// SetCompletionProgress sets the "completion_progress" field.
func (_u *StudySessionUpdate) SetCompletionProgress(v float64) *StudySessionUpdate {
	_u.mutation.ResetCompletionProgress()
	_u.mutation.SetCompletionProgress(v)
	return _u
}

// SetNillableCompletionProgress sets the "completion_progress" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableCompletionProgress(v *float64) *StudySessionUpdate {
	if v != nil {
		_u.SetCompletionProgress(*v)
	}
	return _u
}

// AddCompletionProgress adds value to the "completion_progress" field.
func (_u *StudySessionUpdate) AddCompletionProgress(v float64) *StudySessionUpdate {
	_u.mutation.AddCompletionProgress(v)
	return _u
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_u *StudySessionUpdate) SetQuestionsAsked(v int) *StudySessionUpdate {
	_u.mutation.ResetQuestionsAsked()
	_u.mutation.SetQuestionsAsked(v)
	return _u
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableQuestionsAsked(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetQuestionsAsked(*v)
	}
	return _u
}

// AddQuestionsAsked adds value to the "questions_asked" field.
func (_u *StudySessionUpdate) AddQuestionsAsked(v int) *StudySessionUpdate {
	_u.mutation.AddQuestionsAsked(v)
	return _u
}

// SetBookmarksCreated sets the "bookmarks_created" field.
func (_u *StudySessionUpdate) SetBookmarksCreated(v int) *StudySessionUpdate {
	_u.mutation.ResetBookmarksCreated()
	_u.mutation.SetBookmarksCreated(v)
	return _u
}

// SetNillableBookmarksCreated sets the "bookmarks_created" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableBookmarksCreated(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetBookmarksCreated(*v)
	}
	return _u
}

// AddBookmarksCreated adds value to the "bookmarks_created" field.
func (_u *StudySessionUpdate) AddBookmarksCreated(v int) *StudySessionUpdate {
	_u.mutation.AddBookmarksCreated(v)
	return _u
}

// SetQuizzesCompleted sets the "quizzes_completed" field.
func (_u *StudySessionUpdate) SetQuizzesCompleted(v int) *StudySessionUpdate {
	_u.mutation.ResetQuizzesCompleted()
	_u.mutation.SetQuizzesCompleted(v)
	return _u
}

// SetNillableQuizzesCompleted sets the "quizzes_completed" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableQuizzesCompleted(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetQuizzesCompleted(*v)
	}
	return _u
}

// AddQuizzesCompleted adds value to the "quizzes_completed" field.
func (_u *StudySessionUpdate) AddQuizzesCompleted(v int) *StudySessionUpdate {
	_u.mutation.AddQuizzesCompleted(v)
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *StudySessionUpdate) SetEngagementScore(v float64) *StudySessionUpdate {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableEngagementScore(v *float64) *StudySessionUpdate {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *StudySessionUpdate) AddEngagementScore(v float64) *StudySessionUpdate {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// SetFocusScore sets the "focus_score" field.
func (_u *StudySessionUpdate) SetFocusScore(v float64) *StudySessionUpdate {
	_u.mutation.ResetFocusScore()
	_u.mutation.SetFocusScore(v)
	return _u
}

// SetNillableFocusScore sets the "focus_score" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableFocusScore(v *float64) *StudySessionUpdate {
	if v != nil {
		_u.SetFocusScore(*v)
	}
	return _u
}

// AddFocusScore adds value to the "focus_score" field.
func (_u *StudySessionUpdate) AddFocusScore(v float64) *StudySessionUpdate {
	_u.mutation.AddFocusScore(v)
	return _u
}

// SetLearningEffectiveness sets the "learning_effectiveness" field.
func (_u *StudySessionUpdate) SetLearningEffectiveness(v float64) *StudySessionUpdate {
	_u.mutation.ResetLearningEffectiveness()
	_u.mutation.SetLearningEffectiveness(v)
	return _u
}

// SetNillableLearningEffectiveness sets the "learning_effectiveness" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableLearningEffectiveness(v *float64) *StudySessionUpdate {
	if v != nil {
		_u.SetLearningEffectiveness(*v)
	}
	return _u
}

// AddLearningEffectiveness adds value to the "learning_effectiveness" field.
func (_u *StudySessionUpdate) AddLearningEffectiveness(v float64) *StudySessionUpdate {
	_u.mutation.AddLearningEffectiveness(v)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *StudySessionUpdate) SetCourseID(v int) *StudySessionUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableCourseID(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// ClearCourseID clears the value of the "course_id" field.
func (_u *StudySessionUpdate) ClearCourseID() *StudySessionUpdate {
	_u.mutation.ClearCourseID()
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *StudySessionUpdate) SetSubjectID(v int) *StudySessionUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableSubjectID(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// ClearSubjectID clears the value of the "subject_id" field.
func (_u *StudySessionUpdate) ClearSubjectID() *StudySessionUpdate {
	_u.mutation.ClearSubjectID()
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *StudySessionUpdate) SetChapterID(v int) *StudySessionUpdate {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableChapterID(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// ClearChapterID clears the value of the "chapter_id" field.
func (_u *StudySessionUpdate) ClearChapterID() *StudySessionUpdate {
	_u.mutation.ClearChapterID()
	return _u
}

// SetCourse sets the "course" edge to the Course entity.
func (_u *StudySessionUpdate) SetCourse(v *Course) *StudySessionUpdate {
	return _u.SetCourseID(v.ID)
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *StudySessionUpdate) SetSubject(v *Subject) *StudySessionUpdate {
	return _u.SetSubjectID(v.ID)
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_u *StudySessionUpdate) SetChapter(v *Chapter) *StudySessionUpdate {
	return _u.SetChapterID(v.ID)
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdate) Mutation() *StudySessionMutation {
	return _u.mutation
}

// ClearCourse clears the "course" edge to the Course entity.
func (_u *StudySessionUpdate) ClearCourse() *StudySessionUpdate {
	_u.mutation.ClearCourse()
	return _u
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *StudySessionUpdate) ClearSubject() *StudySessionUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (_u *StudySessionUpdate) ClearChapter() *StudySessionUpdate {
	_u.mutation.ClearChapter()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudySessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudySessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := studysession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StudySession.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(studysession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionEnd(); ok {
		_spec.SetField(studysession.FieldSessionEnd, field.TypeTime, value)
	}
	if _u.mutation.SessionEndCleared() {
		_spec.ClearField(studysession.FieldSessionEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(studysession.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(studysession.FieldDurationMinutes, field.TypeInt, value)
	}
	if _u.mutation.DurationMinutesCleared() {
		_spec.ClearField(studysession.FieldDurationMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.Activities(); ok {
		_spec.SetField(studysession.FieldActivities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActivities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studysession.FieldActivities, value)
		})
	}
	if _u.mutation.ActivitiesCleared() {
		_spec.ClearField(studysession.FieldActivities, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConceptsStudied(); ok {
		_spec.SetField(studysession.FieldConceptsStudied, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptsStudied(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studysession.FieldConceptsStudied, value)
		})
	}
	if _u.mutation.ConceptsStudiedCleared() {
		_spec.ClearField(studysession.FieldConceptsStudied, field.TypeJSON)
	}
	if value, ok := _u.mutation.DifficultyAdjustments(); ok {
		_spec.SetField(studysession.FieldDifficultyAdjustments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyAdjustments(); ok {
		_spec.AddField(studysession.FieldDifficultyAdjustments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionProgress(); ok {
		_spec.SetField(studysession.FieldCompletionProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionProgress(); ok {
		_spec.AddField(studysession.FieldCompletionProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionsAsked(); ok {
		_spec.SetField(studysession.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAsked(); ok {
		_spec.AddField(studysession.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BookmarksCreated(); ok {
		_spec.SetField(studysession.FieldBookmarksCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBookmarksCreated(); ok {
		_spec.AddField(studysession.FieldBookmarksCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizzesCompleted(); ok {
		_spec.SetField(studysession.FieldQuizzesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizzesCompleted(); ok {
		_spec.AddField(studysession.FieldQuizzesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(studysession.FieldEngagementScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(studysession.FieldEngagementScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FocusScore(); ok {
		_spec.SetField(studysession.FieldFocusScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFocusScore(); ok {
		_spec.AddField(studysession.FieldFocusScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LearningEffectiveness(); ok {
		_spec.SetField(studysession.FieldLearningEffectiveness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLearningEffectiveness(); ok {
		_spec.AddField(studysession.FieldLearningEffectiveness, field.TypeFloat64, value)
	}
	if _u.mutation.CourseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChapterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChapterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudySessionUpdateOne is the builder for updating a single StudySession entity.
type StudySessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudySessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *StudySessionUpdateOne) SetUserID(v string) *StudySessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableUserID(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionEnd sets the "session_end" field.
func (_u *StudySessionUpdateOne) SetSessionEnd(v time.Time) *StudySessionUpdateOne {
	_u.mutation.SetSessionEnd(v)
	return _u
}

// SetNillableSessionEnd sets the "session_end" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableSessionEnd(v *time.Time) *StudySessionUpdateOne {
	if v != nil {
		_u.SetSessionEnd(*v)
	}
	return _u
}

// ClearSessionEnd clears the value of the "session_end" field.
func (_u *StudySessionUpdateOne) ClearSessionEnd() *StudySessionUpdateOne {
	_u.mutation.ClearSessionEnd()
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *StudySessionUpdateOne) SetDurationMinutes(v int) *StudySessionUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableDurationMinutes(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *StudySessionUpdateOne) AddDurationMinutes(v int) *StudySessionUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// ClearDurationMinutes clears the value of the "duration_minutes" field.
func (_u *StudySessionUpdateOne) ClearDurationMinutes() *StudySessionUpdateOne {
	_u.mutation.ClearDurationMinutes()
	return _u
}

// SetActivities sets the "activities" field.
func (_u *StudySessionUpdateOne) SetActivities(v []schema.Activity) *StudySessionUpdateOne {
	_u.mutation.SetActivities(v)
	return _u
}

// AppendActivities appends value to the "activities" field.
func (_u *StudySessionUpdateOne) AppendActivities(v []schema.Activity) *StudySessionUpdateOne {
	_u.mutation.AppendActivities(v)
	return _u
}

// ClearActivities clears the value of the "activities" field.
func (_u *StudySessionUpdateOne) ClearActivities() *StudySessionUpdateOne {
	_u.mutation.ClearActivities()
	return _u
}

// SetConceptsStudied sets the "concepts_studied" field.
func (_u *StudySessionUpdateOne) SetConceptsStudied(v []string) *StudySessionUpdateOne {
	_u.mutation.SetConceptsStudied(v)
	return _u
}

// AppendConceptsStudied appends value to the "concepts_studied" field.
func (_u *StudySessionUpdateOne) AppendConceptsStudied(v []string) *StudySessionUpdateOne {
	_u.mutation.AppendConceptsStudied(v)
	return _u
}

// ClearConceptsStudied clears the value of the "concepts_studied" field.
func (_u *StudySessionUpdateOne) ClearConceptsStudied() *StudySessionUpdateOne {
	_u.mutation.ClearConceptsStudied()
	return _u
}

// SetDifficultyAdjustments sets the "difficulty_adjustments" field.
func (_u *StudySessionUpdateOne) SetDifficultyAdjustments(v int) *StudySessionUpdateOne {
	_u.mutation.ResetDifficultyAdjustments()
	_u.mutation.SetDifficultyAdjustments(v)
	return _u
}

// SetNillableDifficultyAdjustments sets the "difficulty_adjustments" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableDifficultyAdjustments(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetDifficultyAdjustments(*v)
	}
	return _u
}

// AddDifficultyAdjustments adds value to the "difficulty_adjustments" field.
func (_u *StudySessionUpdateOne) AddDifficultyAdjustments(v int) *StudySessionUpdateOne {
	_u.mutation.AddDifficultyAdjustments(v)
	return _u
}

// SetCompletionProgress sets the "completion_progress" field.
func (_u *StudySessionUpdateOne) SetCompletionProgress(v float64) *StudySessionUpdateOne {
	_u.mutation.ResetCompletionProgress()
	_u.mutation.SetCompletionProgress(v)
	return _u
}

// SetNillableCompletionProgress sets the "completion_progress" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableCompletionProgress(v *float64) *StudySessionUpdateOne {
	if v != nil {
		_u.SetCompletionProgress(*v)
	}
	return _u
}

// AddCompletionProgress adds value to the "completion_progress" field.
func (_u *StudySessionUpdateOne) AddCompletionProgress(v float64) *StudySessionUpdateOne {
	_u.mutation.AddCompletionProgress(v)
	return _u
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_u *StudySessionUpdateOne) SetQuestionsAsked(v int) *StudySessionUpdateOne {
	_u.mutation.ResetQuestionsAsked()
	_u.mutation.SetQuestionsAsked(v)
	return _u
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableQuestionsAsked(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetQuestionsAsked(*v)
	}
	return _u
}

// AddQuestionsAsked adds value to the "questions_asked" field.
func (_u *StudySessionUpdateOne) AddQuestionsAsked(v int) *StudySessionUpdateOne {
	_u.mutation.AddQuestionsAsked(v)
	return _u
}

// SetBookmarksCreated sets the "bookmarks_created" field.
func (_u *StudySessionUpdateOne) SetBookmarksCreated(v int) *StudySessionUpdateOne {
	_u.mutation.ResetBookmarksCreated()
	_u.mutation.SetBookmarksCreated(v)
	return _u
}

// SetNillableBookmarksCreated sets the "bookmarks_created" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableBookmarksCreated(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetBookmarksCreated(*v)
	}
	return _u
}

// AddBookmarksCreated adds value to the "bookmarks_created" field.
func (_u *StudySessionUpdateOne) AddBookmarksCreated(v int) *StudySessionUpdateOne {
	_u.mutation.AddBookmarksCreated(v)
	return _u
}

// SetQuizzesCompleted sets the "quizzes_completed" field.
func (_u *StudySessionUpdateOne) SetQuizzesCompleted(v int) *StudySessionUpdateOne {
	_u.mutation.ResetQuizzesCompleted()
	_u.mutation.SetQuizzesCompleted(v)
	return _u
}

// SetNillableQuizzesCompleted sets the "quizzes_completed" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableQuizzesCompleted(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetQuizzesCompleted(*v)
	}
	return _u
}

// AddQuizzesCompleted adds value to the "quizzes_completed" field.
func (_u *StudySessionUpdateOne) AddQuizzesCompleted(v int) *StudySessionUpdateOne {
	_u.mutation.AddQuizzesCompleted(v)
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *StudySessionUpdateOne) SetEngagementScore(v float64) *StudySessionUpdateOne {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableEngagementScore(v *float64) *StudySessionUpdateOne {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *StudySessionUpdateOne) AddEngagementScore(v float64) *StudySessionUpdateOne {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// SetFocusScore sets the "focus_score" field.
func (_u *StudySessionUpdateOne) SetFocusScore(v float64) *StudySessionUpdateOne {
	_u.mutation.ResetFocusScore()
	_u.mutation.SetFocusScore(v)
	return _u
}

// SetNillableFocusScore sets the "focus_score" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableFocusScore(v *float64) *StudySessionUpdateOne {
	if v != nil {
		_u.SetFocusScore(*v)
	}
	return _u
}

// AddFocusScore adds value to the "focus_score" field.
func (_u *StudySessionUpdateOne) AddFocusScore(v float64) *StudySessionUpdateOne {
	_u.mutation.AddFocusScore(v)
	return _u
}

// SetLearningEffectiveness sets the "learning_effectiveness" field.
func (_u *StudySessionUpdateOne) SetLearningEffectiveness(v float64) *StudySessionUpdateOne {
	_u.mutation.ResetLearningEffectiveness()
	_u.mutation.SetLearningEffectiveness(v)
	return _u
}

// SetNillableLearningEffectiveness sets the "learning_effectiveness" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableLearningEffectiveness(v *float64) *StudySessionUpdateOne {
	if v != nil {
		_u.SetLearningEffectiveness(*v)
	}
	return _u
}

// AddLearningEffectiveness adds value to the "learning_effectiveness" field.
func (_u *StudySessionUpdateOne) AddLearningEffectiveness(v float64) *StudySessionUpdateOne {
	_u.mutation.AddLearningEffectiveness(v)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *StudySessionUpdateOne) SetCourseID(v int) *StudySessionUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableCourseID(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// ClearCourseID clears the value of the "course_id" field.
func (_u *StudySessionUpdateOne) ClearCourseID() *StudySessionUpdateOne {
	_u.mutation.ClearCourseID()
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *StudySessionUpdateOne) SetSubjectID(v int) *StudySessionUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableSubjectID(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// ClearSubjectID clears the value of the "subject_id" field.
func (_u *StudySessionUpdateOne) ClearSubjectID() *StudySessionUpdateOne {
	_u.mutation.ClearSubjectID()
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *StudySessionUpdateOne) SetChapterID(v int) *StudySessionUpdateOne {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableChapterID(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// ClearChapterID clears the value of the "chapter_id" field.
func (_u *StudySessionUpdateOne) ClearChapterID() *StudySessionUpdateOne {
	_u.mutation.ClearChapterID()
	return _u
}

// SetCourse sets the "course" edge to the Course entity.
func (_u *StudySessionUpdateOne) SetCourse(v *Course) *StudySessionUpdateOne {
	return _u.SetCourseID(v.ID)
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *StudySessionUpdateOne) SetSubject(v *Subject) *StudySessionUpdateOne {
	return _u.SetSubjectID(v.ID)
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_u *StudySessionUpdateOne) SetChapter(v *Chapter) *StudySessionUpdateOne {
	return _u.SetChapterID(v.ID)
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdateOne) Mutation() *StudySessionMutation {
	return _u.mutation
}

// ClearCourse clears the "course" edge to the Course entity.
func (_u *StudySessionUpdateOne) ClearCourse() *StudySessionUpdateOne {
	_u.mutation.ClearCourse()
	return _u
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *StudySessionUpdateOne) ClearSubject() *StudySessionUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (_u *StudySessionUpdateOne) ClearChapter() *StudySessionUpdateOne {
	_u.mutation.ClearChapter()
	return _u
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdateOne) Where(ps ...predicate.StudySession) *StudySessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudySessionUpdateOne) Select(field string, fields ...string) *StudySessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudySession entity.
func (_u *StudySessionUpdateOne) Save(ctx context.Context) (*StudySession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdateOne) SaveX(ctx context.Context) *StudySession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudySessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := studysession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StudySession.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionUpdateOne) sqlSave(ctx context.Context) (_node *StudySession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudySession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studysession.FieldID)
		for _, f := range fields {
			if !studysession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studysession.FieldID {
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
		_spec.SetField(studysession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionEnd(); ok {
		_spec.SetField(studysession.FieldSessionEnd, field.TypeTime, value)
	}
	if _u.mutation.SessionEndCleared() {
		_spec.ClearField(studysession.FieldSessionEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(studysession.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(studysession.FieldDurationMinutes, field.TypeInt, value)
	}
	if _u.mutation.DurationMinutesCleared() {
		_spec.ClearField(studysession.FieldDurationMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.Activities(); ok {
		_spec.SetField(studysession.FieldActivities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActivities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studysession.FieldActivities, value)
		})
	}
	if _u.mutation.ActivitiesCleared() {
		_spec.ClearField(studysession.FieldActivities, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConceptsStudied(); ok {
		_spec.SetField(studysession.FieldConceptsStudied, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptsStudied(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studysession.FieldConceptsStudied, value)
		})
	}
	if _u.mutation.ConceptsStudiedCleared() {
		_spec.ClearField(studysession.FieldConceptsStudied, field.TypeJSON)
	}
	if value, ok := _u.mutation.DifficultyAdjustments(); ok {
		_spec.SetField(studysession.FieldDifficultyAdjustments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyAdjustments(); ok {
		_spec.AddField(studysession.FieldDifficultyAdjustments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionProgress(); ok {
		_spec.SetField(studysession.FieldCompletionProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionProgress(); ok {
		_spec.AddField(studysession.FieldCompletionProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionsAsked(); ok {
		_spec.SetField(studysession.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAsked(); ok {
		_spec.AddField(studysession.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BookmarksCreated(); ok {
		_spec.SetField(studysession.FieldBookmarksCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBookmarksCreated(); ok {
		_spec.AddField(studysession.FieldBookmarksCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizzesCompleted(); ok {
		_spec.SetField(studysession.FieldQuizzesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizzesCompleted(); ok {
		_spec.AddField(studysession.FieldQuizzesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(studysession.FieldEngagementScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(studysession.FieldEngagementScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FocusScore(); ok {
		_spec.SetField(studysession.FieldFocusScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFocusScore(); ok {
		_spec.AddField(studysession.FieldFocusScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LearningEffectiveness(); ok {
		_spec.SetField(studysession.FieldLearningEffectiveness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLearningEffectiveness(); ok {
		_spec.AddField(studysession.FieldLearningEffectiveness, field.TypeFloat64, value)
	}
	if _u.mutation.CourseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChapterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChapterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StudySession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
