// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studium/ent/chapter"
	"github.com/abhisek/studium/ent/predicate"
	"github.com/abhisek/studium/ent/quizresult"
	"github.com/abhisek/studium/ent/schema"
)

// QuizResultUpdate is the builder for updating QuizResult entities.
type QuizResultUpdate struct {
	config
	hooks    []Hook
	mutation *QuizResultMutation
}

// Where appends a list predicates to the QuizResultUpdate builder.
func (_u *QuizResultUpdate) Where(ps ...predicate.QuizResult) *QuizResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizResultUpdate) SetUserID(v string) *QuizResultUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableUserID(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuizTitle sets the "quiz_title" field.
func (_u *QuizResultUpdate) SetQuizTitle(v string) *QuizResultUpdate {
	_u.mutation.SetQuizTitle(v)
	return _u
}

// SetNillableQuizTitle sets the "quiz_title" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableQuizTitle(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetQuizTitle(*v)
	}
	return _u
}

// SetQuizType sets the "quiz_type" field.
func (_u *QuizResultUpdate) SetQuizType(v string) *QuizResultUpdate {
	_u.mutation.SetQuizType(v)
	return _u
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableQuizType(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetQuizType(*v)
	}
	return _u
}

// SetSubjectDomain sets the "subject_domain" field.
func (_u *QuizResultUpdate) SetSubjectDomain(v string) *QuizResultUpdate {
	_u.mutation.SetSubjectDomain(v)
	return _u
}

// SetNillableSubjectDomain sets the "subject_domain" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableSubjectDomain(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetSubjectDomain(*v)
	}
	return _u
}

// ClearSubjectDomain clears the value of the "subject_domain" field.
func (_u *QuizResultUpdate) ClearSubjectDomain() *QuizResultUpdate {
	_u.mutation.ClearSubjectDomain()
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizResultUpdate) SetScore(v int) *QuizResultUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableScore(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizResultUpdate) AddScore(v int) *QuizResultUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizResultUpdate) SetTotalQuestions(v int) *QuizResultUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableTotalQuestions(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizResultUpdate) AddTotalQuestions(v int) *QuizResultUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *QuizResultUpdate) SetPercentage(v float64) *QuizResultUpdate {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillablePercentage(v *float64) *QuizResultUpdate {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *QuizResultUpdate) AddPercentage(v float64) *QuizResultUpdate {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *QuizResultUpdate) SetDifficultyLevel(v string) *QuizResultUpdate {
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableDifficultyLevel(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (_u *QuizResultUpdate) SetTimeTakenSeconds(v int) *QuizResultUpdate {
	_u.mutation.ResetTimeTakenSeconds()
	_u.mutation.SetTimeTakenSeconds(v)
	return _u
}

// SetNillableTimeTakenSeconds sets the "time_taken_seconds" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableTimeTakenSeconds(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetTimeTakenSeconds(*v)
	}
	return _u
}

// AddTimeTakenSeconds adds value to the "time_taken_seconds" field.
func (_u *QuizResultUpdate) AddTimeTakenSeconds(v int) *QuizResultUpdate {
	_u.mutation.AddTimeTakenSeconds(v)
	return _u
}

// ClearTimeTakenSeconds clears the value of the "time_taken_seconds" field.
func (_u *QuizResultUpdate) ClearTimeTakenSeconds() *QuizResultUpdate {
	_u.mutation.ClearTimeTakenSeconds()
	return _u
}

// SetConceptMastery sets the "concept_mastery" field.
func (_u *QuizResultUpdate) SetConceptMastery(v map[string]schema.ConceptScore) *QuizResultUpdate {
	_u.mutation.SetConceptMastery(v)
	return _u
}

// ClearConceptMastery clears the value of the "concept_mastery" field.
func (_u *QuizResultUpdate) ClearConceptMastery() *QuizResultUpdate {
	_u.mutation.ClearConceptMastery()
	return _u
}

// SetAreasForImprovement sets the "areas_for_improvement" field.
func (_u *QuizResultUpdate) SetAreasForImprovement(v []string) *QuizResultUpdate {
	_u.mutation.SetAreasForImprovement(v)
	return _u
}

// AppendAreasForImprovement appends value to the "areas_for_improvement" field.
func (_u *QuizResultUpdate) AppendAreasForImprovement(v []string) *QuizResultUpdate {
	_u.mutation.AppendAreasForImprovement(v)
	return _u
}

// ClearAreasForImprovement clears the value of the "areas_for_improvement" field.
func (_u *QuizResultUpdate) ClearAreasForImprovement() *QuizResultUpdate {
	_u.mutation.ClearAreasForImprovement()
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuizResultUpdate) SetQuestions(v []map[string]interface{}) *QuizResultUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *QuizResultUpdate) AppendQuestions(v []map[string]interface{}) *QuizResultUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *QuizResultUpdate) ClearQuestions() *QuizResultUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// SetUserAnswers sets the "user_answers" field.
func (_u *QuizResultUpdate) SetUserAnswers(v map[string]schema.AnsweredQuestion) *QuizResultUpdate {
	_u.mutation.SetUserAnswers(v)
	return _u
}

// ClearUserAnswers clears the value of the "user_answers" field.
func (_u *QuizResultUpdate) ClearUserAnswers() *QuizResultUpdate {
	_u.mutation.ClearUserAnswers()
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *QuizResultUpdate) SetChapterID(v int) *QuizResultUpdate {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableChapterID(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_u *QuizResultUpdate) SetChapter(v *Chapter) *QuizResultUpdate {
	return _u.SetChapterID(v.ID)
}

// Mutation returns the QuizResultMutation object of the builder.
func (_u *QuizResultUpdate) Mutation() *QuizResultMutation {
	return _u.mutation
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (_u *QuizResultUpdate) ClearChapter() *QuizResultUpdate {
	_u.mutation.ClearChapter()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := quizresult.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizResult.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizTitle(); ok {
		if err := quizresult.QuizTitleValidator(v); err != nil {
			return &ValidationError{Name: "quiz_title", err: fmt.Errorf(`ent: validator failed for field "QuizResult.quiz_title": %w`, err)}
		}
	}
	if _u.mutation.ChapterCleared() && len(_u.mutation.ChapterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuizResult.chapter"`)
	}
	return nil
}

func (_u *QuizResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizresult.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizTitle(); ok {
		_spec.SetField(quizresult.FieldQuizTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizType(); ok {
		_spec.SetField(quizresult.FieldQuizType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectDomain(); ok {
		_spec.SetField(quizresult.FieldSubjectDomain, field.TypeString, value)
	}
	if _u.mutation.SubjectDomainCleared() {
		_spec.ClearField(quizresult.FieldSubjectDomain, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(quizresult.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(quizresult.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(quizresult.FieldDifficultyLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeTakenSeconds(); ok {
		_spec.SetField(quizresult.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenSeconds(); ok {
		_spec.AddField(quizresult.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if _u.mutation.TimeTakenSecondsCleared() {
		_spec.ClearField(quizresult.FieldTimeTakenSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.ConceptMastery(); ok {
		_spec.SetField(quizresult.FieldConceptMastery, field.TypeJSON, value)
	}
	if _u.mutation.ConceptMasteryCleared() {
		_spec.ClearField(quizresult.FieldConceptMastery, field.TypeJSON)
	}
	if value, ok := _u.mutation.AreasForImprovement(); ok {
		_spec.SetField(quizresult.FieldAreasForImprovement, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAreasForImprovement(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresult.FieldAreasForImprovement, value)
		})
	}
	if _u.mutation.AreasForImprovementCleared() {
		_spec.ClearField(quizresult.FieldAreasForImprovement, field.TypeJSON)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(quizresult.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresult.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(quizresult.FieldQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.UserAnswers(); ok {
		_spec.SetField(quizresult.FieldUserAnswers, field.TypeJSON, value)
	}
	if _u.mutation.UserAnswersCleared() {
		_spec.ClearField(quizresult.FieldUserAnswers, field.TypeJSON)
	}
	if _u.mutation.ChapterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChapterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizResultUpdateOne is the builder for updating a single QuizResult entity.
type QuizResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizResultMutation
}

// SetUserID sets the "user_id" field.
func (_u *QuizResultUpdateOne) SetUserID(v string) *QuizResultUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableUserID(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuizTitle sets the "quiz_title" field.
func (_u *QuizResultUpdateOne) SetQuizTitle(v string) *QuizResultUpdateOne {
	_u.mutation.SetQuizTitle(v)
	return _u
}

// SetNillableQuizTitle sets the "quiz_title" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableQuizTitle(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetQuizTitle(*v)
	}
	return _u
}

// SetQuizType sets the "quiz_type" field.
func (_u *QuizResultUpdateOne) SetQuizType(v string) *QuizResultUpdateOne {
	_u.mutation.SetQuizType(v)
	return _u
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableQuizType(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetQuizType(*v)
	}
	return _u
}

// SetSubjectDomain sets the "subject_domain" field.
func (_u *QuizResultUpdateOne) SetSubjectDomain(v string) *QuizResultUpdateOne {
	_u.mutation.SetSubjectDomain(v)
	return _u
}

// SetNillableSubjectDomain sets the "subject_domain" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableSubjectDomain(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetSubjectDomain(*v)
	}
	return _u
}

// ClearSubjectDomain clears the value of the "subject_domain" field.
func (_u *QuizResultUpdateOne) ClearSubjectDomain() *QuizResultUpdateOne {
	_u.mutation.ClearSubjectDomain()
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizResultUpdateOne) SetScore(v int) *QuizResultUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableScore(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizResultUpdateOne) AddScore(v int) *QuizResultUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizResultUpdateOne) SetTotalQuestions(v int) *QuizResultUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableTotalQuestions(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizResultUpdateOne) AddTotalQuestions(v int) *QuizResultUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *QuizResultUpdateOne) SetPercentage(v float64) *QuizResultUpdateOne {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillablePercentage(v *float64) *QuizResultUpdateOne {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *QuizResultUpdateOne) AddPercentage(v float64) *QuizResultUpdateOne {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *QuizResultUpdateOne) SetDifficultyLevel(v string) *QuizResultUpdateOne {
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableDifficultyLevel(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (_u *QuizResultUpdateOne) SetTimeTakenSeconds(v int) *QuizResultUpdateOne {
	_u.mutation.ResetTimeTakenSeconds()
	_u.mutation.SetTimeTakenSeconds(v)
	return _u
}

// SetNillableTimeTakenSeconds sets the "time_taken_seconds" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableTimeTakenSeconds(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetTimeTakenSeconds(*v)
	}
	return _u
}

// AddTimeTakenSeconds adds value to the "time_taken_seconds" field.
func (_u *QuizResultUpdateOne) AddTimeTakenSeconds(v int) *QuizResultUpdateOne {
	_u.mutation.AddTimeTakenSeconds(v)
	return _u
}

// ClearTimeTakenSeconds clears the value of the "time_taken_seconds" field.
func (_u *QuizResultUpdateOne) ClearTimeTakenSeconds() *QuizResultUpdateOne {
	_u.mutation.ClearTimeTakenSeconds()
	return _u
}

// SetConceptMastery sets the "concept_mastery" field.
func (_u *QuizResultUpdateOne) SetConceptMastery(v map[string]schema.ConceptScore) *QuizResultUpdateOne {
	_u.mutation.SetConceptMastery(v)
	return _u
}

// ClearConceptMastery clears the value of the "concept_mastery" field.
func (_u *QuizResultUpdateOne) ClearConceptMastery() *QuizResultUpdateOne {
	_u.mutation.ClearConceptMastery()
	return _u
}

// SetAreasForImprovement sets the "areas_for_improvement" field.
func (_u *QuizResultUpdateOne) SetAreasForImprovement(v []string) *QuizResultUpdateOne {
	_u.mutation.SetAreasForImprovement(v)
	return _u
}

// AppendAreasForImprovement appends value to the "areas_for_improvement" field.
func (_u *QuizResultUpdateOne) AppendAreasForImprovement(v []string) *QuizResultUpdateOne {
	_u.mutation.AppendAreasForImprovement(v)
	return _u
}

// ClearAreasForImprovement clears the value of the "areas_for_improvement" field.
func (_u *QuizResultUpdateOne) ClearAreasForImprovement() *QuizResultUpdateOne {
	_u.mutation.ClearAreasForImprovement()
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuizResultUpdateOne) SetQuestions(v []map[string]interface{}) *QuizResultUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *QuizResultUpdateOne) AppendQuestions(v []map[string]interface{}) *QuizResultUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *QuizResultUpdateOne) ClearQuestions() *QuizResultUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// SetUserAnswers sets the "user_answers" field.
func (_u *QuizResultUpdateOne) SetUserAnswers(v map[string]schema.AnsweredQuestion) *QuizResultUpdateOne {
	_u.mutation.SetUserAnswers(v)
	return _u
}

// ClearUserAnswers clears the value of the "user_answers" field.
func (_u *QuizResultUpdateOne) ClearUserAnswers() *QuizResultUpdateOne {
	_u.mutation.ClearUserAnswers()
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *QuizResultUpdateOne) SetChapterID(v int) *QuizResultUpdateOne {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableChapterID(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_u *QuizResultUpdateOne) SetChapter(v *Chapter) *QuizResultUpdateOne {
	return _u.SetChapterID(v.ID)
}

// Mutation returns the QuizResultMutation object of the builder.
func (_u *QuizResultUpdateOne) Mutation() *QuizResultMutation {
	return _u.mutation
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (_u *QuizResultUpdateOne) ClearChapter() *QuizResultUpdateOne {
	_u.mutation.ClearChapter()
	return _u
}

// Where appends a list predicates to the QuizResultUpdate builder.
func (_u *QuizResultUpdateOne) Where(ps ...predicate.QuizResult) *QuizResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizResultUpdateOne) Select(field string, fields ...string) *QuizResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizResult entity.
func (_u *QuizResultUpdateOne) Save(ctx context.Context) (*QuizResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultUpdateOne) SaveX(ctx context.Context) *QuizResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := quizresult.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizResult.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizTitle(); ok {
		if err := quizresult.QuizTitleValidator(v); err != nil {
			return &ValidationError{Name: "quiz_title", err: fmt.Errorf(`ent: validator failed for field "QuizResult.quiz_title": %w`, err)}
		}
	}
	if _u.mutation.ChapterCleared() && len(_u.mutation.ChapterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuizResult.chapter"`)
	}
	return nil
}

func (_u *QuizResultUpdateOne) sqlSave(ctx context.Context) (_node *QuizResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizresult.FieldID)
		for _, f := range fields {
			if !quizresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizresult.FieldID {
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
		_spec.SetField(quizresult.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizTitle(); ok {
		_spec.SetField(quizresult.FieldQuizTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizType(); ok {
		_spec.SetField(quizresult.FieldQuizType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectDomain(); ok {
		_spec.SetField(quizresult.FieldSubjectDomain, field.TypeString, value)
	}
	if _u.mutation.SubjectDomainCleared() {
		_spec.ClearField(quizresult.FieldSubjectDomain, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(quizresult.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(quizresult.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(quizresult.FieldDifficultyLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeTakenSeconds(); ok {
		_spec.SetField(quizresult.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenSeconds(); ok {
		_spec.AddField(quizresult.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if _u.mutation.TimeTakenSecondsCleared() {
		_spec.ClearField(quizresult.FieldTimeTakenSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.ConceptMastery(); ok {
		_spec.SetField(quizresult.FieldConceptMastery, field.TypeJSON, value)
	}
	if _u.mutation.ConceptMasteryCleared() {
		_spec.ClearField(quizresult.FieldConceptMastery, field.TypeJSON)
	}
	if value, ok := _u.mutation.AreasForImprovement(); ok {
		_spec.SetField(quizresult.FieldAreasForImprovement, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAreasForImprovement(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresult.FieldAreasForImprovement, value)
		})
	}
	if _u.mutation.AreasForImprovementCleared() {
		_spec.ClearField(quizresult.FieldAreasForImprovement, field.TypeJSON)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(quizresult.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresult.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(quizresult.FieldQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.UserAnswers(); ok {
		_spec.SetField(quizresult.FieldUserAnswers, field.TypeJSON, value)
	}
	if _u.mutation.UserAnswersCleared() {
		_spec.ClearField(quizresult.FieldUserAnswers, field.TypeJSON)
	}
	if _u.mutation.ChapterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChapterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuizResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
