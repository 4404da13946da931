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
	"github.com/abhisek/studium/ent/quizresult"
	"github.com/abhisek/studium/ent/studysession"
	"github.com/abhisek/studium/ent/subject"
	"github.com/abhisek/studium/ent/userprogress"
)

// ChapterUpdate is the builder for updating Chapter entities.
type ChapterUpdate struct {
	config
	hooks    []Hook
	mutation *ChapterMutation
}

// Where appends a list predicates to the ChapterUpdate builder.
func (_u *ChapterUpdate) Where(ps ...predicate.Chapter) *ChapterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChapterUpdate) SetUpdatedAt(v time.Time) *ChapterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChapterUpdate) SetTitle(v string) *ChapterUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableTitle(v *string) *ChapterUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetChapterNumber sets the "chapter_number" field.
func (_u *ChapterUpdate) SetChapterNumber(v int) *ChapterUpdate {
	_u.mutation.ResetChapterNumber()
	_u.mutation.SetChapterNumber(v)
	return _u
}

// SetNillableChapterNumber sets the "chapter_number" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableChapterNumber(v *int) *ChapterUpdate {
	if v != nil {
		_u.SetChapterNumber(*v)
	}
	return _u
}

// AddChapterNumber adds value to the "chapter_number" field.
func (_u *ChapterUpdate) AddChapterNumber(v int) *ChapterUpdate {
	_u.mutation.AddChapterNumber(v)
	return _u
}

// SetIntroSummary sets the "intro_summary" field.
func (_u *ChapterUpdate) SetIntroSummary(v map[string]interface{}) *ChapterUpdate {
	_u.mutation.SetIntroSummary(v)
	return _u
}

// ClearIntroSummary clears the value of the "intro_summary" field.
func (_u *ChapterUpdate) ClearIntroSummary() *ChapterUpdate {
	_u.mutation.ClearIntroSummary()
	return _u
}

// SetContentBlocks sets the "content_blocks" field.
func (_u *ChapterUpdate) SetContentBlocks(v []map[string]interface{}) *ChapterUpdate {
	_u.mutation.SetContentBlocks(v)
	return _u
}

// AppendContentBlocks appends value to the "content_blocks" field.
func (_u *ChapterUpdate) AppendContentBlocks(v []map[string]interface{}) *ChapterUpdate {
	_u.mutation.AppendContentBlocks(v)
	return _u
}

// ClearContentBlocks clears the value of the "content_blocks" field.
func (_u *ChapterUpdate) ClearContentBlocks() *ChapterUpdate {
	_u.mutation.ClearContentBlocks()
	return _u
}

// SetChapterMetadata sets the "chapter_metadata" field.
func (_u *ChapterUpdate) SetChapterMetadata(v map[string]interface{}) *ChapterUpdate {
	_u.mutation.SetChapterMetadata(v)
	return _u
}

// ClearChapterMetadata clears the value of the "chapter_metadata" field.
func (_u *ChapterUpdate) ClearChapterMetadata() *ChapterUpdate {
	_u.mutation.ClearChapterMetadata()
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *ChapterUpdate) SetDifficultyLevel(v string) *ChapterUpdate {
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableDifficultyLevel(v *string) *ChapterUpdate {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// SetEstimatedStudyTime sets the "estimated_study_time" field.
func (_u *ChapterUpdate) SetEstimatedStudyTime(v int) *ChapterUpdate {
	_u.mutation.ResetEstimatedStudyTime()
	_u.mutation.SetEstimatedStudyTime(v)
	return _u
}

// SetNillableEstimatedStudyTime sets the "estimated_study_time" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableEstimatedStudyTime(v *int) *ChapterUpdate {
	if v != nil {
		_u.SetEstimatedStudyTime(*v)
	}
	return _u
}

// AddEstimatedStudyTime adds value to the "estimated_study_time" field.
func (_u *ChapterUpdate) AddEstimatedStudyTime(v int) *ChapterUpdate {
	_u.mutation.AddEstimatedStudyTime(v)
	return _u
}

// SetTotalContentBlocks sets the "total_content_blocks" field.
func (_u *ChapterUpdate) SetTotalContentBlocks(v int) *ChapterUpdate {
	_u.mutation.ResetTotalContentBlocks()
	_u.mutation.SetTotalContentBlocks(v)
	return _u
}

// SetNillableTotalContentBlocks sets the "total_content_blocks" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableTotalContentBlocks(v *int) *ChapterUpdate {
	if v != nil {
		_u.SetTotalContentBlocks(*v)
	}
	return _u
}

// AddTotalContentBlocks adds value to the "total_content_blocks" field.
func (_u *ChapterUpdate) AddTotalContentBlocks(v int) *ChapterUpdate {
	_u.mutation.AddTotalContentBlocks(v)
	return _u
}

// SetConceptCount sets the "concept_count" field.
func (_u *ChapterUpdate) SetConceptCount(v int) *ChapterUpdate {
	_u.mutation.ResetConceptCount()
	_u.mutation.SetConceptCount(v)
	return _u
}

// SetNillableConceptCount sets the "concept_count" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableConceptCount(v *int) *ChapterUpdate {
	if v != nil {
		_u.SetConceptCount(*v)
	}
	return _u
}

// AddConceptCount adds value to the "concept_count" field.
func (_u *ChapterUpdate) AddConceptCount(v int) *ChapterUpdate {
	_u.mutation.AddConceptCount(v)
	return _u
}

// SetVisualizationCount sets the "visualization_count" field.
func (_u *ChapterUpdate) SetVisualizationCount(v int) *ChapterUpdate {
	_u.mutation.ResetVisualizationCount()
	_u.mutation.SetVisualizationCount(v)
	return _u
}

// SetNillableVisualizationCount sets the "visualization_count" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableVisualizationCount(v *int) *ChapterUpdate {
	if v != nil {
		_u.SetVisualizationCount(*v)
	}
	return _u
}

// AddVisualizationCount adds value to the "visualization_count" field.
func (_u *ChapterUpdate) AddVisualizationCount(v int) *ChapterUpdate {
	_u.mutation.AddVisualizationCount(v)
	return _u
}

// SetExerciseCount sets the "exercise_count" field.
func (_u *ChapterUpdate) SetExerciseCount(v int) *ChapterUpdate {
	_u.mutation.ResetExerciseCount()
	_u.mutation.SetExerciseCount(v)
	return _u
}

// SetNillableExerciseCount sets the "exercise_count" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableExerciseCount(v *int) *ChapterUpdate {
	if v != nil {
		_u.SetExerciseCount(*v)
	}
	return _u
}

// AddExerciseCount adds value to the "exercise_count" field.
func (_u *ChapterUpdate) AddExerciseCount(v int) *ChapterUpdate {
	_u.mutation.AddExerciseCount(v)
	return _u
}

// SetCaseStudyCount sets the "case_study_count" field.
func (_u *ChapterUpdate) SetCaseStudyCount(v int) *ChapterUpdate {
	_u.mutation.ResetCaseStudyCount()
	_u.mutation.SetCaseStudyCount(v)
	return _u
}

// SetNillableCaseStudyCount sets the "case_study_count" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableCaseStudyCount(v *int) *ChapterUpdate {
	if v != nil {
		_u.SetCaseStudyCount(*v)
	}
	return _u
}

// AddCaseStudyCount adds value to the "case_study_count" field.
func (_u *ChapterUpdate) AddCaseStudyCount(v int) *ChapterUpdate {
	_u.mutation.AddCaseStudyCount(v)
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *ChapterUpdate) SetSubjectID(v int) *ChapterUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableSubjectID(v *int) *ChapterUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *ChapterUpdate) SetSubject(v *Subject) *ChapterUpdate {
	return _u.SetSubjectID(v.ID)
}

// AddProgresIDs adds the "progress" edge to the UserProgress entity by IDs.
func (_u *ChapterUpdate) AddProgresIDs(ids ...int) *ChapterUpdate {
	_u.mutation.AddProgresIDs(ids...)
	return _u
}

// AddProgress adds the "progress" edges to the UserProgress entity.
func (_u *ChapterUpdate) AddProgress(v ...*UserProgress) *ChapterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProgresIDs(ids...)
}

// AddBookmarkIDs adds the "bookmarks" edge to the Bookmark entity by IDs.
func (_u *ChapterUpdate) AddBookmarkIDs(ids ...int) *ChapterUpdate {
	_u.mutation.AddBookmarkIDs(ids...)
	return _u
}

// AddBookmarks adds the "bookmarks" edges to the Bookmark entity.
func (_u *ChapterUpdate) AddBookmarks(v ...*Bookmark) *ChapterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBookmarkIDs(ids...)
}

// AddQuizResultIDs adds the "quiz_results" edge to the QuizResult entity by IDs.
func (_u *ChapterUpdate) AddQuizResultIDs(ids ...int) *ChapterUpdate {
	_u.mutation.AddQuizResultIDs(ids...)
	return _u
}

// AddQuizResults adds the "quiz_results" edges to the QuizResult entity.
func (_u *ChapterUpdate) AddQuizResults(v ...*QuizResult) *ChapterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuizResultIDs(ids...)
}

// AddStudySessionIDs adds the "study_sessions" edge to the StudySession entity by IDs.
func (_u *ChapterUpdate) AddStudySessionIDs(ids ...int) *ChapterUpdate {
	_u.mutation.AddStudySessionIDs(ids...)
	return _u
}

// AddStudySessions adds the "study_sessions" edges to the StudySession entity.
func (_u *ChapterUpdate) AddStudySessions(v ...*StudySession) *ChapterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStudySessionIDs(ids...)
}

// Mutation returns the ChapterMutation object of the builder.
func (_u *ChapterUpdate) Mutation() *ChapterMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *ChapterUpdate) ClearSubject() *ChapterUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// ClearProgress clears all "progress" edges to the UserProgress entity.
func (_u *ChapterUpdate) ClearProgress() *ChapterUpdate {
	_u.mutation.ClearProgress()
	return _u
}

// RemoveProgresIDs removes the "progress" edge to UserProgress entities by IDs.
func (_u *ChapterUpdate) RemoveProgresIDs(ids ...int) *ChapterUpdate {
	_u.mutation.RemoveProgresIDs(ids...)
	return _u
}

// RemoveProgress removes "progress" edges to UserProgress entities.
func (_u *ChapterUpdate) RemoveProgress(v ...*UserProgress) *ChapterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProgresIDs(ids...)
}

// ClearBookmarks clears all "bookmarks" edges to the Bookmark entity.
func (_u *ChapterUpdate) ClearBookmarks() *ChapterUpdate {
	_u.mutation.ClearBookmarks()
	return _u
}

// RemoveBookmarkIDs removes the "bookmarks" edge to Bookmark entities by IDs.
func (_u *ChapterUpdate) RemoveBookmarkIDs(ids ...int) *ChapterUpdate {
	_u.mutation.RemoveBookmarkIDs(ids...)
	return _u
}

// RemoveBookmarks removes "bookmarks" edges to Bookmark entities.
func (_u *ChapterUpdate) RemoveBookmarks(v ...*Bookmark) *ChapterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBookmarkIDs(ids...)
}

// ClearQuizResults clears all "quiz_results" edges to the QuizResult entity.
func (_u *ChapterUpdate) ClearQuizResults() *ChapterUpdate {
	_u.mutation.ClearQuizResults()
	return _u
}

// RemoveQuizResultIDs removes the "quiz_results" edge to QuizResult entities by IDs.
func (_u *ChapterUpdate) RemoveQuizResultIDs(ids ...int) *ChapterUpdate {
	_u.mutation.RemoveQuizResultIDs(ids...)
	return _u
}

// RemoveQuizResults removes "quiz_results" edges to QuizResult entities.
func (_u *ChapterUpdate) RemoveQuizResults(v ...*QuizResult) *ChapterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuizResultIDs(ids...)
}

// ClearStudySessions clears all "study_sessions" edges to the StudySession entity.
func (_u *ChapterUpdate) ClearStudySessions() *ChapterUpdate {
	_u.mutation.ClearStudySessions()
	return _u
}

// RemoveStudySessionIDs removes the "study_sessions" edge to StudySession entities by IDs.
func (_u *ChapterUpdate) RemoveStudySessionIDs(ids ...int) *ChapterUpdate {
	_u.mutation.RemoveStudySessionIDs(ids...)
	return _u
}

// RemoveStudySessions removes "study_sessions" edges to StudySession entities.
func (_u *ChapterUpdate) RemoveStudySessions(v ...*StudySession) *ChapterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStudySessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChapterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChapterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChapterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChapterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChapterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chapter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChapterUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := chapter.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Chapter.title": %w`, err)}
		}
	}
	if _u.mutation.SubjectCleared() && len(_u.mutation.SubjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Chapter.subject"`)
	}
	return nil
}

func (_u *ChapterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chapter.Table, chapter.Columns, sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chapter.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(chapter.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChapterNumber(); ok {
		_spec.SetField(chapter.FieldChapterNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChapterNumber(); ok {
		_spec.AddField(chapter.FieldChapterNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntroSummary(); ok {
		_spec.SetField(chapter.FieldIntroSummary, field.TypeJSON, value)
	}
	if _u.mutation.IntroSummaryCleared() {
		_spec.ClearField(chapter.FieldIntroSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContentBlocks(); ok {
		_spec.SetField(chapter.FieldContentBlocks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContentBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chapter.FieldContentBlocks, value)
		})
	}
	if _u.mutation.ContentBlocksCleared() {
		_spec.ClearField(chapter.FieldContentBlocks, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChapterMetadata(); ok {
		_spec.SetField(chapter.FieldChapterMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ChapterMetadataCleared() {
		_spec.ClearField(chapter.FieldChapterMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(chapter.FieldDifficultyLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedStudyTime(); ok {
		_spec.SetField(chapter.FieldEstimatedStudyTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedStudyTime(); ok {
		_spec.AddField(chapter.FieldEstimatedStudyTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalContentBlocks(); ok {
		_spec.SetField(chapter.FieldTotalContentBlocks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalContentBlocks(); ok {
		_spec.AddField(chapter.FieldTotalContentBlocks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConceptCount(); ok {
		_spec.SetField(chapter.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptCount(); ok {
		_spec.AddField(chapter.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VisualizationCount(); ok {
		_spec.SetField(chapter.FieldVisualizationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVisualizationCount(); ok {
		_spec.AddField(chapter.FieldVisualizationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExerciseCount(); ok {
		_spec.SetField(chapter.FieldExerciseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExerciseCount(); ok {
		_spec.AddField(chapter.FieldExerciseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CaseStudyCount(); ok {
		_spec.SetField(chapter.FieldCaseStudyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCaseStudyCount(); ok {
		_spec.AddField(chapter.FieldCaseStudyCount, field.TypeInt, value)
	}
	if _u.mutation.SubjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chapter.SubjectTable,
			Columns: []string{chapter.SubjectColumn},
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
			Table:   chapter.SubjectTable,
			Columns: []string{chapter.SubjectColumn},
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
	if _u.mutation.ProgressCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.ProgressTable,
			Columns: []string{chapter.ProgressColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProgressIDs(); len(nodes) > 0 && !_u.mutation.ProgressCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.ProgressTable,
			Columns: []string{chapter.ProgressColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProgressIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.ProgressTable,
			Columns: []string{chapter.ProgressColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BookmarksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.BookmarksTable,
			Columns: []string{chapter.BookmarksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookmark.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBookmarksIDs(); len(nodes) > 0 && !_u.mutation.BookmarksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.BookmarksTable,
			Columns: []string{chapter.BookmarksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookmark.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BookmarksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.BookmarksTable,
			Columns: []string{chapter.BookmarksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookmark.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuizResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.QuizResultsTable,
			Columns: []string{chapter.QuizResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuizResultsIDs(); len(nodes) > 0 && !_u.mutation.QuizResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.QuizResultsTable,
			Columns: []string{chapter.QuizResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuizResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.QuizResultsTable,
			Columns: []string{chapter.QuizResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StudySessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.StudySessionsTable,
			Columns: []string{chapter.StudySessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStudySessionsIDs(); len(nodes) > 0 && !_u.mutation.StudySessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.StudySessionsTable,
			Columns: []string{chapter.StudySessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudySessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.StudySessionsTable,
			Columns: []string{chapter.StudySessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chapter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChapterUpdateOne is the builder for updating a single Chapter entity.
type ChapterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChapterMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChapterUpdateOne) SetUpdatedAt(v time.Time) *ChapterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChapterUpdateOne) SetTitle(v string) *ChapterUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableTitle(v *string) *ChapterUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetChapterNumber sets the "chapter_number" field.
func (_u *ChapterUpdateOne) SetChapterNumber(v int) *ChapterUpdateOne {
	_u.mutation.ResetChapterNumber()
	_u.mutation.SetChapterNumber(v)
	return _u
}

// SetNillableChapterNumber sets the "chapter_number" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableChapterNumber(v *int) *ChapterUpdateOne {
	if v != nil {
		_u.SetChapterNumber(*v)
	}
	return _u
}

// AddChapterNumber adds value to the "chapter_number" field.
func (_u *ChapterUpdateOne) AddChapterNumber(v int) *ChapterUpdateOne {
	_u.mutation.AddChapterNumber(v)
	return _u
}

// SetIntroSummary sets the "intro_summary" field.
func (_u *ChapterUpdateOne) SetIntroSummary(v map[string]interface{}) *ChapterUpdateOne {
	_u.mutation.SetIntroSummary(v)
	return _u
}

// ClearIntroSummary clears the value of the "intro_summary" field.
func (_u *ChapterUpdateOne) ClearIntroSummary() *ChapterUpdateOne {
	_u.mutation.ClearIntroSummary()
	return _u
}

// SetContentBlocks sets the "content_blocks" field.
func (_u *ChapterUpdateOne) SetContentBlocks(v []map[string]interface{}) *ChapterUpdateOne {
	_u.mutation.SetContentBlocks(v)
	return _u
}

// AppendContentBlocks appends value to the "content_blocks" field.
func (_u *ChapterUpdateOne) AppendContentBlocks(v []map[string]interface{}) *ChapterUpdateOne {
	_u.mutation.AppendContentBlocks(v)
	return _u
}

// ClearContentBlocks clears the value of the "content_blocks" field.
func (_u *ChapterUpdateOne) ClearContentBlocks() *ChapterUpdateOne {
	_u.mutation.ClearContentBlocks()
	return _u
}

// SetChapterMetadata sets the "chapter_metadata" field.
func (_u *ChapterUpdateOne) SetChapterMetadata(v map[string]interface{}) *ChapterUpdateOne {
	_u.mutation.SetChapterMetadata(v)
	return _u
}

// ClearChapterMetadata clears the value of the "chapter_metadata" field.
func (_u *ChapterUpdateOne) ClearChapterMetadata() *ChapterUpdateOne {
	_u.mutation.ClearChapterMetadata()
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *ChapterUpdateOne) SetDifficultyLevel(v string) *ChapterUpdateOne {
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableDifficultyLevel(v *string) *ChapterUpdateOne {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// SetEstimatedStudyTime sets the "estimated_study_time" field.
func (_u *ChapterUpdateOne) SetEstimatedStudyTime(v int) *ChapterUpdateOne {
	_u.mutation.ResetEstimatedStudyTime()
	_u.mutation.SetEstimatedStudyTime(v)
	return _u
}

// SetNillableEstimatedStudyTime sets the "estimated_study_time" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableEstimatedStudyTime(v *int) *ChapterUpdateOne {
	if v != nil {
		_u.SetEstimatedStudyTime(*v)
	}
	return _u
}

// AddEstimatedStudyTime adds value to the "estimated_study_time" field.
func (_u *ChapterUpdateOne) AddEstimatedStudyTime(v int) *ChapterUpdateOne {
	_u.mutation.AddEstimatedStudyTime(v)
	return _u
}

// SetTotalContentBlocks sets the "total_content_blocks" field.
func (_u *ChapterUpdateOne) SetTotalContentBlocks(v int) *ChapterUpdateOne {
	_u.mutation.ResetTotalContentBlocks()
	_u.mutation.SetTotalContentBlocks(v)
	return _u
}

// SetNillableTotalContentBlocks sets the "total_content_blocks" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableTotalContentBlocks(v *int) *ChapterUpdateOne {
	if v != nil {
		_u.SetTotalContentBlocks(*v)
	}
	return _u
}

// AddTotalContentBlocks adds value to the "total_content_blocks" field.
func (_u *ChapterUpdateOne) AddTotalContentBlocks(v int) *ChapterUpdateOne {
	_u.mutation.AddTotalContentBlocks(v)
	return _u
}

// SetConceptCount sets the "concept_count" field.
func (_u *ChapterUpdateOne) SetConceptCount(v int) *ChapterUpdateOne {
	_u.mutation.ResetConceptCount()
	_u.mutation.SetConceptCount(v)
	return _u
}

// SetNillableConceptCount sets the "concept_count" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableConceptCount(v *int) *ChapterUpdateOne {
	if v != nil {
		_u.SetConceptCount(*v)
	}
	return _u
}

// AddConceptCount adds value to the "concept_count" field.
func (_u *ChapterUpdateOne) AddConceptCount(v int) *ChapterUpdateOne {
	_u.mutation.AddConceptCount(v)
	return _u
}

// SetVisualizationCount sets the "visualization_count" field.
func (_u *ChapterUpdateOne) SetVisualizationCount(v int) *ChapterUpdateOne {
	_u.mutation.ResetVisualizationCount()
	_u.mutation.SetVisualizationCount(v)
	return _u
}

// SetNillableVisualizationCount sets the "visualization_count" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableVisualizationCount(v *int) *ChapterUpdateOne {
	if v != nil {
		_u.SetVisualizationCount(*v)
	}
	return _u
}

// AddVisualizationCount adds value to the "visualization_count" field.
func (_u *ChapterUpdateOne) AddVisualizationCount(v int) *ChapterUpdateOne {
	_u.mutation.AddVisualizationCount(v)
	return _u
}

// SetExerciseCount sets the "exercise_count" field.
func (_u *ChapterUpdateOne) SetExerciseCount(v int) *ChapterUpdateOne {
	_u.mutation.ResetExerciseCount()
	_u.mutation.SetExerciseCount(v)
	return _u
}

// SetNillableExerciseCount sets the "exercise_count" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableExerciseCount(v *int) *ChapterUpdateOne {
	if v != nil {
		_u.SetExerciseCount(*v)
	}
	return _u
}

// AddExerciseCount adds value to the "exercise_count" field.
func (_u *ChapterUpdateOne) AddExerciseCount(v int) *ChapterUpdateOne {
	_u.mutation.AddExerciseCount(v)
	return _u
}

// SetCaseStudyCount sets the "case_study_count" field.
func (_u *ChapterUpdateOne) SetCaseStudyCount(v int) *ChapterUpdateOne {
	_u.mutation.ResetCaseStudyCount()
	_u.mutation.SetCaseStudyCount(v)
	return _u
}

// SetNillableCaseStudyCount sets the "case_study_count" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableCaseStudyCount(v *int) *ChapterUpdateOne {
	if v != nil {
		_u.SetCaseStudyCount(*v)
	}
	return _u
}

// AddCaseStudyCount adds value to the "case_study_count" field.
func (_u *ChapterUpdateOne) AddCaseStudyCount(v int) *ChapterUpdateOne {
	_u.mutation.AddCaseStudyCount(v)
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *ChapterUpdateOne) SetSubjectID(v int) *ChapterUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableSubjectID(v *int) *ChapterUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *ChapterUpdateOne) SetSubject(v *Subject) *ChapterUpdateOne {
	return _u.SetSubjectID(v.ID)
}

// AddProgresIDs adds the "progress" edge to the UserProgress entity by IDs.
func (_u *ChapterUpdateOne) AddProgresIDs(ids ...int) *ChapterUpdateOne {
	_u.mutation.AddProgresIDs(ids...)
	return _u
}

// AddProgress adds the "progress" edges to the UserProgress entity.
func (_u *ChapterUpdateOne) AddProgress(v ...*UserProgress) *ChapterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProgresIDs(ids...)
}

// AddBookmarkIDs adds the "bookmarks" edge to the Bookmark entity by IDs.
func (_u *ChapterUpdateOne) AddBookmarkIDs(ids ...int) *ChapterUpdateOne {
	_u.mutation.AddBookmarkIDs(ids...)
	return _u
}

// AddBookmarks adds the "bookmarks" edges to the Bookmark entity.
func (_u *ChapterUpdateOne) AddBookmarks(v ...*Bookmark) *ChapterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBookmarkIDs(ids...)
}

// AddQuizResultIDs adds the "quiz_results" edge to the QuizResult entity by IDs.
func (_u *ChapterUpdateOne) AddQuizResultIDs(ids ...int) *ChapterUpdateOne {
	_u.mutation.AddQuizResultIDs(ids...)
	return _u
}

// AddQuizResults adds the "quiz_results" edges to the QuizResult entity.
func (_u *ChapterUpdateOne) AddQuizResults(v ...*QuizResult) *ChapterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuizResultIDs(ids...)
}

// AddStudySessionIDs adds the "study_sessions" edge to the StudySession entity by IDs.
func (_u *ChapterUpdateOne) AddStudySessionIDs(ids ...int) *ChapterUpdateOne {
	_u.mutation.AddStudySessionIDs(ids...)
	return _u
}

// AddStudySessions adds the "study_sessions" edges to the StudySession entity.
func (_u *ChapterUpdateOne) AddStudySessions(v ...*StudySession) *ChapterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStudySessionIDs(ids...)
}

// Mutation returns the ChapterMutation object of the builder.
func (_u *ChapterUpdateOne) Mutation() *ChapterMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *ChapterUpdateOne) ClearSubject() *ChapterUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// ClearProgress clears all "progress" edges to the UserProgress entity.
func (_u *ChapterUpdateOne) ClearProgress() *ChapterUpdateOne {
	_u.mutation.ClearProgress()
	return _u
}

// RemoveProgresIDs removes the "progress" edge to UserProgress entities by IDs.
func (_u *ChapterUpdateOne) RemoveProgresIDs(ids ...int) *ChapterUpdateOne {
	_u.mutation.RemoveProgresIDs(ids...)
	return _u
}

// RemoveProgress removes "progress" edges to UserProgress entities.
func (_u *ChapterUpdateOne) RemoveProgress(v ...*UserProgress) *ChapterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProgresIDs(ids...)
}

// ClearBookmarks clears all "bookmarks" edges to the Bookmark entity.
func (_u *ChapterUpdateOne) ClearBookmarks() *ChapterUpdateOne {
	_u.mutation.ClearBookmarks()
	return _u
}

// RemoveBookmarkIDs removes the "bookmarks" edge to Bookmark entities by IDs.
func (_u *ChapterUpdateOne) RemoveBookmarkIDs(ids ...int) *ChapterUpdateOne {
	_u.mutation.RemoveBookmarkIDs(ids...)
	return _u
}

// RemoveBookmarks removes "bookmarks" edges to Bookmark entities.
func (_u *ChapterUpdateOne) RemoveBookmarks(v ...*Bookmark) *ChapterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBookmarkIDs(ids...)
}

// ClearQuizResults clears all "quiz_results" edges to the QuizResult entity.
func (_u *ChapterUpdateOne) ClearQuizResults() *ChapterUpdateOne {
	_u.mutation.ClearQuizResults()
	return _u
}

// RemoveQuizResultIDs removes the "quiz_results" edge to QuizResult entities by IDs.
func (_u *ChapterUpdateOne) RemoveQuizResultIDs(ids ...int) *ChapterUpdateOne {
	_u.mutation.RemoveQuizResultIDs(ids...)
	return _u
}

// RemoveQuizResults removes "quiz_results" edges to QuizResult entities.
func (_u *ChapterUpdateOne) RemoveQuizResults(v ...*QuizResult) *ChapterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuizResultIDs(ids...)
}

// ClearStudySessions clears all "study_sessions" edges to the StudySession entity.
func (_u *ChapterUpdateOne) ClearStudySessions() *ChapterUpdateOne {
	_u.mutation.ClearStudySessions()
	return _u
}

// RemoveStudySessionIDs removes the "study_sessions" edge to StudySession entities by IDs.
func (_u *ChapterUpdateOne) RemoveStudySessionIDs(ids ...int) *ChapterUpdateOne {
	_u.mutation.RemoveStudySessionIDs(ids...)
	return _u
}

// RemoveStudySessions removes "study_sessions" edges to StudySession entities.
func (_u *ChapterUpdateOne) RemoveStudySessions(v ...*StudySession) *ChapterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStudySessionIDs(ids...)
}

// Where appends a list predicates to the ChapterUpdate builder.
func (_u *ChapterUpdateOne) Where(ps ...predicate.Chapter) *ChapterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChapterUpdateOne) Select(field string, fields ...string) *ChapterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Chapter entity.
func (_u *ChapterUpdateOne) Save(ctx context.Context) (*Chapter, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChapterUpdateOne) SaveX(ctx context.Context) *Chapter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChapterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChapterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChapterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chapter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChapterUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := chapter.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Chapter.title": %w`, err)}
		}
	}
	if _u.mutation.SubjectCleared() && len(_u.mutation.SubjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Chapter.subject"`)
	}
	return nil
}

func (_u *ChapterUpdateOne) sqlSave(ctx context.Context) (_node *Chapter, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chapter.Table, chapter.Columns, sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Chapter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chapter.FieldID)
		for _, f := range fields {
			if !chapter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chapter.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chapter.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(chapter.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChapterNumber(); ok {
		_spec.SetField(chapter.FieldChapterNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChapterNumber(); ok {
		_spec.AddField(chapter.FieldChapterNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntroSummary(); ok {
		_spec.SetField(chapter.FieldIntroSummary, field.TypeJSON, value)
	}
	if _u.mutation.IntroSummaryCleared() {
		_spec.ClearField(chapter.FieldIntroSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContentBlocks(); ok {
		_spec.SetField(chapter.FieldContentBlocks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContentBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chapter.FieldContentBlocks, value)
		})
	}
	if _u.mutation.ContentBlocksCleared() {
		_spec.ClearField(chapter.FieldContentBlocks, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChapterMetadata(); ok {
		_spec.SetField(chapter.FieldChapterMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ChapterMetadataCleared() {
		_spec.ClearField(chapter.FieldChapterMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(chapter.FieldDifficultyLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedStudyTime(); ok {
		_spec.SetField(chapter.FieldEstimatedStudyTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedStudyTime(); ok {
		_spec.AddField(chapter.FieldEstimatedStudyTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalContentBlocks(); ok {
		_spec.SetField(chapter.FieldTotalContentBlocks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalContentBlocks(); ok {
		_spec.AddField(chapter.FieldTotalContentBlocks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConceptCount(); ok {
		_spec.SetField(chapter.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptCount(); ok {
		_spec.AddField(chapter.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VisualizationCount(); ok {
		_spec.SetField(chapter.FieldVisualizationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVisualizationCount(); ok {
		_spec.AddField(chapter.FieldVisualizationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExerciseCount(); ok {
		_spec.SetField(chapter.FieldExerciseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExerciseCount(); ok {
		_spec.AddField(chapter.FieldExerciseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CaseStudyCount(); ok {
		_spec.SetField(chapter.FieldCaseStudyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCaseStudyCount(); ok {
		_spec.AddField(chapter.FieldCaseStudyCount, field.TypeInt, value)
	}
	if _u.mutation.SubjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chapter.SubjectTable,
			Columns: []string{chapter.SubjectColumn},
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
			Table:   chapter.SubjectTable,
			Columns: []string{chapter.SubjectColumn},
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
	if _u.mutation.ProgressCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.ProgressTable,
			Columns: []string{chapter.ProgressColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProgressIDs(); len(nodes) > 0 && !_u.mutation.ProgressCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.ProgressTable,
			Columns: []string{chapter.ProgressColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProgressIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.ProgressTable,
			Columns: []string{chapter.ProgressColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BookmarksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.BookmarksTable,
			Columns: []string{chapter.BookmarksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookmark.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBookmarksIDs(); len(nodes) > 0 && !_u.mutation.BookmarksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.BookmarksTable,
			Columns: []string{chapter.BookmarksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookmark.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BookmarksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.BookmarksTable,
			Columns: []string{chapter.BookmarksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bookmark.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuizResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.QuizResultsTable,
			Columns: []string{chapter.QuizResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuizResultsIDs(); len(nodes) > 0 && !_u.mutation.QuizResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.QuizResultsTable,
			Columns: []string{chapter.QuizResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuizResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.QuizResultsTable,
			Columns: []string{chapter.QuizResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StudySessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.StudySessionsTable,
			Columns: []string{chapter.StudySessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStudySessionsIDs(); len(nodes) > 0 && !_u.mutation.StudySessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.StudySessionsTable,
			Columns: []string{chapter.StudySessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudySessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.StudySessionsTable,
			Columns: []string{chapter.StudySessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Chapter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chapter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
