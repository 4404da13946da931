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
	"github.com/abhisek/studium/ent/chapter"
	"github.com/abhisek/studium/ent/course"
	"github.com/abhisek/studium/ent/predicate"
	"github.com/abhisek/studium/ent/studysession"
	"github.com/abhisek/studium/ent/subject"
	"github.com/abhisek/studium/ent/userprogress"
)

// SubjectUpdate is the builder for updating Subject entities.
type SubjectUpdate struct {
	config
	hooks    []Hook
	mutation *SubjectMutation
}

// Where appends a list predicates to the SubjectUpdate builder.
func (_u *SubjectUpdate) Where(ps ...predicate.Subject) *SubjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubjectUpdate) SetUpdatedAt(v time.Time) *SubjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SubjectUpdate) SetName(v string) *SubjectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableName(v *string) *SubjectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPreface sets the "preface" field.
func (_u *SubjectUpdate) SetPreface(v map[string]interface{}) *SubjectUpdate {
	_u.mutation.SetPreface(v)
	return _u
}

// ClearPreface clears the value of the "preface" field.
func (_u *SubjectUpdate) ClearPreface() *SubjectUpdate {
	_u.mutation.ClearPreface()
	return _u
}

// SetOverallSummary sets the "overall_summary" field.
func (_u *SubjectUpdate) SetOverallSummary(v map[string]interface{}) *SubjectUpdate {
	_u.mutation.SetOverallSummary(v)
	return _u
}

// ClearOverallSummary clears the value of the "overall_summary" field.
func (_u *SubjectUpdate) ClearOverallSummary() *SubjectUpdate {
	_u.mutation.ClearOverallSummary()
	return _u
}

// SetSubjectDomain sets the "subject_domain" field.
func (_u *SubjectUpdate) SetSubjectDomain(v string) *SubjectUpdate {
	_u.mutation.SetSubjectDomain(v)
	return _u
}

// SetNillableSubjectDomain sets the "subject_domain" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableSubjectDomain(v *string) *SubjectUpdate {
	if v != nil {
		_u.SetSubjectDomain(*v)
	}
	return _u
}

// SetLearningStyle sets the "learning_style" field.
func (_u *SubjectUpdate) SetLearningStyle(v string) *SubjectUpdate {
	_u.mutation.SetLearningStyle(v)
	return _u
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableLearningStyle(v *string) *SubjectUpdate {
	if v != nil {
		_u.SetLearningStyle(*v)
	}
	return _u
}

// SetComplexityLevel sets the "complexity_level" field.
func (_u *SubjectUpdate) SetComplexityLevel(v string) *SubjectUpdate {
	_u.mutation.SetComplexityLevel(v)
	return _u
}

// SetNillableComplexityLevel sets the "complexity_level" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableComplexityLevel(v *string) *SubjectUpdate {
	if v != nil {
		_u.SetComplexityLevel(*v)
	}
	return _u
}

// SetSubjectAnalysis sets the "subject_analysis" field.
func (_u *SubjectUpdate) SetSubjectAnalysis(v map[string]interface{}) *SubjectUpdate {
	_u.mutation.SetSubjectAnalysis(v)
	return _u
}

// ClearSubjectAnalysis clears the value of the "subject_analysis" field.
func (_u *SubjectUpdate) ClearSubjectAnalysis() *SubjectUpdate {
	_u.mutation.ClearSubjectAnalysis()
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *SubjectUpdate) SetOriginalFilename(v string) *SubjectUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableOriginalFilename(v *string) *SubjectUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (_u *SubjectUpdate) ClearOriginalFilename() *SubjectUpdate {
	_u.mutation.ClearOriginalFilename()
	return _u
}

// SetFileSizeMB sets the "file_size_mb" field.
func (_u *SubjectUpdate) SetFileSizeMB(v float64) *SubjectUpdate {
	_u.mutation.ResetFileSizeMB()
	_u.mutation.SetFileSizeMB(v)
	return _u
}

// SetNillableFileSizeMB sets the "file_size_mb" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableFileSizeMB(v *float64) *SubjectUpdate {
	if v != nil {
		_u.SetFileSizeMB(*v)
	}
	return _u
}

// AddFileSizeMB adds value to the "file_size_mb" field.
func (_u *SubjectUpdate) AddFileSizeMB(v float64) *SubjectUpdate {
	_u.mutation.AddFileSizeMB(v)
	return _u
}

// ClearFileSizeMB clears the value of the "file_size_mb" field.
func (_u *SubjectUpdate) ClearFileSizeMB() *SubjectUpdate {
	_u.mutation.ClearFileSizeMB()
	return _u
}

// SetProcessingTimeSeconds sets the "processing_time_seconds" field.
func (_u *SubjectUpdate) SetProcessingTimeSeconds(v int) *SubjectUpdate {
	_u.mutation.ResetProcessingTimeSeconds()
	_u.mutation.SetProcessingTimeSeconds(v)
	return _u
}

// SetNillableProcessingTimeSeconds sets the "processing_time_seconds" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableProcessingTimeSeconds(v *int) *SubjectUpdate {
	if v != nil {
		_u.SetProcessingTimeSeconds(*v)
	}
	return _u
}

// AddProcessingTimeSeconds adds value to the "processing_time_seconds" field.
func (_u *SubjectUpdate) AddProcessingTimeSeconds(v int) *SubjectUpdate {
	_u.mutation.AddProcessingTimeSeconds(v)
	return _u
}

// ClearProcessingTimeSeconds clears the value of the "processing_time_seconds" field.
func (_u *SubjectUpdate) ClearProcessingTimeSeconds() *SubjectUpdate {
	_u.mutation.ClearProcessingTimeSeconds()
	return _u
}

// SetTotalChapters sets the "total_chapters" field.
func (_u *SubjectUpdate) SetTotalChapters(v int) *SubjectUpdate {
	_u.mutation.ResetTotalChapters()
	_u.mutation.SetTotalChapters(v)
	return _u
}

// SetNillableTotalChapters sets the "total_chapters" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableTotalChapters(v *int) *SubjectUpdate {
	if v != nil {
		_u.SetTotalChapters(*v)
	}
	return _u
}

// AddTotalChapters adds value to the "total_chapters" field.
func (_u *SubjectUpdate) AddTotalChapters(v int) *SubjectUpdate {
	_u.mutation.AddTotalChapters(v)
	return _u
}

// SetEstimatedReadTime sets the "estimated_read_time" field.
func (_u *SubjectUpdate) SetEstimatedReadTime(v int) *SubjectUpdate {
	_u.mutation.ResetEstimatedReadTime()
	_u.mutation.SetEstimatedReadTime(v)
	return _u
}

// SetNillableEstimatedReadTime sets the "estimated_read_time" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableEstimatedReadTime(v *int) *SubjectUpdate {
	if v != nil {
		_u.SetEstimatedReadTime(*v)
	}
	return _u
}

// AddEstimatedReadTime adds value to the "estimated_read_time" field.
func (_u *SubjectUpdate) AddEstimatedReadTime(v int) *SubjectUpdate {
	_u.mutation.AddEstimatedReadTime(v)
	return _u
}

// SetInteractiveElementsCount sets the "interactive_elements_count" field.
func (_u *SubjectUpdate) SetInteractiveElementsCount(v int) *SubjectUpdate {
	_u.mutation.ResetInteractiveElementsCount()
	_u.mutation.SetInteractiveElementsCount(v)
	return _u
}

// SetNillableInteractiveElementsCount sets the "interactive_elements_count" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableInteractiveElementsCount(v *int) *SubjectUpdate {
	if v != nil {
		_u.SetInteractiveElementsCount(*v)
	}
	return _u
}

// AddInteractiveElementsCount adds value to the "interactive_elements_count" field.
func (_u *SubjectUpdate) AddInteractiveElementsCount(v int) *SubjectUpdate {
	_u.mutation.AddInteractiveElementsCount(v)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *SubjectUpdate) SetCourseID(v int) *SubjectUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableCourseID(v *int) *SubjectUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetCourse sets the "course" edge to the Course entity.
func (_u *SubjectUpdate) SetCourse(v *Course) *SubjectUpdate {
	return _u.SetCourseID(v.ID)
}

// AddChapterIDs adds the "chapters" edge to the Chapter entity by IDs.
func (_u *SubjectUpdate) AddChapterIDs(ids ...int) *SubjectUpdate {
	_u.mutation.AddChapterIDs(ids...)
	return _u
}

// AddChapters adds the "chapters" edges to the Chapter entity.
func (_u *SubjectUpdate) AddChapters(v ...*Chapter) *SubjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChapterIDs(ids...)
}

// AddProgresIDs adds the "progress" edge to the UserProgress entity by IDs.
func (_u *SubjectUpdate) AddProgresIDs(ids ...int) *SubjectUpdate {
	_u.mutation.AddProgresIDs(ids...)
	return _u
}

// AddProgress adds the "progress" edges to the UserProgress entity.
func (_u *SubjectUpdate) AddProgress(v ...*UserProgress) *SubjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProgresIDs(ids...)
}

// AddStudySessionIDs adds the "study_sessions" edge to the StudySession entity by IDs.
func (_u *SubjectUpdate) AddStudySessionIDs(ids ...int) *SubjectUpdate {
	_u.mutation.AddStudySessionIDs(ids...)
	return _u
}

// AddStudySessions adds the "study_sessions" edges to the StudySession entity.
func (_u *SubjectUpdate) AddStudySessions(v ...*StudySession) *SubjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStudySessionIDs(ids...)
}

// Mutation returns the SubjectMutation object of the builder.
func (_u *SubjectUpdate) Mutation() *SubjectMutation {
	return _u.mutation
}

// ClearCourse clears the "course" edge to the Course entity.
func (_u *SubjectUpdate) ClearCourse() *SubjectUpdate {
	_u.mutation.ClearCourse()
	return _u
}

// ClearChapters clears all "chapters" edges to the Chapter entity.
func (_u *SubjectUpdate) ClearChapters() *SubjectUpdate {
	_u.mutation.ClearChapters()
	return _u
}

// RemoveChapterIDs removes the "chapters" edge to Chapter entities by IDs.
func (_u *SubjectUpdate) RemoveChapterIDs(ids ...int) *SubjectUpdate {
	_u.mutation.RemoveChapterIDs(ids...)
	return _u
}

// RemoveChapters removes "chapters" edges to Chapter entities.
func (_u *SubjectUpdate) RemoveChapters(v ...*Chapter) *SubjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChapterIDs(ids...)
}

// ClearProgress clears all "progress" edges to the UserProgress entity.
func (_u *SubjectUpdate) ClearProgress() *SubjectUpdate {
	_u.mutation.ClearProgress()
	return _u
}

// RemoveProgresIDs removes the "progress" edge to UserProgress entities by IDs.
func (_u *SubjectUpdate) RemoveProgresIDs(ids ...int) *SubjectUpdate {
	_u.mutation.RemoveProgresIDs(ids...)
	return _u
}

// RemoveProgress removes "progress" edges to UserProgress entities.
func (_u *SubjectUpdate) RemoveProgress(v ...*UserProgress) *SubjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProgresIDs(ids...)
}

// ClearStudySessions clears all "study_sessions" edges to the StudySession entity.
func (_u *SubjectUpdate) ClearStudySessions() *SubjectUpdate {
	_u.mutation.ClearStudySessions()
	return _u
}

// RemoveStudySessionIDs removes the "study_sessions" edge to StudySession entities by IDs.
func (_u *SubjectUpdate) RemoveStudySessionIDs(ids ...int) *SubjectUpdate {
	_u.mutation.RemoveStudySessionIDs(ids...)
	return _u
}

// RemoveStudySessions removes "study_sessions" edges to StudySession entities.
func (_u *SubjectUpdate) RemoveStudySessions(v ...*StudySession) *SubjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStudySessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subject.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := subject.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subject.name": %w`, err)}
		}
	}
	if _u.mutation.CourseCleared() && len(_u.mutation.CourseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subject.course"`)
	}
	return nil
}

func (_u *SubjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subject.Table, subject.Columns, sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subject.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subject.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Preface(); ok {
		_spec.SetField(subject.FieldPreface, field.TypeJSON, value)
	}
	if _u.mutation.PrefaceCleared() {
		_spec.ClearField(subject.FieldPreface, field.TypeJSON)
	}
	if value, ok := _u.mutation.OverallSummary(); ok {
		_spec.SetField(subject.FieldOverallSummary, field.TypeJSON, value)
	}
	if _u.mutation.OverallSummaryCleared() {
		_spec.ClearField(subject.FieldOverallSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.SubjectDomain(); ok {
		_spec.SetField(subject.FieldSubjectDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningStyle(); ok {
		_spec.SetField(subject.FieldLearningStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ComplexityLevel(); ok {
		_spec.SetField(subject.FieldComplexityLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectAnalysis(); ok {
		_spec.SetField(subject.FieldSubjectAnalysis, field.TypeJSON, value)
	}
	if _u.mutation.SubjectAnalysisCleared() {
		_spec.ClearField(subject.FieldSubjectAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(subject.FieldOriginalFilename, field.TypeString, value)
	}
	if _u.mutation.OriginalFilenameCleared() {
		_spec.ClearField(subject.FieldOriginalFilename, field.TypeString)
	}
	if value, ok := _u.mutation.FileSizeMB(); ok {
		_spec.SetField(subject.FieldFileSizeMB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFileSizeMB(); ok {
		_spec.AddField(subject.FieldFileSizeMB, field.TypeFloat64, value)
	}
	if _u.mutation.FileSizeMBCleared() {
		_spec.ClearField(subject.FieldFileSizeMB, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ProcessingTimeSeconds(); ok {
		_spec.SetField(subject.FieldProcessingTimeSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeSeconds(); ok {
		_spec.AddField(subject.FieldProcessingTimeSeconds, field.TypeInt, value)
	}
	if _u.mutation.ProcessingTimeSecondsCleared() {
		_spec.ClearField(subject.FieldProcessingTimeSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalChapters(); ok {
		_spec.SetField(subject.FieldTotalChapters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChapters(); ok {
		_spec.AddField(subject.FieldTotalChapters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedReadTime(); ok {
		_spec.SetField(subject.FieldEstimatedReadTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedReadTime(); ok {
		_spec.AddField(subject.FieldEstimatedReadTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InteractiveElementsCount(); ok {
		_spec.SetField(subject.FieldInteractiveElementsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInteractiveElementsCount(); ok {
		_spec.AddField(subject.FieldInteractiveElementsCount, field.TypeInt, value)
	}
	if _u.mutation.CourseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subject.CourseTable,
			Columns: []string{subject.CourseColumn},
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
			Table:   subject.CourseTable,
			Columns: []string{subject.CourseColumn},
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
	if _u.mutation.ChaptersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subject.ChaptersTable,
			Columns: []string{subject.ChaptersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChaptersIDs(); len(nodes) > 0 && !_u.mutation.ChaptersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subject.ChaptersTable,
			Columns: []string{subject.ChaptersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChaptersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subject.ChaptersTable,
			Columns: []string{subject.ChaptersColumn},
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
	if _u.mutation.ProgressCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subject.ProgressTable,
			Columns: []string{subject.ProgressColumn},
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
			Table:   subject.ProgressTable,
			Columns: []string{subject.ProgressColumn},
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
			Table:   subject.ProgressTable,
			Columns: []string{subject.ProgressColumn},
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
	if _u.mutation.StudySessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subject.StudySessionsTable,
			Columns: []string{subject.StudySessionsColumn},
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
			Table:   subject.StudySessionsTable,
			Columns: []string{subject.StudySessionsColumn},
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
			Table:   subject.StudySessionsTable,
			Columns: []string{subject.StudySessionsColumn},
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
			err = &NotFoundError{subject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubjectUpdateOne is the builder for updating a single Subject entity.
type SubjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubjectMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubjectUpdateOne) SetUpdatedAt(v time.Time) *SubjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SubjectUpdateOne) SetName(v string) *SubjectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableName(v *string) *SubjectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPreface sets the "preface" field.
func (_u *SubjectUpdateOne) SetPreface(v map[string]interface{}) *SubjectUpdateOne {
	_u.mutation.SetPreface(v)
	return _u
}

// ClearPreface clears the value of the "preface" field.
func (_u *SubjectUpdateOne) ClearPreface() *SubjectUpdateOne {
	_u.mutation.ClearPreface()
	return _u
}

// SetOverallSummary sets the "overall_summary" field.
func (_u *SubjectUpdateOne) SetOverallSummary(v map[string]interface{}) *SubjectUpdateOne {
	_u.mutation.SetOverallSummary(v)
	return _u
}

// ClearOverallSummary clears the value of the "overall_summary" field.
func (_u *SubjectUpdateOne) ClearOverallSummary() *SubjectUpdateOne {
	_u.mutation.ClearOverallSummary()
	return _u
}

// SetSubjectDomain sets the "subject_domain" field.
func (_u *SubjectUpdateOne) SetSubjectDomain(v string) *SubjectUpdateOne {
	_u.mutation.SetSubjectDomain(v)
	return _u
}

// SetNillableSubjectDomain sets the "subject_domain" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableSubjectDomain(v *string) *SubjectUpdateOne {
	if v != nil {
		_u.SetSubjectDomain(*v)
	}
	return _u
}

// SetLearningStyle sets the "learning_style" field.
func (_u *SubjectUpdateOne) SetLearningStyle(v string) *SubjectUpdateOne {
	_u.mutation.SetLearningStyle(v)
	return _u
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableLearningStyle(v *string) *SubjectUpdateOne {
	if v != nil {
		_u.SetLearningStyle(*v)
	}
	return _u
}

// SetComplexityLevel sets the "complexity_level" field.
func (_u *SubjectUpdateOne) SetComplexityLevel(v string) *SubjectUpdateOne {
	_u.mutation.SetComplexityLevel(v)
	return _u
}

// SetNillableComplexityLevel sets the "complexity_level" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableComplexityLevel(v *string) *SubjectUpdateOne {
	if v != nil {
		_u.SetComplexityLevel(*v)
	}
	return _u
}

// SetSubjectAnalysis sets the "subject_analysis" field.
func (_u *SubjectUpdateOne) SetSubjectAnalysis(v map[string]interface{}) *SubjectUpdateOne {
	_u.mutation.SetSubjectAnalysis(v)
	return _u
}

// ClearSubjectAnalysis clears the value of the "subject_analysis" field.
func (_u *SubjectUpdateOne) ClearSubjectAnalysis() *SubjectUpdateOne {
	_u.mutation.ClearSubjectAnalysis()
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *SubjectUpdateOne) SetOriginalFilename(v string) *SubjectUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableOriginalFilename(v *string) *SubjectUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (_u *SubjectUpdateOne) ClearOriginalFilename() *SubjectUpdateOne {
	_u.mutation.ClearOriginalFilename()
	return _u
}

// SetFileSizeMB sets the "file_size_mb" field.
func (_u *SubjectUpdateOne) SetFileSizeMB(v float64) *SubjectUpdateOne {
	_u.mutation.ResetFileSizeMB()
	_u.mutation.SetFileSizeMB(v)
	return _u
}

// SetNillableFileSizeMB sets the "file_size_mb" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableFileSizeMB(v *float64) *SubjectUpdateOne {
	if v != nil {
		_u.SetFileSizeMB(*v)
	}
	return _u
}

// AddFileSizeMB adds value to the "file_size_mb" field.
func (_u *SubjectUpdateOne) AddFileSizeMB(v float64) *SubjectUpdateOne {
	_u.mutation.AddFileSizeMB(v)
	return _u
}

// ClearFileSizeMB clears the value of the "file_size_mb" field.
func (_u *SubjectUpdateOne) ClearFileSizeMB() *SubjectUpdateOne {
	_u.mutation.ClearFileSizeMB()
	return _u
}

// SetProcessingTimeSeconds sets the "processing_time_seconds" field.
func (_u *SubjectUpdateOne) SetProcessingTimeSeconds(v int) *SubjectUpdateOne {
	_u.mutation.ResetProcessingTimeSeconds()
	_u.mutation.SetProcessingTimeSeconds(v)
	return _u
}

// SetNillableProcessingTimeSeconds sets the "processing_time_seconds" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableProcessingTimeSeconds(v *int) *SubjectUpdateOne {
	if v != nil {
		_u.SetProcessingTimeSeconds(*v)
	}
	return _u
}

// AddProcessingTimeSeconds adds value to the "processing_time_seconds" field.
func (_u *SubjectUpdateOne) AddProcessingTimeSeconds(v int) *SubjectUpdateOne {
	_u.mutation.AddProcessingTimeSeconds(v)
	return _u
}

// ClearProcessingTimeSeconds clears the value of the "processing_time_seconds" field.
func (_u *SubjectUpdateOne) ClearProcessingTimeSeconds() *SubjectUpdateOne {
	_u.mutation.ClearProcessingTimeSeconds()
	return _u
}

// SetTotalChapters sets the "total_chapters" field.
func (_u *SubjectUpdateOne) SetTotalChapters(v int) *SubjectUpdateOne {
	_u.mutation.ResetTotalChapters()
	_u.mutation.SetTotalChapters(v)
	return _u
}

// SetNillableTotalChapters sets the "total_chapters" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableTotalChapters(v *int) *SubjectUpdateOne {
	if v != nil {
		_u.SetTotalChapters(*v)
	}
	return _u
}

// AddTotalChapters adds value to the "total_chapters" field.
func (_u *SubjectUpdateOne) AddTotalChapters(v int) *SubjectUpdateOne {
	_u.mutation.AddTotalChapters(v)
	return _u
}

// SetEstimatedReadTime sets the "estimated_read_time" field.
func (_u *SubjectUpdateOne) SetEstimatedReadTime(v int) *SubjectUpdateOne {
	_u.mutation.ResetEstimatedReadTime()
	_u.mutation.SetEstimatedReadTime(v)
	return _u
}

// SetNillableEstimatedReadTime sets the "estimated_read_time" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableEstimatedReadTime(v *int) *SubjectUpdateOne {
	if v != nil {
		_u.SetEstimatedReadTime(*v)
	}
	return _u
}

// AddEstimatedReadTime adds value to the "estimated_read_time" field.
func (_u *SubjectUpdateOne) AddEstimatedReadTime(v int) *SubjectUpdateOne {
	_u.mutation.AddEstimatedReadTime(v)
	return _u
}

// SetInteractiveElementsCount sets the "interactive_elements_count" field.
func (_u *SubjectUpdateOne) SetInteractiveElementsCount(v int) *SubjectUpdateOne {
	_u.mutation.ResetInteractiveElementsCount()
	_u.mutation.SetInteractiveElementsCount(v)
	return _u
}

// SetNillableInteractiveElementsCount sets the "interactive_elements_count" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableInteractiveElementsCount(v *int) *SubjectUpdateOne {
	if v != nil {
		_u.SetInteractiveElementsCount(*v)
	}
	return _u
}

// AddInteractiveElementsCount adds value to the "interactive_elements_count" field.
func (_u *SubjectUpdateOne) AddInteractiveElementsCount(v int) *SubjectUpdateOne {
	_u.mutation.AddInteractiveElementsCount(v)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *SubjectUpdateOne) SetCourseID(v int) *SubjectUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableCourseID(v *int) *SubjectUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetCourse sets the "course" edge to the Course entity.
func (_u *SubjectUpdateOne) SetCourse(v *Course) *SubjectUpdateOne {
	return _u.SetCourseID(v.ID)
}

// AddChapterIDs adds the "chapters" edge to the Chapter entity by IDs.
func (_u *SubjectUpdateOne) AddChapterIDs(ids ...int) *SubjectUpdateOne {
	_u.mutation.AddChapterIDs(ids...)
	return _u
}

// AddChapters adds the "chapters" edges to the Chapter entity.
func (_u *SubjectUpdateOne) AddChapters(v ...*Chapter) *SubjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChapterIDs(ids...)
}

// AddProgresIDs adds the "progress" edge to the UserProgress entity by IDs.
func (_u *SubjectUpdateOne) AddProgresIDs(ids ...int) *SubjectUpdateOne {
	_u.mutation.AddProgresIDs(ids...)
	return _u
}

// AddProgress adds the "progress" edges to the UserProgress entity.
func (_u *SubjectUpdateOne) AddProgress(v ...*UserProgress) *SubjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProgresIDs(ids...)
}

// AddStudySessionIDs adds the "study_sessions" edge to the StudySession entity by IDs.
func (_u *SubjectUpdateOne) AddStudySessionIDs(ids ...int) *SubjectUpdateOne {
	_u.mutation.AddStudySessionIDs(ids...)
	return _u
}

// AddStudySessions adds the "study_sessions" edges to the StudySession entity.
func (_u *SubjectUpdateOne) AddStudySessions(v ...*StudySession) *SubjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStudySessionIDs(ids...)
}

// Mutation returns the SubjectMutation object of the builder.
func (_u *SubjectUpdateOne) Mutation() *SubjectMutation {
	return _u.mutation
}

// ClearCourse clears the "course" edge to the Course entity.
func (_u *SubjectUpdateOne) ClearCourse() *SubjectUpdateOne {
	_u.mutation.ClearCourse()
	return _u
}

// ClearChapters clears all "chapters" edges to the Chapter entity.
func (_u *SubjectUpdateOne) ClearChapters() *SubjectUpdateOne {
	_u.mutation.ClearChapters()
	return _u
}

// RemoveChapterIDs removes the "chapters" edge to Chapter entities by IDs.
func (_u *SubjectUpdateOne) RemoveChapterIDs(ids ...int) *SubjectUpdateOne {
	_u.mutation.RemoveChapterIDs(ids...)
	return _u
}

// RemoveChapters removes "chapters" edges to Chapter entities.
func (_u *SubjectUpdateOne) RemoveChapters(v ...*Chapter) *SubjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChapterIDs(ids...)
}

// ClearProgress clears all "progress" edges to the UserProgress entity.
func (_u *SubjectUpdateOne) ClearProgress() *SubjectUpdateOne {
	_u.mutation.ClearProgress()
	return _u
}

// RemoveProgresIDs removes the "progress" edge to UserProgress entities by IDs.
func (_u *SubjectUpdateOne) RemoveProgresIDs(ids ...int) *SubjectUpdateOne {
	_u.mutation.RemoveProgresIDs(ids...)
	return _u
}

// RemoveProgress removes "progress" edges to UserProgress entities.
func (_u *SubjectUpdateOne) RemoveProgress(v ...*UserProgress) *SubjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProgresIDs(ids...)
}

// ClearStudySessions clears all "study_sessions" edges to the StudySession entity.
func (_u *SubjectUpdateOne) ClearStudySessions() *SubjectUpdateOne {
	_u.mutation.ClearStudySessions()
	return _u
}

// RemoveStudySessionIDs removes the "study_sessions" edge to StudySession entities by IDs.
func (_u *SubjectUpdateOne) RemoveStudySessionIDs(ids ...int) *SubjectUpdateOne {
	_u.mutation.RemoveStudySessionIDs(ids...)
	return _u
}

// RemoveStudySessions removes "study_sessions" edges to StudySession entities.
func (_u *SubjectUpdateOne) RemoveStudySessions(v ...*StudySession) *SubjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStudySessionIDs(ids...)
}

// Where appends a list predicates to the SubjectUpdate builder.
func (_u *SubjectUpdateOne) Where(ps ...predicate.Subject) *SubjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubjectUpdateOne) Select(field string, fields ...string) *SubjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subject entity.
func (_u *SubjectUpdateOne) Save(ctx context.Context) (*Subject, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectUpdateOne) SaveX(ctx context.Context) *Subject {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subject.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := subject.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subject.name": %w`, err)}
		}
	}
	if _u.mutation.CourseCleared() && len(_u.mutation.CourseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subject.course"`)
	}
	return nil
}

func (_u *SubjectUpdateOne) sqlSave(ctx context.Context) (_node *Subject, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subject.Table, subject.Columns, sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subject.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subject.FieldID)
		for _, f := range fields {
			if !subject.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subject.FieldID {
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
		_spec.SetField(subject.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subject.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Preface(); ok {
		_spec.SetField(subject.FieldPreface, field.TypeJSON, value)
	}
	if _u.mutation.PrefaceCleared() {
		_spec.ClearField(subject.FieldPreface, field.TypeJSON)
	}
	if value, ok := _u.mutation.OverallSummary(); ok {
		_spec.SetField(subject.FieldOverallSummary, field.TypeJSON, value)
	}
	if _u.mutation.OverallSummaryCleared() {
		_spec.ClearField(subject.FieldOverallSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.SubjectDomain(); ok {
		_spec.SetField(subject.FieldSubjectDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningStyle(); ok {
		_spec.SetField(subject.FieldLearningStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ComplexityLevel(); ok {
		_spec.SetField(subject.FieldComplexityLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectAnalysis(); ok {
		_spec.SetField(subject.FieldSubjectAnalysis, field.TypeJSON, value)
	}
	if _u.mutation.SubjectAnalysisCleared() {
		_spec.ClearField(subject.FieldSubjectAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(subject.FieldOriginalFilename, field.TypeString, value)
	}
	if _u.mutation.OriginalFilenameCleared() {
		_spec.ClearField(subject.FieldOriginalFilename, field.TypeString)
	}
	if value, ok := _u.mutation.FileSizeMB(); ok {
		_spec.SetField(subject.FieldFileSizeMB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFileSizeMB(); ok {
		_spec.AddField(subject.FieldFileSizeMB, field.TypeFloat64, value)
	}
	if _u.mutation.FileSizeMBCleared() {
		_spec.ClearField(subject.FieldFileSizeMB, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ProcessingTimeSeconds(); ok {
		_spec.SetField(subject.FieldProcessingTimeSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeSeconds(); ok {
		_spec.AddField(subject.FieldProcessingTimeSeconds, field.TypeInt, value)
	}
	if _u.mutation.ProcessingTimeSecondsCleared() {
		_spec.ClearField(subject.FieldProcessingTimeSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalChapters(); ok {
		_spec.SetField(subject.FieldTotalChapters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChapters(); ok {
		_spec.AddField(subject.FieldTotalChapters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedReadTime(); ok {
		_spec.SetField(subject.FieldEstimatedReadTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedReadTime(); ok {
		_spec.AddField(subject.FieldEstimatedReadTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InteractiveElementsCount(); ok {
		_spec.SetField(subject.FieldInteractiveElementsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInteractiveElementsCount(); ok {
		_spec.AddField(subject.FieldInteractiveElementsCount, field.TypeInt, value)
	}
	if _u.mutation.CourseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subject.CourseTable,
			Columns: []string{subject.CourseColumn},
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
			Table:   subject.CourseTable,
			Columns: []string{subject.CourseColumn},
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
	if _u.mutation.ChaptersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subject.ChaptersTable,
			Columns: []string{subject.ChaptersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChaptersIDs(); len(nodes) > 0 && !_u.mutation.ChaptersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subject.ChaptersTable,
			Columns: []string{subject.ChaptersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChaptersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subject.ChaptersTable,
			Columns: []string{subject.ChaptersColumn},
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
	if _u.mutation.ProgressCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subject.ProgressTable,
			Columns: []string{subject.ProgressColumn},
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
			Table:   subject.ProgressTable,
			Columns: []string{subject.ProgressColumn},
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
			Table:   subject.ProgressTable,
			Columns: []string{subject.ProgressColumn},
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
	if _u.mutation.StudySessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subject.StudySessionsTable,
			Columns: []string{subject.StudySessionsColumn},
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
			Table:   subject.StudySessionsTable,
			Columns: []string{subject.StudySessionsColumn},
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
			Table:   subject.StudySessionsTable,
			Columns: []string{subject.StudySessionsColumn},
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
	_node = &Subject{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
