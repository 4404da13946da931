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
	"github.com/abhisek/studium/ent/studysession"
	"github.com/abhisek/studium/ent/subject"
	"github.com/abhisek/studium/ent/userprogress"
)

// SubjectCreate is the builder for creating a Subject entity.
type SubjectCreate struct {
	config
	mutation *SubjectMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubjectCreate) SetCreatedAt(v time.Time) *SubjectCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableCreatedAt(v *time.Time) *SubjectCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubjectCreate) SetUpdatedAt(v time.Time) *SubjectCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableUpdatedAt(v *time.Time) *SubjectCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *SubjectCreate) SetName(v string) *SubjectCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPreface sets the "preface" field.
func (_c *SubjectCreate) SetPreface(v map[string]interface{}) *SubjectCreate {
	_c.mutation.SetPreface(v)
	return _c
}

// SetOverallSummary sets the "overall_summary" field.
func (_c *SubjectCreate) SetOverallSummary(v map[string]interface{}) *SubjectCreate {
	_c.mutation.SetOverallSummary(v)
	return _c
}

// SetSubjectDomain sets the "subject_domain" field.
func (_c *SubjectCreate) SetSubjectDomain(v string) *SubjectCreate {
	_c.mutation.SetSubjectDomain(v)
	return _c
}

// SetNillableSubjectDomain sets the "subject_domain" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableSubjectDomain(v *string) *SubjectCreate {
	if v != nil {
		_c.SetSubjectDomain(*v)
	}
	return _c
}

// SetLearningStyle sets the "learning_style" field.
func (_c *SubjectCreate) SetLearningStyle(v string) *SubjectCreate {
	_c.mutation.SetLearningStyle(v)
	return _c
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableLearningStyle(v *string) *SubjectCreate {
	if v != nil {
		_c.SetLearningStyle(*v)
	}
	return _c
}

// SetComplexityLevel sets the "complexity_level" field.
func (_c *SubjectCreate) SetComplexityLevel(v string) *SubjectCreate {
	_c.mutation.SetComplexityLevel(v)
	return _c
}

// SetNillableComplexityLevel sets the "complexity_level" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableComplexityLevel(v *string) *SubjectCreate {
	if v != nil {
		_c.SetComplexityLevel(*v)
	}
	return _c
}

// SetSubjectAnalysis sets the "subject_analysis" field.
func (_c *SubjectCreate) SetSubjectAnalysis(v map[string]interface{}) *SubjectCreate {
	_c.mutation.SetSubjectAnalysis(v)
	return _c
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *SubjectCreate) SetOriginalFilename(v string) *SubjectCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableOriginalFilename(v *string) *SubjectCreate {
	if v != nil {
		_c.SetOriginalFilename(*v)
	}
	return _c
}

// SetFileSizeMB sets the "file_size_mb" field.
func (_c *SubjectCreate) SetFileSizeMB(v float64) *SubjectCreate {
	_c.mutation.SetFileSizeMB(v)
	return _c
}

// SetNillableFileSizeMB sets the "file_size_mb" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableFileSizeMB(v *float64) *SubjectCreate {
	if v != nil {
		_c.SetFileSizeMB(*v)
	}
	return _c
}

// SetProcessingTimeSeconds sets the "processing_time_seconds" field.
func (_c *SubjectCreate) SetProcessingTimeSeconds(v int) *SubjectCreate {
	_c.mutation.SetProcessingTimeSeconds(v)
	return _c
}

// SetNillableProcessingTimeSeconds sets the "processing_time_seconds" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableProcessingTimeSeconds(v *int) *SubjectCreate {
	if v != nil {
		_c.SetProcessingTimeSeconds(*v)
	}
	return _c
}

// SetTotalChapters sets the "total_chapters" field.
func (_c *SubjectCreate) SetTotalChapters(v int) *SubjectCreate {
	_c.mutation.SetTotalChapters(v)
	return _c
}

// SetNillableTotalChapters sets the "total_chapters" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableTotalChapters(v *int) *SubjectCreate {
	if v != nil {
		_c.SetTotalChapters(*v)
	}
	return _c
}

// SetEstimatedReadTime sets the "estimated_read_time" field.
func (_c *SubjectCreate) SetEstimatedReadTime(v int) *SubjectCreate {
	_c.mutation.SetEstimatedReadTime(v)
	return _c
}

// SetNillableEstimatedReadTime sets the "estimated_read_time" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableEstimatedReadTime(v *int) *SubjectCreate {
	if v != nil {
		_c.SetEstimatedReadTime(*v)
	}
	return _c
}

// SetInteractiveElementsCount sets the "interactive_elements_count" field.
func (_c *SubjectCreate) SetInteractiveElementsCount(v int) *SubjectCreate {
	_c.mutation.SetInteractiveElementsCount(v)
	return _c
}

// SetNillableInteractiveElementsCount sets the "interactive_elements_count" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableInteractiveElementsCount(v *int) *SubjectCreate {
	if v != nil {
		_c.SetInteractiveElementsCount(*v)
	}
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *SubjectCreate) SetCourseID(v int) *SubjectCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetCourse sets the "course" edge to the Course entity.
func (_c *SubjectCreate) SetCourse(v *Course) *SubjectCreate {
	return _c.SetCourseID(v.ID)
}

// AddChapterIDs adds the "chapters" edge to the Chapter entity by IDs.
func (_c *SubjectCreate) AddChapterIDs(ids ...int) *SubjectCreate {
	_c.mutation.AddChapterIDs(ids...)
	return _c
}

// AddChapters adds the "chapters" edges to the Chapter entity.
func (_c *SubjectCreate) AddChapters(v ...*Chapter) *SubjectCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChapterIDs(ids...)
}

// AddProgresIDs adds the "progress" edge to the UserProgress entity by IDs.
func (_c *SubjectCreate) AddProgresIDs(ids ...int) *SubjectCreate {
	_c.mutation.AddProgresIDs(ids...)
	return _c
}

// AddProgress adds the "progress" edges to the UserProgress entity.
func (_c *SubjectCreate) AddProgress(v ...*UserProgress) *SubjectCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProgresIDs(ids...)
}

// AddStudySessionIDs adds the "study_sessions" edge to the StudySession entity by IDs.
func (_c *SubjectCreate) AddStudySessionIDs(ids ...int) *SubjectCreate {
	_c.mutation.AddStudySessionIDs(ids...)
	return _c
}

// AddStudySessions adds the "study_sessions" edges to the StudySession entity.
func (_c *SubjectCreate) AddStudySessions(v ...*StudySession) *SubjectCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStudySessionIDs(ids...)
}

// Mutation returns the SubjectMutation object of the builder.
func (_c *SubjectCreate) Mutation() *SubjectMutation {
	return _c.mutation
}

// Save creates the Subject in the database.
func (_c *SubjectCreate) Save(ctx context.Context) (*Subject, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubjectCreate) SaveX(ctx context.Context) *Subject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubjectCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subject.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := subject.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.SubjectDomain(); !ok {
		v := subject.DefaultSubjectDomain
		_c.mutation.SetSubjectDomain(v)
	}
	if _, ok := _c.mutation.LearningStyle(); !ok {
		v := subject.DefaultLearningStyle
		_c.mutation.SetLearningStyle(v)
	}
	if _, ok := _c.mutation.ComplexityLevel(); !ok {
		v := subject.DefaultComplexityLevel
		_c.mutation.SetComplexityLevel(v)
	}
	if _, ok := _c.mutation.TotalChapters(); !ok {
		v := subject.DefaultTotalChapters
		_c.mutation.SetTotalChapters(v)
	}
	if _, ok := _c.mutation.EstimatedReadTime(); !ok {
		v := subject.DefaultEstimatedReadTime
		_c.mutation.SetEstimatedReadTime(v)
	}
	if _, ok := _c.mutation.InteractiveElementsCount(); !ok {
		v := subject.DefaultInteractiveElementsCount
		_c.mutation.SetInteractiveElementsCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubjectCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Subject.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Subject.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Subject.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := subject.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subject.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectDomain(); !ok {
		return &ValidationError{Name: "subject_domain", err: errors.New(`ent: missing required field "Subject.subject_domain"`)}
	}
	if _, ok := _c.mutation.LearningStyle(); !ok {
		return &ValidationError{Name: "learning_style", err: errors.New(`ent: missing required field "Subject.learning_style"`)}
	}
	if _, ok := _c.mutation.ComplexityLevel(); !ok {
		return &ValidationError{Name: "complexity_level", err: errors.New(`ent: missing required field "Subject.complexity_level"`)}
	}
	if _, ok := _c.mutation.TotalChapters(); !ok {
		return &ValidationError{Name: "total_chapters", err: errors.New(`ent: missing required field "Subject.total_chapters"`)}
	}
	if _, ok := _c.mutation.EstimatedReadTime(); !ok {
		return &ValidationError{Name: "estimated_read_time", err: errors.New(`ent: missing required field "Subject.estimated_read_time"`)}
	}
	if _, ok := _c.mutation.InteractiveElementsCount(); !ok {
		return &ValidationError{Name: "interactive_elements_count", err: errors.New(`ent: missing required field "Subject.interactive_elements_count"`)}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "Subject.course_id"`)}
	}
	if len(_c.mutation.CourseIDs()) == 0 {
		return &ValidationError{Name: "course", err: errors.New(`ent: missing required edge "Subject.course"`)}
	}
	return nil
}

func (_c *SubjectCreate) sqlSave(ctx context.Context) (*Subject, error) {
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

func (_c *SubjectCreate) createSpec() (*Subject, *sqlgraph.CreateSpec) {
	var (
		_node = &Subject{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subject.Table, sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subject.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(subject.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(subject.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Preface(); ok {
		_spec.SetField(subject.FieldPreface, field.TypeJSON, value)
		_node.Preface = value
	}
	if value, ok := _c.mutation.OverallSummary(); ok {
		_spec.SetField(subject.FieldOverallSummary, field.TypeJSON, value)
		_node.OverallSummary = value
	}
	if value, ok := _c.mutation.SubjectDomain(); ok {
		_spec.SetField(subject.FieldSubjectDomain, field.TypeString, value)
		_node.SubjectDomain = value
	}
	if value, ok := _c.mutation.LearningStyle(); ok {
		_spec.SetField(subject.FieldLearningStyle, field.TypeString, value)
		_node.LearningStyle = value
	}
	if value, ok := _c.mutation.ComplexityLevel(); ok {
		_spec.SetField(subject.FieldComplexityLevel, field.TypeString, value)
		_node.ComplexityLevel = value
	}
	if value, ok := _c.mutation.SubjectAnalysis(); ok {
		_spec.SetField(subject.FieldSubjectAnalysis, field.TypeJSON, value)
		_node.SubjectAnalysis = value
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(subject.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = value
	}
	if value, ok := _c.mutation.FileSizeMB(); ok {
		_spec.SetField(subject.FieldFileSizeMB, field.TypeFloat64, value)
		_node.FileSizeMB = value
	}
	if value, ok := _c.mutation.ProcessingTimeSeconds(); ok {
		_spec.SetField(subject.FieldProcessingTimeSeconds, field.TypeInt, value)
		_node.ProcessingTimeSeconds = value
	}
	if value, ok := _c.mutation.TotalChapters(); ok {
		_spec.SetField(subject.FieldTotalChapters, field.TypeInt, value)
		_node.TotalChapters = value
	}
	if value, ok := _c.mutation.EstimatedReadTime(); ok {
		_spec.SetField(subject.FieldEstimatedReadTime, field.TypeInt, value)
		_node.EstimatedReadTime = value
	}
	if value, ok := _c.mutation.InteractiveElementsCount(); ok {
		_spec.SetField(subject.FieldInteractiveElementsCount, field.TypeInt, value)
		_node.InteractiveElementsCount = value
	}
	if nodes := _c.mutation.CourseIDs(); len(nodes) > 0 {
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
		_node.CourseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChaptersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProgressIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StudySessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubjectCreateBulk is the builder for creating many Subject entities in bulk.
type SubjectCreateBulk struct {
	config
	err      error
	builders []*SubjectCreate
}

// Save creates the Subject entities in the database.
func (_c *SubjectCreateBulk) Save(ctx context.Context) ([]*Subject, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Subject, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubjectMutation)
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
func (_c *SubjectCreateBulk) SaveX(ctx context.Context) []*Subject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
