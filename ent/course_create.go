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
	"github.com/abhisek/studium/ent/studysession"
	"github.com/abhisek/studium/ent/subject"
)

// CourseCreate is the builder for creating a Course entity.
type CourseCreate struct {
	config
	mutation *CourseMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *CourseCreate) SetCreatedAt(v time.Time) *CourseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CourseCreate) SetNillableCreatedAt(v *time.Time) *CourseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CourseCreate) SetUpdatedAt(v time.Time) *CourseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CourseCreate) SetNillableUpdatedAt(v *time.Time) *CourseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *CourseCreate) SetName(v string) *CourseCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CourseCreate) SetDescription(v string) *CourseCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CourseCreate) SetNillableDescription(v *string) *CourseCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAcademicLevel sets the "academic_level" field.
func (_c *CourseCreate) SetAcademicLevel(v string) *CourseCreate {
	_c.mutation.SetAcademicLevel(v)
	return _c
}

// SetNillableAcademicLevel sets the "academic_level" field if the given value is not nil.
func (_c *CourseCreate) SetNillableAcademicLevel(v *string) *CourseCreate {
	if v != nil {
		_c.SetAcademicLevel(*v)
	}
	return _c
}

// SetInstitution sets the "institution" field.
func (_c *CourseCreate) SetInstitution(v string) *CourseCreate {
	_c.mutation.SetInstitution(v)
	return _c
}

// SetNillableInstitution sets the "institution" field if the given value is not nil.
func (_c *CourseCreate) SetNillableInstitution(v *string) *CourseCreate {
	if v != nil {
		_c.SetInstitution(*v)
	}
	return _c
}

// SetInstructor sets the "instructor" field.
func (_c *CourseCreate) SetInstructor(v string) *CourseCreate {
	_c.mutation.SetInstructor(v)
	return _c
}

// SetNillableInstructor sets the "instructor" field if the given value is not nil.
func (_c *CourseCreate) SetNillableInstructor(v *string) *CourseCreate {
	if v != nil {
		_c.SetInstructor(*v)
	}
	return _c
}

// SetSemester sets the "semester" field.
func (_c *CourseCreate) SetSemester(v string) *CourseCreate {
	_c.mutation.SetSemester(v)
	return _c
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_c *CourseCreate) SetNillableSemester(v *string) *CourseCreate {
	if v != nil {
		_c.SetSemester(*v)
	}
	return _c
}

// SetTotalSubjects sets the "total_subjects" field.
func (_c *CourseCreate) SetTotalSubjects(v int) *CourseCreate {
	_c.mutation.SetTotalSubjects(v)
	return _c
}

// SetNillableTotalSubjects sets the "total_subjects" field if the given value is not nil.
func (_c *CourseCreate) SetNillableTotalSubjects(v *int) *CourseCreate {
	if v != nil {
		_c.SetTotalSubjects(*v)
	}
	return _c
}

// SetTotalChapters sets the "total_chapters" field.
func (_c *CourseCreate) SetTotalChapters(v int) *CourseCreate {
	_c.mutation.SetTotalChapters(v)
	return _c
}

// SetNillableTotalChapters sets the "total_chapters" field if the given value is not nil.
func (_c *CourseCreate) SetNillableTotalChapters(v *int) *CourseCreate {
	if v != nil {
		_c.SetTotalChapters(*v)
	}
	return _c
}

// SetEstimatedStudyHours sets the "estimated_study_hours" field.
func (_c *CourseCreate) SetEstimatedStudyHours(v int) *CourseCreate {
	_c.mutation.SetEstimatedStudyHours(v)
	return _c
}

// SetNillableEstimatedStudyHours sets the "estimated_study_hours" field if the given value is not nil.
func (_c *CourseCreate) SetNillableEstimatedStudyHours(v *int) *CourseCreate {
	if v != nil {
		_c.SetEstimatedStudyHours(*v)
	}
	return _c
}

// AddSubjectIDs adds the "subjects" edge to the Subject entity by IDs.
func (_c *CourseCreate) AddSubjectIDs(ids ...int) *CourseCreate {
	_c.mutation.AddSubjectIDs(ids...)
	return _c
}

// AddSubjects adds the "subjects" edges to the Subject entity.
func (_c *CourseCreate) AddSubjects(v ...*Subject) *CourseCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubjectIDs(ids...)
}

// AddEnrollmentIDs adds the "enrollments" edge to the CourseEnrollment entity by IDs.
func (_c *CourseCreate) AddEnrollmentIDs(ids ...int) *CourseCreate {
	_c.mutation.AddEnrollmentIDs(ids...)
	return _c
}

// AddEnrollments adds the "enrollments" edges to the CourseEnrollment entity.
func (_c *CourseCreate) AddEnrollments(v ...*CourseEnrollment) *CourseCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEnrollmentIDs(ids...)
}

// AddStudySessionIDs adds the "study_sessions" edge to the StudySession entity by IDs.
func (_c *CourseCreate) AddStudySessionIDs(ids ...int) *CourseCreate {
	_c.mutation.AddStudySessionIDs(ids...)
	return _c
}

// AddStudySessions adds the "study_sessions" edges to the StudySession entity.
func (_c *CourseCreate) AddStudySessions(v ...*StudySession) *CourseCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStudySessionIDs(ids...)
}

// Mutation returns the CourseMutation object of the builder.
func (_c *CourseCreate) Mutation() *CourseMutation {
	return _c.mutation
}

// Save creates the Course in the database.
func (_c *CourseCreate) Save(ctx context.Context) (*Course, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseCreate) SaveX(ctx context.Context) *Course {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := course.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := course.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.AcademicLevel(); !ok {
		v := course.DefaultAcademicLevel
		_c.mutation.SetAcademicLevel(v)
	}
	if _, ok := _c.mutation.TotalSubjects(); !ok {
		v := course.DefaultTotalSubjects
		_c.mutation.SetTotalSubjects(v)
	}
	if _, ok := _c.mutation.TotalChapters(); !ok {
		v := course.DefaultTotalChapters
		_c.mutation.SetTotalChapters(v)
	}
	if _, ok := _c.mutation.EstimatedStudyHours(); !ok {
		v := course.DefaultEstimatedStudyHours
		_c.mutation.SetEstimatedStudyHours(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Course.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Course.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Course.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := course.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Course.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AcademicLevel(); !ok {
		return &ValidationError{Name: "academic_level", err: errors.New(`ent: missing required field "Course.academic_level"`)}
	}
	if _, ok := _c.mutation.TotalSubjects(); !ok {
		return &ValidationError{Name: "total_subjects", err: errors.New(`ent: missing required field "Course.total_subjects"`)}
	}
	if _, ok := _c.mutation.TotalChapters(); !ok {
		return &ValidationError{Name: "total_chapters", err: errors.New(`ent: missing required field "Course.total_chapters"`)}
	}
	if _, ok := _c.mutation.EstimatedStudyHours(); !ok {
		return &ValidationError{Name: "estimated_study_hours", err: errors.New(`ent: missing required field "Course.estimated_study_hours"`)}
	}
	return nil
}

func (_c *CourseCreate) sqlSave(ctx context.Context) (*Course, error) {
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

func (_c *CourseCreate) createSpec() (*Course, *sqlgraph.CreateSpec) {
	var (
		_node = &Course{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(course.Table, sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(course.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(course.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(course.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.AcademicLevel(); ok {
		_spec.SetField(course.FieldAcademicLevel, field.TypeString, value)
		_node.AcademicLevel = value
	}
	if value, ok := _c.mutation.Institution(); ok {
		_spec.SetField(course.FieldInstitution, field.TypeString, value)
		_node.Institution = value
	}
	if value, ok := _c.mutation.Instructor(); ok {
		_spec.SetField(course.FieldInstructor, field.TypeString, value)
		_node.Instructor = value
	}
	if value, ok := _c.mutation.Semester(); ok {
		_spec.SetField(course.FieldSemester, field.TypeString, value)
		_node.Semester = value
	}
	if value, ok := _c.mutation.TotalSubjects(); ok {
		_spec.SetField(course.FieldTotalSubjects, field.TypeInt, value)
		_node.TotalSubjects = value
	}
	if value, ok := _c.mutation.TotalChapters(); ok {
		_spec.SetField(course.FieldTotalChapters, field.TypeInt, value)
		_node.TotalChapters = value
	}
	if value, ok := _c.mutation.EstimatedStudyHours(); ok {
		_spec.SetField(course.FieldEstimatedStudyHours, field.TypeInt, value)
		_node.EstimatedStudyHours = value
	}
	if nodes := _c.mutation.SubjectsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.SubjectsTable,
			Columns: []string{course.SubjectsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EnrollmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.EnrollmentsTable,
			Columns: []string{course.EnrollmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courseenrollment.FieldID, field.TypeInt),
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
			Table:   course.StudySessionsTable,
			Columns: []string{course.StudySessionsColumn},
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

// CourseCreateBulk is the builder for creating many Course entities in bulk.
type CourseCreateBulk struct {
	config
	err      error
	builders []*CourseCreate
}

// Save creates the Course entities in the database.
func (_c *CourseCreateBulk) Save(ctx context.Context) ([]*Course, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Course, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseMutation)
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
func (_c *CourseCreateBulk) SaveX(ctx context.Context) []*Course {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
