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
	"github.com/abhisek/studium/ent/studysession"
	"github.com/abhisek/studium/ent/subject"
)

// CourseUpdate is the builder for updating Course entities.
type CourseUpdate struct {
	config
	hooks    []Hook
	mutation *CourseMutation
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdate) Where(ps ...predicate.Course) *CourseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CourseUpdate) SetUpdatedAt(v time.Time) *CourseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *CourseUpdate) SetName(v string) *CourseUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableName(v *string) *CourseUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CourseUpdate) SetDescription(v string) *CourseUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableDescription(v *string) *CourseUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CourseUpdate) ClearDescription() *CourseUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetAcademicLevel sets the "academic_level" field.
func (_u *CourseUpdate) SetAcademicLevel(v string) *CourseUpdate {
	_u.mutation.SetAcademicLevel(v)
	return _u
}

// SetNillableAcademicLevel sets the "academic_level" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableAcademicLevel(v *string) *CourseUpdate {
	if v != nil {
		_u.SetAcademicLevel(*v)
	}
	return _u
}

// SetInstitution sets the "institution" field.
func (_u *CourseUpdate) SetInstitution(v string) *CourseUpdate {
	_u.mutation.SetInstitution(v)
	return _u
}

// SetNillableInstitution sets the "institution" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableInstitution(v *string) *CourseUpdate {
	if v != nil {
		_u.SetInstitution(*v)
	}
	return _u
}

// ClearInstitution clears the value of the "institution" field.
func (_u *CourseUpdate) ClearInstitution() *CourseUpdate {
	_u.mutation.ClearInstitution()
	return _u
}

// SetInstructor sets the "instructor" field.
func (_u *CourseUpdate) SetInstructor(v string) *CourseUpdate {
	_u.mutation.SetInstructor(v)
	return _u
}

// SetNillableInstructor sets the "instructor" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableInstructor(v *string) *CourseUpdate {
	if v != nil {
		_u.SetInstructor(*v)
	}
	return _u
}

// ClearInstructor clears the value of the "instructor" field.
func (_u *CourseUpdate) ClearInstructor() *CourseUpdate {
	_u.mutation.ClearInstructor()
	return _u
}

// SetSemester sets the "semester" field.
func (_u *CourseUpdate) SetSemester(v string) *CourseUpdate {
	_u.mutation.SetSemester(v)
	return _u
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableSemester(v *string) *CourseUpdate {
	if v != nil {
		_u.SetSemester(*v)
	}
	return _u
}

// ClearSemester clears the value of the "semester" field.
func (_u *CourseUpdate) ClearSemester() *CourseUpdate {
	_u.mutation.ClearSemester()
	return _u
}

// SetTotalSubjects sets the "total_subjects" field.
func (_u *CourseUpdate) SetTotalSubjects(v int) *CourseUpdate {
	_u.mutation.ResetTotalSubjects()
	_u.mutation.SetTotalSubjects(v)
	return _u
}

// SetNillableTotalSubjects sets the "total_subjects" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableTotalSubjects(v *int) *CourseUpdate {
	if v != nil {
		_u.SetTotalSubjects(*v)
	}
	return _u
}

// AddTotalSubjects adds value to the "total_subjects" field.
func (_u *CourseUpdate) AddTotalSubjects(v int) *CourseUpdate {
	_u.mutation.AddTotalSubjects(v)
	return _u
}

// SetTotalChapters sets the "total_chapters" field.
func (_u *CourseUpdate) SetTotalChapters(v int) *CourseUpdate {
	_u.mutation.ResetTotalChapters()
	_u.mutation.SetTotalChapters(v)
	return _u
}

// SetNillableTotalChapters sets the "total_chapters" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableTotalChapters(v *int) *CourseUpdate {
	if v != nil {
		_u.SetTotalChapters(*v)
	}
	return _u
}

// AddTotalChapters adds value to the "total_chapters" field.
func (_u *CourseUpdate) AddTotalChapters(v int) *CourseUpdate {
	_u.mutation.AddTotalChapters(v)
	return _u
}

// SetEstimatedStudyHours sets the "estimated_study_hours" field.
func (_u *CourseUpdate) SetEstimatedStudyHours(v int) *CourseUpdate {
	_u.mutation.ResetEstimatedStudyHours()
	_u.mutation.SetEstimatedStudyHours(v)
	return _u
}

// SetNillableEstimatedStudyHours sets the "estimated_study_hours" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableEstimatedStudyHours(v *int) *CourseUpdate {
	if v != nil {
		_u.SetEstimatedStudyHours(*v)
	}
	return _u
}

// AddEstimatedStudyHours adds value to the "estimated_study_hours" field.
func (_u *CourseUpdate) AddEstimatedStudyHours(v int) *CourseUpdate {
	_u.mutation.AddEstimatedStudyHours(v)
	return _u
}

// AddSubjectIDs adds the "subjects" edge to the Subject entity by IDs.
func (_u *CourseUpdate) AddSubjectIDs(ids ...int) *CourseUpdate {
	_u.mutation.AddSubjectIDs(ids...)
	return _u
}

// AddSubjects adds the "subjects" edges to the Subject entity.
func (_u *CourseUpdate) AddSubjects(v ...*Subject) *CourseUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubjectIDs(ids...)
}

// AddEnrollmentIDs adds the "enrollments" edge to the CourseEnrollment entity by IDs.
func (_u *CourseUpdate) AddEnrollmentIDs(ids ...int) *CourseUpdate {
	_u.mutation.AddEnrollmentIDs(ids...)
	return _u
}

// AddEnrollments adds the "enrollments" edges to the CourseEnrollment entity.
func (_u *CourseUpdate) AddEnrollments(v ...*CourseEnrollment) *CourseUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEnrollmentIDs(ids...)
}

// AddStudySessionIDs adds the "study_sessions" edge to the StudySession entity by IDs.
func (_u *CourseUpdate) AddStudySessionIDs(ids ...int) *CourseUpdate {
	_u.mutation.AddStudySessionIDs(ids...)
	return _u
}

// AddStudySessions adds the "study_sessions" edges to the StudySession entity.
func (_u *CourseUpdate) AddStudySessions(v ...*StudySession) *CourseUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStudySessionIDs(ids...)
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdate) Mutation() *CourseMutation {
	return _u.mutation
}

// ClearSubjects clears all "subjects" edges to the Subject entity.
func (_u *CourseUpdate) ClearSubjects() *CourseUpdate {
	_u.mutation.ClearSubjects()
	return _u
}

// RemoveSubjectIDs removes the "subjects" edge to Subject entities by IDs.
func (_u *CourseUpdate) RemoveSubjectIDs(ids ...int) *CourseUpdate {
	_u.mutation.RemoveSubjectIDs(ids...)
	return _u
}

// RemoveSubjects removes "subjects" edges to Subject entities.
func (_u *CourseUpdate) RemoveSubjects(v ...*Subject) *CourseUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubjectIDs(ids...)
}

// ClearEnrollments clears all "enrollments" edges to the CourseEnrollment entity.
func (_u *CourseUpdate) ClearEnrollments() *CourseUpdate {
	_u.mutation.ClearEnrollments()
	return _u
}

// RemoveEnrollmentIDs removes the "enrollments" edge to CourseEnrollment entities by IDs.
func (_u *CourseUpdate) RemoveEnrollmentIDs(ids ...int) *CourseUpdate {
	_u.mutation.RemoveEnrollmentIDs(ids...)
	return _u
}

// RemoveEnrollments removes "enrollments" edges to CourseEnrollment entities.
func (_u *CourseUpdate) RemoveEnrollments(v ...*CourseEnrollment) *CourseUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEnrollmentIDs(ids...)
}

// ClearStudySessions clears all "study_sessions" edges to the StudySession entity.
func (_u *CourseUpdate) ClearStudySessions() *CourseUpdate {
	_u.mutation.ClearStudySessions()
	return _u
}

// RemoveStudySessionIDs removes the "study_sessions" edge to StudySession entities by IDs.
func (_u *CourseUpdate) RemoveStudySessionIDs(ids ...int) *CourseUpdate {
	_u.mutation.RemoveStudySessionIDs(ids...)
	return _u
}

// RemoveStudySessions removes "study_sessions" edges to StudySession entities.
func (_u *CourseUpdate) RemoveStudySessions(v ...*StudySession) *CourseUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStudySessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CourseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := course.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := course.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Course.name": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(course.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(course.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(course.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AcademicLevel(); ok {
		_spec.SetField(course.FieldAcademicLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Institution(); ok {
		_spec.SetField(course.FieldInstitution, field.TypeString, value)
	}
	if _u.mutation.InstitutionCleared() {
		_spec.ClearField(course.FieldInstitution, field.TypeString)
	}
	if value, ok := _u.mutation.Instructor(); ok {
		_spec.SetField(course.FieldInstructor, field.TypeString, value)
	}
	if _u.mutation.InstructorCleared() {
		_spec.ClearField(course.FieldInstructor, field.TypeString)
	}
	if value, ok := _u.mutation.Semester(); ok {
		_spec.SetField(course.FieldSemester, field.TypeString, value)
	}
	if _u.mutation.SemesterCleared() {
		_spec.ClearField(course.FieldSemester, field.TypeString)
	}
	if value, ok := _u.mutation.TotalSubjects(); ok {
		_spec.SetField(course.FieldTotalSubjects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSubjects(); ok {
		_spec.AddField(course.FieldTotalSubjects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalChapters(); ok {
		_spec.SetField(course.FieldTotalChapters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChapters(); ok {
		_spec.AddField(course.FieldTotalChapters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedStudyHours(); ok {
		_spec.SetField(course.FieldEstimatedStudyHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedStudyHours(); ok {
		_spec.AddField(course.FieldEstimatedStudyHours, field.TypeInt, value)
	}
	if _u.mutation.SubjectsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubjectsIDs(); len(nodes) > 0 && !_u.mutation.SubjectsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EnrollmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEnrollmentsIDs(); len(nodes) > 0 && !_u.mutation.EnrollmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnrollmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StudySessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStudySessionsIDs(); len(nodes) > 0 && !_u.mutation.StudySessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudySessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseUpdateOne is the builder for updating a single Course entity.
type CourseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CourseUpdateOne) SetUpdatedAt(v time.Time) *CourseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *CourseUpdateOne) SetName(v string) *CourseUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableName(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CourseUpdateOne) SetDescription(v string) *CourseUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableDescription(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CourseUpdateOne) ClearDescription() *CourseUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetAcademicLevel sets the "academic_level" field.
func (_u *CourseUpdateOne) SetAcademicLevel(v string) *CourseUpdateOne {
	_u.mutation.SetAcademicLevel(v)
	return _u
}

// SetNillableAcademicLevel sets the "academic_level" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableAcademicLevel(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetAcademicLevel(*v)
	}
	return _u
}

// SetInstitution sets the "institution" field.
func (_u *CourseUpdateOne) SetInstitution(v string) *CourseUpdateOne {
	_u.mutation.SetInstitution(v)
	return _u
}

// SetNillableInstitution sets the "institution" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableInstitution(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetInstitution(*v)
	}
	return _u
}

// ClearInstitution clears the value of the "institution" field.
func (_u *CourseUpdateOne) ClearInstitution() *CourseUpdateOne {
	_u.mutation.ClearInstitution()
	return _u
}

// SetInstructor sets the "instructor" field.
func (_u *CourseUpdateOne) SetInstructor(v string) *CourseUpdateOne {
	_u.mutation.SetInstructor(v)
	return _u
}

// SetNillableInstructor sets the "instructor" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableInstructor(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetInstructor(*v)
	}
	return _u
}

// ClearInstructor clears the value of the "instructor" field.
func (_u *CourseUpdateOne) ClearInstructor() *CourseUpdateOne {
	_u.mutation.ClearInstructor()
	return _u
}

// SetSemester sets the "semester" field.
func (_u *CourseUpdateOne) SetSemester(v string) *CourseUpdateOne {
	_u.mutation.SetSemester(v)
	return _u
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableSemester(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetSemester(*v)
	}
	return _u
}

// ClearSemester clears the value of the "semester" field.
func (_u *CourseUpdateOne) ClearSemester() *CourseUpdateOne {
	_u.mutation.ClearSemester()
	return _u
}

// SetTotalSubjects sets the "total_subjects" field.
func (_u *CourseUpdateOne) SetTotalSubjects(v int) *CourseUpdateOne {
	_u.mutation.ResetTotalSubjects()
	_u.mutation.SetTotalSubjects(v)
	return _u
}

// SetNillableTotalSubjects sets the "total_subjects" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableTotalSubjects(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetTotalSubjects(*v)
	}
	return _u
}

// AddTotalSubjects adds value to the "total_subjects" field.
func (_u *CourseUpdateOne) AddTotalSubjects(v int) *CourseUpdateOne {
	_u.mutation.AddTotalSubjects(v)
	return _u
}

// SetTotalChapters sets the "total_chapters" field.
func (_u *CourseUpdateOne) SetTotalChapters(v int) *CourseUpdateOne {
	_u.mutation.ResetTotalChapters()
	_u.mutation.SetTotalChapters(v)
	return _u
}

// SetNillableTotalChapters sets the "total_chapters" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableTotalChapters(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetTotalChapters(*v)
	}
	return _u
}

// AddTotalChapters adds value to the "total_chapters" field.
func (_u *CourseUpdateOne) AddTotalChapters(v int) *CourseUpdateOne {
	_u.mutation.AddTotalChapters(v)
	return _u
}

// SetEstimatedStudyHours sets the "estimated_study_hours" field.
func (_u *CourseUpdateOne) SetEstimatedStudyHours(v int) *CourseUpdateOne {
	_u.mutation.ResetEstimatedStudyHours()
	_u.mutation.SetEstimatedStudyHours(v)
	return _u
}

// SetNillableEstimatedStudyHours sets the "estimated_study_hours" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableEstimatedStudyHours(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetEstimatedStudyHours(*v)
	}
	return _u
}

// AddEstimatedStudyHours adds value to the "estimated_study_hours" field.
func (_u *CourseUpdateOne) AddEstimatedStudyHours(v int) *CourseUpdateOne {
	_u.mutation.AddEstimatedStudyHours(v)
	return _u
}

// AddSubjectIDs adds the "subjects" edge to the Subject entity by IDs.
func (_u *CourseUpdateOne) AddSubjectIDs(ids ...int) *CourseUpdateOne {
	_u.mutation.AddSubjectIDs(ids...)
	return _u
}

// AddSubjects adds the "subjects" edges to the Subject entity.
func (_u *CourseUpdateOne) AddSubjects(v ...*Subject) *CourseUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubjectIDs(ids...)
}

// AddEnrollmentIDs adds the "enrollments" edge to the CourseEnrollment entity by IDs.
func (_u *CourseUpdateOne) AddEnrollmentIDs(ids ...int) *CourseUpdateOne {
	_u.mutation.AddEnrollmentIDs(ids...)
	return _u
}

// AddEnrollments adds the "enrollments" edges to the CourseEnrollment entity.
func (_u *CourseUpdateOne) AddEnrollments(v ...*CourseEnrollment) *CourseUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEnrollmentIDs(ids...)
}

// AddStudySessionIDs adds the "study_sessions" edge to the StudySession entity by IDs.
func (_u *CourseUpdateOne) AddStudySessionIDs(ids ...int) *CourseUpdateOne {
	_u.mutation.AddStudySessionIDs(ids...)
	return _u
}

// AddStudySessions adds the "study_sessions" edges to the StudySession entity.
func (_u *CourseUpdateOne) AddStudySessions(v ...*StudySession) *CourseUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStudySessionIDs(ids...)
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdateOne) Mutation() *CourseMutation {
	return _u.mutation
}

// ClearSubjects clears all "subjects" edges to the Subject entity.
func (_u *CourseUpdateOne) ClearSubjects() *CourseUpdateOne {
	_u.mutation.ClearSubjects()
	return _u
}

// RemoveSubjectIDs removes the "subjects" edge to Subject entities by IDs.
func (_u *CourseUpdateOne) RemoveSubjectIDs(ids ...int) *CourseUpdateOne {
	_u.mutation.RemoveSubjectIDs(ids...)
	return _u
}

// RemoveSubjects removes "subjects" edges to Subject entities.
func (_u *CourseUpdateOne) RemoveSubjects(v ...*Subject) *CourseUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubjectIDs(ids...)
}

// ClearEnrollments clears all "enrollments" edges to the CourseEnrollment entity.
func (_u *CourseUpdateOne) ClearEnrollments() *CourseUpdateOne {
	_u.mutation.ClearEnrollments()
	return _u
}

// RemoveEnrollmentIDs removes the "enrollments" edge to CourseEnrollment entities by IDs.
func (_u *CourseUpdateOne) RemoveEnrollmentIDs(ids ...int) *CourseUpdateOne {
	_u.mutation.RemoveEnrollmentIDs(ids...)
	return _u
}

// RemoveEnrollments removes "enrollments" edges to CourseEnrollment entities.
func (_u *CourseUpdateOne) RemoveEnrollments(v ...*CourseEnrollment) *CourseUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEnrollmentIDs(ids...)
}

// ClearStudySessions clears all "study_sessions" edges to the StudySession entity.
func (_u *CourseUpdateOne) ClearStudySessions() *CourseUpdateOne {
	_u.mutation.ClearStudySessions()
	return _u
}

// RemoveStudySessionIDs removes the "study_sessions" edge to StudySession entities by IDs.
func (_u *CourseUpdateOne) RemoveStudySessionIDs(ids ...int) *CourseUpdateOne {
	_u.mutation.RemoveStudySessionIDs(ids...)
	return _u
}

// RemoveStudySessions removes "study_sessions" edges to StudySession entities.
func (_u *CourseUpdateOne) RemoveStudySessions(v ...*StudySession) *CourseUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStudySessionIDs(ids...)
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdateOne) Where(ps ...predicate.Course) *CourseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseUpdateOne) Select(field string, fields ...string) *CourseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Course entity.
func (_u *CourseUpdateOne) Save(ctx context.Context) (*Course, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdateOne) SaveX(ctx context.Context) *Course {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CourseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := course.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := course.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Course.name": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseUpdateOne) sqlSave(ctx context.Context) (_node *Course, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Course.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, course.FieldID)
		for _, f := range fields {
			if !course.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != course.FieldID {
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
		_spec.SetField(course.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(course.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(course.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AcademicLevel(); ok {
		_spec.SetField(course.FieldAcademicLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Institution(); ok {
		_spec.SetField(course.FieldInstitution, field.TypeString, value)
	}
	if _u.mutation.InstitutionCleared() {
		_spec.ClearField(course.FieldInstitution, field.TypeString)
	}
	if value, ok := _u.mutation.Instructor(); ok {
		_spec.SetField(course.FieldInstructor, field.TypeString, value)
	}
	if _u.mutation.InstructorCleared() {
		_spec.ClearField(course.FieldInstructor, field.TypeString)
	}
	if value, ok := _u.mutation.Semester(); ok {
		_spec.SetField(course.FieldSemester, field.TypeString, value)
	}
	if _u.mutation.SemesterCleared() {
		_spec.ClearField(course.FieldSemester, field.TypeString)
	}
	if value, ok := _u.mutation.TotalSubjects(); ok {
		_spec.SetField(course.FieldTotalSubjects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSubjects(); ok {
		_spec.AddField(course.FieldTotalSubjects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalChapters(); ok {
		_spec.SetField(course.FieldTotalChapters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChapters(); ok {
		_spec.AddField(course.FieldTotalChapters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedStudyHours(); ok {
		_spec.SetField(course.FieldEstimatedStudyHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedStudyHours(); ok {
		_spec.AddField(course.FieldEstimatedStudyHours, field.TypeInt, value)
	}
	if _u.mutation.SubjectsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubjectsIDs(); len(nodes) > 0 && !_u.mutation.SubjectsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EnrollmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEnrollmentsIDs(); len(nodes) > 0 && !_u.mutation.EnrollmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnrollmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StudySessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStudySessionsIDs(); len(nodes) > 0 && !_u.mutation.StudySessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudySessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Course{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
