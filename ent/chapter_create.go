// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studium/ent/bookmark"
	"github.com/abhisek/studium/ent/chapter"
	"github.com/abhisek/studium/ent/quizresult"
	"github.com/abhisek/studium/ent/studysession"
	"github.com/abhisek/studium/ent/subject"
	"github.com/abhisek/studium/ent/userprogress"
)

// ChapterCreate is the builder for creating a Chapter entity.
type ChapterCreate struct {
	config
	mutation *ChapterMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChapterCreate) SetCreatedAt(v time.Time) *ChapterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChapterCreate) SetNillableCreatedAt(v *time.Time) *ChapterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChapterCreate) SetUpdatedAt(v time.Time) *ChapterCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChapterCreate) SetNillableUpdatedAt(v *time.Time) *ChapterCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ChapterCreate) SetTitle(v string) *ChapterCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetChapterNumber sets the "chapter_number" field.
func (_c *ChapterCreate) SetChapterNumber(v int) *ChapterCreate {
	_c.mutation.SetChapterNumber(v)
	return _c
}

// SetNillableChapterNumber sets the "chapter_number" field if the given value is not nil.
func (_c *ChapterCreate) SetNillableChapterNumber(v *int) *ChapterCreate {
	if v != nil {
		_c.SetChapterNumber(*v)
	}
	return _c
}

// SetIntroSummary sets the "intro_summary" field.
func (_c *ChapterCreate) SetIntroSummary(v map[string]interface{}) *ChapterCreate {
	_c.mutation.SetIntroSummary(v)
	return _c
}

// SetContentBlocks sets the "content_blocks" field.
func (_c *ChapterCreate) SetContentBlocks(v []map[string]interface{}) *ChapterCreate {
	_c.mutation.SetContentBlocks(v)
	return _c
}

// SetChapterMetadata sets the "chapter_metadata" field.
func (_c *ChapterCreate) SetChapterMetadata(v map[string]interface{}) *ChapterCreate {
	_c.mutation.SetChapterMetadata(v)
	return _c
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_c *ChapterCreate) SetDifficultyLevel(v string) *ChapterCreate {
	_c.mutation.SetDifficultyLevel(v)
	return _c
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_c *ChapterCreate) SetNillableDifficultyLevel(v *string) *ChapterCreate {
	if v != nil {
		_c.SetDifficultyLevel(*v)
	}
	return _c
}

// SetEstimatedStudyTime sets the "estimated_study_time" field.
func (_c *ChapterCreate) SetEstimatedStudyTime(v int) *ChapterCreate {
	_c.mutation.SetEstimatedStudyTime(v)
	return _c
}

// SetNillableEstimatedStudyTime sets the "estimated_study_time" field if the given value is not nil.
func (_c *ChapterCreate) SetNillableEstimatedStudyTime(v *int) *ChapterCreate {
	if v != nil {
		_c.SetEstimatedStudyTime(*v)
	}
	return _c
}

// SetTotalContentBlocks sets the "total_content_blocks" field.
func (_c *ChapterCreate) SetTotalContentBlocks(v int) *ChapterCreate {
	_c.mutation.SetTotalContentBlocks(v)
	return _c
}

// SetNillableTotalContentBlocks sets the "total_content_blocks" field if the given value is not nil.
func (_c *ChapterCreate) SetNillableTotalContentBlocks(v *int) *ChapterCreate {
	if v != nil {
		_c.SetTotalContentBlocks(*v)
	}
	return _c
}

// SetConceptCount sets the "concept_count" field.
func (_c *ChapterCreate) SetConceptCount(v int) *ChapterCreate {
	_c.mutation.SetConceptCount(v)
	return _c
}

// SetNillableConceptCount sets the "concept_count" field if the given value is not nil.
func (_c *ChapterCreate) SetNillableConceptCount(v *int) *ChapterCreate {
	if v != nil {
		_c.SetConceptCount(*v)
	}
	return _c
}

// SetVisualizationCount sets the "visualization_count" field.
func (_c *ChapterCreate) SetVisualizationCount(v int) *ChapterCreate {
	_c.mutation.SetVisualizationCount(v)
	return _c
}

// SetNillableVisualizationCount sets the "visualization_count" field if the given value is not nil.
func (_c *ChapterCreate) SetNillableVisualizationCount(v *int) *ChapterCreate {
	if v != nil {
		_c.SetVisualizationCount(*v)
	}
	return _c
}

// SetExerciseCount sets the "exercise_count" field.
func (_c *ChapterCreate) SetExerciseCount(v int) *ChapterCreate {
	_c.mutation.SetExerciseCount(v)
	return _c
}

// SetNillableExerciseCount sets the "exercise_count" field if the given value is not nil.
func (_c *ChapterCreate) SetNillableExerciseCount(v *int) *ChapterCreate {
	if v != nil {
		_c.SetExerciseCount(*v)
	}
	return _c
}

// SetCaseStudyCount sets the "case_study_count" field.
func (_c *ChapterCreate) SetCaseStudyCount(v int) *ChapterCreate {
	_c.mutation.SetCaseStudyCount(v)
	return _c
}

// SetNillableCaseStudyCount sets the "case_study_count" field if the given value is not nil.
func (_c *ChapterCreate) SetNillableCaseStudyCount(v *int) *ChapterCreate {
	if v != nil {
		_c.SetCaseStudyCount(*v)
	}
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *ChapterCreate) SetSubjectID(v int) *ChapterCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_c *ChapterCreate) SetSubject(v *Subject) *ChapterCreate {
	return _c.SetSubjectID(v.ID)
}

// AddProgresIDs adds the "progress" edge to the UserProgress entity by IDs.
func (_c *ChapterCreate) AddProgresIDs(ids ...int) *ChapterCreate {
	_c.mutation.AddProgresIDs(ids...)
	return _c
}

// AddProgress adds the "progress" edges to the UserProgress entity.
func (_c *ChapterCreate) AddProgress(v ...*UserProgress) *ChapterCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProgresIDs(ids...)
}

// AddBookmarkIDs adds the "bookmarks" edge to the Bookmark entity by IDs.
func (_c *ChapterCreate) AddBookmarkIDs(ids ...int) *ChapterCreate {
	_c.mutation.AddBookmarkIDs(ids...)
	return _c
}

// AddBookmarks adds the "bookmarks" edges to the Bookmark entity.
func (_c *ChapterCreate) AddBookmarks(v ...*Bookmark) *ChapterCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBookmarkIDs(ids...)
}

// AddQuizResultIDs adds the "quiz_results" edge to the QuizResult entity by IDs.
func (_c *ChapterCreate) AddQuizResultIDs(ids ...int) *ChapterCreate {
	_c.mutation.AddQuizResultIDs(ids...)
	return _c
}

// AddQuizResults adds the "quiz_results" edges to the QuizResult entity.
func (_c *ChapterCreate) AddQuizResults(v ...*QuizResult) *ChapterCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuizResultIDs(ids...)
}

// AddStudySessionIDs adds the "study_sessions" edge to the StudySession entity by IDs.
func (_c *ChapterCreate) AddStudySessionIDs(ids ...int) *ChapterCreate {
	_c.mutation.AddStudySessionIDs(ids...)
	return _c
}

// AddStudySessions adds the "study_sessions" edges to the StudySession entity.
func (_c *ChapterCreate) AddStudySessions(v ...*StudySession) *ChapterCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStudySessionIDs(ids...)
}

// Mutation returns the ChapterMutation object of the builder.
func (_c *ChapterCreate) Mutation() *ChapterMutation {
	return _c.mutation
}

// Save creates the Chapter in the database.
func (_c *ChapterCreate) Save(ctx context.Context) (*Chapter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChapterCreate) SaveX(ctx context.Context) *Chapter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChapterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChapterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChapterCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chapter.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := chapter.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ChapterNumber(); !ok {
		v := chapter.DefaultChapterNumber
		_c.mutation.SetChapterNumber(v)
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		v := chapter.DefaultDifficultyLevel
		_c.mutation.SetDifficultyLevel(v)
	}
	if _, ok := _c.mutation.EstimatedStudyTime(); !ok {
		v := chapter.DefaultEstimatedStudyTime
		_c.mutation.SetEstimatedStudyTime(v)
	}
	if _, ok := _c.mutation.TotalContentBlocks(); !ok {
		v := chapter.DefaultTotalContentBlocks
		_c.mutation.SetTotalContentBlocks(v)
	}
	if _, ok := _c.mutation.ConceptCount(); !ok {
		v := chapter.DefaultConceptCount
		_c.mutation.SetConceptCount(v)
	}
	if _, ok := _c.mutation.VisualizationCount(); !ok {
		v := chapter.DefaultVisualizationCount
		_c.mutation.SetVisualizationCount(v)
	}
	if _, ok := _c.mutation.ExerciseCount(); !ok {
		v := chapter.DefaultExerciseCount
		_c.mutation.SetExerciseCount(v)
	}
	if _, ok := _c.mutation.CaseStudyCount(); !ok {
		v := chapter.DefaultCaseStudyCount
		_c.mutation.SetCaseStudyCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChapterCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Chapter.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Chapter.updated_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Chapter.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := chapter.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Chapter.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChapterNumber(); !ok {
		return &ValidationError{Name: "chapter_number", err: errors.New(`ent: missing required field "Chapter.chapter_number"`)}
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		return &ValidationError{Name: "difficulty_level", err: errors.New(`ent: missing required field "Chapter.difficulty_level"`)}
	}
	if _, ok := _c.mutation.EstimatedStudyTime(); !ok {
		return &ValidationError{Name: "estimated_study_time", err: errors.New(`ent: missing required field "Chapter.estimated_study_time"`)}
	}
	if _, ok := _c.mutation.TotalContentBlocks(); !ok {
		return &ValidationError{Name: "total_content_blocks", err: errors.New(`ent: missing required field "Chapter.total_content_blocks"`)}
	}
	if _, ok := _c.mutation.ConceptCount(); !ok {
		return &ValidationError{Name: "concept_count", err: errors.New(`ent: missing required field "Chapter.concept_count"`)}
	}
	if _, ok := _c.mutation.VisualizationCount(); !ok {
		return &ValidationError{Name: "visualization_count", err: errors.New(`ent: missing required field "Chapter.visualization_count"`)}
	}
	if _, ok := _c.mutation.ExerciseCount(); !ok {
		return &ValidationError{Name: "exercise_count", err: errors.New(`ent: missing required field "Chapter.exercise_count"`)}
	}
	if _, ok := _c.mutation.CaseStudyCount(); !ok {
		return &ValidationError{Name: "case_study_count", err: errors.New(`ent: missing required field "Chapter.case_study_count"`)}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "Chapter.subject_id"`)}
	}
	if len(_c.mutation.SubjectIDs()) == 0 {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required edge "Chapter.subject"`)}
	}
	return nil
}

func (_c *ChapterCreate) sqlSave(ctx context.Context) (*Chapter, error) {
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

func (_c *ChapterCreate) createSpec() (*Chapter, *sqlgraph.CreateSpec) {
	var (
		_node = &Chapter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chapter.Table, sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chapter.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(chapter.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(chapter.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.ChapterNumber(); ok {
		_spec.SetField(chapter.FieldChapterNumber, field.TypeInt, value)
		_node.ChapterNumber = value
	}
	if value, ok := _c.mutation.IntroSummary(); ok {
		_spec.SetField(chapter.FieldIntroSummary, field.TypeJSON, value)
		_node.IntroSummary = value
	}
	if value, ok := _c.mutation.ContentBlocks(); ok {
		_spec.SetField(chapter.FieldContentBlocks, field.TypeJSON, value)
		_node.ContentBlocks = value
	}
	if value, ok := _c.mutation.ChapterMetadata(); ok {
		_spec.SetField(chapter.FieldChapterMetadata, field.TypeJSON, value)
		_node.ChapterMetadata = value
	}
	if value, ok := _c.mutation.DifficultyLevel(); ok {
		_spec.SetField(chapter.FieldDifficultyLevel, field.TypeString, value)
		_node.DifficultyLevel = value
	}
	if value, ok := _c.mutation.EstimatedStudyTime(); ok {
		_spec.SetField(chapter.FieldEstimatedStudyTime, field.TypeInt, value)
		_node.EstimatedStudyTime = value
	}
	if value, ok := _c.mutation.TotalContentBlocks(); ok {
		_spec.SetField(chapter.FieldTotalContentBlocks, field.TypeInt, value)
		_node.TotalContentBlocks = value
	}
	if value, ok := _c.mutation.ConceptCount(); ok {
		_spec.SetField(chapter.FieldConceptCount, field.TypeInt, value)
		_node.ConceptCount = value
	}
	if value, ok := _c.mutation.VisualizationCount(); ok {
		_spec.SetField(chapter.FieldVisualizationCount, field.TypeInt, value)
		_node.VisualizationCount = value
	}
	if value, ok := _c.mutation.ExerciseCount(); ok {
		_spec.SetField(chapter.FieldExerciseCount, field.TypeInt, value)
		_node.ExerciseCount = value
	}
	if value, ok := _c.mutation.CaseStudyCount(); ok {
		_spec.SetField(chapter.FieldCaseStudyCount, field.TypeInt, value)
		_node.CaseStudyCount = value
	}
	if nodes := _c.mutation.SubjectIDs(); len(nodes) > 0 {
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
		_node.SubjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProgressIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BookmarksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuizResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StudySessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChapterCreateBulk is the builder for creating many Chapter entities in bulk.
type ChapterCreateBulk struct {
	config
	err      error
	builders []*ChapterCreate
}

// Save creates the Chapter entities in the database.
func (_c *ChapterCreateBulk) Save(ctx context.Context) ([]*Chapter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Chapter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChapterMutation)
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
func (_c *ChapterCreateBulk) SaveX(ctx context.Context) []*Chapter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChapterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChapterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
