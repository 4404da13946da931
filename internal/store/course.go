package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studium/ent"
	"github.com/abhisek/studium/ent/course"
)

// courseRepo implements CourseRepo backed by ent.
type courseRepo struct {
	client *ent.Client
}

func (r *courseRepo) Create(ctx context.Context, in CourseInput) (*Course, error) {
	c, err := r.client.Course.Create().
		SetName(in.Name).
		SetDescription(in.Description).
		SetAcademicLevel(in.AcademicLevel).
		SetInstitution(in.Institution).
		SetInstructor(in.Instructor).
		SetSemester(in.Semester).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("course %q: %w", in.Name, ErrDuplicate)
		}
		return nil, fmt.Errorf("create course: %w", err)
	}
	return courseFromEnt(c), nil
}

func (r *courseRepo) Get(ctx context.Context, id int) (*Course, error) {
	c, err := r.client.Course.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("course %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return courseFromEnt(c), nil
}

func (r *courseRepo) GetByName(ctx context.Context, name string) (*Course, error) {
	c, err := r.client.Course.Query().
		Where(course.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("course %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("get course by name: %w", err)
	}
	return courseFromEnt(c), nil
}

func (r *courseRepo) List(ctx context.Context) ([]*Course, error) {
	rows, err := r.client.Course.Query().
		Order(ent.Desc(course.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	out := make([]*Course, len(rows))
	for i, c := range rows {
		out[i] = courseFromEnt(c)
	}
	return out, nil
}

func (r *courseRepo) Delete(ctx context.Context, id int) error {
	err := r.client.Course.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("course %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

func (r *courseRepo) UpdateStats(ctx context.Context, id, totalSubjects, totalChapters, estimatedStudyHours int) error {
	err := r.client.Course.UpdateOneID(id).
		SetTotalSubjects(totalSubjects).
		SetTotalChapters(totalChapters).
		SetEstimatedStudyHours(estimatedStudyHours).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("course %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("update course stats: %w", err)
	}
	return nil
}

func courseFromEnt(c *ent.Course) *Course {
	return &Course{
		ID:                  c.ID,
		Name:                c.Name,
		Description:         c.Description,
		AcademicLevel:       c.AcademicLevel,
		Institution:         c.Institution,
		Instructor:          c.Instructor,
		Semester:            c.Semester,
		TotalSubjects:       c.TotalSubjects,
		TotalChapters:       c.TotalChapters,
		EstimatedStudyHours: c.EstimatedStudyHours,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}
