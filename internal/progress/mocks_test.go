package progress

import (
	"context"

	"github.com/abhisek/studium/internal/store"
)

// In-memory repository fakes. Only the methods the aggregator exercises
// have real behavior; the rest return zero values.

type fakeCourseRepo struct {
	stats map[int][3]int // courseID -> subjects, chapters, hours
}

func (f *fakeCourseRepo) Create(context.Context, store.CourseInput) (*store.Course, error) {
	return nil, nil
}
func (f *fakeCourseRepo) Get(context.Context, int) (*store.Course, error)       { return nil, nil }
func (f *fakeCourseRepo) GetByName(context.Context, string) (*store.Course, error) {
	return nil, nil
}
func (f *fakeCourseRepo) List(context.Context) ([]*store.Course, error) { return nil, nil }
func (f *fakeCourseRepo) Delete(context.Context, int) error             { return nil }
func (f *fakeCourseRepo) UpdateStats(_ context.Context, id, subjects, chapters, hours int) error {
	if f.stats == nil {
		f.stats = make(map[int][3]int)
	}
	f.stats[id] = [3]int{subjects, chapters, hours}
	return nil
}

type fakeSubjectRepo struct {
	subjects []*store.Subject
	stats    map[int][3]int // subjectID -> chapters, readTime, interactive
}

func (f *fakeSubjectRepo) CreateWithChapters(context.Context, store.SubjectInput, []store.ChapterInput) (*store.Subject, error) {
	return nil, nil
}
func (f *fakeSubjectRepo) Get(_ context.Context, id int) (*store.Subject, error) {
	for _, s := range f.subjects {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, store.ErrNotFound
}
func (f *fakeSubjectRepo) ListByCourse(_ context.Context, courseID int) ([]*store.Subject, error) {
	out := make([]*store.Subject, 0)
	for _, s := range f.subjects {
		if s.CourseID == courseID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (f *fakeSubjectRepo) CountByCourse(ctx context.Context, courseID int) (int, error) {
	subjects, _ := f.ListByCourse(ctx, courseID)
	return len(subjects), nil
}
func (f *fakeSubjectRepo) Delete(context.Context, int) error { return nil }
func (f *fakeSubjectRepo) UpdateStats(_ context.Context, id, chapters, readTime, interactive int) error {
	if f.stats == nil {
		f.stats = make(map[int][3]int)
	}
	f.stats[id] = [3]int{chapters, readTime, interactive}
	for _, s := range f.subjects {
		if s.ID == id {
			s.TotalChapters = chapters
			s.EstimatedReadTime = readTime
			s.InteractiveElements = interactive
		}
	}
	return nil
}

type fakeChapterRepo struct {
	chapters []*store.Chapter
	next     []store.ChapterRef
	counts   map[int]store.ChapterCounts
}

func (f *fakeChapterRepo) Get(_ context.Context, id int) (*store.Chapter, error) {
	for _, c := range f.chapters {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, store.ErrNotFound
}
func (f *fakeChapterRepo) ListBySubject(_ context.Context, subjectID int) ([]*store.Chapter, error) {
	out := make([]*store.Chapter, 0)
	for _, c := range f.chapters {
		if c.SubjectID == subjectID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeChapterRepo) CountByCourse(context.Context, int) (int, error) {
	return len(f.chapters), nil
}
func (f *fakeChapterRepo) NextUncompleted(context.Context, int, []int, int) ([]store.ChapterRef, error) {
	return f.next, nil
}
func (f *fakeChapterRepo) UpdateCounts(_ context.Context, id int, counts store.ChapterCounts, _ int) error {
	if f.counts == nil {
		f.counts = make(map[int]store.ChapterCounts)
	}
	f.counts[id] = counts
	for _, c := range f.chapters {
		if c.ID == id {
			c.Counts = counts
		}
	}
	return nil
}
func (f *fakeChapterRepo) SetContentBlocks(context.Context, int, []map[string]any) error {
	return nil
}

type fakeEnrollmentRepo struct {
	enrollment *store.Enrollment
	cached     []float64
}

func (f *fakeEnrollmentRepo) Create(context.Context, store.EnrollmentInput) (*store.Enrollment, error) {
	return nil, nil
}
func (f *fakeEnrollmentRepo) Get(_ context.Context, userID string, courseID int) (*store.Enrollment, error) {
	if f.enrollment != nil && f.enrollment.UserID == userID && f.enrollment.CourseID == courseID {
		return f.enrollment, nil
	}
	return nil, store.ErrNotFound
}
func (f *fakeEnrollmentRepo) ListByUser(context.Context, string) ([]*store.Enrollment, error) {
	return nil, nil
}
func (f *fakeEnrollmentRepo) TouchActivity(context.Context, int) error { return nil }
func (f *fakeEnrollmentRepo) UpdateCachedProgress(_ context.Context, _ int, overall float64, _, _, _ int) error {
	f.cached = append(f.cached, overall)
	return nil
}
func (f *fakeEnrollmentRepo) SetPreferredDifficulty(context.Context, int, string) error {
	return nil
}

type fakeProgressRepo struct {
	entries []*store.ProgressEntry
	applied []appliedOutcome
}

type appliedOutcome struct {
	id        int
	avgScore  float64
	mastery   string
	struggles []string
}

func (f *fakeProgressRepo) GetOrCreate(context.Context, string, int, *int, string) (*store.ProgressEntry, bool, error) {
	return nil, false, nil
}
func (f *fakeProgressRepo) ForUserSubject(_ context.Context, _ string, subjectID int) ([]*store.ProgressEntry, error) {
	out := make([]*store.ProgressEntry, 0)
	for _, e := range f.entries {
		if e.SubjectID == subjectID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeProgressRepo) ForUserCourse(context.Context, string, int) ([]*store.ProgressEntry, error) {
	return f.entries, nil
}
func (f *fakeProgressRepo) Touch(context.Context, int) error                  { return nil }
func (f *fakeProgressRepo) MarkCompleted(context.Context, int, float64) error { return nil }
func (f *fakeProgressRepo) IncQuestionsAsked(context.Context, int) error      { return nil }
func (f *fakeProgressRepo) IncConceptsBookmarked(context.Context, int) error  { return nil }
func (f *fakeProgressRepo) AddStudyTime(context.Context, int, int) error      { return nil }
func (f *fakeProgressRepo) ApplyQuizOutcome(_ context.Context, id int, avgScore float64, mastery string, struggles []string) error {
	f.applied = append(f.applied, appliedOutcome{id, avgScore, mastery, struggles})
	return nil
}

type fakeQuizRepo struct {
	quizzes []*store.QuizRecord
}

func (f *fakeQuizRepo) Create(context.Context, store.QuizInput) (*store.QuizRecord, error) {
	return nil, nil
}
func (f *fakeQuizRepo) ForUser(context.Context, string, int) ([]*store.QuizRecord, error) {
	return f.quizzes, nil
}
func (f *fakeQuizRepo) ForUserChapter(_ context.Context, _ string, chapterID int) ([]*store.QuizRecord, error) {
	out := make([]*store.QuizRecord, 0)
	for _, q := range f.quizzes {
		if q.ChapterID == chapterID {
			out = append(out, q)
		}
	}
	return out, nil
}
func (f *fakeQuizRepo) ForUserSubject(context.Context, string, int) ([]*store.QuizRecord, error) {
	return f.quizzes, nil
}
func (f *fakeQuizRepo) ForUserCourse(context.Context, string, int) ([]*store.QuizRecord, error) {
	return f.quizzes, nil
}
func (f *fakeQuizRepo) LowScoresForUserCourse(_ context.Context, _ string, _ int, threshold float64) ([]*store.QuizRecord, error) {
	out := make([]*store.QuizRecord, 0)
	for _, q := range f.quizzes {
		if q.Percentage < threshold {
			out = append(out, q)
		}
	}
	return out, nil
}

func newFakeStores() (Stores, *fakeCourseRepo, *fakeSubjectRepo, *fakeChapterRepo, *fakeEnrollmentRepo, *fakeProgressRepo, *fakeQuizRepo) {
	courses := &fakeCourseRepo{}
	subjects := &fakeSubjectRepo{}
	chapters := &fakeChapterRepo{}
	enrollments := &fakeEnrollmentRepo{}
	entries := &fakeProgressRepo{}
	quizzes := &fakeQuizRepo{}
	st := Stores{
		Courses:     courses,
		Subjects:    subjects,
		Chapters:    chapters,
		Enrollments: enrollments,
		Progress:    entries,
		Quizzes:     quizzes,
	}
	return st, courses, subjects, chapters, enrollments, entries, quizzes
}
