package server

import (
	"context"
	"sort"
	"time"

	"github.com/abhisek/studium/internal/store"
)

type fakeCourseRepo struct {
	courses map[int]*store.Course
	nextID  int
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[int]*store.Course), nextID: 1}
}

func (r *fakeCourseRepo) Create(ctx context.Context, in store.CourseInput) (*store.Course, error) {
	for _, c := range r.courses {
		if c.Name == in.Name {
			return nil, store.ErrDuplicate
		}
	}
	c := &store.Course{
		ID:            r.nextID,
		Name:          in.Name,
		Description:   in.Description,
		AcademicLevel: in.AcademicLevel,
		Institution:   in.Institution,
		CreatedAt:     time.Now(),
	}
	r.nextID++
	r.courses[c.ID] = c
	return c, nil
}

func (r *fakeCourseRepo) Get(ctx context.Context, id int) (*store.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return c, nil
}

func (r *fakeCourseRepo) GetByName(ctx context.Context, name string) (*store.Course, error) {
	for _, c := range r.courses {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *fakeCourseRepo) List(ctx context.Context) ([]*store.Course, error) {
	ids := make([]int, 0, len(r.courses))
	for id := range r.courses {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]*store.Course, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.courses[id])
	}
	return out, nil
}

func (r *fakeCourseRepo) Delete(ctx context.Context, id int) error {
	delete(r.courses, id)
	return nil
}

func (r *fakeCourseRepo) UpdateStats(ctx context.Context, id, totalSubjects, totalChapters, estimatedStudyHours int) error {
	c, ok := r.courses[id]
	if !ok {
		return store.ErrNotFound
	}
	c.TotalSubjects = totalSubjects
	c.TotalChapters = totalChapters
	c.EstimatedStudyHours = estimatedStudyHours
	return nil
}

type fakeSubjectRepo struct {
	subjects map[int]*store.Subject
	chapters *fakeChapterRepo
	nextID   int
}

func newFakeSubjectRepo(chapters *fakeChapterRepo) *fakeSubjectRepo {
	return &fakeSubjectRepo{subjects: make(map[int]*store.Subject), chapters: chapters, nextID: 1}
}

func (r *fakeSubjectRepo) CreateWithChapters(ctx context.Context, in store.SubjectInput, chapters []store.ChapterInput) (*store.Subject, error) {
	sub := &store.Subject{
		ID:                    r.nextID,
		CourseID:              in.CourseID,
		Name:                  in.Name,
		Preface:               in.Preface,
		OverallSummary:        in.OverallSummary,
		Analysis:              in.Analysis,
		Domain:                in.Domain,
		LearningStyle:         in.LearningStyle,
		ComplexityLevel:       in.ComplexityLevel,
		OriginalFilename:      in.OriginalFilename,
		FileSizeMB:            in.FileSizeMB,
		ProcessingTimeSeconds: in.ProcessingTimeSeconds,
		CreatedAt:             time.Now(),
	}
	r.nextID++
	r.subjects[sub.ID] = sub
	for _, ch := range chapters {
		r.chapters.add(sub.ID, ch)
	}
	return sub, nil
}

func (r *fakeSubjectRepo) Get(ctx context.Context, id int) (*store.Subject, error) {
	sub, ok := r.subjects[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return sub, nil
}

func (r *fakeSubjectRepo) ListByCourse(ctx context.Context, courseID int) ([]*store.Subject, error) {
	ids := make([]int, 0, len(r.subjects))
	for id, sub := range r.subjects {
		if sub.CourseID == courseID {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	out := make([]*store.Subject, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.subjects[id])
	}
	return out, nil
}

func (r *fakeSubjectRepo) CountByCourse(ctx context.Context, courseID int) (int, error) {
	subs, _ := r.ListByCourse(ctx, courseID)
	return len(subs), nil
}

func (r *fakeSubjectRepo) Delete(ctx context.Context, id int) error {
	delete(r.subjects, id)
	return nil
}

func (r *fakeSubjectRepo) UpdateStats(ctx context.Context, id, totalChapters, estimatedReadTime, interactiveElements int) error {
	sub, ok := r.subjects[id]
	if !ok {
		return store.ErrNotFound
	}
	sub.TotalChapters = totalChapters
	sub.EstimatedReadTime = estimatedReadTime
	sub.InteractiveElements = interactiveElements
	return nil
}

type fakeChapterRepo struct {
	chapters map[int]*store.Chapter
	nextID   int
}

func newFakeChapterRepo() *fakeChapterRepo {
	return &fakeChapterRepo{chapters: make(map[int]*store.Chapter), nextID: 1}
}

func (r *fakeChapterRepo) add(subjectID int, in store.ChapterInput) *store.Chapter {
	ch := &store.Chapter{
		ID:                 r.nextID,
		SubjectID:          subjectID,
		ChapterNumber:      in.ChapterNumber,
		Title:              in.Title,
		IntroSummary:       in.IntroSummary,
		ContentBlocks:      in.ContentBlocks,
		Metadata:           in.Metadata,
		DifficultyLevel:    in.DifficultyLevel,
		EstimatedStudyTime: in.EstimatedStudyTime,
		Counts:             in.Counts,
	}
	r.nextID++
	r.chapters[ch.ID] = ch
	return ch
}

func (r *fakeChapterRepo) Get(ctx context.Context, id int) (*store.Chapter, error) {
	ch, ok := r.chapters[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return ch, nil
}

func (r *fakeChapterRepo) ListBySubject(ctx context.Context, subjectID int) ([]*store.Chapter, error) {
	ids := make([]int, 0, len(r.chapters))
	for id, ch := range r.chapters {
		if ch.SubjectID == subjectID {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	out := make([]*store.Chapter, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.chapters[id])
	}
	return out, nil
}

func (r *fakeChapterRepo) CountByCourse(ctx context.Context, courseID int) (int, error) {
	return len(r.chapters), nil
}

func (r *fakeChapterRepo) NextUncompleted(ctx context.Context, courseID int, completedIDs []int, limit int) ([]store.ChapterRef, error) {
	done := make(map[int]bool, len(completedIDs))
	for _, id := range completedIDs {
		done[id] = true
	}
	ids := make([]int, 0, len(r.chapters))
	for id := range r.chapters {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	var out []store.ChapterRef
	for _, id := range ids {
		if done[id] || len(out) >= limit {
			continue
		}
		ch := r.chapters[id]
		out = append(out, store.ChapterRef{ID: ch.ID, Title: ch.Title, SubjectID: ch.SubjectID})
	}
	return out, nil
}

func (r *fakeChapterRepo) UpdateCounts(ctx context.Context, id int, counts store.ChapterCounts, estimatedStudyTime int) error {
	ch, ok := r.chapters[id]
	if !ok {
		return store.ErrNotFound
	}
	ch.Counts = counts
	ch.EstimatedStudyTime = estimatedStudyTime
	return nil
}

func (r *fakeChapterRepo) SetContentBlocks(ctx context.Context, id int, blocks []map[string]any) error {
	ch, ok := r.chapters[id]
	if !ok {
		return store.ErrNotFound
	}
	ch.ContentBlocks = blocks
	return nil
}

type fakeEnrollmentRepo struct {
	enrollments map[int]*store.Enrollment
	nextID      int
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{enrollments: make(map[int]*store.Enrollment), nextID: 1}
}

func (r *fakeEnrollmentRepo) Create(ctx context.Context, in store.EnrollmentInput) (*store.Enrollment, error) {
	e := &store.Enrollment{
		ID:                      r.nextID,
		UserID:                  in.UserID,
		CourseID:                in.CourseID,
		EnrollmentDate:          time.Now(),
		LastActivity:            time.Now(),
		StudyGoalHoursPerWeek:   in.StudyGoalHoursPerWeek,
		PreferredDifficulty:     in.PreferredDifficulty,
		LearningStylePreference: in.LearningStylePreference,
	}
	r.nextID++
	r.enrollments[e.ID] = e
	return e, nil
}

func (r *fakeEnrollmentRepo) Get(ctx context.Context, userID string, courseID int) (*store.Enrollment, error) {
	for _, e := range r.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return e, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *fakeEnrollmentRepo) ListByUser(ctx context.Context, userID string) ([]*store.Enrollment, error) {
	ids := make([]int, 0, len(r.enrollments))
	for id, e := range r.enrollments {
		if e.UserID == userID {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	out := make([]*store.Enrollment, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.enrollments[id])
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) TouchActivity(ctx context.Context, id int) error {
	e, ok := r.enrollments[id]
	if !ok {
		return store.ErrNotFound
	}
	e.LastActivity = time.Now()
	return nil
}

func (r *fakeEnrollmentRepo) UpdateCachedProgress(ctx context.Context, id int, overallProgress float64, subjectsCompleted, chaptersCompleted, totalStudyTimeMinutes int) error {
	e, ok := r.enrollments[id]
	if !ok {
		return store.ErrNotFound
	}
	e.OverallProgress = overallProgress
	e.SubjectsCompleted = subjectsCompleted
	e.ChaptersCompleted = chaptersCompleted
	e.TotalStudyTimeMinutes = totalStudyTimeMinutes
	return nil
}

func (r *fakeEnrollmentRepo) SetPreferredDifficulty(ctx context.Context, id int, difficulty string) error {
	e, ok := r.enrollments[id]
	if !ok {
		return store.ErrNotFound
	}
	e.PreferredDifficulty = difficulty
	return nil
}

type fakeProgressRepo struct {
	entries map[int]*store.ProgressEntry
	nextID  int
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{entries: make(map[int]*store.ProgressEntry), nextID: 1}
}

func (r *fakeProgressRepo) GetOrCreate(ctx context.Context, userID string, subjectID int, chapterID *int, initialStatus string) (*store.ProgressEntry, bool, error) {
	for _, p := range r.entries {
		if p.UserID != userID || p.SubjectID != subjectID {
			continue
		}
		if (p.ChapterID == nil) != (chapterID == nil) {
			continue
		}
		if p.ChapterID == nil || *p.ChapterID == *chapterID {
			return p, false, nil
		}
	}
	p := &store.ProgressEntry{
		ID:           r.nextID,
		UserID:       userID,
		SubjectID:    subjectID,
		ChapterID:    chapterID,
		Status:       initialStatus,
		LastAccessed: time.Now(),
	}
	r.nextID++
	r.entries[p.ID] = p
	return p, true, nil
}

func (r *fakeProgressRepo) ForUserSubject(ctx context.Context, userID string, subjectID int) ([]*store.ProgressEntry, error) {
	var out []*store.ProgressEntry
	for _, p := range r.entries {
		if p.UserID == userID && p.SubjectID == subjectID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProgressRepo) ForUserCourse(ctx context.Context, userID string, courseID int) ([]*store.ProgressEntry, error) {
	var out []*store.ProgressEntry
	for _, p := range r.entries {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProgressRepo) Touch(ctx context.Context, id int) error {
	p, ok := r.entries[id]
	if !ok {
		return store.ErrNotFound
	}
	p.LastAccessed = time.Now()
	p.SessionsCount++
	return nil
}

func (r *fakeProgressRepo) MarkCompleted(ctx context.Context, id int, completionPercentage float64) error {
	p, ok := r.entries[id]
	if !ok {
		return store.ErrNotFound
	}
	now := time.Now()
	p.Status = "completed"
	p.CompletionPercentage = completionPercentage
	p.CompletedAt = &now
	return nil
}

func (r *fakeProgressRepo) IncQuestionsAsked(ctx context.Context, id int) error {
	p, ok := r.entries[id]
	if !ok {
		return store.ErrNotFound
	}
	p.QuestionsAsked++
	return nil
}

func (r *fakeProgressRepo) IncConceptsBookmarked(ctx context.Context, id int) error {
	p, ok := r.entries[id]
	if !ok {
		return store.ErrNotFound
	}
	p.ConceptsBookmarked++
	return nil
}

func (r *fakeProgressRepo) AddStudyTime(ctx context.Context, id, minutes int) error {
	p, ok := r.entries[id]
	if !ok {
		return store.ErrNotFound
	}
	p.TimeSpentMinutes += minutes
	return nil
}

func (r *fakeProgressRepo) ApplyQuizOutcome(ctx context.Context, id int, avgScore float64, masteryLevel string, struggleAreas []string) error {
	p, ok := r.entries[id]
	if !ok {
		return store.ErrNotFound
	}
	p.QuizzesTaken++
	p.AvgQuizScore = avgScore
	p.MasteryLevel = masteryLevel
	p.StruggleAreas = struggleAreas
	return nil
}

type fakeQuizRepo struct {
	records []*store.QuizRecord
	nextID  int
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{nextID: 1}
}

func (r *fakeQuizRepo) Create(ctx context.Context, in store.QuizInput) (*store.QuizRecord, error) {
	rec := &store.QuizRecord{
		ID:               r.nextID,
		UserID:           in.UserID,
		ChapterID:        in.ChapterID,
		Title:            in.Title,
		QuizType:         in.QuizType,
		SubjectDomain:    in.SubjectDomain,
		Score:            in.Score,
		TotalQuestions:   in.TotalQuestions,
		Percentage:       in.Percentage,
		DifficultyLevel:  in.DifficultyLevel,
		TimeTakenSeconds: in.TimeTakenSeconds,
		ConceptMastery:   in.ConceptMastery,
		WeakConcepts:     in.WeakConcepts,
		Questions:        in.Questions,
		UserAnswers:      in.UserAnswers,
		CompletedAt:      time.Now(),
	}
	r.nextID++
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *fakeQuizRepo) ForUser(ctx context.Context, userID string, limit int) ([]*store.QuizRecord, error) {
	var out []*store.QuizRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeQuizRepo) ForUserChapter(ctx context.Context, userID string, chapterID int) ([]*store.QuizRecord, error) {
	var out []*store.QuizRecord
	for _, rec := range r.records {
		if rec.UserID == userID && rec.ChapterID == chapterID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeQuizRepo) ForUserSubject(ctx context.Context, userID string, subjectID int) ([]*store.QuizRecord, error) {
	return r.ForUser(ctx, userID, 0)
}

func (r *fakeQuizRepo) ForUserCourse(ctx context.Context, userID string, courseID int) ([]*store.QuizRecord, error) {
	return r.ForUser(ctx, userID, 0)
}

func (r *fakeQuizRepo) LowScoresForUserCourse(ctx context.Context, userID string, courseID int, threshold float64) ([]*store.QuizRecord, error) {
	var out []*store.QuizRecord
	for _, rec := range r.records {
		if rec.UserID == userID && rec.Percentage < threshold {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeBookmarkRepo struct {
	bookmarks map[int]*store.Bookmark
	chapters  *fakeChapterRepo
	subjects  *fakeSubjectRepo
	courses   *fakeCourseRepo
	nextID    int
}

func newFakeBookmarkRepo(chapters *fakeChapterRepo, subjects *fakeSubjectRepo, courses *fakeCourseRepo) *fakeBookmarkRepo {
	return &fakeBookmarkRepo{
		bookmarks: make(map[int]*store.Bookmark),
		chapters:  chapters,
		subjects:  subjects,
		courses:   courses,
		nextID:    1,
	}
}

func (r *fakeBookmarkRepo) Create(ctx context.Context, in store.BookmarkInput) (*store.Bookmark, error) {
	for _, b := range r.bookmarks {
		if b.UserID == in.UserID && b.ChapterID == in.ChapterID && b.ContentBlockIndex == in.ContentBlockIndex {
			return nil, store.ErrDuplicate
		}
	}
	b := &store.Bookmark{
		ID:                       r.nextID,
		UserID:                   in.UserID,
		ChapterID:                in.ChapterID,
		ContentBlockIndex:        in.ContentBlockIndex,
		ContentBlockType:         in.ContentBlockType,
		Title:                    in.Title,
		Note:                     in.Note,
		Tags:                     in.Tags,
		Reason:                   in.Reason,
		DifficultyWhenBookmarked: in.DifficultyWhenBookmarked,
		CreatedAt:                time.Now(),
	}
	r.nextID++
	r.bookmarks[b.ID] = b
	return b, nil
}

func (r *fakeBookmarkRepo) Delete(ctx context.Context, id int, userID string) error {
	b, ok := r.bookmarks[id]
	if !ok || b.UserID != userID {
		return store.ErrNotFound
	}
	delete(r.bookmarks, id)
	return nil
}

func (r *fakeBookmarkRepo) ListByUser(ctx context.Context, userID string) ([]*store.BookmarkView, error) {
	ids := make([]int, 0, len(r.bookmarks))
	for id, b := range r.bookmarks {
		if b.UserID == userID {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	out := make([]*store.BookmarkView, 0, len(ids))
	for _, id := range ids {
		b := r.bookmarks[id]
		view := &store.BookmarkView{Bookmark: *b}
		if ch, err := r.chapters.Get(ctx, b.ChapterID); err == nil {
			view.ChapterTitle = ch.Title
			view.ChapterNumber = ch.ChapterNumber
			if sub, err := r.subjects.Get(ctx, ch.SubjectID); err == nil {
				view.SubjectName = sub.Name
				view.SubjectDomain = sub.Domain
				view.CourseID = sub.CourseID
				if course, err := r.courses.Get(ctx, sub.CourseID); err == nil {
					view.CourseName = course.Name
				}
			}
		}
		out = append(out, view)
	}
	return out, nil
}

func (r *fakeBookmarkRepo) ListByUserChapter(ctx context.Context, userID string, chapterID int) ([]*store.Bookmark, error) {
	var out []*store.Bookmark
	for _, b := range r.bookmarks {
		if b.UserID == userID && b.ChapterID == chapterID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeSessionRepo struct {
	sessions map[int]*store.Session
	nextID   int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[int]*store.Session), nextID: 1}
}

func (r *fakeSessionRepo) Start(ctx context.Context, in store.SessionStartInput) (*store.Session, error) {
	for _, s := range r.sessions {
		if s.UserID == in.UserID && s.SessionEnd == nil {
			now := time.Now()
			s.SessionEnd = &now
		}
	}
	s := &store.Session{
		ID:           r.nextID,
		UserID:       in.UserID,
		SessionStart: time.Now(),
		CourseID:     in.CourseID,
		SubjectID:    in.SubjectID,
		ChapterID:    in.ChapterID,
	}
	r.nextID++
	r.sessions[s.ID] = s
	return s, nil
}

func (r *fakeSessionRepo) Get(ctx context.Context, id int) (*store.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return s, nil
}

func (r *fakeSessionRepo) Active(ctx context.Context, userID string) (*store.Session, error) {
	for _, s := range r.sessions {
		if s.UserID == userID && s.SessionEnd == nil {
			return s, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *fakeSessionRepo) AppendActivity(ctx context.Context, id int, a store.Activity) (*store.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	s.Activities = append(s.Activities, a)
	return s, nil
}

func (r *fakeSessionRepo) End(ctx context.Context, id, durationMinutes int, engagement, focus, effectiveness float64) (*store.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	now := time.Now()
	s.SessionEnd = &now
	s.DurationMinutes = &durationMinutes
	s.EngagementScore = engagement
	return s, nil
}

func (r *fakeSessionRepo) RecentByUser(ctx context.Context, userID string, limit int) ([]*store.Session, error) {
	ids := make([]int, 0, len(r.sessions))
	for id, s := range r.sessions {
		if s.UserID == userID {
			ids = append(ids, id)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))
	out := make([]*store.Session, 0, len(ids))
	for _, id := range ids {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, r.sessions[id])
	}
	return out, nil
}
