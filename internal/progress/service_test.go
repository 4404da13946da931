package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/studium/internal/store"
)

func TestCourseProgressNotEnrolled(t *testing.T) {
	st, _, _, _, _, _, _ := newFakeStores()
	svc := NewService(st, nil)

	_, err := svc.CourseProgress(context.Background(), "u1", 1)
	if !errors.Is(err, ErrNotEnrolled) {
		t.Fatalf("expected ErrNotEnrolled, got %v", err)
	}
}

func TestCourseProgress(t *testing.T) {
	st, _, subjects, chapters, enrollments, progressRepo, quizzes := newFakeStores()

	enrollments.enrollment = &store.Enrollment{
		ID: 1, UserID: "u1", CourseID: 1,
		EnrollmentDate: time.Now().Add(-72 * time.Hour),
		LastActivity:   time.Now(),
	}
	subjects.subjects = []*store.Subject{
		{ID: 10, CourseID: 1, Name: "Micro"},
		{ID: 11, CourseID: 1, Name: "Macro"},
	}
	chapters.chapters = []*store.Chapter{
		{ID: 100, SubjectID: 10}, {ID: 101, SubjectID: 10},
		{ID: 102, SubjectID: 11}, {ID: 103, SubjectID: 11},
	}
	progressRepo.entries = []*store.ProgressEntry{
		{ID: 1, SubjectID: 10, ChapterID: nil, Status: "completed", TimeSpentMinutes: 10},
		{ID: 2, SubjectID: 10, ChapterID: intp(100), Status: "completed", TimeSpentMinutes: 40},
		{ID: 3, SubjectID: 10, ChapterID: intp(101), Status: "in_progress", TimeSpentMinutes: 20},
	}
	quizzes.quizzes = []*store.QuizRecord{
		{ChapterID: 100, Percentage: 80, SubjectDomain: "economics"},
		{ChapterID: 101, Percentage: 60, SubjectDomain: "economics"},
	}

	summary, err := NewService(st, nil).CourseProgress(context.Background(), "u1", 1)
	if err != nil {
		t.Fatal(err)
	}

	if summary.SubjectsCompleted != 1 || summary.TotalSubjects != 2 {
		t.Errorf("subjects: got %d/%d", summary.SubjectsCompleted, summary.TotalSubjects)
	}
	if summary.ChaptersCompleted != 1 || summary.TotalChapters != 4 {
		t.Errorf("chapters: got %d/%d", summary.ChaptersCompleted, summary.TotalChapters)
	}
	if summary.OverallProgress != 25 {
		t.Errorf("expected 25%% overall, got %v", summary.OverallProgress)
	}
	if summary.TotalStudyTimeHours != 1.2 {
		t.Errorf("expected 1.2 study hours, got %v", summary.TotalStudyTimeHours)
	}
	if summary.AverageQuizScore != 70 {
		t.Errorf("expected quiz average 70, got %v", summary.AverageQuizScore)
	}
	if summary.QuizzesTaken != 2 {
		t.Errorf("expected 2 quizzes, got %d", summary.QuizzesTaken)
	}

	if len(enrollments.cached) != 1 || enrollments.cached[0] != 25 {
		t.Errorf("expected cached progress refresh to 25, got %v", enrollments.cached)
	}
}

func TestCourseProgressZeroDenominators(t *testing.T) {
	st, _, _, _, enrollments, _, _ := newFakeStores()
	enrollments.enrollment = &store.Enrollment{ID: 1, UserID: "u1", CourseID: 1}

	summary, err := NewService(st, nil).CourseProgress(context.Background(), "u1", 1)
	if err != nil {
		t.Fatal(err)
	}
	if summary.OverallProgress != 0 || summary.AverageQuizScore != 0 || summary.TotalStudyTimeHours != 0 {
		t.Errorf("expected all-zero summary, got %+v", summary)
	}
}

func TestRecommendations(t *testing.T) {
	st, _, _, chapters, _, progressRepo, quizzes := newFakeStores()

	// One completed chapter at 200 minutes: slow pace.
	progressRepo.entries = []*store.ProgressEntry{
		{ID: 1, SubjectID: 10, ChapterID: intp(100), Status: "completed", TimeSpentMinutes: 200},
	}
	chapters.chapters = []*store.Chapter{
		{ID: 100, SubjectID: 10, EstimatedStudyTime: 30},
	}
	chapters.next = []store.ChapterRef{
		{ID: 101, Title: "Elasticity", SubjectID: 10, SubjectName: "Micro"},
	}
	quizzes.quizzes = []*store.QuizRecord{
		{ChapterID: 100, Percentage: 55, SubjectDomain: "economics"},
		{ChapterID: 100, Percentage: 95, SubjectDomain: "economics"},
	}

	recs, err := NewService(st, nil).Recommendations(context.Background(), "u1", 1)
	if err != nil {
		t.Fatal(err)
	}

	// 0.7 * 200 = 140, clamped to 120.
	if recs.StudySchedule.RecommendedMinutesPerDay != 120 {
		t.Errorf("expected 120 daily minutes, got %d", recs.StudySchedule.RecommendedMinutesPerDay)
	}
	// 7*60/200 = 2.1 -> 2 weekly chapters.
	if recs.ProgressGoals.WeeklyChapters != 2 {
		t.Errorf("expected 2 weekly chapters, got %d", recs.ProgressGoals.WeeklyChapters)
	}
	if recs.ContentFocus.DifficultyAdjustment != "beginner" {
		t.Errorf("slow pace should suggest beginner, got %q", recs.ContentFocus.DifficultyAdjustment)
	}
	if len(recs.ContentFocus.ReviewSubjects) != 1 || recs.ContentFocus.ReviewSubjects[0] != "economics" {
		t.Errorf("expected economics review subject, got %v", recs.ContentFocus.ReviewSubjects)
	}
	if len(recs.ContentFocus.NextChapters) != 1 || recs.ContentFocus.NextChapters[0].Subject != "Micro" {
		t.Errorf("unexpected next chapters %v", recs.ContentFocus.NextChapters)
	}
	if len(recs.LearningStrategies) != 3 {
		t.Errorf("expected economics strategies, got %v", recs.LearningStrategies)
	}
	if recs.ProgressGoals.TargetQuizScore != 85 {
		t.Errorf("expected target 85, got %d", recs.ProgressGoals.TargetQuizScore)
	}
}

func TestRecommendationsNoHistory(t *testing.T) {
	st, _, _, _, _, _, _ := newFakeStores()

	recs, err := NewService(st, nil).Recommendations(context.Background(), "u1", 1)
	if err != nil {
		t.Fatal(err)
	}
	// Default 30-minute pace: 0.7*30=21 clamps to 30; 7*60/30=14 clamps to 5.
	if recs.StudySchedule.RecommendedMinutesPerDay != 30 {
		t.Errorf("expected 30 daily minutes, got %d", recs.StudySchedule.RecommendedMinutesPerDay)
	}
	if recs.ProgressGoals.WeeklyChapters != 5 {
		t.Errorf("expected 5 weekly chapters, got %d", recs.ProgressGoals.WeeklyChapters)
	}
	if recs.ContentFocus.DifficultyAdjustment != "intermediate" {
		t.Errorf("expected intermediate, got %q", recs.ContentFocus.DifficultyAdjustment)
	}
	if len(recs.LearningStrategies) != len(genericStrategies) {
		t.Errorf("expected generic strategies, got %v", recs.LearningStrategies)
	}
}

func TestRecommendDifficulty(t *testing.T) {
	if got := RecommendDifficulty(nil, nil); got != "intermediate" {
		t.Errorf("nil entries: got %q", got)
	}

	subjectOnly := []*store.ProgressEntry{{SubjectID: 1}}
	if got := RecommendDifficulty(subjectOnly, nil); got != "intermediate" {
		t.Errorf("subject-level rows only: got %q", got)
	}

	fast := []*store.ProgressEntry{
		{ChapterID: intp(1), TimeSpentMinutes: 10},
		{ChapterID: intp(2), TimeSpentMinutes: 15},
	}
	estimates := map[int]int{1: 30, 2: 30}
	if got := RecommendDifficulty(fast, estimates); got != "advanced" {
		t.Errorf("fast pace: got %q", got)
	}

	slow := []*store.ProgressEntry{{ChapterID: intp(1), TimeSpentMinutes: 60}}
	if got := RecommendDifficulty(slow, map[int]int{1: 30}); got != "beginner" {
		t.Errorf("slow pace: got %q", got)
	}

	// Zero estimates contribute nothing.
	zeroEst := []*store.ProgressEntry{{ChapterID: intp(1), TimeSpentMinutes: 500}}
	if got := RecommendDifficulty(zeroEst, map[int]int{1: 0}); got != "intermediate" {
		t.Errorf("zero estimate rows skipped: got %q", got)
	}
}

func TestDomainPerformance(t *testing.T) {
	st, _, _, _, _, _, quizzes := newFakeStores()
	quizzes.quizzes = []*store.QuizRecord{
		{Percentage: 80, SubjectDomain: "economics"},
		{Percentage: 60, SubjectDomain: "economics"},
		{Percentage: 90, SubjectDomain: ""},
	}

	perf, err := NewService(st, nil).DomainPerformance(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(perf) != 2 {
		t.Fatalf("expected 2 domains, got %d", len(perf))
	}
	if perf[0].Domain != "economics" || perf[0].Average != 70 || perf[0].Count != 2 {
		t.Errorf("unexpected economics row %+v", perf[0])
	}
	if perf[1].Domain != "general" || perf[1].Average != 90 {
		t.Errorf("blank domain should land in general: %+v", perf[1])
	}
}

func TestSubjectMastery(t *testing.T) {
	cases := []struct {
		progress, quiz float64
		want           string
	}{
		{95, 90, "expert"},
		{90, 85, "expert"},
		{80, 80, "proficient"},
		{70, 75, "proficient"},
		{55, 0, "developing"},
		{0, 65, "developing"},
		{10, 10, "novice"},
	}
	for _, c := range cases {
		if got := subjectMastery(c.progress, c.quiz); got != c.want {
			t.Errorf("subjectMastery(%v, %v) = %q, want %q", c.progress, c.quiz, got, c.want)
		}
	}
}
