package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/studium/internal/logger"
	"github.com/abhisek/studium/internal/store"
)

// Stores bundles the repositories the aggregator reads and writes.
type Stores struct {
	Courses     store.CourseRepo
	Subjects    store.SubjectRepo
	Chapters    store.ChapterRepo
	Enrollments store.EnrollmentRepo
	Progress    store.ProgressRepo
	Quizzes     store.QuizRepo
}

// Service computes progress aggregates, grades quizzes, and maintains
// the denormalized content counters.
type Service struct {
	st  Stores
	log *logger.Logger
}

// NewService creates the progress aggregator.
func NewService(st Stores, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{st: st, log: log}
}

// CourseProgress aggregates one user's progress across a course and
// refreshes the cached columns on the enrollment row.
func (s *Service) CourseProgress(ctx context.Context, userID string, courseID int) (*CourseSummary, error) {
	enrollment, err := s.st.Enrollments.Get(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, fmt.Errorf("load enrollment: %w", err)
	}

	entries, err := s.st.Progress.ForUserCourse(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("load progress entries: %w", err)
	}

	totalSubjects, err := s.st.Subjects.CountByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("count subjects: %w", err)
	}
	totalChapters, err := s.st.Chapters.CountByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("count chapters: %w", err)
	}

	completedSubjects := make(map[int]bool)
	completedChapters := 0
	totalMinutes := 0
	for _, e := range entries {
		totalMinutes += e.TimeSpentMinutes
		if e.Status != "completed" {
			continue
		}
		if e.ChapterID == nil {
			completedSubjects[e.SubjectID] = true
		} else {
			completedChapters++
		}
	}

	quizzes, err := s.st.Quizzes.ForUserCourse(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("load quiz results: %w", err)
	}
	avgQuiz := 0.0
	if len(quizzes) > 0 {
		sum := 0.0
		for _, q := range quizzes {
			sum += q.Percentage
		}
		avgQuiz = sum / float64(len(quizzes))
	}

	overall := 0.0
	if totalChapters > 0 {
		overall = float64(completedChapters) / float64(totalChapters) * 100
		if overall > 100 {
			overall = 100
		}
	}

	if err := s.st.Enrollments.UpdateCachedProgress(ctx, enrollment.ID, overall, len(completedSubjects), completedChapters, totalMinutes); err != nil {
		s.log.Warn("refresh cached enrollment progress failed", "enrollment_id", enrollment.ID, "error", err)
	}

	return &CourseSummary{
		CourseID:            courseID,
		EnrollmentDate:      enrollment.EnrollmentDate,
		OverallProgress:     round1(overall),
		SubjectsCompleted:   len(completedSubjects),
		TotalSubjects:       totalSubjects,
		ChaptersCompleted:   completedChapters,
		TotalChapters:       totalChapters,
		TotalStudyTimeHours: round1(float64(totalMinutes) / 60),
		AverageQuizScore:    round1(avgQuiz),
		QuizzesTaken:        len(quizzes),
		LastActivity:        enrollment.LastActivity,
	}, nil
}

// Recommendations builds an adaptive study plan from the user's pace,
// weak domains, and remaining chapters.
func (s *Service) Recommendations(ctx context.Context, userID string, courseID int) (*Recommendations, error) {
	entries, err := s.st.Progress.ForUserCourse(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("load progress entries: %w", err)
	}

	totalMinutes := 0
	completed := 0
	completedChapterIDs := make([]int, 0)
	for _, e := range entries {
		totalMinutes += e.TimeSpentMinutes
		if e.Status == "completed" {
			completed++
			if e.ChapterID != nil {
				completedChapterIDs = append(completedChapterIDs, *e.ChapterID)
			}
		}
	}

	avgTimePerChapter := 30.0
	if completed > 0 {
		avgTimePerChapter = float64(totalMinutes) / float64(completed)
	}
	if avgTimePerChapter <= 0 {
		avgTimePerChapter = 30
	}

	lowScores, err := s.st.Quizzes.LowScoresForUserCourse(ctx, userID, courseID, 70)
	if err != nil {
		return nil, fmt.Errorf("load low quiz scores: %w", err)
	}
	struggleDomains := distinctDomains(lowScores)

	nextRefs, err := s.st.Chapters.NextUncompleted(ctx, courseID, completedChapterIDs, 3)
	if err != nil {
		return nil, fmt.Errorf("next chapters: %w", err)
	}
	nextChapters := make([]NextChapter, len(nextRefs))
	for i, ref := range nextRefs {
		nextChapters[i] = NextChapter{ID: ref.ID, Title: ref.Title, Subject: ref.SubjectName}
	}

	difficulty, err := s.recommendDifficulty(ctx, entries)
	if err != nil {
		return nil, err
	}

	return &Recommendations{
		StudySchedule: StudySchedule{
			RecommendedMinutesPerDay: clampInt(int(avgTimePerChapter*0.7), 30, 120),
			OptimalStudyTimes:        []string{"morning", "evening"},
			BreakIntervals:           25,
		},
		ContentFocus: ContentFocus{
			ReviewSubjects:       firstN(struggleDomains, 3),
			NextChapters:         nextChapters,
			DifficultyAdjustment: difficulty,
		},
		LearningStrategies: StrategiesFor(struggleDomains),
		ProgressGoals: ProgressGoals{
			WeeklyChapters:  clampInt(int(7*60/avgTimePerChapter), 1, 5),
			TargetQuizScore: 85,
			MasteryFocus:    firstN(struggleDomains, 2),
		},
	}, nil
}

func (s *Service) recommendDifficulty(ctx context.Context, entries []*store.ProgressEntry) (string, error) {
	estimates := make(map[int]int)
	for _, e := range entries {
		if e.ChapterID == nil {
			continue
		}
		if _, ok := estimates[*e.ChapterID]; ok {
			continue
		}
		ch, err := s.st.Chapters.Get(ctx, *e.ChapterID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return "", fmt.Errorf("load chapter estimate: %w", err)
		}
		estimates[*e.ChapterID] = ch.EstimatedStudyTime
	}
	return RecommendDifficulty(entries, estimates), nil
}

// RecommendDifficulty compares actual time spent against chapter
// estimates. Consistently overshooting suggests easing off; finishing
// fast suggests harder content. Rows without a positive estimate are
// skipped.
func RecommendDifficulty(entries []*store.ProgressEntry, estimates map[int]int) string {
	ratioSum := 0.0
	usable := 0
	for _, e := range entries {
		if e.ChapterID == nil {
			continue
		}
		est := estimates[*e.ChapterID]
		if est <= 0 {
			continue
		}
		ratioSum += float64(e.TimeSpentMinutes) / float64(est)
		usable++
	}
	if usable == 0 {
		return "intermediate"
	}

	avgRatio := ratioSum / float64(usable)
	switch {
	case avgRatio > 1.5:
		return "beginner"
	case avgRatio < 0.7:
		return "advanced"
	default:
		return "intermediate"
	}
}

// DetailedProgress returns the course summary plus per-subject mastery
// breakdown.
func (s *Service) DetailedProgress(ctx context.Context, userID string, courseID int) (*DetailedProgress, error) {
	summary, err := s.CourseProgress(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	subjects, err := s.st.Subjects.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("load subjects: %w", err)
	}

	perSubject := make([]SubjectProgress, 0, len(subjects))
	for _, subj := range subjects {
		entries, err := s.st.Progress.ForUserSubject(ctx, userID, subj.ID)
		if err != nil {
			return nil, fmt.Errorf("load subject progress: %w", err)
		}
		completedChapters := 0
		for _, e := range entries {
			if e.Status == "completed" && e.ChapterID != nil {
				completedChapters++
			}
		}

		chapters, err := s.st.Chapters.ListBySubject(ctx, subj.ID)
		if err != nil {
			return nil, fmt.Errorf("load chapters: %w", err)
		}
		progressPct := 0.0
		if len(chapters) > 0 {
			progressPct = float64(completedChapters) / float64(len(chapters)) * 100
			if progressPct > 100 {
				progressPct = 100
			}
		}

		quizzes, err := s.st.Quizzes.ForUserSubject(ctx, userID, subj.ID)
		if err != nil {
			return nil, fmt.Errorf("load subject quizzes: %w", err)
		}
		avgQuiz := 0.0
		if len(quizzes) > 0 {
			sum := 0.0
			for _, q := range quizzes {
				sum += q.Percentage
			}
			avgQuiz = sum / float64(len(quizzes))
		}

		perSubject = append(perSubject, SubjectProgress{
			SubjectID:   subj.ID,
			Name:        subj.Name,
			Progress:    int(progressPct),
			Mastery:     subjectMastery(progressPct, avgQuiz),
			QuizAverage: int(avgQuiz),
			Domain:      subj.Domain,
		})
	}

	return &DetailedProgress{
		OverallProgress:   summary.OverallProgress,
		CompletedChapters: summary.ChaptersCompleted,
		TotalStudyHours:   summary.TotalStudyTimeHours,
		AverageQuizScore:  summary.AverageQuizScore,
		SubjectProgress:   perSubject,
	}, nil
}

// subjectMastery combines chapter completion and quiz performance into
// a mastery label.
func subjectMastery(progressPct, avgQuiz float64) string {
	switch {
	case progressPct >= 90 && avgQuiz >= 85:
		return "expert"
	case progressPct >= 70 && avgQuiz >= 75:
		return "proficient"
	case progressPct >= 50 || avgQuiz >= 60:
		return "developing"
	default:
		return "novice"
	}
}

// DomainPerformance groups all of the user's quiz scores by subject
// domain.
func (s *Service) DomainPerformance(ctx context.Context, userID string) ([]DomainPerformance, error) {
	quizzes, err := s.st.Quizzes.ForUser(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("load quiz history: %w", err)
	}

	order := make([]string, 0)
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, q := range quizzes {
		domain := q.SubjectDomain
		if domain == "" {
			domain = "general"
		}
		if _, seen := counts[domain]; !seen {
			order = append(order, domain)
		}
		sums[domain] += q.Percentage
		counts[domain]++
	}

	out := make([]DomainPerformance, 0, len(order))
	for _, domain := range order {
		out = append(out, DomainPerformance{
			Domain:  domain,
			Count:   counts[domain],
			Average: round1(sums[domain] / float64(counts[domain])),
		})
	}
	return out, nil
}

// ChapterStats summarizes one user's activity in a chapter.
func (s *Service) ChapterStats(ctx context.Context, userID string, chapterID int) (*ChapterStats, error) {
	quizzes, err := s.st.Quizzes.ForUserChapter(ctx, userID, chapterID)
	if err != nil {
		return nil, fmt.Errorf("load chapter quizzes: %w", err)
	}
	avgQuiz := 0.0
	if len(quizzes) > 0 {
		sum := 0.0
		for _, q := range quizzes {
			sum += q.Percentage
		}
		avgQuiz = sum / float64(len(quizzes))
	}

	stats := &ChapterStats{
		Status:       "not_started",
		QuizzesTaken: len(quizzes),
		AvgQuizScore: round1(avgQuiz),
	}

	ch, err := s.st.Chapters.Get(ctx, chapterID)
	if err != nil {
		return nil, fmt.Errorf("load chapter: %w", err)
	}
	entries, err := s.st.Progress.ForUserSubject(ctx, userID, ch.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	for _, e := range entries {
		if e.ChapterID != nil && *e.ChapterID == chapterID {
			stats.Status = e.Status
			stats.TimeSpent = e.TimeSpentMinutes
			stats.QuestionsAsked = e.QuestionsAsked
			break
		}
	}
	return stats, nil
}

// ApplyQuizResult records a graded attempt against the user's chapter
// progress row: attempt count, rolling average, mastery label, and the
// struggle-area union.
func (s *Service) ApplyQuizResult(ctx context.Context, entry *store.ProgressEntry, result GradeResult) error {
	avg := RollAverage(entry.AvgQuizScore, result.Percentage)
	mastery := MasteryLevel(avg)
	struggles := MergeStruggleAreas(entry.StruggleAreas, result.WeakConcepts)

	if err := s.st.Progress.ApplyQuizOutcome(ctx, entry.ID, avg, mastery, struggles); err != nil {
		return fmt.Errorf("apply quiz outcome: %w", err)
	}
	entry.QuizzesTaken++
	entry.AvgQuizScore = avg
	entry.MasteryLevel = mastery
	entry.StruggleAreas = struggles
	return nil
}

func distinctDomains(quizzes []*store.QuizRecord) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, q := range quizzes {
		if q.SubjectDomain == "" || seen[q.SubjectDomain] {
			continue
		}
		seen[q.SubjectDomain] = true
		out = append(out, q.SubjectDomain)
	}
	return out
}

func firstN(in []string, n int) []string {
	if len(in) <= n {
		return in
	}
	return in[:n]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

