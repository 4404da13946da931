package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/studium/internal/config"
	"github.com/abhisek/studium/internal/domain"
	"github.com/abhisek/studium/internal/gateway"
	"github.com/abhisek/studium/internal/llm"
	"github.com/abhisek/studium/internal/logger"
	"github.com/abhisek/studium/internal/progress"
	"github.com/abhisek/studium/internal/sessions"
	"github.com/abhisek/studium/internal/store"
)

const testUser = "test-user"

type testEnv struct {
	router      *gin.Engine
	courses     *fakeCourseRepo
	subjects    *fakeSubjectRepo
	chapters    *fakeChapterRepo
	enrollments *fakeEnrollmentRepo
	progress    *fakeProgressRepo
	quizzes     *fakeQuizRepo
	bookmarks   *fakeBookmarkRepo
	sessions    *fakeSessionRepo
	extraction  *llm.MockProvider
	fast        *llm.MockProvider
}

func newTestEnv(extraction, fast *llm.MockProvider) *testEnv {
	chapters := newFakeChapterRepo()
	subjects := newFakeSubjectRepo(chapters)
	courses := newFakeCourseRepo()

	env := &testEnv{
		courses:     courses,
		subjects:    subjects,
		chapters:    chapters,
		enrollments: newFakeEnrollmentRepo(),
		progress:    newFakeProgressRepo(),
		quizzes:     newFakeQuizRepo(),
		bookmarks:   newFakeBookmarkRepo(chapters, subjects, courses),
		sessions:    newFakeSessionRepo(),
		extraction:  extraction,
		fast:        fast,
	}

	ai := gateway.NewService(
		llm.Providers{Extraction: extraction, Fast: fast},
		domain.NewRegistry(),
		gateway.NewTemplateStore(""),
		gateway.DefaultConfig(),
		logger.Nop(),
	)
	learn := progress.NewService(progress.Stores{
		Courses:     env.courses,
		Subjects:    env.subjects,
		Chapters:    env.chapters,
		Enrollments: env.enrollments,
		Progress:    env.progress,
		Quizzes:     env.quizzes,
	}, nil)
	track := sessions.NewService(env.sessions, nil)

	cfg := config.Default()
	cfg.Mode = "test"
	cfg.UploadDir = "" // skip persisting uploads in tests
	srv := New(cfg, Repos{
		Courses:     env.courses,
		Subjects:    env.subjects,
		Chapters:    env.chapters,
		Enrollments: env.enrollments,
		Progress:    env.progress,
		Quizzes:     env.quizzes,
		Bookmarks:   env.bookmarks,
	}, ai, learn, track, nil)

	env.router = srv.Router()
	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: userCookie, Value: testUser})

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, w.Body.String())
	}
	return out
}

func (env *testEnv) seedCourse(t *testing.T) *store.Course {
	t.Helper()
	course, err := env.courses.Create(context.Background(), store.CourseInput{
		Name:          "Graduate Economics",
		AcademicLevel: "masters",
	})
	if err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return course
}

func (env *testEnv) seedChapter(t *testing.T, courseID int) (*store.Subject, *store.Chapter) {
	t.Helper()
	subject, err := env.subjects.CreateWithChapters(context.Background(), store.SubjectInput{
		CourseID: courseID,
		Name:     "Microeconomics",
		Domain:   "economics",
	}, []store.ChapterInput{{
		ChapterNumber:      1,
		Title:              "Supply and Demand",
		IntroSummary:       map[string]any{"summary": "Markets clear at equilibrium"},
		ContentBlocks:      []map[string]any{{"type": "concept_explanation", "title": "Equilibrium"}},
		DifficultyLevel:    "intermediate",
		EstimatedStudyTime: 30,
	}})
	if err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	chapters, err := env.chapters.ListBySubject(context.Background(), subject.ID)
	if err != nil || len(chapters) != 1 {
		t.Fatalf("seed chapter: %v", err)
	}
	return subject, chapters[0]
}

func TestHealth(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider(), llm.NewMockProvider())

	w := env.do(t, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decode(t, w)
	if body["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", body["status"])
	}
}

func TestCreateCourse(t *testing.T) {
	// Empty fast queue: intelligence research falls back internally.
	env := newTestEnv(llm.NewMockProvider(), llm.NewMockProvider())

	w := env.do(t, http.MethodPost, "/course/create", gin.H{
		"course_name":    "Graduate Economics",
		"institution":    "MIT",
		"academic_level": "masters",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201\nbody: %s", w.Code, w.Body.String())
	}

	course, err := env.courses.GetByName(context.Background(), "Graduate Economics")
	if err != nil {
		t.Fatalf("course not created: %v", err)
	}
	if course.EstimatedStudyHours != 90 {
		t.Errorf("estimated hours = %d, want 90", course.EstimatedStudyHours)
	}
	if _, err := env.enrollments.Get(context.Background(), testUser, course.ID); err != nil {
		t.Errorf("creator not enrolled: %v", err)
	}

	// Same name again is rejected.
	w = env.do(t, http.MethodPost, "/course/create", gin.H{"course_name": "Graduate Economics"})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate status = %d, want 409", w.Code)
	}
}

func TestCreateCourseRequiresName(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider(), llm.NewMockProvider())
	w := env.do(t, http.MethodPost, "/course/create", gin.H{"description": "no name"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestViewCourseAutoEnrolls(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider(), llm.NewMockProvider())
	course := env.seedCourse(t)

	w := env.do(t, http.MethodGet, fmt.Sprintf("/course/%d", course.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}

	if _, err := env.enrollments.Get(context.Background(), testUser, course.ID); err != nil {
		t.Errorf("viewer not enrolled: %v", err)
	}
	if _, err := env.sessions.Active(context.Background(), testUser); err != nil {
		t.Errorf("no study session started: %v", err)
	}
}

func TestViewCourseNotFound(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider(), llm.NewMockProvider())
	w := env.do(t, http.MethodGet, "/course/99", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestViewChapterTracksProgress(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider(), llm.NewMockProvider())
	course := env.seedCourse(t)
	subject, chapter := env.seedChapter(t, course.ID)

	path := fmt.Sprintf("/course/%d/subject/%d/chapter/%d", course.ID, subject.ID, chapter.ID)

	w := env.do(t, http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}

	entries, _ := env.progress.ForUserSubject(context.Background(), testUser, subject.ID)
	if len(entries) != 1 {
		t.Fatalf("progress entries = %d, want 1", len(entries))
	}
	if entries[0].SessionsCount != 0 {
		t.Errorf("sessions count after first view = %d, want 0", entries[0].SessionsCount)
	}

	// Second view touches the existing row.
	env.do(t, http.MethodGet, path, nil)
	if entries[0].SessionsCount != 1 {
		t.Errorf("sessions count after second view = %d, want 1", entries[0].SessionsCount)
	}
}

func TestViewChapterWrongSubject(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider(), llm.NewMockProvider())
	course := env.seedCourse(t)
	_, chapter := env.seedChapter(t, course.ID)

	w := env.do(t, http.MethodGet, fmt.Sprintf("/course/%d/subject/42/chapter/%d", course.ID, chapter.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestAskQuestion(t *testing.T) {
	fast := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Price rises until the market clears.")})
	env := newTestEnv(llm.NewMockProvider(), fast)
	course := env.seedCourse(t)
	subject, chapter := env.seedChapter(t, course.ID)

	w := env.do(t, http.MethodPost, fmt.Sprintf("/ask/%d", chapter.ID), gin.H{
		"question": "Why does price rise when demand rises?",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if !strings.Contains(body["answer"].(string), "market clears") {
		t.Errorf("answer = %v", body["answer"])
	}

	entries, _ := env.progress.ForUserSubject(context.Background(), testUser, subject.ID)
	if len(entries) != 1 || entries[0].QuestionsAsked != 1 {
		t.Errorf("questions asked not counted: %+v", entries)
	}
}

func TestAskQuestionRequiresText(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider(), llm.NewMockProvider())
	course := env.seedCourse(t)
	_, chapter := env.seedChapter(t, course.ID)

	w := env.do(t, http.MethodPost, fmt.Sprintf("/ask/%d", chapter.ID), gin.H{"question": "  "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func quizJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Supply and Demand Quiz",
		"difficulty": "intermediate",
		"questions": [
			{
				"question": "What happens to price when demand rises?",
				"options": ["Falls", "Rises", "Unchanged", "Undefined"],
				"correct_answer_index": 1,
				"explanation": "Higher demand shifts the curve right.",
				"question_type": "conceptual",
				"concept_tested": "equilibrium"
			},
			{
				"question": "What is a price floor?",
				"options": ["A minimum price", "A maximum price", "A tax", "A subsidy"],
				"correct_answer_index": 0,
				"explanation": "Floors bind from below.",
				"question_type": "conceptual",
				"concept_tested": "price_controls"
			}
		]
	}`)
}

func TestGenerateQuiz(t *testing.T) {
	fast := llm.NewMockProvider(llm.MockResponse{Content: quizJSON()})
	env := newTestEnv(llm.NewMockProvider(), fast)
	course := env.seedCourse(t)
	_, chapter := env.seedChapter(t, course.ID)

	w := env.do(t, http.MethodGet, fmt.Sprintf("/generate-quiz/%d", chapter.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	quiz := body["quiz"].(map[string]any)
	if quiz["title"] != "Supply and Demand Quiz" {
		t.Errorf("quiz title = %v", quiz["title"])
	}
	if body["difficulty"] != "intermediate" {
		t.Errorf("difficulty = %v, want intermediate", body["difficulty"])
	}
}

func TestSubmitQuiz(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider(), llm.NewMockProvider())
	course := env.seedCourse(t)
	subject, chapter := env.seedChapter(t, course.ID)

	var quiz gateway.Quiz
	if err := json.Unmarshal(quizJSON(), &quiz); err != nil {
		t.Fatalf("unmarshal quiz: %v", err)
	}

	first, second := 1, 1 // first correct, second wrong
	w := env.do(t, http.MethodPost, fmt.Sprintf("/submit-quiz/%d", chapter.ID), gin.H{
		"quiz":    quiz,
		"answers": []*int{&first, &second},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["score"].(float64) != 1 || body["total"].(float64) != 2 {
		t.Errorf("score = %v/%v, want 1/2", body["score"], body["total"])
	}
	if body["percentage"].(float64) != 50 {
		t.Errorf("percentage = %v, want 50", body["percentage"])
	}

	records, _ := env.quizzes.ForUserChapter(context.Background(), testUser, chapter.ID)
	if len(records) != 1 {
		t.Fatalf("quiz records = %d, want 1", len(records))
	}
	if records[0].SubjectDomain != "economics" {
		t.Errorf("subject domain = %q, want economics", records[0].SubjectDomain)
	}

	entries, _ := env.progress.ForUserSubject(context.Background(), testUser, subject.ID)
	if len(entries) != 1 {
		t.Fatalf("progress entries = %d, want 1", len(entries))
	}
	if entries[0].QuizzesTaken != 1 || entries[0].AvgQuizScore != 50 {
		t.Errorf("progress = %d quizzes avg %v, want 1 quizzes avg 50",
			entries[0].QuizzesTaken, entries[0].AvgQuizScore)
	}
	if entries[0].MasteryLevel != "novice" {
		t.Errorf("mastery = %q, want novice", entries[0].MasteryLevel)
	}
}

func TestBookmarkLifecycle(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider(), llm.NewMockProvider())
	course := env.seedCourse(t)
	_, chapter := env.seedChapter(t, course.ID)

	add := gin.H{
		"chapter_id":          chapter.ID,
		"content_block_index": 0,
		"title":               "Equilibrium",
	}
	w := env.do(t, http.MethodPost, "/api/bookmark/add", add)
	if w.Code != http.StatusOK {
		t.Fatalf("add status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	bookmarkID := int(body["bookmark_id"].(float64))

	// Duplicate is rejected.
	w = env.do(t, http.MethodPost, "/api/bookmark/add", add)
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate status = %d, want 400", w.Code)
	}

	w = env.do(t, http.MethodGet, "/api/bookmark/count", nil)
	if got := decode(t, w)["count"].(float64); got != 1 {
		t.Errorf("count = %v, want 1", got)
	}

	w = env.do(t, http.MethodGet, "/bookmarks", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", w.Code)
	}
	listing := decode(t, w)
	if listing["total"].(float64) != 1 {
		t.Errorf("total = %v, want 1", listing["total"])
	}
	byCourse := listing["bookmarks"].(map[string]any)
	if _, ok := byCourse["Graduate Economics"]; !ok {
		t.Errorf("bookmarks not grouped by course: %v", byCourse)
	}

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/bookmark/remove/%d", bookmarkID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove status = %d, want 200", w.Code)
	}
	w = env.do(t, http.MethodGet, "/api/bookmark/count", nil)
	if got := decode(t, w)["count"].(float64); got != 0 {
		t.Errorf("count after remove = %v, want 0", got)
	}
}

func TestMarkChapterComplete(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider(), llm.NewMockProvider())
	course := env.seedCourse(t)
	subject, chapter := env.seedChapter(t, course.ID)

	w := env.do(t, http.MethodPost, fmt.Sprintf("/mark-chapter-complete/%d", chapter.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}

	entries, _ := env.progress.ForUserSubject(context.Background(), testUser, subject.ID)
	if len(entries) != 1 {
		t.Fatalf("progress entries = %d, want 1", len(entries))
	}
	if entries[0].Status != "completed" || entries[0].CompletionPercentage != 100 {
		t.Errorf("progress = %q %v%%, want completed 100%%",
			entries[0].Status, entries[0].CompletionPercentage)
	}
}

func TestEndStudySession(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider(), llm.NewMockProvider())
	course := env.seedCourse(t)

	// No session yet.
	w := env.do(t, http.MethodPost, "/api/end-study-session", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if msg := decode(t, w)["message"]; msg != "no active session" {
		t.Errorf("message = %v, want no active session", msg)
	}

	// Viewing a course starts one.
	env.do(t, http.MethodGet, fmt.Sprintf("/course/%d", course.ID), nil)

	w = env.do(t, http.MethodPost, "/api/end-study-session", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}
	if _, err := env.sessions.Active(context.Background(), testUser); err == nil {
		t.Error("session still active after ending")
	}
}

func TestUploadRejectsNonPDF(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider(), llm.NewMockProvider())
	course := env.seedCourse(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("subject_name", "Notes")
	fw, _ := mw.CreateFormFile("pdf_file", "notes.txt")
	fw.Write([]byte("plain text"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/course/%d/upload", course.ID), &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: userCookie, Value: testUser})
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400\nbody: %s", w.Code, w.Body.String())
	}
}

func extractionJSON() json.RawMessage {
	return json.RawMessage(`{
		"subject_name": "Microeconomics",
		"preface": {"summary": "Intro text"},
		"overall_summary": {"summary": "The whole book"},
		"chapters": [
			{
				"title": "Supply and Demand",
				"intro_summary": {"summary": "Markets clear at equilibrium"},
				"content_blocks": [
					{"type": "concept_explanation", "title": "Equilibrium"},
					{"type": "interactive_visualization", "title": "Curves"}
				],
				"chapter_metadata": {"difficulty_level": "advanced", "estimated_study_time": 45}
			}
		]
	}`)
}

func TestUploadPDF(t *testing.T) {
	// Empty fast queue: course research falls back, extraction still runs.
	extraction := llm.NewMockProvider(llm.MockResponse{Content: extractionJSON()})
	env := newTestEnv(extraction, llm.NewMockProvider())
	course := env.seedCourse(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("subject_name", "Microeconomics")
	fw, _ := mw.CreateFormFile("pdf_file", "micro.pdf")
	fw.Write([]byte("%PDF-1.4 fake"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/course/%d/upload", course.ID), &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: userCookie, Value: testUser})
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201\nbody: %s", w.Code, w.Body.String())
	}

	subjects, _ := env.subjects.ListByCourse(context.Background(), course.ID)
	if len(subjects) != 1 {
		t.Fatalf("subjects = %d, want 1", len(subjects))
	}
	subject := subjects[0]
	if subject.Name != "Microeconomics" {
		t.Errorf("subject name = %q", subject.Name)
	}

	chapters, _ := env.chapters.ListBySubject(context.Background(), subject.ID)
	if len(chapters) != 1 {
		t.Fatalf("chapters = %d, want 1", len(chapters))
	}
	ch := chapters[0]
	if ch.DifficultyLevel != "advanced" || ch.EstimatedStudyTime != 45 {
		t.Errorf("chapter metadata = %q/%d, want advanced/45", ch.DifficultyLevel, ch.EstimatedStudyTime)
	}
	if ch.Counts.Concepts != 1 || ch.Counts.Visualizations != 1 {
		t.Errorf("block counts = %+v", ch.Counts)
	}

	// Rollup reached the subject and course counters.
	if subject.TotalChapters != 1 || subject.EstimatedReadTime != 45 {
		t.Errorf("subject stats = %d chapters / %d min", subject.TotalChapters, subject.EstimatedReadTime)
	}
	if course.TotalSubjects != 1 {
		t.Errorf("course subjects = %d, want 1", course.TotalSubjects)
	}
}
