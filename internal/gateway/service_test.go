package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/studium/internal/domain"
	"github.com/abhisek/studium/internal/llm"
	"github.com/abhisek/studium/internal/logger"
)

func validProfileJSON() json.RawMessage {
	return json.RawMessage(`{
		"subject_domain": "economics",
		"learning_style": "theoretical",
		"complexity_level": "masters",
		"key_characteristics": ["analytical thinking"],
		"content_types": ["concepts", "charts"],
		"career_applications": ["economic analyst"],
		"visualization_types": ["charts"],
		"assessment_methods": ["multiple_choice"],
		"real_world_connections": ["policy analysis"],
		"difficulty_factors": ["mathematical complexity"]
	}`)
}

func validExtractionJSON() json.RawMessage {
	return json.RawMessage(`{
		"subject_name": "Microeconomics",
		"preface": {"summary": "Intro text"},
		"overall_summary": {"summary": "The whole book"},
		"chapters": [
			{
				"title": "Supply and Demand",
				"intro_summary": {"summary": "Markets clear at equilibrium"},
				"content_blocks": [{"type": "concept", "title": "Equilibrium"}],
				"chapter_metadata": {"difficulty": "intermediate", "estimated_study_time": 45}
			}
		]
	}`)
}

func validQuizJSON() json.RawMessage {
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
			}
		]
	}`)
}

func newTestService(extraction, fast *llm.MockProvider) *Service {
	return NewService(
		llm.Providers{Extraction: extraction, Fast: fast},
		domain.NewRegistry(),
		NewTemplateStore(""),
		DefaultConfig(),
		logger.Nop(),
	)
}

func TestAnalyzeSubjectDomain(t *testing.T) {
	fast := llm.NewMockProvider(llm.MockResponse{Content: validProfileJSON()})
	svc := newTestService(llm.NewMockProvider(), fast)

	profile, err := svc.AnalyzeSubjectDomain(context.Background(), "Microeconomics", "Graduate micro course")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.SubjectDomain != "economics" {
		t.Errorf("expected economics, got %q", profile.SubjectDomain)
	}
	if profile.ComplexityLevel != "masters" {
		t.Errorf("expected masters, got %q", profile.ComplexityLevel)
	}

	if len(fast.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(fast.Calls))
	}
	if fast.Calls[0].Schema == nil {
		t.Error("expected schema to be set for subject analysis")
	}
	if !strings.Contains(fast.Calls[0].Messages[0].Content, "Microeconomics") {
		t.Error("expected subject name in prompt")
	}
}

func TestExtractChapters(t *testing.T) {
	extraction := llm.NewMockProvider(llm.MockResponse{Content: validExtractionJSON()})
	fast := llm.NewMockProvider(llm.MockResponse{Content: validProfileJSON()})
	svc := newTestService(extraction, fast)

	file := llm.FilePart{Name: "micro.pdf", MIMEType: "application/pdf", Data: []byte("%PDF-1.4")}
	result, err := svc.ExtractChapters(context.Background(), file, "Microeconomics", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Chapters) != 1 {
		t.Fatalf("expected 1 chapter, got %d", len(result.Chapters))
	}
	if result.Chapters[0].Title != "Supply and Demand" {
		t.Errorf("unexpected chapter title %q", result.Chapters[0].Title)
	}
	if result.Profile == nil || result.Profile.SubjectDomain != "economics" {
		t.Error("expected analyzed profile attached to result")
	}

	if len(extraction.Calls) != 1 {
		t.Fatalf("expected 1 extraction call, got %d", len(extraction.Calls))
	}
	call := extraction.Calls[0]
	if len(call.Files) != 1 || call.Files[0].Name != "micro.pdf" {
		t.Error("expected file attached to extraction request")
	}
	prompt := call.Messages[0].Content
	if !strings.Contains(prompt, "ECONOMICS") {
		t.Error("expected domain in prompt")
	}
	if strings.Contains(prompt, "{subject_name}") {
		t.Error("expected placeholders to be substituted")
	}
}

func TestExtractChaptersAnalysisFailureFallsBack(t *testing.T) {
	extraction := llm.NewMockProvider(llm.MockResponse{Content: validExtractionJSON()})
	fast := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	svc := newTestService(extraction, fast)

	file := llm.FilePart{Name: "notes.pdf", MIMEType: "application/pdf", Data: []byte("%PDF-1.4")}
	result, err := svc.ExtractChapters(context.Background(), file, "Notes", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Profile.SubjectDomain != "general" {
		t.Errorf("expected generic profile fallback, got %q", result.Profile.SubjectDomain)
	}
}

func TestExtractChaptersFencedResponse(t *testing.T) {
	fenced := "```json\n" + string(validExtractionJSON()) + "\n```"
	extraction := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)})
	fast := llm.NewMockProvider(llm.MockResponse{Content: validProfileJSON()})
	svc := newTestService(extraction, fast)

	file := llm.FilePart{Name: "micro.pdf", MIMEType: "application/pdf", Data: []byte("%PDF-1.4")}
	result, err := svc.ExtractChapters(context.Background(), file, "Microeconomics", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Chapters) != 1 {
		t.Fatalf("expected chapters from fenced response, got %d", len(result.Chapters))
	}
}

func TestAnswerQuestion(t *testing.T) {
	fast := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Demand shifts right, price rises.")})
	svc := newTestService(llm.NewMockProvider(), fast)

	answer, err := svc.AnswerQuestion(context.Background(), "What happens to price?", "Chapter context here", "economics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "Demand shifts right, price rises." {
		t.Errorf("unexpected answer %q", answer)
	}

	prompt := fast.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Chapter context here") {
		t.Error("expected context in prompt")
	}
	if !strings.Contains(prompt, "What happens to price?") {
		t.Error("expected question in prompt")
	}
}

func TestGenerateQuiz(t *testing.T) {
	fast := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	svc := newTestService(llm.NewMockProvider(), fast)

	quiz, err := svc.GenerateQuiz(context.Background(), "Markets clear at equilibrium", "economics", "intermediate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quiz.Title != "Supply and Demand Quiz" {
		t.Errorf("unexpected title %q", quiz.Title)
	}
	if len(quiz.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(quiz.Questions))
	}
	if quiz.Questions[0].CorrectAnswerIndex != 1 {
		t.Errorf("expected correct index 1, got %d", quiz.Questions[0].CorrectAnswerIndex)
	}
	if fast.Calls[0].Schema == nil {
		t.Error("expected quiz schema on request")
	}
}

func TestGenerateQuizEmptyQuestions(t *testing.T) {
	fast := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title": "Empty", "difficulty": "easy", "questions": []}`),
	})
	svc := newTestService(llm.NewMockProvider(), fast)

	_, err := svc.GenerateQuiz(context.Background(), "summary", "general", "beginner")
	if err == nil {
		t.Fatal("expected error for quiz with no questions")
	}
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Errorf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestGenerateVisualization(t *testing.T) {
	fast := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"title": "Supply and Demand Curves",
			"visualization_type": "line_chart",
			"library": "chartjs",
			"config": {"type": "line"},
			"description": "Equilibrium crossing point",
			"interpretation_guide": "Where curves cross, the market clears."
		}`),
	})
	svc := newTestService(llm.NewMockProvider(), fast)

	viz, err := svc.GenerateVisualization(context.Background(), "Show equilibrium", "price and quantity data", "economics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if viz.VisualizationType != "line_chart" {
		t.Errorf("unexpected type %q", viz.VisualizationType)
	}
	if viz.Config["type"] != "line" {
		t.Error("expected config payload preserved")
	}
}

func TestSimplifyConcept(t *testing.T) {
	fast := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Think of it like a seesaw.")})
	svc := newTestService(llm.NewMockProvider(), fast)

	out, err := svc.SimplifyConcept(context.Background(), "Equilibrium is where supply meets demand.", "beginner", "economics", "practical")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Think of it like a seesaw." {
		t.Errorf("unexpected output %q", out)
	}

	prompt := fast.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Equilibrium is where supply meets demand.") {
		t.Error("expected concept text in prompt")
	}
}

func TestGatherCourseIntelligence(t *testing.T) {
	fast := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"course_overview": {"official_description": "Graduate microeconomics", "academic_level": "masters"},
			"subject_domain_analysis": {"primary_domain": "economics", "methodological_approach": "theoretical"}
		}`),
	})
	svc := newTestService(llm.NewMockProvider(), fast)

	intel, err := svc.GatherCourseIntelligence(context.Background(), "Advanced Microeconomics", "MIT", "14.121")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intel["intelligence_source"] != "ai_research" {
		t.Error("expected ai_research source tag")
	}
	cfg, ok := intel["domain_configuration"].(domain.Config)
	if !ok {
		t.Fatal("expected domain configuration attached")
	}
	if cfg.Key != "economics" {
		t.Errorf("expected economics config, got %q", cfg.Key)
	}
}

func TestEnhanceCourseFallback(t *testing.T) {
	fast := llm.NewMockProvider(llm.MockResponse{Err: errors.New("research down")})
	svc := newTestService(llm.NewMockProvider(), fast)

	ec, err := svc.EnhanceCourse(context.Background(), "Principles of Macroeconomics", "State University", map[string]any{
		"academic_level": "undergraduate",
		"career_goals":   []string{"policy analyst"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ec.Intelligence["fallback"] != true {
		t.Error("expected fallback intelligence")
	}
	if ec.Synthesis.SubjectDomain != "economics" {
		t.Errorf("expected keyword-detected economics, got %q", ec.Synthesis.SubjectDomain)
	}
	if ec.Synthesis.AcademicLevel != "undergraduate" {
		t.Errorf("student academic level should win, got %q", ec.Synthesis.AcademicLevel)
	}
	if len(ec.Synthesis.CareerFocus) != 1 || ec.Synthesis.CareerFocus[0] != "policy analyst" {
		t.Errorf("student career goals should win, got %v", ec.Synthesis.CareerFocus)
	}
}

func TestExtractWithIntelligence(t *testing.T) {
	extraction := llm.NewMockProvider(llm.MockResponse{Content: validExtractionJSON()})
	svc := newTestService(extraction, llm.NewMockProvider())

	ec := &EnhancedContext{
		StudentProvided: map[string]any{"course_name": "Advanced Microeconomics"},
		Intelligence: map[string]any{
			"course_overview": map[string]any{"official_description": "Graduate micro"},
		},
		Synthesis: Synthesis{
			CourseName:    "Advanced Microeconomics",
			University:    "MIT",
			AcademicLevel: "masters",
			SubjectDomain: "economics",
			Approach:      "theoretical",
			CareerFocus:   []string{"economist"},
		},
	}

	file := llm.FilePart{Name: "micro.pdf", MIMEType: "application/pdf", Data: []byte("%PDF-1.4")}
	result, err := svc.ExtractWithIntelligence(context.Background(), file, "Microeconomics", ec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Metadata["course_context_used"] != true {
		t.Error("expected course context metadata")
	}
	if result.Profile.SubjectDomain != "economics" {
		t.Errorf("expected economics profile, got %q", result.Profile.SubjectDomain)
	}

	prompt := extraction.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "COURSE OVERVIEW:") {
		t.Error("expected course overview section in prompt")
	}
	if !strings.Contains(prompt, "LEARNING APPROACH:") {
		t.Error("expected learning approach section in prompt")
	}
}

func TestTestConnection(t *testing.T) {
	fast := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("AI service working")})
	svc := newTestService(llm.NewMockProvider(), fast)

	status := svc.TestConnection(context.Background())
	if status.Status != "success" {
		t.Fatalf("expected success, got %q (%s)", status.Status, status.Message)
	}
	if status.TestResponse != "AI service working" {
		t.Errorf("unexpected test response %q", status.TestResponse)
	}

	badSvc := newTestService(llm.NewMockProvider(), llm.NewMockProvider(llm.MockResponse{Err: errors.New("down")}))
	status = badSvc.TestConnection(context.Background())
	if status.Status != "error" {
		t.Errorf("expected error status, got %q", status.Status)
	}
}

func TestStats(t *testing.T) {
	svc := newTestService(llm.NewMockProvider(), llm.NewMockProvider())

	stats := svc.Stats()
	if stats.ExtractionModel != "mock" || stats.FastModel != "mock" {
		t.Errorf("expected mock models, got %q/%q", stats.ExtractionModel, stats.FastModel)
	}
	if len(stats.SupportedDomains) == 0 {
		t.Error("expected supported domains")
	}
	if len(stats.PromptTemplates) != 5 {
		t.Errorf("expected 5 embedded templates, got %d", len(stats.PromptTemplates))
	}
}
