package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/studium/internal/domain"
	"github.com/abhisek/studium/internal/llm"
	"github.com/abhisek/studium/internal/logger"
)

// Service is the AI content gateway. It turns uploaded course material
// into adaptive learning content and answers study questions, steering
// every prompt with domain configuration.
type Service struct {
	providers llm.Providers
	registry  *domain.Registry
	templates *TemplateStore
	cfg       Config
	log       *logger.Logger
}

// NewService creates the content gateway.
func NewService(providers llm.Providers, registry *domain.Registry, templates *TemplateStore, cfg Config, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		providers: providers,
		registry:  registry,
		templates: templates,
		cfg:       cfg,
		log:       log,
	}
}

// Registry exposes the domain registry backing this service.
func (s *Service) Registry() *domain.Registry { return s.registry }

// Templates exposes the prompt template store.
func (s *Service) Templates() *TemplateStore { return s.templates }

// AnalyzeSubjectDomain profiles a subject to determine the learning
// approach for its content.
func (s *Service) AnalyzeSubjectDomain(ctx context.Context, subjectName, courseDescription string) (*SubjectProfile, error) {
	ctx = llm.WithPurpose(ctx, "subject_analysis")

	prompt := fmt.Sprintf(`Analyze this academic subject to determine the best learning approach and content transformation strategy:

Subject: %s
Description: %s

Focus on understanding what makes this subject unique and how students in this field typically learn best.`,
		subjectName, courseDescription)

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:      SubjectProfileSchema,
		MaxTokens:   s.cfg.AnalysisMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.providers.Fast.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("subject analysis: %w", err)
	}

	var profile SubjectProfile
	if err := json.Unmarshal(resp.Content, &profile); err != nil {
		return nil, fmt.Errorf("parse subject analysis: %w", err)
	}
	if profile.SubjectDomain == "" {
		profile.SubjectDomain = "general"
	}
	return &profile, nil
}

// ExtractChapters transforms an uploaded document into structured
// adaptive chapters. The subject is profiled first so the extraction
// prompt matches the domain; if profiling fails a generic profile is
// used and extraction still proceeds.
func (s *Service) ExtractChapters(ctx context.Context, file llm.FilePart, subjectName, courseDescription string, existing []domain.BookContext) (*ExtractionResult, error) {
	profile, err := s.AnalyzeSubjectDomain(ctx, subjectName, courseDescription)
	if err != nil {
		s.log.Warn("subject analysis failed, using generic profile", "subject", subjectName, "error", err)
		profile = genericProfile()
	}

	cfg := s.registry.Get(profile.SubjectDomain)

	params := map[string]string{
		"subject_name":                 subjectName,
		"subject_domain":               profile.SubjectDomain,
		"subject_domain_upper":         domain.Upper(profile.SubjectDomain),
		"course_description":           courseDescription,
		"learning_style":               orDefault(profile.LearningStyle, "mixed"),
		"complexity_level":             orDefault(profile.ComplexityLevel, "intermediate"),
		"content_types":                joinOrDefault(profile.ContentTypes, "concepts, examples"),
		"career_applications":          joinOrDefault(profile.CareerApplications, "professional development"),
		"visualization_types":          joinOrDefault(profile.VisualizationTypes, "charts"),
		"existing_books_context":       domain.FormatExistingBooks(existing),
		"domain_specific_instructions": orDefault(cfg.ExtractionInstructions, "Focus on clear explanations with practical examples"),
		"content_block_templates":      domain.BlockTemplates(profile.SubjectDomain, profile.ContentTypes),
		"content_block_guidelines":     cfg.ExtractionInstructions,
	}

	result, err := s.runExtraction(ctx, file, params)
	if err != nil {
		return nil, err
	}
	result.Profile = profile
	return result, nil
}

// ExtractWithIntelligence transforms a document using the full course
// context assembled by EnhanceCourse, producing curriculum-integrated
// content instead of standalone chapters.
func (s *Service) ExtractWithIntelligence(ctx context.Context, file llm.FilePart, subjectName string, ec *EnhancedContext) (*ExtractionResult, error) {
	if ec == nil {
		return nil, fmt.Errorf("extract with intelligence: missing course context")
	}

	syn := ec.Synthesis
	subjectDomain := orDefault(syn.SubjectDomain, "general")
	cfg := s.registry.Get(subjectDomain)

	overview := subMap(ec.Intelligence, "course_overview")
	courseDescription := syn.CourseName + " - " + stringValue(overview, "official_description")

	params := map[string]string{
		"subject_name":                 subjectName,
		"subject_domain":               subjectDomain,
		"subject_domain_upper":         domain.Upper(subjectDomain),
		"course_description":           courseDescription,
		"learning_style":               orDefault(syn.Approach, "mixed"),
		"complexity_level":             orDefault(syn.AcademicLevel, "intermediate"),
		"content_types":                joinOrDefault(cfg.ContentTypes, "concepts, examples"),
		"career_applications":          strings.Join(syn.CareerFocus, ", "),
		"visualization_types":          joinOrDefault(cfg.VisualizationTypes, "charts"),
		"existing_books_context":       buildCourseContextPrompt(ec),
		"domain_specific_instructions": orDefault(cfg.ExtractionInstructions, "Focus on clear explanations"),
		"content_block_templates":      domain.BlockTemplates(subjectDomain, cfg.ContentTypes),
		"content_block_guidelines":     buildContentGuidelines(cfg, syn),
	}

	result, err := s.runExtraction(ctx, file, params)
	if err != nil {
		return nil, err
	}
	result.Profile = s.profileFromSynthesis(syn)
	result.Intelligence = ec.Intelligence
	result.Metadata = map[string]any{
		"subject_domain_detected":    subjectDomain,
		"course_context_used":        true,
		"web_intelligence_available": len(ec.Intelligence) > 0,
		"processing_timestamp":       time.Now().Format(time.RFC3339),
	}
	return result, nil
}

func (s *Service) runExtraction(ctx context.Context, file llm.FilePart, params map[string]string) (*ExtractionResult, error) {
	ctx = llm.WithPurpose(ctx, "pdf_extraction")

	template, err := s.templates.Load(promptExtraction)
	if err != nil {
		return nil, fmt.Errorf("load extraction template: %w", err)
	}

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: formatTemplate(template, params)},
		},
		Files:       []llm.FilePart{file},
		MaxTokens:   s.cfg.ExtractionMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.providers.Extraction.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("document extraction: %w", err)
	}

	var result ExtractionResult
	if err := json.Unmarshal([]byte(cleanJSONResponse(string(resp.Content))), &result); err != nil {
		return nil, fmt.Errorf("parse extraction response: %w", err)
	}
	if len(result.Chapters) == 0 {
		return nil, fmt.Errorf("document extraction: %w", &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("no chapters extracted")})
	}
	return &result, nil
}

// AnswerQuestion answers a study question grounded in chapter context.
func (s *Service) AnswerQuestion(ctx context.Context, question, chapterContext, subjectDomain string) (string, error) {
	ctx = llm.WithPurpose(ctx, "qa")

	template, err := s.templates.Load(promptQA)
	if err != nil {
		return "", fmt.Errorf("load qa template: %w", err)
	}
	cfg := s.registry.Get(subjectDomain)

	prompt := formatTemplate(template, map[string]string{
		"subject_domain":             subjectDomain,
		"subject_domain_upper":       domain.Upper(subjectDomain),
		"context":                    chapterContext,
		"question":                   question,
		"domain_response_guidelines": orDefault(cfg.QAGuidelines, "Provide clear, helpful answers"),
	})

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   s.cfg.ChatMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.providers.Fast.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("answer question: %w", err)
	}
	return string(resp.Content), nil
}

// GenerateQuiz builds a practice quiz from a chapter summary.
func (s *Service) GenerateQuiz(ctx context.Context, summary, subjectDomain, difficulty string) (*Quiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz")

	template, err := s.templates.Load(promptQuiz)
	if err != nil {
		return nil, fmt.Errorf("load quiz template: %w", err)
	}
	cfg := s.registry.Get(subjectDomain)

	prompt := formatTemplate(template, map[string]string{
		"subject_domain":           subjectDomain,
		"subject_domain_upper":     domain.Upper(subjectDomain),
		"difficulty_level":         difficulty,
		"content_summary":          summary,
		"domain_quiz_requirements": orDefault(cfg.QuizRequirements, "Create comprehensive questions"),
	})

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:      QuizSchema,
		MaxTokens:   s.cfg.GenerationMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.providers.Fast.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	var quiz Quiz
	if err := json.Unmarshal(resp.Content, &quiz); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}
	if len(quiz.Questions) == 0 {
		return nil, fmt.Errorf("generate quiz: %w", &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("no questions generated")})
	}
	return &quiz, nil
}

// GenerateVisualization produces a renderable chart configuration for
// a described concept.
func (s *Service) GenerateVisualization(ctx context.Context, description, dataContext, subjectDomain string) (*Visualization, error) {
	ctx = llm.WithPurpose(ctx, "visualization")

	template, err := s.templates.Load(promptVisualization)
	if err != nil {
		return nil, fmt.Errorf("load visualization template: %w", err)
	}
	cfg := s.registry.Get(subjectDomain)

	prompt := formatTemplate(template, map[string]string{
		"subject_domain":                     subjectDomain,
		"description":                        description,
		"data_context":                       dataContext,
		"domain_visualization_guidelines":    orDefault(cfg.VisualizationGuidelines, "Create clear, informative visualizations"),
		"visualization_type_recommendations": fmt.Sprintf("For %s: %s", subjectDomain, joinOrDefault(cfg.VisualizationTypes, "charts")),
	})

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:      VisualizationSchema,
		MaxTokens:   s.cfg.GenerationMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.providers.Fast.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate visualization: %w", err)
	}

	var viz Visualization
	if err := json.Unmarshal(resp.Content, &viz); err != nil {
		return nil, fmt.Errorf("parse visualization response: %w", err)
	}
	return &viz, nil
}

// SimplifyConcept rewrites a concept at a target difficulty and
// learning style.
func (s *Service) SimplifyConcept(ctx context.Context, conceptText, difficulty, subjectDomain, learningStyle string) (string, error) {
	ctx = llm.WithPurpose(ctx, "simplify")

	template, err := s.templates.Load(promptSimplification)
	if err != nil {
		return "", fmt.Errorf("load simplification template: %w", err)
	}
	cfg := s.registry.Get(subjectDomain)

	prompt := formatTemplate(template, map[string]string{
		"subject_domain":                   subjectDomain,
		"subject_domain_upper":             domain.Upper(subjectDomain),
		"difficulty_level":                 difficulty,
		"learning_style":                   learningStyle,
		"concept_text":                     conceptText,
		"domain_simplification_guidelines": orDefault(cfg.SimplificationGuidelines, "Use clear, simple language with examples"),
		"difficulty_adaptations":           domain.DifficultyAdaptation(difficulty),
		"learning_style_adaptations":       domain.LearningStyleAdaptation(learningStyle),
	})

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   s.cfg.ChatMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.providers.Fast.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("simplify concept: %w", err)
	}
	return string(resp.Content), nil
}

// GatherCourseIntelligence researches an academic course and returns a
// structured intelligence report tagged with the matching domain
// configuration.
func (s *Service) GatherCourseIntelligence(ctx context.Context, courseName, university, courseCode string) (map[string]any, error) {
	ctx = llm.WithPurpose(ctx, "course_intelligence")

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildIntelligencePrompt(courseName, university, courseCode)},
		},
		MaxTokens:   s.cfg.AnalysisMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.providers.Fast.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("course intelligence: %w", err)
	}

	var intel map[string]any
	if err := json.Unmarshal([]byte(cleanJSONResponse(string(resp.Content))), &intel); err != nil {
		return nil, fmt.Errorf("parse course intelligence: %w", err)
	}

	detected := stringValue(subMap(intel, "subject_domain_analysis"), "primary_domain")
	if detected == "" {
		detected = "general"
	}
	intel["domain_configuration"] = s.registry.Get(detected)
	intel["intelligence_source"] = "ai_research"
	intel["generated_at"] = time.Now().Format(time.RFC3339)

	return intel, nil
}

// EnhanceCourse combines student input with researched course
// intelligence. When research fails, a keyword-based fallback context
// is used so course creation never blocks on the AI backend.
func (s *Service) EnhanceCourse(ctx context.Context, courseName, university string, studentInput map[string]any) (*EnhancedContext, error) {
	courseCode := stringValue(studentInput, "course_code")

	intel, err := s.GatherCourseIntelligence(ctx, courseName, university, courseCode)
	if err != nil {
		s.log.Warn("course intelligence failed, using fallback context", "course", courseName, "error", err)
		intel = s.fallbackCourseContext(courseName, university)
	}

	if studentInput == nil {
		studentInput = map[string]any{}
	}
	if _, ok := studentInput["course_name"]; !ok {
		studentInput["course_name"] = courseName
	}
	if _, ok := studentInput["university"]; !ok {
		studentInput["university"] = university
	}

	return &EnhancedContext{
		StudentProvided: studentInput,
		Intelligence:    intel,
		Synthesis:       synthesize(studentInput, intel),
	}, nil
}

// TestConnection checks that the AI backend responds.
func (s *Service) TestConnection(ctx context.Context) *ConnectionStatus {
	ctx = llm.WithPurpose(ctx, "connection_test")

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Respond with 'AI service working' if you can read this."},
		},
		MaxTokens:   64,
		Temperature: 0,
	}

	resp, err := s.providers.Fast.Generate(ctx, req)
	if err != nil {
		return &ConnectionStatus{
			Status:     "error",
			Message:    fmt.Sprintf("AI service connection failed: %v", err),
			Configured: true,
		}
	}

	text := string(resp.Content)
	if len(text) > 50 {
		text = text[:50] + "..."
	}

	return &ConnectionStatus{
		Status:       "success",
		Message:      "AI service connected successfully",
		Configured:   true,
		TestResponse: text,
		AvailableFunctions: []string{
			"PDF processing",
			"Question answering",
			"Quiz generation",
			"Concept simplification",
			"Visualization generation",
			"Course intelligence gathering",
		},
	}
}

// Stats reports gateway capabilities and configuration.
func (s *Service) Stats() ServiceStats {
	return ServiceStats{
		Configured:       true,
		ExtractionModel:  s.providers.Extraction.ModelID(),
		FastModel:        s.providers.Fast.ModelID(),
		SupportedDomains: s.registry.Keys(),
		PromptTemplates:  s.templates.List(),
		GeneratedAt:      time.Now(),
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
