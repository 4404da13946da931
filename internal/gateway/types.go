package gateway

import "time"

// SubjectProfile is the analysis of a subject that drives content
// adaptation downstream.
type SubjectProfile struct {
	SubjectDomain        string   `json:"subject_domain"`
	LearningStyle        string   `json:"learning_style"`
	ComplexityLevel      string   `json:"complexity_level"`
	KeyCharacteristics   []string `json:"key_characteristics"`
	ContentTypes         []string `json:"content_types"`
	CareerApplications   []string `json:"career_applications"`
	VisualizationTypes   []string `json:"visualization_types"`
	AssessmentMethods    []string `json:"assessment_methods"`
	RealWorldConnections []string `json:"real_world_connections"`
	DifficultyFactors    []string `json:"difficulty_factors"`
	RecommendedExamples  []string `json:"recommended_examples,omitempty"`
}

// ExtractedChapter is one chapter produced by document extraction.
type ExtractedChapter struct {
	Title         string           `json:"title"`
	IntroSummary  map[string]any   `json:"intro_summary"`
	ContentBlocks []map[string]any `json:"content_blocks"`
	Metadata      map[string]any   `json:"chapter_metadata"`
}

// ExtractionResult is the full output of transforming one document.
type ExtractionResult struct {
	SubjectName    string             `json:"subject_name"`
	Preface        map[string]any     `json:"preface"`
	OverallSummary map[string]any     `json:"overall_summary"`
	Chapters       []ExtractedChapter `json:"chapters"`

	// Profile is the subject analysis used to steer the extraction.
	Profile *SubjectProfile `json:"-"`

	// Intelligence is set when extraction ran with course intelligence.
	Intelligence map[string]any `json:"-"`
	Metadata     map[string]any `json:"-"`
}

// QuizQuestion is one generated multiple choice question.
type QuizQuestion struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
	Explanation        string   `json:"explanation"`
	QuestionType       string   `json:"question_type"`
	ConceptTested      string   `json:"concept_tested"`
}

// Quiz is a generated practice quiz.
type Quiz struct {
	Title      string         `json:"title"`
	Difficulty string         `json:"difficulty"`
	Questions  []QuizQuestion `json:"questions"`
}

// Visualization is a generated chart configuration ready for a
// client-side renderer.
type Visualization struct {
	Title               string         `json:"title"`
	VisualizationType   string         `json:"visualization_type"`
	Library             string         `json:"library"`
	Config              map[string]any `json:"config"`
	Description         string         `json:"description"`
	InterpretationGuide string         `json:"interpretation_guide"`
}

// EnhancedContext bundles student-provided course details with
// researched course intelligence and the synthesis of both.
type EnhancedContext struct {
	StudentProvided map[string]any `json:"student_provided"`
	Intelligence    map[string]any `json:"web_intelligence"`
	Synthesis       Synthesis      `json:"synthesis"`
}

// Synthesis is the merged course context used to steer extraction.
type Synthesis struct {
	CourseName        string   `json:"course_name"`
	University        string   `json:"university"`
	AcademicLevel     string   `json:"academic_level"`
	LearningObjectives []string `json:"learning_objectives"`
	CareerFocus       []string `json:"career_focus"`
	SubjectDomain     string   `json:"subject_domain"`
	Prerequisites     []string `json:"prerequisites"`
	FollowUpCourses   []string `json:"follow_up_courses"`
	Approach          string   `json:"methodological_approach"`
	DifficultyLevel   string   `json:"difficulty_level"`
}

// ConnectionStatus reports the health of the AI backend.
type ConnectionStatus struct {
	Status             string   `json:"status"`
	Message            string   `json:"message"`
	Configured         bool     `json:"configured"`
	TestResponse       string   `json:"test_response,omitempty"`
	AvailableFunctions []string `json:"available_functions,omitempty"`
}

// ServiceStats summarizes gateway capabilities and configuration.
type ServiceStats struct {
	Configured       bool      `json:"configured"`
	ExtractionModel  string    `json:"extraction_model"`
	FastModel        string    `json:"fast_model"`
	SupportedDomains []string  `json:"supported_domains"`
	PromptTemplates  []string  `json:"prompt_templates"`
	GeneratedAt      time.Time `json:"generated_at"`
}
