package gateway

import (
	"strings"
)

// genericProfile is the subject profile used when domain analysis fails
// so extraction can still proceed.
func genericProfile() *SubjectProfile {
	return &SubjectProfile{
		SubjectDomain:        "general",
		LearningStyle:        "mixed",
		ComplexityLevel:      "intermediate",
		KeyCharacteristics:   []string{"conceptual understanding", "practical application"},
		ContentTypes:         []string{"concepts", "examples", "case_studies"},
		CareerApplications:   []string{"professional development"},
		VisualizationTypes:   []string{"charts", "diagrams"},
		AssessmentMethods:    []string{"multiple_choice", "case_analysis"},
		RealWorldConnections: []string{"industry applications"},
		DifficultyFactors:    []string{"abstract concepts", "complex relationships"},
	}
}

// fallbackDomainKeywords drive keyword-based domain detection when
// course intelligence is unavailable.
var fallbackDomainKeywords = []struct {
	domain   string
	keywords []string
}{
	{"economics", []string{"economics", "econometrics", "macro", "micro", "finance"}},
	{"computer_science", []string{"computer", "programming", "algorithms", "data", "software"}},
	{"mathematics", []string{"mathematics", "calculus", "algebra", "statistics", "math"}},
	{"psychology", []string{"psychology", "behavioral", "cognitive", "social"}},
	{"business", []string{"business", "management", "marketing", "strategy", "mba"}},
	{"engineering", []string{"engineering", "mechanical", "electrical", "civil"}},
	{"medicine", []string{"medicine", "medical", "anatomy", "physiology", "clinical"}},
}

// detectDomainFromName guesses a domain from a course name.
func detectDomainFromName(courseName string) string {
	lower := strings.ToLower(courseName)
	for _, entry := range fallbackDomainKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.domain
			}
		}
	}
	return "general"
}

// fallbackCourseContext builds a basic course intelligence payload when
// the research call fails.
func (s *Service) fallbackCourseContext(courseName, university string) map[string]any {
	detected := detectDomainFromName(courseName)
	cfg := s.registry.Get(detected)

	return map[string]any{
		"course_overview": map[string]any{
			"official_description": "Academic course in " + courseName,
			"learning_objectives":  toAnySlice(cfg.CareerApplications),
			"academic_level":       "masters",
			"difficulty_rating":    "7 - Graduate level course",
		},
		"subject_domain_analysis": map[string]any{
			"primary_domain":          detected,
			"methodological_approach": "mixed",
		},
		"career_applications": map[string]any{
			"primary_career_paths":  toAnySlice(cfg.CareerApplications),
			"industry_applications": toAnySlice(cfg.CareerApplications),
		},
		"fallback": true,
	}
}

// synthesize merges student input with course intelligence, with the
// student's choices taking precedence.
func synthesize(studentInput, intelligence map[string]any) Synthesis {
	overview := subMap(intelligence, "course_overview")
	domainAnalysis := subMap(intelligence, "subject_domain_analysis")
	curriculum := subMap(intelligence, "curriculum_structure")
	careers := subMap(intelligence, "career_applications")

	syn := Synthesis{
		CourseName:    stringValue(studentInput, "course_name"),
		University:    stringValue(studentInput, "university"),
		AcademicLevel: stringValue(studentInput, "academic_level"),
		SubjectDomain: stringValue(domainAnalysis, "primary_domain"),
		Approach:      stringValue(domainAnalysis, "methodological_approach"),
	}

	if syn.AcademicLevel == "" {
		syn.AcademicLevel = stringValue(overview, "academic_level")
	}
	if syn.AcademicLevel == "" {
		syn.AcademicLevel = "masters"
	}
	if syn.SubjectDomain == "" {
		syn.SubjectDomain = "general"
	}
	if syn.Approach == "" {
		syn.Approach = "mixed"
	}

	syn.LearningObjectives = dedupe(append(
		stringSlice(studentInput, "learning_objectives"),
		stringSlice(overview, "learning_objectives")...,
	))

	syn.CareerFocus = stringSlice(studentInput, "career_goals")
	if len(syn.CareerFocus) == 0 {
		syn.CareerFocus = stringSlice(careers, "primary_career_paths")
	}

	syn.Prerequisites = stringSlice(curriculum, "prerequisites")
	syn.FollowUpCourses = stringSlice(curriculum, "follow_up_courses")

	syn.DifficultyLevel = stringValue(overview, "difficulty_rating")
	if syn.DifficultyLevel == "" {
		syn.DifficultyLevel = "intermediate"
	}

	return syn
}

func subMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return nil
}

func stringValue(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func stringSlice(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}
	raw, ok := m[key].([]any)
	if !ok {
		// Already-typed slices appear when the map was built in Go.
		if typed, ok := m[key].([]string); ok {
			return typed
		}
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// profileFromSynthesis turns synthesized course context into a subject
// profile for the extraction prompt.
func (s *Service) profileFromSynthesis(syn Synthesis) *SubjectProfile {
	cfg := s.registry.Get(syn.SubjectDomain)
	return &SubjectProfile{
		SubjectDomain:      syn.SubjectDomain,
		LearningStyle:      syn.Approach,
		ComplexityLevel:    syn.AcademicLevel,
		ContentTypes:       cfg.ContentTypes,
		CareerApplications: syn.CareerFocus,
		VisualizationTypes: cfg.VisualizationTypes,
		AssessmentMethods:  cfg.AssessmentMethods,
	}
}
