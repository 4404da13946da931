package domain

import (
	"fmt"
	"strings"
)

// Block template JSON skeletons spliced into the extraction prompt. The
// selection below decides which block kinds the model is asked to emit
// for a given domain.
const (
	conceptTemplate = `{
      "type": "concept_explanation",
      "title": "Concept name",
      "difficulty_level": "beginner|intermediate|advanced",
      "content": "Clear, engaging explanation adapted to domain",
      "key_points": ["main ideas broken down"],
      "examples": ["domain-specific examples"],
      "applications": ["how this concept is used professionally"],
      "common_misconceptions": ["what students often get wrong"],
      "study_tips": ["how to master this concept"]
    }`

	visualizationTemplate = `{
      "type": "interactive_visualization",
      "title": "Visualization title",
      "visualization_type": "chart|diagram|flowchart|timeline|network",
      "description": "What this visualization shows",
      "purpose": "Why this visualization helps learning",
      "data_structure": "structure of data to visualize",
      "interactive_features": ["features that enhance understanding"],
      "interpretation_guide": "how to read and understand the visualization"
    }`

	caseStudyTemplate = `{
      "type": "case_study",
      "title": "Case study title",
      "scenario": "realistic situation from the field",
      "background": "context and setting",
      "key_issues": ["main problems or questions"],
      "analysis_framework": "how to approach this type of case",
      "discussion_questions": ["questions for deeper thinking"],
      "lessons_learned": ["key insights and applications"]
    }`

	problemSolvingTemplate = `{
      "type": "problem_solving",
      "title": "Problem or exercise title",
      "problem_statement": "Clear problem description",
      "solution_approach": "step-by-step solving strategy",
      "worked_example": "detailed solution example",
      "practice_problems": ["similar problems for practice"],
      "common_errors": ["mistakes to avoid"]
    }`
)

// caseStudyDomains are applied fields that always get case study blocks.
var caseStudyDomains = map[string]bool{
	"business":   true,
	"psychology": true,
	"medicine":   true,
	"history":    true,
	"law":        true,
}

// problemSolvingDomains are quantitative fields that always get
// problem-solving blocks.
var problemSolvingDomains = map[string]bool{
	"mathematics":      true,
	"engineering":      true,
	"economics":        true,
	"computer_science": true,
}

// BlockTemplates assembles the content block templates for a domain.
// Concept explanations are always present; the rest depend on the
// domain and its declared content types.
func BlockTemplates(domainKey string, contentTypes []string) string {
	templates := []string{conceptTemplate}

	if containsAny(contentTypes, "charts", "diagrams", "visualizations") {
		templates = append(templates, visualizationTemplate)
	}
	if caseStudyDomains[domainKey] || contains(contentTypes, "case studies") {
		templates = append(templates, caseStudyTemplate)
	}
	if problemSolvingDomains[domainKey] || contains(contentTypes, "calculations") {
		templates = append(templates, problemSolvingTemplate)
	}

	return strings.Join(templates, ",\n        ")
}

// DifficultyAdaptation returns the prompt guideline for a difficulty
// level, defaulting to intermediate.
func DifficultyAdaptation(level string) string {
	switch level {
	case "beginner":
		return "Focus on basic understanding with lots of examples and simple language"
	case "advanced":
		return "Include nuanced explanations, complex scenarios, and professional-level detail"
	default:
		return "Balance conceptual depth with practical applications and some technical detail"
	}
}

// LearningStyleAdaptation returns the prompt guideline for a learning
// style, defaulting to mixed.
func LearningStyleAdaptation(style string) string {
	switch style {
	case "theoretical":
		return "Emphasize concepts, principles, and abstract understanding"
	case "practical":
		return "Focus on hands-on applications, real-world examples, and actionable skills"
	default:
		return "Balance theoretical understanding with practical applications and examples"
	}
}

// BookContext is a sibling subject summarized for the extraction prompt.
type BookContext struct {
	Name    string
	Domain  string
	Summary string
}

// FormatExistingBooks renders the sibling subjects of a course so the
// model can position new material against what is already there.
func FormatExistingBooks(books []BookContext) string {
	if len(books) == 0 {
		return "This is the first book in the course."
	}

	var b strings.Builder
	b.WriteString("EXISTING BOOKS IN THIS COURSE:\n")
	for i, book := range books {
		name := book.Name
		if name == "" {
			name = "Unknown"
		}
		dom := book.Domain
		if dom == "" {
			dom = "general"
		}
		summary := book.Summary
		if summary == "" {
			summary = "No summary"
		}
		fmt.Fprintf(&b, "%d. %s (%s) - %s\n", i+1, name, dom, summary)
	}
	b.WriteString("\nConsider how this new book fits with and complements the existing materials.")
	return b.String()
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

func containsAny(list []string, wants ...string) bool {
	for _, w := range wants {
		if contains(list, w) {
			return true
		}
	}
	return false
}
