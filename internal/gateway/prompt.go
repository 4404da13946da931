package gateway

import (
	"fmt"
	"strings"

	"github.com/abhisek/studium/internal/domain"
)

// buildIntelligencePrompt asks the model to research an academic course
// and answer with a structured intelligence report.
func buildIntelligencePrompt(courseName, university, courseCode string) string {
	if university == "" {
		university = "General academic standards"
	}
	if courseCode == "" {
		courseCode = "Not specified"
	}

	return fmt.Sprintf(`Research and provide comprehensive intelligence about this academic course:

Course: %s
University: %s
Course Code: %s

Based on your knowledge of academic curricula, provide detailed course intelligence:

{
    "course_overview": {
        "official_description": "Comprehensive description of what this course covers",
        "learning_objectives": ["Primary learning goal 1", "Primary learning goal 2", "etc."],
        "academic_level": "undergraduate|masters|phd|professional",
        "typical_duration": "semester length and time commitment",
        "difficulty_rating": "1-10 scale with explanation"
    },

    "curriculum_structure": {
        "typical_textbooks": ["Primary textbook authors/titles", "Secondary references"],
        "chapter_sequence": ["Typical chapter progression", "Topic ordering"],
        "prerequisites": ["Required background knowledge", "Prerequisite courses"],
        "follow_up_courses": ["Natural next courses", "Advanced topics"]
    },

    "subject_domain_analysis": {
        "primary_domain": "economics|computer_science|mathematics|etc.",
        "subdisciplines": ["Specific areas within the domain"],
        "methodological_approach": "theoretical|practical|mixed",
        "mathematical_intensity": "low|medium|high",
        "memorization_vs_analysis": "ratio and explanation"
    },

    "career_applications": {
        "primary_career_paths": ["Most common career destinations"],
        "industry_applications": ["How concepts are used professionally"],
        "salary_impact": "How this knowledge affects earning potential",
        "skill_development": ["Professional skills gained"],
        "certification_relevance": ["Professional certifications this supports"]
    },

    "academic_context": {
        "university_approach": "How top universities typically teach this",
        "research_connections": ["How this connects to current research"],
        "interdisciplinary_links": ["Connections to other fields"],
        "global_variations": ["How this course varies internationally"],
        "current_trends": ["Recent developments in the field"]
    },

    "learning_optimization": {
        "effective_study_methods": ["Best approaches for mastering this subject"],
        "common_difficulties": ["Where students typically struggle"],
        "success_strategies": ["What leads to high performance"],
        "resource_recommendations": ["Additional learning resources"],
        "assessment_approaches": ["Typical exam and project formats"]
    }
}

Provide specific, actionable intelligence that would help an AI tutor create the most effective learning experience for students in this course.
Return only valid JSON without markdown formatting.`, courseName, university, courseCode)
}

// buildCourseContextPrompt renders enhanced course context as prompt text
// for the extraction template.
func buildCourseContextPrompt(ec *EnhancedContext) string {
	if ec == nil {
		return "This is the first book in a new course."
	}
	syn := ec.Synthesis
	intel := ec.Intelligence

	var parts []string

	if overview := subMap(intel, "course_overview"); overview != nil {
		name := syn.CourseName
		if name == "" {
			name = "Unknown Course"
		}
		uni := syn.University
		if uni == "" {
			uni = "Institution"
		}
		desc := stringValue(overview, "official_description")
		if desc == "" {
			desc = "No description available"
		}
		level := syn.AcademicLevel
		if level == "" {
			level = "masters"
		}
		parts = append(parts, fmt.Sprintf(`COURSE OVERVIEW:
- %s at %s
- Description: %s
- Academic Level: %s
- Learning Objectives: %s`,
			name, uni, desc, titleCase(level), strings.Join(syn.LearningObjectives, ", ")))
	}

	if curriculum := subMap(intel, "curriculum_structure"); curriculum != nil {
		parts = append(parts, fmt.Sprintf(`CURRICULUM CONTEXT:
- Prerequisites: %s
- Follow-up Courses: %s
- Typical Textbooks: %s`,
			joinOrDefault(stringSlice(curriculum, "prerequisites"), "None specified"),
			joinOrDefault(stringSlice(curriculum, "follow_up_courses"), "None specified"),
			joinOrDefault(stringSlice(curriculum, "typical_textbooks"), "Various")))
	}

	if len(syn.CareerFocus) > 0 {
		parts = append(parts, fmt.Sprintf(`CAREER FOCUS:
- Target Career Paths: %s
- Industry Applications: Focus on practical applications for these career goals`,
			strings.Join(syn.CareerFocus, ", ")))
	}

	approach := syn.Approach
	if approach == "" {
		approach = "mixed"
	}
	dom := syn.SubjectDomain
	if dom == "" {
		dom = "general"
	}
	difficulty := syn.DifficultyLevel
	if difficulty == "" {
		difficulty = "intermediate"
	}
	parts = append(parts, fmt.Sprintf(`LEARNING APPROACH:
- Methodological Style: %s
- Subject Domain: %s
- Difficulty Expectation: %s`, approach, dom, difficulty))

	return strings.Join(parts, "\n\n")
}

// buildContentGuidelines combines domain instructions with the course's
// career focus and academic level.
func buildContentGuidelines(cfg domain.Config, syn Synthesis) string {
	var guidelines []string

	if cfg.ExtractionInstructions != "" {
		guidelines = append(guidelines, "DOMAIN GUIDELINES: "+cfg.ExtractionInstructions)
	}

	if len(syn.CareerFocus) > 0 {
		guidelines = append(guidelines, "CAREER FOCUS: Emphasize applications relevant to "+strings.Join(syn.CareerFocus, ", "))
	}

	switch syn.AcademicLevel {
	case "undergraduate":
		guidelines = append(guidelines, "COMPLEXITY: Use foundational examples, avoid advanced mathematics")
	case "masters":
		guidelines = append(guidelines, "COMPLEXITY: Include sophisticated analysis, professional applications")
	case "phd":
		guidelines = append(guidelines, "COMPLEXITY: Emphasize research applications, theoretical depth")
	}

	if len(guidelines) == 0 {
		return "Use appropriate academic standards"
	}
	return strings.Join(guidelines, " | ")
}

func joinOrDefault(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
