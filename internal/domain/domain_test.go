package domain

import (
	"strings"
	"testing"
)

func TestRegistrySeeds(t *testing.T) {
	r := NewRegistry()
	want := []string{"business", "computer_science", "economics", "mathematics", "psychology"}

	keys := r.Keys()
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], k)
		}
	}
}

func TestRegistryUnknownDomainIsComplete(t *testing.T) {
	r := NewRegistry()
	cfg := r.Get("astrobiology")

	if cfg.Key != "astrobiology" {
		t.Errorf("Key = %q", cfg.Key)
	}
	if cfg.DisplayName != "Astrobiology" {
		t.Errorf("DisplayName = %q, want Astrobiology", cfg.DisplayName)
	}
	for name, vals := range map[string][]string{
		"LearningCharacteristics": cfg.LearningCharacteristics,
		"ContentTypes":            cfg.ContentTypes,
		"CareerApplications":      cfg.CareerApplications,
		"VisualizationTypes":      cfg.VisualizationTypes,
		"AssessmentMethods":       cfg.AssessmentMethods,
	} {
		if len(vals) == 0 {
			t.Errorf("%s is empty in generic config", name)
		}
	}
	for name, s := range map[string]string{
		"ExtractionInstructions":   cfg.ExtractionInstructions,
		"QAGuidelines":             cfg.QAGuidelines,
		"QuizRequirements":         cfg.QuizRequirements,
		"SimplificationGuidelines": cfg.SimplificationGuidelines,
		"VisualizationGuidelines":  cfg.VisualizationGuidelines,
	} {
		if s == "" {
			t.Errorf("%s is empty in generic config", name)
		}
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register(Config{Key: "linguistics", DisplayName: "Linguistics & Phonetics"})

	if got := r.Get("linguistics").DisplayName; got != "Linguistics & Phonetics" {
		t.Errorf("DisplayName after Register = %q", got)
	}
	if got := r.DisplayName("linguistics"); got != "Linguistics & Phonetics" {
		t.Errorf("DisplayName() = %q", got)
	}
	if !contains(r.Keys(), "linguistics") {
		t.Error("registered key missing from Keys()")
	}

	// Register also replaces.
	r.Register(Config{Key: "economics", DisplayName: "Econ"})
	if got := r.Get("economics").DisplayName; got != "Econ" {
		t.Errorf("replaced DisplayName = %q", got)
	}
}

func TestBlockTemplates(t *testing.T) {
	tests := []struct {
		name         string
		domain       string
		contentTypes []string
		wantViz      bool
		wantCase     bool
		wantProblem  bool
	}{
		{"plain unknown domain", "general", nil, false, false, false},
		{"visualization via charts", "general", []string{"charts"}, true, false, false},
		{"visualization via diagrams", "general", []string{"diagrams"}, true, false, false},
		{"case study domain", "psychology", nil, false, true, false},
		{"case study via content type", "general", []string{"case studies"}, false, true, false},
		{"problem solving domain", "mathematics", nil, false, false, true},
		{"problem solving via calculations", "general", []string{"calculations"}, false, false, true},
		{"economics gets problems", "economics", []string{"charts"}, true, false, true},
		{"business gets cases", "business", []string{"visualizations"}, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := BlockTemplates(tt.domain, tt.contentTypes)
			if !strings.Contains(out, `"concept_explanation"`) {
				t.Error("concept block always expected")
			}
			if got := strings.Contains(out, `"interactive_visualization"`); got != tt.wantViz {
				t.Errorf("visualization block = %v, want %v", got, tt.wantViz)
			}
			if got := strings.Contains(out, `"case_study"`); got != tt.wantCase {
				t.Errorf("case study block = %v, want %v", got, tt.wantCase)
			}
			if got := strings.Contains(out, `"problem_solving"`); got != tt.wantProblem {
				t.Errorf("problem solving block = %v, want %v", got, tt.wantProblem)
			}
		})
	}
}

func TestBlockTemplatesJoin(t *testing.T) {
	out := BlockTemplates("economics", []string{"charts"})
	if got := strings.Count(out, ",\n        {"); got != 2 {
		t.Errorf("template separator count = %d, want 2", got)
	}
}

func TestFormatExistingBooks(t *testing.T) {
	if got := FormatExistingBooks(nil); got != "This is the first book in the course." {
		t.Errorf("empty list = %q", got)
	}

	out := FormatExistingBooks([]BookContext{
		{Name: "Microeconomics", Domain: "economics", Summary: "supply and demand"},
		{},
	})
	if !strings.Contains(out, "1. Microeconomics (economics) - supply and demand") {
		t.Errorf("missing first book line:\n%s", out)
	}
	if !strings.Contains(out, "2. Unknown (general) - No summary") {
		t.Errorf("missing placeholder line:\n%s", out)
	}
}

func TestAdaptationDefaults(t *testing.T) {
	if DifficultyAdaptation("expert") != DifficultyAdaptation("intermediate") {
		t.Error("unknown difficulty should fall back to intermediate")
	}
	if LearningStyleAdaptation("auditory") != LearningStyleAdaptation("mixed") {
		t.Error("unknown style should fall back to mixed")
	}
}

func TestUpper(t *testing.T) {
	if got := Upper("computer_science"); got != "COMPUTER SCIENCE" {
		t.Errorf("Upper = %q", got)
	}
}
