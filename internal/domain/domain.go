package domain

import (
	"sort"
	"strings"
	"sync"
)

// Config holds everything that customizes generation for one subject
// area: prompt guideline blocks, content type hints, and visualization
// preferences.
type Config struct {
	Key                      string   `json:"key"`
	DisplayName              string   `json:"display_name"`
	LearningCharacteristics  []string `json:"learning_characteristics"`
	ContentTypes             []string `json:"content_types"`
	CareerApplications       []string `json:"career_applications"`
	VisualizationTypes       []string `json:"visualization_types"`
	AssessmentMethods        []string `json:"assessment_methods"`
	ExtractionInstructions   string   `json:"extraction_instructions"`
	QAGuidelines             string   `json:"qa_guidelines"`
	QuizRequirements         string   `json:"quiz_requirements"`
	SimplificationGuidelines string   `json:"simplification_guidelines"`
	VisualizationGuidelines  string   `json:"visualization_guidelines"`
}

// Known is the set of domain keys the analysis step may classify a
// subject into. "other" is what the model returns for anything it can't
// place; "general" is the application-side fallback.
var Known = []string{
	"economics",
	"computer_science",
	"mathematics",
	"history",
	"literature",
	"psychology",
	"engineering",
	"medicine",
	"law",
	"business",
	"physics",
	"chemistry",
	"biology",
	"other",
	"general",
}

// Registry holds domain configurations. Seeded domains can be extended
// at runtime via Register; lookups for unknown domains synthesize a
// generic config so callers never deal with a missing domain.
type Registry struct {
	mu      sync.RWMutex
	configs map[string]Config
}

// NewRegistry returns a Registry seeded with the built-in domains.
func NewRegistry() *Registry {
	r := &Registry{configs: make(map[string]Config, len(seedConfigs))}
	for _, cfg := range seedConfigs {
		r.configs[cfg.Key] = cfg
	}
	return r
}

// Get returns the configuration for a domain. Unknown domains get a
// generated generic configuration titled from the key.
func (r *Registry) Get(key string) Config {
	r.mu.RLock()
	cfg, ok := r.configs[key]
	r.mu.RUnlock()
	if ok {
		return cfg
	}
	return genericConfig(key)
}

// Register adds or replaces a domain configuration.
func (r *Registry) Register(cfg Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[cfg.Key] = cfg
}

// Keys returns the seeded/registered domain keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.configs))
	for k := range r.configs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DisplayName titles a domain key for UI use: registered domains use
// their configured name, anything else gets "snake_case" → "Snake Case".
func (r *Registry) DisplayName(key string) string {
	r.mu.RLock()
	cfg, ok := r.configs[key]
	r.mu.RUnlock()
	if ok {
		return cfg.DisplayName
	}
	return titleize(key)
}

func genericConfig(key string) Config {
	return Config{
		Key:                      key,
		DisplayName:              titleize(key),
		LearningCharacteristics:  []string{"conceptual understanding", "practical application"},
		ContentTypes:             []string{"concepts", "examples", "case studies"},
		CareerApplications:       []string{"professional development"},
		VisualizationTypes:       []string{"charts", "diagrams"},
		AssessmentMethods:        []string{"multiple_choice", "case_analysis"},
		ExtractionInstructions:   "Focus on clear explanations with practical examples",
		QAGuidelines:             "Provide clear answers with real-world context",
		QuizRequirements:         "Create questions that test both understanding and application",
		SimplificationGuidelines: "Use simple language with relevant examples",
		VisualizationGuidelines:  "Create clear, informative visualizations",
	}
}

func titleize(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Upper formats a domain key for prompt headers: "computer_science" →
// "COMPUTER SCIENCE".
func Upper(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "_", " "))
}
