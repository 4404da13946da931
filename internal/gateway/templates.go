package gateway

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
)

//go:embed prompts/*.txt
var embeddedPrompts embed.FS

// Template file names used by the generation operations.
const (
	promptExtraction     = "adaptive_pdf_extraction.txt"
	promptQA             = "adaptive_qa.txt"
	promptQuiz           = "adaptive_quiz.txt"
	promptVisualization  = "visualization_generation.txt"
	promptSimplification = "concept_simplification.txt"
)

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// TemplateStore serves prompt templates. Built-in templates are
// embedded in the binary; an optional override directory lets operators
// customize or add templates without rebuilding.
type TemplateStore struct {
	overrideDir string

	mu    sync.RWMutex
	cache map[string]string
}

// NewTemplateStore creates a TemplateStore. overrideDir may be empty to
// serve only the embedded templates.
func NewTemplateStore(overrideDir string) *TemplateStore {
	return &TemplateStore{
		overrideDir: overrideDir,
		cache:       make(map[string]string),
	}
}

// Load returns the template content for name, preferring the override
// directory over the embedded copy.
func (s *TemplateStore) Load(name string) (string, error) {
	if err := validName(name); err != nil {
		return "", err
	}

	if s.overrideDir != "" {
		data, err := os.ReadFile(filepath.Join(s.overrideDir, name))
		if err == nil {
			return string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("read template override %s: %w", name, err)
		}
	}

	s.mu.RLock()
	cached, ok := s.cache[name]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	data, err := embeddedPrompts.ReadFile("prompts/" + name)
	if err != nil {
		return "", fmt.Errorf("template %s not found", name)
	}

	s.mu.Lock()
	s.cache[name] = string(data)
	s.mu.Unlock()
	return string(data), nil
}

// List returns the names of all available templates, embedded and
// overridden, sorted.
func (s *TemplateStore) List() []string {
	seen := make(map[string]bool)

	entries, err := embeddedPrompts.ReadDir("prompts")
	if err == nil {
		for _, e := range entries {
			seen[e.Name()] = true
		}
	}

	if s.overrideDir != "" {
		files, err := os.ReadDir(s.overrideDir)
		if err == nil {
			for _, f := range files {
				if !f.IsDir() && strings.HasSuffix(f.Name(), ".txt") {
					seen[f.Name()] = true
				}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// TemplateInfo describes a template's placeholder parameters.
type TemplateInfo struct {
	Valid             bool     `json:"valid"`
	Error             string   `json:"error,omitempty"`
	Parameters        []string `json:"parameters"`
	ParameterCount    int      `json:"parameter_count"`
	TotalPlaceholders int      `json:"total_placeholders"`
}

// Validate inspects a template's placeholders.
func (s *TemplateStore) Validate(name string) TemplateInfo {
	template, err := s.Load(name)
	if err != nil {
		return TemplateInfo{Valid: false, Error: err.Error()}
	}

	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	unique := make(map[string]bool)
	params := make([]string, 0)
	for _, m := range matches {
		if !unique[m[1]] {
			unique[m[1]] = true
			params = append(params, m[1])
		}
	}
	sort.Strings(params)

	return TemplateInfo{
		Valid:             true,
		Parameters:        params,
		ParameterCount:    len(params),
		TotalPlaceholders: len(matches),
	}
}

// Preview renders a template with sample parameters. With no params the
// raw template is returned.
func (s *TemplateStore) Preview(name string, params map[string]string) (string, error) {
	template, err := s.Load(name)
	if err != nil {
		return "", err
	}
	if len(params) == 0 {
		return template, nil
	}
	return formatTemplate(template, params), nil
}

// Save writes a template to the override directory, creating it if
// needed. Fails when no override directory is configured.
func (s *TemplateStore) Save(name, content string) error {
	if err := validName(name); err != nil {
		return err
	}
	if s.overrideDir == "" {
		return fmt.Errorf("no template override directory configured")
	}
	if err := os.MkdirAll(s.overrideDir, 0o755); err != nil {
		return fmt.Errorf("create template dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.overrideDir, name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write template %s: %w", name, err)
	}
	return nil
}

// formatTemplate substitutes {name} placeholders from params. Unknown
// placeholders are left untouched so JSON braces in templates survive.
func formatTemplate(template string, params map[string]string) string {
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func validName(name string) error {
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "\\") || strings.Contains(name, "..") {
		return fmt.Errorf("invalid template name %q", name)
	}
	if !strings.HasSuffix(name, ".txt") {
		return fmt.Errorf("template name %q must end in .txt", name)
	}
	return nil
}
