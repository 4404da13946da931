package llm

import "testing"

func TestGeminiModelResolution(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.alias, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.alias, got, tt.want)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subject_domain": map[string]any{"type": "string", "enum": []any{"economics", "general"}},
			"chapter_count":  map[string]any{"type": "integer"},
			"title":          map[string]any{"type": "string"},
			"key_topics": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"subject_domain", "title"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("root type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("property count = %d, want 4", len(schema.Properties))
	}
	if schema.Properties["title"].Type != "STRING" {
		t.Errorf("title type = %s", schema.Properties["title"].Type)
	}
	if schema.Properties["chapter_count"].Type != "INTEGER" {
		t.Errorf("chapter_count type = %s", schema.Properties["chapter_count"].Type)
	}
	if len(schema.Properties["subject_domain"].Enum) != 2 {
		t.Errorf("enum count = %d, want 2", len(schema.Properties["subject_domain"].Enum))
	}
	if schema.Properties["key_topics"].Type != "ARRAY" || schema.Properties["key_topics"].Items.Type != "STRING" {
		t.Errorf("key_topics = %+v", schema.Properties["key_topics"])
	}
	if len(schema.Required) != 2 {
		t.Errorf("required count = %d, want 2", len(schema.Required))
	}
}
