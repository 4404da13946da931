package llm

import "testing"

func TestOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     OpenRouterConfig
		wantErr bool
	}{
		{"valid config", OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.0-flash-exp"}, false},
		{"missing API key", OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"}, true},
		{"custom base URL", OpenRouterConfig{APIKey: "sk-or-test", Model: "meta-llama/llama-3-8b", BaseURL: "https://custom.openrouter.example/v1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			// Slash-qualified model IDs pass through without alias mapping.
			if p.ModelID() != tt.cfg.Model {
				t.Errorf("ModelID = %q, want %q", p.ModelID(), tt.cfg.Model)
			}
		})
	}
}
