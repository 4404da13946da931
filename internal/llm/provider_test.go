package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProviderReplaysScript(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"subject_domain":"economics"}`),
			Usage:   Usage{InputTokens: 40, OutputTokens: 12, TotalTokens: 52},
		},
		MockResponse{Content: json.RawMessage(`{"subject_domain":"general"}`)},
	)

	first, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "classify Microeconomics"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != `{"subject_domain":"economics"}` {
		t.Fatalf("first reply = %s", first.Content)
	}
	if first.Usage.InputTokens != 40 || first.Usage.TotalTokens != 52 {
		t.Fatalf("usage = %+v", first.Usage)
	}
	if first.StopReason != "end" {
		t.Fatalf("stop reason = %q", first.StopReason)
	}

	second, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "classify Pottery"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second.Content) != `{"subject_domain":"general"}` {
		t.Fatalf("second reply = %s", second.Content)
	}
}

func TestMockProviderExhaustedScript(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func TestMockProviderRecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, _ = mock.Generate(context.Background(), Request{
		System:   "You are a patient tutor.",
		Messages: []Message{{Role: RoleUser, Content: "What is opportunity cost?"}},
		Files:    []FilePart{{Name: "notes.pdf", MIMEType: "application/pdf", Data: []byte("%PDF")}},
	})

	if len(mock.Calls) != 1 {
		t.Fatalf("recorded %d calls, want 1", len(mock.Calls))
	}
	call := mock.Calls[0]
	if call.System != "You are a patient tutor." {
		t.Fatalf("system = %q", call.System)
	}
	if len(call.Files) != 1 || call.Files[0].Name != "notes.pdf" {
		t.Fatalf("files = %+v", call.Files)
	}
}

func TestMockProviderScriptedError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{RetryAfter: 0}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", err)
	}
}

func TestMockProviderModelID(t *testing.T) {
	if got := NewMockProvider().ModelID(); got != "mock" {
		t.Fatalf("ModelID = %q", got)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("untagged context purpose = %q", p)
	}

	ctx = WithPurpose(ctx, "pdf_extraction")
	if p := PurposeFrom(ctx); p != "pdf_extraction" {
		t.Fatalf("tagged purpose = %q", p)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llamafarm"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
