package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// slowProvider blocks until its context is canceled.
type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestTimeoutCancelsSlowCall(t *testing.T) {
	p := WithTimeout(slowProvider{}, 10*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestTimeoutDisabledWhenZero(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ok": true}`)})

	p := WithTimeout(mock, 0)
	if p != Provider(mock) {
		t.Fatal("zero timeout should return the inner provider unchanged")
	}

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok": true}` {
		t.Fatalf("unexpected content: %q", resp.Content)
	}
}

func TestTimeoutModelIDDelegates(t *testing.T) {
	p := WithTimeout(slowProvider{}, time.Second)
	if got := p.ModelID(); got != "slow" {
		t.Fatalf("ModelID = %q, want %q", got, "slow")
	}
}
