package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/studium/internal/store"
)

// LoggingProvider is a decorator that records every LLM request in the
// AI request log.
type LoggingProvider struct {
	inner Provider
	repo  store.AIRequestRepo
	name  string
}

// WithLogging wraps a Provider with request logging. name is the
// provider name recorded with each entry ("gemini", "anthropic", ...).
func WithLogging(p Provider, repo store.AIRequestRepo, name string) Provider {
	return &LoggingProvider{inner: p, repo: repo, name: name}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.AIRequestInput{
		Provider:  l.name,
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMS: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the request but don't fail the call if logging fails.
	if logErr := l.repo.Append(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log AI request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
