package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProvider_FIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first"},
		MockResponse{Text: "second"},
	)

	resp, err := mock.Generate(context.Background(), Request{})
	if err != nil || resp.Text != "first" {
		t.Fatalf("got %v, %v", resp, err)
	}

	resp, err = mock.Generate(context.Background(), Request{})
	if err != nil || resp.Text != "second" {
		t.Fatalf("got %v, %v", resp, err)
	}

	// Empty queue.
	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %v, want ErrProviderUnavailable", err)
	}
}

func TestMockProvider_RecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})

	req := Request{
		System:   "you are a tutor",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	if _, err := mock.Generate(context.Background(), req); err != nil {
		t.Fatal(err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	if mock.Calls[0].System != "you are a tutor" {
		t.Errorf("recorded system = %q", mock.Calls[0].System)
	}
}

func TestResolveModel(t *testing.T) {
	models := map[string]string{"friendly": "provider-model-v2"}

	if got := resolveModel("friendly", models); got != "provider-model-v2" {
		t.Errorf("resolveModel(friendly) = %q", got)
	}
	// Unknown names pass through untouched.
	if got := resolveModel("custom-model-id", models); got != "custom-model-id" {
		t.Errorf("resolveModel(custom) = %q", got)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing API key")
	}

	cfg.Anthropic.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock should not require a key: %v", err)
	}

	cfg.Provider = "nope"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestWithPurpose(t *testing.T) {
	ctx := WithPurpose(context.Background(), "quiz_generation")
	if got := PurposeFrom(ctx); got != "quiz_generation" {
		t.Errorf("purpose = %q", got)
	}
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("default purpose = %q", got)
	}
}
