package generator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Generate_Success(t *testing.T) {
	var gotPrompt, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		gotPrompt = req.Prompt
		_ = json.NewEncoder(w).Encode(generateResponse{Text: "Bel appartement lumineux."})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key123", 100)
	text, err := c.Generate(context.Background(), "décris un F3")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if text != "Bel appartement lumineux." {
		t.Fatalf("unexpected text: %q", text)
	}
	if gotPrompt != "décris un F3" {
		t.Fatalf("prompt not forwarded, got %q", gotPrompt)
	}
	if gotAuth != "Bearer key123" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
}

func TestClient_Generate_NotConfigured(t *testing.T) {
	c := NewClient("", "", 1)
	if _, err := c.Generate(context.Background(), "prompt"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestClient_Generate_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", 100)
	if _, err := c.Generate(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error on non-200 response")
	}
}

func TestClient_Generate_EmptyCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(generateResponse{Text: ""})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", 100)
	if _, err := c.Generate(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error on empty completion")
	}
}

func TestClient_Generate_CancelledContext(t *testing.T) {
	c := NewClient("http://unreachable.invalid", "key", 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Generate(ctx, "prompt"); err == nil {
		t.Fatalf("expected error on cancelled context")
	}
}
