package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaProvider_Draft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Stream {
			t.Error("drafting must not stream")
		}
		if req.Model != "test-model" {
			t.Errorf("model = %s", req.Model)
		}
		_ = json.NewEncoder(w).Encode(ollamaResponse{
			Model:     req.Model,
			Response:  "  Responding Party responds as follows: ...  ",
			Done:      true,
			EvalCount: 42,
		})
	}))
	defer server.Close()

	p, err := NewOllamaProvider(Config{BaseURL: server.URL, Model: "test-model"})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := p.Draft(context.Background(), DraftRequest{PackageMD: "# PROMPT PACKAGE: RFA"})
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if resp.Draft != "Responding Party responds as follows: ..." {
		t.Errorf("Draft = %q, want trimmed response", resp.Draft)
	}
	if resp.TokensUsed != 42 {
		t.Errorf("TokensUsed = %d", resp.TokensUsed)
	}
}

func TestOllamaProvider_ErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(ollamaError{Error: "model not found"})
	}))
	defer server.Close()

	p, err := NewOllamaProvider(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Draft(context.Background(), DraftRequest{PackageMD: "x"}); err == nil {
		t.Error("API error must propagate")
	}
}
