package llm

import (
	"strings"
	"testing"
)

func TestNewProvider_Disabled(t *testing.T) {
	p, err := NewProvider(Config{Provider: ""})
	if err != nil {
		t.Fatalf("empty provider should disable drafting, got error %v", err)
	}
	if p != nil {
		t.Error("disabled config must return a nil provider")
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(Config{Provider: "gemini"})
	if err == nil {
		t.Fatal("unknown provider must error")
	}
	if !strings.Contains(err.Error(), "gemini") {
		t.Errorf("error should name the offending provider: %v", err)
	}
}

func TestNewProvider_OpenAIRequiresKey(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "openai"}); err == nil {
		t.Error("openai without an API key must error")
	}
	p, err := NewProvider(Config{Provider: "OpenAI", APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("Name() = %q", p.Name())
	}
}

func TestNewProvider_Ollama(t *testing.T) {
	p, err := NewProvider(Config{Provider: "ollama"})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("Name() = %q", p.Name())
	}
}

func TestBuildPrompt_EmbedsPackage(t *testing.T) {
	pkg := "# PROMPT PACKAGE: RFA\n### RFA NO. 1"
	prompt := BuildPrompt(pkg)
	if !strings.Contains(prompt, pkg) {
		t.Error("prompt must embed the package verbatim")
	}
}
