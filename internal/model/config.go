package model

// Config holds the complete casepack configuration. Values come from
// (highest to lowest priority) CLI flags, CASEPACK_* environment variables,
// the config file, and the defaults below.
type Config struct {
	Verbosity int `yaml:"verbosity"`

	Limits      LimitsConfig      `yaml:"limits"`
	Support     SupportConfig     `yaml:"support"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	LLM         LLMConfig         `yaml:"llm"`
	Output      OutputConfig      `yaml:"output"`

	// Aliases extends the built-in header alias table: canonical category
	// name -> extra accepted spellings.
	Aliases map[string][]string `yaml:"aliases,omitempty"`
}

// LimitsConfig caps rendered sizes. Caps apply to rendering only, never to
// the underlying extracted data.
type LimitsConfig struct {
	ItemBodyChars     int `yaml:"item_body_chars"`
	ContextBlockChars int `yaml:"context_block_chars"`
}

// SupportConfig names the shared support files looked up next to the
// discovery document.
type SupportConfig struct {
	CaseSummary     string `yaml:"case_summary"`
	PreliminaryObjs string `yaml:"preliminary_objections"`
	Templates       string `yaml:"objection_templates"`
}

// ConcurrencyConfig controls batch processing parallelism.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// RateLimitConfig throttles LLM drafting calls.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size"`
}

// LLMConfig configures the optional drafting providers.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "openai", "ollama", "" (disabled)
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"` // from environment only, never persisted
	BaseURL   string `yaml:"base_url,omitempty"`
	Timeout   int    `yaml:"timeout_seconds"`
	MaxTokens int    `yaml:"max_tokens"`
}

// OutputConfig controls diagnostics.
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Verbosity: int(VerbosityMedium),
		Limits: LimitsConfig{
			ItemBodyChars:     800,
			ContextBlockChars: 6000,
		},
		Support: SupportConfig{
			CaseSummary:     "case_summary.txt",
			PreliminaryObjs: "preliminary_objections.txt",
			Templates:       "objection_language.txt",
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 1,
			BurstSize:         2,
		},
		LLM: LLMConfig{
			Provider:  "",
			Model:     "",
			Timeout:   60,
			MaxTokens: 4000,
		},
	}
}
