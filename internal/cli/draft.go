package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jthorn/casepack/internal/llm"
	"github.com/jthorn/casepack/internal/worker"
	"github.com/spf13/cobra"
)

var (
	llmProvider string
	llmModel    string
)

// draftCmd represents the draft command
var draftCmd = &cobra.Command{
	Use:   "draft <package.md> [package.md...]",
	Short: "Draft objection responses from generated prompt packages",
	Long: `Draft sends one or more generated prompt packages to a language model
and writes the drafted responses next to each package as
<package>.responses.md.

The package itself is the entire prompt: its drafting instructions,
approved templates, and per-request objections drive the model. Calls are
rate limited so large batches stay within provider quotas.

Example:
  casepack draft prompt_RFA_Set_One_20260302_101500.md
  casepack draft packages/*.md --provider ollama --model llama3.1
  OPENAI_API_KEY=sk-... casepack draft package.md --provider openai`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDraft,
}

func init() {
	rootCmd.AddCommand(draftCmd)

	draftCmd.Flags().StringVar(&llmProvider, "provider", "openai", "LLM provider (openai, ollama)")
	draftCmd.Flags().StringVar(&llmModel, "model", "", "LLM model name (provider default if empty)")
}

func runDraft(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	cfg.LLM.Provider = llmProvider
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	provider, err := llm.NewProvider(llm.Config{
		Provider:  cfg.LLM.Provider,
		Model:     cfg.LLM.Model,
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Timeout:   cfg.LLM.Timeout,
		MaxTokens: cfg.LLM.MaxTokens,
	})
	if err != nil {
		return err
	}
	if provider == nil {
		return fmt.Errorf("no LLM provider configured")
	}

	limiter := worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.BurstSize)
	ctx := context.Background()

	drafted := 0
	for _, path := range args {
		packageMD, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
			continue
		}

		if err := limiter.Wait(ctx, provider.Name()); err != nil {
			return err
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "Drafting %s via %s...\n", path, provider.Name())
		}
		resp, err := provider.Draft(ctx, llm.DraftRequest{PackageMD: string(packageMD)})
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
			continue
		}

		outPath := strings.TrimSuffix(path, ".md") + ".responses.md"
		if err := os.WriteFile(outPath, []byte(resp.Draft+"\n"), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: write draft: %v\n", path, err)
			continue
		}

		drafted++
		fmt.Fprintf(os.Stderr, "✓ %s (%s, %d tokens)\n", outPath, resp.Model, resp.TokensUsed)
	}

	if drafted < len(args) {
		return fmt.Errorf("drafted %d/%d package(s)", drafted, len(args))
	}
	return nil
}
