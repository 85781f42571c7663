package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jthorn/casepack/internal/alias"
	"github.com/jthorn/casepack/internal/cache"
	"github.com/jthorn/casepack/internal/extract"
	"github.com/jthorn/casepack/internal/model"
	"github.com/jthorn/casepack/internal/pipeline"
	"github.com/jthorn/casepack/internal/scan"
	"github.com/jthorn/casepack/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency int
	outputDir   string
	batchLevel  int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch [dir]",
	Short: "Auto-match discovery/matrix pairs in a directory and generate all packages",
	Long: `Batch scans a directory for discovery documents and selection matrices,
matches them into pairs by filename similarity, and generates one prompt
package per pair in parallel:
- .txt files are discovery candidates (support files are skipped)
- .csv files with a recognizable request-number column are matrices
- Each package gets a timestamped name, so runs never collide
- Shared support files are read once and cached for the whole run

Example:
  casepack batch
  casepack batch ./case-files --concurrency 8 --output-dir ./packages
  casepack batch -t 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default from config)")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "", "output directory (default: the scanned directory)")
	batchCmd.Flags().IntVarP(&batchLevel, "level", "t", int(model.VerbosityMedium), "explanation level (0=minimal, 3=full)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	cfg := buildConfig()
	if cmd.Flags().Changed("level") {
		cfg.Verbosity = batchLevel
	}
	if !model.Verbosity(cfg.Verbosity).Valid() {
		return fmt.Errorf("invalid explanation level %d (valid: 0-3)", cfg.Verbosity)
	}
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}

	pairs, err := detectPairs(dir, cfg)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return fmt.Errorf("no discovery/matrix pairs found in %s (use generate -d/-m to pair files manually)", dir)
	}

	outDir := outputDir
	if outDir == "" {
		outDir = dir
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Processing %d pair(s) with %d worker(s), level %d (%s)\n\n",
		len(pairs), cfg.Concurrency.Workers, cfg.Verbosity, model.Verbosity(cfg.Verbosity).Name())

	// Every pair in the directory shares the same support files; cache them
	// for the duration of the run.
	supportCache := cache.NewFileReader(cache.NewMemoryCache(5*time.Minute, 10*time.Minute), 5*time.Minute)
	p := pipeline.New(cfg).WithSupportReader(supportCache)

	now := time.Now()
	reqs := make([]pipeline.Request, 0, len(pairs))
	for _, pair := range pairs {
		docType := extract.DetectDocType(filepath.Base(pair.Discovery))
		reqs = append(reqs, pipeline.Request{
			DiscoveryPath: pair.Discovery,
			MatrixPath:    pair.Matrix,
			OutputPath:    filepath.Join(outDir, pipeline.DefaultOutputName(docType, pair.Discovery, now)),
		})
	}

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers)
	results := processor.Process(context.Background(), reqs)

	success := 0
	for _, res := range results {
		if res.Error != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", filepath.Base(res.Request.DiscoveryPath), res.Error)
			continue
		}
		success++
		printResult(res.Result)
	}

	fmt.Fprintf(os.Stderr, "\nGenerated %d/%d prompt package(s)\n", success, len(results))
	if success < len(results) {
		return fmt.Errorf("%d pair(s) failed", len(results)-success)
	}
	return nil
}

// detectPairs scans dir and auto-matches discovery files with matrices.
func detectPairs(dir string, cfg *model.Config) ([]scan.Pair, error) {
	resolver := alias.NewResolver(alias.DefaultTable().WithAliases(cfg.Aliases))

	docs, err := scan.FindDiscoveryFiles(dir, cfg.Support)
	if err != nil {
		return nil, fmt.Errorf("scan discovery files: %w", err)
	}
	matrices, err := scan.FindMatrixFiles(dir, resolver)
	if err != nil {
		return nil, fmt.Errorf("scan matrix files: %w", err)
	}
	return scan.MatchPairs(docs, matrices), nil
}
