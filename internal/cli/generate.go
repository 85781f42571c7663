package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jthorn/casepack/internal/extract"
	"github.com/jthorn/casepack/internal/model"
	"github.com/jthorn/casepack/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	discoveryFile string
	matrixFile    string
	outputFile    string
	level         int
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a prompt package for one discovery/matrix pair",
	Long: `Generate parses the discovery document, loads the selection matrix,
joins them by request number, and writes a single prompt package:
- Numbered requests are recovered with a prioritized pattern chain
- Matrix columns are matched to the objection taxonomy by alias
- Any non-empty cell selects its objection; "x; note" carries a note
- Request text missing from the document renders a visible placeholder

Example:
  casepack generate -d Form_Rogs.txt -m form_rogs_matrix.csv
  casepack generate -d RFA_Set_One.txt -m rfa_matrix.csv -t 3 -o package.md`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&discoveryFile, "discovery", "d", "", "discovery request file (.txt)")
	generateCmd.Flags().StringVarP(&matrixFile, "matrix", "m", "", "objection matrix file (.csv)")
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output filename (timestamped default)")
	generateCmd.Flags().IntVarP(&level, "level", "t", int(model.VerbosityMedium), "explanation level (0=minimal, 3=full)")

	_ = generateCmd.MarkFlagRequired("discovery")
	_ = generateCmd.MarkFlagRequired("matrix")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	if cmd.Flags().Changed("level") {
		cfg.Verbosity = level
	}
	if !model.Verbosity(cfg.Verbosity).Valid() {
		return fmt.Errorf("invalid explanation level %d (valid: 0-3)", cfg.Verbosity)
	}

	out := outputFile
	if out == "" {
		docType := extract.DetectDocType(filepath.Base(discoveryFile))
		out = filepath.Join(filepath.Dir(discoveryFile),
			pipeline.DefaultOutputName(docType, discoveryFile, time.Now()))
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Discovery: %s\n", discoveryFile)
		fmt.Fprintf(os.Stderr, "Matrix:    %s\n", matrixFile)
		fmt.Fprintf(os.Stderr, "Level:     %d (%s)\n", cfg.Verbosity, model.Verbosity(cfg.Verbosity).Name())
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.New(cfg)
	res, err := p.Generate(context.Background(), pipeline.Request{
		DiscoveryPath: discoveryFile,
		MatrixPath:    matrixFile,
		OutputPath:    out,
	})
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	printResult(res)
	return nil
}

func printResult(res *pipeline.Result) {
	fmt.Fprintf(os.Stderr, "✓ %s\n", res.OutputPath)
	fmt.Fprintf(os.Stderr, "  [%s] %d requests, %d with objections\n",
		res.DocType, res.TotalRows, res.RowsWithSelections)
	if res.ItemCount == 0 {
		fmt.Fprintf(os.Stderr, "  ⚠ no request text extracted from the discovery file; the package carries placeholders\n")
	}
}
