package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jthorn/casepack/internal/alias"
	"github.com/jthorn/casepack/internal/extract"
	"github.com/jthorn/casepack/internal/scan"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List auto-detected discovery/matrix pairs and support files",
	Long: `List shows what a batch run over the directory would process:
the matched pairs, the unmatched candidates, and whether the three
support files are present.

Example:
  casepack list
  casepack list ./case-files`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	cfg := buildConfig()
	resolver := alias.NewResolver(alias.DefaultTable().WithAliases(cfg.Aliases))

	docs, err := scan.FindDiscoveryFiles(dir, cfg.Support)
	if err != nil {
		return err
	}
	matrices, err := scan.FindMatrixFiles(dir, resolver)
	if err != nil {
		return err
	}
	pairs := scan.MatchPairs(docs, matrices)

	fmt.Printf("Auto-detected %d discovery/matrix pair(s):\n\n", len(pairs))
	for _, pair := range pairs {
		docType := extract.DetectDocType(filepath.Base(pair.Discovery))
		fmt.Printf("  [%s] %s <-> %s\n", docType, filepath.Base(pair.Discovery), filepath.Base(pair.Matrix))
	}

	fmt.Printf("\nAvailable discovery files:\n")
	for _, f := range docs {
		fmt.Printf("  - %s\n", filepath.Base(f))
	}

	fmt.Printf("\nAvailable matrix files:\n")
	for _, f := range matrices {
		fmt.Printf("  - %s\n", filepath.Base(f))
	}

	fmt.Printf("\nSupport files:\n")
	for _, name := range []string{cfg.Support.CaseSummary, cfg.Support.PreliminaryObjs, cfg.Support.Templates} {
		status := "Found"
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			status = "NOT FOUND"
		}
		fmt.Printf("  - %s: %s\n", name, status)
	}

	return nil
}
