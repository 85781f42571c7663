package cli

import (
	"fmt"
	"os"

	"github.com/jthorn/casepack/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "casepack",
	Short: "Casepack - discovery objection prompt package generator",
	Long: `Casepack reconciles a free-text discovery document with a selection
matrix and assembles a structured prompt package for AI-assisted drafting
of objection responses.

It parses numbered requests out of loosely formatted documents, maps
arbitrary matrix column headers onto a fixed objection taxonomy, and joins
the two by request number. The resulting package embeds the case summary,
preliminary objections, and approved objection templates so that any
drafting model has the full context in a single file.

Casepack prepares the drafting input; it never drafts on its own unless
the optional draft command is invoked.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Casepack.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("casepack v0.3.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.casepack/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.casepack")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match CASEPACK_*
	viper.SetEnvPrefix("CASEPACK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// buildConfig assembles the effective configuration: defaults overlaid with
// config-file values surfaced through viper.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose

	if viper.IsSet("verbosity") {
		cfg.Verbosity = viper.GetInt("verbosity")
	}
	if viper.IsSet("concurrency.workers") {
		cfg.Concurrency.Workers = viper.GetInt("concurrency.workers")
	}
	if viper.IsSet("limits.item_body_chars") {
		cfg.Limits.ItemBodyChars = viper.GetInt("limits.item_body_chars")
	}
	if viper.IsSet("limits.context_block_chars") {
		cfg.Limits.ContextBlockChars = viper.GetInt("limits.context_block_chars")
	}
	if viper.IsSet("aliases") {
		cfg.Aliases = viper.GetStringMapStringSlice("aliases")
	}
	if viper.IsSet("llm.provider") {
		cfg.LLM.Provider = viper.GetString("llm.provider")
	}
	if viper.IsSet("llm.model") {
		cfg.LLM.Model = viper.GetString("llm.model")
	}

	return cfg
}
