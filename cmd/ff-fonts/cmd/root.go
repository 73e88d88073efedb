package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	configPath string
	outputDir  string
	verbose    bool
	quiet      bool
	noColor    bool
)

// errorLabel prefixes every fatal error printed by the CLI.
const errorLabel = "Oops. An error occurred:"

var rootCmd = &cobra.Command{
	Use:   "ff-fonts",
	Short: "Bundle Google Fonts and local fonts into one stylesheet",
	Long: `ff-fonts fetches the Google Fonts families listed in its configuration,
inlines every font file as base64, appends @font-face rules for local font
files and writes the merged stylesheet to ff-fonts.<md5>.json.

Running ff-fonts with no subcommand is the same as 'ff-fonts build'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBuild,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ff-fonts %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "ff-fonts.yaml", "path to config file (.yaml, .json or .toml)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "output directory (overrides output_dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "detailed output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimal output (checksum and errors only)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "build without writing the output file")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorLabel, err)
		return err
	}
	return nil
}
