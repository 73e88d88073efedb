package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bianoble/ff-fonts/internal/engine"
)

var buildDryRun bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Fetch, merge and write the font stylesheet",
	Long: `Fetches the configured Google Fonts families, appends the local font rules,
and writes {"md5", "value"} to ff-fonts.<md5>.json in the output directory.
The checksum is printed on success. A failed fetch writes nothing and exits 1.`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	eng := newBuildEngine(cfg, newLogger(os.Stderr))
	result, err := eng.Build(ctx, *cfg, engine.BuildOptions{DryRun: buildDryRun})
	if err != nil {
		return err
	}

	detail("remote: %s", humanSize(int64(result.RemoteBytes)))
	detail("local:  %s", humanSize(int64(result.LocalBytes)))
	if buildDryRun {
		info("Dry run — would write %s", result.Path)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Checksum)
	return nil
}

func init() {
	buildCmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "build without writing the output file")
	rootCmd.AddCommand(buildCmd)
}
