package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bianoble/ff-fonts/internal/engine"
	"github.com/bianoble/ff-fonts/internal/source"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the resolved configuration",
	Long: `Displays the ff-fonts version, the config path, the Google Fonts query URL,
input and output directories, and whether each local font file can be read.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		result := engine.Info(version, configPath, cfg, &source.LocalEncoder{FS: source.OSFS{}})

		fmt.Printf("ff-fonts %s\n", result.Version)
		fmt.Printf("  config:      %s\n", result.ConfigPath)
		fmt.Printf("  query url:   %s\n", result.QueryURL)
		fmt.Printf("  format:      %s\n", result.Format)
		fmt.Printf("  input dir:   %s\n", result.InputDir)
		fmt.Printf("  output dir:  %s\n", result.OutputDir)

		if len(result.Google) > 0 {
			fmt.Println("\nGoogle fonts:")
			for _, g := range result.Google {
				display := ""
				if g.Display != "" {
					display = " (display: " + g.Display + ")"
				}
				fmt.Printf("  %-20s %v%s\n", g.Name, g.Formats, display)
			}
		}

		if len(result.Local) > 0 {
			fmt.Println("\nLocal fonts:")
			for _, l := range result.Local {
				status := "ok"
				if !l.Included {
					status = "skipped"
				}
				fmt.Printf("  %-20s → %s [%s] %s\n", l.Name, l.File, l.Format, status)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
