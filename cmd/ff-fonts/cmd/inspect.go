package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bianoble/ff-fonts/internal/fontface"
	"github.com/bianoble/ff-fonts/internal/source"
)

var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the Google Fonts query URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), fontface.QueryURL(cfg.Google, cfg.GoogleURL))
		return nil
	},
}

var localCmd = &cobra.Command{
	Use:   "local",
	Short: "Print the @font-face rules for local fonts",
	Long: `Prints the untagged @font-face rules generated for the local fonts. Fonts
whose file is missing or has no extension produce no rule.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		css := fontface.Locals(cfg.Local, cfg.InputDir, &source.LocalEncoder{FS: source.OSFS{}})
		fmt.Fprintln(cmd.OutOrStdout(), css)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(localCmd)
}
