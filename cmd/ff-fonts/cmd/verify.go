package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bianoble/ff-fonts/internal/engine"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <file>...",
	Short: "Verify written ff-fonts records",
	Long: `Checks that each ff-fonts.<md5>.json file is named after its md5 and that the
md5 matches the stored stylesheet with the family markers removed.
Exit 0 if every file is valid; exit non-zero otherwise.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := (&engine.VerifyEngine{}).Verify(args)

		for _, p := range result.Valid {
			info("  ✓ %s", p)
		}
		for _, e := range result.Invalid {
			errorf("%s", e)
		}

		if len(result.Invalid) > 0 {
			return fmt.Errorf("%d file(s) failed verification", len(result.Invalid))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
