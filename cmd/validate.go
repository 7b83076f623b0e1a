package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errIllegal = errors.New("chord is not legal")

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [root] <soprano> <alto> <tenor> <bass>",
	Short: "Checks a four-voice chord",
	Long: `Checks a four-voice chord, e.g. "validate C G4 E4 C4 C3".
Without a root, the root is inferred from the voices.`,
	Args: cobra.RangeArgs(4, 5),
	RunE: func(cmd *cobra.Command, args []string) error {
		pv, err := parseVoicing(voicingFromArgs(args))
		if err != nil {
			return err
		}
		h, res := pv.validate()
		out := cmd.OutOrStdout()
		if !res.Legal {
			fmt.Fprintf(out, "%v: %v\n", pv.unchecked(), res.Reason)
			return errIllegal
		}
		fmt.Fprintf(out, "%v: %v\n", h, res.Shape)
		if res.Label != nil {
			fmt.Fprintf(out, "label: %v\n", res.Label.Name)
		}
		return nil
	},
}
