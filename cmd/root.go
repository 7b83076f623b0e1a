package cmd

import (
	"log/slog"
	"os"

	"github.com/jsphweid/twelvetet/constants"
	"github.com/spf13/cobra"
)

// logger is safe to use before initLogger runs.
var logger = slog.Default()

func initLogger() {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: constants.GetLogLevel()})
	logger = slog.New(h)
	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "twelvetet",
	Short: "Four-part harmony checker and synthesizer",
	Long: `Checks whether soprano, alto, tenor and bass form a legal chord under
traditional four-part writing rules, and renders chords as sine wave audio.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
