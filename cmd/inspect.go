package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/twelvetet/chord"
	"github.com/jsphweid/twelvetet/midi"
	"github.com/jsphweid/twelvetet/util"
	"github.com/spf13/cobra"
)

const notFourVoices = "not four voices"

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Bool("summary", false, "only print totals")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Classifies every four-voice chord in a MIDI file",
	Long: `Classifies every four-voice chord in a MIDI file. The root of each chord is
inferred and the lowest key is taken as the bass.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, _ := cmd.Flags().GetBool("summary")
		return inspect(cmd.OutOrStdout(), args[0], summary)
	},
}

// describeSnapshot returns a line describing the snapshot and the bucket it
// counts towards in a report.
func describeSnapshot(snap midi.Snapshot) (string, string) {
	soprano, alto, tenor, bass, ok := snap.Voicing()
	if !ok {
		return fmt.Sprintf("%v: %v", snap.Keys, notFourVoices), notFourVoices
	}
	root, _, _ := chord.InferRoot(bass.Class(), tenor.Class(), alto.Class(), soprano.Class())
	h, err := chord.New(root, soprano, alto, tenor, bass)
	if err != nil {
		return fmt.Sprintf("%v: %v", chord.NewUnchecked(root, soprano, alto, tenor, bass), err), reasonKind(err)
	}
	return fmt.Sprintf("%v: %v", h, h.Shape()), h.Shape().String()
}

func inspect(w io.Writer, path string, summary bool) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	snaps := midi.Snapshots(s)
	for _, snap := range snaps {
		line, bucket := describeSnapshot(snap)
		counts[bucket]++
		if !summary {
			fmt.Fprintf(w, "%9.3fs  %v\n", float64(snap.Offset)/1e6, line)
		}
	}

	fmt.Fprintf(w, "snapshots: %v\n", len(snaps))
	for _, bucket := range util.GetKeysSorted(counts) {
		fmt.Fprintf(w, "  %v: %v\n", bucket, counts[bucket])
	}
	return nil
}
