package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/twelvetet/chord"
	"github.com/jsphweid/twelvetet/constants"
	"github.com/jsphweid/twelvetet/file"
	"github.com/jsphweid/twelvetet/midi"
	"github.com/jsphweid/twelvetet/sample"
	"github.com/jsphweid/twelvetet/synth"
	"github.com/jsphweid/twelvetet/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().Uint32("duration", constants.DefaultDuration, "seconds of audio")
	renderCmd.Flags().Uint32("rate", constants.GetSampleRate(), "samples per second")
	renderCmd.Flags().Bool("unchecked", false, "skip validation")
	renderCmd.Flags().Bool("midi", false, "also write a .mid file next to the .wav")
	renderCmd.Flags().String("out", constants.GetOutDir(), "output directory")
}

var renderCmd = &cobra.Command{
	Use:   "render [root] <soprano> <alto> <tenor> <bass>",
	Short: "Renders a chord as a WAV file",
	Long:  `Renders a chord as a sum of sine waves and writes it to a uniquely named WAV file.`,
	Args:  cobra.RangeArgs(4, 5),
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, _ := cmd.Flags().GetUint32("duration")
		rate, _ := cmd.Flags().GetUint32("rate")
		unchecked, _ := cmd.Flags().GetBool("unchecked")
		withMidi, _ := cmd.Flags().GetBool("midi")
		outDir, _ := cmd.Flags().GetString("out")

		pv, err := parseVoicing(voicingFromArgs(args))
		if err != nil {
			return err
		}
		h, err := buildHarmony(pv, unchecked)
		if err != nil {
			return err
		}

		path, err := render(h, outDir, duration, rate, withMidi)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func buildHarmony(pv parsedVoicing, unchecked bool) (chord.SATB, error) {
	if unchecked {
		return pv.unchecked(), nil
	}
	return chord.New(pv.root, pv.soprano, pv.alto, pv.tenor, pv.bass)
}

func render(h chord.SATB, outDir string, duration, rate uint32, withMidi bool) (string, error) {
	if err := util.EnsureDir(outDir); err != nil {
		return "", fmt.Errorf("couldn't create output dir: %w", err)
	}
	path := file.NewOutputPath(outDir, ".wav")
	logger.Info("rendering", "chord", h.String(), "duration", duration, "rate", rate, "path", path)

	if err := sample.WriteWavFile(path, synth.SoundWave(h, duration, rate), rate); err != nil {
		return "", err
	}
	if withMidi {
		if err := midi.WriteChordFile(strings.TrimSuffix(path, ".wav")+".mid", h, duration); err != nil {
			return "", err
		}
	}
	return path, nil
}
