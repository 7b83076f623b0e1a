package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/twelvetet/midi"
	"github.com/jsphweid/twelvetet/util"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

// keys pressed together rarely land in the same millisecond
const settleInterval = 80 * time.Millisecond

func init() {
	rootCmd.AddCommand(listenCmd)

	listenCmd.Flags().Int("port", 0, "MIDI input port number")
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Classifies chords played on a MIDI keyboard",
	Long:  `Listens to a MIDI input and classifies the held notes every time four keys are down.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return listen(ctx, port, cmd.OutOrStdout())
	},
}

type heldNotes struct {
	mu   sync.Mutex
	keys map[uint8]bool
}

func newHeldNotes() *heldNotes {
	return &heldNotes{keys: make(map[uint8]bool)}
}

func (h *heldNotes) press(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.keys[key] = true
}

func (h *heldNotes) release(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.keys, key)
}

func (h *heldNotes) snapshot() midi.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return midi.Snapshot{Keys: util.GetKeysSorted(h.keys)}
}

// handle updates held notes from msg and reports whether anything changed.
func (h *heldNotes) handle(msg gomidi.Message) bool {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		h.press(key)
	case msg.GetNoteEnd(&ch, &key):
		h.release(key)
	default:
		return false
	}
	return true
}

func listen(ctx context.Context, portNum int, w io.Writer) error {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(portNum)
	if err != nil {
		return fmt.Errorf("can't find midi input %v: %w", portNum, err)
	}
	logger.Info("listening", "port", in.String())

	held := newHeldNotes()
	debounced := debounce.New(settleInterval)
	var out sync.Mutex

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		if !held.handle(msg) {
			return
		}
		debounced(func() {
			snap := held.snapshot()
			if len(snap.Keys) != 4 {
				logger.Debug("waiting for four keys", "keys", snap.Keys)
				return
			}
			line, _ := describeSnapshot(snap)
			out.Lock()
			defer out.Unlock()
			fmt.Fprintln(w, line)
		})
	})
	if err != nil {
		return fmt.Errorf("listening to %v: %w", in, err)
	}
	defer stop()

	<-ctx.Done()
	return nil
}
