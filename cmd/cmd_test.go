package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/twelvetet/chord"
	"github.com/jsphweid/twelvetet/midi"
	"github.com/jsphweid/twelvetet/pitch"
	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
)

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := execute("validate", "C", "G4", "E4", "C4", "C3")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("C [S G4, A E4, T C4, B C3]: root position\n", out)
}

func TestValidateCommandRejects(t *testing.T) {
	out, err := execute("validate", "C", "G4", "E4", "C4", "C2")

	assert := assert.New(t)
	assert.ErrorIs(err, errIllegal)
	assert.Contains(out, "voice out of range")
}

func TestParseVoicingReportsVoice(t *testing.T) {
	_, err := parseVoicing(voicingFromArgs([]string{"G4", "E4", "C9x", "C3"}))
	assert.ErrorContains(t, err, "tenor")

	_, err = parseVoicing(voicingFromArgs([]string{"Q", "G4", "E4", "C4", "C3"}))
	assert.ErrorContains(t, err, "root")
}

func TestReasonKind(t *testing.T) {
	_, err := chord.Classify(0, 4, 7, 4, 7)
	assert.Equal(t, chord.ErrNoRootPresent.Error(), reasonKind(err))
}

func TestRenderCommandWritesFiles(t *testing.T) {
	dir := t.TempDir()
	out, err := execute("render", "--out", dir, "--duration", "1", "--rate", "200", "--midi", "C", "G4", "E4", "C4", "C3")

	assert := assert.New(t)
	assert.NoError(err)
	path := strings.TrimSpace(out)
	assert.Equal(dir, filepath.Dir(path))
	assert.FileExists(path)
	assert.FileExists(strings.TrimSuffix(path, ".wav") + ".mid")
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	legal, err := chord.New(0, pitch.FromClass(7, 4), pitch.FromClass(4, 4), pitch.FromClass(0, 4), pitch.FromClass(0, 3))
	assert := assert.New(t)
	assert.NoError(err)
	path := filepath.Join(dir, "c.mid")
	assert.NoError(midi.WriteChordFile(path, legal, 1))

	var out bytes.Buffer
	assert.NoError(inspect(&out, path, false))
	assert.Contains(out.String(), "root position")
	assert.Contains(out.String(), "snapshots: 1\n")

	out.Reset()
	assert.NoError(inspect(&out, path, true))
	assert.Equal("snapshots: 1\n  root position: 1\n", out.String())

	assert.Error(inspect(&out, filepath.Join(dir, "missing.mid"), true))
	_, statErr := os.Stat(path)
	assert.NoError(statErr)
}

func TestDescribeSnapshot(t *testing.T) {
	_, bucket := describeSnapshot(midi.Snapshot{Keys: []uint8{48, 60}})
	assert.Equal(t, notFourVoices, bucket)

	// C2 is below the bass range
	_, bucket = describeSnapshot(midi.Snapshot{Keys: []uint8{36, 60, 64, 67}})
	assert.Equal(t, "voice out of range", bucket)
}

func TestHeldNotes(t *testing.T) {
	held := newHeldNotes()

	assert := assert.New(t)
	assert.True(held.handle(gomidi.NoteOn(0, 67, 100)))
	assert.True(held.handle(gomidi.NoteOn(0, 48, 100)))
	assert.True(held.handle(gomidi.NoteOn(0, 60, 100)))
	assert.False(held.handle(gomidi.ControlChange(0, 64, 127)))
	assert.Equal([]uint8{48, 60, 67}, held.snapshot().Keys)

	assert.True(held.handle(gomidi.NoteOff(0, 60)))
	// note on with zero velocity releases too
	assert.True(held.handle(gomidi.NoteOn(0, 48, 0)))
	assert.Equal([]uint8{67}, held.snapshot().Keys)
}
