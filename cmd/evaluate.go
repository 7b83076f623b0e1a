package cmd

import (
	"errors"
	"fmt"

	"github.com/jsphweid/twelvetet/chord"
	"github.com/jsphweid/twelvetet/db"
	"github.com/jsphweid/twelvetet/model"
	"github.com/jsphweid/twelvetet/pitch"
	"github.com/jsphweid/twelvetet/voicing"
)

// nil unless DYNAMO_ENDPOINT is configured
var labels *db.Client

var rejections = []error{
	voicing.ErrVoiceOutOfRange,
	voicing.ErrVoiceSpacingExceeded,
	voicing.ErrVoiceCrossing,
	chord.ErrNoRootPresent,
	chord.ErrInvalidVoiceCount,
	chord.ErrInvalidBassFunction,
	chord.ErrIncompleteHarmonicFunction,
	chord.ErrInvalidDoubling,
	chord.ErrInvalidRoot,
}

// reasonKind maps a rejection to the message of its sentinel.
func reasonKind(err error) string {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return r.Error()
		}
	}
	return err.Error()
}

type parsedVoicing struct {
	root    uint8
	soprano pitch.Pitch
	alto    pitch.Pitch
	tenor   pitch.Pitch
	bass    pitch.Pitch
}

func voicingFromArgs(args []string) model.Voicing {
	var v model.Voicing
	if len(args) == 5 {
		v.Root, args = args[0], args[1:]
	}
	v.Soprano, v.Alto, v.Tenor, v.Bass = args[0], args[1], args[2], args[3]
	return v
}

// parseVoicing parses note names. Without a root one is inferred, falling
// back to the bass.
func parseVoicing(v model.Voicing) (parsedVoicing, error) {
	var pv parsedVoicing
	names := map[voicing.Voice]string{
		voicing.Soprano: v.Soprano,
		voicing.Alto:    v.Alto,
		voicing.Tenor:   v.Tenor,
		voicing.Bass:    v.Bass,
	}
	targets := map[voicing.Voice]*pitch.Pitch{
		voicing.Soprano: &pv.soprano,
		voicing.Alto:    &pv.alto,
		voicing.Tenor:   &pv.tenor,
		voicing.Bass:    &pv.bass,
	}
	for _, voice := range voicing.Voices {
		p, err := pitch.Parse(names[voice])
		if err != nil {
			return pv, fmt.Errorf("%v: %w", voice, err)
		}
		*targets[voice] = p
	}

	if v.Root == "" {
		pv.root, _, _ = chord.InferRoot(pv.bass.Class(), pv.tenor.Class(), pv.alto.Class(), pv.soprano.Class())
		return pv, nil
	}
	root, err := pitch.ParseClass(v.Root)
	if err != nil {
		return pv, fmt.Errorf("root: %w", err)
	}
	pv.root = root
	return pv, nil
}

func (pv parsedVoicing) unchecked() chord.SATB {
	return chord.NewUnchecked(pv.root, pv.soprano, pv.alto, pv.tenor, pv.bass)
}

func (pv parsedVoicing) validate() (chord.SATB, model.ValidateResult) {
	res := model.ValidateResult{
		Root:    pitch.Name(pv.root),
		Classes: pv.unchecked().Classes().Classes(),
	}
	h, err := chord.New(pv.root, pv.soprano, pv.alto, pv.tenor, pv.bass)
	if err != nil {
		res.Reason = err.Error()
		return h, res
	}
	res.Legal = true
	res.Shape = h.Shape().String()
	res.Label = lookupLabel(h.Key())
	return h, res
}

func lookupLabel(key string) *model.ChordLabel {
	if labels == nil {
		return nil
	}
	found, err := labels.GetChordLabels([]string{key})
	if err != nil {
		logger.Warn("label lookup failed", "key", key, "err", err)
		return nil
	}
	if label, ok := found[key]; ok {
		return &label
	}
	return nil
}
