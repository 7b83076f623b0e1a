package midi

import (
	"sort"

	"github.com/jsphweid/twelvetet/pitch"
	"github.com/jsphweid/twelvetet/util"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type reducedEvent struct {
	offset    int64
	isNoteOff bool
	key       uint8
}

// Snapshot is the set of keys sounding from a moment in a file until the next
// note on or note off.
type Snapshot struct {
	// microseconds from the start of the file
	Offset int64
	// ascending
	Keys []uint8
}

// Voicing splits a four-key snapshot into voices, lowest key as bass. ok is
// false for any other number of keys.
func (s Snapshot) Voicing() (soprano, alto, tenor, bass pitch.Pitch, ok bool) {
	if len(s.Keys) != 4 {
		return
	}
	p := Pitches(s.Keys)
	return p[3], p[2], p[1], p[0], true
}

func snapshotOf(offset int64, pressed map[uint8]bool) Snapshot {
	return Snapshot{Offset: offset, Keys: util.GetKeysSorted(pressed)}
}

// Snapshots reduces every track of s to the sequence of sounding key sets,
// ordered by time. Empty sets are dropped.
func Snapshots(s *smf.SMF) []Snapshot {
	var events []reducedEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			msg := gomidi.Message(event.Message)
			var ch, key, vel uint8
			switch {
			case msg.GetNoteStart(&ch, &key, &vel):
				events = append(events, reducedEvent{offset: s.TimeAt(absTicks), key: key})
			case msg.GetNoteEnd(&ch, &key):
				events = append(events, reducedEvent{offset: s.TimeAt(absTicks), isNoteOff: true, key: key})
			}
		}
	}

	// earlier first, and note offs before note ons at the same moment
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].offset != events[j].offset {
			return events[i].offset < events[j].offset
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})

	byOffset := make(map[int64]Snapshot)
	pressed := make(map[uint8]bool)
	for _, evt := range events {
		if evt.isNoteOff {
			delete(pressed, evt.key)
		} else {
			pressed[evt.key] = true
		}
		byOffset[evt.offset] = snapshotOf(evt.offset, pressed)
	}

	var res []Snapshot
	for _, offset := range util.GetKeysSorted(byOffset) {
		if snap := byOffset[offset]; len(snap.Keys) > 0 {
			res = append(res, snap)
		}
	}
	return res
}
