// Package midi turns decoded song events into a one-track Standard MIDI
// File, approximating what TempleOS' Play function would sound like.
package midi

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/8dcc/godsong-go/constants"
	"github.com/8dcc/godsong-go/model"
	"github.com/8dcc/godsong-go/render"
	"github.com/8dcc/godsong-go/song"
	"github.com/8dcc/godsong-go/util"
)

// ticks per quarter note
const resolution = 480

var baseTicks = map[model.DurationClass]uint32{
	model.Whole:     4 * resolution,
	model.Half:      2 * resolution,
	model.Quarter:   resolution,
	model.Eighth:    resolution / 2,
	model.Sixteenth: resolution / 4,
}

// semitone offset of each pitch letter within an octave (C = 0)
var semitones = map[model.Pitch]int{
	model.PitchC: 0,
	model.PitchD: 2,
	model.PitchE: 4,
	model.PitchF: 5,
	model.PitchG: 7,
	model.PitchA: 9,
	model.PitchB: 11,
}

// Options control playback rendering. They correspond to the TempleOS
// music.tempo (quarter notes per second) and music.stacatto_factor
// variables.
type Options struct {
	TempoQPS float64
	Staccato float64
	Velocity uint8
}

// DefaultOptions mirrors the TempleOS defaults: tempo 2.5 quarter notes per
// second, full note lengths.
func DefaultOptions() Options {
	return Options{TempoQPS: constants.DefaultTempoQPS, Staccato: 1.0, Velocity: 90}
}

// Key converts a note event to a MIDI key number (middle C, octave 4, is
// 60). Octaves whose keys fall outside 0..127 are unsupported.
func Key(ev model.NoteEvent) (uint8, error) {
	semi, ok := semitones[ev.Pitch]
	if !ok {
		return 0, fmt.Errorf("not a sounding pitch: %q", byte(ev.Pitch))
	}
	key := (ev.Octave+1)*12 + semi
	switch ev.Accidental {
	case model.Sharp:
		key++
	case model.Flat:
		key--
	}
	if key < 0 || key > 127 {
		return 0, &render.UnsupportedOctaveError{Octave: ev.Octave}
	}
	return uint8(key), nil
}

// Ticks returns the duration of the event in ticks, with the dot and
// triplet modifiers applied.
func Ticks(ev model.NoteEvent) (uint32, error) {
	base, ok := baseTicks[ev.Duration]
	if !ok {
		return 0, &render.UnsupportedDurationError{Duration: ev.Duration}
	}
	switch ev.Modifier.Kind {
	case model.Dot:
		return base * 3 / 2, nil
	case model.TripletMember:
		return base * 2 / 3, nil
	}
	return base, nil
}

// held is a sounding note buffered while a tie may still extend it.
type held struct {
	key     uint8
	ticks   uint32
	tieOpen bool
}

// FromSong decodes the whole song and builds the SMF. Per-event problems
// (bad tokens, out-of-range octaves) skip the offending staff or note and
// are returned as issues alongside the file.
func FromSong(dec *song.Decoder, opt Options) (*smf.SMF, []error) {
	var issues []error

	var tr smf.Track
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(opt.TempoQPS*60))

	// delta is the gap, in ticks, in front of the next written message.
	var delta uint32
	var cur *held

	flush := func() {
		if cur == nil {
			return
		}
		on := uint32(float64(cur.ticks) * opt.Staccato)
		if on == 0 {
			on = 1
		}
		on = util.Min(on, cur.ticks)
		tr.Add(delta, midi.NoteOn(0, cur.key, opt.Velocity))
		tr.Add(on, midi.NoteOff(0, cur.key))
		delta = cur.ticks - on
		cur = nil
	}

	for {
		ev, err := dec.Next()
		if err != nil {
			if _, bad := err.(*song.UnrecognizedTokenError); bad {
				issues = append(issues, err)
				dec.SkipStaff()
				flush()
				continue
			}
			break // io.EOF
		}

		switch e := ev.(type) {
		case model.NoteEvent:
			ticks, terr := Ticks(e)
			if terr != nil {
				issues = append(issues, terr)
				continue
			}
			if e.IsRest() {
				flush()
				delta += ticks
				continue
			}
			key, kerr := Key(e)
			if kerr != nil {
				issues = append(issues, kerr)
				continue
			}
			if cur != nil && e.TieClose && cur.key == key {
				// Tied repetition: one longer note, no rearticulation.
				cur.ticks += ticks
				cur.tieOpen = e.TieOpen
				if !cur.tieOpen {
					flush()
				}
				continue
			}
			flush()
			cur = &held{key: key, ticks: ticks, tieOpen: e.TieOpen}
			if !cur.tieOpen {
				flush()
			}

		case model.MeterChange:
			flush()
			tr.Add(delta, smf.MetaMeter(uint8(e.Top), uint8(e.Bottom)))
			delta = 0

		case model.StaffBreak:
			// Ties never survive the boundary.
			flush()
		}
	}

	flush()
	tr.Close(delta)

	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(resolution)
	s.Tracks = append(s.Tracks, tr)
	return &s, issues
}
