// Package song decodes TempleOS GodSong melody strings into note events.
//
// Notes are entered with a letter A-G. Octaves are entered with a digit and
// stay set until changed (mid C is octave 4). Durations are entered with
// 'w', 'h', 'q', 'e' or 's' and stay set until changed. 't' marks a triplet
// of three notes, '.' dots the next note, '(' ties the next note to the one
// after it, '#' and 'b' are accidentals, and "M3/4" sets the meter.
package song

import (
	"fmt"
	"io"

	"github.com/8dcc/godsong-go/constants"
	"github.com/8dcc/godsong-go/model"
)

// UnrecognizedTokenError reports a character that is not a valid modifier or
// pitch letter, along with its offset in the flattened song string.
type UnrecognizedTokenError struct {
	Char   byte
	Offset int
}

func (e *UnrecognizedTokenError) Error() string {
	return fmt.Sprintf("unrecognized token %q at offset %v", e.Char, e.Offset)
}

// Decoder walks a flattened song string and produces one model.Event per
// call to Next. All persistent state (octave, duration, meter, tie and
// triplet tracking) lives on the instance, so independent decode sessions
// never interfere.
type Decoder struct {
	input string
	pos   int

	// persisted across notes until changed
	octave      int
	duration    model.DurationClass
	meterTop    int
	meterBottom int

	// tripletPos is 0 outside a group, otherwise the 1-based position the
	// next note will take. The group closes after position 3.
	tripletPos int

	// transient, consumed by the next note
	tiePending bool
	tieClose   bool
	dotPending bool
	accidental model.Accidental

	flushed bool
}

// NewDecoder returns a decoder positioned at the start of song. The input
// must already be flattened (see util.Flatten): no whitespace except the
// '\n' staff separators.
func NewDecoder(song string) *Decoder {
	return &Decoder{
		input:       song,
		octave:      constants.DefaultOctave,
		duration:    model.Quarter,
		meterTop:    constants.DefaultMeterTop,
		meterBottom: constants.DefaultMeterBottom,
	}
}

// Meter returns the currently effective meter.
func (d *Decoder) Meter() (top, bottom int) {
	return d.meterTop, d.meterBottom
}

// Next decodes the next event. It returns io.EOF once the input is
// exhausted. On an UnrecognizedTokenError the cursor stays on the offending
// character and carried state is intact; the caller may call SkipStaff to
// resume on the next line.
func (d *Decoder) Next() (model.Event, error) {
	for d.pos < len(d.input) {
		c := d.input[d.pos]
		switch {
		case c == '\n':
			d.pos++
			return d.staffBreak(), nil

		case c == '(':
			d.tiePending = true
			d.pos++

		case c == 'M':
			return d.meterToken(), nil

		case c == '.':
			d.dotPending = true
			d.pos++

		case c == 't':
			// Repeated markers inside an open group are tolerated.
			if d.tripletPos == 0 {
				d.tripletPos = 1
			}
			d.pos++

		case c >= '0' && c <= '9':
			d.octave = int(c - '0')
			d.pos++

		case isDurationLetter(c):
			d.duration = model.DurationClass(c)
			// A new duration letter abandons any in-progress triplet.
			d.tripletPos = 0
			d.pos++

		case c == '#':
			d.accidental = model.Sharp
			d.pos++

		case c == 'b':
			d.accidental = model.Flat
			d.pos++

		case isPitchLetter(c):
			d.pos++
			return d.note(toPitch(c)), nil

		case c == 'R' || c == 'r':
			d.pos++
			return d.note(model.Rest), nil

		default:
			return nil, &UnrecognizedTokenError{Char: c, Offset: d.pos}
		}
	}

	// Flag anything still open at the very end of the input, once, so the
	// renderer can close its brackets.
	if !d.flushed {
		d.flushed = true
		if sb := d.staffBreak(); sb.IncompleteTriplet || sb.OpenTie {
			return sb, nil
		}
	}
	return nil, io.EOF
}

// SkipStaff abandons the rest of the current line, moving the cursor past
// the next '\n' (or to the end of input). It is the recovery step after an
// UnrecognizedTokenError. The returned StaffBreak carries the same
// defensive-close flags a regular line break would.
func (d *Decoder) SkipStaff() model.StaffBreak {
	for d.pos < len(d.input) && d.input[d.pos] != '\n' {
		d.pos++
	}
	if d.pos < len(d.input) {
		d.pos++
	}
	return d.staffBreak()
}

// staffBreak builds the boundary event and resets everything that must not
// survive a line break. Octave, duration and meter persist.
func (d *Decoder) staffBreak() model.StaffBreak {
	sb := model.StaffBreak{
		// Position 1 means the marker was seen but no member note was
		// produced, so no bracket is open yet.
		IncompleteTriplet: d.tripletPos >= 2,
		OpenTie:           d.tiePending || d.tieClose,
	}
	d.tripletPos = 0
	d.tiePending = false
	d.tieClose = false
	d.dotPending = false
	d.accidental = model.NoAccidental
	return sb
}

// meterToken consumes "M", then whatever of "<top>/<bottom>" is present.
// Missing digits leave the corresponding field unchanged; a bare "M" still
// advances the cursor.
func (d *Decoder) meterToken() model.MeterChange {
	d.pos++ // 'M'
	if d.pos < len(d.input) && isDigit(d.input[d.pos]) {
		d.meterTop = int(d.input[d.pos] - '0')
		d.pos++
	}
	if d.pos < len(d.input) && d.input[d.pos] == '/' {
		d.pos++
	}
	if d.pos < len(d.input) && isDigit(d.input[d.pos]) {
		d.meterBottom = int(d.input[d.pos] - '0')
		d.pos++
	}
	return model.MeterChange{Top: d.meterTop, Bottom: d.meterBottom}
}

// note builds a NoteEvent from the persisted state plus the accumulated
// transients, then clears the transients.
func (d *Decoder) note(pitch model.Pitch) model.NoteEvent {
	ev := model.NoteEvent{
		Pitch:      pitch,
		Accidental: d.accidental,
		Octave:     d.octave,
		Duration:   d.duration,
	}

	if d.tripletPos > 0 {
		ev.Modifier = model.Modifier{Kind: model.TripletMember, Pos: d.tripletPos}
		if d.tripletPos == 3 {
			d.tripletPos = 0
		} else {
			d.tripletPos++
		}
	} else if d.dotPending {
		ev.Modifier = model.Modifier{Kind: model.Dot}
	}

	if d.tieClose {
		ev.TieClose = true
		d.tieClose = false
	}
	if d.tiePending {
		ev.TieOpen = true
		d.tiePending = false
		d.tieClose = true
	}

	d.dotPending = false
	d.accidental = model.NoAccidental
	return ev
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isDurationLetter(c byte) bool {
	switch c {
	case 'w', 'h', 'q', 'e', 's':
		return true
	}
	return false
}

// isPitchLetter accepts the uppercase note letters plus the lowercase ones
// that do not collide with a modifier letter ('b', 'e' and 's' always read
// as flat, eighth and sixteenth).
func isPitchLetter(c byte) bool {
	if c >= 'A' && c <= 'G' {
		return true
	}
	switch c {
	case 'a', 'c', 'd', 'f', 'g':
		return true
	}
	return false
}

func toPitch(c byte) model.Pitch {
	if c >= 'A' && c <= 'G' {
		return model.Pitch(c - 'A' + 'a')
	}
	return model.Pitch(c)
}
