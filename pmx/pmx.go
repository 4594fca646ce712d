// Package pmx renders decoded song events as PMX input.
//
// Note format (see PMX Manual, Section 2.2.1):
//
//	[<paren-open>]<note><basic-time-value><octave><dots><accidental>[<paren-close>]<space>
//
// Time values are 0/2/4/8/1 for whole through sixteenth, dots are a "d"
// after the octave digit, accidentals are "s"/"f", ties are bracketed with
// "( ... )" (closing after exactly one following note) and a triplet is an
// "x3" on its first member. Staves are separated with "/".
package pmx

import (
	"fmt"

	"github.com/8dcc/godsong-go/model"
	"github.com/8dcc/godsong-go/render"
)

var durations = map[model.DurationClass]string{
	model.Whole:     "0",
	model.Half:      "2",
	model.Quarter:   "4",
	model.Eighth:    "8",
	model.Sixteenth: "1",
}

// Renderer implements render.Renderer for the PMX dialect. tieOpen remembers
// that a "(" was printed and its ")" is still owed.
type Renderer struct {
	tieOpen bool
}

func New() *Renderer {
	return &Renderer{}
}

// Header writes the fixed PMX preamble: staves/instruments, the meter
// (mtrnuml, mtrdenl, mtrnmp, mtrdnp), pickup/key, layout, a blank
// instrument name, the clef and the output path.
func (r *Renderer) Header() string {
	return "1 1 4 4 4 4 0 0\n" +
		"0 4 20 0\n" +
		"\n" +
		"7\n" +
		"./\n\n"
}

func (r *Renderer) Footer() string {
	return "\n"
}

func (r *Renderer) Meter(mc model.MeterChange) string {
	return fmt.Sprintf("m%d/%d/%d/%d ", mc.Top, mc.Bottom, mc.Top, mc.Bottom)
}

func (r *Renderer) StaffBreak(sb model.StaffBreak) string {
	// A tie cut short at the boundary still needs its closing paren.
	if r.tieOpen {
		r.tieOpen = false
		return ") /\n"
	}
	return "/\n"
}

func (r *Renderer) Note(ev model.NoteEvent) (string, error) {
	duration, ok := durations[ev.Duration]
	if !ok {
		return "", &render.UnsupportedDurationError{Duration: ev.Duration}
	}

	var dots string
	if ev.Modifier.Kind == model.Dot {
		dots = "d"
	}

	if ev.IsRest() {
		return "r" + duration + dots + " ", nil
	}

	if ev.Octave < 1 || ev.Octave > 6 {
		return "", &render.UnsupportedOctaveError{Octave: ev.Octave}
	}

	var triplet string
	if ev.Modifier.Kind == model.TripletMember && ev.Modifier.Pos == 1 {
		// x3 on the first member covers the whole group.
		triplet = "x3"
	}

	var accidental string
	switch ev.Accidental {
	case model.Sharp:
		accidental = "s"
	case model.Flat:
		accidental = "f"
	}

	var openTie, closeTie string
	if ev.TieClose {
		closeTie = " )"
		r.tieOpen = false
	}
	if ev.TieOpen {
		openTie = "( "
		r.tieOpen = true
	}

	note := fmt.Sprintf("%s%c%s%d%s%s%s%s ",
		openTie, byte(ev.Pitch), duration, ev.Octave, dots, triplet, accidental, closeTie)
	return note, nil
}
