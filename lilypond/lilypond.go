// Package lilypond renders decoded song events as LilyPond source.
//
// Note format:
//
//	<note>[<accidental><octave><basic-time-value><dots><tie>]<space>
//
// Accidentals are "is"/"es", octaves 1-6 map to ",," through "'''" around
// the bare octave 3, ties are a "~" suffix and triplets are wrapped in
// "\tuplet 3/2 { ... }".
package lilypond

import (
	"fmt"

	"github.com/8dcc/godsong-go/model"
	"github.com/8dcc/godsong-go/render"
)

var durations = map[model.DurationClass]string{
	model.Whole:     "1",
	model.Half:      "2",
	model.Quarter:   "4",
	model.Eighth:    "8",
	model.Sixteenth: "16",
}

var octaves = map[int]string{
	1: ",,",
	2: ",",
	3: "",
	4: "'",
	5: "''",
	6: "'''",
}

// Renderer implements render.Renderer for the LilyPond dialect. The only
// dialect-local state is whether a tuplet brace is currently open.
type Renderer struct {
	tupletOpen bool
}

func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Header() string {
	return "\\version \"2.24.4\"\n{\n"
}

func (r *Renderer) Footer() string {
	return "}\n"
}

func (r *Renderer) Meter(mc model.MeterChange) string {
	return fmt.Sprintf("\\time %d/%d ", mc.Top, mc.Bottom)
}

func (r *Renderer) StaffBreak(sb model.StaffBreak) string {
	if r.tupletOpen {
		r.tupletOpen = false
		return "} \n"
	}
	return "\n"
}

func (r *Renderer) Note(ev model.NoteEvent) (string, error) {
	duration, ok := durations[ev.Duration]
	if !ok {
		return "", &render.UnsupportedDurationError{Duration: ev.Duration}
	}

	var accidental, octave string
	if ev.IsRest() {
		// Rests have no pitch context, only a time value.
		var dots string
		if ev.Modifier.Kind == model.Dot {
			dots = "."
		}
		return r.wrap(ev.Modifier, "r"+duration+dots), nil
	}

	octave, ok = octaves[ev.Octave]
	if !ok {
		return "", &render.UnsupportedOctaveError{Octave: ev.Octave}
	}
	switch ev.Accidental {
	case model.Sharp:
		accidental = "is"
	case model.Flat:
		accidental = "es"
	}

	var dots, tie string
	if ev.Modifier.Kind == model.Dot {
		dots = "."
	}
	if ev.TieOpen {
		tie = "~"
	}

	note := string(byte(ev.Pitch)) + accidental + octave + duration + dots + tie
	return r.wrap(ev.Modifier, note), nil
}

// wrap places the tuplet braces around the three group members.
func (r *Renderer) wrap(m model.Modifier, note string) string {
	var prefix, suffix string
	if m.Kind == model.TripletMember {
		if m.Pos == 1 {
			prefix = "\\tuplet 3/2 { "
			r.tupletOpen = true
		}
		if m.Pos == 3 {
			suffix = "} "
			r.tupletOpen = false
		}
	}
	return prefix + note + " " + suffix
}
