// Package render drives a song.Decoder through a dialect Renderer, writing
// the produced fragments to an output stream.
package render

import (
	"fmt"
	"io"

	"github.com/8dcc/godsong-go/model"
	"github.com/8dcc/godsong-go/song"
)

// Renderer maps decoded events to text fragments of one output dialect.
// Implementations own their bracket-placement state (open tuplet braces,
// pending tie parens) but never reinterpret the musical state carried on the
// events.
type Renderer interface {
	Header() string
	Note(ev model.NoteEvent) (string, error)
	Meter(mc model.MeterChange) string
	StaffBreak(sb model.StaffBreak) string
	Footer() string
}

// UnsupportedOctaveError reports an octave the dialect has no spelling for.
type UnsupportedOctaveError struct {
	Octave int
}

func (e *UnsupportedOctaveError) Error() string {
	return fmt.Sprintf("unsupported octave: %v", e.Octave)
}

// UnsupportedDurationError reports a duration class outside the dialect's
// lookup table. Seeing one means an internal inconsistency, not bad input.
type UnsupportedDurationError struct {
	Duration model.DurationClass
}

func (e *UnsupportedDurationError) Error() string {
	return fmt.Sprintf("unsupported duration class: %q", byte(e.Duration))
}

// ErrIncompleteTriplet marks a triplet group cut short by a staff break or
// the end of the song. The bracket is still closed in the output.
var ErrIncompleteTriplet = fmt.Errorf("triplet group incomplete at staff boundary")

// Song decodes the whole flattened song and writes each rendered fragment to
// w. Decode and render errors do not abort the run: the offending staff is
// skipped (decode) or the event dropped (render), and the issue is collected
// in the returned slice. The only fatal error is a write failure.
func Song(dec *song.Decoder, r Renderer, w io.Writer) ([]error, error) {
	var issues []error

	if _, err := io.WriteString(w, r.Header()); err != nil {
		return issues, err
	}

	for {
		ev, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Bad token: report it, drop the rest of the staff and
			// resume on the next one.
			issues = append(issues, err)
			sb := dec.SkipStaff()
			if werr := write(w, r.StaffBreak(sb)); werr != nil {
				return issues, werr
			}
			continue
		}

		var frag string
		switch e := ev.(type) {
		case model.NoteEvent:
			frag, err = r.Note(e)
			if err != nil {
				issues = append(issues, err)
				continue
			}
		case model.MeterChange:
			frag = r.Meter(e)
		case model.StaffBreak:
			if e.IncompleteTriplet {
				issues = append(issues, ErrIncompleteTriplet)
			}
			frag = r.StaffBreak(e)
		}
		if err := write(w, frag); err != nil {
			return issues, err
		}
	}

	if err := write(w, r.Footer()); err != nil {
		return issues, err
	}
	return issues, nil
}

func write(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s)
	return err
}
