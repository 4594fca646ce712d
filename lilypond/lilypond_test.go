package lilypond

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/8dcc/godsong-go/model"
	"github.com/8dcc/godsong-go/render"
	"github.com/8dcc/godsong-go/song"
)

func renderSong(t *testing.T, input string) (string, []error) {
	t.Helper()
	var buf bytes.Buffer
	issues, err := render.Song(song.NewDecoder(input), New(), &buf)
	assert.NoError(t, err)
	return buf.String(), issues
}

func TestHeaderAndFooter(t *testing.T) {
	out, issues := renderSong(t, "")

	assert := assert.New(t)
	assert.Empty(issues)
	assert.Equal("\\version \"2.24.4\"\n{\n}\n", out)
}

func TestBasicNote(t *testing.T) {
	out, issues := renderSong(t, "C")

	assert := assert.New(t)
	assert.Empty(issues)
	assert.Contains(out, "c'4 ")
}

func TestOctaveMarks(t *testing.T) {
	cases := map[string]string{
		"1C": "c,,4",
		"2C": "c,4",
		"3C": "c4",
		"4C": "c'4",
		"5C": "c''4",
		"6C": "c'''4",
	}
	for input, want := range cases {
		out, issues := renderSong(t, input)
		assert.Empty(t, issues, input)
		assert.Contains(t, out, want+" ", input)
	}
}

func TestAccidentals(t *testing.T) {
	out, issues := renderSong(t, "#CbD")

	assert := assert.New(t)
	assert.Empty(issues)
	assert.Contains(out, "cis'4 ")
	assert.Contains(out, "des'4 ")
}

func TestDurationsAndDot(t *testing.T) {
	out, issues := renderSong(t, "wChDqDeDsD.C")

	assert := assert.New(t)
	assert.Empty(issues)
	assert.Contains(out, "c'1 ")
	assert.Contains(out, "d'2 ")
	assert.Contains(out, "d'4 ")
	assert.Contains(out, "d'8 ")
	assert.Contains(out, "d'16 ")
	assert.Contains(out, "c'16. ")
}

func TestTieSuffix(t *testing.T) {
	out, issues := renderSong(t, "(CC")

	assert := assert.New(t)
	assert.Empty(issues)
	assert.Contains(out, "c'4~ c'4 ")
}

func TestTupletBrackets(t *testing.T) {
	out, issues := renderSong(t, "etCDEF")

	assert := assert.New(t)
	assert.Empty(issues)
	assert.Contains(out, "\\tuplet 3/2 { c'8 d'8 e'8 } f'8 ")
}

func TestIncompleteTupletClosedAtEndOfInput(t *testing.T) {
	out, issues := renderSong(t, "tCD")

	assert := assert.New(t)
	assert.Len(issues, 1)
	assert.ErrorIs(issues[0], render.ErrIncompleteTriplet)
	assert.Contains(out, "\\tuplet 3/2 { c'4 d'4 } \n")
}

func TestIncompleteTupletClosedAtStaffBreak(t *testing.T) {
	out, issues := renderSong(t, "tCD\nE")

	assert := assert.New(t)
	assert.Len(issues, 1)
	assert.Contains(out, "} \n")
	assert.Contains(out, "e'4 ")
}

func TestMeterChange(t *testing.T) {
	out, issues := renderSong(t, "M6/8C")

	assert := assert.New(t)
	assert.Empty(issues)
	assert.Contains(out, "\\time 6/8 c'4 ")
}

func TestUnsupportedOctaveReported(t *testing.T) {
	out, issues := renderSong(t, "9C4D")

	assert := assert.New(t)
	assert.Len(issues, 1)
	var octErr *render.UnsupportedOctaveError
	assert.ErrorAs(issues[0], &octErr)
	assert.Equal(9, octErr.Octave)
	// Only the offending note is dropped.
	assert.NotContains(out, "c")
	assert.Contains(out, "d'4 ")
}

func TestBadTokenSkipsStaffAndKeepsEarlierOutput(t *testing.T) {
	out, issues := renderSong(t, "CZ\nD")

	assert := assert.New(t)
	assert.Len(issues, 1)
	var tokenErr *song.UnrecognizedTokenError
	assert.ErrorAs(issues[0], &tokenErr)
	assert.Contains(out, "c'4 ")
	assert.Contains(out, "d'4 ")
}

func TestRest(t *testing.T) {
	out, issues := renderSong(t, "eR.R")

	assert := assert.New(t)
	assert.Empty(issues)
	assert.Contains(out, "r8 ")
	assert.Contains(out, "r8. ")
}

func TestRenderedPitchesAreLowercase(t *testing.T) {
	out, _ := renderSong(t, "ABCDEFG")
	assert.Equal(t, out, string(bytes.ToLower([]byte(out))))
}

func TestUnknownDurationClassIsInternalError(t *testing.T) {
	_, err := New().Note(model.NoteEvent{
		Pitch:    model.PitchC,
		Octave:   4,
		Duration: model.DurationClass('x'),
	})
	var durErr *render.UnsupportedDurationError
	assert.ErrorAs(t, err, &durErr)
}
