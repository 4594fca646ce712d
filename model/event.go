package model

// Pitch is a note letter class. Rest is a non-sounding placeholder that still
// occupies time.
type Pitch byte

const (
	PitchA Pitch = 'a' + iota
	PitchB
	PitchC
	PitchD
	PitchE
	PitchF
	PitchG
	Rest Pitch = 'r'
)

// Accidental applies to a single note only; it never persists.
type Accidental int

const (
	NoAccidental Accidental = iota
	Sharp
	Flat
)

// DurationClass is one of the five TempleOS letter durations. The class
// persists across notes until a new letter is seen.
type DurationClass byte

const (
	Whole     DurationClass = 'w'
	Half      DurationClass = 'h'
	Quarter   DurationClass = 'q'
	Eighth    DurationClass = 'e'
	Sixteenth DurationClass = 's'
)

// ModifierKind distinguishes the transient per-note duration modifiers.
type ModifierKind int

const (
	NoModifier ModifierKind = iota
	Dot
	TripletMember
)

// Modifier is the transient duration modifier attached to one note. For
// TripletMember, Pos is 1..3 within the group.
type Modifier struct {
	Kind ModifierKind
	Pos  int
}

// Event is one decoded element of a song: NoteEvent, MeterChange or
// StaffBreak.
type Event interface {
	songEvent()
}

// NoteEvent is one decoded note or rest, combining the persisted decoder
// state (octave, duration class) with the transient per-note values.
type NoteEvent struct {
	Pitch      Pitch
	Accidental Accidental
	Octave     int
	Duration   DurationClass
	Modifier   Modifier
	TieOpen    bool
	TieClose   bool
}

// MeterChange reports a new time signature. It is not a note and carries no
// duration of its own.
type MeterChange struct {
	Top    int
	Bottom int
}

// StaffBreak separates two staves (lines of input). IncompleteTriplet and
// OpenTie tell the renderer that a group was cut short at the boundary and
// any opened bracket must be closed defensively.
type StaffBreak struct {
	IncompleteTriplet bool
	OpenTie           bool
}

func (NoteEvent) songEvent()   {}
func (MeterChange) songEvent() {}
func (StaffBreak) songEvent()  {}

// IsRest reports whether the event occupies time without sounding.
func (n NoteEvent) IsRest() bool {
	return n.Pitch == Rest
}
