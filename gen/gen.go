// Package gen produces random GodSong strings the way the TempleOS
// GodSongStr routine does: a beat-by-beat random walk over a small set of
// rhythm cells, writing octave digits and duration letters only when they
// change.
package gen

import (
	"math/rand"
	"strings"
)

// Complexity selects the pool of rhythm cells a song draws from.
type Complexity int

const (
	Simple Complexity = iota
	Normal
	Complex
)

// rhythm cells, one beat each
const (
	cellQuarter     = iota // q
	cellEighthPair         // e e
	cellTriplet            // e-triplet of 3
	cellSixteenths         // s s s s
	cellDottedPair         // e. s
	cellEighth16s          // e s s
	cell16sEighth          // s s e
)

var pools = map[Complexity][]int{
	Simple: {cellQuarter, cellQuarter, cellQuarter, cellQuarter, cellEighthPair},
	Normal: {cellQuarter, cellQuarter, cellEighthPair, cellTriplet, cellSixteenths},
	Complex: {cellQuarter, cellQuarter, cellEighthPair, cellEighthPair, cellDottedPair,
		cellTriplet, cellEighth16s, cell16sEighth, cellSixteenths},
}

// Generator carries the walk state: the base octave, the octave last
// written to the output and whether rests may appear. Terry leaves rests
// off.
type Generator struct {
	rng        *rand.Rand
	baseOct    int
	writtenOct int
	useRests   bool
}

// New returns a generator drawing from rng. Passing a seeded source makes
// the output reproducible.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, baseOct: 4}
}

// UseRests allows the walk to occasionally emit rests instead of notes.
func (g *Generator) UseRests(v bool) {
	g.useRests = v
}

// note appends one random note (or rest), preceded by an octave digit only
// when the effective octave changed.
func (g *Generator) note(b *strings.Builder, random int) {
	if random == 0 && g.useRests {
		b.WriteByte('R')
		return
	}

	random /= 2
	oct := g.baseOct
	if random >= 3 {
		oct = g.baseOct + 1
	}
	if g.writtenOct != oct {
		g.writtenOct = oct
		b.WriteByte(byte('0' + oct))
	}

	if random == 0 {
		b.WriteByte('G')
	} else {
		b.WriteByte(byte('A' + random - 1))
	}
}

// Song generates a melody of beats beats (8, or 6 for a 6/8 song).
func (g *Generator) Song(beats int, complexity Complexity) string {
	var b strings.Builder

	// Start above the base octave so the first note always writes a digit.
	g.writtenOct = g.baseOct + 1
	b.WriteByte(byte('0' + g.writtenOct))
	if beats == 6 {
		b.WriteString("M6/8")
	}

	pool := pools[complexity]
	last := -1
	for i := 0; i < beats; i++ {
		cell := pool[g.rng.Intn(256)%len(pool)]

		switch cell {
		case cellEighthPair:
			if last != cellEighthPair {
				b.WriteByte('e')
			}
			g.note(&b, g.rng.Intn(16))
			g.note(&b, g.rng.Intn(16))

		case cellDottedPair:
			b.WriteString("e.")
			g.note(&b, g.rng.Intn(16))
			b.WriteByte('s')
			g.note(&b, g.rng.Intn(16))
			cell = cellSixteenths

		case cellTriplet:
			if last != cellTriplet {
				b.WriteByte('e')
			}
			// One 't' per group of three; the marker does not persist.
			b.WriteByte('t')
			g.note(&b, g.rng.Intn(16))
			g.note(&b, g.rng.Intn(16))
			g.note(&b, g.rng.Intn(16))

		case cellEighth16s:
			if last != cellEighthPair {
				b.WriteByte('e')
			}
			g.note(&b, g.rng.Intn(16))
			b.WriteByte('s')
			g.note(&b, g.rng.Intn(16))
			g.note(&b, g.rng.Intn(16))
			cell = cellSixteenths

		case cell16sEighth:
			if last != cellSixteenths {
				b.WriteByte('s')
			}
			g.note(&b, g.rng.Intn(16))
			g.note(&b, g.rng.Intn(16))
			b.WriteByte('e')
			g.note(&b, g.rng.Intn(16))
			cell = cellEighthPair

		case cellSixteenths:
			if last != cellSixteenths {
				b.WriteByte('s')
			}
			// Terry repeats a random two-note figure here.
			r1 := g.rng.Intn(16)
			r2 := g.rng.Intn(16)
			g.note(&b, r1)
			g.note(&b, r2)
			g.note(&b, r1)
			g.note(&b, r2)

		default:
			if last != cellQuarter {
				b.WriteByte('q')
			}
			g.note(&b, g.rng.Intn(16))
		}

		last = cell
	}

	return b.String()
}
