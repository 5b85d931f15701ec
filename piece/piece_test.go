package piece

import (
	"testing"

	"github.com/pianoforge/midipiece/model"
	"github.com/stretchr/testify/assert"
)

func TestNewSortsByStart(t *testing.T) {
	notes := []model.Note{
		{Start: 2, End: 3, Pitch: 64, Velocity: 80},
		{Start: 0, End: 1, Pitch: 60, Velocity: 80},
		{Start: 1, End: 2, Pitch: 62, Velocity: 80},
	}
	p := New(notes, nil, model.Source{Kind: "test"})

	assert := assert.New(t)
	for i := 1; i < p.Size(); i++ {
		assert.LessOrEqual(p.Notes[i-1].Start, p.Notes[i].Start)
	}
	// input order untouched
	assert.Equal(2.0, notes[0].Start)
}

func TestNewSortIsStable(t *testing.T) {
	notes := []model.Note{
		{Start: 1, End: 2, Pitch: 60, Velocity: 80},
		{Start: 0, End: 1, Pitch: 72, Velocity: 80},
		{Start: 1, End: 3, Pitch: 64, Velocity: 80},
	}
	p := New(notes, nil, model.Source{Kind: "test"})

	assert := assert.New(t)
	assert.Equal(uint8(72), p.Notes[0].Pitch)
	// the two ties keep their insertion order
	assert.Equal(uint8(60), p.Notes[1].Pitch)
	assert.Equal(uint8(64), p.Notes[2].Pitch)
}

func TestDuration(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(5.5, samplePiece().Duration())
	assert.Equal(0.0, Piece{}.Duration())
}

func TestPitchSpan(t *testing.T) {
	lo, hi := samplePiece().PitchSpan()

	assert := assert.New(t)
	assert.Equal(uint8(60), lo)
	assert.Equal(uint8(67), hi)
}

func TestAppendDurationsAdd(t *testing.T) {
	a := samplePiece()
	b := FromNotes([]model.Note{
		{Start: 0, End: 1, Pitch: 70, Velocity: 80},
		{Start: 1, End: 2, Pitch: 72, Velocity: 80},
		{Start: 2, End: 3, Pitch: 74, Velocity: 80},
	})

	combined := a.Append(b)

	assert := assert.New(t)
	assert.Equal(a.Size()+b.Size(), combined.Size())
	assert.Equal(a.Duration()+b.Duration(), combined.Duration())
}

func TestAppendDoesNotModifyInputs(t *testing.T) {
	a := samplePiece()
	b := FromNotes([]model.Note{{Start: 0, End: 1, Pitch: 70, Velocity: 80}})
	aBefore := make([]model.Note, len(a.Notes))
	copy(aBefore, a.Notes)
	bBefore := make([]model.Note, len(b.Notes))
	copy(bBefore, b.Notes)

	_ = a.Append(b)

	assert := assert.New(t)
	assert.Equal(aBefore, a.Notes)
	assert.Equal(bBefore, b.Notes)
}

func TestNoteName(t *testing.T) {
	cases := []struct {
		pitch uint8
		want  string
	}{
		{60, "C4"},
		{61, "C#4"},
		{21, "A0"},
		{108, "C8"},
	}
	for _, c := range cases {
		n := model.Note{Pitch: c.pitch}
		assert.Equal(t, c.want, n.Name())
	}
}
