package sustain

import (
	"testing"

	"github.com/pianoforge/midipiece/model"
	"github.com/stretchr/testify/assert"
)

func TestApplyExtendsToPedalRelease(t *testing.T) {
	notes := []model.Note{
		{Start: 0, End: 1, Pitch: 60, Velocity: 80},
	}
	pedal := []model.PedalEvent{
		{Time: 0.5, Value: 100},
		{Time: 1.5, Value: 100},
		{Time: 2.4, Value: 100},
		{Time: 2.5, Value: 0},
	}

	out := Apply(notes, pedal, 64)

	assert := assert.New(t)
	assert.Equal(2.4, out[0].End)
	assert.Equal(0.0, out[0].Start)
}

func TestApplyStopsAtNextSamePitchOnset(t *testing.T) {
	notes := []model.Note{
		{Start: 0, End: 1, Pitch: 60, Velocity: 80},
		{Start: 2, End: 3, Pitch: 60, Velocity: 80},
	}
	pedal := []model.PedalEvent{
		{Time: 0.5, Value: 100},
		{Time: 2.4, Value: 100},
	}

	out := Apply(notes, pedal, 64)

	// the first note rings only until the pitch is struck again
	assert.Equal(t, 2.0, out[0].End)
}

func TestApplyIgnoresNotesOutsideSpan(t *testing.T) {
	notes := []model.Note{
		{Start: 3, End: 4, Pitch: 60, Velocity: 80},
	}
	pedal := []model.PedalEvent{
		{Time: 0.5, Value: 100},
		{Time: 1.0, Value: 100},
	}

	out := Apply(notes, pedal, 64)

	assert.Equal(t, 4.0, out[0].End)
}

func TestApplyRespectsThreshold(t *testing.T) {
	notes := []model.Note{
		{Start: 0, End: 1, Pitch: 60, Velocity: 80},
	}
	pedal := []model.PedalEvent{
		{Time: 0.5, Value: 40},
		{Time: 2.0, Value: 40},
	}

	out := Apply(notes, pedal, 64)

	assert.Equal(t, 1.0, out[0].End)
}

func TestApplyHandlesSeparateSpans(t *testing.T) {
	notes := []model.Note{
		{Start: 0, End: 1, Pitch: 60, Velocity: 80},
		{Start: 4, End: 5, Pitch: 62, Velocity: 80},
	}
	pedal := []model.PedalEvent{
		{Time: 0.5, Value: 100},
		{Time: 1.5, Value: 100},
		{Time: 2.0, Value: 0},
		{Time: 4.5, Value: 100},
		{Time: 6.0, Value: 100},
	}

	out := Apply(notes, pedal, 64)

	assert := assert.New(t)
	assert.Equal(1.5, out[0].End)
	assert.Equal(6.0, out[1].End)
}

func TestApplyDoesNotMutateInputs(t *testing.T) {
	notes := []model.Note{
		{Start: 0, End: 1, Pitch: 60, Velocity: 80},
	}
	pedal := []model.PedalEvent{
		{Time: 0.5, Value: 100},
		{Time: 2.0, Value: 100},
	}

	_ = Apply(notes, pedal, 64)

	assert.Equal(t, 1.0, notes[0].End)
}
