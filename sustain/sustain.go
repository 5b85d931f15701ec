// Package sustain expands note durations according to sustain pedal data.
package sustain

import (
	"math"

	"github.com/pianoforge/midipiece/model"
)

type span struct {
	down float64
	up   float64
}

// downSpans groups consecutive pedal-down samples (value >= threshold)
// into [first sample, last sample] time spans.
func downSpans(pedal []model.PedalEvent, threshold uint8) []span {
	var spans []span
	var current *span
	for _, e := range pedal {
		if e.Value >= threshold {
			if current == nil {
				current = &span{down: e.Time, up: e.Time}
			} else {
				current.up = e.Time
			}
		} else if current != nil {
			spans = append(spans, *current)
			current = nil
		}
	}
	if current != nil {
		spans = append(spans, *current)
	}
	return spans
}

// Apply extends the end times of notes held while the sustain pedal is
// down. A note ending inside a pedal-down span rings until the next onset
// of the same pitch or the pedal release, whichever comes first; when no
// later onset of that pitch exists it rings until the release or its own
// end, whichever is later. Returns a new collection, inputs are untouched.
func Apply(notes []model.Note, pedal []model.PedalEvent, threshold uint8) []model.Note {
	out := make([]model.Note, len(notes))
	copy(out, notes)

	for _, sp := range downSpans(pedal, threshold) {
		for i := range out {
			if out[i].End < sp.down || out[i].End >= sp.up {
				continue
			}

			// next onset of the same pitch
			next := math.Inf(1)
			for _, m := range out {
				if m.Pitch == out[i].Pitch && m.Start > out[i].Start && m.Start < next {
					next = m.Start
				}
			}

			if math.IsInf(next, 1) {
				out[i].End = math.Max(out[i].End, sp.up)
			} else {
				out[i].End = math.Min(next, sp.up)
			}
		}
	}
	return out
}
