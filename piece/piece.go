// Package piece holds piano performances as ordered note tables and
// implements slicing over them.
package piece

import (
	"sort"

	"github.com/pianoforge/midipiece/model"
)

// Piece is an ordered table of notes with the sustain pedal events that
// accompany them. Notes are sorted by start time; ties keep the order the
// notes were given in. Pieces are treated as values: no operation mutates
// a piece it was called on.
type Piece struct {
	Notes   []model.Note
	Sustain []model.PedalEvent
	Source  model.Source
}

// New copies the given notes, stable-sorts them by start time and wraps
// them in a Piece.
func New(notes []model.Note, sustain []model.PedalEvent, source model.Source) Piece {
	ns := make([]model.Note, len(notes))
	copy(ns, notes)
	sort.SliceStable(ns, func(i, j int) bool {
		return ns[i].Start < ns[j].Start
	})
	ss := make([]model.PedalEvent, len(sustain))
	copy(ss, sustain)
	sort.SliceStable(ss, func(i, j int) bool {
		return ss[i].Time < ss[j].Time
	})
	return Piece{Notes: ns, Sustain: ss, Source: source}
}

// FromNotes builds a piece from tabular note data with no pedal events.
func FromNotes(notes []model.Note) Piece {
	return New(notes, nil, model.Source{Kind: "notes"})
}

func (p Piece) Size() int {
	return len(p.Notes)
}

// Duration is the time between the earliest start and the latest end.
// An empty piece has duration 0.
func (p Piece) Duration() float64 {
	if len(p.Notes) == 0 {
		return 0
	}
	lo := p.Notes[0].Start
	hi := p.Notes[0].End
	for _, n := range p.Notes[1:] {
		if n.End > hi {
			hi = n.End
		}
	}
	return hi - lo
}

// PitchSpan returns the lowest and highest pitch in the piece.
func (p Piece) PitchSpan() (lo uint8, hi uint8) {
	if len(p.Notes) == 0 {
		return 0, 0
	}
	lo, hi = p.Notes[0].Pitch, p.Notes[0].Pitch
	for _, n := range p.Notes[1:] {
		if n.Pitch < lo {
			lo = n.Pitch
		}
		if n.Pitch > hi {
			hi = n.Pitch
		}
	}
	return lo, hi
}

// Append concatenates another piece after this one. The other piece's
// times are shifted by this piece's duration, so the durations add up.
// Neither input is modified.
func (p Piece) Append(other Piece) Piece {
	offset := p.Duration()

	notes := make([]model.Note, 0, len(p.Notes)+len(other.Notes))
	notes = append(notes, p.Notes...)
	for _, n := range other.Notes {
		n.Start += offset
		n.End += offset
		notes = append(notes, n)
	}

	sustain := make([]model.PedalEvent, 0, len(p.Sustain)+len(other.Sustain))
	sustain = append(sustain, p.Sustain...)
	for _, e := range other.Sustain {
		e.Time += offset
		sustain = append(sustain, e)
	}

	return New(notes, sustain, p.Source)
}
