package piece

import (
	"errors"
	"fmt"

	"github.com/pianoforge/midipiece/constants"
	"github.com/pianoforge/midipiece/model"
)

// SliceMode decides how Trim interprets its start/finish bounds.
type SliceMode int

const (
	// SliceStandard keeps notes whose start time lies within [start, finish].
	SliceStandard SliceMode = iota
	// SliceByEnd keeps notes that both start at or after start and end at
	// or before finish, so nothing in the slice rings past the bound.
	SliceByEnd
	// SliceByIndex treats start/finish as integer positions and keeps the
	// half-open range [start, finish).
	SliceByIndex
)

func (m SliceMode) String() string {
	switch m {
	case SliceStandard:
		return "standard"
	case SliceByEnd:
		return "by_end"
	case SliceByIndex:
		return "index"
	}
	return fmt.Sprintf("SliceMode(%d)", int(m))
}

// ParseSliceMode maps the wire/CLI names onto the mode enum.
func ParseSliceMode(s string) (SliceMode, error) {
	switch s {
	case "standard", "":
		return SliceStandard, nil
	case "by_end":
		return SliceByEnd, nil
	case "index":
		return SliceByIndex, nil
	}
	return SliceStandard, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("slice out of range")
	ErrEmptySelection  = errors.New("no notes in range")
	ErrUnknownMode     = errors.New("unknown slice mode")
)

// Trim returns a new piece holding only the notes selected by mode and the
// start/finish bounds, in their original relative order. With shiftTime the
// result is rebased so its earliest note starts at 0. The receiver is left
// untouched either way.
func (p Piece) Trim(start, finish float64, mode SliceMode, shiftTime bool) (Piece, error) {
	if start > finish {
		return Piece{}, fmt.Errorf("%w: start %v is after finish %v", ErrInvalidArgument, start, finish)
	}

	// first/last are the original positions of the outermost retained notes
	var first, last int
	var selected []model.Note

	switch mode {
	case SliceStandard:
		for i, n := range p.Notes {
			if n.Start >= start && n.Start <= finish {
				if len(selected) == 0 {
					first = i
				}
				last = i
				selected = append(selected, n)
			}
		}
		if len(selected) == 0 {
			return Piece{}, fmt.Errorf("%w: no note starts within [%v, %v]", ErrEmptySelection, start, finish)
		}
	case SliceByEnd:
		for i, n := range p.Notes {
			if n.Start >= start && n.End <= finish {
				if len(selected) == 0 {
					first = i
				}
				last = i
				selected = append(selected, n)
			}
		}
		if len(selected) == 0 {
			return Piece{}, fmt.Errorf("%w: no note fits within [%v, %v]", ErrEmptySelection, start, finish)
		}
	case SliceByIndex:
		i, j := int(start), int(finish)
		if float64(i) != start || float64(j) != finish {
			return Piece{}, fmt.Errorf("%w: index bounds must be integers, got %v and %v", ErrInvalidArgument, start, finish)
		}
		if i < 0 || j > len(p.Notes) {
			return Piece{}, fmt.Errorf("%w: [%d, %d) does not fit a piece of %d notes", ErrOutOfRange, i, j, len(p.Notes))
		}
		first, last = i, j-1
		selected = append(selected, p.Notes[i:j]...)
	default:
		return Piece{}, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}

	return p.extract(selected, first, last, shiftTime), nil
}

// TrimTime is Trim in standard mode with time shifting on.
func (p Piece) TrimTime(start, finish float64) (Piece, error) {
	return p.Trim(start, finish, SliceStandard, true)
}

// Slice keeps the positional range [i, j) and rebases it to start at 0.
func (p Piece) Slice(i, j int) (Piece, error) {
	return p.Trim(float64(i), float64(j), SliceByIndex, true)
}

// extract builds the output piece from the retained notes. Pedal events
// between the earliest retained start and the latest retained end (plus a
// ring-out margin) travel with the slice.
func (p Piece) extract(selected []model.Note, first, last int, shiftTime bool) Piece {
	out := Piece{Source: p.Source}
	out.Source.Start = p.Source.Start + first
	out.Source.Finish = p.Source.Start + last + 1

	if len(selected) == 0 {
		out.Source.Finish = out.Source.Start
		return out
	}

	minStart := selected[0].Start
	maxEnd := selected[0].End
	for _, n := range selected[1:] {
		if n.End > maxEnd {
			maxEnd = n.End
		}
	}

	var offset float64
	if shiftTime {
		offset = minStart
	}

	notes := make([]model.Note, 0, len(selected))
	for _, n := range selected {
		n.Start -= offset
		n.End -= offset
		notes = append(notes, n)
	}

	var sustain []model.PedalEvent
	for _, e := range p.Sustain {
		if e.Time >= minStart && e.Time <= maxEnd+constants.SustainRingOut {
			e.Time -= offset
			sustain = append(sustain, e)
		}
	}

	out.Notes = notes
	out.Sustain = sustain
	out.Source.StartTime = p.Source.StartTime + offset
	return out
}
