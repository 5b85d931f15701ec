// Package midi converts between standard MIDI files and note tables.
// The binary format itself is handled by gomidi.
package midi

import (
	"sort"

	"github.com/pianoforge/midipiece/constants"
	"github.com/pianoforge/midipiece/model"
	"github.com/pianoforge/midipiece/piece"
	"github.com/pianoforge/midipiece/sustain"
	"gitlab.com/gomidi/midi/v2/smf"
)

type noteEvent struct {
	time     float64
	pitch    uint8
	velocity uint8
	isOff    bool
}

// Load reads a MIDI file into a piece with sustain pedal expansion applied,
// the way a pianist would hear it.
func Load(path string) (piece.Piece, error) {
	return load(path, true)
}

// LoadRaw reads a MIDI file into a piece without touching note durations.
func LoadRaw(path string) (piece.Piece, error) {
	return load(path, false)
}

func load(path string, expandSustain bool) (piece.Piece, error) {
	s, err := ReadMidiFile(path)
	if err != nil {
		return piece.Piece{}, err
	}
	source := model.Source{Kind: "midi_file", Path: path}
	return FromSMF(s, source, expandSustain), nil
}

// FromSMF walks every track, pairs note on/off events into notes with
// absolute second timestamps and collects the sustain pedal samples.
func FromSMF(s *smf.SMF, source model.Source, expandSustain bool) piece.Piece {
	var events []noteEvent
	var pedal []model.PedalEvent

	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			seconds := float64(s.TimeAt(absTicks)) / 1e6
			var channel uint8
			var key uint8
			var velocity uint8
			var controller uint8
			var value uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				// a note-on with zero velocity is a note-off
				events = append(events, noteEvent{
					time:     seconds,
					pitch:    key,
					velocity: velocity,
					isOff:    velocity == 0,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, noteEvent{
					time:  seconds,
					pitch: key,
					isOff: true,
				})
			case event.Message.GetControlChange(&channel, &controller, &value):
				if controller == constants.SustainCC {
					pedal = append(pedal, model.PedalEvent{Time: seconds, Value: value})
				}
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].time != events[j].time {
			return events[i].time < events[j].time
		}
		return events[i].isOff && !events[j].isOff
	})

	notes := pairNotes(events)
	if expandSustain {
		notes = sustain.Apply(notes, pedal, constants.SustainThreshold)
	}
	return piece.New(notes, pedal, source)
}

type openNote struct {
	start    float64
	velocity uint8
}

// pairNotes matches each note-on with the next off event of the same
// pitch. A retriggered pitch closes the note that was still sounding.
// Events must already be sorted by time. Notes left open are dropped.
func pairNotes(events []noteEvent) []model.Note {
	var notes []model.Note
	pressed := make(map[uint8]openNote)

	for _, evt := range events {
		if evt.isOff {
			if on, ok := pressed[evt.pitch]; ok {
				notes = append(notes, model.Note{
					Start:    on.start,
					End:      evt.time,
					Pitch:    evt.pitch,
					Velocity: on.velocity,
				})
				delete(pressed, evt.pitch)
			}
			continue
		}
		if on, ok := pressed[evt.pitch]; ok {
			notes = append(notes, model.Note{
				Start:    on.start,
				End:      evt.time,
				Pitch:    evt.pitch,
				Velocity: on.velocity,
			})
		}
		pressed[evt.pitch] = openNote{start: evt.time, velocity: evt.velocity}
	}
	return notes
}
