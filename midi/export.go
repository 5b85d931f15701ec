package midi

import (
	"math"
	"os"
	"sort"

	"github.com/pianoforge/midipiece/constants"
	"github.com/pianoforge/midipiece/piece"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type timedMessage struct {
	seconds float64
	isOff   bool
	msg     midi.Message
}

func secondsToTicks(seconds float64) int64 {
	return int64(math.Round(seconds * constants.ExportResolution * constants.ExportTempo / 60.0))
}

// Export renders a piece back into a single-track SMF at a fixed tempo.
// Notes become note on/off pairs, pedal events become CC 64 messages.
func Export(p piece.Piece, trackName string) *smf.SMF {
	var msgs []timedMessage
	for _, n := range p.Notes {
		msgs = append(msgs, timedMessage{
			seconds: n.Start,
			msg:     midi.NoteOn(0, n.Pitch, n.Velocity),
		})
		msgs = append(msgs, timedMessage{
			seconds: n.End,
			isOff:   true,
			msg:     midi.NoteOff(0, n.Pitch),
		})
	}
	for _, e := range p.Sustain {
		msgs = append(msgs, timedMessage{
			seconds: e.Time,
			msg:     midi.ControlChange(0, constants.SustainCC, e.Value),
		})
	}

	// offs come first at equal timestamps so retriggers stay well-formed
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].seconds != msgs[j].seconds {
			return msgs[i].seconds < msgs[j].seconds
		}
		return msgs[i].isOff && !msgs[j].isOff
	})

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(trackName))
	track.Add(0, smf.MetaTempo(constants.ExportTempo))
	track.Add(0, midi.ProgramChange(0, 0))

	var prevTicks int64
	for _, m := range msgs {
		ticks := secondsToTicks(m.seconds)
		track.Add(uint32(ticks-prevTicks), m.msg)
		prevTicks = ticks
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.ExportResolution)
	s.Add(track)
	return s
}

// WriteFile saves an exported piece to disk.
func WriteFile(s *smf.SMF, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = s.WriteTo(f)
	return err
}
