package model

import "strconv"

// Note is a single musical event. Times are absolute seconds.
type Note struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Pitch    uint8   `json:"pitch"`
	Velocity uint8   `json:"velocity"`
}

func (n Note) Duration() float64 {
	return n.End - n.Start
}

// note names within one octave
var semis = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Name returns the pitch as '(note)(accidental)(octave number)', e.g. "C#4".
// Middle C (pitch 60) is "C4".
func (n Note) Name() string {
	return semis[n.Pitch%12] + strconv.Itoa(int(n.Pitch)/12-1)
}

// PedalEvent is a single sustain pedal (CC 64) sample.
type PedalEvent struct {
	Time  float64 `json:"time"`
	Value uint8   `json:"value"`
}
