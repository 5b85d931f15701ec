package model

// Source tracks where a piece came from, so any slice of it can be traced
// back to the exact note range and time offset of the original file.
type Source struct {
	Kind      string  `json:"kind"`
	Path      string  `json:"path,omitempty"`
	Start     int     `json:"start"`
	Finish    int     `json:"finish"`
	StartTime float64 `json:"start_time"`
}
