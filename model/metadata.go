package model

// PieceMetadata is what the metadata table knows about a performance.
type PieceMetadata struct {
	Composer string `json:"composer"`
	Title    string `json:"title"`
	Year     uint   `json:"year,omitempty"`
}

type FileNumToMidiPath = map[uint32]string
