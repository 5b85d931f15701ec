package model

// PieceSummary is the piece-level view returned by the HTTP API.
type PieceSummary struct {
	Id       string  `json:"id"`
	Size     int     `json:"size"`
	Duration float64 `json:"duration"`
	Source   Source  `json:"source"`
}

type TrimRequestBody struct {
	Start     float64 `json:"start"`
	Finish    float64 `json:"finish"`
	Mode      string  `json:"mode,omitempty"`
	ShiftTime *bool   `json:"shift_time,omitempty"`
}

type NotesResponse struct {
	Piece PieceSummary `json:"piece"`
	Notes []Note       `json:"notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
