package model

type AnalyzeRequestBody struct {
	Symbol string `json:"symbol"`
}

type DegreeTone struct {
	Degree     int `json:"degree"`
	Alteration int `json:"alteration"`
}

type AnalyzeResponse struct {
	RequestId  string       `json:"request_id"`
	Symbol     string       `json:"symbol"`
	Leftover   string       `json:"leftover,omitempty"`
	ChordTones []DegreeTone `json:"chord_tones"`
	ScaleTones []DegreeTone `json:"scale_tones"`
	Pitches    []int        `json:"pitches"`
	Bass       int          `json:"bass"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
