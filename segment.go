package fasterwhisper

import "strings"

// Segment is one timestamped span of recognized speech, decoded from a
// single tuple of the inference call's return value.
type Segment struct {
	ID               int
	Seek             int
	Start            float64
	End              float64
	Text             string
	Temperature      float64
	AvgLogProb       float64
	CompressionRatio float64
	NoSpeechProb     float64
}

// Result pairs the full transcript with the segments it was built from.
// Text is derived: the ordered concatenation of each segment's Text with no
// separator inserted.
type Result struct {
	Text     string
	Segments []Segment
}

// String returns the full transcript.
func (r Result) String() string { return r.Text }

func newResult(segments []Segment) Result {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return Result{Text: b.String(), Segments: segments}
}
