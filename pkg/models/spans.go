package models

// Span is a contiguous region of text flagged by a detection source.
// Offsets are half-open byte offsets into the source text.
type Span struct {
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Category Category `json:"category"`
	// Score is the source's confidence in [0, 1]. Rule matches are always 1.0.
	Score float64 `json:"score"`
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Text returns the region of text the span covers.
func (s Span) Text(text string) string {
	return text[s.Start:s.End]
}

// MergedSpan is a Span selected as authoritative over its text region.
// Merged spans within one merge result never overlap and are ordered by
// ascending start.
type MergedSpan struct {
	Span
}
