package models

import "context"

// DetectionSource produces candidate spans for a text. Sources run
// independently; a failing source degrades to no findings rather than
// failing the request.
type DetectionSource interface {
	Name() string
	Detect(ctx context.Context, text string) ([]Span, error)
}

// Wire types for the external entity-extraction service.

type EntityRequestRecord struct {
	UUID     string `json:"uuid"`
	Text     string `json:"text"`
	Language string `json:"language"`
}

type EntityRequest struct {
	Texts     []EntityRequestRecord `json:"texts"`
	Labels    []string              `json:"labels"`
	Threshold float64               `json:"threshold"`
}

type EntitySpan struct {
	Start int     `json:"start"`
	End   int     `json:"end"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type EntityResponseRecord struct {
	UUID     string       `json:"uuid"`
	Entities []EntitySpan `json:"entities"`
}

type EntityResponse struct {
	Texts []EntityResponseRecord `json:"texts"`
}
