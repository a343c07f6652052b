package models

// AnonymizeRequest accepts a plain string or an arbitrary JSON array or
// object. Arrays are anonymized item by item to bound the text passed to
// the detector per unit.
type AnonymizeRequest struct {
	Text interface{} `json:"text" validate:"required"`
}

type AnonymizeResponse struct {
	AnonymizedText string `json:"anonymized_text"`
	SessionID      string `json:"session_id"`
	EntitiesFound  int    `json:"entities_found"`
}

type RestoreRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Text      string `json:"text"       validate:"required"`
}

type RestoreResponse struct {
	RestoredText string `json:"restored_text"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
