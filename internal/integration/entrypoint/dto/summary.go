package dto

// SummaryResponse represents the narrative summary response body.
type SummaryResponse struct {
	Available bool   `json:"available"`
	Summary   string `json:"summary,omitempty"`
	Cached    bool   `json:"cached,omitempty"`
}
