package models

// ScreenResponse is the JSON payload returned by POST /api/v1/screen.
type ScreenResponse struct {
	RunID    string           `json:"run_id"`
	Total    int              `json:"total"`
	Analyzed int              `json:"analyzed"`
	Reports  []AnalysisReport `json:"reports"`
	Failures []DocumentError  `json:"failures,omitempty"`
}
