package oracle

import "falnama/internal/core/script"

// InterpretRequest describes one interpretation to generate upstream
type InterpretRequest struct {
	Name   string        `json:"name"`
	System script.System `json:"system"`
	Number int           `json:"number"`
	Locale string        `json:"locale,omitempty"`
}

// interpretResponse is the upstream wire shape; only Text is consumed
type interpretResponse struct {
	Text  string `json:"text"`
	Model string `json:"model,omitempty"`
}
