// Package models defines request and response types for the AutoDNS REST API.
// All types are JSON-serializable and include validation tags where appropriate.
package models

// ErrorResponse represents an API error response.
// Kind is set for rejected input ("invalid_address" or "invalid_domain").
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// StatusResponse represents a simple status response.
type StatusResponse struct {
	Status string `json:"status"`
}
