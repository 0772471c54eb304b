package model

import "encoding/json"

// Envelope is the wrapper every upstream response uses.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ActionResult is the outcome of a user action: a success flag plus an optional message.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
