package models

type (
	// Error represents any erroneous response
	Error struct {
		Error string `json:"error"`
	}
)
