package models

type Health struct {
	Status    string  `json:"status"`
	Database  string  `json:"database"`
	Timestamp *string `json:"timestamp,omitempty"`
}
