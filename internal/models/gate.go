package models

import "time"

// GateChallenge carries the shared products-area credentials.
type GateChallenge struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type GateStatus struct {
	Status    string     `json:"status"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
