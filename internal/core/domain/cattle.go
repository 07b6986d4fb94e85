package domain

import "time"

// DefaultHealthScore is assigned to newly registered cattle until the first
// scan reports a real score.
const DefaultHealthScore = 85

// Cattle is a registered animal owned by exactly one user.
type Cattle struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	Age         int       `json:"age,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	MuzzleID    string    `json:"muzzleId"`
	HealthScore float64   `json:"healthScore"`
	LastCheckup time.Time `json:"lastCheckup"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}
