package domain

import "time"

const (
	MinValidityMonths = 1
	MaxValidityMonths = 12

	// DefaultScreenLimit is the screen count past which the plan form warns.
	DefaultScreenLimit = 3
)

type Plan struct {
	ID             string
	Name           string
	Screens        int
	ValidityMonths int
	Price          float64
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ClampValidity bounds months to the accepted plan validity range.
func ClampValidity(months int) int {
	return min(max(months, MinValidityMonths), MaxValidityMonths)
}
