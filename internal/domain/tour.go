// Package domain contains the core data types for the tour-booking service.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, notify, handler).
package domain

// Tour represents a bookable offering managed by admins.
// Only tours with IsActive set are eligible for booking.
type Tour struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Type          string   `json:"type"`
	Description   *string  `json:"description,omitempty"`
	PriceFrom     *float64 `json:"price_from,omitempty"`
	DurationHours *int     `json:"duration_hours,omitempty"`
	IsActive      bool     `json:"is_active"`
}
