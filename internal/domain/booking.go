package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookingStatusNew is the status assigned to every booking at creation.
// Status is the only booking field mutated after creation, and only through
// the admin update operation.
const BookingStatusNew = "new"

// Booking represents a single reservation request against a Tour.
// TourID must have referenced an active tour at the instant of creation;
// nothing is enforced if the tour is deactivated afterwards.
type Booking struct {
	ID          int64     `json:"id"`
	TourID      int64     `json:"tour_id"`
	TgUserID    *int64    `json:"tg_user_id,omitempty"`
	TgUsername  *string   `json:"tg_username,omitempty"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	PeopleCount int       `json:"people_count"`
	DateTime    DateTime  `json:"date_time"`
	Comment     *string   `json:"comment,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// DateTime is a time.Time that also accepts the zone-less JSON form
// "2006-01-02T15:04:05" sent by the public booking widget. Zone-less values
// are interpreted as UTC. Marshalling always emits RFC 3339.
type DateTime struct {
	time.Time
}

// UnmarshalJSON parses either an RFC 3339 timestamp or a naive
// "2006-01-02T15:04:05" one.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date_time %q", s)
}

// MarshalJSON emits the wrapped time in RFC 3339.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return d.Time.MarshalJSON()
}
