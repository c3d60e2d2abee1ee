package domain

import "time"

// Staff represents a staff member who can be assigned to bookings
type Staff struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	Role      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
