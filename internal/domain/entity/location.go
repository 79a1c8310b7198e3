package entity

import "time"

// Location representa una ubicación física donde se almacenan artículos
// (bodega, estantería, rack).
type Location struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
