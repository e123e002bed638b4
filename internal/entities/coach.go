// Package entities contains core business entities.
package entities

import "time"

// Coach is a domain representation of a team coach.
type Coach struct {
	ID          int64
	Name        string
	BirthDate   time.Time
	Nationality string
}
