// Package entities contains core business entities.
package entities

import "time"

// Player is a domain representation of a squad player.
type Player struct {
	ID          int64
	Name        string
	BirthDate   time.Time
	Nationality string
}
