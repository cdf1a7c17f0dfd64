package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tutoring modes. "on campus" matches the wire value used by the frontend.
const (
	ModeOnline   = "online"
	ModeOnCampus = "on campus"
)

// Slot is one bookable (day, time-range, mode) tuple for a tutor.
type Slot struct {
	Day  string `json:"day"`  // "Monday" .. "Sunday"
	Time string `json:"time"` // "HH:MM-HH:MM"
	Mode string `json:"mode"` // "online" | "on campus"
}

type Tutor struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Bio          string     `json:"bio"`
	Skills       []string   `json:"skills"`
	Mode         string     `json:"mode"`
	Availability []Slot     `json:"availability"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	DeletedAt    *time.Time `json:"-"`
	IsDeleted    bool       `json:"-"`
}
