package domain

import "time"

type Role string

const (
	RoleMember  Role = "member"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// Member links a user to a team in the membership store.
type Member struct {
	TeamID      TeamID    `cbor:"team_id" yaml:"-"`
	UserID      UserID    `cbor:"user_id" yaml:"user_id"`
	Username    string    `cbor:"username" yaml:"username"`
	DisplayName string    `cbor:"display_name" yaml:"display_name"`
	Role        Role      `cbor:"role" yaml:"role"`
	JoinedAt    time.Time `cbor:"joined_at" yaml:"-"`
}

// Checkin is the daily entry of a user for a team.
type Checkin struct {
	ID     int64     `cbor:"id" yaml:"id"`
	TeamID TeamID    `cbor:"team_id" yaml:"-"`
	UserID UserID    `cbor:"user_id" yaml:"user_id"`
	Date   time.Time `cbor:"date" yaml:"date"`
}

// WorkItem belongs to a check-in and, through it, to a team.
type WorkItem struct {
	ID        int64  `cbor:"id" yaml:"id"`
	CheckinID int64  `cbor:"checkin_id" yaml:"-"`
	Title     string `cbor:"title" yaml:"title"`
}
