package domain

import "time"

// Focus designates the participant who currently has the floor.
type Focus struct {
	PresenterID    UserID
	PresenterLabel string
	ItemID         *int64
	StartedAt      time.Time
}

func NewFocus(presenter Identity, itemID *int64, startedAt time.Time) *Focus {
	return &Focus{
		PresenterID:    presenter.UserID,
		PresenterLabel: presenter.Label(),
		ItemID:         itemID,
		StartedAt:      startedAt,
	}
}
