package repositories

import (
	"context"
	"fmt"
	"standup-lab/domain"
	"standup-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
)

// ICheckinRepository keeps the minimal check-in and work item records
// needed to route notifications to the owning team.
type ICheckinRepository interface {
	TeamForCheckin(ctx context.Context, checkinID int64) (domain.TeamID, error)
	TeamForItem(ctx context.Context, itemID int64) (domain.TeamID, error)
	SaveCheckin(ctx context.Context, checkin domain.Checkin) error
	SaveItem(ctx context.Context, item domain.WorkItem) error
}

type CheckinRepository struct {
	db *badger.DB
}

func NewCheckinRepository(db *badger.DB) ICheckinRepository {
	return &CheckinRepository{db: db}
}

func (r CheckinRepository) TeamForCheckin(ctx context.Context, checkinID int64) (domain.TeamID, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var checkin domain.Checkin
	err := r.db.View(func(txn *badger.Txn) error {
		return get(txn, checkinKey(checkinID), &checkin)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, fmt.Errorf("%w: %d", errors.ErrCheckinNotFound, checkinID)
	}
	if err != nil {
		return 0, err
	}
	return checkin.TeamID, nil
}

// TeamForItem follows item -> check-in -> team in a single transaction.
func (r CheckinRepository) TeamForItem(ctx context.Context, itemID int64) (domain.TeamID, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var teamID domain.TeamID
	err := r.db.View(func(txn *badger.Txn) error {
		var item domain.WorkItem
		if err := get(txn, itemKey(itemID), &item); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %d", errors.ErrItemNotFound, itemID)
			}
			return err
		}
		var checkin domain.Checkin
		if err := get(txn, checkinKey(item.CheckinID), &checkin); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %d (item %d)", errors.ErrCheckinNotFound, item.CheckinID, itemID)
			}
			return err
		}
		teamID = checkin.TeamID
		return nil
	})
	return teamID, err
}

func (r CheckinRepository) SaveCheckin(ctx context.Context, checkin domain.Checkin) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if checkin.ID <= 0 || checkin.TeamID <= 0 {
		return fmt.Errorf("%w: checkin needs an id and a team", errors.ErrInvalidRequest)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return set(txn, checkinKey(checkin.ID), checkin)
	})
}

func (r CheckinRepository) SaveItem(ctx context.Context, item domain.WorkItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if item.ID <= 0 || item.CheckinID <= 0 {
		return fmt.Errorf("%w: item needs an id and a checkin", errors.ErrInvalidRequest)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return set(txn, itemKey(item.ID), item)
	})
}

func get(txn *badger.Txn, key []byte, v any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return cbor.Unmarshal(val, v)
	})
}

func set(txn *badger.Txn, key []byte, v any) error {
	data, err := cbor.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return txn.Set(key, data)
}
