package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"standup-lab/domain"
	"standup-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
)

// IMembershipRepository is the badger-backed membership store. It serves
// the coordinator (IsMember, CountMembers) and the seed tooling.
type IMembershipRepository interface {
	IsMember(ctx context.Context, teamID domain.TeamID, userID domain.UserID) (bool, error)
	CountMembers(ctx context.Context, teamID domain.TeamID) (int, error)
	GetMember(ctx context.Context, teamID domain.TeamID, userID domain.UserID) (domain.Member, error)
	ListMembers(ctx context.Context, teamID domain.TeamID) ([]domain.Member, error)
	AddMember(ctx context.Context, member domain.Member) error
	RemoveMember(ctx context.Context, teamID domain.TeamID, userID domain.UserID) error
}

type MembershipRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMembershipRepository(db *badger.DB, log *slog.Logger) IMembershipRepository {
	return &MembershipRepository{db: db, log: log}
}

func (r MembershipRepository) IsMember(ctx context.Context, teamID domain.TeamID, userID domain.UserID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(memberKey(teamID, userID))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("membership lookup for team %s: %w", teamID, err)
	}
	return true, nil
}

// CountMembers walks the team prefix without loading values.
func (r MembershipRepository) CountMembers(ctx context.Context, teamID domain.TeamID) (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = memberPrefix(teamID)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count members of team %s: %w", teamID, err)
	}
	return count, nil
}

func (r MembershipRepository) GetMember(ctx context.Context, teamID domain.TeamID, userID domain.UserID) (domain.Member, error) {
	if err := ctx.Err(); err != nil {
		return domain.Member{}, err
	}
	var member domain.Member
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(memberKey(teamID, userID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return cbor.Unmarshal(val, &member)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Member{}, fmt.Errorf("%w: user %s in team %s", errors.ErrNotMember, userID, teamID)
	}
	return member, err
}

func (r MembershipRepository) ListMembers(ctx context.Context, teamID domain.TeamID) ([]domain.Member, error) {
	var members []domain.Member
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = memberPrefix(teamID)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var member domain.Member
			if err := it.Item().Value(func(val []byte) error {
				return cbor.Unmarshal(val, &member)
			}); err != nil {
				r.log.Warn("Skipping unreadable member", "key", string(it.Item().Key()), "error", err)
				continue
			}
			members = append(members, member)
		}
		return nil
	})
	return members, err
}

// AddMember upserts the member.
func (r MembershipRepository) AddMember(ctx context.Context, member domain.Member) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if member.TeamID <= 0 || member.UserID == "" {
		return fmt.Errorf("%w: member needs a team and a user", errors.ErrInvalidRequest)
	}
	data, err := cbor.Marshal(member)
	if err != nil {
		return fmt.Errorf("marshal member: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(memberKey(member.TeamID, member.UserID), data)
	})
}

func (r MembershipRepository) RemoveMember(ctx context.Context, teamID domain.TeamID, userID domain.UserID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(memberKey(teamID, userID))
	})
}
