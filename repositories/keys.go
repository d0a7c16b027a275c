package repositories

import (
	"fmt"
	"standup-lab/domain"
)

// Keys are zero-padded so that badger's lexical order matches numeric order.
func memberPrefix(teamID domain.TeamID) []byte {
	return []byte(fmt.Sprintf("team:%020d:member:", int64(teamID)))
}

func memberKey(teamID domain.TeamID, userID domain.UserID) []byte {
	return append(memberPrefix(teamID), string(userID)...)
}

func checkinKey(id int64) []byte {
	return []byte(fmt.Sprintf("checkin:%020d", id))
}

func itemKey(id int64) []byte {
	return []byte(fmt.Sprintf("item:%020d", id))
}
