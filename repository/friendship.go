package repository

import "context"

type FriendshipRepository interface {
	// ConfirmedFriendIDs returns the distinct far endpoints of every
	// non-pending edge touching userID, in either orientation.
	ConfirmedFriendIDs(ctx context.Context, userID int64) ([]int64, error)
}
