package domain

import "fmt"

// AdminSet is the immutable set of privileged user IDs for the monitored
// chat, plus the distinguished owner who receives review prompts.
// Built once at startup from the gateway's administrator list.
type AdminSet struct {
	OwnerID int64
	ids     map[int64]bool
}

// ChatAdmin is one entry of the gateway's administrator list
type ChatAdmin struct {
	UserID  int64
	IsOwner bool
}

// NewAdminSet builds an AdminSet from the gateway administrator list.
// Fails if no owner entry is present.
func NewAdminSet(admins []ChatAdmin) (AdminSet, error) {
	set := AdminSet{ids: make(map[int64]bool, len(admins))}
	for _, a := range admins {
		set.ids[a.UserID] = true
		if a.IsOwner {
			set.OwnerID = a.UserID
		}
	}
	if set.OwnerID == 0 {
		return AdminSet{}, fmt.Errorf("no owner among %d chat administrators", len(admins))
	}
	return set, nil
}

// Contains reports whether the user is privileged
func (s AdminSet) Contains(userID int64) bool {
	return s.ids[userID]
}
