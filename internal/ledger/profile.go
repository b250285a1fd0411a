package ledger

import (
	"strings"

	"github.com/samikassu/crewboard/internal/domain/entity"
)

// ProfileUpdate carries optional profile changes. Nil fields are left alone.
type ProfileUpdate struct {
	Avatar     *string
	CustomTags *[]string
}

// UpdateProfile applies avatar and tag changes to the user's own record.
// Tags are trimmed and upper-cased; validation of counts and lengths happens
// before the ledger is reached. A missing user is a silent no-op.
func (e *Engine) UpdateProfile(snap entity.Snapshot, userID string, update ProfileUpdate) (entity.Snapshot, Dirty, bool) {
	if snap.UserByID(userID) == nil {
		return snap, Dirty{}, false
	}
	next := snap.Clone()
	u := next.UserByID(userID)
	if update.Avatar != nil {
		u.Avatar = *update.Avatar
	}
	if update.CustomTags != nil {
		tags := make([]string, 0, len(*update.CustomTags))
		for _, tag := range *update.CustomTags {
			tags = append(tags, strings.ToUpper(strings.TrimSpace(tag)))
		}
		u.CustomTags = tags
	}
	return next, Dirty{Users: true}, true
}
