package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samikassu/crewboard/internal/ledger"
)

func TestUpdateProfileNormalizesTags(t *testing.T) {
	e := newTestEngine()
	snap := crewSnapshot(member("u1", "Styler", 0))

	tags := []string{" gym rat ", "coder"}
	avatar := "data:image/png;base64,abc"
	next, dirty, ok := e.UpdateProfile(snap, "u1", ledger.ProfileUpdate{Avatar: &avatar, CustomTags: &tags})

	assert.True(t, ok)
	assert.True(t, dirty.Users)
	u := next.UserByID("u1")
	assert.Equal(t, avatar, u.Avatar)
	assert.Equal(t, []string{"GYM RAT", "CODER"}, u.CustomTags)
}

func TestUpdateProfileNilFieldsLeaveValues(t *testing.T) {
	e := newTestEngine()
	u := member("u1", "Styler", 0)
	u.Avatar = "keep"
	u.CustomTags = []string{"OLD"}
	snap := crewSnapshot(u)

	next, _, ok := e.UpdateProfile(snap, "u1", ledger.ProfileUpdate{})

	assert.True(t, ok)
	assert.Equal(t, "keep", next.UserByID("u1").Avatar)
	assert.Equal(t, []string{"OLD"}, next.UserByID("u1").CustomTags)
}

func TestUpdateProfileMissingUserIsNoOp(t *testing.T) {
	e := newTestEngine()
	snap := crewSnapshot(member("u1", "Styler", 0))

	_, dirty, ok := e.UpdateProfile(snap, "ghost", ledger.ProfileUpdate{})

	assert.False(t, ok)
	assert.False(t, dirty.Any())
}
