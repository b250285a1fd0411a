package entity

import (
	"time"
)

// User represents a crew member in the system
type User struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Role          UserRole  `bson:"role" json:"role"`
	Points        int       `bson:"points" json:"points"`
	Level         int       `bson:"level" json:"level"`
	JoinedAt      time.Time `bson:"joined_at" json:"joined_at"`
	DeviceDetails string    `bson:"device_details,omitempty" json:"device_details,omitempty"`
	Avatar        string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CustomTags    []string  `bson:"custom_tags,omitempty" json:"custom_tags,omitempty"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRolePending  UserRole = "PENDING"
	UserRoleBoy      UserRole = "BOY"
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleRejected UserRole = "REJECTED"
)

func DefaultRole() UserRole {
	return UserRolePending
}

// LevelForPoints derives the level from a point total. Level is never stored
// independently of points; callers recompute it after every point change.
func LevelForPoints(points int) int {
	level := points/1000 + 1
	if level > 10 {
		level = 10
	}
	return level
}

// IsActiveMember reports whether the user may perform regular ledger actions.
func (u *User) IsActiveMember() bool {
	return u.Role == UserRoleBoy || u.Role == UserRoleAdmin
}

// Clone returns a deep copy of the user.
func (u User) Clone() User {
	c := u
	if u.CustomTags != nil {
		c.CustomTags = append([]string(nil), u.CustomTags...)
	}
	return c
}
