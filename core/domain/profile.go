// ABOUTME: User profile domain model holding the free-text description
// ABOUTME: Provides the instance ID format check used by lookups and request validation

package domain

import "regexp"

// maxIDLength covers every ID generator the instance can be configured with
// (aid, aidx, meid, objectid, ulid).
const maxIDLength = 32

var idPattern = regexp.MustCompile(`^[0-9a-zA-Z]+$`)

// UserProfile is the read-only view of a user's profile
type UserProfile struct {
	// UserID is the owning user's identifier
	UserID string `json:"userId"`

	// Description is the profile's free text; nil means none was set
	Description *string `json:"description"`
}

// HasDescription reports whether the profile carries text worth translating
func (p *UserProfile) HasDescription() bool {
	return p != nil && p.Description != nil && *p.Description != ""
}

// IsValidID checks that id matches the instance ID format
func IsValidID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return idPattern.MatchString(id)
}
