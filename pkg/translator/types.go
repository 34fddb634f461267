// ABOUTME: Public types for the translator library API
// ABOUTME: Re-exports the domain models callers see in results

package translator

import "profile-translate-api/core/domain"

// Translation is a translated description and its detected source language
type Translation = domain.Translation

// InstanceMeta holds the provider settings of the instance
type InstanceMeta = domain.InstanceMeta

// UserProfile is a user's profile as stored
type UserProfile = domain.UserProfile
