package users_models

import "github.com/google/uuid"

// Caller is the identity carried by a verified access token. It is a
// claim, not a stored record: derived from token bytes plus the signing
// secret, immutable for the duration of a request, never persisted.
type Caller struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
}
