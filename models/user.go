package models

import "time"

// User is a teen account. Real identity stays with the external identity
// provider; therapists only ever see the Alias.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Alias     string    `bson:"alias" json:"alias"` // anonymized display name
	Email     string    `bson:"email" json:"email"`
	AvatarURL string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
