package models

import "time"

// PublicProfile is the public view of a user plus social counts. Counts are
// computed at query time, never cached.
type PublicProfile struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	Bio            string    `json:"bio"`
	AvatarURL      string    `json:"avatar_url"`
	IsOnline       bool      `json:"is_online"`
	CreatedAt      time.Time `json:"created_at"`
	FollowersCount int64     `json:"followers_count"`
	FollowingCount int64     `json:"following_count"`
	RatingsCount   int64     `json:"ratings_count"`
	FavoritesCount int64     `json:"favorites_count"`
	IsFollowing    *bool     `json:"is_following,omitempty"` // set only when a viewer is known
}
