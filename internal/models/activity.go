package models

import "time"

// Activity types tracked in the ledger. Unfollow is intentionally not one of
// them: following is announced, unfollowing is silent.
const (
	ActivityRating   = "rating"
	ActivityFavorite = "favorite"
	ActivityFollow   = "follow"
)

// Activity is one immutable ledger entry. Content title/poster are captured at
// write time because the catalog item may change or disappear upstream; the
// actor's display fields are NOT stored here and get joined at read time.
// Entries are never updated or deleted, even when the underlying rating or
// favorite is removed.
type Activity struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"index"` // actor
	ActivityType   string    `json:"activity_type" gorm:"size:20;index"`
	ContentType    string    `json:"content_type,omitempty"` // movies, tv, anime
	ContentID      string    `json:"content_id,omitempty"`
	ContentTitle   string    `json:"content_title,omitempty"`
	ContentPoster  string    `json:"content_poster,omitempty"`
	RatingValue    *float64  `json:"rating_value,omitempty"`
	TargetUserID   *uint     `json:"target_user_id,omitempty"`
	TargetUsername string    `json:"target_username,omitempty"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`
}

// FeedItem is an activity entry joined with the actor's current display fields.
type FeedItem struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	Username       string    `json:"username"`
	AvatarURL      string    `json:"avatar_url"`
	ActivityType   string    `json:"activity_type"`
	ContentType    string    `json:"content_type,omitempty"`
	ContentID      string    `json:"content_id,omitempty"`
	ContentTitle   string    `json:"content_title,omitempty"`
	ContentPoster  string    `json:"content_poster,omitempty"`
	RatingValue    *float64  `json:"rating_value,omitempty"`
	TargetUserID   *uint     `json:"target_user_id,omitempty"`
	TargetUsername string    `json:"target_username,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
