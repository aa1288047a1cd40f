package models

import "time"

// Favorite marks one catalog item as favorited by a user.
type Favorite struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;uniqueIndex:idx_fav_user_content"`
	ContentType string    `json:"content_type" gorm:"size:20;uniqueIndex:idx_fav_user_content"` // movies, tv, anime
	ContentID   string    `json:"content_id" gorm:"uniqueIndex:idx_fav_user_content"`
	Title       string    `json:"title"`
	PosterURL   string    `json:"poster_url"`
	AddedAt     time.Time `json:"added_at" gorm:"autoCreateTime"`
}

type FavoriteCreateRequest struct {
	ContentType string `json:"content_type" validate:"required,oneof=movies tv anime"`
	ContentID   string `json:"content_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	PosterURL   string `json:"poster_url"`
}
