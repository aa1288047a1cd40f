package models

import "time"

// Rating is one user's score for one catalog item. One row per (user, content);
// re-rating updates the row in place but still appends a fresh ledger entry.
type Rating struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;uniqueIndex:idx_rating_user_content"`
	ContentType string    `json:"content_type" gorm:"size:20;uniqueIndex:idx_rating_user_content"` // movies, tv, anime
	ContentID   string    `json:"content_id" gorm:"uniqueIndex:idx_rating_user_content"`
	Title       string    `json:"title"`
	PosterURL   string    `json:"poster_url"`
	Rating      float64   `json:"rating"`
	Review      string    `json:"review"`
	RatedAt     time.Time `json:"rated_at"`
}

type RatingCreateRequest struct {
	ContentType string  `json:"content_type" validate:"required,oneof=movies tv anime"`
	ContentID   string  `json:"content_id" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	PosterURL   string  `json:"poster_url"`
	Rating      float64 `json:"rating" validate:"required,min=0.5,max=10"`
	Review      string  `json:"review" validate:"max=2000"`
}

type RatingUpdateRequest struct {
	Rating float64 `json:"rating" validate:"required,min=0.5,max=10"`
	Review string  `json:"review" validate:"max=2000"`
}

// RatingStats summarizes a user's ratings.
type RatingStats struct {
	TotalRatings  int           `json:"total_ratings"`
	AverageRating float64       `json:"average_rating"`
	HighestRated  *RatedContent `json:"highest_rated"`
	LowestRated   *RatedContent `json:"lowest_rated"`
}

type RatedContent struct {
	Title     string  `json:"title"`
	Rating    float64 `json:"rating"`
	PosterURL string  `json:"poster_url"`
}
