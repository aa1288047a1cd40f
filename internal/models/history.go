package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HistoryEntry is one watch-history record (MongoDB). History is not a
// trackable action and never reaches the activity ledger.
type HistoryEntry struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      uint               `json:"user_id" bson:"user_id"`
	ContentType string             `json:"content_type" bson:"content_type"` // movies, tv, anime
	ContentID   string             `json:"content_id" bson:"content_id"`
	Title       string             `json:"title" bson:"title"`
	PosterURL   string             `json:"poster_url" bson:"poster_url"`
	ViewedAt    time.Time          `json:"viewed_at" bson:"viewed_at"`
}

type HistoryCreateRequest struct {
	ContentType string `json:"content_type" validate:"required,oneof=movies tv anime"`
	ContentID   string `json:"content_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	PosterURL   string `json:"poster_url"`
}
