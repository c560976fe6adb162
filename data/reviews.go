package data

import (
	"time"

	"github.com/emzola/kritika/internal/validator"
)

// Review defines a scored critique of a title. At most one review exists per
// (author, title) pair, enforced by a composite unique key in storage.
type Review struct {
	ID        int64     `json:"id"`
	TitleID   int64     `json:"title_id"`
	UserID    int64     `json:"user_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Score     int8      `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	Version   int32     `json:"-"`
}

func ValidateReview(v *validator.Validator, review *Review) {
	v.Check(review.Text != "", "text", "must be provided")
	v.Check(review.Score >= 1, "score", "must be at least 1")
	v.Check(review.Score <= 10, "score", "must not be greater than 10")
}
