// internal/models/review.go
package models

import (
	"strconv"
	"time"
)

type Review struct {
	ReviewID   int64     `json:"review_id"`
	UserID     int64     `json:"user_id"`
	ProductID  int64     `json:"product_id"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReviewForm struct {
	UserID     string `json:"user_id" label:"User ID" validate:"notblank,int,int_min=1"`
	ProductID  string `json:"product_id" label:"Product ID" validate:"notblank,int,int_min=1"`
	Rating     string `json:"rating" label:"Rating" validate:"notblank,int,int_min=1,int_max=5"`
	ReviewText string `json:"review_text" label:"Review" validate:"notblank"`
}

type ReviewPayload struct {
	UserID     int64  `json:"user_id"`
	ProductID  int64  `json:"product_id"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
}

// ReviewUpdatePayload omits user_id: a review's author cannot change.
type ReviewUpdatePayload struct {
	ProductID  int64  `json:"product_id"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
}

func (r Review) Form() ReviewForm {
	return ReviewForm{
		UserID:     strconv.FormatInt(r.UserID, 10),
		ProductID:  strconv.FormatInt(r.ProductID, 10),
		Rating:     strconv.Itoa(r.Rating),
		ReviewText: r.ReviewText,
	}
}

func (f ReviewForm) Payload() (ReviewPayload, error) {
	userID, err := parseID("user_id", f.UserID)
	if err != nil {
		return ReviewPayload{}, err
	}
	productID, err := parseID("product_id", f.ProductID)
	if err != nil {
		return ReviewPayload{}, err
	}
	rating, err := parseInt("rating", f.Rating)
	if err != nil {
		return ReviewPayload{}, err
	}

	return ReviewPayload{
		UserID:     userID,
		ProductID:  productID,
		Rating:     rating,
		ReviewText: f.ReviewText,
	}, nil
}

func (f ReviewForm) UpdatePayload() (ReviewUpdatePayload, error) {
	p, err := f.Payload()
	if err != nil {
		return ReviewUpdatePayload{}, err
	}

	return ReviewUpdatePayload{
		ProductID:  p.ProductID,
		Rating:     p.Rating,
		ReviewText: p.ReviewText,
	}, nil
}
