// internal/services/review_service.go
package services

import (
	"fmt"

	"github.com/javajoker/storefront-admin/internal/crud"
	"github.com/javajoker/storefront-admin/internal/models"
	"github.com/javajoker/storefront-admin/internal/utils"
)

type ReviewController = crud.Controller[models.Review, models.ReviewForm]

type ReviewSchema struct{}

func NewReviewController(client crud.Collaborator, opts ...crud.Option) *ReviewController {
	return crud.New[models.Review, models.ReviewForm](ReviewSchema{}, client, opts...)
}

func (ReviewSchema) Entity() string { return "review" }

func (ReviewSchema) Endpoints() crud.Endpoints {
	return crud.Endpoints{
		List:   "/reviews",
		Create: "/createReviews",
		Update: "/updateReview/%d",
		Delete: "/deleteReview/%d",
	}
}

func (ReviewSchema) Key(r models.Review) int64 { return r.ReviewID }

func (ReviewSchema) FormOf(r models.Review) models.ReviewForm { return r.Form() }

// Payload validates user_id in both modes but only sends it on create.
func (ReviewSchema) Payload(form models.ReviewForm, mode crud.Mode) (interface{}, error) {
	if err := utils.ValidateStruct(form); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if mode == crud.ModeUpdate {
		return form.UpdatePayload()
	}
	return form.Payload()
}
