package shipment

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

const (
	// ReviewRatingMin is the lowest accepted review rating.
	ReviewRatingMin = 1
	// ReviewRatingMax is the highest accepted review rating.
	ReviewRatingMax = 5
)

// ErrReviewIsNotConstructed is returned when a Review instance was not created
// through the NewReview constructor.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review is the client's one-time rating of a finished shipment.
// A shipment holds at most one review, created only after it reached a
// terminal status, via a single-use token issued to the client.
type Review struct {
	id        kernel.UUID
	rating    int
	comment   *string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewReview creates a validated Review. Rating must lie within
// [ReviewRatingMin..ReviewRatingMax]; comment is optional.
func NewReview(id kernel.UUID, rating int, comment *string, createdAt time.Time) (*Review, error) {
	review := &Review{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		review.setID(id),
		review.setRating(rating),
		review.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	review.comment = comment
	return review, nil
}

// Validate ensures the Review instance was properly constructed through NewReview.
func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// Rating returns the review rating in [ReviewRatingMin..ReviewRatingMax].
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the optional free-text comment, or nil.
func (r *Review) Comment() *string {
	return r.comment
}

// CreatedAt returns the review creation timestamp.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < ReviewRatingMin || rating > ReviewRatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, ReviewRatingMin, ReviewRatingMax)
	}
	r.rating = rating
	return nil
}

func (r *Review) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	r.createdAt = createdAt
	return nil
}
