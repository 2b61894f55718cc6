package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand represents a client submitting a review through the
// single-use link issued for a finished shipment. The token identifies the
// shipment; the client never authenticates.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	token   string
	rating  int
	comment *string

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand creates a review submission command.
func NewSubmitReviewCommand(token string, rating int, comment *string) (SubmitReviewCommand, error) {
	command := SubmitReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setToken(token),
		command.setRating(rating),
	); err != nil {
		return SubmitReviewCommand{}, err
	}

	command.comment = comment
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

// Token returns the signed review token.
func (c SubmitReviewCommand) Token() string {
	return c.token
}

// Rating returns the review rating.
func (c SubmitReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the optional free-text comment.
func (c SubmitReviewCommand) Comment() *string {
	return c.comment
}

func (c *SubmitReviewCommand) setToken(token string) error {
	if token == "" {
		return ErrTokenIsRequired
	}

	c.token = token
	return nil
}

func (c *SubmitReviewCommand) setRating(rating int) error {
	if rating < shipment.ReviewRatingMin || rating > shipment.ReviewRatingMax {
		return errs.NewValueIsOutOfRangeError(
			"rating", rating, shipment.ReviewRatingMin, shipment.ReviewRatingMax)
	}

	c.rating = rating
	return nil
}
