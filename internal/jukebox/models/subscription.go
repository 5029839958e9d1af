package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Subscription is a newsletter signup. Emails are unique.
type Subscription struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateSubscriptionInput struct {
	Email string `json:"email"`
}

func (in CreateSubscriptionInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email,
			validation.Required.Error("valid email is required"),
			is.EmailFormat.Error("valid email is required"),
		),
	)
}
