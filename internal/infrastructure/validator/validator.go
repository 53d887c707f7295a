package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/domain/entity"
)

// AppValidator implements the contract.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements contract.IValidator.
func NewValidator() contract.IValidator {
	return &AppValidator{validate: validator.New()}
}

var _ contract.IValidator = (*AppValidator)(nil)

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidateRating checks that a review rating lies within 1..5.
func (av *AppValidator) ValidateRating(rating int) error {
	if err := av.validate.Var(rating, "gte=1,lte=5"); err != nil {
		return entity.ErrInvalidRating
	}
	return nil
}
