package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/samikassu/crewboard/internal/usecase/contract"
)

const (
	maxNameLength   = 32
	maxCustomTags   = 3
	maxTagLength    = 10
	maxAvatarLength = 2 * 1024 * 1024 // 2MB, base64 payload included
)

// AppValidator implements the usecasecontract.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecasecontract.IValidator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

// ValidateName checks a candidate display name.
func (av *AppValidator) ValidateName(name string) error {
	if err := av.validate.Var(name, fmt.Sprintf("required,min=2,max=%d", maxNameLength)); err != nil {
		return fmt.Errorf("name must be 2-%d characters", maxNameLength)
	}
	return nil
}

// ValidateCustomTags enforces at most 3 tags of at most 10 characters each.
func (av *AppValidator) ValidateCustomTags(tags []string) error {
	if len(tags) > maxCustomTags {
		return fmt.Errorf("max %d tags allowed", maxCustomTags)
	}
	for _, tag := range tags {
		if err := av.validate.Var(tag, fmt.Sprintf("required,max=%d", maxTagLength)); err != nil {
			return fmt.Errorf("tag too long (max %d chars)", maxTagLength)
		}
	}
	return nil
}

// ValidateAvatar caps the avatar blob at 2MB.
func (av *AppValidator) ValidateAvatar(avatar string) error {
	if len(avatar) > maxAvatarLength {
		return fmt.Errorf("image too large (max 2MB)")
	}
	return nil
}
