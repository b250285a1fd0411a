package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samikassu/crewboard/internal/infrastructure/validator"
)

func TestValidateName(t *testing.T) {
	v := validator.NewValidator()

	assert.NoError(t, v.ValidateName("Samson"))
	assert.Error(t, v.ValidateName(""))
	assert.Error(t, v.ValidateName("x"))
	assert.Error(t, v.ValidateName(strings.Repeat("a", 33)))
}

func TestValidateCustomTags(t *testing.T) {
	v := validator.NewValidator()

	assert.NoError(t, v.ValidateCustomTags(nil))
	assert.NoError(t, v.ValidateCustomTags([]string{"GYM", "CODER", "CHEF"}))
	assert.Error(t, v.ValidateCustomTags([]string{"A", "B", "C", "D"}), "more than three tags")
	assert.Error(t, v.ValidateCustomTags([]string{"WAYTOOLONGTAG"}), "tag over ten characters")
}

func TestValidateAvatar(t *testing.T) {
	v := validator.NewValidator()

	assert.NoError(t, v.ValidateAvatar(""))
	assert.NoError(t, v.ValidateAvatar("data:image/png;base64,abc"))
	assert.Error(t, v.ValidateAvatar(strings.Repeat("x", 2*1024*1024+1)))
}
