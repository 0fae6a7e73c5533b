package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var forbidden = []string{"casino", "crypto", "free"}

func TestProductInput(t *testing.T) {
	price := decimal.NewFromFloat(49.99)

	t.Run("valid product passes", func(t *testing.T) {
		assert.NoError(t, ProductInput("Chair", "A wooden chair", 1, price, forbidden))
	})

	t.Run("negative price rejected", func(t *testing.T) {
		err := ProductInput("Chair", "A wooden chair", 1, decimal.NewFromInt(-5), forbidden)
		require.Error(t, err)
		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "price", verr.Field)
	})

	t.Run("zero price allowed", func(t *testing.T) {
		assert.NoError(t, ProductInput("Chair", "desc", 1, decimal.Zero, forbidden))
	})

	t.Run("missing name rejected", func(t *testing.T) {
		err := ProductInput("   ", "desc", 1, price, forbidden)
		require.Error(t, err)
		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Field)
	})

	t.Run("missing category rejected", func(t *testing.T) {
		err := ProductInput("Chair", "desc", 0, price, forbidden)
		require.Error(t, err)
		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "category_id", verr.Field)
	})

	t.Run("forbidden word in name rejected", func(t *testing.T) {
		err := ProductInput("Best Casino Chair", "desc", 1, price, forbidden)
		require.Error(t, err)
		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Field)
	})

	t.Run("forbidden word in description rejected", func(t *testing.T) {
		err := ProductInput("Chair", "pay with CRYPTO", 1, price, forbidden)
		require.Error(t, err)
		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "description", verr.Field)
	})
}

func TestBlogInput(t *testing.T) {
	assert.NoError(t, BlogInput("Title", "Content"))
	assert.Error(t, BlogInput("", "Content"))
	assert.Error(t, BlogInput("Title", ""))
	assert.Error(t, BlogInput("  ", "Content"))
}

func TestFeedbackInput(t *testing.T) {
	assert.NoError(t, FeedbackInput("Ann", "+7 900 000-00-00", "Hello"))
	assert.Error(t, FeedbackInput("", "+7 900", "Hello"))
	assert.Error(t, FeedbackInput("Ann", "", "Hello"))
	assert.Error(t, FeedbackInput("Ann", "+7 900", ""))
}

func TestRegistrationInput(t *testing.T) {
	assert.NoError(t, RegistrationInput("user@example.com", "secret1"))
	assert.Error(t, RegistrationInput("", "secret1"))
	assert.Error(t, RegistrationInput("not-an-email", "secret1"))
	assert.Error(t, RegistrationInput("user@example.com", "short"))
}
