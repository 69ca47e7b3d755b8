package utils_test

import (
	"html"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appErrors "github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	"github.com/clothingmenvy-dot/menvy-client/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	validate := utils.NewValidator()

	t.Run("Success - Valid sale draft", func(t *testing.T) {
		draft := models.SaleDraft{ProductID: "p1", Quantity: 2, Price: decimal.RequireFromString("20.00")}

		assert.NoError(t, utils.ValidateStruct(validate, draft))
	})

	t.Run("Failure - Zero price is rejected", func(t *testing.T) {
		// Arrange
		draft := models.SaleDraft{ProductID: "p1", Quantity: 2, Price: decimal.Zero}

		// Act
		err := utils.ValidateStruct(validate, draft)

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Equal(t, "Field price must be greater than 0", appErr.Message)
	})

	t.Run("Failure - Every field is reported", func(t *testing.T) {
		draft := models.SaleDraft{}

		err := utils.ValidateStruct(validate, draft)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Contains(t, appErr.Detail, "Field productId is required")
		assert.Contains(t, appErr.Detail, "Field quantity must be greater than 0")
		assert.Contains(t, appErr.Detail, "Field price must be greater than 0")
	})

	t.Run("Failure - Negative product price", func(t *testing.T) {
		draft := models.ProductDraft{
			Name: "Cap", Category: "Clothing", Brand: "Nike", SKU: "CAP-1",
			Price: decimal.NewFromInt(-1),
		}

		err := utils.ValidateStruct(validate, draft)

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
	})

	t.Run("Failure - Invalid seller email", func(t *testing.T) {
		draft := models.SellerDraft{Name: "Ann", Email: "not-an-email", Phone: "555-0101"}

		err := utils.ValidateStruct(validate, draft)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "Field email must be a valid email address", appErr.Message)
	})
}

func TestDecodeJSONBody(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Shoes"}`))
		var draft models.CatalogDraft

		require.NoError(t, utils.DecodeJSONBody(req, &draft))
		assert.Equal(t, "Shoes", draft.Name)
	})

	t.Run("Failure - Empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var draft models.CatalogDraft

		assert.Error(t, utils.DecodeJSONBody(req, &draft))
	})

	t.Run("Failure - Malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		var draft models.CatalogDraft

		err := utils.DecodeJSONBody(req, &draft)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid JSON format")
	})
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Summer hat", utils.Sanitize(`  <b>Summer</b> hat<script>alert(1)</script> `))
	assert.Equal(t, "plain", utils.Sanitize("plain"))
	assert.Equal(t, "Home & Garden", utils.Sanitize("Home & Garden"))
	assert.Equal(t, "Home & Garden", utils.Sanitize("Home &amp; Garden"))
	assert.Equal(t, "5 < 6", utils.Sanitize("5 &lt; 6"))
}

func TestSanitize_EscapedMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Escaped script", input: "&lt;script&gt;alert(1)&lt;/script&gt;", expected: ""},
		{name: "Escaped tag around text", input: "&lt;b&gt;Bold&lt;/b&gt; tee", expected: "Bold tee"},
		{name: "Double escaped image", input: "&amp;lt;img src=x onerror=alert(1)&amp;gt;Scarf", expected: "Scarf"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := utils.Sanitize(tc.input)

			assert.Equal(t, tc.expected, got)
			assert.NotContains(t, got, "<")
		})
	}
}

func TestSanitize_DeepEscapingStaysEscaped(t *testing.T) {
	input := "<i>x</i>"
	for range 12 {
		input = html.EscapeString(input)
	}

	got := utils.Sanitize(input)

	assert.NotContains(t, got, "<i>")
}
