package views_test

import (
	"fmt"
	"testing"

	appErrors "github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	"github.com/clothingmenvy-dot/menvy-client/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func products() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Leather Cap", SKU: "CAP-001", Category: "Clothing", Brand: "Nike"},
		{ID: "p2", Name: "Phone", SKU: "PH-200", Category: "Electronics", Brand: "Samsung"},
		{ID: "p3", Name: "Running Shoe", SKU: "cap-xl", Category: "Sports", Brand: "Nike"},
		{ID: "p4", Name: "Laptop", SKU: "LP-1", Category: "Electronics", Brand: "Apple"},
	}
}

func ids(items []models.Product) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	t.Run("Empty term and no filters is identity", func(t *testing.T) {
		got := views.Filter(products(), "  ", views.ProductSearch)

		assert.Equal(t, products(), got)
	})

	t.Run("Case-insensitive substring over name and sku", func(t *testing.T) {
		got := views.Filter(products(), "CAP", views.ProductSearch)

		assert.Equal(t, []string{"p1", "p3"}, ids(got))
	})

	t.Run("Exact filters combine with search", func(t *testing.T) {
		got := views.Filter(products(), "cap", views.ProductSearch,
			views.Matcher[models.Product]{Field: views.ProductBrand, Want: "Nike"},
			views.Matcher[models.Product]{Field: views.ProductCategory, Want: "Sports"},
		)

		assert.Equal(t, []string{"p3"}, ids(got))
	})

	t.Run("Exact filter is case-sensitive", func(t *testing.T) {
		got := views.Filter(products(), "", views.ProductSearch,
			views.Matcher[models.Product]{Field: views.ProductCategory, Want: "electronics"},
		)

		assert.Empty(t, got)
	})

	t.Run("Sale search includes bill number", func(t *testing.T) {
		sales := []models.Sale{
			{ID: "s1", ProductName: "Cap", BillNo: "MN123456"},
			{ID: "s2", ProductName: "Shoe", SellerName: "Ann", BillNo: "MN654321"},
		}

		got := views.Filter(sales, "mn65", views.SaleSearch)

		require.Len(t, got, 1)
		assert.Equal(t, "s2", got[0].ID)
	})
}

func TestPaginate(t *testing.T) {
	t.Run("Success - Middle and last page", func(t *testing.T) {
		// Arrange
		items := make([]int, 23)
		for i := range items {
			items[i] = i
		}

		// Act
		second, err := views.Paginate(items, 10, 2)
		require.NoError(t, err)
		third, err := views.Paginate(items, 10, 3)
		require.NoError(t, err)

		// Assert
		assert.Equal(t, 3, second.PageCount)
		assert.Equal(t, items[10:20], second.Items)
		assert.Equal(t, []int{20, 21, 22}, third.Items)
	})

	t.Run("Success - Beyond last page is empty", func(t *testing.T) {
		page, err := views.Paginate([]int{1, 2, 3}, 10, 2)

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.NotNil(t, page.Items)
		assert.Equal(t, 1, page.PageCount)
	})

	t.Run("Success - Huge page size is a single page", func(t *testing.T) {
		items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

		first, err := views.Paginate(items, 1<<62, 1)
		require.NoError(t, err)
		beyond, err := views.Paginate(items, 1<<62, 5)
		require.NoError(t, err)

		assert.Equal(t, items, first.Items)
		assert.Equal(t, 1, first.PageCount)
		assert.Empty(t, beyond.Items)
		assert.Equal(t, 1, beyond.PageCount)
	})

	t.Run("Success - Huge page number is empty", func(t *testing.T) {
		items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

		var page views.Page[int]
		var err error
		assert.NotPanics(t, func() { page, err = views.Paginate(items, 4, 1<<62) })

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 3, page.PageCount)
	})

	t.Run("Failure - Page below one", func(t *testing.T) {
		_, err := views.Paginate([]int{1}, 10, 0)

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
	})

	t.Run("Failure - Size below one", func(t *testing.T) {
		_, err := views.Paginate([]int{1}, 0, 1)

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
	})
}

// For every size, pages past the end are empty, each page holds
// min(size, remaining) items and the pages concatenate back to the input.
func TestPaginateReconstructs(t *testing.T) {
	for n := 0; n <= 25; n++ {
		items := make([]string, n)
		for i := range items {
			items[i] = fmt.Sprintf("item-%d", i)
		}

		for size := 1; size <= 12; size++ {
			count := views.PageCount(n, size)
			var joined []string

			for page := 1; page <= count+1; page++ {
				got, err := views.Paginate(items, size, page)
				require.NoError(t, err)

				if page > count {
					assert.Empty(t, got.Items, "n=%d size=%d page=%d", n, size, page)
					continue
				}

				remaining := n - (page-1)*size
				assert.Len(t, got.Items, min(size, remaining), "n=%d size=%d page=%d", n, size, page)
				joined = append(joined, got.Items...)
			}

			assert.Equal(t, len(items), len(joined))
			if n > 0 {
				assert.Equal(t, items, joined)
			}
		}
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, views.ClampPage(0, 25, 10))
	assert.Equal(t, 3, views.ClampPage(7, 25, 10))
	assert.Equal(t, 2, views.ClampPage(2, 25, 10))
	assert.Equal(t, 1, views.ClampPage(4, 0, 10))
	assert.Equal(t, 1, views.ClampPage(1<<62, 10, 1<<62))
}

func TestQuery(t *testing.T) {
	page, err := views.Query(products(), "cap", views.ProductSearch, 1, 2)

	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 2, page.Filtered)
	assert.Equal(t, 2, page.PageCount)
	assert.Equal(t, []string{"p3"}, ids(page.Items))
}
