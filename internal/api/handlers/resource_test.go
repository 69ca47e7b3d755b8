package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clothingmenvy-dot/menvy-client/internal/api/handlers"
	appErrors "github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	"github.com/clothingmenvy-dot/menvy-client/internal/services/mocks"
	"github.com/clothingmenvy-dot/menvy-client/internal/store"
	"github.com/clothingmenvy-dot/menvy-client/internal/testutils"
	"github.com/clothingmenvy-dot/menvy-client/internal/views"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   *struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Details []string `json:"details"`
	} `json:"error"`
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var env envelope[T]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))

	return env
}

func catalogue() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Cap", SKU: "CAP-001", Category: "Clothing", Brand: "Nike"},
		{ID: "p2", Name: "Baseball Cap", SKU: "CAP-002", Category: "Clothing", Brand: "Adidas"},
		{ID: "p3", Name: "Phone", SKU: "PH-001", Category: "Electronics", Brand: "Apple"},
	}
}

func newProductHandler() (*mocks.Editor[models.Product, models.ProductDraft], *handlers.ResourceHandler[models.Product, models.ProductDraft]) {
	mockService := new(mocks.Editor[models.Product, models.ProductDraft])
	handler := handlers.NewResourceHandler("product", mockService, views.ProductSearch,
		handlers.WithFilters[models.Product, models.ProductDraft](handlers.ProductFilters),
		handlers.WithPageSize[models.Product, models.ProductDraft](2),
	)

	return mockService, handler
}

func TestResourceHandler_List(t *testing.T) {

	t.Run("Success - Refreshes, then searches and filters", func(t *testing.T) {
		// Arrange
		mockService, handler := newProductHandler()
		mockService.On("List", mock.Anything).Return(catalogue(), nil).Once()
		mockService.On("Snapshot").Return(store.State[models.Product]{Items: catalogue(), Status: store.Settled}).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/products?search=cap&brand=Nike", nil, nil)

		// Act
		handler.List().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		env := decode[views.Page[models.Product]](t, rr)
		assert.True(t, env.Success)
		require.Len(t, env.Data.Items, 1)
		assert.Equal(t, "p1", env.Data.Items[0].ID)
		assert.Equal(t, 3, env.Data.Total)
		assert.Equal(t, 1, env.Data.Filtered)
		mockService.AssertExpectations(t)
	})

	t.Run("Success - Second page with the configured size", func(t *testing.T) {
		mockService, handler := newProductHandler()
		mockService.On("List", mock.Anything).Return(catalogue(), nil).Once()
		mockService.On("Snapshot").Return(store.State[models.Product]{Items: catalogue()}).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/products?page=2", nil, nil)

		handler.List().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		env := decode[views.Page[models.Product]](t, rr)
		assert.Equal(t, 2, env.Data.PageCount)
		require.Len(t, env.Data.Items, 1)
		assert.Equal(t, "p3", env.Data.Items[0].ID)
	})

	t.Run("Success - refresh=false reads the local slice only", func(t *testing.T) {
		mockService, handler := newProductHandler()
		mockService.On("Snapshot").Return(store.State[models.Product]{Items: catalogue()}).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/products?refresh=false&category=Electronics", nil, nil)

		handler.List().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		env := decode[views.Page[models.Product]](t, rr)
		require.Len(t, env.Data.Items, 1)
		assert.Equal(t, "Phone", env.Data.Items[0].Name)
		mockService.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("Failure - Backend error", func(t *testing.T) {
		mockService, handler := newProductHandler()
		mockService.On("List", mock.Anything).
			Return(nil, appErrors.RequestFailedError(http.StatusInternalServerError, "Request failed")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/products", nil, nil)

		handler.List().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeRequestFailed)
		mockService.AssertNotCalled(t, "Snapshot")
	})

	t.Run("Failure - Page below one", func(t *testing.T) {
		mockService, handler := newProductHandler()
		mockService.On("List", mock.Anything).Return(catalogue(), nil).Once()
		mockService.On("Snapshot").Return(store.State[models.Product]{Items: catalogue()}).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/products?page=0", nil, nil)

		handler.List().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeValidation)
	})

	t.Run("Failure - Page is not a number", func(t *testing.T) {
		mockService, handler := newProductHandler()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/products?pageSize=ten", nil, nil)

		handler.List().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "List", mock.Anything)
	})
}

func TestResourceHandler_Create(t *testing.T) {

	t.Run("Success - Product Created", func(t *testing.T) {
		// Arrange
		mockService, handler := newProductHandler()
		body := []byte(`{"name":"Cap","category":"Clothing","brand":"Nike","price":"20.00","stock":12,"sku":"CAP-001"}`)
		created := models.Product{ID: "p1", Name: "Cap", SKU: "CAP-001", Price: decimal.RequireFromString("20")}

		mockService.On("Create", mock.Anything, mock.MatchedBy(func(d models.ProductDraft) bool {
			return d.Name == "Cap" && d.Stock == 12 && d.Price.Equal(decimal.RequireFromString("20"))
		})).Return(created, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/products", bytes.NewReader(body), nil)

		// Act
		handler.Create().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		env := decode[models.Product](t, rr)
		assert.Equal(t, "p1", env.Data.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid Input - Bad JSON", func(t *testing.T) {
		mockService, handler := newProductHandler()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/products", bytes.NewReader([]byte("{invalid json")), nil)

		handler.Create().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeBadRequest)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Input - Rejected by the service", func(t *testing.T) {
		mockService, handler := newProductHandler()
		mockService.On("Create", mock.Anything, mock.Anything).
			Return(models.Product{}, appErrors.ValidationError("Field sku is required")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/products", bytes.NewReader([]byte(`{"name":"Cap"}`)), nil)

		handler.Create().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Field sku is required")
	})
}

func TestResourceHandler_CatalogOwner(t *testing.T) {

	t.Run("Success - Draft carries the operator uid", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.Editor[models.Category, models.CatalogDraft])
		handler := handlers.NewResourceHandler("category", mockService, views.CategorySearch,
			handlers.WithOwner[models.Category, models.CatalogDraft](handlers.StampCatalogOwner),
		)
		mockService.On("Create", mock.Anything, models.CatalogDraft{Name: "Hats", UserID: testutils.TestUID}).
			Return(models.Category{ID: "c1", Name: "Hats", UserID: testutils.TestUID}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/categories", bytes.NewReader([]byte(`{"name":"Hats","userId":"someone-else"}`)), nil)

		// Act
		handler.Create().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - No operator in context", func(t *testing.T) {
		mockService := new(mocks.Editor[models.Category, models.CatalogDraft])
		handler := handlers.NewResourceHandler("category", mockService, views.CategorySearch,
			handlers.WithOwner[models.Category, models.CatalogDraft](handlers.StampCatalogOwner),
		)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/categories", bytes.NewReader([]byte(`{"name":"Hats"}`)), nil)

		handler.Create().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestResourceHandler_ItemRoutes(t *testing.T) {

	t.Run("Success - Get", func(t *testing.T) {
		mockService, handler := newProductHandler()
		mockService.On("Get", mock.Anything, "p1").Return(models.Product{ID: "p1", Name: "Cap"}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/products/p1", nil, map[string]string{"id": "p1"})

		handler.Get().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Cap", decode[models.Product](t, rr).Data.Name)
	})

	t.Run("Failure - Get unknown id", func(t *testing.T) {
		mockService, handler := newProductHandler()
		mockService.On("Get", mock.Anything, "p9").
			Return(models.Product{}, appErrors.RequestFailedError(http.StatusNotFound, "Request failed")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/products/p9", nil, map[string]string{"id": "p9"})

		handler.Get().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Success - Update", func(t *testing.T) {
		mockService, handler := newProductHandler()
		mockService.On("Update", mock.Anything, "p1", mock.MatchedBy(func(d models.ProductDraft) bool { return d.Name == "Cap 2" })).
			Return(models.Product{ID: "p1", Name: "Cap 2"}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/products/p1", bytes.NewReader([]byte(`{"name":"Cap 2"}`)), map[string]string{"id": "p1"})

		handler.Update().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Success - Delete", func(t *testing.T) {
		mockService, handler := newProductHandler()
		mockService.On("Remove", mock.Anything, "p1").Return(nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/products/p1", nil, map[string]string{"id": "p1"})

		handler.Delete().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Failure - Delete of a system entry", func(t *testing.T) {
		mockService, handler := newProductHandler()
		mockService.On("Remove", mock.Anything, "1").Return(appErrors.ValidationError("System entries cannot be deleted")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/products/1", nil, map[string]string{"id": "1"})

		handler.Delete().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Success - State and ClearError", func(t *testing.T) {
		mockService, handler := newProductHandler()
		mockService.On("Snapshot").Return(store.State[models.Product]{Name: "products", Status: store.Failed, Error: "boom"}).Once()
		mockService.On("ClearError").Return().Once()

		rr := httptest.NewRecorder()
		handler.State().ServeHTTP(rr, testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/products/state", nil, nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"failed"`)

		rr = httptest.NewRecorder()
		handler.ClearError().ServeHTTP(rr, testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/products/error", nil, nil))
		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockService.AssertExpectations(t)
	})
}
