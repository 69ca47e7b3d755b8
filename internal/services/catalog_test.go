package service_test

import (
	"context"
	"testing"
	"time"

	appErrors "github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	"github.com/clothingmenvy-dot/menvy-client/internal/repositories/mocks"
	service "github.com/clothingmenvy-dot/menvy-client/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var seedTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestCategoryService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Fetched entries merge onto the seeds", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.Resource[models.Category])
		categoryService := service.NewCategoryService(mockRepo, models.SeedCategories(seedTime))
		mockRepo.On("List", mock.Anything).Return([]models.Category{
			{ID: "c10", Name: "Shoes", UserID: "u1"},
			{ID: "1", Name: "Impostor", UserID: "u1"},
		}, nil).Twice()

		// Act
		_, err := categoryService.List(ctx)
		require.NoError(t, err)
		items, err := categoryService.List(ctx)
		require.NoError(t, err)

		// Assert
		require.Len(t, items, 6)
		assert.Equal(t, "Electronics", items[0].Name)
		assert.True(t, items[0].IsSystem())
		assert.Equal(t, "Shoes", items[5].Name)
		assert.Equal(t, items, categoryService.Snapshot().Items)
	})
}

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - Duplicate of a fetched system name, any case", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.Resource[models.Category])
		categoryService := service.NewCategoryService(mockRepo, nil)
		fetched := models.Category{ID: "c1", Name: "Shoes", UserID: models.SystemOwner}
		mockRepo.On("List", mock.Anything).Return([]models.Category{fetched}, nil).Twice()
		_, err := categoryService.List(ctx)
		require.NoError(t, err)

		// Act
		_, err = categoryService.Create(ctx, models.CatalogDraft{Name: "shoes"})

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
		items := categoryService.Snapshot().Items
		require.Len(t, items, 1)
		assert.Equal(t, fetched, items[0])
		assert.True(t, items[0].IsSystem())
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

		_, err = categoryService.List(ctx)
		require.NoError(t, err)
		assert.Len(t, categoryService.Snapshot().Items, 1)
	})

	t.Run("Failure - Fetched system entry is protected", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.Resource[models.Category])
		categoryService := service.NewCategoryService(mockRepo, nil)
		mockRepo.On("List", mock.Anything).Return([]models.Category{{ID: "c1", Name: "Shoes", UserID: models.SystemOwner}}, nil).Once()
		_, err := categoryService.List(ctx)
		require.NoError(t, err)

		// Act
		_, updateErr := categoryService.Update(ctx, "c1", models.CatalogDraft{Name: "Sneakers"})
		removeErr := categoryService.Remove(ctx, "c1")

		// Assert
		assert.True(t, appErrors.HasCode(updateErr, appErrors.ErrCodeValidation))
		assert.True(t, appErrors.HasCode(removeErr, appErrors.ErrCodeValidation))
		assert.Len(t, categoryService.Snapshot().Items, 1)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Duplicate of a fetched operator name", func(t *testing.T) {
		mockRepo := new(mocks.Resource[models.Category])
		categoryService := service.NewCategoryService(mockRepo, nil)
		mockRepo.On("List", mock.Anything).Return([]models.Category{{ID: "c2", Name: "Hats", UserID: "u1"}}, nil).Once()
		_, err := categoryService.List(ctx)
		require.NoError(t, err)

		_, err = categoryService.Create(ctx, models.CatalogDraft{Name: "HATS"})

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Duplicate of a seed name", func(t *testing.T) {
		mockRepo := new(mocks.Resource[models.Category])
		categoryService := service.NewCategoryService(mockRepo, models.SeedCategories(seedTime))

		_, err := categoryService.Create(ctx, models.CatalogDraft{Name: "  BOOKS "})

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
		assert.Contains(t, categoryService.Snapshot().Error, "already exists")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Success - New name is appended", func(t *testing.T) {
		mockRepo := new(mocks.Resource[models.Category])
		categoryService := service.NewCategoryService(mockRepo, models.SeedCategories(seedTime))
		created := models.Category{ID: "c11", Name: "Hats", UserID: "u1"}
		mockRepo.On("Create", mock.Anything, models.CatalogDraft{Name: "Hats", UserID: "u1"}).Return(created, nil).Once()

		category, err := categoryService.Create(ctx, models.CatalogDraft{Name: "Hats", UserID: "u1"})

		require.NoError(t, err)
		assert.Equal(t, created, category)
		items := categoryService.Snapshot().Items
		assert.Len(t, items, 6)
		assert.Equal(t, created, items[5])
	})

	t.Run("Failure - Empty name", func(t *testing.T) {
		mockRepo := new(mocks.Resource[models.Category])
		categoryService := service.NewCategoryService(mockRepo, nil)

		_, err := categoryService.Create(ctx, models.CatalogDraft{Name: "<i></i>"})

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
	})
}

func TestBrandService_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*mocks.Resource[models.Brand], service.BrandService) {
		t.Helper()
		mockRepo := new(mocks.Resource[models.Brand])
		brandService := service.NewBrandService(mockRepo, models.SeedBrands(seedTime))
		mockRepo.On("List", mock.Anything).Return([]models.Brand{
			{ID: "b1", Name: "Menvy", UserID: "u1"},
			{ID: "b2", Name: "Loom", UserID: "u1"},
		}, nil).Once()
		_, err := brandService.List(ctx)
		require.NoError(t, err)
		return mockRepo, brandService
	}

	t.Run("Failure - System brand cannot be renamed", func(t *testing.T) {
		mockRepo, brandService := setup(t)

		_, err := brandService.Update(ctx, "1", models.CatalogDraft{Name: "Pear"})

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - System brand cannot be deleted", func(t *testing.T) {
		mockRepo, brandService := setup(t)

		err := brandService.Remove(ctx, "2")

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
		assert.Len(t, brandService.Snapshot().Items, 7)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Rename onto another brand's name", func(t *testing.T) {
		mockRepo, brandService := setup(t)

		_, err := brandService.Update(ctx, "b1", models.CatalogDraft{Name: "LOOM"})

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - Case change of its own name", func(t *testing.T) {
		mockRepo, brandService := setup(t)
		mockRepo.On("Update", mock.Anything, "b1", models.CatalogDraft{Name: "MENVY"}).
			Return(models.Brand{ID: "b1", Name: "MENVY", UserID: "u1"}, nil).Once()

		brand, err := brandService.Update(ctx, "b1", models.CatalogDraft{Name: "MENVY"})

		require.NoError(t, err)
		assert.Equal(t, "MENVY", brand.Name)
		found, ok := brandService.Find("b1")
		require.True(t, ok)
		assert.Equal(t, "MENVY", found.Name)
	})

	t.Run("Success - Operator brand is deleted", func(t *testing.T) {
		mockRepo, brandService := setup(t)
		mockRepo.On("Delete", mock.Anything, "b2").Return(nil).Once()

		require.NoError(t, brandService.Remove(ctx, "b2"))

		assert.Len(t, brandService.Snapshot().Items, 6)
	})
}
