package service

import (
	"context"

	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	repository "github.com/clothingmenvy-dot/menvy-client/internal/repositories"
	"github.com/clothingmenvy-dot/menvy-client/internal/store"
	"github.com/clothingmenvy-dot/menvy-client/internal/utils"
)

type ProductService = Editor[models.Product, models.ProductDraft]

type productService struct {
	*collection[models.Product]
}

func NewProductService(repo repository.Resource[models.Product], opts ...store.Option) ProductService {
	return &productService{collection: newCollection("products", "product", repo, nil, opts...)}
}

func (s *productService) Create(ctx context.Context, draft models.ProductDraft) (models.Product, error) {
	draft = cleanProduct(draft)

	return s.create(ctx, draft, func() (any, error) {
		return draft, nil
	})
}

func (s *productService) Update(ctx context.Context, id string, draft models.ProductDraft) (models.Product, error) {
	draft = cleanProduct(draft)

	return s.update(ctx, id, draft, func() (any, error) {
		return draft, nil
	})
}

func cleanProduct(d models.ProductDraft) models.ProductDraft {
	d.Name = utils.Sanitize(d.Name)
	d.Description = utils.Sanitize(d.Description)
	d.Category = utils.Sanitize(d.Category)
	d.Brand = utils.Sanitize(d.Brand)
	d.SKU = utils.Sanitize(d.SKU)

	return d
}
