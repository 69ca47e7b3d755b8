package service

import (
	"context"
	"strings"

	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	repository "github.com/clothingmenvy-dot/menvy-client/internal/repositories"
	"github.com/clothingmenvy-dot/menvy-client/internal/store"
	"github.com/clothingmenvy-dot/menvy-client/internal/utils"
)

type SellerService = Editor[models.Seller, models.SellerDraft]

type sellerService struct {
	*collection[models.Seller]
}

func NewSellerService(repo repository.Resource[models.Seller], opts ...store.Option) SellerService {
	return &sellerService{collection: newCollection("sellers", "seller", repo, nil, opts...)}
}

func (s *sellerService) Create(ctx context.Context, draft models.SellerDraft) (models.Seller, error) {
	draft = cleanSeller(draft)

	return s.create(ctx, draft, func() (any, error) {
		return draft, nil
	})
}

func (s *sellerService) Update(ctx context.Context, id string, draft models.SellerDraft) (models.Seller, error) {
	draft = cleanSeller(draft)

	return s.update(ctx, id, draft, func() (any, error) {
		return draft, nil
	})
}

func cleanSeller(d models.SellerDraft) models.SellerDraft {
	d.Name = utils.Sanitize(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = utils.Sanitize(d.Phone)
	d.Address = utils.Sanitize(d.Address)

	return d
}
