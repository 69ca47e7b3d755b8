package service

import (
	"context"

	"github.com/clothingmenvy-dot/menvy-client/internal/cache"
	appErrors "github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	repository "github.com/clothingmenvy-dot/menvy-client/internal/repositories"
	"github.com/clothingmenvy-dot/menvy-client/internal/store"
	"github.com/clothingmenvy-dot/menvy-client/internal/utils"
)

type PurchaseService = Editor[models.Purchase, models.PurchaseDraft]

type purchaseService struct {
	*collection[models.Purchase]
	dir Directory
}

func NewPurchaseService(repo repository.Resource[models.Purchase], dir Directory, summary cache.Cache, opts ...store.Option) PurchaseService {
	c := newCollection("purchases", "purchase", repo, nil, opts...)
	c.changed = evictSummary(summary)

	return &purchaseService{
		collection: c,
		dir:        dir,
	}
}

func (s *purchaseService) Create(ctx context.Context, draft models.PurchaseDraft) (models.Purchase, error) {
	draft.SupplierName = utils.Sanitize(draft.SupplierName)

	return s.create(ctx, draft, func() (any, error) {
		return s.payload(ctx, draft)
	})
}

func (s *purchaseService) Update(ctx context.Context, id string, draft models.PurchaseDraft) (models.Purchase, error) {
	draft.SupplierName = utils.Sanitize(draft.SupplierName)

	return s.update(ctx, id, draft, func() (any, error) {
		return s.payload(ctx, draft)
	})
}

// payload fills the supplier name from the seller directory when the operator
// picked a known seller and typed no name of their own.
func (s *purchaseService) payload(ctx context.Context, draft models.PurchaseDraft) (models.PurchasePayload, error) {
	product, ok, err := s.dir.Product(ctx, draft.ProductID)
	if err != nil {
		return models.PurchasePayload{}, err
	}
	if !ok {
		return models.PurchasePayload{}, appErrors.AddValidationError("productId", "product not found")
	}

	p := models.PurchasePayload{
		ProductID:    product.ID,
		ProductName:  product.Name,
		SupplierID:   draft.SupplierID,
		SupplierName: draft.SupplierName,
		Quantity:     draft.Quantity,
		Price:        draft.Price,
		Total:        models.LineTotal(draft.Quantity, draft.Price),
	}

	if p.SupplierName == "" && draft.SupplierID != "" {
		seller, ok, err := s.dir.Seller(ctx, draft.SupplierID)
		if err != nil {
			return models.PurchasePayload{}, err
		}
		if ok {
			p.SupplierName = seller.Name
		}
	}

	return p, nil
}
