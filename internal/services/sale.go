package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"

	"github.com/clothingmenvy-dot/menvy-client/internal/cache"
	appErrors "github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	repository "github.com/clothingmenvy-dot/menvy-client/internal/repositories"
	"github.com/clothingmenvy-dot/menvy-client/internal/store"
)

// BillNumberPattern is the shape of every bill number the console issues.
var BillNumberPattern = regexp.MustCompile(`^[A-Z]{2}\d{6}$`)

var billDigits = big.NewInt(1_000_000)

type SaleService = Editor[models.Sale, models.SaleDraft]

type saleService struct {
	*collection[models.Sale]
	dir        Directory
	billPrefix string
}

// NewSaleService evicts the cached dashboard summary from summary after every
// change. summary may be nil.
func NewSaleService(repo repository.Resource[models.Sale], dir Directory, billPrefix string, summary cache.Cache, opts ...store.Option) SaleService {
	c := newCollection("sales", "sale", repo, nil, opts...)
	c.changed = evictSummary(summary)

	return &saleService{
		collection: c,
		dir:        dir,
		billPrefix: billPrefix,
	}
}

func (s *saleService) Create(ctx context.Context, draft models.SaleDraft) (models.Sale, error) {
	return s.create(ctx, draft, func() (any, error) {
		billNo, err := s.newBillNumber()
		if err != nil {
			return nil, err
		}
		return s.payload(ctx, draft, billNo)
	})
}

// Update keeps the bill number the sale was created with.
func (s *saleService) Update(ctx context.Context, id string, draft models.SaleDraft) (models.Sale, error) {
	return s.update(ctx, id, draft, func() (any, error) {
		existing, ok := s.slice.Find(id)
		if !ok {
			var err error
			if existing, err = s.repo.Get(ctx, id); err != nil {
				return nil, err
			}
		}
		return s.payload(ctx, draft, existing.BillNo)
	})
}

// payload copies the product and seller names as they are right now. Later
// renames are not carried into recorded sales.
func (s *saleService) payload(ctx context.Context, draft models.SaleDraft, billNo string) (models.SalePayload, error) {
	product, ok, err := s.dir.Product(ctx, draft.ProductID)
	if err != nil {
		return models.SalePayload{}, err
	}
	if !ok {
		return models.SalePayload{}, appErrors.AddValidationError("productId", "product not found")
	}

	p := models.SalePayload{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    draft.Quantity,
		Price:       draft.Price,
		Total:       models.LineTotal(draft.Quantity, draft.Price),
		BillNo:      billNo,
	}

	if draft.SellerID != "" {
		seller, ok, err := s.dir.Seller(ctx, draft.SellerID)
		if err != nil {
			return models.SalePayload{}, err
		}
		if !ok {
			return models.SalePayload{}, appErrors.AddValidationError("sellerId", "seller not found")
		}
		p.SellerID = seller.ID
		p.SellerName = seller.Name
	}

	return p, nil
}

func (s *saleService) newBillNumber() (string, error) {
	n, err := rand.Int(rand.Reader, billDigits)
	if err != nil {
		return "", appErrors.InternalError("Failed to issue bill number").WithError(err)
	}

	return fmt.Sprintf("%s%06d", s.billPrefix, n.Int64()), nil
}
