package service

import (
	"context"
	"net/http"

	appErrors "github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
)

// Directory is the read-only view one slice gets of the others. The list
// accessors see whatever the owning slice currently holds.
type Directory interface {
	// Product and Seller answer from the owning slice and otherwise ask the
	// backend, leaving that slice untouched. A backend 404 is "not found".
	Product(ctx context.Context, id string) (models.Product, bool, error)
	Seller(ctx context.Context, id string) (models.Seller, bool, error)

	Products() []models.Product
	Sellers() []models.Seller
	Sales() []models.Sale
	Purchases() []models.Purchase
}

// Slices bundles the collections a Directory reads from. Any of them may be
// nil, in which case lookups against it find nothing.
type Slices struct {
	Products  Collection[models.Product]
	Sellers   Collection[models.Seller]
	Sales     Collection[models.Sale]
	Purchases Collection[models.Purchase]
}

type directory struct {
	slices *Slices
}

// NewDirectory reads through s, which may be filled in after construction.
func NewDirectory(s *Slices) Directory {
	return &directory{slices: s}
}

func (d *directory) Product(ctx context.Context, id string) (models.Product, bool, error) {
	return lookup(ctx, d.slices.Products, id)
}

func (d *directory) Seller(ctx context.Context, id string) (models.Seller, bool, error) {
	return lookup(ctx, d.slices.Sellers, id)
}

func (d *directory) Products() []models.Product {
	return itemsOf(d.slices.Products)
}

func (d *directory) Sellers() []models.Seller {
	return itemsOf(d.slices.Sellers)
}

func (d *directory) Sales() []models.Sale {
	return itemsOf(d.slices.Sales)
}

func (d *directory) Purchases() []models.Purchase {
	return itemsOf(d.slices.Purchases)
}

func itemsOf[T models.Record](c Collection[T]) []T {
	if c == nil {
		return []T{}
	}
	return c.Snapshot().Items
}

func lookup[T models.Record](ctx context.Context, c Collection[T], id string) (T, bool, error) {
	var zero T
	if c == nil || id == "" {
		return zero, false, nil
	}

	item, err := c.Get(ctx, id)
	if err != nil {
		if appErr, ok := appErrors.IsAppError(err); ok && appErr.RemoteStatus == http.StatusNotFound {
			return zero, false, nil
		}
		return zero, false, err
	}

	return item, true, nil
}
