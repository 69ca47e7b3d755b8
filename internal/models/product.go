package models

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// the backend expects prices as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// Record is implemented by every entity the backend issues an ID for.
type Record interface {
	GetID() string
}

// SystemOwner marks seed categories and brands.
const SystemOwner = "system"

type Product struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Brand       string          `json:"brand"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	SKU         string          `json:"sku"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (p Product) GetID() string { return p.ID }

type ProductDraft struct {
	Name        string          `json:"name" validate:"required,min=2,max=200"`
	Description string          `json:"description" validate:"max=2000"`
	Category    string          `json:"category" validate:"required"`
	Brand       string          `json:"brand" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	Stock       int64           `json:"stock" validate:"gte=0"`
	SKU         string          `json:"sku" validate:"required,min=3,max=50"`
}

// Category and Brand share one shape; both are catalog labels.
type Category struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c Category) GetID() string { return c.ID }
func (c Category) GetName() string { return c.Name }
func (c Category) IsSystem() bool { return c.UserID == SystemOwner }

type Brand struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (b Brand) GetID() string { return b.ID }
func (b Brand) GetName() string { return b.Name }
func (b Brand) IsSystem() bool { return b.UserID == SystemOwner }

type CatalogDraft struct {
	Name   string `json:"name" validate:"required,max=100"`
	UserID string `json:"userId,omitempty"`
}

// SeedCategories returns the built-in categories present before any fetch.
func SeedCategories(now time.Time) []Category {
	names := []string{"Electronics", "Clothing", "Books", "Home & Garden", "Sports"}
	seeds := make([]Category, 0, len(names))
	for i, name := range names {
		seeds = append(seeds, Category{ID: seedID(i), Name: name, UserID: SystemOwner, CreatedAt: now})
	}
	return seeds
}

// SeedBrands returns the built-in brands present before any fetch.
func SeedBrands(now time.Time) []Brand {
	names := []string{"Apple", "Samsung", "Nike", "Adidas", "Generic"}
	seeds := make([]Brand, 0, len(names))
	for i, name := range names {
		seeds = append(seeds, Brand{ID: seedID(i), Name: name, UserID: SystemOwner, CreatedAt: now})
	}
	return seeds
}

func seedID(i int) string {
	return strconv.Itoa(i + 1)
}
