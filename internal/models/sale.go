package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID          string          `json:"_id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	SellerID    string          `json:"sellerId,omitempty"`
	SellerName  string          `json:"sellerName,omitempty"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
	BillNo      string          `json:"bill_no"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (s Sale) GetID() string { return s.ID }

// SaleDraft is what an operator submits; names, total and bill number are
// filled in before the record is sent.
type SaleDraft struct {
	ProductID string          `json:"productId" validate:"required"`
	SellerID  string          `json:"sellerId,omitempty"`
	Quantity  int64           `json:"quantity" validate:"gt=0"`
	Price     decimal.Decimal `json:"price" validate:"gt=0"`
}

// SalePayload is the body sent to the backend on create and update.
type SalePayload struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	SellerID    string          `json:"sellerId,omitempty"`
	SellerName  string          `json:"sellerName,omitempty"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
	BillNo      string          `json:"bill_no"`
}

// LineTotal is quantity times unit price, rounded to cents.
func LineTotal(quantity int64, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(quantity)).Round(2)
}
