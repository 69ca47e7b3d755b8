package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Purchase struct {
	ID           string          `json:"_id"`
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	SupplierID   string          `json:"supplierId,omitempty"`
	SupplierName string          `json:"supplierName,omitempty"`
	Quantity     int64           `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func (p Purchase) GetID() string { return p.ID }

type PurchaseDraft struct {
	ProductID    string          `json:"productId" validate:"required"`
	SupplierID   string          `json:"supplierId,omitempty"`
	SupplierName string          `json:"supplierName,omitempty" validate:"max=100"`
	Quantity     int64           `json:"quantity" validate:"gt=0"`
	Price        decimal.Decimal `json:"price" validate:"gt=0"`
}

type PurchasePayload struct {
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	SupplierID   string          `json:"supplierId,omitempty"`
	SupplierName string          `json:"supplierName,omitempty"`
	Quantity     int64           `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Total        decimal.Decimal `json:"total"`
}
