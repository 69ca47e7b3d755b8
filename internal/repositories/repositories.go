package repository

import (
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	"github.com/clothingmenvy-dot/menvy-client/pkg/backend"
)

type Repositories struct {
	Products   Resource[models.Product]
	Categories Resource[models.Category]
	Brands     Resource[models.Brand]
	Sellers    Resource[models.Seller]
	Sales      Resource[models.Sale]
	Purchases  Resource[models.Purchase]
	Users      Resource[models.User]
	Dashboard  DashboardRepository
}

func New(client backend.Client) *Repositories {
	return &Repositories{
		Products:   NewResource[models.Product](client, "products"),
		Categories: NewResource[models.Category](client, "categories"),
		Brands:     NewResource[models.Brand](client, "brands"),
		Sellers:    NewResource[models.Seller](client, "sellers"),
		Sales:      NewResource[models.Sale](client, "sales"),
		Purchases:  NewResource[models.Purchase](client, "purchases"),
		Users:      NewResource[models.User](client, "users"),
		Dashboard:  NewDashboardRepo(client),
	}
}
