package views

import "github.com/clothingmenvy-dot/menvy-client/internal/models"

var (
	ProductSearch = []Field[models.Product]{
		func(p models.Product) string { return p.Name },
		func(p models.Product) string { return p.SKU },
	}

	CategorySearch = []Field[models.Category]{
		func(c models.Category) string { return c.Name },
	}

	BrandSearch = []Field[models.Brand]{
		func(b models.Brand) string { return b.Name },
	}

	SellerSearch = []Field[models.Seller]{
		func(s models.Seller) string { return s.Name },
		func(s models.Seller) string { return s.Email },
		func(s models.Seller) string { return s.Phone },
	}

	SaleSearch = []Field[models.Sale]{
		func(s models.Sale) string { return s.ProductName },
		func(s models.Sale) string { return s.SellerName },
		func(s models.Sale) string { return s.BillNo },
	}

	PurchaseSearch = []Field[models.Purchase]{
		func(p models.Purchase) string { return p.ProductName },
		func(p models.Purchase) string { return p.SupplierName },
	}

	UserSearch = []Field[models.User]{
		func(u models.User) string { return u.Email },
		func(u models.User) string { return u.DisplayName },
	}
)

func ProductCategory(p models.Product) string { return p.Category }

func ProductBrand(p models.Product) string { return p.Brand }
