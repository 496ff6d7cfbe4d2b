package domain

import "time"

type ProductCategory string

const (
	ProductCategoryFood  ProductCategory = "FOOD"
	ProductCategoryDrink ProductCategory = "DRINK"
	ProductCategoryAddon ProductCategory = "ADDON"
)

type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    int32           `json:"price"`
	Category ProductCategory `json:"category"`
	Stock    int32           `json:"stock"`
	// Complimentary marks the product whose units may be covered by a
	// member package's free-drink credits at settlement.
	Complimentary bool      `json:"complimentary"`
	CreatedOn     time.Time `json:"created_on"`
	UpdatedOn     time.Time `json:"updated_on"`
}
