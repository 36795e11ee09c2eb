// internal/models/product.go
package models

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Product is one catalog item as served by the remote API. Values are never
// mutated after decoding; every fetch yields fresh instances.
type Product struct {
	ID             int             `json:"id"`
	Category       string          `json:"productCategory"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Description    string          `json:"description"`
	BasePrice      decimal.Decimal `json:"basePrice"`
	InStock        bool            `json:"inStock"`
	Stock          int             `json:"stock"`
	FeaturedImage  string          `json:"featuredImage"`
	ThumbnailImage string          `json:"thumbnailImage"`
	StorageOptions []string        `json:"storageOptions"`
	ColorOptions   []string        `json:"colorOptions"`
	Display        string          `json:"display"`
	CPU            string          `json:"CPU"`
	Camera         Camera          `json:"camera"`
}

type Camera struct {
	RearCamera  string `json:"rearCamera"`
	FrontCamera string `json:"frontCamera"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	p.StorageOptions = slices.Clone(p.StorageOptions)
	p.ColorOptions = slices.Clone(p.ColorOptions)
	return p
}

// DisplayPrice formats the base price the way the list and detail screens show it.
func (p Product) DisplayPrice() string {
	return "$" + p.BasePrice.String()
}

func CloneProducts(products []Product) []Product {
	if products == nil {
		return []Product{}
	}
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}
