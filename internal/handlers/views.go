// internal/handlers/views.go
package handlers

import (
	"strconv"

	"github.com/javajoker/productlist/internal/i18n"
	"github.com/javajoker/productlist/internal/models"
	"github.com/javajoker/productlist/internal/store"
)

type Screen string

const (
	ScreenLoading Screen = "loading"
	ScreenError   Screen = "error"
	ScreenList    Screen = "list"
	ScreenDetail  Screen = "detail"
	ScreenEmpty   Screen = "empty"
)

// ProductCard is one row of the list screen.
type ProductCard struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	Price      string `json:"price"`
	Thumbnail  string `json:"thumbnail"`
	InStock    bool   `json:"in_stock"`
	StockLabel string `json:"stock_label"`
	StockCount string `json:"stock_count"`
	DetailURL  string `json:"detail_url"`
}

type ListScreen struct {
	Screen   Screen        `json:"screen"`
	Message  string        `json:"message,omitempty"`
	Products []ProductCard `json:"products"`
}

type ProductDetailView struct {
	ID             int      `json:"id"`
	Category       string   `json:"category"`
	Name           string   `json:"name"`
	Brand          string   `json:"brand"`
	Price          string   `json:"price"`
	Image          string   `json:"image"`
	InStock        bool     `json:"in_stock"`
	StockLabel     string   `json:"stock_label"`
	Description    string   `json:"description"`
	Display        string   `json:"display"`
	CPU            string   `json:"cpu"`
	RearCamera     string   `json:"rear_camera"`
	FrontCamera    string   `json:"front_camera"`
	StorageOptions []string `json:"storage_options"`
	ColorOptions   []string `json:"color_options"`
}

type DetailScreen struct {
	Screen  Screen             `json:"screen"`
	Title   string             `json:"title"`
	Message string             `json:"message,omitempty"`
	Product *ProductDetailView `json:"product,omitempty"`
}

func stockLabel(lang string, inStock bool) string {
	if inStock {
		return i18n.T(lang, i18n.KeyProductInStock)
	}
	return i18n.T(lang, i18n.KeyProductOutOfStock)
}

func newProductCard(lang string, p models.Product) ProductCard {
	return ProductCard{
		ID:         p.ID,
		Name:       p.Name,
		Brand:      i18n.T(lang, i18n.KeyProductBrand, p.Brand),
		Price:      p.DisplayPrice(),
		Thumbnail:  p.ThumbnailImage,
		InStock:    p.InStock,
		StockLabel: stockLabel(lang, p.InStock),
		StockCount: i18n.T(lang, i18n.KeyProductStock, p.Stock),
		DetailURL:  "/products/" + strconv.Itoa(p.ID),
	}
}

func newProductDetailView(lang string, p models.Product) *ProductDetailView {
	return &ProductDetailView{
		ID:       p.ID,
		Category: p.Category,
		Name:     p.Name,
		Brand:    i18n.T(lang, i18n.KeyProductBrand, p.Brand),
		Price:    i18n.T(lang, i18n.KeyProductPrice, p.DisplayPrice()),
		// the detail screen shows the thumbnail, as the list does
		Image:          p.ThumbnailImage,
		InStock:        p.InStock,
		StockLabel:     stockLabel(lang, p.InStock),
		Description:    p.Description,
		Display:        p.Display,
		CPU:            p.CPU,
		RearCamera:     p.Camera.RearCamera,
		FrontCamera:    p.Camera.FrontCamera,
		StorageOptions: p.StorageOptions,
		ColorOptions:   p.ColorOptions,
	}
}

// BuildListScreen picks what the list screen shows: loading first, then
// the error, then the products.
func BuildListScreen(lang string, st store.State) ListScreen {
	switch {
	case st.IsLoading:
		return ListScreen{Screen: ScreenLoading, Message: i18n.T(lang, i18n.KeyListLoading), Products: []ProductCard{}}
	case st.ErrorMessage != nil:
		return ListScreen{Screen: ScreenError, Message: *st.ErrorMessage, Products: []ProductCard{}}
	}

	cards := make([]ProductCard, 0, len(st.ProductList))
	for _, p := range st.ProductList {
		cards = append(cards, newProductCard(lang, p))
	}
	return ListScreen{Screen: ScreenList, Products: cards}
}

// BuildDetailScreen applies the same priority to the detail screen. A loading
// detail screen carries no content.
func BuildDetailScreen(lang string, st store.State) DetailScreen {
	screen := DetailScreen{Title: i18n.T(lang, i18n.KeyDetailTitle)}
	switch {
	case st.IsLoading:
		screen.Screen = ScreenLoading
	case st.ErrorMessage != nil:
		screen.Screen = ScreenError
		screen.Message = *st.ErrorMessage
	case st.ProductDetail != nil:
		screen.Screen = ScreenDetail
		screen.Product = newProductDetailView(lang, *st.ProductDetail)
	default:
		screen.Screen = ScreenEmpty
	}
	return screen
}
