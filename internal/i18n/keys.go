// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	KeyAppTitle = "app.title"

	// List screen
	KeyListLoading = "list.loading"
	KeyListEmpty   = "list.empty"

	// Detail screen
	KeyDetailTitle          = "detail.title"
	KeyDetailBack           = "detail.back"
	KeyDetailDescription    = "detail.description"
	KeyDetailDisplay        = "detail.display"
	KeyDetailCPU            = "detail.cpu"
	KeyDetailRearCamera     = "detail.rear_camera"
	KeyDetailFrontCamera    = "detail.front_camera"
	KeyDetailStorageOptions = "detail.storage_options"
	KeyDetailColorOptions   = "detail.color_options"

	// Product card
	KeyProductBrand      = "product.brand"
	KeyProductPrice      = "product.price"
	KeyProductStock      = "product.stock"
	KeyProductInStock    = "product.in_stock"
	KeyProductOutOfStock = "product.out_of_stock"
	KeyProductImageAlt   = "product.image_alt"

	// Errors
	KeyValidationInvalidID = "validation.invalid_id"
	KeyRateLimitExceeded   = "rate_limit.exceeded"
	KeyPageNotFound        = "page.not_found"
)
