// internal/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/productlist/internal/i18n"
	"github.com/javajoker/productlist/internal/store"
	"github.com/javajoker/productlist/internal/utils"
)

type ProductHandler struct {
	store *store.ProductStore
}

func NewProductHandler(productStore *store.ProductStore) *ProductHandler {
	return &ProductHandler{store: productStore}
}

// GET /
func (h *ProductHandler) ListPage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	screen := BuildListScreen(lang, h.store.Snapshot())

	c.HTML(http.StatusOK, "list.html", gin.H{
		"Lang":   lang,
		"Title":  i18n.T(lang, i18n.KeyAppTitle),
		"Screen": screen,
	})
}

// GET /products/:id
func (h *ProductHandler) DetailPage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := bindProductID(c)
	if !ok {
		return
	}

	screen := BuildDetailScreen(lang, h.navigate(c, id))
	c.HTML(http.StatusOK, "detail.html", gin.H{
		"Lang":   lang,
		"Title":  screen.Title,
		"Screen": screen,
	})
}

// GET /v1/products
//
// With ?wait=true the response is held until the initial list load finishes.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	if c.Query("wait") == "true" {
		select {
		case <-h.store.Initialized():
		case <-c.Request.Context().Done():
		}
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, BuildListScreen(lang, h.store.Snapshot()))
}

// GET /v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := bindProductID(c)
	if !ok {
		return
	}

	utils.SuccessResponse(c, BuildDetailScreen(lang, h.navigate(c, id)))
}

// navigate is the detail route's entry effect: it starts FetchDetails and
// waits for it, or for the client to go away, before reading the state.
func (h *ProductHandler) navigate(c *gin.Context, id string) store.State {
	done := h.store.FetchDetails(id)
	select {
	case <-done:
	case <-c.Request.Context().Done():
	}
	return h.store.Snapshot()
}

func bindProductID(c *gin.Context) (string, bool) {
	var param utils.ProductIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return "", false
	}
	if err := utils.ValidateStruct(param); err != nil {
		lang := utils.GetLangFromContext(c)
		utils.ValidationErrorResponse(c, i18n.T(lang, i18n.KeyValidationInvalidID), utils.GetValidationErrors(err))
		return "", false
	}
	return param.ID, true
}
