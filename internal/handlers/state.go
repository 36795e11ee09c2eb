// internal/handlers/state.go
package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/productlist/internal/store"
	"github.com/javajoker/productlist/internal/utils"
)

type StateHandler struct {
	store *store.ProductStore
}

func NewStateHandler(productStore *store.ProductStore) *StateHandler {
	return &StateHandler{store: productStore}
}

// GET /v1/state
func (h *StateHandler) GetState(c *gin.Context) {
	utils.SuccessResponse(c, h.store.Snapshot())
}

// GET /v1/state/stream
//
// Server-sent events: the current state first, then one "state" event per
// change. A slow client skips intermediate states.
func (h *StateHandler) Stream(c *gin.Context) {
	updates, cancel := h.store.Subscribe()
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case st, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("state", st)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
