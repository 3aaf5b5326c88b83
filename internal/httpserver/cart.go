package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"robux-storefront/internal/catalog"
)

type addItemRequest struct {
	ID string `json:"id" binding:"required"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *handlers) getCart(c *gin.Context) {
	store := h.deps.Carts.Get(c.Request.Context(), sessionID(c))
	c.JSON(http.StatusOK, store.Snapshot())
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "item id required"})
		return
	}
	candidate, ok := catalog.Find(req.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "unknown catalog item"})
		return
	}
	store := h.deps.Carts.Get(c.Request.Context(), sessionID(c))
	store.AddItem(c.Request.Context(), candidate)
	c.JSON(http.StatusOK, store.Snapshot())
}

func (h *handlers) updateCartItem(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "quantity required"})
		return
	}
	store := h.deps.Carts.Get(c.Request.Context(), sessionID(c))
	store.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, store.Snapshot())
}

func (h *handlers) removeCartItem(c *gin.Context) {
	store := h.deps.Carts.Get(c.Request.Context(), sessionID(c))
	store.RemoveItem(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, store.Snapshot())
}

func (h *handlers) clearCart(c *gin.Context) {
	store := h.deps.Carts.Get(c.Request.Context(), sessionID(c))
	store.Clear(c.Request.Context())
	c.JSON(http.StatusOK, store.Snapshot())
}
