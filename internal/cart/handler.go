package cart

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"prakruti/internal/catalog"
	"prakruti/internal/events"

	"github.com/gin-gonic/gin"
)

type ProductLookup interface {
	Get(id int) (catalog.Product, error)
}

type ChangeFeed interface {
	Subscribe(key string) (<-chan events.Event, func())
}

type Handler struct {
	service  *Service
	products ProductLookup
	feed     ChangeFeed
}

func NewHandler(service *Service, products ProductLookup, feed ChangeFeed) *Handler {
	return &Handler{service: service, products: products, feed: feed}
}

func shopperID(c *gin.Context) (string, bool) {
	id := c.GetString("shopperID")
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	return id, true
}

// --------------------------------------------------
// GET /cart
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	id, ok := shopperID(c)
	if !ok {
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// --------------------------------------------------
// GET /cart/count
// --------------------------------------------------
func (h *Handler) Count(c *gin.Context) {
	id, ok := shopperID(c)
	if !ok {
		return
	}

	count, err := h.service.TotalQuantity(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// --------------------------------------------------
// POST /cart/items
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	id, ok := shopperID(c)
	if !ok {
		return
	}

	var req struct {
		ProductID int `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.products.Get(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items, err := h.service.AddItem(c.Request.Context(), id, Product{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidProduct) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Added " + p.Name + " to cart!",
		"cart":    Summarize(items),
	})
}

// --------------------------------------------------
// DELETE /cart/items/:id
// --------------------------------------------------
func (h *Handler) RemoveItem(c *gin.Context) {
	id, ok := shopperID(c)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	items, err := h.service.RemoveItem(c.Request.Context(), id, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, Summarize(items))
}

// --------------------------------------------------
// GET /cart/events (server-sent events)
// --------------------------------------------------
func (h *Handler) Events(c *gin.Context) {
	id, ok := shopperID(c)
	if !ok {
		return
	}

	ch, cancel := h.feed.Subscribe(Key(id))
	defer cancel()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case _, open := <-ch:
			if !open {
				return false
			}
			c.SSEvent("changed", gin.H{})
			return true
		}
	})
}
