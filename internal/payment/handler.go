package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /checkout
// --------------------------------------------------
func (h *Handler) Checkout(c *gin.Context) {
	shopperID := c.GetString("shopperID")
	if shopperID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	_, _ = h.service.Checkout(c.Request.Context(), shopperID, Callbacks{
		OnSuccess: func(o *Order) {
			c.JSON(http.StatusCreated, gin.H{
				"message": "Payment Successful!",
				"order":   o,
			})
		},
		OnFailure: func(err error) {
			switch {
			case errors.Is(err, ErrEmptyCart):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case errors.Is(err, ErrPaymentFailed):
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
			}
		},
	})
}

// GET /orders
func (h *Handler) MyOrders(c *gin.Context) {
	orders, err := h.service.MyOrders(c.Request.Context(), c.GetString("shopperID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}
	if orders == nil {
		orders = []Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GET /admin/orders
func (h *Handler) AllOrders(c *gin.Context) {
	orders, err := h.service.AllOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}
	if orders == nil {
		orders = []Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
