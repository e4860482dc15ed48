package newsletter

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

// POST /newsletter
func (h *Handler) Subscribe(c *gin.Context) {
	var req struct {
		Name  string `json:"name" form:"name"`
		Email string `json:"email" form:"email"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sub, err := h.service.Subscribe(c.Request.Context(), req.Name, req.Email)

	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
		return
	case errors.Is(err, ErrAlreadySubscribed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to subscribe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Thank you for subscribing!",
		"subscription": sub,
	})
}

// GET /admin/newsletter
func (h *Handler) List(c *gin.Context) {
	subs, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch subscriptions"})
		return
	}
	if subs == nil {
		subs = []Subscription{}
	}
	c.JSON(http.StatusOK, gin.H{"subscriptions": subs})
}
