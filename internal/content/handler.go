package content

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	content *Content
}

func NewHandler(content *Content) *Handler {
	return &Handler{content: content}
}

// GET /testimonials
func (h *Handler) Testimonials(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"testimonials": h.content.Testimonials,
	})
}

// GET /testimonials/next?index=&dir=prev
func (h *Handler) NextTestimonial(c *gin.Context) {
	index, err := strconv.Atoi(c.DefaultQuery("index", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}

	if len(h.content.Testimonials) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no testimonials"})
		return
	}

	r := NewRotation(len(h.content.Testimonials), index)
	if c.Query("dir") == "prev" {
		r.Prev()
	} else {
		r.Next()
	}

	c.JSON(http.StatusOK, gin.H{
		"index":       r.Index,
		"testimonial": h.content.Testimonials[r.Index],
	})
}

// GET /blog
func (h *Handler) Posts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"posts": h.content.Posts,
	})
}
