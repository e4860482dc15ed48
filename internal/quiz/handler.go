package quiz

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

func (h *Handler) fail(c *gin.Context, err error) {
	var missing *MissingAnswersError

	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   err.Error(),
			"missing": missing.QuestionIDs,
		})
	case errors.Is(err, ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrQuizComplete):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// GET /quiz/questions?variant=
func (h *Handler) Questions(c *gin.Context) {
	qs, err := Questions(Variant(c.Query("variant")))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": qs})
}

// POST /quiz/sessions
func (h *Handler) Start(c *gin.Context) {
	var req struct {
		Variant Variant `json:"variant"`
	}
	// body is optional
	_ = c.ShouldBindJSON(&req)

	view, err := h.service.Start(req.Variant)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GET /quiz/sessions/:id
func (h *Handler) Get(c *gin.Context) {
	view, err := h.service.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /quiz/sessions/:id/answers
func (h *Handler) Answer(c *gin.Context) {
	var req struct {
		Dosha string `json:"dosha"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Dosha == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please select an answer"})
		return
	}

	view, err := h.service.Answer(c.Param("id"), req.Dosha)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /quiz/sessions/:id/reset
func (h *Handler) Reset(c *gin.Context) {
	view, err := h.service.Reset(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /quiz/submit
func (h *Handler) Submit(c *gin.Context) {
	var req struct {
		Variant Variant           `json:"variant"`
		Answers map[string]string `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	outcome, err := h.service.Submit(req.Variant, req.Answers)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}
