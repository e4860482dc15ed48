package router

import (
	"net/http"
	"time"

	"prakruti/internal/auth"
	"prakruti/internal/cart"
	"prakruti/internal/catalog"
	"prakruti/internal/content"
	"prakruti/internal/logging"
	"prakruti/internal/middleware"
	"prakruti/internal/newsletter"
	"prakruti/internal/payment"
	"prakruti/internal/quiz"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps is everything the HTTP surface hangs off.
type Deps struct {
	Log         *zap.Logger
	CORSOrigins []string
	Tokens      middleware.TokenValidator

	Auth       *auth.Handler
	Catalog    *catalog.Handler
	Content    *content.Handler
	Cart       *cart.Handler
	Checkout   *payment.Handler
	Quiz       *quiz.Handler
	Newsletter *newsletter.Handler
}

func NewRouter(d Deps) *gin.Engine {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(logging.Middleware(log), gin.Recovery())

	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ───────────────────────── SESSIONS / AUTH ─────────────────────────
	r.POST("/session", d.Auth.Guest)
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", d.Auth.Register)
		authGroup.POST("/login", d.Auth.Login)
	}

	// ───────────────────────── PUBLIC CONTENT ─────────────────────────
	r.GET("/products", d.Catalog.List)
	r.GET("/products/:id", d.Catalog.Get)
	r.GET("/testimonials", d.Content.Testimonials)
	r.GET("/testimonials/next", d.Content.NextTestimonial)
	r.GET("/blog", d.Content.Posts)
	r.POST("/newsletter", d.Newsletter.Subscribe)

	r.GET("/quiz/questions", d.Quiz.Questions)
	r.POST("/quiz/submit", d.Quiz.Submit)

	// ───────────────────────── SHOPPER ROUTES ─────────────────────────
	shopper := r.Group("")
	shopper.Use(middleware.AuthMiddleware(d.Tokens))
	{
		shopper.GET("/cart", d.Cart.Get)
		shopper.GET("/cart/count", d.Cart.Count)
		shopper.POST("/cart/items", d.Cart.AddItem)
		shopper.DELETE("/cart/items/:id", d.Cart.RemoveItem)
		shopper.GET("/cart/events", d.Cart.Events)

		shopper.POST("/checkout", d.Checkout.Checkout)
		shopper.GET("/orders", d.Checkout.MyOrders)

		shopper.POST("/quiz/sessions", d.Quiz.Start)
		shopper.GET("/quiz/sessions/:id", d.Quiz.Get)
		shopper.POST("/quiz/sessions/:id/answers", d.Quiz.Answer)
		shopper.POST("/quiz/sessions/:id/reset", d.Quiz.Reset)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(d.Tokens),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.GET("/newsletter", d.Newsletter.List)
		admin.GET("/orders", d.Checkout.AllOrders)
	}

	return r
}
