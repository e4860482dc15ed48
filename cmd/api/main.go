package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prakruti/internal/auth"
	"prakruti/internal/cart"
	"prakruti/internal/catalog"
	"prakruti/internal/config"
	"prakruti/internal/content"
	"prakruti/internal/db"
	"prakruti/internal/events"
	"prakruti/internal/logging"
	"prakruti/internal/newsletter"
	"prakruti/internal/payment"
	"prakruti/internal/quiz"
	"prakruti/internal/router"
	"prakruti/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		// logger depends on config; fall back to a bare one
		zap.NewExample().Fatal("config", zap.Error(err))
	}

	log, err := logging.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	// ───────────────────────── REPOSITORIES ─────────────────────────
	var (
		blobs       cart.BlobStore
		users       auth.UserRepository
		orders      payment.Repository
		subscribers newsletter.Repository
	)

	if cfg.DatabaseURL != "" {
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return err
		}
		defer pool.Close()
		blobs, users, orders, subscribers = postgresRepos(pool)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory storage")
		blobs = cart.NewMemoryBlobStore()
		users = auth.NewInMemoryUserRepository()
		orders = payment.NewInMemoryRepository()
		subscribers = newsletter.NewInMemoryRepository()
	}

	// ───────────────────────── STORAGE ─────────────────────────
	var receipts payment.ReceiptStore
	if cfg.R2Enabled() {
		r2, err := storage.NewR2Client(ctx, storage.R2Config{
			Endpoint:  cfg.R2Endpoint,
			AccessKey: cfg.R2AccessKey,
			SecretKey: cfg.R2SecretKey,
			Bucket:    cfg.R2Bucket,
			BaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			return err
		}
		receipts = r2
	}

	// ───────────────────────── STATIC DATA ─────────────────────────
	products, err := catalog.Default()
	if err != nil {
		return err
	}
	site, err := content.Default()
	if err != nil {
		return err
	}

	// ───────────────────────── SERVICES ─────────────────────────
	tokens, err := auth.NewTokens(cfg.JWTSecret, 24*time.Hour)
	if err != nil {
		return err
	}
	authService := auth.NewService(users, tokens)
	if err := authService.SeedAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return err
	}

	hub := events.NewHub(16)
	cartService := cart.NewService(blobs, hub, log.Named("cart"))

	var gateway payment.Gateway = payment.SandboxGateway{Delay: cfg.SandboxDelay}
	if cfg.PaymentProvider == "razorpay" {
		gateway = payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	}
	paymentService := payment.NewService(cartService, gateway, orders, receipts, log.Named("payment"))

	quizService := quiz.NewService(quiz.NewSessionStore(time.Hour), products, log.Named("quiz"))

	var forwarder newsletter.Forwarder
	if cfg.FormEndpointURL != "" {
		forwarder = newsletter.NewFormForwarder(cfg.FormEndpointURL)
	}
	newsletterService := newsletter.NewService(subscribers, forwarder, log.Named("newsletter"))

	// ───────────────────────── HTTP ─────────────────────────
	r := router.NewRouter(router.Deps{
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
		Tokens:      tokens,
		Auth:        auth.NewHandler(authService),
		Catalog:     catalog.NewHandler(products),
		Content:     content.NewHandler(site),
		Cart:        cart.NewHandler(cartService, products, hub),
		Checkout:    payment.NewHandler(paymentService),
		Quiz:        quiz.NewHandler(quizService),
		Newsletter:  newsletter.NewHandler(newsletterService),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	// Shutdown does not cancel request contexts; SSE streams end when the hub closes.
	srv.RegisterOnShutdown(hub.Close)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("🚀 API running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func postgresRepos(pool *pgxpool.Pool) (cart.BlobStore, auth.UserRepository, payment.Repository, newsletter.Repository) {
	return cart.NewPostgresBlobStore(pool),
		auth.NewPostgresUserRepository(pool),
		payment.NewPostgresRepository(pool),
		newsletter.NewPostgresRepository(pool)
}
