package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rmoralesc/campus-delivery/docs"
	"github.com/rmoralesc/campus-delivery/internal/cart"
	"github.com/rmoralesc/campus-delivery/internal/config"
	"github.com/rmoralesc/campus-delivery/internal/db"
	"github.com/rmoralesc/campus-delivery/internal/httpx"
	"github.com/rmoralesc/campus-delivery/internal/mail"
	"github.com/rmoralesc/campus-delivery/internal/order"
	"github.com/rmoralesc/campus-delivery/internal/product"
	"github.com/rmoralesc/campus-delivery/internal/store"
	"github.com/rmoralesc/campus-delivery/internal/user"
	"github.com/rmoralesc/campus-delivery/internal/view"
)

func newID() string { return uuid.NewString() }

// @title Campus Delivery API
// @version 1.0
// @description Campus food and snack delivery storefront.
// @BasePath /
func main() {
	cfg := config.Load()

	if err := db.Migrate(cfg.PostgresDSN); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	pool, err := db.Connect(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	storeRepo := store.NewPGRepo(pool)
	productRepo := product.NewPGRepo(pool)
	cartRepo := cart.NewPGRepo(pool)
	orderRepo := order.NewPGRepo(pool)
	userRepo := user.NewPGRepo(pool)

	views := view.NewNotifier()
	dispatcher := mail.NewDispatcher(mail.Options{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPass,
		From:     cfg.EmailFrom,
		BaseURL:  cfg.BaseURL,
	})
	if !cfg.MailConfigured() {
		log.Printf("[mail] EMAIL_USER/EMAIL_PASS not set; order notifications disabled")
	}

	storeSvc := store.NewService(storeRepo, productRepo, cartRepo, views)
	orderSvc := order.NewService(orderRepo, cartRepo, storeRepo, userRepo, dispatcher)
	userSvc := user.NewService(userRepo, cfg.JWTSecret)

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/api/stores", listStoresHandler(storeSvc, productRepo))
	r.GET("/api/stores/:slug", getStoreHandler(storeSvc, productRepo))
	r.POST("/api/auth/register", registerHandler(userSvc))
	r.POST("/api/auth/login", loginHandler(userSvc))

	authed := r.Group("/api", httpx.Auth(cfg.JWTSecret))
	{
		authed.GET("/auth/profile", profileHandler(userSvc, orderSvc))
		authed.PUT("/auth/profile", updateProfileHandler(userSvc))

		authed.GET("/cart", getCartHandler(cartRepo))
		authed.POST("/cart/items", addCartItemHandler(cartRepo, productRepo))
		authed.PUT("/cart/items/:id", updateCartItemHandler(cartRepo))
		authed.DELETE("/cart/items/:id", removeCartItemHandler(cartRepo))

		authed.POST("/orders", placeOrderHandler(orderSvc))
		authed.GET("/orders", listOrdersHandler(orderSvc))
		authed.GET("/orders/:id", getOrderHandler(orderSvc))
		authed.POST("/orders/:id/cancel", cancelOrderHandler(orderSvc))
	}

	admin := r.Group("/admin", httpx.Auth(cfg.JWTSecret))
	{
		admin.POST("/stores", createStoreHandler(storeSvc))
		admin.PUT("/stores", updateStoreHandler(storeSvc))
		admin.DELETE("/stores/:slug", deleteStoreHandler(storeSvc))
		admin.POST("/products", createProductHandler(productRepo))
		admin.DELETE("/products/:id", deleteProductHandler(productRepo))
		admin.PUT("/orders/:id/status", setOrderStatusHandler(orderSvc))
	}

	log.Printf("storefront-service listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
