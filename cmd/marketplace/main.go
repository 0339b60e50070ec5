package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sellora/marketplace/docs"
	"github.com/sellora/marketplace/internal/api/handlers"
	"github.com/sellora/marketplace/internal/api/middleware"
	"github.com/sellora/marketplace/internal/cache"
	"github.com/sellora/marketplace/internal/config"
	"github.com/sellora/marketplace/internal/health"
	"github.com/sellora/marketplace/internal/metrics"
	"github.com/sellora/marketplace/internal/models"
	"github.com/sellora/marketplace/internal/observability"
	repository "github.com/sellora/marketplace/internal/repositories"
	service "github.com/sellora/marketplace/internal/services"
	"github.com/sellora/marketplace/pkg/sendgrid"
)

//	@title			Sellora Marketplace API
//	@version		1.0
//	@description	Multi-seller marketplace: catalog, cart, checkout, orders, vouchers, promotions, reviews and complaints.
//	@BasePath		/api/v1

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := observability.SetupTracing(context.Background(), &cfg.Tracing)
	if err != nil {
		slog.Error("❌ Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg)
	productCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	userRepo := repository.NewUserRepo(repos.DB)
	addressRepo := repository.NewAddressRepo(repos.DB)
	categoryRepo := repository.NewCategoryRepo(repos.DB)
	productRepo := repository.NewProductRepo(repos.DB)
	cartRepo := repository.NewCartRepo(repos.DB)
	orderRepo := repository.NewOrderRepository(repos.DB)
	reviewRepo := repository.NewReviewRepo(repos.DB)
	voucherRepo := repository.NewVoucherRepo(repos.DB)
	complaintRepo := repository.NewComplaintRepo(repos.DB)
	promotionRepo := repository.NewPromotionRepo(repos.DB)

	jwtKey := []byte(cfg.Security.JWTKey)
	sendGridClient := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	notificationService := service.NewNotificationService(sendGridClient)

	userService := service.NewUserService(userRepo, rateLimitRepo, jwtKey, cfg.Security.TokenExpiry)
	userHandler := handlers.NewUserHandler(userService)
	addressService := service.NewAddressService(addressRepo)
	addressHandler := handlers.NewAddressHandler(addressService)
	categoryService := service.NewCategoryService(categoryRepo)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productService := service.NewProductService(productRepo, promotionRepo, productCache)
	reviewService := service.NewReviewService(reviewRepo, orderRepo, productRepo)
	productHandler := handlers.NewProductHandler(productService, reviewService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	cartService := service.NewCartService(cartRepo, productRepo)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutService := service.NewCheckoutService(productRepo, cartRepo, orderRepo, addressRepo, userRepo, repos, notificationService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderService := service.NewOrderService(orderRepo, userRepo, notificationService)
	orderHandler := handlers.NewOrderHandler(orderService)
	voucherService := service.NewVoucherService(voucherRepo)
	voucherHandler := handlers.NewVoucherHandler(voucherService)
	complaintService := service.NewComplaintService(complaintRepo, orderRepo)
	complaintHandler := handlers.NewComplaintHandler(complaintService)
	promotionService := service.NewPromotionService(promotionRepo, productRepo, productCache)
	promotionHandler := handlers.NewPromotionHandler(promotionService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{DB: repos.DB, RedisClient: redisClient})
	if err != nil {
		slog.Error("❌ Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))

	routerMux.HandleFunc("POST /api/v1/addresses", authMiddleware.Authenticate(addressHandler.CreateAddress()))
	routerMux.HandleFunc("GET /api/v1/addresses", authMiddleware.Authenticate(addressHandler.ListAddresses()))
	routerMux.HandleFunc("GET /api/v1/addresses/{id}", authMiddleware.Authenticate(addressHandler.GetAddress()))
	routerMux.HandleFunc("PATCH /api/v1/addresses/{id}", authMiddleware.Authenticate(addressHandler.UpdateAddress()))
	routerMux.HandleFunc("DELETE /api/v1/addresses/{id}", authMiddleware.Authenticate(addressHandler.DeleteAddress()))

	routerMux.HandleFunc("POST /api/v1/categories", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, categoryHandler.CreateCategory())))
	routerMux.HandleFunc("GET /api/v1/categories", categoryHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/categories/{id}", categoryHandler.GetCategory())
	routerMux.HandleFunc("PATCH /api/v1/categories/{id}", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, categoryHandler.UpdateCategory())))
	routerMux.HandleFunc("DELETE /api/v1/categories/{id}", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, categoryHandler.DeleteCategory())))

	routerMux.HandleFunc("POST /api/v1/products", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleSeller, productHandler.CreateProduct())))
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("PATCH /api/v1/products/{id}", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleSeller, productHandler.UpdateProduct())))
	routerMux.HandleFunc("GET /api/v1/products/{id}/reviews", productHandler.ListProductReviews())

	routerMux.HandleFunc("GET /api/v1/cart", authMiddleware.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("PATCH /api/v1/cart/items/{id}", authMiddleware.Authenticate(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", authMiddleware.Authenticate(cartHandler.RemoveItem()))

	routerMux.HandleFunc("POST /api/v1/checkout/preview", authMiddleware.Authenticate(checkoutHandler.Preview()))
	routerMux.HandleFunc("POST /api/v1/checkout/confirm", authMiddleware.Authenticate(checkoutHandler.Confirm()))

	routerMux.HandleFunc("POST /api/v1/orders", authMiddleware.Authenticate(checkoutHandler.CreateOrder()))
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("PATCH /api/v1/orders/{id}/status", authMiddleware.Authenticate(orderHandler.UpdateOrderStatus()))
	routerMux.HandleFunc("PATCH /api/v1/orders/{id}/shipping-address", authMiddleware.Authenticate(orderHandler.UpdateShippingAddress()))
	routerMux.HandleFunc("POST /api/v1/orders/{id}/cancel", authMiddleware.Authenticate(orderHandler.CancelOrder()))
	routerMux.HandleFunc("GET /api/v1/seller/orders", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleSeller, orderHandler.ListSellerOrders())))

	routerMux.HandleFunc("POST /api/v1/reviews", authMiddleware.Authenticate(reviewHandler.CreateReview()))
	routerMux.HandleFunc("POST /api/v1/reviews/{id}/reply", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleSeller, reviewHandler.ReplyToReview())))

	routerMux.HandleFunc("POST /api/v1/vouchers", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleSeller, voucherHandler.CreateVoucher())))
	routerMux.HandleFunc("GET /api/v1/vouchers", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleSeller, voucherHandler.ListVouchers())))
	routerMux.HandleFunc("POST /api/v1/vouchers/validate", authMiddleware.Authenticate(voucherHandler.ValidateVoucher()))
	routerMux.HandleFunc("POST /api/v1/vouchers/redeem", authMiddleware.Authenticate(voucherHandler.RedeemVoucher()))
	routerMux.HandleFunc("GET /api/v1/admin/vouchers/pending", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, voucherHandler.ListPendingVouchers())))
	routerMux.HandleFunc("PATCH /api/v1/admin/vouchers/{id}", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, voucherHandler.ReviewVoucher())))

	routerMux.HandleFunc("POST /api/v1/complaints", authMiddleware.Authenticate(complaintHandler.CreateComplaint()))
	routerMux.HandleFunc("GET /api/v1/complaints", authMiddleware.Authenticate(complaintHandler.ListComplaints()))
	routerMux.HandleFunc("GET /api/v1/complaints/{id}", authMiddleware.Authenticate(complaintHandler.GetComplaint()))
	routerMux.HandleFunc("POST /api/v1/complaints/{id}/respond", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleSeller, complaintHandler.RespondToComplaint())))
	routerMux.HandleFunc("PATCH /api/v1/admin/complaints/{id}", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, complaintHandler.ResolveComplaint())))

	routerMux.HandleFunc("POST /api/v1/promotions", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleSeller, promotionHandler.CreatePromotion())))
	routerMux.HandleFunc("GET /api/v1/promotions", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleSeller, promotionHandler.ListPromotions())))
	routerMux.HandleFunc("GET /api/v1/admin/promotions/pending", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, promotionHandler.ListPendingPromotions())))
	routerMux.HandleFunc("PATCH /api/v1/admin/promotions/{id}", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, promotionHandler.ReviewPromotion())))

	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = observability.WrapHandler(handler, cfg.Tracing.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(context.Background()); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
