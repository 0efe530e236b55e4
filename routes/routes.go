package routes

import (
	"cooksync/configs"
	"cooksync/controllers"
	"cooksync/entity"
	"cooksync/middlewares"
	"cooksync/pkg/cache"
	"cooksync/repository"
	"cooksync/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, redisClient *redis.Client, cfg *configs.Config, charger services.Charger, uploader controllers.Uploader) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	store := cache.New(redisClient, cfg.CacheTTL)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	mealRepo := repository.NewMealRepository(db)
	upcomingRepo := repository.NewUpcomingMealRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	mealSvc := services.NewMealService(mealRepo, userRepo, store)
	upcomingSvc := services.NewUpcomingMealService(db, upcomingRepo, store, cfg.PublishLikeThreshold)
	reviewSvc := services.NewReviewService(db, reviewRepo, mealRepo)
	requestSvc := services.NewRequestService(db, requestRepo, mealRepo, userRepo, cfg.RequestMinBadge)
	paymentSvc := services.NewPaymentService(db, paymentRepo, userRepo, charger)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	mealCtrl := controllers.NewMealController(mealSvc)
	upcomingCtrl := controllers.NewUpcomingMealController(upcomingSvc, userRepo)
	reviewCtrl := controllers.NewReviewController(reviewSvc, userRepo)
	requestCtrl := controllers.NewRequestController(requestSvc)
	userCtrl := controllers.NewUserController(userRepo)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	uploadCtrl := controllers.NewUploadController(uploader)
	adminCtrl := controllers.NewAdminController(db)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", auth(), authCtrl.Me)

	// Public browse
	r.GET("/api/meals", mealCtrl.List)
	r.GET("/api/meals/:id", mealCtrl.Detail)
	r.GET("/api/upcomingMeals", upcomingCtrl.List)
	r.GET("/api/reviews/:mealId", reviewCtrl.ListForMeal)

	// User actions (login required)
	u := r.Group("/api", auth())
	{
		u.PATCH("/meals/:id/like", mealCtrl.Like)
		u.PATCH("/upcomingMeals/:id/like", upcomingCtrl.Like)
		u.POST("/reviews", reviewCtrl.Create)
		u.DELETE("/reviews/:id", reviewCtrl.Delete)
		u.POST("/mealRequests", requestCtrl.Create)
		u.DELETE("/mealRequests/:id", requestCtrl.Cancel)
		u.POST("/uploads", uploadCtrl.UploadImage)
	}

	// Profile
	profile := r.Group("/profile", auth())
	{
		profile.GET("/reviews", reviewCtrl.ListForMe)
		profile.GET("/mealRequests", requestCtrl.ListForMe)
	}

	// Membership checkout
	pay := r.Group("/payments", auth())
	{
		pay.POST("", paymentCtrl.Checkout)
		pay.GET("", paymentCtrl.History)
	}

	// Users: list is admin, detail is self-or-admin (checked in handler)
	r.GET("/users", auth(entity.RoleAdmin), userCtrl.List)
	r.GET("/users/:email", auth(), userCtrl.GetByEmail)
	r.PATCH("/users/admin/:id", auth(entity.RoleAdmin), userCtrl.PromoteAdmin)

	// Admin mutations on the same resources
	adm := r.Group("/api", auth(entity.RoleAdmin))
	{
		adm.POST("/meals", mealCtrl.Create)
		adm.PUT("/meals/:id", mealCtrl.Update)
		adm.DELETE("/meals/:id", mealCtrl.Delete)
		adm.POST("/upcomingMeals", upcomingCtrl.Create)
		adm.PATCH("/upcomingMeals/:id/publish", upcomingCtrl.Publish)
		adm.GET("/mealRequests", requestCtrl.List)
		adm.PATCH("/mealRequests/:id/serve", requestCtrl.Serve)
		adm.GET("/reviews", reviewCtrl.ListAll)
	}

	r.GET("/admin/dashboard", auth(entity.RoleAdmin), adminCtrl.Dashboard)
}
