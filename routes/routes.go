package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restoflow/configs"
	"restoflow/controllers"
	"restoflow/entity"
	"restoflow/events"
	"restoflow/middlewares"
	"restoflow/repository"
	"restoflow/services"
	"restoflow/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config,
	cache *repository.CatalogCache, publisher events.Publisher, feed *ws.OrderFeed) {

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, restRepo, cfg.JWTSecret, cfg.JWTTTL)
	tenantSvc := services.NewTenantService(db, restRepo, userRepo)
	catalogSvc := services.NewCatalogService(catalogRepo, cache)
	orderSvc := services.NewOrderService(db, orderRepo, catalogRepo, cache, publisher, feed)
	staffSvc := services.NewStaffService(userRepo)
	analyticsSvc := services.NewAnalyticsService(orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	tenantCtrl := controllers.NewTenantController(tenantSvc, cfg.UploadDir)
	itemCtrl := controllers.NewItemController(catalogSvc)
	categoryCtrl := controllers.NewCategoryController(catalogSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	staffCtrl := controllers.NewStaffController(staffSvc)
	analyticsCtrl := controllers.NewAnalyticsController(analyticsSvc)

	v1 := r.Group("/api/v1")

	// Auth (public)
	v1.POST("/auth/login", authCtrl.Login)
	v1.GET("/auth/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// SaaS console (super admin only)
	tenants := v1.Group("/tenants", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleSuperAdmin))
	{
		tenants.GET("", tenantCtrl.List)
		tenants.POST("", tenantCtrl.Create)
		tenants.PUT("/:id", tenantCtrl.Update)
		tenants.GET("/:id/admin", tenantCtrl.Admin)
	}

	// Tenant-scoped (any authenticated role + X-Tenant-ID)
	scoped := v1.Group("", middlewares.AuthMiddleware(cfg.JWTSecret), middlewares.TenantMiddleware())
	{
		scoped.GET("/items", itemCtrl.List)
		scoped.GET("/categories", categoryCtrl.List)
		scoped.GET("/orders", orderCtrl.List)
		scoped.POST("/orders", orderCtrl.Create)
		scoped.GET("/orders/:code", orderCtrl.Detail)
		scoped.GET("/orders/:code/qr", orderCtrl.QR)
		scoped.GET("/ws/orders", feed.HandleWebSocket)
	}

	// Back office (admins only)
	backOffice := v1.Group("",
		middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleSuperAdmin, entity.RoleRestaurantAdmin),
		middlewares.TenantMiddleware())
	{
		backOffice.POST("/items", itemCtrl.Create)
		backOffice.PUT("/items/:id", itemCtrl.Update)
		backOffice.DELETE("/items/:id", itemCtrl.Delete)
		backOffice.POST("/categories", categoryCtrl.Create)
		backOffice.GET("/users", staffCtrl.List)
		backOffice.POST("/users", staffCtrl.Create)
		backOffice.GET("/analytics/sales", analyticsCtrl.Sales)
	}
}
