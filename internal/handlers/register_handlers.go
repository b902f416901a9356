package handlers

import (
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/cmd/docs"
	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/middleware"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/pkg/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	authMW := middleware.AuthMiddleware(cfg.JWTSecret, services.User)

	// Storefront reads and the contact form need no token; everything under
	// admin additionally needs the admin role.
	public := r.Group("/api")
	protected := r.Group("/api", authMW)
	admin := r.Group("/api", authMW, middleware.RequireAdmin())

	registerAuthRoutes(r, services.User, authMW)
	registerUserRoutes(admin, services.User)
	registerCategoryRoutes(public, admin, services.Category)
	registerProductRoutes(public, admin, services.Product)
	registerCustomerRoutes(admin, services.Customer)
	registerInvoiceRoutes(protected, services.Invoice)
	registerOfferRoutes(public, admin, services.Offer)
	registerContactRoutes(public, admin, services.Contact)
	registerSettingsRoutes(public, admin, services.Settings)
	registerDashboardRoutes(admin, services.Dashboard)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
