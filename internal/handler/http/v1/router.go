package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	authRequired := JWTAuthMiddleware(h.tokens, h.logger)

	// Маршруты аутентификации
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.GET("/me", authRequired, h.me)
	}

	// Маршруты геоточек
	locations := api.Group("/locations")
	{
		locations.POST("", authRequired, h.saveLocation)
		locations.GET("/nearby", authRequired, h.findNearby)
		// Список банков крови публичный
		locations.GET("/blood-banks", h.listBloodBanks)
	}

	// Маршруты заявок на кровь (CRUD)
	requests := api.Group("/requests", authRequired)
	{
		requests.POST("", h.createRequest)
		requests.GET("", h.listRequests)
		requests.GET("/:id", h.getRequest)
		requests.PUT("/:id", h.updateRequest)
		requests.DELETE("/:id", h.cancelRequest)
	}

	// Маршруты медицинских документов
	documents := api.Group("/documents", authRequired)
	{
		documents.POST("", h.uploadDocument)
		documents.GET("", h.listDocuments)
		documents.GET("/:id", h.downloadDocument)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
