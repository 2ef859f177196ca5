package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/nota-fiscal/internal/adapter/api/controller"
	"github.com/hugohenrick/nota-fiscal/pkg/auth"
)

// SetupSettingsRoutes configura as rotas da configuração fiscal
func SetupSettingsRoutes(router *gin.RouterGroup, settingsController *controller.SettingsController, jwtService *auth.JWTService) {
	settingsRouter := router.Group("/fiscal/settings")
	settingsRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		settingsRouter.GET("", settingsController.Get)
		settingsRouter.PUT("", settingsController.Update)
		settingsRouter.GET("/certificate", settingsController.Certificate)
		settingsRouter.POST("/certificate", settingsController.UploadCertificate)
	}
}
