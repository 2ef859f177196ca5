package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/nota-fiscal/internal/adapter/api/controller"
	"github.com/hugohenrick/nota-fiscal/pkg/auth"
)

// SetupAuthRoutes configura as rotas para autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController, jwtService *auth.JWTService) {
	authRouter := router.Group("/auth")
	{
		authRouter.POST("/login", authController.Login)

		// Aceita token recém-expirado
		authRouter.POST("/refresh", authController.Refresh)

		authRouter.GET("/me", auth.JWTAuthMiddleware(jwtService), authController.Me)
	}
}
