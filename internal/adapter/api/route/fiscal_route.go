package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/nota-fiscal/internal/adapter/api/controller"
	"github.com/hugohenrick/nota-fiscal/pkg/auth"
)

// SetupFiscalRoutes configura as rotas do ciclo de vida das notas fiscais
func SetupFiscalRoutes(router *gin.RouterGroup, fiscalController *controller.FiscalController, jwtService *auth.JWTService) {
	fiscalRouter := router.Group("/fiscal")
	fiscalRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		documents := fiscalRouter.Group("/documents")
		documents.GET("", fiscalController.List)
		documents.POST("", fiscalController.Create)
		documents.POST("/print-danfe", fiscalController.PrintDANFE)
		documents.GET("/:id", fiscalController.Get)

		// Itens
		documents.POST("/:id/lines", fiscalController.AddLine)
		documents.PUT("/:id/lines/:line_id", fiscalController.UpdateLine)
		documents.DELETE("/:id/lines/:line_id", fiscalController.RemoveLine)

		// Ações do ciclo de vida
		documents.POST("/:id/validate", fiscalController.Validate)
		documents.POST("/:id/generate-xml", fiscalController.GenerateXML)
		documents.POST("/:id/transmit", fiscalController.Transmit)
		documents.POST("/:id/cancel", fiscalController.Cancel)

		// Arquivos e histórico
		documents.GET("/:id/xml", fiscalController.XML)
		documents.GET("/:id/pdf", fiscalController.PDF)
		documents.GET("/:id/messages", fiscalController.Messages)

		fiscalRouter.POST("/inutilizations", fiscalController.Inutilize)
	}
}
