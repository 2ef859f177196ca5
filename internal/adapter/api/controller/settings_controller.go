package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/nota-fiscal/internal/adapter/api/dto"
	"github.com/hugohenrick/nota-fiscal/internal/service"
	"github.com/hugohenrick/nota-fiscal/pkg/logger"
)

// maxCertificateSize limita o tamanho do arquivo .pfx enviado
const maxCertificateSize = 1 << 20

// SettingsController manipula as requisições da configuração fiscal e do certificado A1
type SettingsController struct {
	settings *service.SettingsService
	logger   logger.Logger
}

// NewSettingsController cria uma nova instância de SettingsController
func NewSettingsController(settings *service.SettingsService, logger logger.Logger) *SettingsController {
	return &SettingsController{
		settings: settings,
		logger:   logger,
	}
}

// @Summary Obter configuração fiscal
// @Description Retorna ambiente, provedor e credenciais (sem senhas)
// @Tags Configurações Fiscais
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SettingsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fiscal/settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	settings, err := c.settings.Get(ctx.Request.Context())
	if err != nil {
		respondError(ctx, "erro ao carregar configuração fiscal", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSettingsResponse(settings))
}

// @Summary Atualizar configuração fiscal
// @Description Atualiza ambiente, provedor e credenciais. Senhas vazias mantêm o valor atual.
// @Tags Configurações Fiscais
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param settings body dto.SettingsRequest true "Configuração fiscal"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fiscal/settings [put]
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.SettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	settings, err := c.settings.Update(ctx.Request.Context(), req.ToSettings())
	if err != nil {
		respondError(ctx, "erro ao atualizar configuração fiscal", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSettingsResponse(settings))
}

// @Summary Enviar certificado A1
// @Description Envia o arquivo .pfx e a senha do certificado digital da empresa
// @Tags Configurações Fiscais
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param file formData file true "Arquivo do certificado (.pfx)"
// @Param password formData string true "Senha do certificado"
// @Success 201 {object} dto.CertificateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fiscal/settings/certificate [post]
func (c *SettingsController) UploadCertificate(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "arquivo do certificado não fornecido", err.Error()))
		return
	}
	if file.Size > maxCertificateSize {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "arquivo do certificado muito grande", file.Filename))
		return
	}

	src, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao abrir arquivo do certificado", err.Error()))
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao ler arquivo do certificado", err.Error()))
		return
	}

	cert, err := c.settings.UploadCertificate(ctx.Request.Context(), file.Filename, content, ctx.PostForm("password"))
	if err != nil {
		c.logger.Error("erro ao salvar certificado", "filename", file.Filename, "error", err)
		respondError(ctx, "erro ao salvar certificado", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCertificateResponse(cert))
}

// @Summary Obter certificado A1
// @Description Retorna os dados do certificado digital atual da empresa
// @Tags Configurações Fiscais
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.CertificateResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /fiscal/settings/certificate [get]
func (c *SettingsController) Certificate(ctx *gin.Context) {
	cert, err := c.settings.Certificate(ctx.Request.Context())
	if err != nil {
		respondError(ctx, "erro ao obter certificado", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCertificateResponse(cert))
}
