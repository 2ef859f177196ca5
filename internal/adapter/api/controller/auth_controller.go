package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/nota-fiscal/internal/adapter/api/dto"
	"github.com/hugohenrick/nota-fiscal/pkg/auth"
	"github.com/hugohenrick/nota-fiscal/pkg/logger"
)

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	authenticator *auth.OperatorAuthenticator
	jwtService    *auth.JWTService
	logger        logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(authenticator *auth.OperatorAuthenticator, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		authenticator: authenticator,
		jwtService:    jwtService,
		logger:        logger,
	}
}

// Login autentica o operador fiscal e retorna um token JWT
// @Summary Autentica o operador
// @Description Verifica as credenciais do operador e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	op, err := c.authenticator.Authenticate(request.Email, request.Password)
	if err != nil {
		c.logger.Warn("falha de autenticação", "email", request.Email)
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", err.Error()))
		return
	}

	token, expiresAt, err := c.jwtService.GenerateToken(op)
	if err != nil {
		c.logger.Error("erro ao gerar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Email:       op.Email,
		CompanyID:   op.CompanyID,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	})
}

// Refresh renova um token JWT
// @Summary Renova o token
// @Description Emite um novo token a partir de um token válido ou recém-expirado
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Token atual"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var request dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	token, expiresAt, err := c.jwtService.RefreshToken(request.AccessToken)
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, auth.ErrMissingJWTKey) {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.NewErrorResponse(status, "Token inválido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.RefreshTokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	})
}

// Me retorna o operador autenticado
// @Summary Operador atual
// @Description Retorna o email e a empresa do token informado
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.ActionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	email, companyID := auth.GetCurrentOperator(ctx)
	ctx.JSON(http.StatusOK, dto.NewActionResponse("operador autenticado", gin.H{
		"email":      email,
		"company_id": companyID,
	}))
}
