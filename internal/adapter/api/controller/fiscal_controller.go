package controller

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/nota-fiscal/internal/adapter/api/dto"
	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/hugohenrick/nota-fiscal/internal/service"
	"github.com/hugohenrick/nota-fiscal/pkg/logger"
)

// FiscalController manipula as requisições relacionadas ao ciclo de vida das notas fiscais
type FiscalController struct {
	documents *service.DocumentService
	logger    logger.Logger
}

// NewFiscalController cria uma nova instância de FiscalController
func NewFiscalController(documents *service.DocumentService, logger logger.Logger) *FiscalController {
	return &FiscalController{
		documents: documents,
		logger:    logger,
	}
}

// @Summary Criar nota fiscal
// @Description Cria uma nota fiscal em rascunho, opcionalmente com itens
// @Tags Notas Fiscais
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param document body dto.CreateDocumentRequest true "Dados da nota"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fiscal/documents [post]
func (c *FiscalController) Create(ctx *gin.Context) {
	var req dto.CreateDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	input := service.CreateDocumentInput{
		OperationType: req.OperationType,
		Partner:       fiscal.Partner{ID: req.PartnerID, Name: req.PartnerName},
		CurrencyCode:  req.CurrencyCode,
		IssueDate:     time.Now(),
	}
	if input.OperationType == "" {
		input.OperationType = fiscal.OperationOut
	}
	if req.IssueDate != nil {
		input.IssueDate = *req.IssueDate
	}
	for _, l := range req.Lines {
		input.Lines = append(input.Lines, l.ToInput())
	}

	doc, err := c.documents.Create(ctx.Request.Context(), input)
	if err != nil {
		c.logger.Error("erro ao criar nota fiscal", "error", err)
		respondError(ctx, "erro ao criar nota fiscal", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDocumentResponse(doc))
}

// @Summary Listar notas fiscais
// @Description Lista as notas fiscais da empresa com paginação
// @Tags Notas Fiscais
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página" default(1)
// @Param page_size query int false "Tamanho da página" default(10)
// @Param state query string false "Filtrar por estado"
// @Success 200 {object} dto.DocumentListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fiscal/documents [get]
func (c *FiscalController) List(ctx *gin.Context) {
	var query dto.DocumentListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetros de listagem inválidos", err.Error()))
		return
	}
	page := query.PageQuery.Normalize()

	filter := fiscal.ListFilter{
		State:  query.State,
		Limit:  page.PageSize,
		Offset: page.Offset(),
	}

	docs, total, err := c.documents.List(ctx.Request.Context(), filter)
	if err != nil {
		c.logger.Error("erro ao listar notas fiscais", "error", err)
		respondError(ctx, "erro ao listar notas fiscais", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDocumentListResponse(docs, total, page))
}

// @Summary Obter nota fiscal
// @Description Obtém uma nota fiscal pelo ID
// @Tags Notas Fiscais
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fiscal/documents/{id} [get]
func (c *FiscalController) Get(ctx *gin.Context) {
	doc, err := c.documents.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "erro ao buscar nota fiscal", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDocumentResponse(doc))
}

// @Summary Adicionar item
// @Description Adiciona um item a uma nota em rascunho ou validada
// @Tags Notas Fiscais
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Param line body dto.LineRequest true "Dados do item"
// @Success 201 {object} dto.LineResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /fiscal/documents/{id}/lines [post]
func (c *FiscalController) AddLine(ctx *gin.Context) {
	var req dto.LineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	line, err := c.documents.AddLine(ctx.Request.Context(), ctx.Param("id"), req.ToInput())
	if err != nil {
		respondError(ctx, "erro ao adicionar item", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewLineResponse(*line))
}

// @Summary Atualizar item
// @Description Atualiza um item de uma nota em rascunho ou validada
// @Tags Notas Fiscais
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Param line_id path string true "ID do item"
// @Param line body dto.LineRequest true "Dados do item"
// @Success 200 {object} dto.LineResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /fiscal/documents/{id}/lines/{line_id} [put]
func (c *FiscalController) UpdateLine(ctx *gin.Context) {
	var req dto.LineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	line, err := c.documents.UpdateLine(ctx.Request.Context(), ctx.Param("id"), ctx.Param("line_id"), req.ToInput())
	if err != nil {
		respondError(ctx, "erro ao atualizar item", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewLineResponse(*line))
}

// @Summary Remover item
// @Description Remove um item de uma nota em rascunho ou validada
// @Tags Notas Fiscais
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Param line_id path string true "ID do item"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /fiscal/documents/{id}/lines/{line_id} [delete]
func (c *FiscalController) RemoveLine(ctx *gin.Context) {
	if err := c.documents.RemoveLine(ctx.Request.Context(), ctx.Param("id"), ctx.Param("line_id")); err != nil {
		respondError(ctx, "erro ao remover item", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// @Summary Validar nota fiscal
// @Description Valida a nota e atribui o próximo número da sequência
// @Tags Notas Fiscais
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /fiscal/documents/{id}/validate [post]
func (c *FiscalController) Validate(ctx *gin.Context) {
	doc, err := c.documents.Validate(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "erro ao validar nota fiscal", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDocumentResponse(doc))
}

// @Summary Gerar XML
// @Description Gera o XML genérico da nota e o anexa ao registro
// @Tags Notas Fiscais
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /fiscal/documents/{id}/generate-xml [post]
func (c *FiscalController) GenerateXML(ctx *gin.Context) {
	doc, err := c.documents.GenerateXML(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "erro ao gerar XML", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDocumentResponse(doc))
}

// @Summary Transmitir nota fiscal
// @Description Envia a nota validada ao provedor configurado e registra o resultado
// @Tags Notas Fiscais
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /fiscal/documents/{id}/transmit [post]
func (c *FiscalController) Transmit(ctx *gin.Context) {
	doc, err := c.documents.Transmit(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.logger.Warn("transmissão não concluída", "document_id", ctx.Param("id"), "error", err)
		respondError(ctx, "erro ao transmitir nota fiscal", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDocumentResponse(doc))
}

// @Summary Cancelar nota fiscal
// @Description Cancela a nota informando o motivo
// @Tags Notas Fiscais
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Param cancel body dto.CancelRequest true "Motivo do cancelamento"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /fiscal/documents/{id}/cancel [post]
func (c *FiscalController) Cancel(ctx *gin.Context) {
	var req dto.CancelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	doc, err := c.documents.Cancel(ctx.Request.Context(), ctx.Param("id"), req.Reason)
	if err != nil {
		respondError(ctx, "erro ao cancelar nota fiscal", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDocumentResponse(doc))
}

// @Summary Inutilizar numeração
// @Description Registra a inutilização de uma faixa de numeração
// @Tags Notas Fiscais
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param range body dto.InutilizeRequest true "Faixa e justificativa"
// @Success 200 {object} dto.ActionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /fiscal/inutilizations [post]
func (c *FiscalController) Inutilize(ctx *gin.Context) {
	var req dto.InutilizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	from, errFrom := strconv.ParseInt(strings.TrimSpace(req.NumberFrom), 10, 64)
	to, errTo := strconv.ParseInt(strings.TrimSpace(req.NumberTo), 10, 64)
	if errFrom != nil || errTo != nil {
		respondError(ctx, "erro ao inutilizar numeração", fiscal.ErrInvalidRange)
		return
	}

	if err := c.documents.InutilizeRange(ctx.Request.Context(), from, to, req.Justification); err != nil {
		respondError(ctx, "erro ao inutilizar numeração", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewActionResponse("numeração inutilizada", gin.H{
		"number_from": from,
		"number_to":   to,
	}))
}

// @Summary Imprimir DANFE
// @Description Gera o DANFE em PDF de uma única nota
// @Tags Notas Fiscais
// @Accept json
// @Produce application/pdf
// @Param Authorization header string true "Bearer token"
// @Param selection body dto.PrintDANFERequest true "Nota selecionada"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /fiscal/documents/print-danfe [post]
func (c *FiscalController) PrintDANFE(ctx *gin.Context) {
	var req dto.PrintDANFERequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	artifact, err := c.documents.PrintDANFE(ctx.Request.Context(), req.DocumentIDs)
	if err != nil {
		respondError(ctx, "erro ao imprimir DANFE", err)
		return
	}

	sendArtifact(ctx, artifact, "application/pdf")
}

// @Summary Baixar XML
// @Description Baixa o XML anexado à nota
// @Tags Notas Fiscais
// @Produce application/xml
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Router /fiscal/documents/{id}/xml [get]
func (c *FiscalController) XML(ctx *gin.Context) {
	artifact, err := c.documents.XML(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "erro ao obter XML", err)
		return
	}

	sendArtifact(ctx, artifact, "application/xml")
}

// @Summary Baixar PDF
// @Description Baixa o PDF anexado à nota
// @Tags Notas Fiscais
// @Produce application/pdf
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Router /fiscal/documents/{id}/pdf [get]
func (c *FiscalController) PDF(ctx *gin.Context) {
	artifact, err := c.documents.PDF(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "erro ao obter PDF", err)
		return
	}

	contentType := "application/pdf"
	if strings.HasPrefix(string(artifact.Content), "<html") {
		contentType = "text/html; charset=utf-8"
	}
	sendArtifact(ctx, artifact, contentType)
}

// @Summary Histórico da nota
// @Description Lista as mensagens registradas no histórico da nota
// @Tags Notas Fiscais
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Success 200 {array} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /fiscal/documents/{id}/messages [get]
func (c *FiscalController) Messages(ctx *gin.Context) {
	messages, err := c.documents.Messages(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "erro ao obter histórico", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageListResponse(messages))
}

func sendArtifact(ctx *gin.Context, artifact *fiscal.Artifact, contentType string) {
	ctx.Header("Content-Disposition", "attachment; filename=\""+artifact.Filename+"\"")
	ctx.Data(http.StatusOK, contentType, artifact.Content)
}
