package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/nota-fiscal/internal/adapter/api/dto"
	"github.com/hugohenrick/nota-fiscal/internal/domain/certificate"
	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/hugohenrick/nota-fiscal/internal/service"
	"github.com/hugohenrick/nota-fiscal/pkg/company"
	"github.com/hugohenrick/nota-fiscal/pkg/pkcs12"
)

// statusFor traduz os erros de domínio para o código HTTP correspondente
func statusFor(err error) int {
	switch {
	case errors.Is(err, company.ErrCompanyNotSpecified):
		return http.StatusUnauthorized
	case errors.Is(err, fiscal.ErrDocumentNotFound),
		errors.Is(err, fiscal.ErrLineNotFound),
		errors.Is(err, fiscal.ErrArtifactNotFound),
		errors.Is(err, certificate.ErrCertificateNotFound):
		return http.StatusNotFound
	case errors.Is(err, fiscal.ErrInvalidTransition),
		errors.Is(err, fiscal.ErrDocumentLocked):
		return http.StatusConflict
	case errors.Is(err, fiscal.ErrNoLines),
		errors.Is(err, fiscal.ErrEmptyReason),
		errors.Is(err, fiscal.ErrEmptyJustification),
		errors.Is(err, fiscal.ErrInvalidRange),
		errors.Is(err, fiscal.ErrSingleDocumentRequired),
		errors.Is(err, fiscal.ErrInvalidData),
		errors.Is(err, service.ErrInvalidCertificate),
		errors.Is(err, pkcs12.ErrInvalidPassword),
		errors.Is(err, certificate.ErrEmptyContent),
		errors.Is(err, certificate.ErrPasswordRequired),
		errors.Is(err, certificate.ErrExpired):
		return http.StatusBadRequest
	case fiscal.IsTransmissionError(err):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// respondError escreve a resposta de erro padrão
func respondError(ctx *gin.Context, message string, err error) {
	status := statusFor(err)
	ctx.JSON(status, dto.NewErrorResponse(status, message, err.Error()))
}
