package company

import (
	"context"
	"errors"
)

type contextKey string

const (
	// companyIDKey é a chave usada para armazenar a empresa no contexto
	companyIDKey contextKey = "company_id"
)

// ErrCompanyNotSpecified ocorre quando a empresa não está presente no contexto
var ErrCompanyNotSpecified = errors.New("empresa não especificada")

// WithCompanyID define a empresa no contexto
func WithCompanyID(ctx context.Context, companyID string) context.Context {
	return context.WithValue(ctx, companyIDKey, companyID)
}

// IDFromContext obtém a empresa do contexto
func IDFromContext(ctx context.Context) string {
	if companyID, ok := ctx.Value(companyIDKey).(string); ok {
		return companyID
	}
	return ""
}

// RequireID obtém a empresa do contexto ou devolve ErrCompanyNotSpecified
func RequireID(ctx context.Context) (string, error) {
	companyID := IDFromContext(ctx)
	if companyID == "" {
		return "", ErrCompanyNotSpecified
	}
	return companyID, nil
}
