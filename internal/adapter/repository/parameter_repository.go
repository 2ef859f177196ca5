package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/nota-fiscal/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ParameterRepository implementa fiscal.ParameterStore sobre a tabela fiscal_parameters
type ParameterRepository struct {
	db *pgxpool.Pool
}

// NewParameterRepository cria uma nova instância de ParameterRepository
func NewParameterRepository(db *pgxpool.Pool) *ParameterRepository {
	return &ParameterRepository{db: db}
}

// Get devolve o valor da chave ou o valor padrão quando ela não existe
func (r *ParameterRepository) Get(ctx context.Context, key, defaultValue string) (string, error) {
	var value string
	err := database.Conn(ctx, r.db).QueryRow(ctx, `SELECT value FROM fiscal_parameters WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return defaultValue, nil
		}
		return "", fmt.Errorf("falha ao buscar configuração: %w", err)
	}
	return value, nil
}

// Set grava o valor da chave, criando-a se necessário
func (r *ParameterRepository) Set(ctx context.Context, key, value string) error {
	_, err := database.Conn(ctx, r.db).Exec(ctx, `
		INSERT INTO fiscal_parameters (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, key, value)
	if err != nil {
		return fmt.Errorf("falha ao gravar configuração: %w", err)
	}
	return nil
}
