package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/nota-fiscal/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSequence implementa fiscal.Sequence com incremento atômico no banco
type PostgresSequence struct {
	db   *pgxpool.Pool
	code string
}

// NewPostgresSequence cria a numeração identificada por code
func NewPostgresSequence(db *pgxpool.Pool, code string) *PostgresSequence {
	return &PostgresSequence{db: db, code: code}
}

// Next obtém o próximo número e incrementa a sequência na mesma instrução.
// A linha fica bloqueada até o fim da transação, o que serializa chamadas concorrentes.
func (s *PostgresSequence) Next(ctx context.Context) (int64, error) {
	var number int64
	err := database.Conn(ctx, s.db).QueryRow(ctx, `
		INSERT INTO fiscal_sequences (code, next_number)
		VALUES ($1, 2)
		ON CONFLICT (code) DO UPDATE SET next_number = fiscal_sequences.next_number + 1
		RETURNING next_number - 1
	`, s.code).Scan(&number)
	if err != nil {
		return 0, fmt.Errorf("falha ao obter próximo número da sequência %s: %w", s.code, err)
	}
	return number, nil
}

// LastIssued devolve o último número entregue pela sequência, ou zero se ela nunca foi usada
func (s *PostgresSequence) LastIssued(ctx context.Context) (int64, error) {
	var next int64
	err := database.Conn(ctx, s.db).QueryRow(ctx,
		`SELECT next_number FROM fiscal_sequences WHERE code = $1`, s.code).Scan(&next)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("falha ao consultar sequência %s: %w", s.code, err)
	}
	return next - 1, nil
}
