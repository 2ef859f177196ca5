package database

import (
	"context"
	"fmt"

	"github.com/hugohenrick/nota-fiscal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contextKey string

const txKey contextKey = "pgx_tx"

// Querier é o conjunto de operações comum ao pool e a uma transação
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxManager executa funções dentro de uma transação carregada no contexto
type TxManager struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

// NewTxManager cria o gerenciador de transações
func NewTxManager(pool *pgxpool.Pool, log logger.Logger) *TxManager {
	return &TxManager{pool: pool, logger: log}
}

// RunInTx abre uma transação, executa fn e faz commit, ou rollback se fn falhar.
// Chamadas aninhadas reutilizam a transação já presente no contexto.
func (m *TxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if _, ok := ctx.Value(txKey).(pgx.Tx); ok {
		return fn(ctx)
	}

	// Iniciar transação
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}

	// Executar função dentro da transação
	if err := fn(context.WithValue(ctx, txKey, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			m.logger.Error("erro ao fazer rollback", "error", rbErr)
		}
		return err
	}

	// Commit se tudo ocorreu bem
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}
	return nil
}

// Conn devolve a transação do contexto, se houver, ou o pool
func Conn(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := ctx.Value(txKey).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// InTx verifica se há uma transação no contexto
func InTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(pgx.Tx)
	return ok
}
