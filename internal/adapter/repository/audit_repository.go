package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/hugohenrick/nota-fiscal/internal/infrastructure/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditRepository implementa a interface fiscal.AuditLog
type AuditRepository struct {
	db *pgxpool.Pool
}

// NewAuditRepository cria uma nova instância de AuditRepository
func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: db}
}

// PostMessage acrescenta uma mensagem ao histórico do registro
func (r *AuditRepository) PostMessage(ctx context.Context, event fiscal.AuditEvent) error {
	_, err := database.Conn(ctx, r.db).Exec(ctx, `
		INSERT INTO fiscal_messages (id, model, res_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.New().String(), event.Model, event.ResID, event.Body, time.Now())
	if err != nil {
		return fmt.Errorf("falha ao registrar mensagem: %w", err)
	}
	return nil
}

// ListMessages lista as mensagens de um registro em ordem cronológica
func (r *AuditRepository) ListMessages(ctx context.Context, model, resID string) ([]fiscal.Message, error) {
	rows, err := database.Conn(ctx, r.db).Query(ctx, `
		SELECT id, model, res_id, body, created_at
		FROM fiscal_messages
		WHERE model = $1 AND res_id = $2
		ORDER BY created_at, id
	`, model, resID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar mensagens: %w", err)
	}
	defer rows.Close()

	messages := []fiscal.Message{}
	for rows.Next() {
		var m fiscal.Message
		if err := rows.Scan(&m.ID, &m.Model, &m.ResID, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler mensagem: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
