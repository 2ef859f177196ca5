package fiscal

import (
	"context"
	"time"
)

// ListFilter contém os filtros da listagem de notas
type ListFilter struct {
	CompanyID string
	State     State
	Limit     int
	Offset    int
}

// Repository define a interface para persistência das notas fiscais e seus itens
type Repository interface {
	// Create grava uma nova nota com seus itens
	Create(ctx context.Context, d *Document) error

	// FindByID busca uma nota pelo ID, com itens
	FindByID(ctx context.Context, id string) (*Document, error)

	// FindByIDForUpdate busca uma nota bloqueando o registro até o fim da transação
	FindByIDForUpdate(ctx context.Context, id string) (*Document, error)

	// List lista as notas de uma empresa, das mais recentes para as mais antigas
	List(ctx context.Context, filter ListFilter) ([]*Document, int, error)

	// Update grava os campos da nota e substitui seus itens
	Update(ctx context.Context, d *Document) error
}

// Sequence é a numeração compartilhada das notas.
// Next deve devolver valores crescentes e sem colisão mesmo com chamadas concorrentes.
type Sequence interface {
	Next(ctx context.Context) (int64, error)
}

// Message é uma mensagem registrada no histórico de um registro
type Message struct {
	ID        string    `json:"id"`
	Model     string    `json:"model"`
	ResID     string    `json:"res_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditLog é o histórico de mensagens dos registros
type AuditLog interface {
	// PostMessage acrescenta uma mensagem ao histórico do registro
	PostMessage(ctx context.Context, event AuditEvent) error

	// ListMessages lista as mensagens de um registro em ordem cronológica
	ListMessages(ctx context.Context, model, resID string) ([]Message, error)
}
