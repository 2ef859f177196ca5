package fiscal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultLineSequence é a ordem atribuída a itens criados sem sequência
const DefaultLineSequence = 10

// Line representa um item da nota fiscal
type Line struct {
	ID          string          `json:"id"`
	DocumentID  string          `json:"document_id"`
	Sequence    int             `json:"sequence"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxPercent  decimal.Decimal `json:"tax_percent"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// LineInput agrupa os campos editáveis de um item
type LineInput struct {
	Sequence    *int
	Description string
	Quantity    *decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxPercent  decimal.Decimal
}

// ComputeLine calcula o subtotal e o valor do imposto de um item.
// Nenhum arredondamento é aplicado aqui.
func ComputeLine(quantity, unitPrice, taxPercent decimal.Decimal) (subtotal, taxAmount decimal.Decimal) {
	subtotal = quantity.Mul(unitPrice)
	taxAmount = subtotal.Mul(taxPercent).Shift(-2)
	return subtotal, taxAmount
}

// NewLine cria um novo item com os valores derivados já calculados
func NewLine(in LineInput) (*Line, error) {
	if in.Description == "" {
		return nil, fmt.Errorf("%w: descrição do item é obrigatória", ErrInvalidData)
	}

	sequence := DefaultLineSequence
	if in.Sequence != nil {
		sequence = *in.Sequence
	}

	// Quantidade padrão de uma unidade
	quantity := decimal.NewFromInt(1)
	if in.Quantity != nil {
		quantity = *in.Quantity
	}

	// UUIDv7 cresce com o tempo de criação e desempata itens de mesma sequência
	now := time.Now()
	line := &Line{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Sequence:    sequence,
		Description: in.Description,
		Quantity:    quantity,
		UnitPrice:   in.UnitPrice,
		TaxPercent:  in.TaxPercent,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	line.Recompute()
	return line, nil
}

// Apply altera os campos editáveis do item e recalcula os derivados
func (l *Line) Apply(in LineInput) error {
	if in.Description == "" {
		return fmt.Errorf("%w: descrição do item é obrigatória", ErrInvalidData)
	}

	if in.Sequence != nil {
		l.Sequence = *in.Sequence
	}
	if in.Quantity != nil {
		l.Quantity = *in.Quantity
	}
	l.Description = in.Description
	l.UnitPrice = in.UnitPrice
	l.TaxPercent = in.TaxPercent
	l.UpdatedAt = time.Now()
	l.Recompute()
	return nil
}

// Recompute atualiza subtotal e imposto a partir de quantidade, preço e alíquota
func (l *Line) Recompute() {
	l.Subtotal, l.TaxAmount = ComputeLine(l.Quantity, l.UnitPrice, l.TaxPercent)
}
