package dto

import (
	"time"

	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/shopspring/decimal"
)

// LineRequest representa os dados de um item da nota
type LineRequest struct {
	Sequence    *int             `json:"sequence,omitempty"`
	Description string           `json:"description" binding:"required"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty" swaggertype:"string" example:"1"`
	UnitPrice   decimal.Decimal  `json:"unit_price" swaggertype:"string" example:"10.50"`
	TaxPercent  decimal.Decimal  `json:"tax_percent" swaggertype:"string" example:"12"`
}

// ToInput converte a requisição para o formato do domínio
func (r LineRequest) ToInput() fiscal.LineInput {
	return fiscal.LineInput{
		Sequence:    r.Sequence,
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		TaxPercent:  r.TaxPercent,
	}
}

// CreateDocumentRequest representa os dados para criar uma nota em rascunho
type CreateDocumentRequest struct {
	OperationType fiscal.OperationType `json:"operation_type,omitempty" example:"out"`
	PartnerID     string               `json:"partner_id" binding:"required"`
	PartnerName   string               `json:"partner_name" binding:"required"`
	CurrencyCode  string               `json:"currency_code,omitempty" example:"BRL"`
	IssueDate     *time.Time           `json:"issue_date,omitempty"`
	Lines         []LineRequest        `json:"lines,omitempty" binding:"omitempty,dive"`
}

// CancelRequest representa o motivo do cancelamento
type CancelRequest struct {
	Reason string `json:"reason"`
}

// InutilizeRequest representa a faixa de numeração a inutilizar
type InutilizeRequest struct {
	NumberFrom    string `json:"number_from" example:"10"`
	NumberTo      string `json:"number_to" example:"20"`
	Justification string `json:"justification"`
}

// PrintDANFERequest representa as notas selecionadas para impressão
type PrintDANFERequest struct {
	DocumentIDs []string `json:"document_ids"`
}

// LineResponse representa um item da nota
type LineResponse struct {
	ID          string `json:"id"`
	Sequence    int    `json:"sequence"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TaxPercent  string `json:"tax_percent"`
	Subtotal    string `json:"subtotal"`
	TaxAmount   string `json:"tax_amount"`
}

// ArtifactResponse representa um arquivo gerado para a nota
type ArtifactResponse struct {
	Filename string `json:"filename"`
	Size     int    `json:"size"`
}

// DocumentResponse representa a resposta com dados de uma nota fiscal
type DocumentResponse struct {
	ID              string            `json:"id"`
	Number          string            `json:"number,omitempty"`
	State           string            `json:"state"`
	OperationType   string            `json:"operation_type"`
	PartnerID       string            `json:"partner_id"`
	PartnerName     string            `json:"partner_name"`
	CurrencyCode    string            `json:"currency_code"`
	AccessKey       string            `json:"access_key,omitempty"`
	ProtocolNumber  string            `json:"protocol_number,omitempty"`
	AuthorityStatus string            `json:"authority_status,omitempty"`
	LastMessage     string            `json:"last_message,omitempty"`
	IssueDate       time.Time         `json:"issue_date"`
	AmountUntaxed   string            `json:"amount_untaxed"`
	AmountTax       string            `json:"amount_tax"`
	AmountTotal     string            `json:"amount_total"`
	XML             *ArtifactResponse `json:"xml,omitempty"`
	PDF             *ArtifactResponse `json:"pdf,omitempty"`
	Lines           []LineResponse    `json:"lines"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// DocumentListQuery representa os filtros da listagem de notas
type DocumentListQuery struct {
	PageQuery
	State fiscal.State `form:"state"`
}

// DocumentListResponse representa a resposta com uma lista de notas fiscais
type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	PageMeta
}

// MessageResponse representa uma mensagem do histórico
type MessageResponse struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// NewLineResponse cria um LineResponse a partir de um item
func NewLineResponse(l fiscal.Line) LineResponse {
	return LineResponse{
		ID:          l.ID,
		Sequence:    l.Sequence,
		Description: l.Description,
		Quantity:    l.Quantity.String(),
		UnitPrice:   fiscal.UnitPrice(l.UnitPrice),
		TaxPercent:  l.TaxPercent.String(),
		Subtotal:    fiscal.Money(l.Subtotal),
		TaxAmount:   fiscal.Money(l.TaxAmount),
	}
}

func newArtifactResponse(a *fiscal.Artifact) *ArtifactResponse {
	if a == nil {
		return nil
	}
	return &ArtifactResponse{Filename: a.Filename, Size: len(a.Content)}
}

// NewDocumentResponse cria um DocumentResponse a partir de uma nota fiscal
func NewDocumentResponse(d *fiscal.Document) *DocumentResponse {
	response := &DocumentResponse{
		ID:              d.ID,
		Number:          d.Number,
		State:           d.State.String(),
		OperationType:   string(d.OperationType),
		PartnerID:       d.Partner.ID,
		PartnerName:     d.Partner.Name,
		CurrencyCode:    d.CurrencyCode,
		AccessKey:       d.AccessKey,
		ProtocolNumber:  d.ProtocolNumber,
		AuthorityStatus: d.AuthorityStatus,
		LastMessage:     d.LastMessage,
		IssueDate:       d.IssueDate,
		AmountUntaxed:   fiscal.Money(d.Untaxed),
		AmountTax:       fiscal.Money(d.Tax),
		AmountTotal:     fiscal.Money(d.Total),
		XML:             newArtifactResponse(d.XML),
		PDF:             newArtifactResponse(d.PDF),
		Lines:           make([]LineResponse, 0, len(d.Lines)),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}

	for _, l := range d.Lines {
		response.Lines = append(response.Lines, NewLineResponse(l))
	}

	return response
}

// NewDocumentListResponse cria um novo DocumentListResponse
func NewDocumentListResponse(documents []*fiscal.Document, total int, q PageQuery) *DocumentListResponse {
	response := &DocumentListResponse{
		Documents: make([]DocumentResponse, 0, len(documents)),
		PageMeta:  NewPageMeta(total, q),
	}

	for _, d := range documents {
		response.Documents = append(response.Documents, *NewDocumentResponse(d))
	}

	return response
}

// NewMessageListResponse converte as mensagens do histórico
func NewMessageListResponse(messages []fiscal.Message) []MessageResponse {
	response := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		response = append(response, MessageResponse{ID: m.ID, Body: m.Body, CreatedAt: m.CreatedAt})
	}
	return response
}
