package fiscal

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// State define a situação da nota fiscal
type State string

const (
	StateDraft       State = "draft"
	StateValidated   State = "validated"
	StateTransmitted State = "transmitted"
	StateAuthorized  State = "authorized"
	StateDenied      State = "denied"
	StateCanceled    State = "canceled"
)

// IsValid verifica se o estado é conhecido
func (s State) IsValid() bool {
	switch s {
	case StateDraft, StateValidated, StateTransmitted, StateAuthorized, StateDenied, StateCanceled:
		return true
	}
	return false
}

// String retorna o estado como texto
func (s State) String() string {
	return string(s)
}

// CanTransitionTo verifica se a nota pode passar do estado atual para o estado alvo
func (s State) CanTransitionTo(target State) bool {
	switch s {
	case StateDraft:
		return target == StateValidated
	case StateValidated:
		return target == StateTransmitted || target == StateCanceled
	case StateTransmitted:
		// Retorno para validated apenas quando o envio falha
		return target == StateAuthorized || target == StateDenied ||
			target == StateCanceled || target == StateValidated
	case StateAuthorized:
		return target == StateCanceled
	case StateDenied, StateCanceled:
		return false
	}
	return false
}

// OperationType define o tipo de operação da nota
type OperationType string

const (
	OperationOut OperationType = "out"
	OperationIn  OperationType = "in"
)

// IsValid verifica se o tipo de operação é conhecido
func (o OperationType) IsValid() bool {
	return o == OperationOut || o == OperationIn
}

// Partner identifica o destinatário ou emitente da nota
type Partner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Artifact é um arquivo gerado para a nota (XML ou PDF)
type Artifact struct {
	Content  []byte `json:"-"`
	Filename string `json:"filename"`
}

// Clone devolve uma cópia independente do arquivo
func (a *Artifact) Clone() *Artifact {
	if a == nil {
		return nil
	}
	content := make([]byte, len(a.Content))
	copy(content, a.Content)
	return &Artifact{Content: content, Filename: a.Filename}
}

// Document representa uma nota fiscal (NFe ou NFS-e)
type Document struct {
	ID              string        `json:"id"`
	CompanyID       string        `json:"company_id"`
	Number          string        `json:"number"`
	State           State         `json:"state"`
	OperationType   OperationType `json:"operation_type"`
	Partner         Partner       `json:"partner"`
	CurrencyCode    string        `json:"currency"`
	AccessKey       string        `json:"access_key"`
	ProtocolNumber  string        `json:"protocol_number"`
	IssueDate       time.Time     `json:"issue_date"`
	LastMessage     string        `json:"last_message"`
	AuthorityStatus string        `json:"authority_status"`
	XML             *Artifact     `json:"xml,omitempty"`
	PDF             *Artifact     `json:"pdf,omitempty"`
	Lines           []Line        `json:"lines"`
	Totals
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDocument cria uma nota em rascunho, sem número
func NewDocument(companyID string, operation OperationType, partner Partner, currency string, issueDate time.Time) (*Document, error) {
	if companyID == "" {
		return nil, fmt.Errorf("%w: empresa é obrigatória", ErrInvalidData)
	}
	if partner.ID == "" {
		return nil, fmt.Errorf("%w: parceiro é obrigatório", ErrInvalidData)
	}

	if operation == "" {
		operation = OperationOut
	}
	if !operation.IsValid() {
		return nil, fmt.Errorf("%w: tipo de operação %s", ErrInvalidData, operation)
	}
	if currency == "" {
		currency = "BRL"
	}

	now := time.Now()
	if issueDate.IsZero() {
		issueDate = now
	}

	return &Document{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		State:         StateDraft,
		OperationType: operation,
		Partner:       partner,
		CurrencyCode:  strings.ToUpper(currency),
		IssueDate:     issueDate,
		Lines:         []Line{},
		Totals:        ComputeTotals(nil),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// HasLines verifica se a nota possui itens
func (d *Document) HasLines() bool {
	return len(d.Lines) > 0
}

// IsNumbered verifica se a nota já recebeu número
func (d *Document) IsNumbered() bool {
	return d.Number != ""
}

// NumberOr retorna o número da nota ou o valor informado quando ainda não numerada
func (d *Document) NumberOr(placeholder string) string {
	if d.Number == "" {
		return placeholder
	}
	return d.Number
}

// LinesEditable verifica se os itens ainda podem ser alterados
func (d *Document) LinesEditable() bool {
	return d.State == StateDraft || d.State == StateValidated
}

// AddLine inclui um item e recalcula os totais
func (d *Document) AddLine(in LineInput) (*Line, error) {
	if !d.LinesEditable() {
		return nil, ErrDocumentLocked
	}

	line, err := NewLine(in)
	if err != nil {
		return nil, err
	}
	line.DocumentID = d.ID

	d.Lines = append(d.Lines, *line)
	d.linesChanged()
	return line, nil
}

// UpdateLine altera um item existente e recalcula os totais
func (d *Document) UpdateLine(lineID string, in LineInput) (*Line, error) {
	if !d.LinesEditable() {
		return nil, ErrDocumentLocked
	}

	for i := range d.Lines {
		if d.Lines[i].ID != lineID {
			continue
		}
		if err := d.Lines[i].Apply(in); err != nil {
			return nil, err
		}
		updated := d.Lines[i]
		d.linesChanged()
		return &updated, nil
	}
	return nil, ErrLineNotFound
}

// RemoveLine exclui um item e recalcula os totais
func (d *Document) RemoveLine(lineID string) error {
	if !d.LinesEditable() {
		return ErrDocumentLocked
	}

	for i := range d.Lines {
		if d.Lines[i].ID == lineID {
			d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
			d.linesChanged()
			return nil
		}
	}
	return ErrLineNotFound
}

// SortLines ordena os itens por sequência e depois por ordem de criação
func (d *Document) SortLines() {
	sort.SliceStable(d.Lines, func(i, j int) bool {
		if d.Lines[i].Sequence != d.Lines[j].Sequence {
			return d.Lines[i].Sequence < d.Lines[j].Sequence
		}
		return d.Lines[i].ID < d.Lines[j].ID
	})
}

// RecomputeTotals recalcula os valores agregados a partir dos itens
func (d *Document) RecomputeTotals() {
	d.Totals = ComputeTotals(d.Lines)
}

func (d *Document) linesChanged() {
	d.SortLines()
	d.RecomputeTotals()
	d.UpdatedAt = time.Now()
}

// Clone devolve uma cópia profunda da nota
func (d *Document) Clone() *Document {
	c := *d
	c.Lines = make([]Line, len(d.Lines))
	copy(c.Lines, d.Lines)
	c.XML = d.XML.Clone()
	c.PDF = d.PDF.Clone()
	return &c
}
