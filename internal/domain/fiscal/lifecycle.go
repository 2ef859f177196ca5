package fiscal

import (
	"fmt"
	"strings"
	"time"
)

// Modelos aos quais as mensagens de auditoria podem ser vinculadas
const (
	ModelDocument = "fiscal_document"
	ModelCompany  = "company"
)

// AuditEvent é uma mensagem a ser registrada no histórico de um registro
type AuditEvent struct {
	Model string
	ResID string
	Body  string
}

func documentEvent(d *Document, body string) AuditEvent {
	return AuditEvent{Model: ModelDocument, ResID: d.ID, Body: body}
}

// FormatNumber monta o número da nota no formato PREFIXO/ANO/SEQUENCIA
func FormatNumber(prefix string, year int, sequence int64) string {
	return fmt.Sprintf("%s/%d/%05d", prefix, year, sequence)
}

// As funções abaixo não alteram a nota recebida. Cada uma devolve uma cópia
// com a transição aplicada e as mensagens de auditoria a registrar.

// Validate numera a nota e a move para validated.
// Uma nota já numerada é devolvida sem alterações e sem eventos.
func Validate(d *Document, number string) (*Document, []AuditEvent, error) {
	if !d.HasLines() {
		return nil, nil, ErrNoLines
	}
	if d.IsNumbered() {
		return d, nil, nil
	}
	if !d.State.CanTransitionTo(StateValidated) {
		return nil, nil, invalidTransition(d.State, StateValidated)
	}
	if number == "" {
		return nil, nil, fmt.Errorf("número da nota é obrigatório")
	}

	next := d.Clone()
	next.Number = number
	next.State = StateValidated
	next.UpdatedAt = time.Now()
	return next, []AuditEvent{documentEvent(next, "Document validated.")}, nil
}

// GenerateXML reconstrói o XML genérico da nota, substituindo o anterior
func GenerateXML(d *Document) (*Document, []AuditEvent, error) {
	if !d.HasLines() {
		return nil, nil, ErrNoLines
	}

	xmlArtifact, err := BuildGenericXML(d)
	if err != nil {
		return nil, nil, err
	}

	next := d.Clone()
	next.XML = xmlArtifact
	next.UpdatedAt = time.Now()
	return next, []AuditEvent{documentEvent(next, fmt.Sprintf("XML generated: %s", xmlArtifact.Filename))}, nil
}

// BeginTransmission marca a cópia em envio como transmitted.
// Esse estado nunca é persistido: ou o resultado do provedor é aplicado, ou a nota
// armazenada permanece validated.
func BeginTransmission(d *Document) (*Document, error) {
	if !d.HasLines() {
		return nil, ErrNoLines
	}
	if !d.State.CanTransitionTo(StateTransmitted) {
		return nil, invalidTransition(d.State, StateTransmitted)
	}

	next := d.Clone()
	next.State = StateTransmitted
	return next, nil
}

// ApplyTransmission grava na nota o retorno do provedor
func ApplyTransmission(d *Document, result *TransmissionResult) (*Document, []AuditEvent, error) {
	target := StateDenied
	if result.Authorized {
		target = StateAuthorized
	}

	// A nota persistida está em validated; a passagem por transmitted é implícita
	from := d.State
	if from == StateValidated {
		from = StateTransmitted
	}
	if !from.CanTransitionTo(target) {
		return nil, nil, invalidTransition(d.State, target)
	}

	next := d.Clone()
	next.AuthorityStatus = result.Status
	next.ProtocolNumber = result.Protocol
	next.AccessKey = result.AccessKey
	next.LastMessage = result.Message
	next.State = target
	if result.PDF != nil {
		next.PDF = result.PDF.Clone()
	}
	if result.XML != nil {
		next.XML = result.XML.Clone()
	}
	next.UpdatedAt = time.Now()

	body := fmt.Sprintf("Transmission result: %s (%s) %s", target, result.Status, result.Message)
	return next, []AuditEvent{documentEvent(next, strings.TrimSpace(body))}, nil
}

// Cancel cancela a nota. Fora de validated, transmitted ou authorized não faz nada.
func Cancel(d *Document, reason string) (*Document, []AuditEvent, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, nil, ErrEmptyReason
	}
	switch d.State {
	case StateValidated, StateTransmitted, StateAuthorized:
	default:
		return d, nil, nil
	}

	next := d.Clone()
	next.State = StateCanceled
	next.LastMessage = fmt.Sprintf("Canceled: %s", reason)
	next.UpdatedAt = time.Now()
	return next, []AuditEvent{documentEvent(next, next.LastMessage)}, nil
}

// InutilizeRange registra a inutilização de uma faixa de numeração na empresa.
// Nenhuma nota é alterada e não há verificação de sobreposição de faixas.
func InutilizeRange(companyID string, from, to int64, justification string) (AuditEvent, error) {
	if strings.TrimSpace(justification) == "" {
		return AuditEvent{}, ErrEmptyJustification
	}

	return AuditEvent{
		Model: ModelCompany,
		ResID: companyID,
		Body:  fmt.Sprintf("Number range %d-%d inutilized. Justification: %s", from, to, justification),
	}, nil
}
