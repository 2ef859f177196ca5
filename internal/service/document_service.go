package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/hugohenrick/nota-fiscal/pkg/company"
	"github.com/hugohenrick/nota-fiscal/pkg/logger"
)

// Resultados registrados nas métricas de transmissão
const (
	OutcomeAuthorized = "authorized"
	OutcomeDenied     = "denied"
	OutcomeError      = "error"
)

// Transactor executa uma função dentro de uma transação carregada no contexto
type Transactor interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

// DANFERenderer gera a representação impressa da nota
type DANFERenderer interface {
	Render(d *fiscal.Document) (*fiscal.Artifact, error)
}

// TransmissionMetrics registra o resultado e a duração das transmissões
type TransmissionMetrics interface {
	ObserveTransmission(provider fiscal.ProviderCode, outcome string, elapsed time.Duration)
}

// CreateDocumentInput contém os dados de uma nova nota em rascunho
type CreateDocumentInput struct {
	OperationType fiscal.OperationType
	Partner       fiscal.Partner
	CurrencyCode  string
	IssueDate     time.Time
	Lines         []fiscal.LineInput
}

// DocumentService conduz o ciclo de vida das notas fiscais:
// validação, geração de XML, transmissão, cancelamento e inutilização de numeração.
//
// Cada operação carrega a nota com bloqueio, aplica a função de transição do domínio
// e grava a nota e as mensagens de auditoria na mesma transação.
type DocumentService struct {
	repo         fiscal.Repository
	sequence     fiscal.Sequence
	audit        fiscal.AuditLog
	resolver     fiscal.ProviderResolver
	tx           Transactor
	renderer     DANFERenderer
	metrics      TransmissionMetrics
	logger       logger.Logger
	numberPrefix string
}

// NewDocumentService cria o serviço de notas fiscais
func NewDocumentService(
	repo fiscal.Repository,
	sequence fiscal.Sequence,
	audit fiscal.AuditLog,
	resolver fiscal.ProviderResolver,
	tx Transactor,
	renderer DANFERenderer,
	metrics TransmissionMetrics,
	log logger.Logger,
	numberPrefix string,
) *DocumentService {
	return &DocumentService{
		repo:         repo,
		sequence:     sequence,
		audit:        audit,
		resolver:     resolver,
		tx:           tx,
		renderer:     renderer,
		metrics:      metrics,
		logger:       log,
		numberPrefix: numberPrefix,
	}
}

// Create grava uma nova nota em rascunho na empresa do contexto
func (s *DocumentService) Create(ctx context.Context, in CreateDocumentInput) (*fiscal.Document, error) {
	companyID, err := company.RequireID(ctx)
	if err != nil {
		return nil, err
	}

	d, err := fiscal.NewDocument(companyID, in.OperationType, in.Partner, in.CurrencyCode, in.IssueDate)
	if err != nil {
		return nil, err
	}
	for _, line := range in.Lines {
		if _, err := d.AddLine(line); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("Nota fiscal criada", "document_id", d.ID, "company_id", companyID, "lines", len(d.Lines))
	return d, nil
}

// Get busca uma nota da empresa do contexto
func (s *DocumentService) Get(ctx context.Context, id string) (*fiscal.Document, error) {
	return s.load(ctx, id, false)
}

// List lista as notas da empresa do contexto
func (s *DocumentService) List(ctx context.Context, filter fiscal.ListFilter) ([]*fiscal.Document, int, error) {
	companyID, err := company.RequireID(ctx)
	if err != nil {
		return nil, 0, err
	}
	filter.CompanyID = companyID
	return s.repo.List(ctx, filter)
}

// AddLine inclui um item na nota
func (s *DocumentService) AddLine(ctx context.Context, documentID string, in fiscal.LineInput) (*fiscal.Line, error) {
	var line *fiscal.Line
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.load(txCtx, documentID, true)
		if err != nil {
			return err
		}
		if line, err = d.AddLine(in); err != nil {
			return err
		}
		return s.repo.Update(txCtx, d)
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

// UpdateLine altera um item da nota
func (s *DocumentService) UpdateLine(ctx context.Context, documentID, lineID string, in fiscal.LineInput) (*fiscal.Line, error) {
	var line *fiscal.Line
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.load(txCtx, documentID, true)
		if err != nil {
			return err
		}
		if line, err = d.UpdateLine(lineID, in); err != nil {
			return err
		}
		return s.repo.Update(txCtx, d)
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

// RemoveLine exclui um item da nota
func (s *DocumentService) RemoveLine(ctx context.Context, documentID, lineID string) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.load(txCtx, documentID, true)
		if err != nil {
			return err
		}
		if err := d.RemoveLine(lineID); err != nil {
			return err
		}
		return s.repo.Update(txCtx, d)
	})
}

// Validate numera a nota com o próximo valor da sequência e a move para validated.
// Revalidar uma nota já numerada não consome a sequência nem gera mensagem.
func (s *DocumentService) Validate(ctx context.Context, id string) (*fiscal.Document, error) {
	var result *fiscal.Document
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.load(txCtx, id, true)
		if err != nil {
			return err
		}

		var number string
		if d.HasLines() && !d.IsNumbered() && d.State.CanTransitionTo(fiscal.StateValidated) {
			seq, err := s.sequence.Next(txCtx)
			if err != nil {
				return fmt.Errorf("falha ao obter numeração da nota: %w", err)
			}
			number = fiscal.FormatNumber(s.numberPrefix, d.IssueDate.Year(), seq)
		}

		next, events, err := fiscal.Validate(d, number)
		if err != nil {
			return err
		}
		if err := s.commit(txCtx, next, events); err != nil {
			return err
		}
		result = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Nota fiscal validada", "document_id", result.ID, "number", result.Number)
	return result, nil
}

// GenerateXML regenera o XML genérico da nota
func (s *DocumentService) GenerateXML(ctx context.Context, id string) (*fiscal.Document, error) {
	var result *fiscal.Document
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.load(txCtx, id, true)
		if err != nil {
			return err
		}

		next, events, err := fiscal.GenerateXML(d)
		if err != nil {
			return err
		}
		if err := s.commit(txCtx, next, events); err != nil {
			return err
		}
		result = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Transmit regenera o XML, envia a nota ao provedor ativo e grava o retorno.
//
// Tudo ocorre em uma única transação, com a nota bloqueada durante o envio: outra
// transmissão ou um cancelamento da mesma nota aguardam o retorno do provedor.
// O estado transmitted existe apenas na cópia enviada. Se o envio falhar, o XML
// regenerado é gravado, a nota continua validated, sem protocolo ou chave novos,
// e o erro do provedor é devolvido sem alterações.
func (s *DocumentService) Transmit(ctx context.Context, id string) (*fiscal.Document, error) {
	var (
		final   *fiscal.Document
		sendErr error
		code    fiscal.ProviderCode
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.load(txCtx, id, true)
		if err != nil {
			return err
		}
		if _, err := fiscal.BeginTransmission(d); err != nil {
			return err
		}

		prepared, events, err := fiscal.GenerateXML(d)
		if err != nil {
			return err
		}
		if err := s.commit(txCtx, prepared, events); err != nil {
			return err
		}

		provider, err := s.resolver.Resolve(txCtx)
		if err != nil {
			return err
		}
		code = provider.Code()

		sending, err := fiscal.BeginTransmission(prepared)
		if err != nil {
			return err
		}

		start := time.Now()
		result, err := provider.Send(txCtx, sending)
		elapsed := time.Since(start)
		if err == nil && result == nil {
			err = fiscal.NewTransmissionError(code, "empty", "provedor não devolveu resultado", nil)
		}
		if err != nil {
			s.metrics.ObserveTransmission(code, OutcomeError, elapsed)
			s.logger.Error("Falha na transmissão da nota fiscal",
				"document_id", id, "provider", string(code), "error", err)
			// O XML regenerado é mantido; o erro volta ao chamador após o commit
			sendErr = err
			return nil
		}

		outcome := OutcomeDenied
		if result.Authorized {
			outcome = OutcomeAuthorized
		}
		s.metrics.ObserveTransmission(code, outcome, elapsed)

		next, applied, err := fiscal.ApplyTransmission(prepared, result)
		if err != nil {
			return err
		}
		sent := fiscal.AuditEvent{
			Model: fiscal.ModelDocument,
			ResID: prepared.ID,
			Body:  fmt.Sprintf("Sent to provider %s.", code),
		}
		if err := s.commit(txCtx, next, append([]fiscal.AuditEvent{sent}, applied...)); err != nil {
			s.logger.Error("Falha ao gravar retorno da transmissão",
				"document_id", id, "provider", string(code), "error", err)
			return err
		}
		final = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	if sendErr != nil {
		return nil, sendErr
	}

	s.logger.Info("Nota fiscal transmitida",
		"document_id", final.ID,
		"number", final.Number,
		"provider", string(code),
		"state", final.State.String(),
		"status", final.AuthorityStatus,
	)
	return final, nil
}

// Cancel cancela a nota informando o motivo
func (s *DocumentService) Cancel(ctx context.Context, id, reason string) (*fiscal.Document, error) {
	var result *fiscal.Document
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.load(txCtx, id, true)
		if err != nil {
			return err
		}

		next, events, err := fiscal.Cancel(d, reason)
		if err != nil {
			return err
		}
		if err := s.commit(txCtx, next, events); err != nil {
			return err
		}
		result = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancelamento de nota fiscal processado", "document_id", id, "state", result.State.String())
	return result, nil
}

// InutilizeRange registra a inutilização de uma faixa de numeração na empresa do contexto
func (s *DocumentService) InutilizeRange(ctx context.Context, from, to int64, justification string) error {
	companyID, err := company.RequireID(ctx)
	if err != nil {
		return err
	}

	event, err := fiscal.InutilizeRange(companyID, from, to, justification)
	if err != nil {
		return err
	}
	if err := s.audit.PostMessage(ctx, event); err != nil {
		return err
	}

	s.logger.Info("Faixa de numeração inutilizada", "company_id", companyID, "from", from, "to", to)
	return nil
}

// PrintDANFE gera o DANFE de exatamente uma nota
func (s *DocumentService) PrintDANFE(ctx context.Context, ids []string) (*fiscal.Artifact, error) {
	if len(ids) != 1 {
		return nil, fiscal.ErrSingleDocumentRequired
	}

	d, err := s.load(ctx, ids[0], false)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(d)
}

// Messages lista o histórico de mensagens da nota
func (s *DocumentService) Messages(ctx context.Context, id string) ([]fiscal.Message, error) {
	d, err := s.load(ctx, id, false)
	if err != nil {
		return nil, err
	}
	return s.audit.ListMessages(ctx, fiscal.ModelDocument, d.ID)
}

// XML devolve o XML armazenado na nota
func (s *DocumentService) XML(ctx context.Context, id string) (*fiscal.Artifact, error) {
	d, err := s.load(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if d.XML == nil {
		return nil, fiscal.ErrArtifactNotFound
	}
	return d.XML, nil
}

// PDF devolve o PDF armazenado na nota
func (s *DocumentService) PDF(ctx context.Context, id string) (*fiscal.Artifact, error) {
	d, err := s.load(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if d.PDF == nil {
		return nil, fiscal.ErrArtifactNotFound
	}
	return d.PDF, nil
}

// load busca a nota e confere se ela pertence à empresa do contexto
func (s *DocumentService) load(ctx context.Context, id string, forUpdate bool) (*fiscal.Document, error) {
	companyID, err := company.RequireID(ctx)
	if err != nil {
		return nil, err
	}

	var d *fiscal.Document
	if forUpdate {
		d, err = s.repo.FindByIDForUpdate(ctx, id)
	} else {
		d, err = s.repo.FindByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	if d.CompanyID != companyID {
		return nil, fiscal.ErrDocumentNotFound
	}
	return d, nil
}

// commit grava a nota e registra as mensagens; sem eventos não há alteração a gravar
func (s *DocumentService) commit(ctx context.Context, d *fiscal.Document, events []fiscal.AuditEvent) error {
	if len(events) == 0 {
		return nil
	}
	if err := s.repo.Update(ctx, d); err != nil {
		return err
	}
	for _, event := range events {
		if err := s.audit.PostMessage(ctx, event); err != nil {
			return fmt.Errorf("falha ao registrar mensagem: %w", err)
		}
	}
	return nil
}
