package fiscal

import (
	"errors"
	"fmt"
)

// Erros de domínio da nota fiscal
var (
	// ErrNoLines ocorre quando uma operação exige ao menos um item
	ErrNoLines = errors.New("adicione ao menos um item antes de continuar")

	// ErrInvalidTransition ocorre quando a operação levaria a nota a um estado não permitido
	ErrInvalidTransition = errors.New("transição de estado inválida")

	// ErrEmptyReason ocorre quando o cancelamento não informa o motivo
	ErrEmptyReason = errors.New("motivo do cancelamento é obrigatório")

	// ErrEmptyJustification ocorre quando a inutilização não informa a justificativa
	ErrEmptyJustification = errors.New("justificativa da inutilização é obrigatória")

	// ErrInvalidRange ocorre quando a faixa de inutilização não é numérica
	ErrInvalidRange = errors.New("faixa de numeração inválida")

	// ErrSingleDocumentRequired ocorre quando a impressão recebe mais de uma nota
	ErrSingleDocumentRequired = errors.New("selecione exatamente uma nota para impressão")

	// ErrDocumentNotFound ocorre quando a nota não existe
	ErrDocumentNotFound = errors.New("nota fiscal não encontrada")

	// ErrLineNotFound ocorre quando o item não pertence à nota
	ErrLineNotFound = errors.New("item da nota não encontrado")

	// ErrDocumentLocked ocorre ao editar itens de uma nota já transmitida
	ErrDocumentLocked = errors.New("itens não podem ser alterados no estado atual da nota")

	// ErrInvalidData ocorre quando os dados informados para a nota ou item são inválidos
	ErrInvalidData = errors.New("dados da nota inválidos")

	// ErrArtifactNotFound ocorre quando a nota ainda não possui o arquivo solicitado
	ErrArtifactNotFound = errors.New("arquivo não gerado para esta nota")
)

// TransmissionError representa uma falha do provedor ao enviar a nota
type TransmissionError struct {
	Provider ProviderCode
	Code     string
	Message  string
	Err      error
}

// NewTransmissionError cria um erro de transmissão
func NewTransmissionError(provider ProviderCode, code, message string, err error) *TransmissionError {
	return &TransmissionError{
		Provider: provider,
		Code:     code,
		Message:  message,
		Err:      err,
	}
}

func (e *TransmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("falha na transmissão (%s) [%s]: %s: %v", e.Provider, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("falha na transmissão (%s) [%s]: %s", e.Provider, e.Code, e.Message)
}

func (e *TransmissionError) Unwrap() error {
	return e.Err
}

// IsTransmissionError verifica se err contém um TransmissionError
func IsTransmissionError(err error) bool {
	var te *TransmissionError
	return errors.As(err, &te)
}

func invalidTransition(from, to State) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
