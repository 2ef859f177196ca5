package fiscal

import "context"

// Códigos de status devolvidos pela autoridade
const (
	StatusAuthorized = "100"
	StatusDenied     = "301"
)

// PlaceholderNumber compõe chave de acesso e protocolo de notas sem número
const PlaceholderNumber = "NOSEQ"

// TransmissionResult é o retorno de um provedor após o envio da nota
type TransmissionResult struct {
	Authorized bool
	Status     string
	AccessKey  string
	Protocol   string
	Message    string
	// XML substitui o XML genérico quando o provedor gera sua própria versão
	XML *Artifact
	PDF *Artifact
}

// Provider é a integração com uma autoridade fiscal (SEFAZ, prefeitura ou simulada)
type Provider interface {
	// Code identifica o provedor
	Code() ProviderCode
	// Send envia a nota e devolve o resultado, ou um erro de transmissão
	Send(ctx context.Context, d *Document) (*TransmissionResult, error)
}

// ProviderResolver devolve o provedor ativo de acordo com a configuração
type ProviderResolver interface {
	Resolve(ctx context.Context) (Provider, error)
}
