package certificate

import (
	"context"
)

// Repository define a interface para persistência dos certificados digitais
type Repository interface {
	// Save grava o certificado da empresa, substituindo o existente.
	// Devolve o identificador do certificado armazenado.
	Save(ctx context.Context, cert *Certificate) (string, error)

	// FindByID busca um certificado pelo ID
	FindByID(ctx context.Context, id string) (*Certificate, error)

	// FindByCompany busca o certificado de uma empresa
	FindByCompany(ctx context.Context, companyID string) (*Certificate, error)
}

// BlobStorage guarda o conteúdo binário dos certificados fora do banco
type BlobStorage interface {
	Put(ctx context.Context, key string, content []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}
