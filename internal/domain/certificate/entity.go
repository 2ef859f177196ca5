package certificate

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Erros do certificado digital
var (
	ErrCertificateNotFound = errors.New("certificado não encontrado")
	ErrEmptyContent        = errors.New("arquivo do certificado não pode estar vazio")
	ErrPasswordRequired    = errors.New("senha do certificado é obrigatória")
	ErrExpired             = errors.New("certificado expirado")
)

// Certificate é o certificado A1 (PFX/P12) de uma empresa.
// Cada empresa possui no máximo um certificado; um novo envio substitui o anterior.
type Certificate struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Filename  string `json:"filename"`
	// Content fica vazio quando o arquivo é mantido em armazenamento externo
	Content    []byte    `json:"-"`
	StorageKey string    `json:"storage_key,omitempty"`
	Password   string    `json:"-"`
	Subject    string    `json:"subject"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewCertificate cria um certificado para a empresa
func NewCertificate(companyID, filename string, content []byte, password string) (*Certificate, error) {
	if companyID == "" {
		return nil, errors.New("empresa é obrigatória")
	}
	if filename == "" {
		return nil, errors.New("nome do arquivo é obrigatório")
	}
	if len(content) == 0 {
		return nil, ErrEmptyContent
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	now := time.Now()
	return &Certificate{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Filename:  filename,
		Content:   content,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetDetails registra o titular e a validade lidos do arquivo
func (c *Certificate) SetDetails(subject string, expiresAt time.Time) error {
	if !expiresAt.After(time.Now()) {
		return ErrExpired
	}
	c.Subject = subject
	c.ExpiresAt = expiresAt
	c.UpdatedAt = time.Now()
	return nil
}

// MoveToStorage indica que o conteúdo foi gravado externamente sob a chave informada
func (c *Certificate) MoveToStorage(key string) {
	c.StorageKey = key
	c.Content = nil
	c.UpdatedAt = time.Now()
}

// StorageObjectKey monta a chave do arquivo no armazenamento externo
func StorageObjectKey(companyID, certificateID string) string {
	return "certificates/" + companyID + "/" + certificateID + ".pfx"
}

// IsExpired verifica se o certificado está expirado
func (c *Certificate) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
