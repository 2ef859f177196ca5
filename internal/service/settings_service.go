package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/nota-fiscal/internal/domain/certificate"
	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/hugohenrick/nota-fiscal/pkg/company"
	"github.com/hugohenrick/nota-fiscal/pkg/logger"
	"github.com/hugohenrick/nota-fiscal/pkg/pkcs12"
)

// ErrInvalidCertificate ocorre quando o arquivo enviado não é um PKCS#12 válido
var ErrInvalidCertificate = errors.New("certificado digital inválido")

// SettingsService mantém a configuração fiscal e o certificado A1 da empresa
type SettingsService struct {
	store        fiscal.ParameterStore
	certificates certificate.Repository
	// blobs é nil quando o certificado fica gravado no banco
	blobs  certificate.BlobStorage
	logger logger.Logger
}

// NewSettingsService cria o serviço de configuração fiscal
func NewSettingsService(store fiscal.ParameterStore, certificates certificate.Repository, blobs certificate.BlobStorage, log logger.Logger) *SettingsService {
	return &SettingsService{
		store:        store,
		certificates: certificates,
		blobs:        blobs,
		logger:       log,
	}
}

// Get lê a configuração fiscal atual
func (s *SettingsService) Get(ctx context.Context) (fiscal.Settings, error) {
	return fiscal.LoadSettings(ctx, s.store)
}

// Update grava a configuração fiscal.
// Segredos vazios (senha NFS-e, token CSC) mantêm o valor atual e os dados do certificado
// só mudam pelo envio de um novo arquivo.
func (s *SettingsService) Update(ctx context.Context, settings fiscal.Settings) (fiscal.Settings, error) {
	if !settings.Environment.IsValid() {
		return fiscal.Settings{}, fmt.Errorf("%w: ambiente desconhecido %q", fiscal.ErrInvalidData, settings.Environment)
	}
	if !settings.ProviderCode.IsValid() {
		return fiscal.Settings{}, fmt.Errorf("%w: provedor desconhecido %q", fiscal.ErrInvalidData, settings.ProviderCode)
	}

	current, err := fiscal.LoadSettings(ctx, s.store)
	if err != nil {
		return fiscal.Settings{}, err
	}

	if settings.NFSe.Password == "" {
		settings.NFSe.Password = current.NFSe.Password
	}
	if settings.Common.CSCToken == "" {
		settings.Common.CSCToken = current.Common.CSCToken
	}
	settings.Certificate = current.Certificate

	if err := fiscal.SaveSettings(ctx, s.store, settings); err != nil {
		return fiscal.Settings{}, err
	}

	s.logger.Info("Configuração fiscal atualizada",
		"environment", string(settings.Environment),
		"provider_code", string(settings.ProviderCode))
	return settings, nil
}

// UploadCertificate grava (ou substitui) o certificado A1 da empresa do contexto
// e aponta a configuração fiscal para ele
func (s *SettingsService) UploadCertificate(ctx context.Context, filename string, content []byte, password string) (*certificate.Certificate, error) {
	companyID, err := company.RequireID(ctx)
	if err != nil {
		return nil, err
	}

	cert, err := certificate.NewCertificate(companyID, filename, content, password)
	if err != nil {
		return nil, err
	}

	info, err := pkcs12.Inspect(content, password)
	if err != nil {
		if errors.Is(err, pkcs12.ErrInvalidPassword) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCertificate, err)
	}
	if err := cert.SetDetails(info.Subject, info.NotAfter); err != nil {
		return nil, err
	}

	if s.blobs != nil {
		key := certificate.StorageObjectKey(companyID, cert.ID)
		if err := s.blobs.Put(ctx, key, content); err != nil {
			return nil, err
		}
		cert.MoveToStorage(key)
	}

	id, err := s.certificates.Save(ctx, cert)
	if err != nil {
		return nil, err
	}
	cert.ID = id

	settings, err := fiscal.LoadSettings(ctx, s.store)
	if err != nil {
		return nil, err
	}
	settings.Certificate = fiscal.CertificateSettings{
		ID:       id,
		Filename: filename,
		Password: password,
	}
	if err := fiscal.SaveSettings(ctx, s.store, settings); err != nil {
		return nil, err
	}

	s.logger.Info("Certificado digital armazenado",
		"company_id", companyID,
		"certificate_id", id,
		"subject", cert.Subject,
		"expires_at", cert.ExpiresAt)
	return cert, nil
}

// Certificate busca o certificado da empresa do contexto, com o conteúdo carregado.
// O arquivo é aberto novamente para confirmar que continua legível com a senha gravada.
func (s *SettingsService) Certificate(ctx context.Context) (*certificate.Certificate, error) {
	companyID, err := company.RequireID(ctx)
	if err != nil {
		return nil, err
	}

	cert, err := s.certificates.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if cert.StorageKey != "" {
		if s.blobs == nil {
			return nil, fmt.Errorf("certificado %s está em armazenamento externo não configurado", cert.ID)
		}
		content, err := s.blobs.Get(ctx, cert.StorageKey)
		if err != nil {
			return nil, err
		}
		cert.Content = content
	}

	if _, err := pkcs12.Inspect(cert.Content, cert.Password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCertificate, err)
	}
	return cert, nil
}
