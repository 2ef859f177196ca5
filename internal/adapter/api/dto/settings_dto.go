package dto

import (
	"time"

	"github.com/hugohenrick/nota-fiscal/internal/domain/certificate"
	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
)

// SettingsRequest representa os dados para atualizar a configuração fiscal
type SettingsRequest struct {
	Environment  fiscal.Environment  `json:"environment" binding:"required,oneof=homolog prod" example:"homolog"`
	ProviderCode fiscal.ProviderCode `json:"provider_code" binding:"required,oneof=dummy sefaz_nfe nfse_brasilia" example:"dummy"`

	CSCToken    string `json:"csc_token,omitempty"`
	CSCID       string `json:"csc_id,omitempty"`
	CompanyCNPJ string `json:"company_cnpj,omitempty"`

	SefazUF string `json:"sefaz_uf,omitempty"`

	NFSeCMC              string `json:"nfse_cmc,omitempty"`
	NFSeLogin            string `json:"nfse_login,omitempty"`
	NFSePassword         string `json:"nfse_password,omitempty"`
	NFSeMunicipalityCode string `json:"nfse_municipality_code,omitempty"`
}

// ToSettings converte a requisição para a configuração tipada
func (r SettingsRequest) ToSettings() fiscal.Settings {
	return fiscal.Settings{
		Environment:  r.Environment,
		ProviderCode: r.ProviderCode,
		Common: fiscal.CommonSettings{
			CSCToken:    r.CSCToken,
			CSCID:       r.CSCID,
			CompanyCNPJ: r.CompanyCNPJ,
		},
		Sefaz: fiscal.SefazSettings{UF: r.SefazUF},
		NFSe: fiscal.NFSeSettings{
			CMC:              r.NFSeCMC,
			Login:            r.NFSeLogin,
			Password:         r.NFSePassword,
			MunicipalityCode: r.NFSeMunicipalityCode,
		},
	}
}

// SettingsResponse representa a configuração fiscal, sem senhas
type SettingsResponse struct {
	Environment  fiscal.Environment  `json:"environment"`
	ProviderCode fiscal.ProviderCode `json:"provider_code"`

	CSCID       string `json:"csc_id,omitempty"`
	CompanyCNPJ string `json:"company_cnpj,omitempty"`

	SefazUF string `json:"sefaz_uf,omitempty"`

	NFSeCMC              string `json:"nfse_cmc,omitempty"`
	NFSeLogin            string `json:"nfse_login,omitempty"`
	NFSeMunicipalityCode string `json:"nfse_municipality_code,omitempty"`

	CertificateID       string `json:"certificate_id,omitempty"`
	CertificateFilename string `json:"certificate_filename,omitempty"`
}

// NewSettingsResponse cria um SettingsResponse a partir da configuração
func NewSettingsResponse(s fiscal.Settings) *SettingsResponse {
	return &SettingsResponse{
		Environment:          s.Environment,
		ProviderCode:         s.ProviderCode,
		CSCID:                s.Common.CSCID,
		CompanyCNPJ:          s.Common.CompanyCNPJ,
		SefazUF:              s.Sefaz.UF,
		NFSeCMC:              s.NFSe.CMC,
		NFSeLogin:            s.NFSe.Login,
		NFSeMunicipalityCode: s.NFSe.MunicipalityCode,
		CertificateID:        s.Certificate.ID,
		CertificateFilename:  s.Certificate.Filename,
	}
}

// CertificateResponse representa a resposta com dados de um certificado
type CertificateResponse struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Subject   string    `json:"subject"`
	ExpiresAt time.Time `json:"expires_at"`
	IsExpired bool      `json:"is_expired"`
	External  bool      `json:"external"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCertificateResponse cria um CertificateResponse a partir de um certificado
func NewCertificateResponse(c *certificate.Certificate) *CertificateResponse {
	return &CertificateResponse{
		ID:        c.ID,
		Filename:  c.Filename,
		Subject:   c.Subject,
		ExpiresAt: c.ExpiresAt,
		IsExpired: c.IsExpired(),
		External:  c.StorageKey != "",
		UpdatedAt: c.UpdatedAt,
	}
}
