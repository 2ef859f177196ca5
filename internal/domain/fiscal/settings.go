package fiscal

import (
	"context"
	"fmt"
)

// Environment define o ambiente da autoridade fiscal
type Environment string

const (
	EnvironmentHomolog    Environment = "homolog"
	EnvironmentProduction Environment = "prod"
)

// IsValid verifica se o ambiente é conhecido
func (e Environment) IsValid() bool {
	return e == EnvironmentHomolog || e == EnvironmentProduction
}

// ProviderCode identifica um provedor de transmissão
type ProviderCode string

const (
	ProviderDummy        ProviderCode = "dummy"
	ProviderSefazNFe     ProviderCode = "sefaz_nfe"
	ProviderNFSeBrasilia ProviderCode = "nfse_brasilia"
)

// IsValid verifica se o provedor é conhecido
func (p ProviderCode) IsValid() bool {
	switch p {
	case ProviderDummy, ProviderSefazNFe, ProviderNFSeBrasilia:
		return true
	}
	return false
}

// Chaves das configurações fiscais no armazenamento chave-valor
const (
	KeyEnvironment          = "fiscal_environment"
	KeyProviderCode         = "fiscal_provider_code"
	KeyCSCToken             = "csc_token"
	KeyCSCID                = "csc_id"
	KeyCompanyCNPJ          = "company_cnpj"
	KeySefazUF              = "sefaz_uf"
	KeyNFSeCMC              = "nfse_cmc"
	KeyNFSeLogin            = "nfse_login"
	KeyNFSePassword         = "nfse_password"
	KeyNFSeMunicipalityCode = "nfse_municipality_code"
	KeyCertificateFilename  = "a1_certificate_filename"
	KeyCertificatePassword  = "a1_certificate_password"
	KeyCertificateID        = "a1_certificate_attachment_id"
)

// ParameterStore é o armazenamento externo de configurações chave-valor
type ParameterStore interface {
	Get(ctx context.Context, key, defaultValue string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// CommonSettings contém os dados do emitente usados por todos os provedores
type CommonSettings struct {
	CSCToken    string `json:"csc_token"`
	CSCID       string `json:"csc_id"`
	CompanyCNPJ string `json:"company_cnpj"`
}

// SefazSettings contém os dados usados pela integração com a SEFAZ
type SefazSettings struct {
	UF string `json:"uf"`
}

// NFSeSettings contém os dados usados pela integração municipal
type NFSeSettings struct {
	CMC              string `json:"cmc"`
	Login            string `json:"login"`
	Password         string `json:"-"`
	MunicipalityCode string `json:"municipality_code"`
}

// CertificateSettings aponta para o certificado A1 armazenado
type CertificateSettings struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Password string `json:"-"`
}

// Settings é a configuração fiscal tipada, lida uma única vez do armazenamento
type Settings struct {
	Environment  Environment         `json:"environment"`
	ProviderCode ProviderCode        `json:"provider_code"`
	Common       CommonSettings      `json:"common"`
	Sefaz        SefazSettings       `json:"sefaz"`
	NFSe         NFSeSettings        `json:"nfse"`
	Certificate  CertificateSettings `json:"certificate"`
}

// DefaultSettings retorna a configuração padrão (homologação com provedor simulado)
func DefaultSettings() Settings {
	return Settings{
		Environment:  EnvironmentHomolog,
		ProviderCode: ProviderDummy,
	}
}

// LoadSettings lê todas as chaves fiscais e monta a configuração tipada.
// Os valores não são validados: provedores e ambientes desconhecidos são tratados
// por quem os utiliza.
func LoadSettings(ctx context.Context, store ParameterStore) (Settings, error) {
	defaults := DefaultSettings()
	values := map[string]string{
		KeyEnvironment:  string(defaults.Environment),
		KeyProviderCode: string(defaults.ProviderCode),
	}

	for _, key := range settingKeys {
		value, err := store.Get(ctx, key, values[key])
		if err != nil {
			return Settings{}, fmt.Errorf("falha ao ler configuração %s: %w", key, err)
		}
		values[key] = value
	}

	return Settings{
		Environment:  Environment(values[KeyEnvironment]),
		ProviderCode: ProviderCode(values[KeyProviderCode]),
		Common: CommonSettings{
			CSCToken:    values[KeyCSCToken],
			CSCID:       values[KeyCSCID],
			CompanyCNPJ: values[KeyCompanyCNPJ],
		},
		Sefaz: SefazSettings{UF: values[KeySefazUF]},
		NFSe: NFSeSettings{
			CMC:              values[KeyNFSeCMC],
			Login:            values[KeyNFSeLogin],
			Password:         values[KeyNFSePassword],
			MunicipalityCode: values[KeyNFSeMunicipalityCode],
		},
		Certificate: CertificateSettings{
			ID:       values[KeyCertificateID],
			Filename: values[KeyCertificateFilename],
			Password: values[KeyCertificatePassword],
		},
	}, nil
}

// Values devolve a configuração como pares chave-valor
func (s Settings) Values() map[string]string {
	return map[string]string{
		KeyEnvironment:          string(s.Environment),
		KeyProviderCode:         string(s.ProviderCode),
		KeyCSCToken:             s.Common.CSCToken,
		KeyCSCID:                s.Common.CSCID,
		KeyCompanyCNPJ:          s.Common.CompanyCNPJ,
		KeySefazUF:              s.Sefaz.UF,
		KeyNFSeCMC:              s.NFSe.CMC,
		KeyNFSeLogin:            s.NFSe.Login,
		KeyNFSePassword:         s.NFSe.Password,
		KeyNFSeMunicipalityCode: s.NFSe.MunicipalityCode,
		KeyCertificateFilename:  s.Certificate.Filename,
		KeyCertificatePassword:  s.Certificate.Password,
		KeyCertificateID:        s.Certificate.ID,
	}
}

// SaveSettings grava todas as chaves da configuração no armazenamento
func SaveSettings(ctx context.Context, store ParameterStore, s Settings) error {
	values := s.Values()
	for _, key := range settingKeys {
		if err := store.Set(ctx, key, values[key]); err != nil {
			return fmt.Errorf("falha ao gravar configuração %s: %w", key, err)
		}
	}
	return nil
}

var settingKeys = []string{
	KeyEnvironment,
	KeyProviderCode,
	KeyCSCToken,
	KeyCSCID,
	KeyCompanyCNPJ,
	KeySefazUF,
	KeyNFSeCMC,
	KeyNFSeLogin,
	KeyNFSePassword,
	KeyNFSeMunicipalityCode,
	KeyCertificateFilename,
	KeyCertificatePassword,
	KeyCertificateID,
}
