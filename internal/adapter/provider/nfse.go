package provider

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/shopspring/decimal"
)

// ItemListaServico usado no lote RPS
const nfseServiceCode = "1.05"

// Lote RPS simplificado no estilo ABRASF (não segue o schema oficial)
type loteRpsEnvioXML struct {
	XMLName xml.Name   `xml:"ConsultarLoteRpsEnvio"`
	LoteRps loteRpsXML `xml:"LoteRps"`
}

type loteRpsXML struct {
	NumeroLote         string   `xml:"NumeroLote"`
	Cnpj               string   `xml:"Cnpj"`
	InscricaoMunicipal string   `xml:"InscricaoMunicipal"`
	QuantidadeRps      int      `xml:"QuantidadeRps"`
	Rps                []rpsXML `xml:"ListaRps>Rps"`
}

type rpsXML struct {
	InfRps infRpsXML `xml:"InfRps"`
}

type infRpsXML struct {
	Numero  string     `xml:"Numero"`
	Serie   string     `xml:"Serie"`
	Tipo    string     `xml:"Tipo"`
	Servico servicoXML `xml:"Servico"`
	Tomador tomadorXML `xml:"Tomador"`
}

type servicoXML struct {
	ValorServicos    string `xml:"Valores>ValorServicos"`
	ItemListaServico string `xml:"ItemListaServico"`
}

type tomadorXML struct {
	Cnpj        string `xml:"IdentificacaoTomador>CpfCnpj>Cnpj"`
	RazaoSocial string `xml:"RazaoSocial"`
}

// NFSeProvider monta o lote RPS e simula a autorização da prefeitura de Brasília
type NFSeProvider struct {
	settings fiscal.Settings
}

// NewNFSeProvider cria o provedor de NFS-e
func NewNFSeProvider(settings fiscal.Settings) *NFSeProvider {
	return &NFSeProvider{settings: settings}
}

// Code identifica o provedor
func (p *NFSeProvider) Code() fiscal.ProviderCode {
	return fiscal.ProviderNFSeBrasilia
}

// BuildXML gera o lote RPS com um único serviço
func (p *NFSeProvider) BuildXML(d *fiscal.Document) ([]byte, error) {
	lot := strings.ReplaceAll(d.NumberOr("1"), "/", "")

	doc := loteRpsEnvioXML{
		LoteRps: loteRpsXML{
			NumeroLote:         lot,
			Cnpj:               p.settings.Common.CompanyCNPJ,
			InscricaoMunicipal: p.settings.NFSe.CMC,
			QuantidadeRps:      1,
			Rps: []rpsXML{{
				InfRps: infRpsXML{
					Numero: lot,
					Serie:  "UN",
					Tipo:   "1",
					Servico: servicoXML{
						ValorServicos:    fiscal.Money(d.Total),
						ItemListaServico: nfseServiceCode,
					},
					Tomador: tomadorXML{
						Cnpj:        p.settings.Common.CompanyCNPJ,
						RazaoSocial: d.Partner.Name,
					},
				},
			}},
		},
	}

	return fiscal.EncodeXML(doc)
}

// Send gera o lote RPS e simula o retorno da prefeitura
func (p *NFSeProvider) Send(ctx context.Context, d *fiscal.Document) (*fiscal.TransmissionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fiscal.NewTransmissionError(p.Code(), "timeout", "envio interrompido", err)
	}

	content, err := p.BuildXML(d)
	if err != nil {
		return nil, fiscal.NewTransmissionError(p.Code(), "xml", "falha ao gerar lote RPS", err)
	}

	authorized := d.Total.GreaterThan(decimal.Zero)
	number := d.NumberOr(fiscal.PlaceholderNumber)
	accessKey := "NFSe-" + number

	message := "NFS-e denied"
	if authorized {
		message = fmt.Sprintf("NFS-e authorized (%s)", p.settings.Environment)
	}

	return &fiscal.TransmissionResult{
		Authorized: authorized,
		Status:     statusFor(authorized),
		AccessKey:  accessKey,
		Protocol:   "BRASILIA-" + number,
		Message:    message,
		XML:        &fiscal.Artifact{Content: content, Filename: fiscal.SafeFilename(accessKey) + ".xml"},
		PDF: &fiscal.Artifact{
			Content:  []byte("<pdf placeholder>"),
			Filename: fiscal.SafeFilename(d.NumberOr(fiscal.PlaceholderFilename)) + "_RPS.pdf",
		},
	}, nil
}
