package provider

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/shopspring/decimal"
)

// Layout simplificado no formato da NFe (não segue o schema oficial)
type nfeXML struct {
	XMLName xml.Name  `xml:"NFe"`
	InfNFe  infNFeXML `xml:"infNFe"`
}

type infNFeXML struct {
	ID       string      `xml:"Id,attr"`
	Versao   string      `xml:"versao,attr"`
	Ide      nfeIdeXML   `xml:"ide"`
	Detalhes []nfeDet    `xml:"detalhes>det"`
	Total    nfeTotalXML `xml:"total"`
}

type nfeIdeXML struct {
	CUF   string `xml:"cUF"`
	Mod   string `xml:"mod"`
	Serie string `xml:"serie"`
	NNF   string `xml:"nNF"`
}

type nfeDet struct {
	XProd  string `xml:"xProd"`
	QCom   string `xml:"qCom"`
	VUnCom string `xml:"vUnCom"`
}

type nfeTotalXML struct {
	VNF string `xml:"vNF"`
}

// SefazProvider monta a NFe no layout simplificado e simula a autorização da SEFAZ
type SefazProvider struct {
	settings fiscal.Settings
}

// NewSefazProvider cria o provedor SEFAZ
func NewSefazProvider(settings fiscal.Settings) *SefazProvider {
	return &SefazProvider{settings: settings}
}

// Code identifica o provedor
func (p *SefazProvider) Code() fiscal.ProviderCode {
	return fiscal.ProviderSefazNFe
}

// BuildXML gera o XML da NFe
func (p *SefazProvider) BuildXML(d *fiscal.Document) ([]byte, error) {
	number := d.NumberOr("0")

	doc := nfeXML{
		InfNFe: infNFeXML{
			ID:     "NFe" + d.Number,
			Versao: "4.00",
			Ide: nfeIdeXML{
				CUF:   firstRunes(p.settings.Sefaz.UF, 2),
				Mod:   "55",
				Serie: "1",
				NNF:   number[strings.LastIndex(number, "/")+1:],
			},
			Total: nfeTotalXML{VNF: fiscal.Money(d.Total)},
		},
	}
	for _, line := range d.Lines {
		doc.InfNFe.Detalhes = append(doc.InfNFe.Detalhes, nfeDet{
			XProd:  line.Description,
			QCom:   fiscal.Quantity(line.Quantity),
			VUnCom: fiscal.UnitPrice(line.UnitPrice),
		})
	}

	return fiscal.EncodeXML(doc)
}

// Send gera a NFe e simula o retorno da SEFAZ
func (p *SefazProvider) Send(ctx context.Context, d *fiscal.Document) (*fiscal.TransmissionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fiscal.NewTransmissionError(p.Code(), "timeout", "envio interrompido", err)
	}

	content, err := p.BuildXML(d)
	if err != nil {
		return nil, fiscal.NewTransmissionError(p.Code(), "xml", "falha ao gerar XML da NFe", err)
	}

	authorized := d.Total.GreaterThan(decimal.Zero)
	number := d.NumberOr(fiscal.PlaceholderNumber)
	accessKey := "NFe-" + number

	message := "NFe denied"
	if authorized {
		message = fmt.Sprintf("NFe authorized (%s)", p.settings.Environment)
	}

	return &fiscal.TransmissionResult{
		Authorized: authorized,
		Status:     statusFor(authorized),
		AccessKey:  accessKey,
		Protocol:   "SEFAZ-" + number,
		Message:    message,
		XML:        &fiscal.Artifact{Content: content, Filename: fiscal.SafeFilename(accessKey) + ".xml"},
		PDF: &fiscal.Artifact{
			Content:  []byte("<pdf placeholder>"),
			Filename: fiscal.SafeFilename(d.NumberOr(fiscal.PlaceholderFilename)) + "_DANFE.pdf",
		},
	}, nil
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
