package fiscal

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// IssueDateLayout é o formato da data de emissão no XML
const IssueDateLayout = "2006-01-02 15:04:05"

// PlaceholderFilename é usado como nome de arquivo enquanto a nota não tem número
const PlaceholderFilename = "document"

type genericDocumentXML struct {
	XMLName       xml.Name          `xml:"FiscalDocument"`
	Number        string            `xml:"Number"`
	OperationType string            `xml:"OperationType"`
	Partner       string            `xml:"Partner"`
	IssueDate     string            `xml:"IssueDate"`
	Totals        genericTotalsXML  `xml:"Totals"`
	Lines         []genericLinesXML `xml:"Lines>Line"`
}

type genericTotalsXML struct {
	Untaxed string `xml:"Untaxed"`
	Tax     string `xml:"Tax"`
	Total   string `xml:"Total"`
}

type genericLinesXML struct {
	Product   string `xml:"Product"`
	Qty       string `xml:"Qty"`
	PriceUnit string `xml:"PriceUnit"`
	SubTotal  string `xml:"SubTotal"`
	Tax       string `xml:"Tax"`
}

// Money formata um valor monetário com duas casas decimais
func Money(v decimal.Decimal) string {
	return v.StringFixed(2)
}

// Quantity formata a quantidade com pelo menos uma casa decimal: 1 vira "1.0", 1.5 fica "1.5"
func Quantity(v decimal.Decimal) string {
	if v.Equal(v.Truncate(0)) {
		return v.StringFixed(1)
	}
	return v.String()
}

// UnitPrice formata um preço unitário com seis casas decimais
func UnitPrice(v decimal.Decimal) string {
	return v.StringFixed(6)
}

// EncodeXML serializa v como XML UTF-8 indentado, com declaração
func EncodeXML(v interface{}) ([]byte, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("falha ao serializar XML: %w", err)
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

// SafeFilename troca separadores de diretório por "_"
func SafeFilename(name string) string {
	return strings.NewReplacer("/", "_", "\\", "_").Replace(name)
}

// XMLFilename devolve o nome do arquivo XML genérico da nota
func XMLFilename(d *Document) string {
	return SafeFilename(d.NumberOr(PlaceholderFilename)) + ".xml"
}

// BuildGenericXML gera o XML genérico da nota, independente do provedor
func BuildGenericXML(d *Document) (*Artifact, error) {
	payload := genericDocumentXML{
		Number:        d.Number,
		OperationType: string(d.OperationType),
		Partner:       d.Partner.Name,
		IssueDate:     d.IssueDate.Format(IssueDateLayout),
		Totals: genericTotalsXML{
			Untaxed: Money(d.Untaxed),
			Tax:     Money(d.Tax),
			Total:   Money(d.Total),
		},
	}

	for _, line := range d.Lines {
		payload.Lines = append(payload.Lines, genericLinesXML{
			Product:   line.Description,
			Qty:       Quantity(line.Quantity),
			PriceUnit: UnitPrice(line.UnitPrice),
			SubTotal:  Money(line.Subtotal),
			Tax:       Money(line.TaxAmount),
		})
	}

	content, err := EncodeXML(payload)
	if err != nil {
		return nil, err
	}

	return &Artifact{Content: content, Filename: XMLFilename(d)}, nil
}
