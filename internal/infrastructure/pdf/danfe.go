package pdf

import (
	"fmt"

	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// DANFERenderer gera o DANFE simplificado de uma nota fiscal
type DANFERenderer struct{}

// NewDANFERenderer cria o gerador de DANFE
func NewDANFERenderer() *DANFERenderer {
	return &DANFERenderer{}
}

// Render monta o PDF com cabeçalho, destinatário, itens e totais da nota
func (r *DANFERenderer) Render(d *fiscal.Document) (*fiscal.Artifact, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(20,
		text.NewCol(8, "DANFE", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.NewCol(4, "Nº "+d.NumberOr("-"), props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Align: align.Right,
		}),
	)

	m.AddRow(25,
		col.New(6).Add(
			text.New("Destinatário", props.Text{Style: fontstyle.Bold}),
			text.New(d.Partner.Name, props.Text{Top: 5}),
			text.New("Emissão: "+d.IssueDate.Format("02/01/2006 15:04"), props.Text{Top: 10}),
		),
		col.New(6).Add(
			text.New("Situação: "+d.State.String(), props.Text{Align: align.Right}),
			text.New("Chave de acesso: "+d.AccessKey, props.Text{Top: 5, Align: align.Right}),
			text.New("Protocolo: "+d.ProtocolNumber, props.Text{Top: 10, Align: align.Right}),
		),
	)

	m.AddRow(10,
		text.NewCol(5, "Descrição", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qtd", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Vl. unit.", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(1, "Imposto", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Subtotal", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, line := range d.Lines {
		m.AddRow(8,
			text.NewCol(5, line.Description, props.Text{Size: 9}),
			text.NewCol(2, line.Quantity.String(), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, fiscal.Money(line.UnitPrice), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(1, fiscal.Money(line.TaxAmount), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, fiscal.Money(line.Subtotal), props.Text{Size: 9, Align: align.Right}),
		)
	}

	totals := []struct {
		label string
		value string
	}{
		{"Valor dos produtos", fiscal.Money(d.Untaxed)},
		{"Impostos", fiscal.Money(d.Tax)},
		{"Valor total", d.CurrencyCode + " " + fiscal.Money(d.Total)},
	}
	for _, t := range totals {
		m.AddRow(8,
			col.New(7),
			text.NewCol(3, t.label, props.Text{Size: 9}),
			text.NewCol(2, t.value, props.Text{Size: 9, Align: align.Right}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("falha ao gerar DANFE: %w", err)
	}

	return &fiscal.Artifact{
		Content:  doc.GetBytes(),
		Filename: fiscal.SafeFilename(d.NumberOr(fiscal.PlaceholderFilename)) + "_DANFE.pdf",
	}, nil
}
