package fiscal

import "github.com/shopspring/decimal"

// Totals contém os valores agregados de uma nota
type Totals struct {
	Untaxed decimal.Decimal `json:"amount_untaxed"`
	Tax     decimal.Decimal `json:"amount_tax"`
	Total   decimal.Decimal `json:"amount_total"`
}

// ComputeTotals soma subtotais e impostos dos itens.
// O total é sempre a soma do valor sem impostos com o valor dos impostos.
func ComputeTotals(lines []Line) Totals {
	untaxed := decimal.Zero
	tax := decimal.Zero
	for _, line := range lines {
		untaxed = untaxed.Add(line.Subtotal)
		tax = tax.Add(line.TaxAmount)
	}

	return Totals{
		Untaxed: untaxed,
		Tax:     tax,
		Total:   untaxed.Add(tax),
	}
}
