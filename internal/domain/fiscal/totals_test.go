package fiscal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		totals := ComputeTotals(nil)
		assert.True(t, totals.Untaxed.IsZero())
		assert.True(t, totals.Tax.IsZero())
		assert.True(t, totals.Total.IsZero())
	})

	t.Run("sums lines", func(t *testing.T) {
		lines := []Line{
			{Subtotal: dec("100"), TaxAmount: dec("18")},
			{Subtotal: dec("0.333333"), TaxAmount: dec("0.04")},
			{Subtotal: dec("-10"), TaxAmount: dec("-1")},
		}

		totals := ComputeTotals(lines)

		assert.True(t, dec("90.333333").Equal(totals.Untaxed))
		assert.True(t, dec("17.04").Equal(totals.Tax))
		assert.True(t, totals.Untaxed.Add(totals.Tax).Equal(totals.Total))
	})
}
