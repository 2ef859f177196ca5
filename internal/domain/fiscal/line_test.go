package fiscal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeLine(t *testing.T) {
	tests := []struct {
		name       string
		quantity   string
		unitPrice  string
		taxPercent string
		subtotal   string
		tax        string
	}{
		{"simple", "2", "10", "10", "20", "2"},
		{"fractional", "3", "33.333333", "18", "99.999999", "17.99999982"},
		{"no tax", "5", "1.5", "0", "7.5", "0"},
		{"zero quantity", "0", "10", "12", "0", "0"},
		{"negative price", "1", "-50", "10", "-50", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, tax := ComputeLine(dec(tt.quantity), dec(tt.unitPrice), dec(tt.taxPercent))
			assert.True(t, dec(tt.subtotal).Equal(subtotal), "subtotal %s", subtotal)
			assert.True(t, dec(tt.tax).Equal(tax), "tax %s", tax)
		})
	}
}

func TestComputeLine_KeepsFullPrecision(t *testing.T) {
	quantity := dec("1.333")
	price := dec("0.777777")
	percent := dec("7.25")

	subtotal, tax := ComputeLine(quantity, price, percent)

	assert.True(t, quantity.Mul(price).Equal(subtotal))
	assert.True(t, subtotal.Mul(percent).Div(decimal.NewFromInt(100)).Equal(tax))
	assert.Equal(t, "1.036776741", subtotal.String())
}

func TestNewLine(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		line, err := NewLine(LineInput{Description: "Arroz 5kg", UnitPrice: dec("25.90")})
		require.NoError(t, err)

		assert.NotEmpty(t, line.ID)
		assert.Equal(t, DefaultLineSequence, line.Sequence)
		assert.True(t, line.Quantity.Equal(decimal.NewFromInt(1)))
		assert.True(t, line.Subtotal.Equal(dec("25.90")))
		assert.True(t, line.TaxAmount.IsZero())
	})

	t.Run("description required", func(t *testing.T) {
		_, err := NewLine(LineInput{UnitPrice: dec("1")})
		assert.ErrorIs(t, err, ErrInvalidData)
	})
}

func TestLine_ApplyRecomputes(t *testing.T) {
	line, err := NewLine(LineInput{Description: "Feijão", UnitPrice: dec("8")})
	require.NoError(t, err)

	qty := dec("3")
	seq := 5
	require.NoError(t, line.Apply(LineInput{
		Sequence:    &seq,
		Description: "Feijão preto",
		Quantity:    &qty,
		UnitPrice:   dec("9"),
		TaxPercent:  dec("10"),
	}))

	assert.Equal(t, 5, line.Sequence)
	assert.Equal(t, "Feijão preto", line.Description)
	assert.True(t, line.Subtotal.Equal(dec("27")))
	assert.True(t, line.TaxAmount.Equal(dec("2.7")))
}
