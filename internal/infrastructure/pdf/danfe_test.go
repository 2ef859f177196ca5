package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDANFERenderer_Render(t *testing.T) {
	d, err := fiscal.NewDocument("company-1", fiscal.OperationOut,
		fiscal.Partner{ID: "p-1", Name: "Mercado Central LTDA"}, "", time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	qty := decimal.NewFromInt(3)
	_, err = d.AddLine(fiscal.LineInput{
		Description: "Café torrado 500g",
		Quantity:    &qty,
		UnitPrice:   decimal.RequireFromString("18.90"),
		TaxPercent:  decimal.NewFromInt(12),
	})
	require.NoError(t, err)
	d.Number = "NF/2026/00042"
	d.AccessKey = "DUMMY-NF/2026/00042"

	artifact, err := NewDANFERenderer().Render(d)
	require.NoError(t, err)

	assert.Equal(t, "NF_2026_00042_DANFE.pdf", artifact.Filename)
	assert.True(t, bytes.HasPrefix(artifact.Content, []byte("%PDF")))
}

func TestDANFERenderer_RenderWithoutNumber(t *testing.T) {
	d, err := fiscal.NewDocument("company-1", fiscal.OperationIn, fiscal.Partner{ID: "p-2", Name: "Distribuidora Norte"}, "", time.Time{})
	require.NoError(t, err)

	artifact, err := NewDANFERenderer().Render(d)
	require.NoError(t, err)

	assert.Equal(t, "document_DANFE.pdf", artifact.Filename)
	assert.NotEmpty(t, artifact.Content)
}
