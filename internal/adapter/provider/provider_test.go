package provider

import (
	"context"
	"encoding/xml"
	"testing"
	"time"

	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocument(t *testing.T, number string, prices ...string) *fiscal.Document {
	t.Helper()
	d, err := fiscal.NewDocument("company-1", fiscal.OperationOut,
		fiscal.Partner{ID: "p-1", Name: "Mercado Central LTDA"}, "", time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	for i, price := range prices {
		seq := (i + 1) * fiscal.DefaultLineSequence
		qty := decimal.NewFromInt(1)
		_, err := d.AddLine(fiscal.LineInput{
			Sequence:    &seq,
			Description: "Serviço de manutenção",
			Quantity:    &qty,
			UnitPrice:   decimal.RequireFromString(price),
			TaxPercent:  decimal.Zero,
		})
		require.NoError(t, err)
	}
	d.Number = number
	return d
}

func homologSettings() fiscal.Settings {
	s := fiscal.DefaultSettings()
	s.Sefaz.UF = "53"
	s.Common.CompanyCNPJ = "12345678000199"
	s.NFSe.CMC = "0745123"
	return s
}

func TestDummyProvider_Authorized(t *testing.T) {
	d := newDocument(t, "NF/2026/00001", "100.00")

	result, err := NewDummyProvider(homologSettings()).Send(context.Background(), d)
	require.NoError(t, err)

	assert.True(t, result.Authorized)
	assert.Equal(t, fiscal.StatusAuthorized, result.Status)
	assert.Equal(t, "DUMMY-NF/2026/00001", result.AccessKey)
	assert.Equal(t, "PROT-NF/2026/00001", result.Protocol)
	assert.Equal(t, "Authorized in homolog", result.Message)
	assert.Nil(t, result.XML)
	require.NotNil(t, result.PDF)
	assert.Equal(t, "NF_2026_00001_DANFE.pdf", result.PDF.Filename)
	assert.Contains(t, string(result.PDF.Content), "Total: 100.00")
}

func TestDummyProvider_DeniesZeroTotal(t *testing.T) {
	d := newDocument(t, "NF/2026/00002", "0")

	result, err := NewDummyProvider(homologSettings()).Send(context.Background(), d)
	require.NoError(t, err)

	assert.False(t, result.Authorized)
	assert.Equal(t, fiscal.StatusDenied, result.Status)
	assert.Equal(t, "Denied: total must be > 0", result.Message)
}

func TestDummyProvider_DeniesUnknownEnvironment(t *testing.T) {
	s := homologSettings()
	s.Environment = fiscal.Environment("staging")
	d := newDocument(t, "NF/2026/00003", "10.00")

	result, err := NewDummyProvider(s).Send(context.Background(), d)
	require.NoError(t, err)

	assert.False(t, result.Authorized)
	assert.Equal(t, fiscal.StatusDenied, result.Status)
	assert.Equal(t, "Denied: unknown environment staging", result.Message)
}

func TestDummyProvider_UnnumberedDocument(t *testing.T) {
	d := newDocument(t, "", "5.00")

	result, err := NewDummyProvider(homologSettings()).Send(context.Background(), d)
	require.NoError(t, err)

	assert.Equal(t, "DUMMY-NOSEQ", result.AccessKey)
	assert.Equal(t, "document_DANFE.pdf", result.PDF.Filename)
}

func TestProviders_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := newDocument(t, "NF/2026/00004", "10.00")
	providers := []fiscal.Provider{
		NewDummyProvider(homologSettings()),
		NewSefazProvider(homologSettings()),
		NewNFSeProvider(homologSettings()),
	}

	for _, p := range providers {
		t.Run(string(p.Code()), func(t *testing.T) {
			result, err := p.Send(ctx, d)
			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, fiscal.IsTransmissionError(err))
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestSefazProvider_Send(t *testing.T) {
	d := newDocument(t, "NF/2026/00007", "12.50", "7.50")

	result, err := NewSefazProvider(homologSettings()).Send(context.Background(), d)
	require.NoError(t, err)

	assert.True(t, result.Authorized)
	assert.Equal(t, "NFe-NF/2026/00007", result.AccessKey)
	assert.Equal(t, "SEFAZ-NF/2026/00007", result.Protocol)
	assert.Equal(t, "NFe authorized (homolog)", result.Message)
	require.NotNil(t, result.XML)
	assert.Equal(t, "NFe-NF_2026_00007.xml", result.XML.Filename)
	assert.Equal(t, "NF_2026_00007_DANFE.pdf", result.PDF.Filename)

	var parsed nfeXML
	require.NoError(t, xml.Unmarshal(result.XML.Content, &parsed))
	assert.Equal(t, "NFeNF/2026/00007", parsed.InfNFe.ID)
	assert.Equal(t, "4.00", parsed.InfNFe.Versao)
	assert.Equal(t, "53", parsed.InfNFe.Ide.CUF)
	assert.Equal(t, "55", parsed.InfNFe.Ide.Mod)
	assert.Equal(t, "1", parsed.InfNFe.Ide.Serie)
	assert.Equal(t, "00007", parsed.InfNFe.Ide.NNF)
	require.Len(t, parsed.InfNFe.Detalhes, 2)
	assert.Equal(t, "12.500000", parsed.InfNFe.Detalhes[0].VUnCom)
	assert.Equal(t, "1.0", parsed.InfNFe.Detalhes[0].QCom)
	assert.Equal(t, "20.00", parsed.InfNFe.Total.VNF)
}

func TestSefazProvider_DeniesZeroTotal(t *testing.T) {
	d := newDocument(t, "NF/2026/00008", "0")

	result, err := NewSefazProvider(homologSettings()).Send(context.Background(), d)
	require.NoError(t, err)

	assert.False(t, result.Authorized)
	assert.Equal(t, fiscal.StatusDenied, result.Status)
	assert.Equal(t, "NFe denied", result.Message)
}

func TestSefazProvider_BuildXML_Unnumbered(t *testing.T) {
	d := newDocument(t, "", "1.00")

	content, err := NewSefazProvider(homologSettings()).BuildXML(d)
	require.NoError(t, err)

	var parsed nfeXML
	require.NoError(t, xml.Unmarshal(content, &parsed))
	assert.Equal(t, "0", parsed.InfNFe.Ide.NNF)
	assert.Equal(t, "NFe", parsed.InfNFe.ID)
}

func TestNFSeProvider_Send(t *testing.T) {
	d := newDocument(t, "NF/2026/00011", "250.00")

	result, err := NewNFSeProvider(homologSettings()).Send(context.Background(), d)
	require.NoError(t, err)

	assert.True(t, result.Authorized)
	assert.Equal(t, "NFSe-NF/2026/00011", result.AccessKey)
	assert.Equal(t, "BRASILIA-NF/2026/00011", result.Protocol)
	assert.Equal(t, "NFS-e authorized (homolog)", result.Message)
	assert.Equal(t, "NF_2026_00011_RPS.pdf", result.PDF.Filename)

	var parsed loteRpsEnvioXML
	require.NoError(t, xml.Unmarshal(result.XML.Content, &parsed))
	lote := parsed.LoteRps
	assert.Equal(t, "NF202600011", lote.NumeroLote)
	assert.Equal(t, "12345678000199", lote.Cnpj)
	assert.Equal(t, "0745123", lote.InscricaoMunicipal)
	assert.Equal(t, 1, lote.QuantidadeRps)
	require.Len(t, lote.Rps, 1)
	assert.Equal(t, "250.00", lote.Rps[0].InfRps.Servico.ValorServicos)
	assert.Equal(t, "1.05", lote.Rps[0].InfRps.Servico.ItemListaServico)
	assert.Equal(t, "Mercado Central LTDA", lote.Rps[0].InfRps.Tomador.RazaoSocial)
}

func TestNFSeProvider_UnnumberedLot(t *testing.T) {
	d := newDocument(t, "", "0")

	result, err := NewNFSeProvider(homologSettings()).Send(context.Background(), d)
	require.NoError(t, err)
	assert.False(t, result.Authorized)
	assert.Equal(t, "NFS-e denied", result.Message)

	var parsed loteRpsEnvioXML
	require.NoError(t, xml.Unmarshal(result.XML.Content, &parsed))
	assert.Equal(t, "1", parsed.LoteRps.NumeroLote)
}
