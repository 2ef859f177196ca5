package repository

import (
	"context"
	"testing"
	"time"

	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/hugohenrick/nota-fiscal/internal/infrastructure/database"
	"github.com/hugohenrick/nota-fiscal/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocumentWithLines(t *testing.T, companyID string) *fiscal.Document {
	t.Helper()
	d, err := fiscal.NewDocument(companyID, fiscal.OperationOut, fiscal.Partner{ID: "p-1", Name: "Cliente Teste"}, "BRL", time.Now().UTC().Truncate(time.Second))
	require.NoError(t, err)

	qty := decimal.RequireFromString("2.5")
	_, err = d.AddLine(fiscal.LineInput{Description: "Queijo", Quantity: &qty, UnitPrice: decimal.RequireFromString("39.90"), TaxPercent: decimal.RequireFromString("18")})
	require.NoError(t, err)
	return d
}

func TestDocumentRepository_CreateFindUpdate(t *testing.T) {
	pool := newTestPool(t)
	repo := NewDocumentRepository(pool)
	ctx := context.Background()

	d := newDocumentWithLines(t, "company-1")
	require.NoError(t, repo.Create(ctx, d))

	found, err := repo.FindByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, fiscal.StateDraft, found.State)
	assert.Empty(t, found.Number)
	assert.Nil(t, found.XML)
	require.Len(t, found.Lines, 1)
	assert.True(t, decimal.RequireFromString("99.75").Equal(found.Lines[0].Subtotal))
	assert.True(t, d.Total.Equal(found.Total))

	// Validar, anexar XML e trocar os itens
	validated, _, err := fiscal.Validate(found, "NF/2026/00001")
	require.NoError(t, err)
	validated.XML = &fiscal.Artifact{Content: []byte("<x/>"), Filename: "NF_2026_00001.xml"}
	_, err = validated.AddLine(fiscal.LineInput{Description: "Pão", UnitPrice: decimal.RequireFromString("1")})
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, validated))

	reloaded, err := repo.FindByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "NF/2026/00001", reloaded.Number)
	assert.Equal(t, fiscal.StateValidated, reloaded.State)
	assert.Equal(t, "<x/>", string(reloaded.XML.Content))
	assert.Len(t, reloaded.Lines, 2)
	assert.True(t, validated.Total.Equal(reloaded.Total))
}

func TestDocumentRepository_NotFound(t *testing.T) {
	pool := newTestPool(t)
	repo := NewDocumentRepository(pool)

	_, err := repo.FindByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, fiscal.ErrDocumentNotFound)

	d := newDocumentWithLines(t, "company-1")
	assert.ErrorIs(t, repo.Update(context.Background(), d), fiscal.ErrDocumentNotFound)
}

func TestDocumentRepository_List(t *testing.T) {
	pool := newTestPool(t)
	repo := NewDocumentRepository(pool)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		d := newDocumentWithLines(t, "company-1")
		d.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, d))
		ids = append(ids, d.ID)
	}
	require.NoError(t, repo.Create(ctx, newDocumentWithLines(t, "company-2")))

	docs, total, err := repo.List(ctx, fiscal.ListFilter{CompanyID: "company-1", Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, total)
	require.Len(t, docs, 2)
	assert.Equal(t, ids[2], docs[0].ID)
	assert.Equal(t, ids[1], docs[1].ID)
	assert.Len(t, docs[0].Lines, 1)

	docs, total, err = repo.List(ctx, fiscal.ListFilter{CompanyID: "company-1", State: fiscal.StateAuthorized})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, docs)
}

func TestDocumentRepository_ForUpdateInsideTransaction(t *testing.T) {
	pool := newTestPool(t)
	repo := NewDocumentRepository(pool)
	txm := database.NewTxManager(pool, logger.NewNop())
	ctx := context.Background()

	d := newDocumentWithLines(t, "company-1")
	require.NoError(t, repo.Create(ctx, d))

	err := txm.RunInTx(ctx, func(txCtx context.Context) error {
		locked, err := repo.FindByIDForUpdate(txCtx, d.ID)
		if err != nil {
			return err
		}
		locked.LastMessage = "bloqueada"
		return repo.Update(txCtx, locked)
	})
	require.NoError(t, err)

	reloaded, err := repo.FindByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "bloqueada", reloaded.LastMessage)
}

func TestDocumentRepository_SameSequenceLinesKeepInsertionOrder(t *testing.T) {
	pool := newTestPool(t)
	repo := NewDocumentRepository(pool)
	ctx := context.Background()

	d, err := fiscal.NewDocument("company-1", fiscal.OperationOut, fiscal.Partner{ID: "p-1", Name: "Cliente Teste"}, "BRL", time.Now().UTC().Truncate(time.Second))
	require.NoError(t, err)
	want := []string{"Arroz", "Feijão", "Açúcar", "Café", "Leite", "Óleo"}
	for _, description := range want {
		_, err := d.AddLine(fiscal.LineInput{Description: description, UnitPrice: decimal.RequireFromString("1")})
		require.NoError(t, err)
	}
	require.NoError(t, repo.Create(ctx, d))

	found, err := repo.FindByID(ctx, d.ID)
	require.NoError(t, err)
	got := make([]string, 0, len(found.Lines))
	for _, l := range found.Lines {
		got = append(got, l.Description)
	}
	assert.Equal(t, want, got)
}
