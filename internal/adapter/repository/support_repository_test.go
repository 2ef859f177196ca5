package repository

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/hugohenrick/nota-fiscal/internal/domain/certificate"
	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresSequence_ConcurrentNext(t *testing.T) {
	pool := newTestPool(t)
	seq := NewPostgresSequence(pool, "fiscal_document")

	const workers = 20
	var (
		mu      sync.Mutex
		numbers []int64
		wg      sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := seq.Next(context.Background())
			assert.NoError(t, err)
			mu.Lock()
			numbers = append(numbers, n)
			mu.Unlock()
		}()
	}
	wg.Wait()

	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	require.Len(t, numbers, workers)
	for i, n := range numbers {
		assert.Equal(t, int64(i+1), n)
	}
}

func TestPostgresSequence_NewCode(t *testing.T) {
	pool := newTestPool(t)
	seq := NewPostgresSequence(pool, "nfse")

	last, err := seq.LastIssued(context.Background())
	require.NoError(t, err)
	assert.Zero(t, last)

	first, err := seq.Next(context.Background())
	require.NoError(t, err)
	second, err := seq.Next(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)

	last, err = seq.LastIssued(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), last)
}

func TestAuditRepository(t *testing.T) {
	pool := newTestPool(t)
	repo := NewAuditRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.PostMessage(ctx, fiscal.AuditEvent{Model: fiscal.ModelDocument, ResID: "d-1", Body: "Document validated."}))
	require.NoError(t, repo.PostMessage(ctx, fiscal.AuditEvent{Model: fiscal.ModelDocument, ResID: "d-1", Body: "XML generated: a.xml"}))
	require.NoError(t, repo.PostMessage(ctx, fiscal.AuditEvent{Model: fiscal.ModelCompany, ResID: "d-1", Body: "outro registro"}))

	messages, err := repo.ListMessages(ctx, fiscal.ModelDocument, "d-1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Document validated.", messages[0].Body)
}

func TestParameterRepository(t *testing.T) {
	pool := newTestPool(t)
	repo := NewParameterRepository(pool)
	ctx := context.Background()

	value, err := repo.Get(ctx, fiscal.KeyProviderCode, "dummy")
	require.NoError(t, err)
	assert.Equal(t, "dummy", value)

	require.NoError(t, repo.Set(ctx, fiscal.KeyProviderCode, "sefaz_nfe"))
	require.NoError(t, repo.Set(ctx, fiscal.KeyProviderCode, "nfse_brasilia"))

	value, err = repo.Get(ctx, fiscal.KeyProviderCode, "dummy")
	require.NoError(t, err)
	assert.Equal(t, "nfse_brasilia", value)
}

func TestCertificateRepository_SaveReplaces(t *testing.T) {
	pool := newTestPool(t)
	repo := NewCertificateRepository(pool)
	ctx := context.Background()

	first, err := certificate.NewCertificate("company-1", "a1.pfx", []byte{1, 2, 3}, "1234")
	require.NoError(t, err)
	first.ExpiresAt = time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	id, err := repo.Save(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, first.ID, id)

	second, err := certificate.NewCertificate("company-1", "novo.pfx", []byte{9}, "abcd")
	require.NoError(t, err)
	second.ExpiresAt = first.ExpiresAt
	id, err = repo.Save(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, second.ID, id)

	found, err := repo.FindByCompany(ctx, "company-1")
	require.NoError(t, err)
	assert.Equal(t, "novo.pfx", found.Filename)
	assert.Equal(t, []byte{9}, found.Content)

	_, err = repo.FindByID(ctx, first.ID)
	assert.ErrorIs(t, err, certificate.ErrCertificateNotFound)
}

func TestRedisSequence(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()
	seq := NewRedisSequence(client, "fiscal_document")

	first, err := seq.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	other := NewRedisSequence(client, "seeded")
	seeded, err := other.Seed(ctx, 41)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = other.Seed(ctx, 1)
	require.NoError(t, err)
	assert.False(t, seeded)

	next, err := other.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), next)
}

func TestRedisSequence_ReseedAfterKeyLoss(t *testing.T) {
	pool := newTestPool(t)
	client := newTestRedis(t)
	ctx := context.Background()

	pgSequence := NewPostgresSequence(pool, "fiscal_document")
	docs := NewDocumentRepository(pool)
	seq := NewRedisSequence(client, "fiscal_document")

	// Notas numeradas pelo Redis enquanto fiscal_sequences ficou parada
	for i := 0; i < 3; i++ {
		n, err := seq.Next(ctx)
		require.NoError(t, err)
		d := newDocumentWithLines(t, "company-1")
		require.NoError(t, docs.Create(ctx, d))
		validated, _, err := fiscal.Validate(d, fiscal.FormatNumber("NF", 2026, n))
		require.NoError(t, err)
		require.NoError(t, docs.Update(ctx, validated))
	}

	last, err := pgSequence.LastIssued(ctx)
	require.NoError(t, err)
	assert.Zero(t, last)

	highest, err := docs.HighestIssuedSequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), highest)

	// Redis perdeu a chave
	require.NoError(t, client.Del(ctx, sequenceKeyPrefix+"fiscal_document").Err())

	seeded, err := seq.Seed(ctx, max(last, highest))
	require.NoError(t, err)
	assert.True(t, seeded)

	next, err := seq.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), next)

	// Chave atrasada (snapshot antigo) também é elevada
	require.NoError(t, client.Set(ctx, sequenceKeyPrefix+"fiscal_document", 1, 0).Err())
	seeded, err = seq.Seed(ctx, 4)
	require.NoError(t, err)
	assert.True(t, seeded)

	next, err = seq.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), next)
}

func TestDocumentRepository_HighestIssuedSequenceWithoutNumbers(t *testing.T) {
	pool := newTestPool(t)
	docs := NewDocumentRepository(pool)

	require.NoError(t, docs.Create(context.Background(), newDocumentWithLines(t, "company-1")))

	highest, err := docs.HighestIssuedSequence(context.Background())
	require.NoError(t, err)
	assert.Zero(t, highest)
}
