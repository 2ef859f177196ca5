package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/hugohenrick/nota-fiscal/internal/domain/certificate"
	"github.com/hugohenrick/nota-fiscal/internal/infrastructure/config"
	"github.com/hugohenrick/nota-fiscal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 atende PUT e GET de objetos no estilo path (/bucket/chave)
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		f.objects[r.URL.Path] = body
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		body, ok := f.objects[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(body)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestStorage(t *testing.T) (*S3Storage, *fakeS3) {
	t.Helper()
	fake := &fakeS3{objects: make(map[string][]byte)}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	s, err := NewS3Storage(context.Background(), config.S3Config{
		Endpoint:     server.URL,
		Region:       "sa-east-1",
		Bucket:       "certificados",
		AccessKey:    "minio",
		SecretKey:    "minio123",
		UsePathStyle: true,
	}, logger.NewNop())
	require.NoError(t, err)
	return s, fake
}

func TestS3Storage_PutGet(t *testing.T) {
	s, fake := newTestStorage(t)
	ctx := context.Background()
	key := certificate.StorageObjectKey("company-1", "cert-1")

	require.NoError(t, s.Put(ctx, key, []byte("conteudo-pfx")))
	assert.Equal(t, []byte("conteudo-pfx"), fake.objects["/certificados/"+key])

	content, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("conteudo-pfx"), content)
}

func TestS3Storage_GetMissing(t *testing.T) {
	s, _ := newTestStorage(t)

	_, err := s.Get(context.Background(), "certificates/company-1/ausente.pfx")
	assert.ErrorIs(t, err, certificate.ErrCertificateNotFound)
}

func TestNewS3Storage_Validation(t *testing.T) {
	_, err := NewS3Storage(context.Background(), config.S3Config{AccessKey: "a", SecretKey: "b"}, logger.NewNop())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "bucket"))

	_, err = NewS3Storage(context.Background(), config.S3Config{Bucket: "certificados"}, logger.NewNop())
	assert.Error(t, err)
}
