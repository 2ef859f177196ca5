package service

import (
	"context"
	"sync"
	"time"

	"github.com/hugohenrick/nota-fiscal/internal/domain/certificate"
	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/stretchr/testify/mock"
)

type memoryRepository struct {
	mu        sync.Mutex
	documents map[string]*fiscal.Document
	rowLocks  map[string]*sync.Mutex
	updates   int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		documents: make(map[string]*fiscal.Document),
		rowLocks:  make(map[string]*sync.Mutex),
	}
}

func (r *memoryRepository) Create(_ context.Context, d *fiscal.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.documents[d.ID] = d.Clone()
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*fiscal.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.documents[id]
	if !ok {
		return nil, fiscal.ErrDocumentNotFound
	}
	return d.Clone(), nil
}

// FindByIDForUpdate bloqueia a nota até o fim da transação do contexto, como SELECT ... FOR UPDATE
func (r *memoryRepository) FindByIDForUpdate(ctx context.Context, id string) (*fiscal.Document, error) {
	if tx, ok := ctx.Value(memoryTxKey{}).(*memoryTx); ok && !tx.holds(id) {
		r.mu.Lock()
		lock, ok := r.rowLocks[id]
		if !ok {
			lock = &sync.Mutex{}
			r.rowLocks[id] = lock
		}
		r.mu.Unlock()

		lock.Lock()
		tx.hold(id, lock.Unlock)
	}
	return r.FindByID(ctx, id)
}

func (r *memoryRepository) List(_ context.Context, filter fiscal.ListFilter) ([]*fiscal.Document, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*fiscal.Document
	for _, d := range r.documents {
		if d.CompanyID == filter.CompanyID {
			out = append(out, d.Clone())
		}
	}
	return out, len(out), nil
}

func (r *memoryRepository) Update(_ context.Context, d *fiscal.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.documents[d.ID]; !ok {
		return fiscal.ErrDocumentNotFound
	}
	r.documents[d.ID] = d.Clone()
	r.updates++
	return nil
}

func (r *memoryRepository) stored(id string) *fiscal.Document {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.documents[id].Clone()
}

type counterSequence struct {
	mu    sync.Mutex
	value int64
}

func (s *counterSequence) Next(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value++
	return s.value, nil
}

type memoryAudit struct {
	mu       sync.Mutex
	messages []fiscal.Message
}

func (a *memoryAudit) PostMessage(_ context.Context, event fiscal.AuditEvent) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, fiscal.Message{
		Model:     event.Model,
		ResID:     event.ResID,
		Body:      event.Body,
		CreatedAt: time.Now(),
	})
	return nil
}

func (a *memoryAudit) ListMessages(_ context.Context, model, resID string) ([]fiscal.Message, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []fiscal.Message
	for _, m := range a.messages {
		if m.Model == model && m.ResID == resID {
			out = append(out, m)
		}
	}
	return out, nil
}

type memoryTxKey struct{}

// memoryTx guarda os bloqueios de linha obtidos dentro de uma transação
type memoryTx struct {
	held     map[string]bool
	releases []func()
}

func (t *memoryTx) holds(id string) bool {
	return t.held[id]
}

func (t *memoryTx) hold(id string, release func()) {
	t.held[id] = true
	t.releases = append(t.releases, release)
}

// lockingTx executa a função sem rollback, liberando os bloqueios de linha ao terminar
type lockingTx struct{}

func (lockingTx) RunInTx(ctx context.Context, fn func(context.Context) error) error {
	if _, ok := ctx.Value(memoryTxKey{}).(*memoryTx); ok {
		return fn(ctx)
	}

	tx := &memoryTx{held: make(map[string]bool)}
	defer func() {
		for _, release := range tx.releases {
			release()
		}
	}()
	return fn(context.WithValue(ctx, memoryTxKey{}, tx))
}

type recordedTransmission struct {
	provider fiscal.ProviderCode
	outcome  string
}

type fakeMetrics struct {
	mu       sync.Mutex
	observed []recordedTransmission
}

func (m *fakeMetrics) ObserveTransmission(provider fiscal.ProviderCode, outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observed = append(m.observed, recordedTransmission{provider: provider, outcome: outcome})
}

type fakeRenderer struct{}

func (fakeRenderer) Render(d *fiscal.Document) (*fiscal.Artifact, error) {
	return &fiscal.Artifact{Content: []byte("%PDF-" + d.Number), Filename: "danfe.pdf"}, nil
}

// MockResolver é um mock de fiscal.ProviderResolver
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context) (fiscal.Provider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(fiscal.Provider), args.Error(1)
}

// MockProvider é um mock de fiscal.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Code() fiscal.ProviderCode {
	args := m.Called()
	return args.Get(0).(fiscal.ProviderCode)
}

func (m *MockProvider) Send(ctx context.Context, d *fiscal.Document) (*fiscal.TransmissionResult, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fiscal.TransmissionResult), args.Error(1)
}

type memoryParameters struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemoryParameters() *memoryParameters {
	return &memoryParameters{values: make(map[string]string)}
}

func (p *memoryParameters) Get(_ context.Context, key, defaultValue string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.values[key]; ok {
		return v, nil
	}
	return defaultValue, nil
}

func (p *memoryParameters) Set(_ context.Context, key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[key] = value
	return nil
}

type memoryCertificates struct {
	byCompany map[string]*certificate.Certificate
}

func newMemoryCertificates() *memoryCertificates {
	return &memoryCertificates{byCompany: make(map[string]*certificate.Certificate)}
}

func (r *memoryCertificates) Save(_ context.Context, cert *certificate.Certificate) (string, error) {
	stored := *cert
	r.byCompany[cert.CompanyID] = &stored
	return cert.ID, nil
}

func (r *memoryCertificates) FindByID(_ context.Context, id string) (*certificate.Certificate, error) {
	for _, c := range r.byCompany {
		if c.ID == id {
			found := *c
			return &found, nil
		}
	}
	return nil, certificate.ErrCertificateNotFound
}

func (r *memoryCertificates) FindByCompany(_ context.Context, companyID string) (*certificate.Certificate, error) {
	c, ok := r.byCompany[companyID]
	if !ok {
		return nil, certificate.ErrCertificateNotFound
	}
	found := *c
	return &found, nil
}

type memoryBlobs struct {
	objects map[string][]byte
}

func (b *memoryBlobs) Put(_ context.Context, key string, content []byte) error {
	b.objects[key] = append([]byte(nil), content...)
	return nil
}

func (b *memoryBlobs) Get(_ context.Context, key string) ([]byte, error) {
	content, ok := b.objects[key]
	if !ok {
		return nil, certificate.ErrCertificateNotFound
	}
	return content, nil
}
