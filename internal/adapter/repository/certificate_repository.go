package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/nota-fiscal/internal/domain/certificate"
	"github.com/hugohenrick/nota-fiscal/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CertificateRepository implementa a interface certificate.Repository
type CertificateRepository struct {
	db *pgxpool.Pool
}

// NewCertificateRepository cria uma nova instância de CertificateRepository
func NewCertificateRepository(db *pgxpool.Pool) *CertificateRepository {
	return &CertificateRepository{db: db}
}

const certificateColumns = `id, company_id, filename, content, storage_key, password, subject, expires_at, created_at, updated_at`

// Save grava o certificado da empresa, substituindo o anterior se existir
func (r *CertificateRepository) Save(ctx context.Context, cert *certificate.Certificate) (string, error) {
	var id string
	err := database.Conn(ctx, r.db).QueryRow(ctx, `
		INSERT INTO company_certificates (`+certificateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (company_id) DO UPDATE SET
			id = EXCLUDED.id,
			filename = EXCLUDED.filename,
			content = EXCLUDED.content,
			storage_key = EXCLUDED.storage_key,
			password = EXCLUDED.password,
			subject = EXCLUDED.subject,
			expires_at = EXCLUDED.expires_at,
			updated_at = EXCLUDED.updated_at
		RETURNING id
	`,
		cert.ID, cert.CompanyID, cert.Filename, cert.Content, cert.StorageKey, cert.Password,
		cert.Subject, cert.ExpiresAt, cert.CreatedAt, cert.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("falha ao gravar certificado: %w", err)
	}
	return id, nil
}

// FindByID busca um certificado pelo ID
func (r *CertificateRepository) FindByID(ctx context.Context, id string) (*certificate.Certificate, error) {
	return r.findOne(ctx, `SELECT `+certificateColumns+` FROM company_certificates WHERE id = $1`, id)
}

// FindByCompany busca o certificado de uma empresa
func (r *CertificateRepository) FindByCompany(ctx context.Context, companyID string) (*certificate.Certificate, error) {
	return r.findOne(ctx, `SELECT `+certificateColumns+` FROM company_certificates WHERE company_id = $1`, companyID)
}

func (r *CertificateRepository) findOne(ctx context.Context, query string, arg string) (*certificate.Certificate, error) {
	var cert certificate.Certificate
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, arg).Scan(
		&cert.ID, &cert.CompanyID, &cert.Filename, &cert.Content, &cert.StorageKey, &cert.Password,
		&cert.Subject, &cert.ExpiresAt, &cert.CreatedAt, &cert.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, certificate.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("falha ao buscar certificado: %w", err)
	}
	return &cert, nil
}
