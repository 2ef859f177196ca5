package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/hugohenrick/nota-fiscal/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentRepository implementa a interface fiscal.Repository
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository cria uma nova instância de DocumentRepository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

const documentColumns = `
	id, company_id, number, state, operation_type, partner_id, partner_name, currency,
	access_key, protocol_number, issue_date, last_message, authority_status,
	amount_untaxed, amount_tax, amount_total,
	xml_content, xml_filename, pdf_content, pdf_filename, created_at, updated_at`

// Create implementa o método Create da interface fiscal.Repository
func (r *DocumentRepository) Create(ctx context.Context, d *fiscal.Document) error {
	q := database.Conn(ctx, r.db)

	xmlContent, xmlFilename := artifactColumns(d.XML)
	pdfContent, pdfFilename := artifactColumns(d.PDF)

	query := `
		INSERT INTO fiscal_documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		        $17, $18, $19, $20, $21, $22)
	`
	_, err := q.Exec(ctx, query,
		d.ID, d.CompanyID, nullableString(d.Number), d.State, d.OperationType, d.Partner.ID, d.Partner.Name, d.CurrencyCode,
		d.AccessKey, d.ProtocolNumber, d.IssueDate, d.LastMessage, d.AuthorityStatus,
		d.Untaxed, d.Tax, d.Total,
		xmlContent, xmlFilename, pdfContent, pdfFilename, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao criar nota fiscal: %w", err)
	}

	return r.insertLines(ctx, q, d)
}

// FindByID implementa o método FindByID da interface fiscal.Repository
func (r *DocumentRepository) FindByID(ctx context.Context, id string) (*fiscal.Document, error) {
	return r.find(ctx, id, false)
}

// FindByIDForUpdate implementa o método FindByIDForUpdate da interface fiscal.Repository.
// Sem transação no contexto o bloqueio dura apenas a consulta.
func (r *DocumentRepository) FindByIDForUpdate(ctx context.Context, id string) (*fiscal.Document, error) {
	return r.find(ctx, id, true)
}

func (r *DocumentRepository) find(ctx context.Context, id string, forUpdate bool) (*fiscal.Document, error) {
	q := database.Conn(ctx, r.db)

	query := `SELECT ` + documentColumns + ` FROM fiscal_documents WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	d, err := scanDocument(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fiscal.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("falha ao buscar nota fiscal: %w", err)
	}

	lines, err := r.loadLines(ctx, q, d.ID)
	if err != nil {
		return nil, err
	}
	d.Lines = lines
	return d, nil
}

// List implementa o método List da interface fiscal.Repository
func (r *DocumentRepository) List(ctx context.Context, filter fiscal.ListFilter) ([]*fiscal.Document, int, error) {
	q := database.Conn(ctx, r.db)

	conditions := []string{"company_id = $1"}
	args := []any{filter.CompanyID}
	if filter.State != "" {
		args = append(args, string(filter.State))
		conditions = append(conditions, fmt.Sprintf("state = $%d", len(args)))
	}
	where := strings.Join(conditions, " AND ")

	// Contar o total de registros
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM fiscal_documents WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("falha ao contar notas fiscais: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	args = append(args, limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM fiscal_documents WHERE %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		documentColumns, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("falha ao listar notas fiscais: %w", err)
	}
	defer rows.Close()

	var documents []*fiscal.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("falha ao ler nota fiscal: %w", err)
		}
		documents = append(documents, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("falha ao iterar notas fiscais: %w", err)
	}

	// Carregar os itens de cada nota
	for _, d := range documents {
		lines, err := r.loadLines(ctx, q, d.ID)
		if err != nil {
			return nil, 0, err
		}
		d.Lines = lines
	}

	return documents, total, nil
}

// Update implementa o método Update da interface fiscal.Repository.
// Os itens são substituídos pelos da nota informada.
func (r *DocumentRepository) Update(ctx context.Context, d *fiscal.Document) error {
	q := database.Conn(ctx, r.db)

	xmlContent, xmlFilename := artifactColumns(d.XML)
	pdfContent, pdfFilename := artifactColumns(d.PDF)

	query := `
		UPDATE fiscal_documents SET
			number = $2, state = $3, operation_type = $4, partner_id = $5, partner_name = $6, currency = $7,
			access_key = $8, protocol_number = $9, issue_date = $10, last_message = $11, authority_status = $12,
			amount_untaxed = $13, amount_tax = $14, amount_total = $15,
			xml_content = $16, xml_filename = $17, pdf_content = $18, pdf_filename = $19, updated_at = $20
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		d.ID, nullableString(d.Number), d.State, d.OperationType, d.Partner.ID, d.Partner.Name, d.CurrencyCode,
		d.AccessKey, d.ProtocolNumber, d.IssueDate, d.LastMessage, d.AuthorityStatus,
		d.Untaxed, d.Tax, d.Total,
		xmlContent, xmlFilename, pdfContent, pdfFilename, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar nota fiscal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fiscal.ErrDocumentNotFound
	}

	if _, err := q.Exec(ctx, `DELETE FROM fiscal_document_lines WHERE document_id = $1`, d.ID); err != nil {
		return fmt.Errorf("falha ao remover itens da nota fiscal: %w", err)
	}
	return r.insertLines(ctx, q, d)
}

// HighestIssuedSequence devolve o maior sequencial entre os números já gravados nas notas,
// ou zero se nenhuma nota foi numerada
func (r *DocumentRepository) HighestIssuedSequence(ctx context.Context) (int64, error) {
	var highest int64
	err := database.Conn(ctx, r.db).QueryRow(ctx, `
		SELECT COALESCE(MAX(CAST(substring(number FROM '([0-9]+)$') AS BIGINT)), 0)
		FROM fiscal_documents
		WHERE number ~ '[0-9]+$'
	`).Scan(&highest)
	if err != nil {
		return 0, fmt.Errorf("falha ao consultar maior número emitido: %w", err)
	}
	return highest, nil
}

func (r *DocumentRepository) insertLines(ctx context.Context, q database.Querier, d *fiscal.Document) error {
	query := `
		INSERT INTO fiscal_document_lines
			(id, document_id, sequence, description, quantity, unit_price, tax_percent, subtotal, tax_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	for _, line := range d.Lines {
		_, err := q.Exec(ctx, query,
			line.ID, d.ID, line.Sequence, line.Description, line.Quantity, line.UnitPrice, line.TaxPercent,
			line.Subtotal, line.TaxAmount, line.CreatedAt, line.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("falha ao gravar item da nota fiscal: %w", err)
		}
	}
	return nil
}

func (r *DocumentRepository) loadLines(ctx context.Context, q database.Querier, documentID string) ([]fiscal.Line, error) {
	rows, err := q.Query(ctx, `
		SELECT id, document_id, sequence, description, quantity, unit_price, tax_percent, subtotal, tax_amount, created_at, updated_at
		FROM fiscal_document_lines
		WHERE document_id = $1
		ORDER BY sequence, id
	`, documentID)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar itens da nota fiscal: %w", err)
	}
	defer rows.Close()

	lines := []fiscal.Line{}
	for rows.Next() {
		var line fiscal.Line
		if err := rows.Scan(
			&line.ID, &line.DocumentID, &line.Sequence, &line.Description, &line.Quantity, &line.UnitPrice,
			&line.TaxPercent, &line.Subtotal, &line.TaxAmount, &line.CreatedAt, &line.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler item da nota fiscal: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao iterar itens da nota fiscal: %w", err)
	}
	return lines, nil
}

func scanDocument(row pgx.Row) (*fiscal.Document, error) {
	var (
		d           fiscal.Document
		number      *string
		xmlContent  []byte
		xmlFilename *string
		pdfContent  []byte
		pdfFilename *string
	)

	err := row.Scan(
		&d.ID, &d.CompanyID, &number, &d.State, &d.OperationType, &d.Partner.ID, &d.Partner.Name, &d.CurrencyCode,
		&d.AccessKey, &d.ProtocolNumber, &d.IssueDate, &d.LastMessage, &d.AuthorityStatus,
		&d.Untaxed, &d.Tax, &d.Total,
		&xmlContent, &xmlFilename, &pdfContent, &pdfFilename, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if number != nil {
		d.Number = *number
	}
	d.XML = artifactFromColumns(xmlContent, xmlFilename)
	d.PDF = artifactFromColumns(pdfContent, pdfFilename)
	d.Lines = []fiscal.Line{}
	return &d, nil
}

func artifactColumns(a *fiscal.Artifact) ([]byte, *string) {
	if a == nil {
		return nil, nil
	}
	filename := a.Filename
	return a.Content, &filename
}

func artifactFromColumns(content []byte, filename *string) *fiscal.Artifact {
	if filename == nil {
		return nil
	}
	return &fiscal.Artifact{Content: content, Filename: *filename}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
