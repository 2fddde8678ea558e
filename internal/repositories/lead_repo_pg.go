package repositories

import (
	"context"
	"fmt"

	"xestetik/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the subset of *pgxpool.Pool used by the PostgreSQL lead store.
type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type pgLeadRepo struct {
	db PgxIface
}

// NewPgLeadRepo returns a LeadRepository backed by PostgreSQL.
func NewPgLeadRepo(db PgxIface) LeadRepository {
	return &pgLeadRepo{db: db}
}

func (r *pgLeadRepo) Create(ctx context.Context, lead *models.Lead) error {
	query := `
		INSERT INTO leads (created_at, name, email, phone, message, source_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, lead.CreatedAt, lead.Name, lead.Email, lead.Phone, lead.Message, lead.SourcePath).
		Scan(&lead.ID)
	if err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}
	return nil
}

func (r *pgLeadRepo) List(ctx context.Context, limit, offset int) ([]*models.Lead, error) {
	query := `
		SELECT id, created_at, name, email, COALESCE(phone, ''), message, COALESCE(source_path, '')
		FROM leads
		ORDER BY id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*models.Lead
	for rows.Next() {
		lead := &models.Lead{}
		if err := rows.Scan(&lead.ID, &lead.CreatedAt, &lead.Name, &lead.Email, &lead.Phone, &lead.Message, &lead.SourcePath); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *pgLeadRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM leads`).Scan(&n)
	return n, err
}

func (r *pgLeadRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
