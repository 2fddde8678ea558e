package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"xestetik/internal/models"
)

// leadTimeLayout is how created_at is stored in SQLite (UTC, second precision).
const leadTimeLayout = "2006-01-02T15:04:05"

// LeadRepository appends and reads contact-form submissions. There is no
// update or delete path.
type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	List(ctx context.Context, limit, offset int) ([]*models.Lead, error)
	Count(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

type leadRepo struct {
	db *sql.DB
}

// NewLeadRepo returns a LeadRepository backed by the SQLite database opened
// with database.OpenSQLite.
func NewLeadRepo(db *sql.DB) LeadRepository {
	return &leadRepo{db: db}
}

func (r *leadRepo) Create(ctx context.Context, lead *models.Lead) error {
	query := `
		INSERT INTO leads (created_at, name, email, phone, message, source_path)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		lead.CreatedAt.UTC().Format(leadTimeLayout),
		lead.Name, lead.Email, lead.Phone, lead.Message, lead.SourcePath)
	if err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		lead.ID = id
	}
	return nil
}

func (r *leadRepo) List(ctx context.Context, limit, offset int) ([]*models.Lead, error) {
	query := `
		SELECT id, created_at, name, email, COALESCE(phone, ''), message, COALESCE(source_path, '')
		FROM leads
		ORDER BY id DESC
		LIMIT ? OFFSET ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*models.Lead
	for rows.Next() {
		lead := &models.Lead{}
		var createdAt string
		if err := rows.Scan(&lead.ID, &createdAt, &lead.Name, &lead.Email, &lead.Phone, &lead.Message, &lead.SourcePath); err != nil {
			return nil, err
		}
		lead.CreatedAt, err = time.Parse(leadTimeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("lead %d: bad created_at %q: %w", lead.ID, createdAt, err)
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *leadRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&n)
	return n, err
}

func (r *leadRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
