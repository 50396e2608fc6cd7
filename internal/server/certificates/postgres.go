package certificates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/certchain/internal/common"
	"github.com/dmitrijs2005/certchain/internal/dbx"
	"github.com/dmitrijs2005/certchain/internal/models"
	"github.com/dmitrijs2005/certchain/internal/server/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// OpenPostgres opens the server database and brings its schema up to date
// from the embedded migrations.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, cert *models.Certificate) error {
	query := `
		INSERT INTO certificates
			(record_id, certificate_id, recipient_name, recipient_email,
			 course_name, issuer_name, completion_date, description,
			 issued_at, blockchain_hash, is_valid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		cert.RecordID, cert.CertificateID, cert.RecipientName, cert.RecipientEmail,
		cert.CourseName, cert.IssuerName, cert.CompletionDate, cert.Description,
		cert.IssuedAt, cert.BlockchainHash, cert.IsValid)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return common.ErrDuplicate
		}
		return fmt.Errorf("failed to insert certificate: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByCertificateID(ctx context.Context, certificateID string) (*models.Certificate, error) {
	query := selectColumns + ` WHERE certificate_id = $1`

	var cert models.Certificate
	err := r.db.QueryRowContext(ctx, query, certificateID).Scan(
		&cert.RecordID, &cert.CertificateID, &cert.RecipientName, &cert.RecipientEmail,
		&cert.CourseName, &cert.IssuerName, &cert.CompletionDate, &cert.Description,
		&cert.IssuedAt, &cert.BlockchainHash, &cert.IsValid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select certificate: %w", err)
	}
	return &cert, nil
}

const selectColumns = `
	SELECT record_id, certificate_id, recipient_name, recipient_email,
	       course_name, issuer_name, completion_date, description,
	       issued_at, blockchain_hash, is_valid
	FROM certificates`

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Certificate, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns)
	if err != nil {
		return nil, fmt.Errorf("failed to select certificates: %w", err)
	}
	defer rows.Close()

	var result []models.Certificate
	for rows.Next() {
		var cert models.Certificate
		if err := rows.Scan(
			&cert.RecordID, &cert.CertificateID, &cert.RecipientName, &cert.RecipientEmail,
			&cert.CourseName, &cert.IssuerName, &cert.CompletionDate, &cert.Description,
			&cert.IssuedAt, &cert.BlockchainHash, &cert.IsValid,
		); err != nil {
			return nil, err
		}
		result = append(result, cert)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
