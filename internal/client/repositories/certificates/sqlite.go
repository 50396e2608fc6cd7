package certificates

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/certchain/internal/certgen"
	"github.com/dmitrijs2005/certchain/internal/common"
	"github.com/dmitrijs2005/certchain/internal/dbx"
	"github.com/dmitrijs2005/certchain/internal/logging"
	"github.com/dmitrijs2005/certchain/internal/models"
)

// sampleCertificates seed the store on first use so a fresh client never
// shows an empty list. Content is fixed; the hashes are derived
// deterministically from the identifiers.
var sampleCertificates = []models.Certificate{
	{
		RecordID:       "sample-0001",
		CertificateID:  "CERT-2024-SAMPLE1",
		RecipientName:  "John Doe",
		RecipientEmail: "john.doe@example.com",
		CourseName:     "Blockchain Fundamentals",
		IssuerName:     "Tech University",
		CompletionDate: "2024-01-15",
		Description:    "Completed with distinction",
		IssuedAt:       time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		BlockchainHash: certgen.DataHash([]byte("CERT-2024-SAMPLE1")),
		IsValid:        true,
	},
	{
		RecordID:       "sample-0002",
		CertificateID:  "CERT-2024-SAMPLE2",
		RecipientName:  "Jane Smith",
		RecipientEmail: "jane.smith@example.com",
		CourseName:     "Smart Contract Development",
		IssuerName:     "Tech University",
		CompletionDate: "2024-02-20",
		IssuedAt:       time.Date(2024, 2, 20, 14, 30, 0, 0, time.UTC),
		BlockchainHash: certgen.DataHash([]byte("CERT-2024-SAMPLE2")),
		IsValid:        true,
	},
}

// SQLiteStore implements Repository over the client-local SQLite database.
// The whole collection lives as one JSON document in the kv table.
type SQLiteStore struct {
	db     *sql.DB
	logger logging.Logger
}

// NewSQLiteStore returns a SQLiteStore bound to the given database.
func NewSQLiteStore(db *sql.DB, logger logging.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, logger: logger.With("module", "localstore")}
}

func (s *SQLiteStore) Load(ctx context.Context) ([]models.Certificate, error) {
	return s.load(ctx, s.db)
}

func (s *SQLiteStore) load(ctx context.Context, q dbx.DBTX) ([]models.Certificate, error) {
	var raw string
	err := q.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, common.CertificateStorageKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []models.Certificate{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage key: %w", err)
	}

	var certs []models.Certificate
	if err := json.Unmarshal([]byte(raw), &certs); err != nil {
		// Unparseable stored text is treated as an empty store rather than
		// surfaced, keeping the UI renderable.
		s.logger.Warn(ctx, "stored certificate data is unparseable, treating as empty", "error", err.Error())
		return []models.Certificate{}, nil
	}
	return certs, nil
}

// Append reads, extends and rewrites the collection inside one transaction.
func (s *SQLiteStore) Append(ctx context.Context, rec models.Certificate) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		certs, err := s.load(ctx, tx)
		if err != nil {
			return err
		}
		return s.write(ctx, tx, append(certs, rec))
	})
}

func (s *SQLiteStore) FindByCertificateID(ctx context.Context, certificateID string) (*models.Certificate, error) {
	certs, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range certs {
		if certs[i].CertificateID == certificateID {
			return &certs[i], nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *SQLiteStore) SeedIfEmpty(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		certs, err := s.load(ctx, tx)
		if err != nil {
			return err
		}
		if len(certs) > 0 {
			return nil
		}

		s.logger.Info(ctx, "seeding empty store with sample certificates", "count", len(sampleCertificates))
		return s.write(ctx, tx, sampleCertificates)
	})
}

// write serializes the whole collection and upserts it under the fixed key.
// Last write wins at collection granularity.
func (s *SQLiteStore) write(ctx context.Context, q dbx.DBTX, certs []models.Certificate) error {
	raw, err := json.Marshal(certs)
	if err != nil {
		return fmt.Errorf("failed to serialize certificates: %w", err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		common.CertificateStorageKey, string(raw))
	if err != nil {
		return fmt.Errorf("failed to write storage key: %w", err)
	}
	return nil
}
