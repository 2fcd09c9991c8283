package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"restaurant-ordering/order-svc/internal/domain"

	"github.com/google/uuid"
)

// PostgresDocuments keeps every collection in one JSONB table keyed by
// (collection, id). Collection names are slash separated paths.
type PostgresDocuments struct {
	DB    *sql.DB
	newID func() string
}

func NewPostgresDocuments(db *sql.DB) *PostgresDocuments {
	return &PostgresDocuments{DB: db, newID: newDocumentID}
}

func newDocumentID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (r *PostgresDocuments) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id TEXT NOT NULL,
			data JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (collection, id)
		)`,
		"CREATE INDEX IF NOT EXISTS documents_created_idx ON documents (collection, created_at)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func encode(data any) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	return string(payload), nil
}

func (r *PostgresDocuments) Get(ctx context.Context, collection, id string) (domain.Document, error) {
	doc := domain.Document{Collection: collection, ID: id}
	var data []byte
	err := r.DB.QueryRowContext(ctx, `
		SELECT data, created_at, updated_at
		FROM documents
		WHERE collection = $1 AND id = $2`, collection, id).
		Scan(&data, &doc.CreatedAt, &doc.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Document{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Document{}, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	doc.Data = data
	return doc, nil
}

// Set writes a document. With merge the top-level fields of data are laid
// over the stored ones, otherwise the stored body is replaced.
func (r *PostgresDocuments) Set(ctx context.Context, collection, id string, data any, merge bool) error {
	payload, err := encode(data)
	if err != nil {
		return err
	}

	update := "EXCLUDED.data"
	if merge {
		update = "documents.data || EXCLUDED.data"
	}
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (collection, id)
		DO UPDATE SET data = `+update+`, updated_at = now()`,
		collection, id, payload)
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

// Create inserts a document only when the id is free.
func (r *PostgresDocuments) Create(ctx context.Context, collection, id string, data any) error {
	payload, err := encode(data)
	if err != nil {
		return err
	}

	result, err := r.DB.ExecContext(ctx, `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (collection, id) DO NOTHING`,
		collection, id, payload)
	if err != nil {
		return fmt.Errorf("create %s/%s: %w", collection, id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrAlreadyExists
	}
	return nil
}

func (r *PostgresDocuments) Add(ctx context.Context, collection string, data any) (string, error) {
	payload, err := encode(data)
	if err != nil {
		return "", err
	}

	id := r.newID()
	if _, err := r.DB.ExecContext(ctx,
		"INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3::jsonb)",
		collection, id, payload); err != nil {
		return "", fmt.Errorf("add to %s: %w", collection, err)
	}
	return id, nil
}

func (r *PostgresDocuments) List(ctx context.Context, collection string) ([]domain.Document, error) {
	return r.query(ctx, `
		SELECT collection, id, data, created_at, updated_at
		FROM documents
		WHERE collection = $1
		ORDER BY created_at, id`, collection)
}

// ListGroup returns the documents of every collection whose last path
// segment is name, e.g. all "users/*/orders".
func (r *PostgresDocuments) ListGroup(ctx context.Context, name string) ([]domain.Document, error) {
	return r.query(ctx, `
		SELECT collection, id, data, created_at, updated_at
		FROM documents
		WHERE collection = $1 OR collection LIKE '%/' || $1
		ORDER BY created_at DESC, id`, name)
}

func (r *PostgresDocuments) query(ctx context.Context, query string, args ...any) ([]domain.Document, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var doc domain.Document
		var data []byte
		if err := rows.Scan(&doc.Collection, &doc.ID, &data, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, err
		}
		doc.Data = data
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (r *PostgresDocuments) Delete(ctx context.Context, collection, id string) error {
	result, err := r.DB.ExecContext(ctx,
		"DELETE FROM documents WHERE collection = $1 AND id = $2", collection, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateIf merges patch into the document only while field still equals
// expected. The check and the write happen in one statement. It reports
// whether a row was changed; a missing document is not an error.
func (r *PostgresDocuments) UpdateIf(ctx context.Context, collection, id, field string, expected any, patch map[string]any) (bool, error) {
	want, err := encode(expected)
	if err != nil {
		return false, err
	}
	payload, err := encode(patch)
	if err != nil {
		return false, err
	}

	result, err := r.DB.ExecContext(ctx, `
		UPDATE documents
		SET data = data || $5::jsonb, updated_at = $6
		WHERE collection = $1 AND id = $2 AND data -> $3::text = $4::jsonb`,
		collection, id, field, want, payload, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
