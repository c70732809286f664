package blob

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// PostgresStore keeps blobs in a two-column key-value table. The wholesale
// overwrite contract maps to a single upsert per mutation.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) (*PostgresStore, error) {
	err := db.Exec(`
		CREATE TABLE IF NOT EXISTS blobs (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`).Error
	if err != nil {
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var rows []struct {
		Value string `gorm:"column:value"`
	}
	err := s.db.WithContext(ctx).
		Raw("SELECT value FROM blobs WHERE key = ?", key).
		Scan(&rows).Error
	if err != nil {
		return "", false, err
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return rows[0].Value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	return s.db.WithContext(ctx).Exec(
		"INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at",
		key, value, time.Now().UTC(),
	).Error
}
