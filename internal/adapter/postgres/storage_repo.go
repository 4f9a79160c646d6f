package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"storefront/internal/domain"
)

var _ domain.StorageRepository = (*DB)(nil)

// Get returns the value stored under key for clientID.
func (d *DB) Get(ctx context.Context, clientID, key string) (string, error) {
	var sealed string
	err := d.sql.QueryRowContext(ctx,
		"SELECT value FROM client_storage WHERE client_id = $1 AND key = $2",
		clientID, key,
	).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	v, err := d.box.Open(sealed)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", key, err)
	}
	return v, nil
}

// Set stores value under key for clientID, replacing any previous value.
func (d *DB) Set(ctx context.Context, clientID, key, value string) error {
	sealed, err := d.box.Seal(value)
	if err != nil {
		return err
	}
	_, err = d.sql.ExecContext(ctx,
		`INSERT INTO client_storage (client_id, key, value, updated_at) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (client_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		clientID, key, sealed, time.Now().UTC(),
	)
	return err
}

// Delete removes key for clientID.
func (d *DB) Delete(ctx context.Context, clientID, key string) error {
	_, err := d.sql.ExecContext(ctx,
		"DELETE FROM client_storage WHERE client_id = $1 AND key = $2",
		clientID, key,
	)
	return err
}

// DeleteOlderThan removes values not written since cutoff and returns how
// many were removed.
func (d *DB) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM client_storage WHERE updated_at < $1", cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
