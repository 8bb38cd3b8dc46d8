package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/berfenger/homedash/internal/core/domain"
	"github.com/berfenger/homedash/internal/core/port"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	KEY_HA_URL   = "ha_url"
	KEY_HA_TOKEN = "ha_token"

	dirPermissions    = 0750
	filePermissions   = 0600
	connectionTimeout = 5 * time.Second
)

const schema = `CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

type Config struct {
	Path string
	// BusyTimeout in seconds
	BusyTimeout int
}

// SQLiteConfigStore keeps the connection credentials in a local settings table.
type SQLiteConfigStore struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

var _ port.ConfigStore = (*SQLiteConfigStore)(nil)

func Open(cfg Config, logger *zap.Logger) (*SQLiteConfigStore, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), dirPermissions); err != nil {
		return nil, errors.Wrap(err, "creating store directory")
	}

	connStr := fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_synchronous=NORMAL",
		cfg.Path, cfg.BusyTimeout*1000)

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, errors.Wrap(err, "opening store")
	}
	// single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "verifying store connection")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "migrating store schema")
	}
	if err := os.Chmod(cfg.Path, filePermissions); err != nil {
		logger.Warn("could not restrict store file permissions", zap.String("path", cfg.Path), zap.Error(err))
	}

	return &SQLiteConfigStore{db: db, path: cfg.Path, logger: logger}, nil
}

func (s *SQLiteConfigStore) Close() error {
	return errors.Wrap(s.db.Close(), "closing store")
}

func (s *SQLiteConfigStore) Path() string {
	return s.path
}

func (s *SQLiteConfigStore) Get(ctx context.Context) *domain.ConnectionConfig {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings WHERE key IN (?, ?)`, KEY_HA_URL, KEY_HA_TOKEN)
	if err != nil {
		s.logger.Error("failed to read connection config", zap.Error(err))
		return nil
	}
	defer rows.Close()

	cfg := domain.ConnectionConfig{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			s.logger.Error("failed to read connection config", zap.Error(err))
			return nil
		}
		switch key {
		case KEY_HA_URL:
			cfg.URL = value
		case KEY_HA_TOKEN:
			cfg.Token = value
		}
	}
	if err := rows.Err(); err != nil {
		s.logger.Error("failed to read connection config", zap.Error(err))
		return nil
	}
	if !cfg.Complete() {
		return nil
	}
	return &cfg
}

func (s *SQLiteConfigStore) Set(ctx context.Context, url, token string) error {
	return s.inTx(ctx, "set", func(tx *sql.Tx) error {
		const upsert = `INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`
		if _, err := tx.ExecContext(ctx, upsert, KEY_HA_URL, domain.NormalizeURL(url)); err != nil {
			return errors.Wrap(err, KEY_HA_URL)
		}
		if _, err := tx.ExecContext(ctx, upsert, KEY_HA_TOKEN, token); err != nil {
			return errors.Wrap(err, KEY_HA_TOKEN)
		}
		return nil
	})
}

func (s *SQLiteConfigStore) Clear(ctx context.Context) error {
	return s.inTx(ctx, "clear", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM settings WHERE key IN (?, ?)`, KEY_HA_URL, KEY_HA_TOKEN)
		return err
	})
}

func (s *SQLiteConfigStore) inTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &domain.StorageError{Op: op, Err: errors.Wrap(err, "begin")}
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return &domain.StorageError{Op: op, Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &domain.StorageError{Op: op, Err: errors.Wrap(err, "commit")}
	}
	return nil
}
