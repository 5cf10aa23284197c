package skillstates

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	_ "modernc.org/sqlite"
)

// BackupFileName is the SQLite backup database inside the data directory
const BackupFileName = "skill_backup.db"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS skill_states (
		channel_id TEXT PRIMARY KEY,
		battle_data TEXT NOT NULL,
		last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS config_backup (
		config_type TEXT PRIMARY KEY,
		config_data TEXT NOT NULL,
		last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// SQLiteStore mirrors channel state into a SQLite table
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates) the backup database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create skill tables: %w", err)
		}
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save upserts changed channels and deletes removed ones in one transaction
func (s *SQLiteStore) Save(ctx context.Context, changed map[string]*entities.ChannelState, removed []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for id, state := range changed {
		if state == nil || state.IsEmpty() {
			removed = append(removed, id)
			continue
		}
		data, err := json.Marshal(state)
		if err != nil {
			return fmt.Errorf("encode channel %s: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO skill_states (channel_id, battle_data, last_updated) VALUES (?, ?, CURRENT_TIMESTAMP)`,
			id, string(data)); err != nil {
			return fmt.Errorf("upsert channel %s: %w", id, err)
		}
	}
	for _, id := range removed {
		if _, err := tx.ExecContext(ctx, `DELETE FROM skill_states WHERE channel_id = ?`, id); err != nil {
			return fmt.Errorf("delete channel %s: %w", id, err)
		}
	}

	return tx.Commit()
}

// Load reads every backed-up channel, skipping rows that fail to decode
func (s *SQLiteStore) Load(ctx context.Context) (map[string]*entities.ChannelState, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT channel_id, battle_data FROM skill_states`)
	if err != nil {
		return nil, fmt.Errorf("query skill states: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*entities.ChannelState)
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan skill state: %w", err)
		}
		var state entities.ChannelState
		if err := json.Unmarshal([]byte(raw), &state); err != nil {
			continue
		}
		state.Normalize()
		out[id] = &state
	}
	return out, rows.Err()
}

// SaveConfig keeps a copy of a settings document
func (s *SQLiteStore) SaveConfig(ctx context.Context, configType string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO config_backup (config_type, config_data, last_updated) VALUES (?, ?, CURRENT_TIMESTAMP)`,
		configType, string(data))
	if err != nil {
		return fmt.Errorf("backup config %s: %w", configType, err)
	}
	return nil
}

// LoadConfig returns a backed-up settings document
func (s *SQLiteStore) LoadConfig(ctx context.Context, configType string) ([]byte, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT config_data FROM config_backup WHERE config_type = ?`, configType).Scan(&raw)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configType, err)
	}
	return []byte(raw), nil
}
