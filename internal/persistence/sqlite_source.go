package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"skilld/internal/models"
	"skilld/internal/providers"

	_ "modernc.org/sqlite" // SQLite driver
)

const snapshotsQuery = `SELECT player_id, payload FROM skills_snapshots ORDER BY player_id`

// SQLiteSource reads player snapshots from the skills_snapshots export
// table. Each payload holds one snapshot in the importer's JSON layout.
type SQLiteSource struct {
	db     *sql.DB
	dsn    string
	logger providers.Logger
}

// OpenSQLiteSource opens dsn read only and verifies the connection.
func OpenSQLiteSource(dsn string, logger providers.Logger) (*SQLiteSource, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(2)
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &SQLiteSource{db: conn, dsn: dsn, logger: logger}, nil
}

func NewSQLiteSource(db *sql.DB, logger providers.Logger) *SQLiteSource {
	return &SQLiteSource{db: db, logger: logger}
}

func (s *SQLiteSource) Name() string {
	return "sqlite:" + s.dsn
}

// Load skips rows whose payload does not decode and logs them.
func (s *SQLiteSource) Load(ctx context.Context) (map[string]*models.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, snapshotsQuery)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	players := make(map[string]*models.Snapshot)
	for rows.Next() {
		var (
			id      string
			payload []byte
		)
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		snap, err := models.DecodeSnapshot(payload)
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Skipping snapshot of player %s: %s", id, err)
			continue
		}
		players[id] = snap
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}
	return players, nil
}

func (s *SQLiteSource) Close() error {
	return s.db.Close()
}
