// Package analytics keeps a per-session log of backend calls in an
// in-process SQLite database and aggregates it per endpoint.
package analytics

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Outcome classifies how a backend call ended
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeTransport Outcome = "transport"
	OutcomeNetwork   Outcome = "network"
)

// statsTTL bounds how long aggregated stats are served from cache
const statsTTL = 2 * time.Second

type Entry struct {
	ID         int64
	RequestID  string
	Endpoint   string
	Method     string
	StatusCode int // 0 when no response was received
	Outcome    Outcome
	DurationMs int64
	Timestamp  time.Time
}

type Stats struct {
	Endpoint        string
	Method          string
	TotalCalls      int
	SuccessCount    int
	TransportErrors int
	NetworkErrors   int
	AvgDurationMs   float64
	MinDurationMs   int64
	MaxDurationMs   int64
	LastCalled      time.Time
}

// Manager owns the session database. It is safe for concurrent use.
type Manager struct {
	db    *sql.DB
	cache *statsCache
}

// NewManager opens a fresh in-memory database. Nothing is written to disk.
func NewManager() (*Manager, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open analytics database: %w", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to analytics database: %w", err)
	}

	m := &Manager{db: db, cache: newStatsCache(statsTTL)}
	if err := m.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return m, nil
}

func (m *Manager) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS calls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		request_id TEXT NOT NULL,
		endpoint TEXT NOT NULL,
		method TEXT NOT NULL,
		status_code INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		timestamp DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_endpoint ON calls(endpoint, method);
	`

	if _, err := m.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize analytics schema: %w", err)
	}
	return nil
}

// Record stores one call
func (m *Manager) Record(entry Entry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := m.db.Exec(`
		INSERT INTO calls (request_id, endpoint, method, status_code, outcome, duration_ms, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.RequestID,
		entry.Endpoint,
		entry.Method,
		entry.StatusCode,
		string(entry.Outcome),
		entry.DurationMs,
		entry.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save analytics entry: %w", err)
	}

	m.cache.invalidate()
	return nil
}

// Recent returns the latest calls, newest first
func (m *Manager) Recent(limit int) ([]Entry, error) {
	rows, err := m.db.Query(`
		SELECT id, request_id, endpoint, method, status_code, outcome, duration_ms, timestamp
		FROM calls
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent calls: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var outcome, timestamp string
		if err := rows.Scan(&e.ID, &e.RequestID, &e.Endpoint, &e.Method, &e.StatusCode, &outcome, &e.DurationMs, &timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan analytics entry: %w", err)
		}
		e.Outcome = Outcome(outcome)
		e.Timestamp = parseTimestamp(timestamp)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Stats aggregates the log per endpoint and method, most recently called first
func (m *Manager) Stats() ([]Stats, error) {
	cached, version, ok := m.cache.get()
	if ok {
		return cached, nil
	}

	rows, err := m.db.Query(`
		SELECT
			endpoint,
			method,
			COUNT(*) AS total_calls,
			SUM(CASE WHEN outcome = 'success' THEN 1 ELSE 0 END),
			SUM(CASE WHEN outcome = 'transport' THEN 1 ELSE 0 END),
			SUM(CASE WHEN outcome = 'network' THEN 1 ELSE 0 END),
			AVG(duration_ms),
			MIN(duration_ms),
			MAX(duration_ms),
			MAX(timestamp) AS last_called
		FROM calls
		GROUP BY endpoint, method
		ORDER BY MAX(id) DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	defer rows.Close()

	var statsList []Stats
	for rows.Next() {
		var s Stats
		var lastCalled string
		err := rows.Scan(
			&s.Endpoint,
			&s.Method,
			&s.TotalCalls,
			&s.SuccessCount,
			&s.TransportErrors,
			&s.NetworkErrors,
			&s.AvgDurationMs,
			&s.MinDurationMs,
			&s.MaxDurationMs,
			&lastCalled,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stats: %w", err)
		}
		s.LastCalled = parseTimestamp(lastCalled)
		statsList = append(statsList, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	m.cache.set(statsList, version)
	return statsList, nil
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t.Local()
}

// Clear drops every recorded call
func (m *Manager) Clear() error {
	if _, err := m.db.Exec("DELETE FROM calls"); err != nil {
		return fmt.Errorf("failed to clear analytics: %w", err)
	}
	m.cache.invalidate()
	return nil
}

func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
