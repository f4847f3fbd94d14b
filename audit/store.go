package audit

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Actions recorded by the console.
const (
	ActionCreate      = "create"
	ActionUpdate      = "update"
	ActionDelete      = "delete"
	ActionUnsubscribe = "unsubscribe"
	ActionStatus      = "status"
)

// Entry is one operator action against the content API.
type Entry struct {
	Id        int64
	At        time.Time
	Action    string
	Kind      string
	TargetId  int64
	Title     string
	Detail    string
	RequestId string
}

// Store keeps the audit log in a SQL database. A nil *Store is valid and
// records nothing, which is what the "none" driver returns.
type Store struct {
	db      *sql.DB
	dialect string
}

// Open connects to the audit database. driver is one of "sqlite", "mysql",
// "postgres" or "none".
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	var (
		db  *sql.DB
		err error
	)
	switch driver {
	case "", "none":
		return nil, nil
	case "sqlite":
		db, err = openSQLite(dsn)
	case "mysql":
		db, err = openPooled(ctx, "mysql", dsn)
	case "postgres":
		db, err = openPooled(ctx, "pgx", dsn)
	default:
		return nil, fmt.Errorf("unknown audit driver %q", driver)
	}
	if err != nil {
		return nil, err
	}
	s := &Store{db: db, dialect: driver}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func openSQLite(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("audit database path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create audit directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit database: %w", err)
	}
	db.SetMaxOpenConns(1)
	for _, stmt := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply pragma: %w", err)
		}
	}
	return db, nil
}

func openPooled(ctx context.Context, driverName, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping audit database: %w", err)
	}
	return db, nil
}

func (s *Store) migrate(ctx context.Context) error {
	var schema string
	switch s.dialect {
	case "mysql":
		schema = `CREATE TABLE IF NOT EXISTS audit_log (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	at VARCHAR(40) NOT NULL,
	action VARCHAR(32) NOT NULL,
	kind VARCHAR(64) NOT NULL,
	target_id BIGINT NOT NULL,
	title VARCHAR(500) NOT NULL,
	detail TEXT NOT NULL,
	request_id VARCHAR(64) NOT NULL
)`
	case "postgres":
		schema = `CREATE TABLE IF NOT EXISTS audit_log (
	id BIGSERIAL PRIMARY KEY,
	at TEXT NOT NULL,
	action TEXT NOT NULL,
	kind TEXT NOT NULL,
	target_id BIGINT NOT NULL,
	title TEXT NOT NULL,
	detail TEXT NOT NULL,
	request_id TEXT NOT NULL
)`
	default:
		schema = `CREATE TABLE IF NOT EXISTS audit_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	at TEXT NOT NULL,
	action TEXT NOT NULL,
	kind TEXT NOT NULL,
	target_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	detail TEXT NOT NULL,
	request_id TEXT NOT NULL
)`
	}
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create audit table: %w", err)
	}
	return nil
}

// Record appends e to the log. A zero At is set to now.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if s == nil {
		return nil
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}
	_, err := s.db.ExecContext(ctx, s.rebind(
		`INSERT INTO audit_log (at, action, kind, target_id, title, detail, request_id) VALUES (?, ?, ?, ?, ?, ?, ?)`),
		e.At.UTC().Format(time.RFC3339Nano), e.Action, e.Kind, e.TargetId, e.Title, e.Detail, e.RequestId)
	if err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	entries := make([]Entry, 0)
	if s == nil {
		return entries, nil
	}
	rows, err := s.db.QueryContext(ctx, s.rebind(
		`SELECT id, at, action, kind, target_id, title, detail, request_id FROM audit_log ORDER BY id DESC LIMIT ?`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			e  Entry
			at string
		)
		if err := rows.Scan(&e.Id, &at, &e.Action, &e.Kind, &e.TargetId, &e.Title, &e.Detail, &e.RequestId); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, at); err == nil {
			e.At = t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read audit log: %w", err)
	}
	return entries, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// rebind turns ? placeholders into $n for postgres.
func (s *Store) rebind(query string) string {
	if s.dialect != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
