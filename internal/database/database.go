package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// connection options applied to every pooled connection by go-sqlite3
const dsnOptions = "_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"

// dbConn lets the roster repository run on either *sql.DB or *sql.Tx
type dbConn interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// DB is the roster store handle.
type DB struct {
	conn *sql.DB
}

// New opens the SQLite file at dbPath and checks that it is reachable.
func New(dbPath string) (*DB, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path is empty")
	}

	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}

	conn, err := sql.Open("sqlite3", "file:"+dbPath+sep+dsnOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", dbPath, err)
	}

	return &DB{conn: conn}, nil
}

func (db *DB) DB() *sql.DB {
	return db.conn
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.conn.BeginTx(ctx, nil)
}
