package chatlog

import (
	"database/sql"
	"fmt"
	"slices"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aayushCywarden/animagic-space/core/chat"
)

type sqliteLog struct {
	db *sql.DB

	// In-memory mirror of the table so Snapshot and Len never fail and
	// never touch the disk. The mirror is authoritative between Open and
	// Clear; the table only adds durability.
	mu       sync.RWMutex
	messages []chat.Message
}

// NewSQLiteLog creates a Log that writes through to a SQLite file, so an
// interrupted session leaves a readable transcript behind. Rows surviving
// from a previous run are loaded back into the log on open; Clear drops
// them, matching teardown semantics.
func NewSQLiteLog(path string) (Log, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open transcript database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping transcript database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS messages (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id INTEGER NOT NULL,
		text TEXT NOT NULL,
		sender TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate transcript database: %w", err)
	}

	l := &sqliteLog{db: db}
	if err := l.loadMirror(); err != nil {
		db.Close()
		return nil, err
	}
	return l, nil
}

func (l *sqliteLog) loadMirror() error {
	rows, err := l.db.Query(`SELECT id, text, sender FROM messages ORDER BY seq`)
	if err != nil {
		return fmt.Errorf("load transcript: %w", err)
	}
	defer rows.Close()

	var messages []chat.Message
	for rows.Next() {
		var msg chat.Message
		if err := rows.Scan(&msg.ID, &msg.Text, &msg.Sender); err != nil {
			return fmt.Errorf("scan transcript row: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load transcript: %w", err)
	}

	l.mu.Lock()
	l.messages = messages
	l.mu.Unlock()
	return nil
}

func (l *sqliteLog) Append(msg chat.Message) error {
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("append message: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.db.Exec(
		`INSERT INTO messages (id, text, sender) VALUES (?, ?, ?)`,
		msg.ID, msg.Text, string(msg.Sender),
	); err != nil {
		return fmt.Errorf("append message: %w", err)
	}

	l.messages = append(l.messages, msg)
	return nil
}

func (l *sqliteLog) Snapshot() []chat.Message {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.messages)
}

func (l *sqliteLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.messages)
}

func (l *sqliteLog) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.db.Exec(`DELETE FROM messages`); err != nil {
		return fmt.Errorf("clear transcript: %w", err)
	}
	l.messages = nil
	return nil
}

// Close releases the underlying database handle.
func (l *sqliteLog) Close() error {
	return l.db.Close()
}
