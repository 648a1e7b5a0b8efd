package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"dragdeck/internal/domain"
	"dragdeck/internal/ports"

	_ "modernc.org/sqlite"
)

// Store implements ports.BoardRepository over SQLite. Lists and cards
// carry explicit position columns; every write leaves each list's
// positions a contiguous 0..n-1 run.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements BoardRepository
var _ ports.BoardRepository = (*Store)(nil)

// Open opens (creating if needed) the board database at path.
func Open(path string) (*Store, error) {
	// Expand ~ in path
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create board directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;
		PRAGMA foreign_keys = ON;

		CREATE TABLE IF NOT EXISTS lists (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			position INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS cards (
			id TEXT PRIMARY KEY,
			list_id TEXT NOT NULL REFERENCES lists(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_cards_list ON cards(list_id, position);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return &Store{db: db, dbPath: path}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the whole board in list/card position order.
func (s *Store) Load() (domain.Board, error) {
	rows, err := s.db.Query(`SELECT id, title FROM lists ORDER BY position`)
	if err != nil {
		return domain.Board{}, fmt.Errorf("failed to query lists: %w", err)
	}
	defer rows.Close()

	var board domain.Board
	for rows.Next() {
		var l domain.BoardList
		if err := rows.Scan(&l.ID, &l.Title); err != nil {
			return domain.Board{}, fmt.Errorf("failed to scan list: %w", err)
		}
		board.Lists = append(board.Lists, l)
	}
	if err := rows.Err(); err != nil {
		return domain.Board{}, fmt.Errorf("failed to read lists: %w", err)
	}

	for i := range board.Lists {
		cards, err := s.loadCards(board.Lists[i].ID)
		if err != nil {
			return domain.Board{}, err
		}
		board.Lists[i].Cards = cards
	}
	return board, nil
}

func (s *Store) loadCards(list domain.ListID) ([]domain.Card, error) {
	rows, err := s.db.Query(`SELECT id, title, note FROM cards WHERE list_id = ? ORDER BY position`, string(list))
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		var c domain.Card
		if err := rows.Scan(&c.ID, &c.Title, &c.Note); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// Save replaces the stored board wholesale, renumbering positions from
// the slice order.
func (s *Store) Save(board domain.Board) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM cards`); err != nil {
		return fmt.Errorf("failed to clear cards: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM lists`); err != nil {
		return fmt.Errorf("failed to clear lists: %w", err)
	}

	for i, l := range board.Lists {
		if _, err := tx.Exec(`INSERT INTO lists (id, title, position) VALUES (?, ?, ?)`,
			string(l.ID), l.Title, i); err != nil {
			return fmt.Errorf("failed to insert list %s: %w", l.ID, err)
		}
		for j, c := range l.Cards {
			if _, err := tx.Exec(`INSERT INTO cards (id, list_id, title, note, position) VALUES (?, ?, ?, ?, ?)`,
				string(c.ID), string(l.ID), c.Title, c.Note, j); err != nil {
				return fmt.Errorf("failed to insert card %s: %w", c.ID, err)
			}
		}
	}

	return tx.Commit()
}

// ApplyMove applies a committed drag in one transaction: the source list
// closes its gap, the target list opens one, and the card takes the
// committed slot. The target index is clamped to the list length.
func (s *Store) ApplyMove(ev domain.Committed) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var fromList string
	var fromPos int
	err = tx.QueryRow(`SELECT list_id, position FROM cards WHERE id = ?`, string(ev.Item)).Scan(&fromList, &fromPos)
	if err == sql.ErrNoRows {
		// Card gone; a committed drag on a vanished card is a no-op.
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to locate card: %w", err)
	}

	var exists int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM lists WHERE id = ?`, string(ev.List)).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check target list: %w", err)
	}
	if exists == 0 {
		return nil
	}

	// Close the gap in the source list.
	if _, err := tx.Exec(`UPDATE cards SET position = position - 1 WHERE list_id = ? AND position > ?`,
		fromList, fromPos); err != nil {
		return fmt.Errorf("failed to renumber source list: %w", err)
	}
	// Park the card out of the way so the unique scan below skips it.
	if _, err := tx.Exec(`UPDATE cards SET list_id = ?, position = -1 WHERE id = ?`,
		string(ev.List), string(ev.Item)); err != nil {
		return fmt.Errorf("failed to reassign card: %w", err)
	}

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM cards WHERE list_id = ? AND position >= 0`, string(ev.List)).Scan(&count); err != nil {
		return fmt.Errorf("failed to count target list: %w", err)
	}
	idx := ev.Index
	if idx < 0 {
		idx = 0
	}
	if idx > count {
		idx = count
	}

	// Open a slot in the target list and drop the card in.
	if _, err := tx.Exec(`UPDATE cards SET position = position + 1 WHERE list_id = ? AND position >= ?`,
		string(ev.List), idx); err != nil {
		return fmt.Errorf("failed to renumber target list: %w", err)
	}
	if _, err := tx.Exec(`UPDATE cards SET position = ? WHERE id = ?`, idx, string(ev.Item)); err != nil {
		return fmt.Errorf("failed to place card: %w", err)
	}

	return tx.Commit()
}
