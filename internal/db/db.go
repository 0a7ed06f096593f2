package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/LavenderBridge/studyplan/internal/models"
)

// ErrNotFound reports a lookup for a row that does not exist. Grading or
// updating an unknown card is a caller contract violation, not something to
// retry.
var ErrNotFound = errors.New("not found")

type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the database under ~/.studyplan.
func NewStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine home directory: %w", err)
	}

	dir := filepath.Join(home, ".studyplan")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create data directory: %w", err)
	}

	return Open(filepath.Join(dir, "studyplan.db"))
}

// Open opens a store at an explicit path. Tests point this at a temp dir.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS decks (
			id TEXT PRIMARY KEY,
			title TEXT UNIQUE NOT NULL,
			course TEXT,
			created_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS cards (
			id TEXT PRIMARY KEY,
			deck_id TEXT NOT NULL,
			front TEXT NOT NULL,
			back TEXT NOT NULL,
			repetition INTEGER NOT NULL DEFAULT 0,
			interval_days INTEGER NOT NULL DEFAULT 0,
			ease_factor REAL NOT NULL DEFAULT 2.5,
			due_date DATETIME NOT NULL,
			last_reviewed DATETIME,
			created_at DATETIME NOT NULL,
			FOREIGN KEY (deck_id) REFERENCES decks(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			card_id TEXT NOT NULL,
			grade INTEGER NOT NULL,
			reviewed_at DATETIME NOT NULL,
			interval_snapshot INTEGER NOT NULL,
			ease_factor_snapshot REAL NOT NULL,
			FOREIGN KEY (card_id) REFERENCES cards(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS assignments (
			id TEXT PRIMARY KEY,
			course TEXT,
			title TEXT NOT NULL,
			due_date DATETIME NOT NULL,
			estimated_minutes INTEGER NOT NULL,
			weight_percent REAL,
			category TEXT NOT NULL,
			urgency TEXT NOT NULL,
			locked INTEGER NOT NULL DEFAULT 0,
			completed_at DATETIME,
			created_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS plan_sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			assignment_id TEXT NOT NULL,
			session_index INTEGER NOT NULL,
			minutes INTEGER NOT NULL,
			start DATETIME,
			end DATETIME,
			overflow INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (assignment_id) REFERENCES assignments(id) ON DELETE CASCADE
		);`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

/* -------------------- DECKS -------------------- */

func (s *Store) CreateDeck(title, course string) (models.Deck, error) {
	deck := models.Deck{
		ID:        uuid.New(),
		Title:     title,
		Course:    course,
		CreatedAt: time.Now(),
	}
	_, err := s.db.Exec(`INSERT INTO decks (id, title, course, created_at) VALUES (?, ?, ?, ?)`,
		deck.ID.String(), deck.Title, deck.Course, deck.CreatedAt)
	return deck, err
}

func (s *Store) ListDecks() ([]models.Deck, error) {
	rows, err := s.db.Query(`SELECT id, title, course, created_at FROM decks ORDER BY title ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decks []models.Deck
	for rows.Next() {
		d, err := scanDeck(rows)
		if err != nil {
			return nil, err
		}
		decks = append(decks, d)
	}
	return decks, rows.Err()
}

func (s *Store) GetDeckByTitle(title string) (*models.Deck, error) {
	row := s.db.QueryRow(`SELECT id, title, course, created_at FROM decks WHERE title = ?`, title)
	d, err := scanDeck(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("deck %q: %w", title, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Store) DeleteDeck(id uuid.UUID) error {
	res, err := s.db.Exec(`DELETE FROM decks WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeck(row rowScanner) (models.Deck, error) {
	var d models.Deck
	var id string
	var course sql.NullString
	if err := row.Scan(&id, &d.Title, &course, &d.CreatedAt); err != nil {
		return d, err
	}
	d.ID, _ = uuid.Parse(id)
	d.Course = course.String
	return d, nil
}

/* -------------------- CARDS -------------------- */

func (s *Store) AddCard(c models.Flashcard) error {
	_, err := s.db.Exec(`
		INSERT INTO cards (id, deck_id, front, back, repetition, interval_days, ease_factor, due_date, last_reviewed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID.String(), c.DeckID.String(), c.Front, c.Back,
		c.Repetition, c.IntervalDays, c.EaseFactor, c.DueDate, c.LastReviewed, c.CreatedAt)
	return err
}

// UpdateCard persists the scheduling fields after a review.
// Updating a card that is not in the store is ErrNotFound.
func (s *Store) UpdateCard(c models.Flashcard) error {
	res, err := s.db.Exec(`
		UPDATE cards
		SET repetition=?, interval_days=?, ease_factor=?, due_date=?, last_reviewed=?
		WHERE id=?`,
		c.Repetition, c.IntervalDays, c.EaseFactor, c.DueDate, c.LastReviewed, c.ID.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (s *Store) ListCards(deckID uuid.UUID) ([]models.Flashcard, error) {
	return s.queryCards(`
		SELECT id, deck_id, front, back, repetition, interval_days, ease_factor, due_date, last_reviewed, created_at
		FROM cards WHERE deck_id = ? ORDER BY created_at ASC, rowid ASC`, deckID.String())
}

// DueCards returns the deck's cards with due_date <= now, most overdue
// first; cards due at the same instant keep insertion order.
func (s *Store) DueCards(deckID uuid.UUID, now time.Time) ([]models.Flashcard, error) {
	return s.queryCards(`
		SELECT id, deck_id, front, back, repetition, interval_days, ease_factor, due_date, last_reviewed, created_at
		FROM cards WHERE deck_id = ? AND due_date <= ?
		ORDER BY due_date ASC, created_at ASC, rowid ASC`, deckID.String(), now)
}

func (s *Store) queryCards(query string, args ...any) ([]models.Flashcard, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []models.Flashcard
	for rows.Next() {
		var c models.Flashcard
		var id, deckID string
		var lastReviewed sql.NullTime
		if err := rows.Scan(&id, &deckID, &c.Front, &c.Back,
			&c.Repetition, &c.IntervalDays, &c.EaseFactor, &c.DueDate, &lastReviewed, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.ID, _ = uuid.Parse(id)
		c.DeckID, _ = uuid.Parse(deckID)
		if lastReviewed.Valid {
			t := lastReviewed.Time
			c.LastReviewed = &t
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

/* -------------------- REVIEWS -------------------- */

func (s *Store) AddReview(r models.Review) error {
	_, err := s.db.Exec(`
		INSERT INTO reviews (card_id, grade, reviewed_at, interval_snapshot, ease_factor_snapshot)
		VALUES (?, ?, ?, ?, ?)`,
		r.CardID.String(), r.Grade, r.ReviewedAt, r.IntervalDays, r.EaseFactor)
	return err
}

func (s *Store) GetReviewStats() (*models.ReviewStats, error) {
	stats := &models.ReviewStats{CountByGrade: make(map[int]int)}

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM reviews`).Scan(&stats.TotalReviews); err != nil {
		return nil, err
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM reviews WHERE reviewed_at > date('now', '-7 days')`).Scan(&stats.ReviewsLast7Days); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT grade, COUNT(*) FROM reviews GROUP BY grade`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var grade, count int
		if err := rows.Scan(&grade, &count); err == nil {
			stats.CountByGrade[grade] = count
		}
	}
	return stats, rows.Err()
}

/* -------------------- ASSIGNMENTS -------------------- */

func (s *Store) AddAssignment(a models.Assignment) error {
	_, err := s.db.Exec(`
		INSERT INTO assignments (id, course, title, due_date, estimated_minutes, weight_percent, category, urgency, locked, completed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID.String(), a.Course, a.Title, a.DueDate, a.EstimatedMinutes,
		a.WeightPercent, string(a.Category), string(a.Urgency), a.Locked, a.CompletedAt, a.CreatedAt)
	return err
}

// ListAssignments returns assignments ordered by due date. With pendingOnly
// set, completed and already-due items are filtered out here so the planner
// only ever sees work that can still be scheduled.
func (s *Store) ListAssignments(pendingOnly bool, now time.Time) ([]models.Assignment, error) {
	query := `
		SELECT id, course, title, due_date, estimated_minutes, weight_percent, category, urgency, locked, completed_at, created_at
		FROM assignments`
	args := []any{}
	if pendingOnly {
		query += ` WHERE completed_at IS NULL AND due_date > ?`
		args = append(args, now)
	}
	query += ` ORDER BY due_date ASC, created_at ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// FindAssignmentByPrefix resolves a (possibly shortened) assignment id as
// printed by the list command. Ambiguous prefixes are an error.
func (s *Store) FindAssignmentByPrefix(prefix string) (*models.Assignment, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	rows, err := s.db.Query(`
		SELECT id, course, title, due_date, estimated_minutes, weight_percent, category, urgency, locked, completed_at, created_at
		FROM assignments WHERE id LIKE ?`, prefix+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []models.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("assignment %q: %w", prefix, ErrNotFound)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("assignment id %q is ambiguous (%d matches)", prefix, len(matches))
	}
}

func (s *Store) CompleteAssignment(id uuid.UUID, when time.Time) error {
	res, err := s.db.Exec(`UPDATE assignments SET completed_at = ? WHERE id = ?`, when, id.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (s *Store) DeleteAssignment(id uuid.UUID) error {
	res, err := s.db.Exec(`DELETE FROM assignments WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanAssignment(row rowScanner) (models.Assignment, error) {
	var a models.Assignment
	var id string
	var course sql.NullString
	var weight sql.NullFloat64
	var category, urgency string
	var completed sql.NullTime
	if err := row.Scan(&id, &course, &a.Title, &a.DueDate, &a.EstimatedMinutes,
		&weight, &category, &urgency, &a.Locked, &completed, &a.CreatedAt); err != nil {
		return a, err
	}
	a.ID, _ = uuid.Parse(id)
	a.Course = course.String
	if weight.Valid {
		w := weight.Float64
		a.WeightPercent = &w
	}
	a.Category = models.Category(category)
	a.Urgency = models.Urgency(urgency)
	if completed.Valid {
		t := completed.Time
		a.CompletedAt = &t
	}
	return a, nil
}

/* -------------------- PLAN -------------------- */

// SavePlan replaces the stored plan wholesale. The engine is stateless, so
// each scheduling run owns the full picture; keeping stale rows around would
// just confuse the agenda.
func (s *Store) SavePlan(scheduled []models.PlacedSession, overflow []models.StudySession) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM plan_sessions`); err != nil {
		return err
	}

	for _, p := range scheduled {
		if _, err := tx.Exec(`
			INSERT INTO plan_sessions (assignment_id, session_index, minutes, start, end, overflow)
			VALUES (?, ?, ?, ?, ?, 0)`,
			p.AssignmentID.String(), p.Index, p.Minutes, p.Start, p.End); err != nil {
			return err
		}
	}
	for _, o := range overflow {
		if _, err := tx.Exec(`
			INSERT INTO plan_sessions (assignment_id, session_index, minutes, overflow)
			VALUES (?, ?, ?, 1)`,
			o.AssignmentID.String(), o.Index, o.Minutes); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadPlan reads back the stored plan, joining assignments for display
// fields. Overflow rows come back without start/end.
func (s *Store) LoadPlan() ([]models.PlacedSession, []models.StudySession, error) {
	rows, err := s.db.Query(`
		SELECT p.assignment_id, p.session_index, p.minutes, p.start, p.end, p.overflow,
		       a.title, a.due_date, a.category, a.urgency, a.locked
		FROM plan_sessions p
		JOIN assignments a ON a.id = p.assignment_id
		ORDER BY p.overflow ASC, p.start ASC, p.assignment_id ASC, p.session_index ASC`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var scheduled []models.PlacedSession
	var overflow []models.StudySession
	for rows.Next() {
		var sess models.StudySession
		var id, category, urgency string
		var start, end sql.NullTime
		var isOverflow bool
		if err := rows.Scan(&id, &sess.Index, &sess.Minutes, &start, &end, &isOverflow,
			&sess.Title, &sess.DueDate, &category, &urgency, &sess.Locked); err != nil {
			return nil, nil, err
		}
		sess.AssignmentID, _ = uuid.Parse(id)
		sess.Category = models.Category(category)
		sess.Urgency = models.Urgency(urgency)

		if isOverflow {
			overflow = append(overflow, sess)
			continue
		}
		scheduled = append(scheduled, models.PlacedSession{
			StudySession: sess,
			Start:        start.Time,
			End:          end.Time,
		})
	}
	return scheduled, overflow, rows.Err()
}

/* -------------------- HELPERS -------------------- */

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
