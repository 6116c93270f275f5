package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// Show mirrors the 'upcoming_shows' table. The event name is globally
// unique and doubles as the natural key purchases reference.
// Date and Time are stored as the display strings the application uses
// ("2025-12-15", "19:00").
type Show struct {
	ShowID int64
	Event  string
	Date   string
	Time   string
}

type ShowRepo struct{ DB *sql.DB }

func NewShowRepo(db *sql.DB) *ShowRepo { return &ShowRepo{DB: db} }

// Create inserts a new show and assigns the generated showId back to s.
// Returns ErrConstraint when the event name already exists.
func (r *ShowRepo) Create(ctx context.Context, s *Show) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO "+showsTable+" (event, date, time) VALUES (?, ?, ?)",
		s.Event, s.Date, s.Time)
	if err != nil {
		if constraintErr(err) {
			return ErrConstraint
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ShowID = id
	return nil
}

// GetByID fetches a show by its surrogate key.
func (r *ShowRepo) GetByID(ctx context.Context, showID int64) (Show, error) {
	var s Show
	err := r.DB.QueryRowContext(ctx,
		"SELECT showId, event, date, time FROM "+showsTable+" WHERE showId = ?",
		showID).Scan(&s.ShowID, &s.Event, &s.Date, &s.Time)
	if errors.Is(err, sql.ErrNoRows) {
		return Show{}, ErrNotFound
	}
	return s, err
}

// GetByEvent fetches a show by its unique event name.
func (r *ShowRepo) GetByEvent(ctx context.Context, event string) (Show, error) {
	var s Show
	err := r.DB.QueryRowContext(ctx,
		"SELECT showId, event, date, time FROM "+showsTable+" WHERE event = ?",
		event).Scan(&s.ShowID, &s.Event, &s.Date, &s.Time)
	if errors.Is(err, sql.ErrNoRows) {
		return Show{}, ErrNotFound
	}
	return s, err
}

// List returns all upcoming shows.
func (r *ShowRepo) List(ctx context.Context) ([]Show, error) {
	return r.queryShows(ctx,
		"SELECT showId, event, date, time FROM "+showsTable)
}

// Search returns shows whose event name contains query, matched
// case-insensitively and unanchored.
func (r *ShowRepo) Search(ctx context.Context, query string) ([]Show, error) {
	return r.queryShows(ctx,
		"SELECT showId, event, date, time FROM "+showsTable+" WHERE LOWER(event) LIKE ?",
		"%"+strings.ToLower(query)+"%")
}

// Update replaces all mutable fields by showId. Renaming the event
// cascades into purchase rows that reference the old name.
func (r *ShowRepo) Update(ctx context.Context, s *Show) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE "+showsTable+" SET event = ?, date = ?, time = ? WHERE showId = ?",
		s.Event, s.Date, s.Time, s.ShowID)
	if err != nil && constraintErr(err) {
		return ErrConstraint
	}
	return err
}

// Delete removes the show; dependent purchase rows cascade away.
func (r *ShowRepo) Delete(ctx context.Context, showID int64) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM "+showsTable+" WHERE showId = ?", showID)
	return err
}

func (r *ShowRepo) queryShows(ctx context.Context, q string, args ...any) ([]Show, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var shows []Show
	for rows.Next() {
		var s Show
		if err := rows.Scan(&s.ShowID, &s.Event, &s.Date, &s.Time); err != nil {
			return nil, err
		}
		shows = append(shows, s)
	}
	return shows, rows.Err()
}
