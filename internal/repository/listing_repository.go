package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/shopspring/decimal"
)

// Listing mirrors the 'ticket_entries' table: a ticket offered for sale
// by a seller. Name carries the event name but is deliberately not a
// foreign key into upcoming_shows; the UI validates that relationship
// before calling the store.
type Listing struct {
	ID          int64
	SellerID    string
	Name        string
	Price       decimal.Decimal
	Description string
}

type ListingRepo struct{ DB *sql.DB }

func NewListingRepo(db *sql.DB) *ListingRepo { return &ListingRepo{DB: db} }

// Create inserts a listing and assigns the generated id back to l.
// Returns ErrConstraint when the seller account does not exist.
func (r *ListingRepo) Create(ctx context.Context, l *Listing) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO "+ticketsTable+" (userId, name, price, description) VALUES (?, ?, ?, ?)",
		l.SellerID, l.Name, l.Price, l.Description)
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
	l.ID = id
	return nil
}

// All returns every listing currently in the pool.
func (r *ListingRepo) All(ctx context.Context) ([]Listing, error) {
	return r.queryListings(ctx,
		"SELECT id, userId, name, price, description FROM "+ticketsTable)
}

// BySeller returns the listings posted by one seller.
func (r *ListingRepo) BySeller(ctx context.Context, sellerID string) ([]Listing, error) {
	return r.queryListings(ctx,
		"SELECT id, userId, name, price, description FROM "+ticketsTable+" WHERE userId = ?",
		sellerID)
}

// Search returns one seller's listings whose name or description contains
// query (case-insensitive), most recent first.
func (r *ListingRepo) Search(ctx context.Context, sellerID, query string) ([]Listing, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	return r.queryListings(ctx,
		"SELECT id, userId, name, price, description FROM "+ticketsTable+
			" WHERE userId = ? AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)"+
			" ORDER BY id DESC",
		sellerID, pattern, pattern)
}

// Update replaces name, description and price by id. Purchase snapshots
// taken from this listing are unaffected.
func (r *ListingRepo) Update(ctx context.Context, l *Listing) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE "+ticketsTable+" SET name = ?, description = ?, price = ? WHERE id = ?",
		l.Name, l.Description, l.Price, l.ID)
	return err
}

// Delete removes a listing by primary key.
func (r *ListingRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM "+ticketsTable+" WHERE id = ?", id)
	return err
}

func (r *ListingRepo) queryListings(ctx context.Context, q string, args ...any) ([]Listing, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var listings []Listing
	for rows.Next() {
		var l Listing
		var desc sql.NullString
		if err := rows.Scan(&l.ID, &l.SellerID, &l.Name, &l.Price, &desc); err != nil {
			return nil, err
		}
		l.Description = desc.String
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
