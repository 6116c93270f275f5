package repository

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
)

// Purchase mirrors the 'purchased_tickets' table: a completed transaction
// snapshot copied from a listing at purchase time. It is keyed by
// (buyerId, id), so multiple buyers may each hold a record carrying the
// same underlying listing id. Later edits to the listing never touch
// these rows.
type Purchase struct {
	ID          int64
	SellerID    string
	Event       string
	Price       decimal.Decimal
	Description string
	BuyerID     string
}

type PurchaseRepo struct{ DB *sql.DB }

func NewPurchaseRepo(db *sql.DB) *PurchaseRepo { return &PurchaseRepo{DB: db} }

// Create inserts a snapshot record. Returns ErrConstraint when the
// (buyerId, id) pair already exists or when buyer, seller, or event do
// not reference existing rows.
func (r *PurchaseRepo) Create(ctx context.Context, p *Purchase) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO "+purchasesTable+" (id, userId, event, price, description, buyerId) VALUES (?, ?, ?, ?, ?, ?)",
		p.ID, p.SellerID, p.Event, p.Price, p.Description, p.BuyerID)
	if err != nil {
		if constraintErr(err) {
			return ErrConstraint
		}
		return err
	}
	return nil
}

// ByBuyer returns all purchases held by one buyer.
func (r *PurchaseRepo) ByBuyer(ctx context.Context, buyerID string) ([]Purchase, error) {
	return r.queryPurchases(ctx,
		"SELECT id, userId, event, price, description, buyerId FROM "+purchasesTable+" WHERE buyerId = ?",
		buyerID)
}

// All returns every purchase record.
func (r *PurchaseRepo) All(ctx context.Context) ([]Purchase, error) {
	return r.queryPurchases(ctx,
		"SELECT id, userId, event, price, description, buyerId FROM "+purchasesTable)
}

// Delete removes a purchase by its composite key.
func (r *PurchaseRepo) Delete(ctx context.Context, buyerID string, id int64) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM "+purchasesTable+" WHERE buyerId = ? AND id = ?",
		buyerID, id)
	return err
}

func (r *PurchaseRepo) queryPurchases(ctx context.Context, q string, args ...any) ([]Purchase, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var purchases []Purchase
	for rows.Next() {
		var p Purchase
		var desc sql.NullString
		if err := rows.Scan(&p.ID, &p.SellerID, &p.Event, &p.Price, &desc, &p.BuyerID); err != nil {
			return nil, err
		}
		p.Description = desc.String
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}
