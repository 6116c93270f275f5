package repository

import (
	"context"
	"database/sql"
	"errors"
)

// PaymentMethod mirrors the 'payment_methods' table. The card number
// alone is the primary key, so two accounts can never register the same
// number — a modeling wart inherited from the schema, kept for fidelity.
// Card data is stored in plaintext; securing it is out of scope.
type PaymentMethod struct {
	OwnerID      string
	CardNumber   string
	Expiry       string
	SecurityCode string
}

type PaymentMethodRepo struct{ DB *sql.DB }

func NewPaymentMethodRepo(db *sql.DB) *PaymentMethodRepo {
	return &PaymentMethodRepo{DB: db}
}

// Add inserts a card. Returns ErrConstraint on a duplicate card number or
// when the owner account does not exist.
func (r *PaymentMethodRepo) Add(ctx context.Context, m *PaymentMethod) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO "+paymentsTable+" (userId, cardNumber, expiry, cvv) VALUES (?, ?, ?, ?)",
		m.OwnerID, m.CardNumber, m.Expiry, m.SecurityCode)
	if err != nil {
		if constraintErr(err) {
			return ErrConstraint
		}
		return err
	}
	return nil
}

// ByUser returns all cards registered to one account.
func (r *PaymentMethodRepo) ByUser(ctx context.Context, userID string) ([]PaymentMethod, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT userId, cardNumber, expiry, cvv FROM "+paymentsTable+" WHERE userId = ?",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var methods []PaymentMethod
	for rows.Next() {
		var m PaymentMethod
		if err := rows.Scan(&m.OwnerID, &m.CardNumber, &m.Expiry, &m.SecurityCode); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

// ByCard fetches a single card by number.
func (r *PaymentMethodRepo) ByCard(ctx context.Context, cardNumber string) (PaymentMethod, error) {
	var m PaymentMethod
	err := r.DB.QueryRowContext(ctx,
		"SELECT userId, cardNumber, expiry, cvv FROM "+paymentsTable+" WHERE cardNumber = ?",
		cardNumber).Scan(&m.OwnerID, &m.CardNumber, &m.Expiry, &m.SecurityCode)
	if errors.Is(err, sql.ErrNoRows) {
		return PaymentMethod{}, ErrNotFound
	}
	return m, err
}

// Update replaces expiry and security code only, keyed by card number.
// The card number and owner are immutable.
func (r *PaymentMethodRepo) Update(ctx context.Context, m *PaymentMethod) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE "+paymentsTable+" SET expiry = ?, cvv = ? WHERE cardNumber = ?",
		m.Expiry, m.SecurityCode, m.CardNumber)
	return err
}

// Delete removes a card by primary key.
func (r *PaymentMethodRepo) Delete(ctx context.Context, cardNumber string) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM "+paymentsTable+" WHERE cardNumber = ?", cardNumber)
	return err
}
