package repository

import (
	"context"
	"database/sql"
)

// BankIdentifier mirrors the 'payment_verification' table: static lookup
// data mapping a card number's first two digits to an issuing bank. Only
// the (bank, firstTwoDigits) pair is unique; either half alone may match
// several rows. The mapping is display/validation data and is not
// enforced against payment_methods.
type BankIdentifier struct {
	Bank           string
	FirstTwoDigits string
}

type BankIdentifierRepo struct{ DB *sql.DB }

func NewBankIdentifierRepo(db *sql.DB) *BankIdentifierRepo {
	return &BankIdentifierRepo{DB: db}
}

// Add inserts a lookup row. Returns ErrConstraint on a duplicate
// (bank, firstTwoDigits) pair.
func (r *BankIdentifierRepo) Add(ctx context.Context, bank, firstTwoDigits string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO "+bankLookupTable+" (bank, firstTwoDigits) VALUES (?, ?)",
		bank, firstTwoDigits)
	if err != nil {
		if constraintErr(err) {
			return ErrConstraint
		}
		return err
	}
	return nil
}

// ByBank returns every digit prefix registered for one bank.
func (r *BankIdentifierRepo) ByBank(ctx context.Context, bank string) ([]BankIdentifier, error) {
	return r.queryIdentifiers(ctx,
		"SELECT bank, firstTwoDigits FROM "+bankLookupTable+" WHERE bank = ?", bank)
}

// ByFirstTwoDigits returns every bank registered for one digit prefix.
func (r *BankIdentifierRepo) ByFirstTwoDigits(ctx context.Context, digits string) ([]BankIdentifier, error) {
	return r.queryIdentifiers(ctx,
		"SELECT bank, firstTwoDigits FROM "+bankLookupTable+" WHERE firstTwoDigits = ?", digits)
}

// All returns the entire lookup table.
func (r *BankIdentifierRepo) All(ctx context.Context) ([]BankIdentifier, error) {
	return r.queryIdentifiers(ctx,
		"SELECT bank, firstTwoDigits FROM "+bankLookupTable)
}

// Update repoints the digits half of the key for one (bank, oldDigits)
// row.
func (r *BankIdentifierRepo) Update(ctx context.Context, bank, oldDigits, newDigits string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE "+bankLookupTable+" SET firstTwoDigits = ? WHERE bank = ? AND firstTwoDigits = ?",
		newDigits, bank, oldDigits)
	if err != nil && constraintErr(err) {
		return ErrConstraint
	}
	return err
}

// Delete removes a lookup row by composite key.
func (r *BankIdentifierRepo) Delete(ctx context.Context, bank, digits string) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM "+bankLookupTable+" WHERE bank = ? AND firstTwoDigits = ?",
		bank, digits)
	return err
}

func (r *BankIdentifierRepo) queryIdentifiers(ctx context.Context, q string, args ...any) ([]BankIdentifier, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var identifiers []BankIdentifier
	for rows.Next() {
		var b BankIdentifier
		if err := rows.Scan(&b.Bank, &b.FirstTwoDigits); err != nil {
			return nil, err
		}
		identifiers = append(identifiers, b)
	}
	return identifiers, rows.Err()
}
