package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Account mirrors the 'account_entries' table. Password is stored
// verbatim; hardening it is out of scope for this store.
type Account struct {
	DisplayName string
	UserID      string
	Password    string
}

type AccountRepo struct{ DB *sql.DB }

func NewAccountRepo(db *sql.DB) *AccountRepo { return &AccountRepo{DB: db} }

// Create inserts a new account. Returns ErrConstraint when the userId is
// already taken.
func (r *AccountRepo) Create(ctx context.Context, a *Account) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO "+accountsTable+" (name, userId, password) VALUES (?, ?, ?)",
		a.DisplayName, a.UserID, a.Password)
	if err != nil {
		if constraintErr(err) {
			return ErrConstraint
		}
		return err
	}
	return nil
}

// Get fetches an account by userId. Returns ErrNotFound when no such
// account exists; absence is a normal outcome for callers.
func (r *AccountRepo) Get(ctx context.Context, userID string) (Account, error) {
	var a Account
	err := r.DB.QueryRowContext(ctx,
		"SELECT name, userId, password FROM "+accountsTable+" WHERE userId = ?",
		userID).Scan(&a.DisplayName, &a.UserID, &a.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return Account{}, ErrNotFound
	}
	return a, err
}

// List returns all accounts in unspecified order.
func (r *AccountRepo) List(ctx context.Context) ([]Account, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT name, userId, password FROM "+accountsTable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var accounts []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.DisplayName, &a.UserID, &a.Password); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// Update replaces the display name and password for the given userId. A
// missing row is not reported; only execution failures are.
func (r *AccountRepo) Update(ctx context.Context, a *Account) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE "+accountsTable+" SET name = ?, password = ? WHERE userId = ?",
		a.DisplayName, a.Password, a.UserID)
	return err
}

// Delete removes the account. Listings, purchases (as buyer or seller)
// and payment methods owned by the user go with it via cascade.
func (r *AccountRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM "+accountsTable+" WHERE userId = ?", userID)
	return err
}
