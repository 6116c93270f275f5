package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Table names kept from the original store so an existing database file
// stays readable across versions.
const (
	accountsTable   = "account_entries"
	showsTable      = "upcoming_shows"
	ticketsTable    = "ticket_entries"
	purchasesTable  = "purchased_tickets"
	paymentsTable   = "payment_methods"
	bankLookupTable = "payment_verification"
)

const createAccountsSQL = `
CREATE TABLE IF NOT EXISTS ` + accountsTable + ` (
	name TEXT NOT NULL,
	userId TEXT PRIMARY KEY,
	password TEXT NOT NULL
);`

const createShowsSQL = `
CREATE TABLE IF NOT EXISTS ` + showsTable + ` (
	showId INTEGER PRIMARY KEY AUTOINCREMENT,
	event TEXT NOT NULL UNIQUE,
	date TEXT NOT NULL,
	time TEXT NOT NULL
);`

// price is NUMERIC, not INTEGER: values are written as fixed-point
// decimals and must round-trip without float conversion.
const createTicketsSQL = `
CREATE TABLE IF NOT EXISTS ` + ticketsTable + ` (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	userId TEXT NOT NULL,
	name TEXT NOT NULL,
	price NUMERIC NOT NULL,
	description TEXT,
	FOREIGN KEY (userId) REFERENCES ` + accountsTable + `(userId)
		ON DELETE CASCADE
		ON UPDATE CASCADE
);`

const createPurchasesSQL = `
CREATE TABLE IF NOT EXISTS ` + purchasesTable + ` (
	id INTEGER NOT NULL,
	userId TEXT NOT NULL,
	event TEXT NOT NULL,
	price NUMERIC NOT NULL,
	description TEXT,
	buyerId TEXT NOT NULL,
	PRIMARY KEY (buyerId, id),
	FOREIGN KEY (userId) REFERENCES ` + accountsTable + `(userId)
		ON DELETE CASCADE
		ON UPDATE CASCADE,
	FOREIGN KEY (event) REFERENCES ` + showsTable + `(event)
		ON DELETE CASCADE
		ON UPDATE CASCADE,
	FOREIGN KEY (buyerId) REFERENCES ` + accountsTable + `(userId)
		ON DELETE CASCADE
		ON UPDATE CASCADE
);`

const createPaymentsSQL = `
CREATE TABLE IF NOT EXISTS ` + paymentsTable + ` (
	userId TEXT NOT NULL,
	cardNumber TEXT PRIMARY KEY,
	expiry TEXT NOT NULL,
	cvv TEXT NOT NULL,
	FOREIGN KEY (userId) REFERENCES ` + accountsTable + `(userId)
		ON DELETE CASCADE
		ON UPDATE CASCADE
);`

const createBankLookupSQL = `
CREATE TABLE IF NOT EXISTS ` + bankLookupTable + ` (
	bank TEXT NOT NULL,
	firstTwoDigits TEXT NOT NULL,
	PRIMARY KEY (bank, firstTwoDigits)
);`

// createStatements are ordered so referenced tables exist before their
// dependents.
var createStatements = []string{
	createAccountsSQL,
	createShowsSQL,
	createTicketsSQL,
	createPurchasesSQL,
	createPaymentsSQL,
	createBankLookupSQL,
}

// dropStatements reverse the dependency order: dependents before referents.
var dropStatements = []string{
	"DROP TABLE IF EXISTS " + purchasesTable,
	"DROP TABLE IF EXISTS " + paymentsTable,
	"DROP TABLE IF EXISTS " + bankLookupTable,
	"DROP TABLE IF EXISTS " + ticketsTable,
	"DROP TABLE IF EXISTS " + showsTable,
	"DROP TABLE IF EXISTS " + accountsTable,
}

// Initialize creates all six tables if absent. Safe to call on every
// startup. When seed is true and the schema did not exist before this
// call, the sample data set is inserted so the application is usable
// without manual setup.
func Initialize(ctx context.Context, db *sql.DB, seed bool) error {
	fresh, err := missingSchema(ctx, db)
	if err != nil {
		return err
	}
	for _, stmt := range createStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	if seed && fresh {
		return insertSampleData(ctx, db)
	}
	return nil
}

// Reset drops every table and recreates the schema empty, reseeding when
// seed is true. Data loss is expected; this is the schema-version-bump
// path.
func Reset(ctx context.Context, db *sql.DB, seed bool) error {
	for _, stmt := range dropStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	for _, stmt := range createStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	if seed {
		return insertSampleData(ctx, db)
	}
	return nil
}

func missingSchema(ctx context.Context, db *sql.DB) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?",
		accountsTable).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("probe schema: %w", err)
	}
	return n == 0, nil
}
