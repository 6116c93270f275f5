package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/travisng02005/3310-Project/internal/database"
	"github.com/travisng02005/3310-Project/internal/repository"
)

// openTestDB creates a schema-initialized database backed by a temporary
// file. The handle is closed automatically when the test completes.
func openTestDB(t *testing.T, seed bool) *sql.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})

	if err := repository.Initialize(context.Background(), db, seed); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return db
}

// mustCreateAccount inserts an account the test depends on.
func mustCreateAccount(t *testing.T, db *sql.DB, userID, name string) {
	t.Helper()
	a := repository.Account{DisplayName: name, UserID: userID, Password: "password123"}
	if err := repository.NewAccountRepo(db).Create(context.Background(), &a); err != nil {
		t.Fatalf("create account %s: %v", userID, err)
	}
}

// mustCreateShow inserts a show and returns it with its assigned id.
func mustCreateShow(t *testing.T, db *sql.DB, event, date, time string) repository.Show {
	t.Helper()
	s := repository.Show{Event: event, Date: date, Time: time}
	if err := repository.NewShowRepo(db).Create(context.Background(), &s); err != nil {
		t.Fatalf("create show %s: %v", event, err)
	}
	return s
}

// mustCreateListing inserts a listing and returns it with its assigned id.
func mustCreateListing(t *testing.T, db *sql.DB, sellerID, name string, price int64, description string) repository.Listing {
	t.Helper()
	l := repository.Listing{
		SellerID:    sellerID,
		Name:        name,
		Price:       decimal.NewFromInt(price),
		Description: description,
	}
	if err := repository.NewListingRepo(db).Create(context.Background(), &l); err != nil {
		t.Fatalf("create listing %s: %v", name, err)
	}
	return l
}
