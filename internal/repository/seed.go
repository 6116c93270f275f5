package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Sample rows inserted on first creation. Shows must go in before the
// listings that name them, and accounts before everything that references
// a userId.
var (
	seedAccounts = []Account{
		{DisplayName: "John Doe", UserID: "john_doe", Password: "password123"},
		{DisplayName: "Jane Smith", UserID: "jane_smith", Password: "password123"},
		{DisplayName: "Mike Johnson", UserID: "music_lover", Password: "password123"},
		{DisplayName: "Jessica Nguyen", UserID: "jessicanguyen", Password: "password124"},
	}

	seedShows = []Show{
		{Event: "Coldplay Concert", Date: "2025-12-15", Time: "19:00"},
		{Event: "Taylor Swift Tour", Date: "2025-12-20", Time: "20:00"},
		{Event: "Local Music Festival", Date: "2026-01-05", Time: "18:00"},
		{Event: "Rock Band Live", Date: "2026-01-15", Time: "20:30"},
		{Event: "Jazz Night", Date: "2026-02-01", Time: "21:00"},
	}

	// name, description, price, sellerId
	seedListings = []struct {
		name, description string
		price             int64
		sellerID          string
	}{
		{"Coldplay Concert", "Amazing night with Coldplay live in concert", 120, "john_doe"},
		{"Taylor Swift Tour", "Eras Tour - Best seats available", 250, "jane_smith"},
		{"Local Music Festival", "Weekend pass for all stages", 75, "music_lover"},
		{"Rock Band Live", "Greatest rock hits live performance", 90, "jessicanguyen"},
		{"Jazz Night", "Smooth jazz evening with local artists", 45, "jessicanguyen"},
	}

	seedBankIdentifiers = []BankIdentifier{
		{Bank: "Chase", FirstTwoDigits: "40"},
		{Bank: "Bank of America", FirstTwoDigits: "45"},
		{Bank: "Wells Fargo", FirstTwoDigits: "47"},
		{Bank: "Citibank", FirstTwoDigits: "52"},
		{Bank: "Capital One", FirstTwoDigits: "55"},
	}
)

func insertSampleData(ctx context.Context, db *sql.DB) error {
	for _, a := range seedAccounts {
		if _, err := db.ExecContext(ctx,
			"INSERT INTO "+accountsTable+" (name, userId, password) VALUES (?, ?, ?)",
			a.DisplayName, a.UserID, a.Password); err != nil {
			return fmt.Errorf("seed account %s: %w", a.UserID, err)
		}
	}
	for _, s := range seedShows {
		if _, err := db.ExecContext(ctx,
			"INSERT INTO "+showsTable+" (event, date, time) VALUES (?, ?, ?)",
			s.Event, s.Date, s.Time); err != nil {
			return fmt.Errorf("seed show %s: %w", s.Event, err)
		}
	}
	for _, l := range seedListings {
		if _, err := db.ExecContext(ctx,
			"INSERT INTO "+ticketsTable+" (name, description, price, userId) VALUES (?, ?, ?, ?)",
			l.name, l.description, l.price, l.sellerID); err != nil {
			return fmt.Errorf("seed listing %s: %w", l.name, err)
		}
	}
	for _, b := range seedBankIdentifiers {
		if _, err := db.ExecContext(ctx,
			"INSERT INTO "+bankLookupTable+" (bank, firstTwoDigits) VALUES (?, ?)",
			b.Bank, b.FirstTwoDigits); err != nil {
			return fmt.Errorf("seed bank identifier %s: %w", b.Bank, err)
		}
	}
	return nil
}
