package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/travisng02005/3310-Project/internal/repository"
)

func TestShowCreateAssignsID(t *testing.T) {
	db := openTestDB(t, false)

	first := mustCreateShow(t, db, "Jazz Night", "2026-02-01", "21:00")
	second := mustCreateShow(t, db, "Rock Band Live", "2026-01-15", "20:30")
	if first.ShowID == 0 {
		t.Error("first show got zero id")
	}
	if second.ShowID == first.ShowID {
		t.Errorf("second show reused id %d", first.ShowID)
	}
}

func TestShowDuplicateEvent(t *testing.T) {
	db := openTestDB(t, false)
	ctx := context.Background()
	repo := repository.NewShowRepo(db)

	mustCreateShow(t, db, "Jazz Night", "2026-02-01", "21:00")

	dup := repository.Show{Event: "Jazz Night", Date: "2026-03-01", Time: "22:00"}
	if err := repo.Create(ctx, &dup); !errors.Is(err, repository.ErrConstraint) {
		t.Errorf("Create duplicate event: err = %v, want ErrConstraint", err)
	}
}

func TestShowLookups(t *testing.T) {
	db := openTestDB(t, false)
	ctx := context.Background()
	repo := repository.NewShowRepo(db)

	created := mustCreateShow(t, db, "Jazz Night", "2026-02-01", "21:00")

	byID, err := repo.GetByID(ctx, created.ShowID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID != created {
		t.Errorf("GetByID = %+v, want %+v", byID, created)
	}

	byEvent, err := repo.GetByEvent(ctx, "Jazz Night")
	if err != nil {
		t.Fatalf("GetByEvent: %v", err)
	}
	if byEvent != created {
		t.Errorf("GetByEvent = %+v, want %+v", byEvent, created)
	}

	if _, err := repo.GetByID(ctx, created.ShowID+100); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetByID missing: err = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetByEvent(ctx, "No Such Event"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetByEvent missing: err = %v, want ErrNotFound", err)
	}
}

func TestShowSearchIsCaseInsensitiveContains(t *testing.T) {
	db := openTestDB(t, true)
	ctx := context.Background()
	repo := repository.NewShowRepo(db)

	tests := []struct {
		query string
		want  []string
	}{
		{"JAZZ", []string{"Jazz Night"}},
		{"swift", []string{"Taylor Swift Tour"}},
		{"o", []string{"Coldplay Concert", "Taylor Swift Tour", "Local Music Festival", "Rock Band Live"}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		got, err := repo.Search(ctx, tt.query)
		if err != nil {
			t.Fatalf("Search(%q): %v", tt.query, err)
		}
		if len(got) != len(tt.want) {
			t.Errorf("Search(%q) returned %d shows, want %d", tt.query, len(got), len(tt.want))
			continue
		}
		// Result order is unspecified; match as a set.
		events := make(map[string]bool, len(got))
		for _, s := range got {
			events[s.Event] = true
		}
		for _, want := range tt.want {
			if !events[want] {
				t.Errorf("Search(%q) missing %q", tt.query, want)
			}
		}
	}
}

func TestShowUpdateRenameCascadesToPurchases(t *testing.T) {
	db := openTestDB(t, false)
	ctx := context.Background()
	repo := repository.NewShowRepo(db)

	mustCreateAccount(t, db, "seller", "Seller")
	mustCreateAccount(t, db, "buyer", "Buyer")
	show := mustCreateShow(t, db, "Jazz Night", "2026-02-01", "21:00")

	purchases := repository.NewPurchaseRepo(db)
	err := purchases.Create(ctx, &repository.Purchase{
		ID:       1,
		SellerID: "seller",
		Event:    "Jazz Night",
		Price:    decimal.NewFromInt(45),
		BuyerID:  "buyer",
	})
	if err != nil {
		t.Fatalf("Create purchase: %v", err)
	}

	show.Event = "Jazz Evening"
	show.Time = "20:00"
	if err := repo.Update(ctx, &show); err != nil {
		t.Fatalf("Update: %v", err)
	}

	bought, err := purchases.ByBuyer(ctx, "buyer")
	if err != nil {
		t.Fatalf("ByBuyer: %v", err)
	}
	if len(bought) != 1 {
		t.Fatalf("purchases after rename = %d, want 1", len(bought))
	}
	if bought[0].Event != "Jazz Evening" {
		t.Errorf("purchase event after rename = %q, want %q", bought[0].Event, "Jazz Evening")
	}
}

func TestShowDeleteCascadesToPurchases(t *testing.T) {
	db := openTestDB(t, false)
	ctx := context.Background()
	repo := repository.NewShowRepo(db)

	mustCreateAccount(t, db, "seller", "Seller")
	mustCreateAccount(t, db, "buyer", "Buyer")
	show := mustCreateShow(t, db, "Jazz Night", "2026-02-01", "21:00")

	purchases := repository.NewPurchaseRepo(db)
	err := purchases.Create(ctx, &repository.Purchase{
		ID:       1,
		SellerID: "seller",
		Event:    "Jazz Night",
		Price:    decimal.NewFromInt(45),
		BuyerID:  "buyer",
	})
	if err != nil {
		t.Fatalf("Create purchase: %v", err)
	}

	if err := repo.Delete(ctx, show.ShowID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	all, err := purchases.All(ctx)
	if err != nil {
		t.Fatalf("All purchases: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("purchases after show delete = %d, want 0", len(all))
	}
}
