package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/travisng02005/3310-Project/internal/repository"
)

// purchaseFixture sets up a seller, two buyers, a show, and one listing.
func purchaseFixture(t *testing.T) (*sql.DB, repository.Listing) {
	t.Helper()
	db := openTestDB(t, false)
	mustCreateAccount(t, db, "seller", "Seller")
	mustCreateAccount(t, db, "buyer_one", "Buyer One")
	mustCreateAccount(t, db, "buyer_two", "Buyer Two")
	mustCreateShow(t, db, "Jazz Night", "2026-02-01", "21:00")
	listing := mustCreateListing(t, db, "seller", "Jazz Night", 45, "Smooth jazz evening")
	return db, listing
}

func snapshotOf(l repository.Listing, buyerID string) repository.Purchase {
	return repository.Purchase{
		ID:          l.ID,
		SellerID:    l.SellerID,
		Event:       l.Name,
		Price:       l.Price,
		Description: l.Description,
		BuyerID:     buyerID,
	}
}

func TestPurchaseDuplicateCompositeKey(t *testing.T) {
	db, listing := purchaseFixture(t)
	ctx := context.Background()
	repo := repository.NewPurchaseRepo(db)

	p := snapshotOf(listing, "buyer_one")
	if err := repo.Create(ctx, &p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	dup := snapshotOf(listing, "buyer_one")
	if err := repo.Create(ctx, &dup); !errors.Is(err, repository.ErrConstraint) {
		t.Errorf("Create duplicate (buyerId, id): err = %v, want ErrConstraint", err)
	}
}

// Two different buyers may hold purchase records for the same underlying
// listing id; only the (buyerId, id) pair is unique.
func TestPurchaseSameListingDifferentBuyers(t *testing.T) {
	db, listing := purchaseFixture(t)
	ctx := context.Background()
	repo := repository.NewPurchaseRepo(db)

	first := snapshotOf(listing, "buyer_one")
	second := snapshotOf(listing, "buyer_two")
	if err := repo.Create(ctx, &first); err != nil {
		t.Fatalf("Create first: %v", err)
	}
	if err := repo.Create(ctx, &second); err != nil {
		t.Fatalf("Create second: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("purchases = %d, want 2", len(all))
	}
}

func TestPurchaseRequiresExistingShow(t *testing.T) {
	db, listing := purchaseFixture(t)
	ctx := context.Background()
	repo := repository.NewPurchaseRepo(db)

	p := snapshotOf(listing, "buyer_one")
	p.Event = "No Such Event"
	if err := repo.Create(ctx, &p); !errors.Is(err, repository.ErrConstraint) {
		t.Errorf("Create with unknown event: err = %v, want ErrConstraint", err)
	}
}

// A purchase is a snapshot copied from the listing at purchase time;
// editing the listing afterwards must not change the purchase record.
func TestPurchaseSnapshotUnaffectedByListingEdit(t *testing.T) {
	db, listing := purchaseFixture(t)
	ctx := context.Background()
	purchases := repository.NewPurchaseRepo(db)
	listings := repository.NewListingRepo(db)

	p := snapshotOf(listing, "buyer_one")
	if err := purchases.Create(ctx, &p); err != nil {
		t.Fatalf("Create purchase: %v", err)
	}

	listing.Price = decimal.NewFromInt(200)
	listing.Description = "price hiked after the sale"
	if err := listings.Update(ctx, &listing); err != nil {
		t.Fatalf("Update listing: %v", err)
	}

	bought, err := purchases.ByBuyer(ctx, "buyer_one")
	if err != nil {
		t.Fatalf("ByBuyer: %v", err)
	}
	if len(bought) != 1 {
		t.Fatalf("purchases = %d, want 1", len(bought))
	}
	if !bought[0].Price.Equal(decimal.NewFromInt(45)) {
		t.Errorf("purchase price after listing edit = %s, want 45", bought[0].Price)
	}
	if bought[0].Description != "Smooth jazz evening" {
		t.Errorf("purchase description after listing edit = %q, want original", bought[0].Description)
	}
}

func TestPurchaseDeleteByCompositeKey(t *testing.T) {
	db, listing := purchaseFixture(t)
	ctx := context.Background()
	repo := repository.NewPurchaseRepo(db)

	first := snapshotOf(listing, "buyer_one")
	second := snapshotOf(listing, "buyer_two")
	if err := repo.Create(ctx, &first); err != nil {
		t.Fatalf("Create first: %v", err)
	}
	if err := repo.Create(ctx, &second); err != nil {
		t.Fatalf("Create second: %v", err)
	}

	if err := repo.Delete(ctx, "buyer_one", listing.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	remaining, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("purchases after delete = %d, want 1", len(remaining))
	}
	if remaining[0].BuyerID != "buyer_two" {
		t.Errorf("remaining purchase buyer = %q, want buyer_two", remaining[0].BuyerID)
	}
}
