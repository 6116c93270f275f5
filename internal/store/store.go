// Package store exposes the collaborator-facing surface of the ticket
// resale data layer. The UI calls the named operations here and nothing
// else; no SQL or query language leaks past this package.
//
// Write operations keep the application's original contract: failures
// are caught at the operation boundary, logged, and reported as a plain
// false. The repository layer underneath returns typed errors
// (repository.ErrConstraint, repository.ErrNotFound, wrapped storage
// errors) for callers that need to tell the cases apart.
//
// Every operation is synchronous and blocking; the store holds no
// session state and imposes no concurrency control beyond what the
// embedded engine provides.
package store

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/travisng02005/3310-Project/internal/repository"
)

// Store is a flat facade over the six entity repositories sharing one
// embedded database handle.
type Store struct {
	db     *sql.DB
	logger *slog.Logger

	Accounts        *repository.AccountRepo
	Shows           *repository.ShowRepo
	Listings        *repository.ListingRepo
	Purchases       *repository.PurchaseRepo
	PaymentMethods  *repository.PaymentMethodRepo
	BankIdentifiers *repository.BankIdentifierRepo
}

// New wires a Store over db. logger may be nil; failures are then
// discarded silently, matching the original catch-and-flag behavior.
func New(db *sql.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		db:              db,
		logger:          logger,
		Accounts:        repository.NewAccountRepo(db),
		Shows:           repository.NewShowRepo(db),
		Listings:        repository.NewListingRepo(db),
		Purchases:       repository.NewPurchaseRepo(db),
		PaymentMethods:  repository.NewPaymentMethodRepo(db),
		BankIdentifiers: repository.NewBankIdentifierRepo(db),
	}
}

// Initialize creates the schema if absent, seeding sample data on first
// creation when seed is true. Must be called once before any other
// operation; calling it on every startup is safe.
func (s *Store) Initialize(ctx context.Context, seed bool) error {
	return repository.Initialize(ctx, s.db, seed)
}

// Reset drops and recreates the schema empty (reseeding when seed is
// true). Used when the data shape changes between application versions.
func (s *Store) Reset(ctx context.Context, seed bool) error {
	return repository.Reset(ctx, s.db, seed)
}

// ok converts a repository write result into the boolean contract,
// logging the failure once. Constraint violations are expected caller
// errors and log at a lower level than storage failures.
func (s *Store) ok(op string, err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, repository.ErrConstraint) {
		s.logger.Warn("write rejected", "op", op, "reason", "constraint")
	} else {
		s.logger.Error("write failed", "op", op, "error", err)
	}
	return false
}

// Account operations

func (s *Store) CreateAccount(ctx context.Context, a repository.Account) bool {
	return s.ok("create account", s.Accounts.Create(ctx, &a))
}

func (s *Store) GetAccount(ctx context.Context, userID string) (repository.Account, bool) {
	a, err := s.Accounts.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("read failed", "op", "get account", "error", err)
		}
		return repository.Account{}, false
	}
	return a, true
}

func (s *Store) ListAccounts(ctx context.Context) []repository.Account {
	accounts, err := s.Accounts.List(ctx)
	if err != nil {
		s.logger.Error("read failed", "op", "list accounts", "error", err)
		return nil
	}
	return accounts
}

func (s *Store) UpdateAccount(ctx context.Context, a repository.Account) bool {
	return s.ok("update account", s.Accounts.Update(ctx, &a))
}

func (s *Store) DeleteAccount(ctx context.Context, userID string) bool {
	return s.ok("delete account", s.Accounts.Delete(ctx, userID))
}

// Show operations

func (s *Store) CreateShow(ctx context.Context, event, date, time string) bool {
	return s.ok("create show", s.Shows.Create(ctx, &repository.Show{Event: event, Date: date, Time: time}))
}

func (s *Store) GetShowByID(ctx context.Context, showID int64) (repository.Show, bool) {
	sh, err := s.Shows.GetByID(ctx, showID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("read failed", "op", "get show by id", "error", err)
		}
		return repository.Show{}, false
	}
	return sh, true
}

func (s *Store) GetShowByEvent(ctx context.Context, event string) (repository.Show, bool) {
	sh, err := s.Shows.GetByEvent(ctx, event)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("read failed", "op", "get show by event", "error", err)
		}
		return repository.Show{}, false
	}
	return sh, true
}

func (s *Store) ListShows(ctx context.Context) []repository.Show {
	shows, err := s.Shows.List(ctx)
	if err != nil {
		s.logger.Error("read failed", "op", "list shows", "error", err)
		return nil
	}
	return shows
}

func (s *Store) SearchShows(ctx context.Context, query string) []repository.Show {
	shows, err := s.Shows.Search(ctx, query)
	if err != nil {
		s.logger.Error("read failed", "op", "search shows", "error", err)
		return nil
	}
	return shows
}

func (s *Store) UpdateShow(ctx context.Context, sh repository.Show) bool {
	return s.ok("update show", s.Shows.Update(ctx, &sh))
}

func (s *Store) DeleteShow(ctx context.Context, showID int64) bool {
	return s.ok("delete show", s.Shows.Delete(ctx, showID))
}

// Listing operations

func (s *Store) CreateListing(ctx context.Context, sellerID, name string, price decimal.Decimal, description string) bool {
	l := repository.Listing{SellerID: sellerID, Name: name, Price: price, Description: description}
	return s.ok("create listing", s.Listings.Create(ctx, &l))
}

func (s *Store) GetAllListings(ctx context.Context) []repository.Listing {
	listings, err := s.Listings.All(ctx)
	if err != nil {
		s.logger.Error("read failed", "op", "get all listings", "error", err)
		return nil
	}
	return listings
}

func (s *Store) GetListingsBySeller(ctx context.Context, sellerID string) []repository.Listing {
	listings, err := s.Listings.BySeller(ctx, sellerID)
	if err != nil {
		s.logger.Error("read failed", "op", "get listings by seller", "error", err)
		return nil
	}
	return listings
}

func (s *Store) SearchListings(ctx context.Context, sellerID, query string) []repository.Listing {
	listings, err := s.Listings.Search(ctx, sellerID, query)
	if err != nil {
		s.logger.Error("read failed", "op", "search listings", "error", err)
		return nil
	}
	return listings
}

func (s *Store) UpdateListing(ctx context.Context, l repository.Listing) bool {
	return s.ok("update listing", s.Listings.Update(ctx, &l))
}

func (s *Store) DeleteListing(ctx context.Context, id int64) bool {
	return s.ok("delete listing", s.Listings.Delete(ctx, id))
}

// Purchase operations

func (s *Store) CreatePurchase(ctx context.Context, p repository.Purchase) bool {
	return s.ok("create purchase", s.Purchases.Create(ctx, &p))
}

func (s *Store) GetPurchasesByBuyer(ctx context.Context, buyerID string) []repository.Purchase {
	purchases, err := s.Purchases.ByBuyer(ctx, buyerID)
	if err != nil {
		s.logger.Error("read failed", "op", "get purchases by buyer", "error", err)
		return nil
	}
	return purchases
}

func (s *Store) GetAllPurchases(ctx context.Context) []repository.Purchase {
	purchases, err := s.Purchases.All(ctx)
	if err != nil {
		s.logger.Error("read failed", "op", "get all purchases", "error", err)
		return nil
	}
	return purchases
}

func (s *Store) DeletePurchase(ctx context.Context, buyerID string, id int64) bool {
	return s.ok("delete purchase", s.Purchases.Delete(ctx, buyerID, id))
}

// Payment method operations

func (s *Store) AddPaymentMethod(ctx context.Context, m repository.PaymentMethod) bool {
	return s.ok("add payment method", s.PaymentMethods.Add(ctx, &m))
}

func (s *Store) GetPaymentMethodsByUser(ctx context.Context, userID string) []repository.PaymentMethod {
	methods, err := s.PaymentMethods.ByUser(ctx, userID)
	if err != nil {
		s.logger.Error("read failed", "op", "get payment methods by user", "error", err)
		return nil
	}
	return methods
}

func (s *Store) GetPaymentMethodByCard(ctx context.Context, cardNumber string) (repository.PaymentMethod, bool) {
	m, err := s.PaymentMethods.ByCard(ctx, cardNumber)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("read failed", "op", "get payment method by card", "error", err)
		}
		return repository.PaymentMethod{}, false
	}
	return m, true
}

func (s *Store) UpdatePaymentMethod(ctx context.Context, m repository.PaymentMethod) bool {
	return s.ok("update payment method", s.PaymentMethods.Update(ctx, &m))
}

func (s *Store) DeletePaymentMethod(ctx context.Context, cardNumber string) bool {
	return s.ok("delete payment method", s.PaymentMethods.Delete(ctx, cardNumber))
}

// Bank identifier operations

func (s *Store) AddBankIdentifier(ctx context.Context, bank, firstTwoDigits string) bool {
	return s.ok("add bank identifier", s.BankIdentifiers.Add(ctx, bank, firstTwoDigits))
}

func (s *Store) GetBankIdentifiersByBank(ctx context.Context, bank string) []repository.BankIdentifier {
	identifiers, err := s.BankIdentifiers.ByBank(ctx, bank)
	if err != nil {
		s.logger.Error("read failed", "op", "get bank identifiers by bank", "error", err)
		return nil
	}
	return identifiers
}

func (s *Store) GetBankIdentifiersByDigits(ctx context.Context, digits string) []repository.BankIdentifier {
	identifiers, err := s.BankIdentifiers.ByFirstTwoDigits(ctx, digits)
	if err != nil {
		s.logger.Error("read failed", "op", "get bank identifiers by digits", "error", err)
		return nil
	}
	return identifiers
}

func (s *Store) ListBankIdentifiers(ctx context.Context) []repository.BankIdentifier {
	identifiers, err := s.BankIdentifiers.All(ctx)
	if err != nil {
		s.logger.Error("read failed", "op", "list bank identifiers", "error", err)
		return nil
	}
	return identifiers
}

func (s *Store) UpdateBankIdentifier(ctx context.Context, bank, oldDigits, newDigits string) bool {
	return s.ok("update bank identifier", s.BankIdentifiers.Update(ctx, bank, oldDigits, newDigits))
}

func (s *Store) DeleteBankIdentifier(ctx context.Context, bank, digits string) bool {
	return s.ok("delete bank identifier", s.BankIdentifiers.Delete(ctx, bank, digits))
}
