package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/ports"
)

func sampleListing(id, sellerID string) domain.Listing {
	return domain.Listing{
		ID:          id,
		Title:       "Appartement F3 Hydra",
		Price:       45000,
		Surface:     85,
		Type:        domain.PropertyApartment,
		Transaction: domain.TransactionRent,
		Rooms:       3,
		Location:    domain.Location{City: "Hydra", Wilaya: "Alger"},
		Seller:      domain.Seller{ID: sellerID, Name: "Karim", Kind: domain.KindIndividual, Phone: "0550000001"},
	}
}

func newListingFixture(t *testing.T, tier domain.SubscriptionTier, balance int) (*ListingService, *stubAccountRepo, *stubSessionStore, *stubQueue) {
	t.Helper()
	accounts := newStubAccountRepo()
	sessions := newStubSessionStore()
	seedAccount(t, accounts, "buyer", tier, balance)
	wallet := newWallet(accounts, sessions, true)
	repo := newStubListingRepo(sampleListing("l1", "seller"))
	queue := &stubQueue{}
	svc := NewListingService(repo, wallet, &stubGenerator{text: "ok"}, queue, testLogger())
	return svc, accounts, sessions, queue
}

func TestListingService_Search(t *testing.T) {
	repo := newStubListingRepo(
		sampleListing("l1", "s1"),
		domain.Listing{ID: "l2", Type: domain.PropertyHouse, Transaction: domain.TransactionBuy, Price: 30000000, Surface: 200, Location: domain.Location{Wilaya: "Oran"}},
	)
	svc := NewListingService(repo, nil, &stubGenerator{}, &stubQueue{}, testLogger())

	got, err := svc.Search(context.Background(), domain.FilterCriteria{Wilaya: "Alger"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].ID != "l1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListingService_Publish_EnqueuesForAlerts(t *testing.T) {
	repo := newStubListingRepo()
	queue := &stubQueue{}
	svc := NewListingService(repo, nil, &stubGenerator{}, queue, testLogger())

	listing, err := svc.Publish(context.Background(), ports.PublishListingInput{
		Title:       "Studio Oran",
		Price:       25000,
		Surface:     38,
		Type:        domain.PropertyStudio,
		Transaction: domain.TransactionRent,
		City:        "Oran",
		Wilaya:      "Oran",
		SellerID:    "seller",
		SellerPhone: "0550000002",
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if listing.ID == "" || listing.CreatedAt.IsZero() {
		t.Fatalf("expected assigned id and timestamp, got %+v", listing)
	}
	if len(queue.enqueued) != 1 || queue.enqueued[0].ID != listing.ID {
		t.Fatalf("published listing must reach the alert queue, got %+v", queue.enqueued)
	}
	if stored, err := repo.FindByID(context.Background(), listing.ID); err != nil || stored.Seller.Phone != "0550000002" {
		t.Fatalf("expected stored listing with seller phone, got %+v (%v)", stored, err)
	}
}

func TestListingService_RevealPhone_FromQuota(t *testing.T) {
	svc, _, _, _ := newListingFixture(t, domain.TierFree, domain.WelcomeBalance)

	reveal, err := svc.RevealPhone(context.Background(), "buyer", "l1")
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if reveal.Phone != "0550000001" {
		t.Fatalf("expected seller phone, got %q", reveal.Phone)
	}
	if reveal.Source != ports.SourceQuota || reveal.Charged != 0 {
		t.Fatalf("first reveal must come from the free quota, got %+v", reveal)
	}
	if reveal.QuotaRemaining != domain.FreeUnlockQuota-1 {
		t.Fatalf("expected %d quota left, got %d", domain.FreeUnlockQuota-1, reveal.QuotaRemaining)
	}
}

func TestListingService_RevealPhone_FromSubscription(t *testing.T) {
	svc, _, _, _ := newListingFixture(t, domain.TierUltime, 0)

	reveal, err := svc.RevealPhone(context.Background(), "buyer", "l1")
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if reveal.Source != ports.SourceSubscription || reveal.Charged != 0 {
		t.Fatalf("paid tiers reveal without charge, got %+v", reveal)
	}
}

func TestListingService_RevealPhone_ChargesBalanceAfterQuota(t *testing.T) {
	svc, accounts, _, _ := newListingFixture(t, domain.TierFree, domain.WelcomeBalance)

	for i := 0; i < domain.FreeUnlockQuota; i++ {
		if _, err := svc.RevealPhone(context.Background(), "buyer", "l1"); err != nil {
			t.Fatalf("quota reveal %d: %v", i+1, err)
		}
	}

	reveal, err := svc.RevealPhone(context.Background(), "buyer", "l1")
	if err != nil {
		t.Fatalf("balance reveal: %v", err)
	}
	if reveal.Source != ports.SourceBalance || reveal.Charged != domain.PhoneUnlockCost {
		t.Fatalf("expected wallet-funded reveal, got %+v", reveal)
	}

	account, _ := accounts.FindByID(context.Background(), "buyer")
	if account.Balance != domain.WelcomeBalance-domain.PhoneUnlockCost {
		t.Fatalf("expected balance %d, got %d", domain.WelcomeBalance-domain.PhoneUnlockCost, account.Balance)
	}
}

func TestListingService_RevealPhone_InsufficientFunds(t *testing.T) {
	svc, accounts, _, _ := newListingFixture(t, domain.TierFree, domain.PhoneUnlockCost-1)

	for i := 0; i < domain.FreeUnlockQuota; i++ {
		if _, err := svc.RevealPhone(context.Background(), "buyer", "l1"); err != nil {
			t.Fatalf("quota reveal %d: %v", i+1, err)
		}
	}

	if _, err := svc.RevealPhone(context.Background(), "buyer", "l1"); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	// A failed reveal must not debit anything.
	account, _ := accounts.FindByID(context.Background(), "buyer")
	if account.Balance != domain.PhoneUnlockCost-1 {
		t.Fatalf("balance must be untouched, got %d", account.Balance)
	}
}

func TestListingService_RevealPhone_UnknownListing(t *testing.T) {
	svc, _, _, _ := newListingFixture(t, domain.TierFree, domain.WelcomeBalance)

	if _, err := svc.RevealPhone(context.Background(), "buyer", "missing"); !errors.Is(err, domain.ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}

func TestListingService_Describe(t *testing.T) {
	repo := newStubListingRepo()

	ok := NewListingService(repo, nil, &stubGenerator{text: "Bel appartement lumineux."}, &stubQueue{}, testLogger())
	text, err := ok.Describe(context.Background(), ports.DescribeInput{Type: domain.PropertyApartment})
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if text != "Bel appartement lumineux." {
		t.Fatalf("unexpected text: %q", text)
	}

	failing := NewListingService(repo, nil, &stubGenerator{err: errors.New("upstream down")}, &stubQueue{}, testLogger())
	text, err = failing.Describe(context.Background(), ports.DescribeInput{Type: domain.PropertyApartment})
	if err != nil {
		t.Fatalf("generator failures must never propagate, got %v", err)
	}
	if text != describeFallback {
		t.Fatalf("expected fallback text, got %q", text)
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(ports.DescribeInput{
		Type:     domain.PropertyApartment,
		Rooms:    3,
		Surface:  85,
		City:     "Hydra",
		Wilaya:   "Alger",
		Features: []string{"ascenseur", "parking"},
	})

	for _, want := range []string{"apartment", "3 pièces", "85 m²", "Hydra Alger", "ascenseur, parking"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q: %s", want, prompt)
		}
	}

	bare := buildPrompt(ports.DescribeInput{Type: domain.PropertyLand, Wilaya: "Alger"})
	if !strings.Contains(bare, "située à Alger") {
		t.Fatalf("city-less prompt must not carry stray spaces: %s", bare)
	}
}
