package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
)

func newMessagingFixture() (*MessagingService, *stubThreadRepo) {
	threads := newStubThreadRepo()
	listings := newStubListingRepo(sampleListing("l1", "seller"))
	return NewMessagingService(threads, listings, testLogger()), threads
}

func TestMessagingService_Contact_CreatesThread(t *testing.T) {
	svc, _ := newMessagingFixture()

	thread, err := svc.Contact(context.Background(), "buyer", "l1", "Bonjour, toujours disponible ?")
	if err != nil {
		t.Fatalf("contact: %v", err)
	}
	if thread.BuyerID != "buyer" || thread.SellerID != "seller" {
		t.Fatalf("unexpected participants: %+v", thread)
	}
	if len(thread.Messages) != 1 || thread.Messages[0].SenderID != "buyer" {
		t.Fatalf("expected one buyer message, got %+v", thread.Messages)
	}
	if thread.Unread["seller"] != 1 || thread.Unread["buyer"] != 0 {
		t.Fatalf("unread must count against the recipient, got %+v", thread.Unread)
	}
}

func TestMessagingService_Contact_ReusesThread(t *testing.T) {
	svc, _ := newMessagingFixture()

	first, err := svc.Contact(context.Background(), "buyer", "l1", "premier message")
	if err != nil {
		t.Fatalf("first contact: %v", err)
	}
	second, err := svc.Contact(context.Background(), "buyer", "l1", "deuxième message")
	if err != nil {
		t.Fatalf("second contact: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("contacting twice must reuse the thread: %s vs %s", first.ID, second.ID)
	}
	if len(second.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(second.Messages))
	}
	if second.Unread["seller"] != 2 {
		t.Fatalf("expected 2 unread for seller, got %d", second.Unread["seller"])
	}
}

func TestMessagingService_Contact_OwnListingForbidden(t *testing.T) {
	svc, _ := newMessagingFixture()

	if _, err := svc.Contact(context.Background(), "seller", "l1", "hello me"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestMessagingService_ThreadAndReply(t *testing.T) {
	svc, _ := newMessagingFixture()

	created, err := svc.Contact(context.Background(), "buyer", "l1", "Bonjour")
	if err != nil {
		t.Fatalf("contact: %v", err)
	}

	// Seller reads the thread, clearing their unread counter.
	read, err := svc.Thread(context.Background(), "seller", created.ID)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if read.Unread["seller"] != 0 {
		t.Fatalf("reading must clear unread, got %d", read.Unread["seller"])
	}

	replied, err := svc.Reply(context.Background(), "seller", created.ID, "Oui, toujours disponible.")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if len(replied.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(replied.Messages))
	}
	if replied.Unread["buyer"] != 1 {
		t.Fatalf("reply must mark the buyer unread, got %+v", replied.Unread)
	}

	// A stranger can neither read nor reply.
	if _, err := svc.Thread(context.Background(), "stranger", created.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on read, got %v", err)
	}
	if _, err := svc.Reply(context.Background(), "stranger", created.ID, "spam"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on reply, got %v", err)
	}
}

func TestMessagingService_Inbox(t *testing.T) {
	threads := newStubThreadRepo()
	listings := newStubListingRepo(
		sampleListing("l1", "seller"),
		sampleListing("l2", "seller"),
	)
	svc := NewMessagingService(threads, listings, testLogger())

	if _, err := svc.Contact(context.Background(), "buyer", "l1", "sur l1"); err != nil {
		t.Fatalf("contact l1: %v", err)
	}
	time.Sleep(time.Millisecond) // keep UpdatedAt ordering unambiguous
	second, err := svc.Contact(context.Background(), "buyer", "l2", "sur l2")
	if err != nil {
		t.Fatalf("contact l2: %v", err)
	}

	inbox, err := svc.Inbox(context.Background(), "seller")
	if err != nil {
		t.Fatalf("inbox: %v", err)
	}
	if len(inbox) != 2 {
		t.Fatalf("expected 2 threads, got %d", len(inbox))
	}
	if inbox[0].ID != second.ID {
		t.Fatalf("most recent thread must come first, got %+v", inbox)
	}
	if inbox[0].WithAccount != "buyer" {
		t.Fatalf("summary must name the counterpart, got %q", inbox[0].WithAccount)
	}
	if inbox[0].LastMessage != "sur l2" || inbox[0].Unread != 1 {
		t.Fatalf("unexpected summary: %+v", inbox[0])
	}

	empty, err := svc.Inbox(context.Background(), "stranger")
	if err != nil {
		t.Fatalf("stranger inbox: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty inbox, got %d", len(empty))
	}
}

func TestMessagingService_Reply_UnknownThread(t *testing.T) {
	svc, _ := newMessagingFixture()

	if _, err := svc.Reply(context.Background(), "buyer", "missing", "hello"); !errors.Is(err, domain.ErrThreadNotFound) {
		t.Fatalf("expected ErrThreadNotFound, got %v", err)
	}
}
