package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/ports"
)

type MessagingService struct {
	threads  ports.ThreadRepository
	listings ports.ListingRepository
	log      zerolog.Logger
}

func NewMessagingService(threads ports.ThreadRepository, listings ports.ListingRepository, log zerolog.Logger) *MessagingService {
	return &MessagingService{threads: threads, listings: listings, log: log}
}

// Contact opens the caller's thread on a listing, reusing an existing one,
// and appends the message. Sellers cannot contact their own listing.
func (s *MessagingService) Contact(ctx context.Context, accountID, listingID, body string) (*domain.Thread, error) {
	listing, err := s.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.Seller.ID == accountID {
		return nil, domain.ErrForbidden
	}

	thread, err := s.threads.FindByListingAndBuyer(ctx, listingID, accountID)
	if err != nil {
		if !errors.Is(err, domain.ErrThreadNotFound) {
			return nil, err
		}
		now := time.Now().UTC()
		thread = &domain.Thread{
			ID:        uuid.NewString(),
			ListingID: listingID,
			BuyerID:   accountID,
			SellerID:  listing.Seller.ID,
			Messages:  []domain.Message{},
			Unread:    map[string]int{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.threads.Insert(ctx, thread); err != nil {
			return nil, err
		}
	}

	return s.append(ctx, thread, accountID, body)
}

// Inbox returns the caller's threads, most recently active first.
func (s *MessagingService) Inbox(ctx context.Context, accountID string) ([]ports.ThreadSummary, error) {
	threads, err := s.threads.ListByParticipant(ctx, accountID)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.ThreadSummary, 0, len(threads))
	for i := range threads {
		t := &threads[i]
		last := ""
		if n := len(t.Messages); n > 0 {
			last = t.Messages[n-1].Body
		}
		summaries = append(summaries, ports.ThreadSummary{
			ID:          t.ID,
			ListingID:   t.ListingID,
			WithAccount: t.OtherParticipant(accountID),
			LastMessage: last,
			Unread:      t.Unread[accountID],
			UpdatedAt:   t.UpdatedAt,
		})
	}
	return summaries, nil
}

// Thread returns the full conversation and clears the caller's unread count.
func (s *MessagingService) Thread(ctx context.Context, accountID, threadID string) (*domain.Thread, error) {
	thread, err := s.threads.FindByID(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if !thread.HasParticipant(accountID) {
		return nil, domain.ErrForbidden
	}

	if thread.Unread[accountID] != 0 {
		thread.Unread[accountID] = 0
		if err := s.threads.Replace(ctx, thread); err != nil {
			return nil, err
		}
	}
	return thread, nil
}

// Reply appends a message to an existing conversation.
func (s *MessagingService) Reply(ctx context.Context, accountID, threadID, body string) (*domain.Thread, error) {
	thread, err := s.threads.FindByID(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if !thread.HasParticipant(accountID) {
		return nil, domain.ErrForbidden
	}
	return s.append(ctx, thread, accountID, body)
}

func (s *MessagingService) append(ctx context.Context, thread *domain.Thread, senderID, body string) (*domain.Thread, error) {
	now := time.Now().UTC()
	thread.Messages = append(thread.Messages, domain.Message{
		ID:       uuid.NewString(),
		SenderID: senderID,
		Body:     body,
		SentAt:   now,
	})
	if thread.Unread == nil {
		thread.Unread = map[string]int{}
	}
	thread.Unread[thread.OtherParticipant(senderID)]++
	thread.UpdatedAt = now

	if err := s.threads.Replace(ctx, thread); err != nil {
		return nil, err
	}
	return thread, nil
}
