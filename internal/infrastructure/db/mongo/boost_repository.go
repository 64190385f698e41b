package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
)

const boostCollection = "boosts"

type BoostRepository struct {
	col *mongo.Collection
}

func NewBoostRepository(db *mongo.Database) *BoostRepository {
	return &BoostRepository{col: db.Collection(boostCollection)}
}

func (r *BoostRepository) Insert(ctx context.Context, boost *domain.Boost) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, boost)
	return err
}

// ListByAccount returns the account's promotions, newest first.
func (r *BoostRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.Boost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"account_id": accountID},
		options.Find().SetSort(bson.D{{Key: "starts_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var boosts []domain.Boost
	if err := cur.All(ctx, &boosts); err != nil {
		return nil, err
	}
	return boosts, nil
}

// FindActiveByListing returns the running boost on a listing, if any.
func (r *BoostRepository) FindActiveByListing(ctx context.Context, listingID string) (*domain.Boost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"listing_id": listingID,
		"status":     domain.BoostActive,
		"ends_at":    bson.M{"$gt": time.Now().UTC()},
	}

	var b domain.Boost
	err := r.col.FindOne(ctx, filter).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBoostNotFound
		}
		return nil, err
	}
	return &b, nil
}

// EnsureIndexes creates the lookup indexes for boosts.
func (r *BoostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "account_id", Value: 1}}},
		{Keys: bson.D{{Key: "listing_id", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
