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

const listingCollection = "listings"

type ListingRepository struct {
	col *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{col: db.Collection(listingCollection)}
}

// Insert stores a newly published listing.
func (r *ListingRepository) Insert(ctx context.Context, listing *domain.Listing) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, listing)
	return err
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var l domain.Listing
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return &l, nil
}

// All returns the catalogue in creation order, the order the filter engine
// preserves.
func (r *ListingRepository) All(ctx context.Context) ([]domain.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var listings []domain.Listing
	if err := cur.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *ListingRepository) SetBoosted(ctx context.Context, id string, boosted bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"is_boosted": boosted}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the filter predicates.
func (r *ListingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "location.wilaya", Value: 1}}},
		{Keys: bson.D{{Key: "transaction", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
