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

const threadCollection = "threads"

type ThreadRepository struct {
	col *mongo.Collection
}

func NewThreadRepository(db *mongo.Database) *ThreadRepository {
	return &ThreadRepository{col: db.Collection(threadCollection)}
}

func (r *ThreadRepository) Insert(ctx context.Context, thread *domain.Thread) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, thread)
	return err
}

func (r *ThreadRepository) FindByID(ctx context.Context, id string) (*domain.Thread, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ThreadRepository) FindByListingAndBuyer(ctx context.Context, listingID, buyerID string) (*domain.Thread, error) {
	return r.findOne(ctx, bson.M{"listing_id": listingID, "buyer_id": buyerID})
}

func (r *ThreadRepository) findOne(ctx context.Context, filter bson.M) (*domain.Thread, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Thread
	err := r.col.FindOne(ctx, filter).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrThreadNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ListByParticipant returns the account's threads, most recently active first.
func (r *ThreadRepository) ListByParticipant(ctx context.Context, accountID string) ([]domain.Thread, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"$or": []bson.M{{"buyer_id": accountID}, {"seller_id": accountID}}}
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var threads []domain.Thread
	if err := cur.All(ctx, &threads); err != nil {
		return nil, err
	}
	return threads, nil
}

// Replace writes the full thread document.
func (r *ThreadRepository) Replace(ctx context.Context, thread *domain.Thread) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": thread.ID}, thread)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrThreadNotFound
	}
	return nil
}

// EnsureIndexes creates the inbox lookup indexes.
func (r *ThreadRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "buyer_id", Value: 1}}},
		{Keys: bson.D{{Key: "seller_id", Value: 1}}},
		{Keys: bson.D{{Key: "listing_id", Value: 1}, {Key: "buyer_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
