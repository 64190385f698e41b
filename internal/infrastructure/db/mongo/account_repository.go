package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
)

const accountCollection = "accounts"

type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(accountCollection)}
}

type accountDoc struct {
	ID           string         `bson:"_id"`
	Name         string         `bson:"name"`
	Email        string         `bson:"email"`
	Phone        string         `bson:"phone,omitempty"`
	Kind         string         `bson:"kind"`
	PasswordHash string         `bson:"password_hash"`
	Balance      int            `bson:"balance"`
	Subscription string         `bson:"subscription"`
	Favorites    []string       `bson:"favorites"`
	Alerts       []domain.Alert `bson:"alerts"`
	CreatedAt    int64          `bson:"created_at"`
	UpdatedAt    int64          `bson:"updated_at"`
}

func toDoc(a *domain.Account) accountDoc {
	return accountDoc{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Phone:        a.Phone,
		Kind:         a.Kind,
		PasswordHash: a.PasswordHash,
		Balance:      a.Balance,
		Subscription: string(a.Subscription),
		Favorites:    a.Favorites,
		Alerts:       a.Alerts,
		CreatedAt:    a.CreatedAt.Unix(),
		UpdatedAt:    a.UpdatedAt.Unix(),
	}
}

func fromDoc(d *accountDoc) *domain.Account {
	favorites := d.Favorites
	if favorites == nil {
		favorites = []string{}
	}
	alerts := d.Alerts
	if alerts == nil {
		alerts = []domain.Alert{}
	}
	return &domain.Account{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		Kind:         d.Kind,
		PasswordHash: d.PasswordHash,
		Balance:      d.Balance,
		Subscription: domain.SubscriptionTier(d.Subscription),
		Favorites:    favorites,
		Alerts:       alerts,
		CreatedAt:    unixToTime(d.CreatedAt),
		UpdatedAt:    unixToTime(d.UpdatedAt),
	}
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	_, err := r.coll.InsertOne(ctx, toDoc(account))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return r.FindByID(ctx, account.ID)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	var d accountDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return fromDoc(&d), nil
}

// Replace writes the full account document so the stored snapshot always
// matches the in-memory record.
func (r *AccountRepository) Replace(ctx context.Context, account *domain.Account) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": account.ID}, toDoc(account))
	if err != nil {
		return fmt.Errorf("replace account: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *AccountRepository) ListWithActiveAlerts(ctx context.Context) ([]*domain.Account, error) {
	filter := bson.M{"alerts": bson.M{"$elemMatch": bson.M{"is_active": true}}}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list accounts with alerts: %w", err)
	}
	defer cur.Close(ctx)

	var accounts []*domain.Account
	for cur.Next(ctx) {
		var d accountDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		accounts = append(accounts, fromDoc(&d))
	}
	return accounts, cur.Err()
}

// EnsureIndexes creates the unique email index.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
