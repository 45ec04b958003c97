package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/personal-diary/diary-api/internal/core/domain"
)

const usersCollection = "users"

// UserRepository implements ports.UserRepository on MongoDB. The unique index
// on email is what makes concurrent registrations of the same address safe:
// the second insert fails with a duplicate-key error regardless of how the
// pre-check raced.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Email           string             `bson:"email"`
	DisplayName     string             `bson:"display_name,omitempty"`
	CredentialKind  string             `bson:"credential_kind"`
	PasswordHash    string             `bson:"password_hash,omitempty"`
	Provider        string             `bson:"provider,omitempty"`
	ProviderSubject string             `bson:"provider_subject,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
	switch cred := user.Credential.(type) {
	case domain.PasswordCredential:
		doc.CredentialKind = domain.CredentialPassword
		doc.PasswordHash = cred.Hash
	case domain.ExternalCredential:
		doc.CredentialKind = domain.CredentialExternal
		doc.Provider = cred.Provider
		doc.ProviderSubject = cred.Subject
	default:
		return nil, fmt.Errorf("insert user: unsupported credential")
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, storeErr("insert user", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storeErr("find user", err)
	}

	user := &domain.User{
		ID:          mu.ID.Hex(),
		Email:       mu.Email,
		DisplayName: mu.DisplayName,
		CreatedAt:   mu.CreatedAt.UTC(),
		UpdatedAt:   mu.UpdatedAt.UTC(),
	}
	switch mu.CredentialKind {
	case domain.CredentialExternal:
		user.Credential = domain.ExternalCredential{Provider: mu.Provider, Subject: mu.ProviderSubject}
	default:
		user.Credential = domain.PasswordCredential{Hash: mu.PasswordHash}
	}
	return user, nil
}

// EnsureIndexes creates the unique email index the registration flow relies on.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// storeErr tags infrastructure failures so callers can distinguish a
// transient store outage from a domain outcome.
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, op, err)
}
