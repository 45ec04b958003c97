package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/personal-diary/diary-api/internal/core/domain"
)

const entriesCollection = "entries"

// EntryRepository implements ports.EntryRepository on MongoDB. Every filter
// includes owner_id, so cross-user reads and deletes are impossible at the
// query level.
type EntryRepository struct {
	coll *mongo.Collection
}

func NewEntryRepository(db *mongo.Database) *EntryRepository {
	return &EntryRepository{coll: db.Collection(entriesCollection)}
}

type mongoEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID   string             `bson:"owner_id"`
	Title     string             `bson:"title,omitempty"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (r *EntryRepository) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoEntry{
		OwnerID:   e.OwnerID,
		Title:     e.Title,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, storeErr("insert entry", err)
	}

	created := *e
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *EntryRepository) FindByID(ctx context.Context, id, ownerID string) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEntryNotFound
	}

	var me mongoEntry
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid, "owner_id": ownerID}).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, storeErr("find entry", err)
	}
	return toDomainEntry(me), nil
}

// ListByOwner returns the owner's entries, newest first.
func (r *EntryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, storeErr("list entries", err)
	}
	defer cur.Close(ctx)

	entries := make([]*domain.Entry, 0)
	for cur.Next(ctx) {
		var me mongoEntry
		if err := cur.Decode(&me); err != nil {
			return nil, storeErr("decode entry", err)
		}
		entries = append(entries, toDomainEntry(me))
	}
	if err := cur.Err(); err != nil {
		return nil, storeErr("list entries", err)
	}
	return entries, nil
}

func (r *EntryRepository) Delete(ctx context.Context, id, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEntryNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "owner_id": ownerID})
	if err != nil {
		return storeErr("delete entry", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// EnsureIndexes creates the owner/date index backing the list query.
func (r *EntryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}

func toDomainEntry(me mongoEntry) *domain.Entry {
	return &domain.Entry{
		ID:        me.ID.Hex(),
		OwnerID:   me.OwnerID,
		Title:     me.Title,
		Content:   me.Content,
		CreatedAt: me.CreatedAt.UTC(),
		UpdatedAt: me.UpdatedAt.UTC(),
	}
}
