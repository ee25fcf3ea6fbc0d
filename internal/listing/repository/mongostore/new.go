package mongostore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"property-listings/internal/listing/repository"
	"property-listings/pkg/log"
)

const (
	listingsCollection = "listings"
	countersCollection = "counters"
	listingsCounterID  = "listings"

	timeResolution = time.Millisecond
)

type implRepository struct {
	listings *mongo.Collection
	counters *mongo.Collection
	l        log.Logger
	now      func() time.Time
	newID    func() string
}

// New creates a MongoDB-backed Repository for listings on db.
func New(ctx context.Context, db *mongo.Database, l log.Logger) repository.Repository {
	if db == nil {
		panic("listing/repository/mongostore: database is required")
	}

	r := &implRepository{
		listings: db.Collection(listingsCollection),
		counters: db.Collection(countersCollection),
		l:        l,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	r.ensureIndexes(ctx)
	return r
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("listing/repository/mongostore.%s", method)
}

// ensureIndexes is best effort: a failure is logged and the repository keeps
// working without the indexes.
func (r *implRepository) ensureIndexes(ctx context.Context) {
	_, err := r.listings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "seq", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "seq", Value: 1}}},
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("ensureIndexes"), err)
	}
}

// nextSeq hands out the insertion sequence number for a new listing.
func (r *implRepository) nextSeq(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": listingsCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
