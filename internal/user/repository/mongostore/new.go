package mongostore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"property-listings/internal/user/repository"
	"property-listings/pkg/log"
)

const usersCollection = "users"

type implRepository struct {
	users *mongo.Collection
	l     log.Logger
	now   func() time.Time
	newID func() string
}

// New creates a MongoDB-backed user Repository on db.
func New(ctx context.Context, db *mongo.Database, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/mongostore: database is required")
	}

	r := &implRepository{
		users: db.Collection(usersCollection),
		l:     l,
		now:   time.Now,
		newID: uuid.NewString,
	}
	r.ensureIndexes(ctx)
	return r
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/mongostore.%s", method)
}

// ensureIndexes is best effort. Without the unique email index, duplicate
// registration is only prevented by the use case.
func (r *implRepository) ensureIndexes(ctx context.Context) {
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("ensureIndexes"), err)
	}
}
