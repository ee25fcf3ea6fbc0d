package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"property-listings/internal/listing"
	repo "property-listings/internal/listing/repository"
)

// CreateListing inserts a new Listing document and returns the created entity.
func (r *implRepository) CreateListing(ctx context.Context, opt repo.CreateListingOptions) (listing.Listing, error) {
	seq, err := r.nextSeq(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: next seq: %v", r.dsn("CreateListing"), err)
		return listing.Listing{}, repo.ErrFailedToInsert
	}

	// Mongo stores milliseconds.
	now := r.now().UTC().Truncate(timeResolution)
	doc := listingDoc{
		ID:          r.newID(),
		Seq:         seq,
		UserID:      opt.UserID,
		Title:       opt.Title,
		Location:    opt.Location,
		Description: opt.Description,
		Price:       opt.Price,
		Status:      string(opt.Status),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.listings.InsertOne(ctx, doc); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateListing"), err)
		return listing.Listing{}, repo.ErrFailedToInsert
	}
	return docToListing(doc), nil
}

// GetOneListing retrieves a single Listing by ID.
// Returns zero-value Listing (ID == "") when not found.
func (r *implRepository) GetOneListing(ctx context.Context, opt repo.GetOneListingOptions) (listing.Listing, error) {
	var doc listingDoc
	err := r.listings.FindOne(ctx, bson.M{"_id": opt.ID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return listing.Listing{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneListing"), err)
		return listing.Listing{}, repo.ErrFailedToGet
	}
	return docToListing(doc), nil
}

// ListListings returns listings in insertion order.
func (r *implRepository) ListListings(ctx context.Context, opt repo.ListListingsOptions) ([]listing.Listing, error) {
	filter := bson.M{}
	if opt.UserID != "" {
		filter["user_id"] = opt.UserID
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	if opt.Limit > 0 {
		findOpts.SetLimit(int64(opt.Limit))
	}

	cur, err := r.listings.Find(ctx, filter, findOpts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListListings"), err)
		return nil, repo.ErrFailedToList
	}
	defer cur.Close(ctx)

	var docs []listingDoc
	if err := cur.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "%s: decode: %v", r.dsn("ListListings"), err)
		return nil, repo.ErrFailedToList
	}
	return docsToListings(docs), nil
}

// UpdateListing updates a Listing by ID and returns the updated entity.
// Returns zero-value Listing when not found.
func (r *implRepository) UpdateListing(ctx context.Context, opt repo.UpdateListingOptions) (listing.Listing, error) {
	update := bson.M{"$set": bson.M{
		"title":       opt.Title,
		"location":    opt.Location,
		"description": opt.Description,
		"price":       opt.Price,
		"status":      string(opt.Status),
		"updated_at":  r.now().UTC().Truncate(timeResolution),
	}}

	var doc listingDoc
	err := r.listings.FindOneAndUpdate(ctx,
		bson.M{"_id": opt.ID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return listing.Listing{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateListing"), err)
		return listing.Listing{}, repo.ErrFailedToUpdate
	}
	return docToListing(doc), nil
}

// DeleteListing removes a Listing by ID.
func (r *implRepository) DeleteListing(ctx context.Context, id string) error {
	if _, err := r.listings.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteListing"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
