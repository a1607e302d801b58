package repositories

import (
	"context"

	"storefront/internal/errs"
	"storefront/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoEnquiryRepository writes enquiries to the enquiries collection.
type MongoEnquiryRepository struct {
	coll *mongo.Collection
}

// NewMongoEnquiryRepository creates a repository on db's enquiries collection.
func NewMongoEnquiryRepository(db *mongo.Database) *MongoEnquiryRepository {
	return &MongoEnquiryRepository{coll: db.Collection(models.EnquiryCollection)}
}

// Create inserts enquiry. Extra fields are stored inline next to the known ones.
func (r *MongoEnquiryRepository) Create(ctx context.Context, enquiry *models.Enquiry) error {
	res, err := r.coll.InsertOne(ctx, enquiry)
	if err != nil {
		return &errs.StoreError{Op: "create", Collection: models.EnquiryCollection, Err: err}
	}
	enquiry.ID = insertedID(res)
	return nil
}
