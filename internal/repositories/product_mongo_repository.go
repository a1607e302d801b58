package repositories

import (
	"context"

	"storefront/internal/errs"
	"storefront/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProductRepository reads products from the products collection.
type MongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository creates a repository on db's products collection.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{coll: db.Collection(models.ProductCollection)}
}

// GetAll returns every document in the collection, in natural order.
func (r *MongoProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, &errs.StoreError{Op: "find", Collection: models.ProductCollection, Err: err}
	}

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, &errs.StoreError{Op: "find", Collection: models.ProductCollection, Err: err}
	}
	return products, nil
}

// Create inserts product and sets its ID to the generated ObjectID.
func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	res, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return &errs.StoreError{Op: "create", Collection: models.ProductCollection, Err: err}
	}
	product.ID = insertedID(res)
	return nil
}

func insertedID(res *mongo.InsertOneResult) string {
	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return ""
	}
}
