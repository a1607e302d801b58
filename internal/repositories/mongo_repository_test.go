package repositories_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/errs"
	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoProductRepository_GetAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns every document", func(mt *mtest.T) {
		repo := repositories.NewMongoProductRepository(mt.DB)
		id := primitive.NewObjectID()
		ns := mt.DB.Name() + ".products"

		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: id},
				{Key: "name", Value: "A"},
				{Key: "description", Value: "d"},
				{Key: "benefits", Value: "b"},
			}),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch),
		)

		products, err := repo.GetAll(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, []models.Product{{ID: id.Hex(), Name: "A", Description: "d", Benefits: "b"}}, products)
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		repo := repositories.NewMongoProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".products", mtest.FirstBatch))

		products, err := repo.GetAll(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, products)
		assert.Empty(mt, products)
	})

	mt.Run("command error", func(mt *mtest.T) {
		repo := repositories.NewMongoProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized on storefront",
		}))

		_, err := repo.GetAll(context.Background())
		var se *errs.StoreError
		require.True(mt, errors.As(err, &se))
		assert.Equal(mt, "products", se.Collection)
		assert.Contains(mt, err.Error(), "not authorized")
	})
}

func TestMongoProductRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns object id", func(mt *mtest.T) {
		repo := repositories.NewMongoProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		p := &models.Product{Name: "A", Description: "d", Benefits: "b"}
		require.NoError(mt, repo.Create(context.Background(), p))
		_, err := primitive.ObjectIDFromHex(p.ID)
		assert.NoError(mt, err)
	})
}

func TestMongoEnquiryRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("stores extra fields inline", func(mt *mtest.T) {
		repo := repositories.NewMongoEnquiryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		e := &models.Enquiry{Name: "Ann", Email: "ann@example.com", Message: "Hi", Extra: map[string]any{"phone": "0123"}}
		require.NoError(mt, repo.Create(context.Background(), e))
		assert.NotEmpty(mt, e.ID)

	})

	mt.Run("duplicate key", func(mt *mtest.T) {
		repo := repositories.NewMongoEnquiryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := repo.Create(context.Background(), &models.Enquiry{Name: "Ann", Email: "a", Message: "m"})
		var se *errs.StoreError
		require.True(mt, errors.As(err, &se))
		assert.Equal(mt, "create", se.Op)
		assert.Equal(mt, "enquiries", se.Collection)
	})
}
