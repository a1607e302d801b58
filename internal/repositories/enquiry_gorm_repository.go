package repositories

import (
	"context"

	"storefront/internal/errs"
	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMEnquiryRepository is a GORM implementation of EnquiryRepository.
type GORMEnquiryRepository struct {
	db *gorm.DB
}

// NewGORMEnquiryRepository creates a new instance of GORMEnquiryRepository.
func NewGORMEnquiryRepository(db *gorm.DB) *GORMEnquiryRepository {
	return &GORMEnquiryRepository{
		db: db,
	}
}

// Create inserts a new enquiry row. Extra fields land in the JSON column.
func (r *GORMEnquiryRepository) Create(ctx context.Context, enquiry *models.Enquiry) error {
	if enquiry.ID == "" {
		enquiry.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(enquiry).Error; err != nil {
		return &errs.StoreError{Op: "create", Collection: models.EnquiryCollection, Err: err}
	}
	return nil
}
