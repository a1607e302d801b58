package repositories

import (
	"context"

	"storefront/internal/models"
)

// EnquiryRepository defines the interface for enquiry data access.
// Enquiries are write-only from the API's point of view.
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *models.Enquiry) error
}
