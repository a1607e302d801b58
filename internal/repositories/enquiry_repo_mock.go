package repositories

import (
	"context"
	"sync"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockEnquiryRepository is an in-memory implementation of EnquiryRepository.
type MockEnquiryRepository struct {
	enquiries []models.Enquiry
	mu        sync.RWMutex
}

// NewMockEnquiryRepository creates a new instance of MockEnquiryRepository.
func NewMockEnquiryRepository() *MockEnquiryRepository {
	return &MockEnquiryRepository{}
}

// Create stores a copy of enquiry.
func (r *MockEnquiryRepository) Create(_ context.Context, enquiry *models.Enquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if enquiry.ID == "" {
		enquiry.ID = uuid.New().String()
	}
	r.enquiries = append(r.enquiries, *enquiry)
	return nil
}

// All returns every stored enquiry.
func (r *MockEnquiryRepository) All() []models.Enquiry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Enquiry, len(r.enquiries))
	copy(out, r.enquiries)
	return out
}
