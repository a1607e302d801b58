package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// EnquiryReceivedEvent is the event type published after an enquiry is stored.
const EnquiryReceivedEvent = "enquiry.received"

// EventPublisher publishes domain events to a broker.
type EventPublisher interface {
	Publish(eventType string, payload any) error
}

// EnquiryService validates and stores enquiries.
type EnquiryService struct {
	repo      repositories.EnquiryRepository
	publisher EventPublisher
	validate  *validator.Validate
	log       zerolog.Logger
}

// NewEnquiryService creates a new EnquiryService. publisher may be nil.
func NewEnquiryService(repo repositories.EnquiryRepository, publisher EventPublisher, log zerolog.Logger) *EnquiryService {
	return &EnquiryService{
		repo:      repo,
		publisher: publisher,
		validate:  models.NewValidator(),
		log:       log,
	}
}

// SubmitEnquiry persists enquiry if every required field is present.
// An invalid enquiry never reaches the repository.
func (s *EnquiryService) SubmitEnquiry(ctx context.Context, enquiry *models.Enquiry) error {
	if err := models.Validate(s.validate, "enquiry", enquiry); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, enquiry); err != nil {
		return fmt.Errorf("failed to save enquiry: %w", err)
	}

	s.publish(enquiry)
	return nil
}

// publish is best effort: the enquiry is already stored.
func (s *EnquiryService) publish(enquiry *models.Enquiry) {
	if s.publisher == nil {
		return
	}
	event := map[string]any{
		"id":         enquiry.ID,
		"name":       enquiry.Name,
		"email":      enquiry.Email,
		"message":    enquiry.Message,
		"receivedAt": time.Now().UTC().Format(time.RFC3339),
	}
	if len(enquiry.Extra) > 0 {
		event["extra"] = enquiry.Extra
	}
	if err := s.publisher.Publish(EnquiryReceivedEvent, event); err != nil {
		s.log.Warn().Err(err).Str("enquiry", enquiry.ID).Msg("failed to publish enquiry event")
		return
	}
	s.log.Debug().Str("enquiry", enquiry.ID).Msg("published enquiry event")
}
