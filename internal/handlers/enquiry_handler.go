package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"storefront/internal/errs"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/services"
)

// EnquiryHandler handles HTTP requests for enquiries.
type EnquiryHandler struct {
	service *services.EnquiryService
	strict  bool
	log     zerolog.Logger
}

// NewEnquiryHandler creates a new EnquiryHandler. With strict set, bodies
// carrying fields other than name, email and message are rejected.
func NewEnquiryHandler(service *services.EnquiryService, strict bool, log zerolog.Logger) *EnquiryHandler {
	return &EnquiryHandler{
		service: service,
		strict:  strict,
		log:     log,
	}
}

// RegisterRoutes registers the enquiry routes.
func (h *EnquiryHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/enquiry", h.HandleCreateEnquiry)
}

// HandleCreateEnquiry stores the submitted enquiry.
func (h *EnquiryHandler) HandleCreateEnquiry(c *fiber.Ctx) error {
	enquiry, err := h.bind(c)
	if err == nil {
		err = h.service.SubmitEnquiry(c.UserContext(), enquiry)
	}
	if err != nil {
		h.log.Error().Err(err).Msg("error saving enquiry")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Bad Request",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).SendString("Enquiry received")
}

// bind builds an Enquiry from the decoded request body. A missing body is
// treated as an empty object so that validation reports every field.
func (h *EnquiryHandler) bind(c *fiber.Ctx) (*models.Enquiry, error) {
	fields := map[string]any{}
	switch body := middleware.Body(c).(type) {
	case nil:
	case map[string]any:
		fields = body
	default:
		return nil, errs.NewValidationError("enquiry", "body", fmt.Sprintf("must be a JSON object, got %T", body))
	}
	return models.EnquiryFromFields(fields, h.strict)
}
