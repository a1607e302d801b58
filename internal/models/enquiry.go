package models

import (
	"fmt"

	"storefront/internal/errs"
)

// EnquiryCollection is the collection (or table) enquiries are written to.
const EnquiryCollection = "enquiries"

// Enquiry represents a contact form submission.
type Enquiry struct {
	ID      string `json:"_id,omitempty" bson:"_id,omitempty" gorm:"primaryKey;type:varchar(36)"`
	Name    string `json:"name" bson:"name" gorm:"not null" validate:"required"`
	Email   string `json:"email" bson:"email" gorm:"not null" validate:"required"`
	Message string `json:"message" bson:"message" gorm:"not null" validate:"required"`

	// Extra holds unlisted fields accepted under the passthrough policy.
	Extra map[string]any `json:"extra,omitempty" bson:",inline" gorm:"type:text;serializer:json"`
}

// TableName pins the collection name for SQL stores.
func (Enquiry) TableName() string { return EnquiryCollection }

// reservedKeys are store-managed and never copied from a request body.
var reservedKeys = map[string]bool{"_id": true, "id": true, "__v": true}

// EnquiryFromFields builds an Enquiry from a decoded JSON object.
// Known fields must be strings. With strict set, any other key is rejected;
// otherwise it is kept in Extra.
func EnquiryFromFields(fields map[string]any, strict bool) (*Enquiry, error) {
	e := &Enquiry{}
	known := map[string]*string{
		"name":    &e.Name,
		"email":   &e.Email,
		"message": &e.Message,
	}

	var rejected []errs.FieldError
	for key, value := range fields {
		if dst, ok := known[key]; ok {
			switch v := value.(type) {
			case string:
				*dst = v
			case nil:
			default:
				rejected = append(rejected, errs.FieldError{Field: key, Error: fmt.Sprintf("must be a string, got %T", v)})
			}
			continue
		}
		if strict {
			rejected = append(rejected, errs.FieldError{Field: key, Error: "is not an allowed field"})
			continue
		}
		if reservedKeys[key] {
			continue
		}
		if e.Extra == nil {
			e.Extra = make(map[string]any)
		}
		e.Extra[key] = value
	}

	if len(rejected) > 0 {
		sortFieldErrors(rejected)
		return nil, &errs.ValidationError{Entity: "enquiry", Fields: rejected}
	}
	return e, nil
}
