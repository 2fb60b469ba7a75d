package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"settleedge_web/models"

	"github.com/microcosm-cc/bluemonday"
)

var ErrInvalidInquiry = errors.New("invalid inquiry")

// inquiryPolicy strips all markup from submitted text
var inquiryPolicy = bluemonday.StrictPolicy()

// SanitizeInquiry trims and strips markup from every field and fills in the
// default loan type.
func SanitizeInquiry(in models.ContactInquiry) models.ContactInquiry {
	clean := func(s string) string {
		return strings.TrimSpace(inquiryPolicy.Sanitize(s))
	}
	out := models.ContactInquiry{
		Name:     clean(in.Name),
		Phone:    clean(in.Phone),
		LoanType: clean(in.LoanType),
		Lender:   clean(in.Lender),
		City:     clean(in.City),
		Details:  clean(in.Details),
	}
	if out.LoanType == "" {
		out.LoanType = models.LoanTypes[0]
	}
	return out
}

// MissingInquiryFields returns the form names of empty required fields.
// Only presence is checked; the form carries no other validation.
func MissingInquiryFields(in models.ContactInquiry) []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"phone", in.Phone},
		{"lender", in.Lender},
		{"city", in.City},
	}
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// LogInquiry records a submitted evaluation request. Nothing is persisted.
// With details disabled, only the loan type and city are written.
func LogInquiry(in models.ContactInquiry, details bool) (models.ContactInquiry, error) {
	in = SanitizeInquiry(in)
	if missing := MissingInquiryFields(in); len(missing) > 0 {
		return in, fmt.Errorf("%w: missing %s", ErrInvalidInquiry, strings.Join(missing, ", "))
	}

	if details {
		log.Printf("[INFO] Contact inquiry received: name=%q phone=%q loan_type=%q lender=%q city=%q details=%q",
			in.Name, in.Phone, in.LoanType, in.Lender, in.City, in.Details)
	} else {
		log.Printf("[INFO] Contact inquiry received: loan_type=%q city=%q", in.LoanType, in.City)
	}
	return in, nil
}
