package models

import (
	"errors"
	"strings"
)

// Common errors
var (
	ErrCatalogUnavailable = errors.New("pricing catalog unavailable")
	ErrInvalidTier        = errors.New("invalid quote tier")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmptyQuoteRef      = errors.New("quote_ref cannot be empty")
)

// ValidateQuoteRecordCreate validates an accepted quote before persistence.
func ValidateQuoteRecordCreate(q *QuoteRecordCreate) error {
	if strings.TrimSpace(q.QuoteRef) == "" {
		return ErrEmptyQuoteRef
	}

	if q.CustomerEmail != "" && !isValidEmail(q.CustomerEmail) {
		return ErrInvalidEmail
	}

	switch q.SelectedTier {
	case QuoteTierStandard, QuoteTierPremium, QuoteTierLuxury:
	default:
		return ErrInvalidTier
	}

	return nil
}

// isValidEmail performs basic email validation.
func isValidEmail(email string) bool {
	if email == "" {
		return false
	}

	atIndex := strings.Index(email, "@")
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	dotIndex := strings.LastIndex(email, ".")
	if dotIndex <= atIndex+1 || dotIndex == len(email)-1 {
		return false
	}

	return true
}
