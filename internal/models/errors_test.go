package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validQuoteCreate() *QuoteRecordCreate {
	return &QuoteRecordCreate{
		QuoteRef:      "BQ-1A2B3C4D",
		CustomerName:  "Jo Bloggs",
		CustomerEmail: "jo@example.com",
		SelectedTier:  QuoteTierStandard,
		TotalPrice:    358800,
		BoilerType:    TopologyCombi,
	}
}

func TestValidateQuoteRecordCreate(t *testing.T) {
	assert.NoError(t, ValidateQuoteRecordCreate(validQuoteCreate()))
}

func TestValidateQuoteRecordCreateRejectsEmptyRef(t *testing.T) {
	q := validQuoteCreate()
	q.QuoteRef = "  "
	assert.ErrorIs(t, ValidateQuoteRecordCreate(q), ErrEmptyQuoteRef)
}

func TestValidateQuoteRecordCreateRejectsBadEmail(t *testing.T) {
	for _, email := range []string{"not-an-email", "@example.com", "jo@", "jo@example."} {
		q := validQuoteCreate()
		q.CustomerEmail = email
		assert.ErrorIs(t, ValidateQuoteRecordCreate(q), ErrInvalidEmail, "email=%q", email)
	}

	// Email is optional.
	q := validQuoteCreate()
	q.CustomerEmail = ""
	assert.NoError(t, ValidateQuoteRecordCreate(q))
}

func TestValidateQuoteRecordCreateRejectsUnknownTier(t *testing.T) {
	q := validQuoteCreate()
	q.SelectedTier = "Platinum"
	assert.ErrorIs(t, ValidateQuoteRecordCreate(q), ErrInvalidTier)
}
