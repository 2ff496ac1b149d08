package order

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"backend/internal/models"
)

const (
	PaymentCard           = "card"
	PaymentCashOnDelivery = "cash-on-delivery"
)

// CardDetails is the checkout card input. Only the last four digits and the
// cardholder name survive validation; the rest is discarded.
type CardDetails struct {
	CardNumber     string `json:"cardNumber"`
	CardholderName string `json:"cardholderName"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
}

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	expiryPattern     = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3}$`)
)

// ValidateCard checks card number, cardholder name, expiry and CVV against
// the checkout rules. Spaces in the card number are tolerated.
func ValidateCard(card CardDetails, now time.Time) error {
	if strings.TrimSpace(card.CardholderName) == "" {
		return ValidationError{Field: "cardholderName", Message: "cardholder name is required"}
	}

	number := strings.ReplaceAll(card.CardNumber, " ", "")
	if !cardNumberPattern.MatchString(number) {
		return ValidationError{Field: "cardNumber", Message: "card number must be 16 digits"}
	}

	if !validExpiry(card.ExpiryDate, now) {
		return ValidationError{Field: "expiryDate", Message: "expiry date must be a valid MM/YY in the future"}
	}

	if !cvvPattern.MatchString(card.CVV) {
		return ValidationError{Field: "cvv", Message: "CVV must be 3 digits"}
	}

	return nil
}

// validExpiry accepts MM/YY with month 1..12. A card expiring in the current
// month is still valid; only a (year, month) strictly before now fails.
func validExpiry(expiry string, now time.Time) bool {
	if !expiryPattern.MatchString(expiry) {
		return false
	}

	parts := strings.SplitN(expiry, "/", 2)
	month, _ := strconv.Atoi(parts[0])
	year, _ := strconv.Atoi(parts[1])
	year += 2000

	if month < 1 || month > 12 {
		return false
	}

	currentYear := now.Year()
	currentMonth := int(now.Month())
	if year < currentYear {
		return false
	}
	if year == currentYear && month < currentMonth {
		return false
	}
	return true
}

// SummarizeCard reduces validated card details to the persistable summary.
// Numbers shorter than four digits yield the whole number as the suffix.
func SummarizeCard(card CardDetails) *models.PaymentSummary {
	number := strings.ReplaceAll(card.CardNumber, " ", "")
	last4 := number
	if len(number) > 4 {
		last4 = number[len(number)-4:]
	}
	return &models.PaymentSummary{
		CardLast4:      last4,
		CardholderName: strings.TrimSpace(card.CardholderName),
	}
}
