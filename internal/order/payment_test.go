package order

import (
	"errors"
	"testing"
	"time"
)

var checkoutTime = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func validCard() CardDetails {
	return CardDetails{
		CardNumber:     "4111 1111 1111 1234",
		CardholderName: "Asha Rao",
		ExpiryDate:     "12/99",
		CVV:            "123",
	}
}

func TestValidateCardAccepts(t *testing.T) {
	if err := ValidateCard(validCard(), checkoutTime); err != nil {
		t.Fatalf("expected valid card, got %v", err)
	}
}

func TestValidateCardNumber(t *testing.T) {
	tests := []string{"", "4111", "4111111111111111111", "41111111111111ab"}
	for _, number := range tests {
		card := validCard()
		card.CardNumber = number
		err := ValidateCard(card, checkoutTime)
		var validationErr ValidationError
		if !errors.As(err, &validationErr) || validationErr.Field != "cardNumber" {
			t.Fatalf("expected cardNumber validation error for %q, got %v", number, err)
		}
	}
}

func TestValidateCardCVV(t *testing.T) {
	for _, cvv := range []string{"", "12", "1234", "12a"} {
		card := validCard()
		card.CVV = cvv
		err := ValidateCard(card, checkoutTime)
		var validationErr ValidationError
		if !errors.As(err, &validationErr) || validationErr.Field != "cvv" {
			t.Fatalf("expected cvv validation error for %q, got %v", cvv, err)
		}
	}
}

func TestValidateCardholderName(t *testing.T) {
	card := validCard()
	card.CardholderName = "   "
	err := ValidateCard(card, checkoutTime)
	var validationErr ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "cardholderName" {
		t.Fatalf("expected cardholderName validation error, got %v", err)
	}
}

func TestValidExpiry(t *testing.T) {
	tests := []struct {
		expiry string
		want   bool
	}{
		{"12/99", true},  // far future
		{"01/20", false}, // past January 2020
		{"13/25", false}, // month out of range regardless of year
		{"00/30", false},
		{"03/26", true},  // current month is still valid
		{"02/26", false}, // previous month
		{"04/26", true},
		{"12/25", false}, // previous year
		{"1/26", false},  // format must be two-digit
		{"03-26", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := validExpiry(tt.expiry, checkoutTime); got != tt.want {
			t.Fatalf("validExpiry(%q) = %v, want %v", tt.expiry, got, tt.want)
		}
	}
}

func TestSummarizeCardKeepsOnlyLast4AndName(t *testing.T) {
	summary := SummarizeCard(validCard())
	if summary.CardLast4 != "1234" {
		t.Fatalf("expected last4 1234, got %q", summary.CardLast4)
	}
	if summary.CardholderName != "Asha Rao" {
		t.Fatalf("expected cardholder name preserved, got %q", summary.CardholderName)
	}
}

func TestSummarizeCardShortNumber(t *testing.T) {
	for _, number := range []string{"", "12", "1234"} {
		card := validCard()
		card.CardNumber = number
		summary := SummarizeCard(card)
		if summary.CardLast4 != number {
			t.Fatalf("expected suffix %q for short number, got %q", number, summary.CardLast4)
		}
	}
}
