package order

import (
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/cart"
)

func TestBuildRejectsEmptyCart(t *testing.T) {
	_, err := Build(&cart.Cart{}, primitive.NewObjectID(), "Asha", "123 St", PaymentCashOnDelivery, nil, checkoutTime)
	var emptyErr EmptyCartError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected EmptyCartError, got %v", err)
	}
}

func TestBuildRejectsEmptyAddress(t *testing.T) {
	c := &cart.Cart{}
	c.AddItem("a", "Thali", 100, "")

	for _, address := range []string{"", "   "} {
		_, err := Build(c, primitive.NewObjectID(), "Asha", address, PaymentCashOnDelivery, nil, checkoutTime)
		var validationErr ValidationError
		if !errors.As(err, &validationErr) || validationErr.Field != "address" {
			t.Fatalf("expected address validation error for %q, got %v", address, err)
		}
	}
}

func TestBuildRejectsUnknownPaymentMethod(t *testing.T) {
	c := &cart.Cart{}
	c.AddItem("a", "Thali", 100, "")

	_, err := Build(c, primitive.NewObjectID(), "Asha", "123 St", "upi", nil, checkoutTime)
	var validationErr ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "paymentMethod" {
		t.Fatalf("expected paymentMethod validation error, got %v", err)
	}
}

func TestBuildCashOnDeliveryScenario(t *testing.T) {
	c := &cart.Cart{}
	c.AddItem("a", "Thali", 100, "")
	c.SetQuantity("a", 2)

	userID := primitive.NewObjectID()
	built, err := Build(c, userID, "Asha Rao", "123 St", PaymentCashOnDelivery, nil, checkoutTime)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	// 100*2 + 40 delivery + 10 tax
	if built.TotalAmount != 250 {
		t.Fatalf("expected totalAmount 250, got %v", built.TotalAmount)
	}
	if built.Status != string(StatusPending) {
		t.Fatalf("expected status pending, got %q", built.Status)
	}
	if built.PaymentSummary != nil {
		t.Fatalf("expected no payment summary for cash-on-delivery, got %+v", built.PaymentSummary)
	}
	if built.UserID != userID || built.UserName != "Asha Rao" {
		t.Fatalf("expected owner fields set, got %+v", built)
	}
	if !built.CreatedAt.Equal(checkoutTime) {
		t.Fatalf("expected createdAt %v, got %v", checkoutTime, built.CreatedAt)
	}
}

func TestBuildSnapshotsCartLines(t *testing.T) {
	c := &cart.Cart{}
	c.AddItem("a", "Thali", 100, "a.jpg")
	c.AddItem("b", "Lassi", 60, "b.jpg")
	c.SetQuantity("b", 3)

	built, err := Build(c, primitive.NewObjectID(), "Asha", "123 St", PaymentCashOnDelivery, nil, checkoutTime)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if len(built.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(built.Items))
	}
	if built.Items[0].FoodID != "a" || built.Items[0].Price != 100 || built.Items[0].Quantity != 1 {
		t.Fatalf("unexpected first item snapshot: %+v", built.Items[0])
	}
	if built.Items[1].FoodID != "b" || built.Items[1].Price != 60 || built.Items[1].Quantity != 3 {
		t.Fatalf("unexpected second item snapshot: %+v", built.Items[1])
	}

	// Later cart mutations must not leak into the snapshot.
	c.SetQuantity("b", 9)
	c.Lines[0].UnitPrice = 999
	if built.Items[1].Quantity != 3 || built.Items[0].Price != 100 {
		t.Fatalf("expected order items to be frozen, got %+v", built.Items)
	}
}

func TestBuildCardPaymentRetainsOnlySummary(t *testing.T) {
	c := &cart.Cart{}
	c.AddItem("a", "Thali", 500, "")

	card := CardDetails{
		CardNumber:     "4111111111111234",
		CardholderName: "Asha Rao",
		ExpiryDate:     "12/99",
		CVV:            "123",
	}
	built, err := Build(c, primitive.NewObjectID(), "Asha", "123 St", PaymentCard, &card, checkoutTime)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if built.TotalAmount != 565 {
		t.Fatalf("expected totalAmount 565, got %v", built.TotalAmount)
	}
	if built.PaymentSummary == nil {
		t.Fatal("expected a payment summary for card payment")
	}
	if built.PaymentSummary.CardLast4 != "1234" || built.PaymentSummary.CardholderName != "Asha Rao" {
		t.Fatalf("unexpected payment summary: %+v", built.PaymentSummary)
	}
}

func TestBuildCardPaymentRequiresDetails(t *testing.T) {
	c := &cart.Cart{}
	c.AddItem("a", "Thali", 100, "")

	_, err := Build(c, primitive.NewObjectID(), "Asha", "123 St", PaymentCard, nil, checkoutTime)
	var validationErr ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "paymentDetails" {
		t.Fatalf("expected paymentDetails validation error, got %v", err)
	}
}

func TestNewIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^OD\d{10}$`)
	for i := 0; i < 50; i++ {
		id := NewID()
		if !pattern.MatchString(id) {
			t.Fatalf("unexpected order id format: %q", id)
		}
	}
}

func TestNewIDEmbedsTimestamp(t *testing.T) {
	before := time.Now().UnixMilli() % 1000000
	id := NewID()
	after := time.Now().UnixMilli() % 1000000
	if before > after {
		// Wrap-around window once every 1000 seconds, nothing to assert.
		return
	}

	middle := id[2:8]
	low := fmt.Sprintf("%06d", before)
	high := fmt.Sprintf("%06d", after)
	if middle < low || middle > high {
		t.Fatalf("expected timestamp segment between %s and %s, got %s", low, high, middle)
	}
}
