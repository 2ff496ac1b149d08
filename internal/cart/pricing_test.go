package cart

import "testing"

func TestComputeTotalsFormula(t *testing.T) {
	c := &Cart{}
	c.AddItem("a", "Thali", 500, "")

	totals := ComputeTotals(c)
	if totals.Subtotal != 500 {
		t.Fatalf("expected subtotal 500, got %v", totals.Subtotal)
	}
	if totals.DeliveryFee != 40 {
		t.Fatalf("expected delivery fee 40, got %v", totals.DeliveryFee)
	}
	if totals.Tax != 25 {
		t.Fatalf("expected tax 25, got %v", totals.Tax)
	}
	if totals.Total != 565 {
		t.Fatalf("expected total 565, got %v", totals.Total)
	}
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(&Cart{})
	if totals.Subtotal != 0 {
		t.Fatalf("expected subtotal 0, got %v", totals.Subtotal)
	}
	if totals.Total != DeliveryFee {
		t.Fatalf("expected total %v for empty cart, got %v", DeliveryFee, totals.Total)
	}
}

func TestComputeTotalsTaxOnSubtotalOnly(t *testing.T) {
	c := &Cart{}
	c.AddItem("a", "Samosa", 33, "")
	c.SetQuantity("a", 3)

	totals := ComputeTotals(c)
	// 99 * 0.05 keeps its fractional value; the fee is never taxed.
	if totals.Tax != 99*0.05 {
		t.Fatalf("expected tax %v, got %v", 99*0.05, totals.Tax)
	}
	if totals.Total != 99+40+99*0.05 {
		t.Fatalf("expected total %v, got %v", 99+40+99*0.05, totals.Total)
	}
}
