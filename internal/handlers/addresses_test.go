package handlers

import (
	"testing"

	"backend/internal/models"
)

func TestRemoveAddressDropsMatchingEntry(t *testing.T) {
	addresses := []models.Address{
		{ID: "a1", Title: "Home"},
		{ID: "a2", Title: "Work"},
	}

	remaining, removed := removeAddress(addresses, "a1")
	if !removed {
		t.Fatal("expected a1 to be removed")
	}
	if len(remaining) != 1 || remaining[0].ID != "a2" {
		t.Fatalf("expected only a2 to remain, got %+v", remaining)
	}
}

func TestRemoveAddressReportsMissingEntry(t *testing.T) {
	addresses := []models.Address{
		{ID: "a1", Title: "Home"},
	}

	remaining, removed := removeAddress(addresses, "nope")
	if removed {
		t.Fatal("expected no removal for an unknown address id")
	}
	if len(remaining) != 1 {
		t.Fatalf("expected addresses to be untouched, got %+v", remaining)
	}
}
