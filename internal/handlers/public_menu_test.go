package handlers

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildMenuFilterEmpty(t *testing.T) {
	filter := buildMenuFilter("", "")
	if len(filter) != 0 {
		t.Fatalf("expected no filter clauses, got %+v", filter)
	}
}

func TestBuildMenuFilterCategoryAndSearch(t *testing.T) {
	filter := buildMenuFilter(" Pizza ", "margherita")
	if filter["category"] != "Pizza" {
		t.Fatalf("expected trimmed category, got %+v", filter)
	}
	name, ok := filter["name"].(bson.M)
	if !ok || name["$regex"] != "margherita" {
		t.Fatalf("expected name regex clause, got %+v", filter)
	}
}

func TestBuildMenuFilterQuotesRegexMetacharacters(t *testing.T) {
	filter := buildMenuFilter("", "paneer (special)")
	name, ok := filter["name"].(bson.M)
	if !ok {
		t.Fatalf("expected name clause, got %+v", filter)
	}
	if name["$regex"] != `paneer \(special\)` {
		t.Fatalf("expected quoted search term, got %q", name["$regex"])
	}
}
