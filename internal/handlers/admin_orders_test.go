package handlers

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildOrderFilterEmpty(t *testing.T) {
	filter, ok := buildOrderFilter("", "")
	if !ok {
		t.Fatal("expected empty filter to be valid")
	}
	if len(filter) != 0 {
		t.Fatalf("expected no filter clauses, got %+v", filter)
	}
}

func TestBuildOrderFilterStatus(t *testing.T) {
	filter, ok := buildOrderFilter("pending", "")
	if !ok {
		t.Fatal("expected pending to be a valid status")
	}
	if filter["status"] != "pending" {
		t.Fatalf("expected status=pending clause, got %+v", filter)
	}
}

func TestBuildOrderFilterRejectsUnknownStatus(t *testing.T) {
	if _, ok := buildOrderFilter("shipped", ""); ok {
		t.Fatal("expected unknown status to be rejected")
	}
}

func TestBuildOrderFilterSearchMatchesIDAndName(t *testing.T) {
	filter, ok := buildOrderFilter("", "OD123")
	if !ok {
		t.Fatal("expected search filter to be valid")
	}

	clauses, ok := filter["$or"].([]bson.M)
	if !ok || len(clauses) != 2 {
		t.Fatalf("expected two $or clauses, got %+v", filter)
	}
}

func TestBuildOrderFilterEscapesRegexMeta(t *testing.T) {
	filter, ok := buildOrderFilter("", "a.b*")
	if !ok {
		t.Fatal("expected search filter to be valid")
	}

	clauses := filter["$or"].([]bson.M)
	pattern := clauses[0]["_id"].(bson.M)["$regex"].(string)
	if pattern != `a\.b\*` {
		t.Fatalf("expected regex metacharacters escaped, got %q", pattern)
	}
}
