package handlers

import (
	"errors"
	"testing"
)

func TestParsePaginationParamsDefaults(t *testing.T) {
	page, limit, err := parsePaginationParams("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 1 || limit != 20 {
		t.Fatalf("expected defaults 1/20, got %d/%d", page, limit)
	}
}

func TestParsePaginationParamsRejectsBadInput(t *testing.T) {
	cases := []struct{ page, limit string }{
		{"0", "10"},
		{"-1", "10"},
		{"abc", "10"},
		{"1", "0"},
		{"1", "abc"},
		{"1", "101"},
	}
	for _, tc := range cases {
		if _, _, err := parsePaginationParams(tc.page, tc.limit); !errors.Is(err, errInvalidPagination) {
			t.Fatalf("page=%q limit=%q: expected errInvalidPagination, got %v", tc.page, tc.limit, err)
		}
	}
}

func TestSafeDeleteUploadRejectsForeignPaths(t *testing.T) {
	cases := []string{
		"uploads/../etc/passwd",
		"etc/passwd",
		"uploads/other/file.png",
	}
	for _, p := range cases {
		if err := safeDeleteUpload(p); err == nil {
			t.Fatalf("expected %q to be refused", p)
		}
	}
}

func TestSafeDeleteUploadIgnoresEmptyPath(t *testing.T) {
	if err := safeDeleteUpload("   "); err != nil {
		t.Fatalf("expected empty path to be a no-op, got %v", err)
	}
}
