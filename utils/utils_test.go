package utils

import "testing"

func TestRandomReference(t *testing.T) {
	ref := RandomReference(4)
	if len(ref) != 8 {
		t.Fatalf("expected 8 hex chars for 4 bytes, got %q", ref)
	}

	other := RandomReference(4)
	if ref == other {
		t.Fatalf("two references should not collide: %q", ref)
	}

	if got := RandomReference(0); len(got) != 40 {
		t.Fatalf("expected fallback length 40, got %d", len(got))
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1250000, "1,250,000"},
		{-45000, "-45,000"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOrderByWhitelist(t *testing.T) {
	if got := OrderBy("updated_at"); got != "updated_at" {
		t.Fatalf("got %q", got)
	}
	if got := OrderBy("updatedAt"); got != "updated_at" {
		t.Fatalf("got %q", got)
	}
	if got := OrderBy("privates; DROP TABLE users"); got != "created_at" {
		t.Fatalf("unexpected column passed through: %q", got)
	}
}

func TestSortByWhitelist(t *testing.T) {
	if got := SortBy("ASC"); got != "asc" {
		t.Fatalf("got %q", got)
	}
	if got := SortBy("anything"); got != "desc" {
		t.Fatalf("got %q", got)
	}
}
