package utils

import "testing"

func TestPaginateWindows(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		size  int
		total int64
		want  Pagination
	}{
		{"first page", 1, 10, 25, Pagination{Start: 0, End: 10, Pages: 3, Limit: 10}},
		{"middle page", 2, 10, 25, Pagination{Start: 10, End: 20, Pages: 3, Limit: 10}},
		{"last page runs to total", 3, 10, 25, Pagination{Start: 20, End: 25, Pages: 3, Limit: 5}},
		{"page past end clamps to first window", 4, 10, 25, Pagination{Start: 0, End: 10, Pages: 3, Limit: 10}},
		{"zero page clamps to first window", 0, 10, 25, Pagination{Start: 0, End: 10, Pages: 3, Limit: 10}},
		{"exact multiple", 2, 5, 10, Pagination{Start: 5, End: 10, Pages: 2, Limit: 5}},
		{"empty set", 1, 10, 0, Pagination{Start: 0, End: 0, Pages: 0, Limit: 0}},
		{"total smaller than size", 1, 50, 7, Pagination{Start: 0, End: 7, Pages: 1, Limit: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(tt.page, tt.size, tt.total)
			if got != tt.want {
				t.Fatalf("Paginate(%d, %d, %d) = %+v, want %+v", tt.page, tt.size, tt.total, got, tt.want)
			}
		})
	}
}

func TestPaginateDefaultSize(t *testing.T) {
	got := Paginate(1, 0, 100)
	if got.Limit != DefaultPageSize {
		t.Fatalf("expected default size %d, got %d", DefaultPageSize, got.Limit)
	}
	if got.Pages != 5 {
		t.Fatalf("expected 5 pages, got %d", got.Pages)
	}

	got = Paginate(1, -3, 100)
	if got.Limit != DefaultPageSize {
		t.Fatalf("expected default size for negative input, got %d", got.Limit)
	}
}
