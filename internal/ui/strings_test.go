package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "Widgets", 10, "Widgets"},
		{"trimmed", "  Widgets  ", 10, "Widgets"},
		{"ellipsis", "Industrial Widgets", 10, "Industr..."},
		{"tiny", "abcd", 2, "ab"},
		{"no_limit", "abcd", 0, "abcd"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestPageBounds(t *testing.T) {
	cases := []struct {
		name                string
		total, cursor, size int
		start, end          int
	}{
		{"empty", 0, 0, 10, 0, 0},
		{"first_page", 30, 3, 10, 0, 10},
		{"second_page", 30, 10, 10, 10, 20},
		{"short_last_page", 25, 24, 10, 20, 25},
		{"cursor_past_end", 25, 99, 10, 20, 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := pageBounds(tc.total, tc.cursor, tc.size)
			if start != tc.start || end != tc.end {
				t.Fatalf("pageBounds = [%d,%d), want [%d,%d)", start, end, tc.start, tc.end)
			}
		})
	}
}

func TestPageCount(t *testing.T) {
	if got := pageCount(0, 10); got != 1 {
		t.Fatalf("pageCount(0) = %d, want 1", got)
	}
	if got := pageCount(25, 10); got != 3 {
		t.Fatalf("pageCount(25) = %d, want 3", got)
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 3); got != 3 {
		t.Fatalf("clamp high = %d, want 3", got)
	}
	if got := clamp(-1, 0, 3); got != 0 {
		t.Fatalf("clamp low = %d, want 0", got)
	}
	if got := clamp(2, 0, -1); got != 0 {
		t.Fatalf("clamp empty range = %d, want 0", got)
	}
}
